package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"talentos" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"troque-me" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"AUTH_JWT_EXPIRE_SEC"`
		JWTRefreshExpireInSec int    `default:"86400" env:"AUTH_JWT_REFRESH_EXPIRE_SEC"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		Sender     string `default:"nao-responda@talentos.app" env:"SMTP_SENDER"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"talentos-arquivos" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Redis struct {
		Addr     string `default:"127.0.0.1:6379" env:"REDIS_ADDR"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
	Cnpj struct {
		Host        string `default:"https://brasilapi.com.br" env:"CNPJ_API_HOST"`
		CacheTTLMin int    `default:"1440" env:"CNPJ_CACHE_TTL_MIN"`
	}
	Google struct {
		ClientID     string `default:"" env:"GOOGLE_CLIENT_ID"`
		ClientSecret string `default:"" env:"GOOGLE_CLIENT_SECRET"`
		RedirectUri  string `default:"http://localhost:8080/api/v1/agenda/callback" env:"GOOGLE_REDIRECT_URI"`
	}
	ShareLink struct {
		PublicHost string `default:"http://localhost:8000" env:"SHARE_LINK_PUBLIC_HOST"`
	}
	Workers struct {
		StaleVagaCronSpec  string `default:"0 8 * * 1-5" env:"STALE_VAGA_CRON_SPEC"`
		StaleVagaPrazoDias int    `default:"30" env:"STALE_VAGA_PRAZO_DIAS"`
		KpiRefreshCronSpec string `default:"*/30 * * * *" env:"KPI_REFRESH_CRON_SPEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
