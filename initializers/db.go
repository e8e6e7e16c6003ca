package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"talentos-backend/config"
	"talentos-backend/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
}

// InitRedis conecta no redis do cache de CNPJ. Indisponibilidade não derruba o
// serviço; a consulta segue sem cache.
func InitRedis(ctx context.Context) {
	err := db.ConnectRedis(ctx, config.Conf.Redis.Addr, config.Conf.Redis.Password, config.Conf.Redis.DB)
	if err != nil {
		log.WithError(err).Warn("redis indisponível, cache de CNPJ desativado")
	}
}
