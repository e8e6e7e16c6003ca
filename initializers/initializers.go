package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"talentos-backend/config"
	"talentos-backend/db"
	"talentos-backend/fiberlog"
	agendahandler "talentos-backend/lib/agenda"
	authhandler "talentos-backend/lib/auth"
	candidatohandler "talentos-backend/lib/candidato"
	clientehandler "talentos-backend/lib/cliente"
	cnpjhandler "talentos-backend/lib/cnpj"
	eventohandler "talentos-backend/lib/evento"
	xlsexport "talentos-backend/lib/export/xls"
	filestorage "talentos-backend/lib/file-storage"
	funnelhandler "talentos-backend/lib/funnel"
	kpihandler "talentos-backend/lib/kpi"
	notificacaohandler "talentos-backend/lib/notificacao"
	sharelinkhandler "talentos-backend/lib/sharelink"
	usuariohandler "talentos-backend/lib/usuario"
	vagahandler "talentos-backend/lib/vaga"
	"talentos-backend/lib/workers"
	connectionhub "talentos-backend/lib/ws/hub/connection-hub"
	s3client "talentos-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitRedis(ctx)
	InitS3()
	InitSmtp()

	eventohandler.NewHandler()
	funnelhandler.NewHandler()
	usuariohandler.NewHandler()
	authhandler.NewHandler()
	connectionhub.Init()
	notificacaohandler.NewHandler()
	xlsexport.NewHandler()
	filestorage.NewInstance(s3client.Client)
	cnpjhandler.NewHandler(db.RedisClient)
	vagahandler.NewHandler()
	candidatohandler.NewHandler()
	clientehandler.NewHandler()
	sharelinkhandler.NewHandler()
	agendahandler.NewHandler()
	kpihandler.NewHandler()

	if err := workers.Start(ctx); err != nil {
		log.WithError(err).Error("erro ao agendar os workers")
	}
}
