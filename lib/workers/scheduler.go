package workers

import (
	"context"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"talentos-backend/config"
)

// Start agenda os workers recorrentes e os encerra quando o contexto do
// serviço é cancelado. As expressões cron vêm da configuração.
func Start(ctx context.Context) error {
	logger := cronLogger{}
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(logger),
		cron.Recover(logger),
	))

	staleWorker := newStaleVagaWorker()
	if _, err := c.AddFunc(config.Conf.Workers.StaleVagaCronSpec, staleWorker.run); err != nil {
		return err
	}
	kpiWorker := kpiRefreshWorker{}
	if _, err := c.AddFunc(config.Conf.Workers.KpiRefreshCronSpec, kpiWorker.run); err != nil {
		return err
	}
	c.Start()
	log.WithField("stale_vaga_spec", config.Conf.Workers.StaleVagaCronSpec).
		WithField("kpi_refresh_spec", config.Conf.Workers.KpiRefreshCronSpec).
		Info("workers agendados")

	newBoardJanitorWorker().start(ctx)

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		log.Info("workers encerrados")
	}()
	return nil
}

// cronLogger adapta o logrus à interface de log do cron.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.WithField("cron", keysAndValues).Debug(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.WithField("cron", keysAndValues).WithError(err).Error(msg)
}
