package workers

import (
	log "github.com/sirupsen/logrus"

	"talentos-backend/lib/kpi"
)

// kpiRefreshWorker mantém a view materializada de indicadores atualizada.
type kpiRefreshWorker struct{}

func (w kpiRefreshWorker) name() string {
	return "kpi-refresh-worker"
}

func (w kpiRefreshWorker) run() {
	err := kpi.Instance.RefreshView()
	if err != nil {
		log.WithField("worker_name", w.name()).WithError(err).Error("erro ao atualizar os indicadores")
	}
}
