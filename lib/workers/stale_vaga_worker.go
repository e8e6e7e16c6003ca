package workers

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"talentos-backend/config"
	"talentos-backend/db"
	"talentos-backend/lib/evento"
	"talentos-backend/lib/notificacao"
	"talentos-backend/lib/smtp"
	dateutils "talentos-backend/lib/utils/dateutils"
	vagastore "talentos-backend/lib/vaga/store"
	"talentos-backend/models"
	dbmodels "talentos-backend/models/db"
)

// staleVagaWorker avisa o responsável quando uma vaga aberta passa do prazo
// sem mudança de etapa. Prazo contado em dias úteis, por vaga.
type staleVagaWorker struct {
	vagaStore vagastore.Provider
}

func newStaleVagaWorker() staleVagaWorker {
	return staleVagaWorker{
		vagaStore: vagastore.NewInstance(db.DB),
	}
}

func (w staleVagaWorker) name() string {
	return "stale-vaga-worker"
}

func (w staleVagaWorker) run() {
	logger := log.WithField("worker_name", w.name())
	list, err := w.vagaStore.ListAbertas()
	if err != nil {
		logger.WithError(err).Error("erro ao obter as vagas abertas")
		return
	}
	stale := 0
	for _, vaga := range list {
		prazo := vaga.PrazoDias
		if prazo <= 0 {
			prazo = config.Conf.Workers.StaleVagaPrazoDias
		}
		lastChange := vaga.LastStageChangeAt
		if dateutils.IsWithinDeadline(&lastChange, prazo) {
			continue
		}
		stale++
		w.alert(vaga, prazo)
	}
	logger.WithField("vagas_estagnadas", stale).Info("varredura de vagas estagnadas concluída")
}

func (w staleVagaWorker) alert(vaga dbmodels.Vaga, prazo int) {
	logger := log.
		WithField("worker_name", w.name()).
		WithField("vaga_id", vaga.ID)
	dias := dateutils.BusinessDaysFromNow(vaga.LastStageChangeAt)
	mensagem := fmt.Sprintf("A vaga %v está há %v dias úteis na etapa atual (prazo de %v dias).", vaga.Titulo, dias, prazo)

	err := notificacao.Instance.Notify(vaga.ResponsavelID, vaga.ID, "Vaga sem movimentação", mensagem)
	if err != nil {
		logger.WithError(err).Error("erro ao notificar o responsável pela vaga estagnada")
	}
	if vaga.Responsavel != nil && vaga.Responsavel.Email != "" {
		err = smtp.Instance.SendEMail(vaga.Responsavel.Email, mensagem, "Vaga sem movimentação")
		if err != nil {
			logger.WithError(err).Error("erro ao enviar o e-mail de vaga estagnada")
		}
	}
	err = evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityVaga,
		EntityID:    vaga.ID,
		EventType:   models.EventTypeStaleAlert,
		Description: fmt.Sprintf("vaga sem movimentação há %v dias úteis (prazo de %v dias)", dias, prazo),
	})
	if err != nil {
		logger.WithError(err).Error("erro ao registrar o alerta de vaga estagnada")
	}
}
