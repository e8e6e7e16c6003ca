package notificacao

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talentos-backend/db"
	store "talentos-backend/lib/notificacao/store"
	initchecker "talentos-backend/lib/utils/init-checker"
	connectionhub "talentos-backend/lib/ws/hub/connection-hub"
	apimodels "talentos-backend/models/api"
	notificacaoapimodels "talentos-backend/models/api/notificacao"
	dbmodels "talentos-backend/models/db"
	wsmodels "talentos-backend/models/ws"
)

type Provider interface {
	// Notify grava a notificação e empurra via websocket quando o usuário
	// está conectado; desconectado recebe no próximo connect.
	Notify(userID, vagaID, titulo, mensagem string) error
	List(userID string, filter dbmodels.NotificacaoFilter, pagination apimodels.Pagination) (list []notificacaoapimodels.NotificacaoView, rowCount int64, err error)
	MarkLida(userID, id string) error
	MarkTodasLidas(userID string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Notify(userID, vagaID, titulo, mensagem string) error {
	logger := log.WithField("user_id", userID).
		WithField("vaga_id", vagaID)
	rec := dbmodels.Notificacao{
		UserID:   userID,
		VagaID:   vagaID,
		Titulo:   titulo,
		Mensagem: mensagem,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("erro ao gravar notificação")
		return errors.New("erro ao gravar notificação")
	}
	connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
		ToUserID: userID,
		Type:     wsmodels.MsgTypeNotificacao,
		SentAt:   time.Now(),
		Data: wsmodels.NotificacaoData{
			ID:       id,
			Titulo:   titulo,
			Mensagem: mensagem,
			VagaID:   vagaID,
		},
	})
	return nil
}

func (i impl) List(userID string, filter dbmodels.NotificacaoFilter, pagination apimodels.Pagination) (list []notificacaoapimodels.NotificacaoView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(userID, filter)
	if err != nil {
		log.WithError(err).Error("erro ao obter o total de notificações")
		return nil, 0, errors.New("erro ao obter o total de notificações")
	}
	recList, err := i.store.List(userID, filter, pagination)
	if err != nil {
		log.WithError(err).Error("erro ao obter a lista de notificações")
		return nil, 0, errors.New("erro ao obter a lista de notificações")
	}
	result := make([]notificacaoapimodels.NotificacaoView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, notificacaoapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) MarkLida(userID, id string) error {
	return i.store.MarkLida(userID, id)
}

func (i impl) MarkTodasLidas(userID string) error {
	return i.store.MarkTodasLidas(userID)
}
