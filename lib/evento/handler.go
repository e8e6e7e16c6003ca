package evento

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talentos-backend/db"
	eventostore "talentos-backend/lib/funnel/event-store"
	usuariostore "talentos-backend/lib/usuario/store"
	"talentos-backend/models"
	apimodels "talentos-backend/models/api"
	eventoapimodels "talentos-backend/models/api/evento"
	dbmodels "talentos-backend/models/db"
)

type LogParams struct {
	Entity      models.EntityKind
	EntityID    string
	UserID      string
	EventType   models.EventType
	Description string
	Payload     dbmodels.EventoPayload
}

type Provider interface {
	// LogEvent acrescenta um evento à trilha de auditoria. Falha de insert é
	// logada e devolvida ao chamador como erro não fatal; a operação de
	// negócio que originou o evento não é desfeita.
	LogEvent(params LogParams) error
	List(entity models.EntityKind, entityID string, pagination apimodels.Pagination) ([]eventoapimodels.EventoView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     eventostore.NewInstance(db.DB),
		userStore: usuariostore.NewInstance(db.DB),
	}
}

type impl struct {
	store     eventostore.Provider
	userStore usuariostore.Provider
}

func (i impl) LogEvent(params LogParams) error {
	logger := log.WithField("entity_kind", params.Entity).
		WithField("entity_id", params.EntityID).
		WithField("event_type", params.EventType)
	rec := dbmodels.Evento{
		EntityKind:  params.Entity,
		EntityID:    params.EntityID,
		EventType:   params.EventType,
		Description: params.Description,
		Payload:     params.Payload,
	}
	rec.UserName = systemUserName
	if params.UserID != "" {
		rec.UserID = &params.UserID
		user, err := i.userStore.GetByID(params.UserID)
		if err != nil {
			logger.WithError(err).Error("erro ao salvar evento, falha ao obter o autor da ação")
			return errors.New("erro ao salvar evento")
		}
		if user == nil {
			logger.Error("erro ao salvar evento, autor da ação não encontrado")
			return errors.New("erro ao salvar evento")
		}
		rec.UserName = user.GetNomeCompleto()
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("erro ao salvar evento na trilha de auditoria")
		return errors.New("erro ao salvar evento")
	}
	return nil
}

func (i impl) List(entity models.EntityKind, entityID string, pagination apimodels.Pagination) ([]eventoapimodels.EventoView, int64, error) {
	rowCount, err := i.store.ListCount(entity, entityID)
	if err != nil {
		log.WithError(err).Error("erro ao obter o total de eventos")
		return nil, 0, errors.New("erro ao obter o total de eventos")
	}
	list, err := i.store.ListByEntity(entity, entityID, pagination)
	if err != nil {
		log.WithError(err).Error("erro ao obter a lista de eventos")
		return nil, 0, errors.New("erro ao obter a lista de eventos")
	}
	result := make([]eventoapimodels.EventoView, 0, len(list))
	for _, rec := range list {
		view := eventoapimodels.Convert(rec)
		visual := GetVisual(rec.EventType)
		view.Icon = visual.Icon
		view.Color = visual.Color
		result = append(result, view)
	}
	return result, rowCount, nil
}

const systemUserName = "Sistema"
