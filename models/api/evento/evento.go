package eventoapimodels

import (
	"time"

	"github.com/pkg/errors"

	"talentos-backend/models"
	apimodels "talentos-backend/models/api"
	dbmodels "talentos-backend/models/db"
)

type EventoFilter struct {
	apimodels.Pagination
	Entity   models.EntityKind `json:"entity"`    // vaga/candidato/cliente
	EntityID string            `json:"entity_id"` // registro da trilha
}

func (f EventoFilter) Validate() error {
	switch f.Entity {
	case models.EntityVaga, models.EntityCandidato, models.EntityCliente:
	default:
		return errors.New("tipo de registro inválido")
	}
	if f.EntityID == "" {
		return errors.New("registro não informado")
	}
	return nil
}

type EventoView struct {
	ID            string                 `json:"id"`
	EventType     models.EventType       `json:"event_type"`     // tipo do evento
	FromStage     string                 `json:"from_stage"`     // etapa de origem (mudança de etapa)
	ToStage       string                 `json:"to_stage"`       // etapa de destino (mudança de etapa)
	UserID        string                 `json:"user_id"`        // autor da ação
	UserName      string                 `json:"user_name"`      // nome do autor
	Description   string                 `json:"description"`    // descrição legível
	Payload       dbmodels.EventoPayload `json:"payload"`        // campos alterados
	CorrelationID string                 `json:"correlation_id"` // correlação da transição
	CreatedAt     time.Time              `json:"created_at"`
	Icon          string                 `json:"icon"`  // ícone de exibição
	Color         string                 `json:"color"` // cor de exibição
}

func Convert(rec dbmodels.Evento) EventoView {
	result := EventoView{
		ID:            rec.ID,
		EventType:     rec.EventType,
		FromStage:     rec.FromStage,
		ToStage:       rec.ToStage,
		UserName:      rec.UserName,
		Description:   rec.Description,
		Payload:       rec.Payload,
		CorrelationID: rec.CorrelationID,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.UserID != nil {
		result.UserID = *rec.UserID
	}
	return result
}
