package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"talentos-backend/models"
)

// Evento é a trilha de auditoria do sistema. Registros são somente
// inseridos, nunca atualizados ou removidos.
type Evento struct {
	BaseModel
	EntityKind    models.EntityKind `gorm:"type:varchar(50);index:idx_evento_entity"`
	EntityID      string            `gorm:"type:varchar(36);index:idx_evento_entity"`
	EventType     models.EventType  `gorm:"type:varchar(100)"`
	FromStage     string            `gorm:"type:varchar(100)"`
	ToStage       string            `gorm:"type:varchar(100)"`
	UserID        *string           `gorm:"type:varchar(36)"`
	UserName      string            `gorm:"type:varchar(255)"`
	Description   string
	Payload       EventoPayload `gorm:"type:jsonb"`
	CorrelationID string        `gorm:"type:varchar(36)"`
}

type EventoPayload struct {
	Data []EventoChange `json:"data,omitempty"` // lista de campos alterados
}

type EventoChange struct {
	Field    string      `json:"field"`
	OldValue interface{} `json:"old_value"`
	NewValue interface{} `json:"new_value"`
}

func (p EventoPayload) Value() (driver.Value, error) {
	valueString, err := json.Marshal(p)
	return string(valueString), err
}

func (p *EventoPayload) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &p); err != nil {
		return err
	}
	return nil
}
