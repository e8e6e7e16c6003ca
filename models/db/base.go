package dbmodels

import (
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BaseFunnelModel é embutido por registros que percorrem um funil de etapas.
// Exclusão é sempre lógica (DeletedAt), registro nunca é removido fisicamente.
type BaseFunnelModel struct {
	BaseModel
	StageSlug         string         `gorm:"type:varchar(100);index" json:"stage_slug"`
	LastStageChangeAt time.Time      `json:"last_stage_change_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
