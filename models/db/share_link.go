package dbmodels

import "time"

type ShareLink struct {
	BaseModel
	VagaID      string `gorm:"type:varchar(36);index"`
	Vaga        *Vaga  `gorm:"foreignKey:VagaID"`
	Token       string `gorm:"type:varchar(36);uniqueIndex"`
	Ativo       bool   `gorm:"default:true"`
	Titulo      string `gorm:"type:varchar(255)"`
	ExpiresAt   *time.Time
	CreatedByID string `gorm:"type:varchar(36)"`
}

func (s ShareLink) IsUsable(now time.Time) bool {
	if !s.Ativo {
		return false
	}
	if s.ExpiresAt != nil && s.ExpiresAt.Before(now) {
		return false
	}
	return true
}
