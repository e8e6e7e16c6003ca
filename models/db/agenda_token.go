package dbmodels

import "time"

// AgendaToken guarda as credenciais OAuth do Google Agenda por usuário.
type AgendaToken struct {
	BaseModel
	UserID       string `gorm:"type:varchar(36);uniqueIndex"`
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

func (t AgendaToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && t.ExpiresAt.Before(now)
}
