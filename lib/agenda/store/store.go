package agendastore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Save(record dbmodels.AgendaToken) (*dbmodels.AgendaToken, error)
	GetByUserID(userID string) (*dbmodels.AgendaToken, error)
	DeleteByUserID(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(record dbmodels.AgendaToken) (*dbmodels.AgendaToken, error) {
	existing, err := i.GetByUserID(record.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		// o Google só devolve refresh_token no primeiro consentimento
		if record.RefreshToken == "" {
			record.RefreshToken = existing.RefreshToken
		}
	}
	err = i.db.Save(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (i impl) GetByUserID(userID string) (*dbmodels.AgendaToken, error) {
	record := dbmodels.AgendaToken{}
	err := i.db.
		Where("user_id = ?", userID).
		First(&record).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (i impl) DeleteByUserID(userID string) error {
	return i.db.
		Where("user_id = ?", userID).
		Delete(&dbmodels.AgendaToken{}).
		Error
}
