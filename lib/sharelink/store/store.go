package sharelinkstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ShareLink) (id string, err error)
	GetByID(id string) (rec *dbmodels.ShareLink, err error)
	GetByToken(token string) (rec *dbmodels.ShareLink, err error)
	ListByVaga(vagaID string) (list []dbmodels.ShareLink, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ShareLink) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ShareLink, error) {
	rec := dbmodels.ShareLink{}
	err := i.db.
		Model(&dbmodels.ShareLink{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByToken(token string) (*dbmodels.ShareLink, error) {
	rec := dbmodels.ShareLink{}
	err := i.db.
		Model(&dbmodels.ShareLink{}).
		Where("token = ?", token).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByVaga(vagaID string) (list []dbmodels.ShareLink, err error) {
	list = []dbmodels.ShareLink{}
	err = i.db.
		Model(dbmodels.ShareLink{}).
		Where("vaga_id = ?", vagaID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ShareLink{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.RowsAffected == 0 {
		return errors.New("registro não encontrado")
	}
	err := tx.Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.ShareLink{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}
