package arquivostore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talentos-backend/models"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	SaveFile(rec dbmodels.Arquivo) (id string, err error)
	GetByID(id string) (rec *dbmodels.Arquivo, err error)
	GetByType(candidatoID string, fileType models.FileType) (rec *dbmodels.Arquivo, err error)
	ListByCandidato(candidatoID string) (list []dbmodels.Arquivo, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.Arquivo) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Arquivo, error) {
	rec := dbmodels.Arquivo{}
	err := i.db.
		Model(&dbmodels.Arquivo{}).
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

func (i impl) GetByType(candidatoID string, fileType models.FileType) (*dbmodels.Arquivo, error) {
	rec := dbmodels.Arquivo{}
	err := i.db.
		Model(&dbmodels.Arquivo{}).
		Where("candidato_id = ? AND tipo = ?", candidatoID, fileType).
		Order("created_at desc").
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

func (i impl) ListByCandidato(candidatoID string) (list []dbmodels.Arquivo, err error) {
	err = i.db.
		Model(&dbmodels.Arquivo{}).
		Where("candidato_id = ?", candidatoID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Arquivo{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}
