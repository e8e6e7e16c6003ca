package usuariostore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Usuario) (id string, err error)
	GetByID(id string) (*dbmodels.Usuario, error)
	GetByEmail(email string) (*dbmodels.Usuario, error)
	List() (list []dbmodels.Usuario, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Usuario) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Usuario, error) {
	rec := dbmodels.Usuario{}
	err := i.db.
		Model(&dbmodels.Usuario{}).
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

func (i impl) GetByEmail(email string) (*dbmodels.Usuario, error) {
	rec := dbmodels.Usuario{}
	err := i.db.
		Model(&dbmodels.Usuario{}).
		Where("email = ?", email).
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

func (i impl) List() (list []dbmodels.Usuario, err error) {
	list = []dbmodels.Usuario{}
	err = i.db.
		Where("ativo = true").
		Order("nome").
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
	err := i.db.
		Model(&dbmodels.Usuario{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
