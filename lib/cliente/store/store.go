package clientestore

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	clienteapimodels "talentos-backend/models/api/cliente"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Cliente) (id string, err error)
	GetByID(id string) (rec *dbmodels.Cliente, err error)
	GetByCnpj(cnpj string) (rec *dbmodels.Cliente, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(filter clienteapimodels.ClienteFilter) (count int64, err error)
	List(filter clienteapimodels.ClienteFilter) (list []dbmodels.Cliente, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Cliente) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Cliente, error) {
	rec := dbmodels.Cliente{}
	err := i.db.
		Model(&dbmodels.Cliente{}).
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

func (i impl) GetByCnpj(cnpj string) (*dbmodels.Cliente, error) {
	rec := dbmodels.Cliente{}
	err := i.db.
		Model(&dbmodels.Cliente{}).
		Where("cnpj = ?", cnpj).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Cliente{}).
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
	rec := dbmodels.Cliente{
		BaseFunnelModel: dbmodels.BaseFunnelModel{
			BaseModel: dbmodels.BaseModel{ID: id},
		},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListCount(filter clienteapimodels.ClienteFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Cliente{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("erro ao obter o total de clientes")
		return 0, errors.New("erro ao obter o total de clientes")
	}
	return rowCount, nil
}

func (i impl) List(filter clienteapimodels.ClienteFilter) (list []dbmodels.Cliente, err error) {
	list = []dbmodels.Cliente{}
	tx := i.db.
		Model(dbmodels.Cliente{}).
		Order("created_at desc")
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter clienteapimodels.ClienteFilter) {
	if filter.Search != "" {
		tx.Where("razao_social ilike ? or nome_fantasia ilike ? or cnpj = ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%", filter.Search)
	}
	if filter.StageSlug != "" {
		tx.Where("stage_slug = ?", filter.StageSlug)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
