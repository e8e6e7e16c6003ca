package eventostore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talentos-backend/models"
	apimodels "talentos-backend/models/api"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Evento) (id string, err error)
	CreateTx(tx *gorm.DB, rec dbmodels.Evento) (id string, err error)
	ListByEntity(entity models.EntityKind, entityID string, pagination apimodels.Pagination) (list []dbmodels.Evento, err error)
	ListCount(entity models.EntityKind, entityID string) (count int64, err error)
	ListTransitions(entity models.EntityKind, entityID string) (list []dbmodels.Evento, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Evento) (id string, err error) {
	return i.CreateTx(i.db, rec)
}

func (i impl) CreateTx(tx *gorm.DB, rec dbmodels.Evento) (id string, err error) {
	err = tx.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByEntity(entity models.EntityKind, entityID string, pagination apimodels.Pagination) (list []dbmodels.Evento, err error) {
	list = []dbmodels.Evento{}
	page, limit := pagination.GetPage()
	offset := (page - 1) * limit
	err = i.db.
		Model(dbmodels.Evento{}).
		Where("entity_kind = ?", entity).
		Where("entity_id = ?", entityID).
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Offset(offset).
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

func (i impl) ListCount(entity models.EntityKind, entityID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.Evento{}).
		Where("entity_kind = ?", entity).
		Where("entity_id = ?", entityID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListTransitions retorna apenas os eventos de mudança de etapa, na ordem de
// ocorrência (empate de created_at desempatado por id).
func (i impl) ListTransitions(entity models.EntityKind, entityID string) (list []dbmodels.Evento, err error) {
	list = []dbmodels.Evento{}
	err = i.db.
		Model(dbmodels.Evento{}).
		Where("entity_kind = ?", entity).
		Where("entity_id = ?", entityID).
		Where("event_type = ?", models.EventTypeStageChange).
		Order("created_at").
		Order("id").
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
