package notificacaostore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	apimodels "talentos-backend/models/api"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notificacao) (id string, err error)
	List(userID string, filter dbmodels.NotificacaoFilter, pagination apimodels.Pagination) (list []dbmodels.Notificacao, err error)
	ListCount(userID string, filter dbmodels.NotificacaoFilter) (count int64, err error)
	ListNaoLidas(userID string) (list []dbmodels.Notificacao, err error)
	MarkLida(userID, id string) error
	MarkTodasLidas(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notificacao) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(userID string, filter dbmodels.NotificacaoFilter, pagination apimodels.Pagination) (list []dbmodels.Notificacao, err error) {
	list = []dbmodels.Notificacao{}
	page, limit := pagination.GetPage()
	offset := (page - 1) * limit
	tx := i.db.
		Model(dbmodels.Notificacao{}).
		Where("user_id = ?", userID)
	if filter.NaoLidas {
		tx.Where("lida = false")
	}
	err = tx.
		Order("created_at desc").
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

func (i impl) ListCount(userID string, filter dbmodels.NotificacaoFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Notificacao{}).
		Where("user_id = ?", userID)
	if filter.NaoLidas {
		tx.Where("lida = false")
	}
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListNaoLidas(userID string) (list []dbmodels.Notificacao, err error) {
	list = []dbmodels.Notificacao{}
	err = i.db.
		Model(dbmodels.Notificacao{}).
		Where("user_id = ?", userID).
		Where("lida = false").
		Order("created_at").
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

func (i impl) MarkLida(userID, id string) error {
	tx := i.db.
		Model(&dbmodels.Notificacao{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Update("lida", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("notificação não encontrada")
	}
	return nil
}

func (i impl) MarkTodasLidas(userID string) error {
	return i.db.
		Model(&dbmodels.Notificacao{}).
		Where("user_id = ?", userID).
		Where("lida = false").
		Update("lida", true).
		Error
}
