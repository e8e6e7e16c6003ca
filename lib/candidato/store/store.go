package candidatostore

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	candidatoapimodels "talentos-backend/models/api/candidato"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidato) (id string, err error)
	GetByID(id string) (rec *dbmodels.Candidato, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(filter candidatoapimodels.CandidatoFilter) (count int64, err error)
	List(filter candidatoapimodels.CandidatoFilter) (list []dbmodels.Candidato, err error)
	ListByVaga(vagaID string) (list []dbmodels.Candidato, err error)
	GetByEmail(email string) (rec *dbmodels.Candidato, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidato) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidato, error) {
	rec := dbmodels.Candidato{}
	err := i.db.
		Model(&dbmodels.Candidato{}).
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Candidato{}).
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
	rec := dbmodels.Candidato{
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

func (i impl) ListCount(filter candidatoapimodels.CandidatoFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Candidato{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("erro ao obter o total de candidatos")
		return 0, errors.New("erro ao obter o total de candidatos")
	}
	return rowCount, nil
}

func (i impl) List(filter candidatoapimodels.CandidatoFilter) (list []dbmodels.Candidato, err error) {
	list = []dbmodels.Candidato{}
	tx := i.db.
		Model(dbmodels.Candidato{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	if filter.Sort.CreatedAtDesc {
		tx.Order("created_at desc")
	} else {
		tx.Order("created_at asc")
	}
	err = tx.Preload(clause.Associations).Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListByVaga(vagaID string) (list []dbmodels.Candidato, err error) {
	list = []dbmodels.Candidato{}
	err = i.db.
		Model(dbmodels.Candidato{}).
		Where("vaga_id = ?", vagaID).
		Order("last_stage_change_at asc").
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

func (i impl) GetByEmail(email string) (*dbmodels.Candidato, error) {
	rec := dbmodels.Candidato{}
	err := i.db.
		Model(&dbmodels.Candidato{}).
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

func (i impl) addFilter(tx *gorm.DB, filter candidatoapimodels.CandidatoFilter) {
	if filter.Search != "" {
		tx.Where("(nome || ' ' || sobrenome) ilike ? or email ilike ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if filter.VagaID != "" {
		tx.Where("vaga_id = ?", filter.VagaID)
	}
	if len(filter.StageSlugs) > 0 {
		tx.Where("stage_slug in ?", filter.StageSlugs)
	}
	if filter.Origem != "" {
		tx.Where("origem = ?", filter.Origem)
	}
	if filter.Tag != "" {
		tx.Where("? = any(tags)", filter.Tag)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
