package vagastore

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talentos-backend/lib/funnel/catalog"
	"talentos-backend/models"
	vagaapimodels "talentos-backend/models/api/vaga"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Vaga) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vaga, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(filter vagaapimodels.VagaFilter) (count int64, err error)
	List(filter vagaapimodels.VagaFilter) (list []dbmodels.Vaga, err error)
	ListAbertas() (list []dbmodels.Vaga, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vaga) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Vaga, error) {
	rec := dbmodels.Vaga{}
	err := i.db.
		Model(&dbmodels.Vaga{}).
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
		Model(&dbmodels.Vaga{}).
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
	rec := dbmodels.Vaga{
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

func (i impl) ListCount(filter vagaapimodels.VagaFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Vaga{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("erro ao obter o total de vagas")
		return 0, errors.New("erro ao obter o total de vagas")
	}
	return rowCount, nil
}

func (i impl) List(filter vagaapimodels.VagaFilter) (list []dbmodels.Vaga, err error) {
	list = []dbmodels.Vaga{}
	tx := i.db.
		Model(dbmodels.Vaga{})
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

// ListAbertas devolve as vagas que ainda não chegaram a uma etapa terminal.
func (i impl) ListAbertas() (list []dbmodels.Vaga, err error) {
	list = []dbmodels.Vaga{}
	err = i.db.
		Model(dbmodels.Vaga{}).
		Where("stage_slug not in ?", terminalVagaStages()).
		Preload(clause.Associations).
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

func (i impl) addFilter(tx *gorm.DB, filter vagaapimodels.VagaFilter) {
	if filter.Search != "" {
		tx.Where("titulo ilike ?", "%"+filter.Search+"%")
	}
	if len(filter.StageSlugs) > 0 {
		tx.Where("stage_slug in ?", filter.StageSlugs)
	}
	if filter.ClienteID != "" {
		tx.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.ResponsavelID != "" {
		tx.Where("responsavel_id = ?", filter.ResponsavelID)
	}
	if filter.Cidade != "" {
		tx.Where("cidade ilike ?", "%"+filter.Cidade+"%")
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

func terminalVagaStages() []string {
	result := []string{}
	for _, stage := range catalog.ForEntity(models.EntityVaga).Stages() {
		if stage.Kind.IsTerminal() {
			result = append(result, stage.Slug)
		}
	}
	return result
}
