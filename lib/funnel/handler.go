package funnel

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"talentos-backend/db"
	"talentos-backend/lib/funnel/catalog"
	eventostore "talentos-backend/lib/funnel/event-store"
	usuariostore "talentos-backend/lib/usuario/store"
	"talentos-backend/models"
	dbmodels "talentos-backend/models/db"
)

type MoveRequest struct {
	Entity      models.EntityKind
	EntityID    string
	ToStage     string // slug ou nome de exibição
	UserID      string // vazio = ação do sistema
	Description string
	// ExtraUpdates são aplicados junto com a mudança de etapa, na mesma
	// transação (ex.: vincular/desvincular a vaga de um candidato).
	ExtraUpdates map[string]interface{}
}

type MoveResult struct {
	FromStage     string
	ToStage       string
	CorrelationID string
	MovedBy       string
}

type Provider interface {
	Move(req MoveRequest) (*MoveResult, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:        db.DB,
		store:     eventostore.NewInstance(db.DB),
		userStore: usuariostore.NewInstance(db.DB),
	}
}

type impl struct {
	db        *gorm.DB
	store     eventostore.Provider
	userStore usuariostore.Provider
}

// Move atualiza a etapa do registro e acrescenta o evento de transição na
// mesma transação: ou os dois efeitos são gravados, ou nenhum. A ordem do
// funil não é validada, qualquer etapa pode ir para qualquer etapa; apenas
// etapas terminais (final/congelada/cancelada) bloqueiam novas transições.
func (i impl) Move(req MoveRequest) (*MoveResult, error) {
	logger := log.WithField("entity_kind", req.Entity).
		WithField("entity_id", req.EntityID).
		WithField("to_stage", req.ToStage)

	cat := catalog.ForEntity(req.Entity)
	if cat == nil {
		return nil, errors.New("tipo de registro desconhecido")
	}
	target := cat.Get(req.ToStage)
	if target == nil {
		return nil, errors.New("etapa desconhecida")
	}

	model, err := modelFor(req.Entity)
	if err != nil {
		return nil, err
	}

	userName := systemUserName
	var userID *string
	if req.UserID != "" {
		user, err := i.userStore.GetByID(req.UserID)
		if err != nil {
			logger.WithError(err).Error("erro ao mover registro de etapa, falha ao obter o autor")
			return nil, errors.New("erro ao mover registro de etapa")
		}
		if user == nil {
			return nil, errors.New("autor da ação não encontrado")
		}
		userName = user.GetNomeCompleto()
		userID = &req.UserID
	}

	result := MoveResult{
		ToStage:       target.Slug,
		CorrelationID: uuid.NewString(),
		MovedBy:       userName,
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		var current struct {
			StageSlug string
		}
		err := tx.
			Model(model).
			Where("id = ?", req.EntityID).
			Take(&current).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("registro não encontrado")
			}
			return err
		}
		result.FromStage = current.StageSlug
		if err = checkTransition(cat, current.StageSlug, target.Slug); err != nil {
			return err
		}

		updMap := map[string]interface{}{
			"stage_slug":           target.Slug,
			"last_stage_change_at": time.Now(),
		}
		for field, value := range req.ExtraUpdates {
			updMap[field] = value
		}
		err = tx.
			Model(model).
			Where("id = ?", req.EntityID).
			Updates(updMap).
			Error
		if err != nil {
			return err
		}

		rec := dbmodels.Evento{
			EntityKind:    req.Entity,
			EntityID:      req.EntityID,
			EventType:     models.EventTypeStageChange,
			FromStage:     current.StageSlug,
			ToStage:       target.Slug,
			UserID:        userID,
			UserName:      userName,
			Description:   req.Description,
			CorrelationID: result.CorrelationID,
		}
		_, err = i.store.CreateTx(tx, rec)
		return err
	})
	if err != nil {
		logger.WithError(err).Error("erro ao mover registro de etapa")
		return nil, err
	}
	logger.
		WithField("from_stage", result.FromStage).
		WithField("correlation_id", result.CorrelationID).
		Info("registro movido de etapa")
	return &result, nil
}

// checkTransition valida a mudança de etapa sem tocar o banco. A ordem do
// funil não é validada; etapas terminais bloqueiam qualquer movimento novo.
func checkTransition(cat *catalog.Catalog, currentSlug, targetSlug string) error {
	if currentSlug == targetSlug {
		return errors.New("registro já está nesta etapa")
	}
	if stage := cat.Get(currentSlug); stage != nil && stage.Kind.IsTerminal() {
		return errors.New("registro está em etapa terminal e não pode ser movido")
	}
	return nil
}

func modelFor(entity models.EntityKind) (interface{}, error) {
	switch entity {
	case models.EntityVaga:
		return &dbmodels.Vaga{}, nil
	case models.EntityCandidato:
		return &dbmodels.Candidato{}, nil
	case models.EntityCliente:
		return &dbmodels.Cliente{}, nil
	}
	return nil, errors.New("tipo de registro desconhecido")
}

const systemUserName = "Sistema"
