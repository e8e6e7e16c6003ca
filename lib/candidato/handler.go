package candidato

import (
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talentos-backend/db"
	"talentos-backend/lib/board"
	store "talentos-backend/lib/candidato/store"
	"talentos-backend/lib/evento"
	"talentos-backend/lib/funnel"
	"talentos-backend/lib/funnel/catalog"
	eventostore "talentos-backend/lib/funnel/event-store"
	"talentos-backend/lib/funnel/timeline"
	"talentos-backend/lib/utils/dateutils"
	initchecker "talentos-backend/lib/utils/init-checker"
	vagastore "talentos-backend/lib/vaga/store"
	connectionhub "talentos-backend/lib/ws/hub/connection-hub"
	"talentos-backend/models"
	candidatoapimodels "talentos-backend/models/api/candidato"
	dbmodels "talentos-backend/models/db"
	wsmodels "talentos-backend/models/ws"
)

type Provider interface {
	Create(userID string, data candidatoapimodels.CandidatoData) (id string, err error)
	Update(userID, id string, data candidatoapimodels.CandidatoData) error
	Get(id string) (item candidatoapimodels.CandidatoView, err error)
	Delete(userID, id string) error
	List(filter candidatoapimodels.CandidatoFilter) (list []candidatoapimodels.CandidatoView, rowCount int64, err error)
	ChangeStage(userID, id string, request candidatoapimodels.CandidatoStageRequest) error
	JoinVaga(userID, id, vagaID string) error
	IsolateVaga(userID, id string) error
	AddNote(userID, id string, request candidatoapimodels.CandidatoNoteRequest) error
	Timeline(id string) (entries []timeline.Entry, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       store.NewInstance(db.DB),
		vagaStore:   vagastore.NewInstance(db.DB),
		eventoStore: eventostore.NewInstance(db.DB),
		boardCache:  board.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"vagaStore", instance.vagaStore,
		"eventoStore", instance.eventoStore,
		"boardCache", instance.boardCache,
	)
	Instance = instance
}

type impl struct {
	store       store.Provider
	vagaStore   vagastore.Provider
	eventoStore eventostore.Provider
	boardCache  *board.Cache
}

func (i impl) Create(userID string, data candidatoapimodels.CandidatoData) (id string, err error) {
	logger := log.WithField("user_id", userID)
	cat := catalog.ForEntity(models.EntityCandidato)
	rec := dbmodels.Candidato{
		Nome:              data.Nome,
		Sobrenome:         data.Sobrenome,
		Email:             data.Email,
		Telefone:          data.Telefone,
		Cidade:            data.Cidade,
		Uf:                data.Uf,
		LinkedIn:          data.LinkedIn,
		Origem:            data.Origem,
		PretensaoSalarial: data.PretensaoSalarial,
		Tags:              data.Tags,
		Observacao:        data.Observacao,
		DataNascimento:    data.DataNascimento,
	}
	rec.StageSlug = cat.Initial().Slug
	rec.LastStageChangeAt = time.Now()
	if data.VagaID != "" {
		vagaRec, err := i.vagaStore.GetByID(data.VagaID)
		if err != nil {
			logger.WithError(err).Error("erro ao criar candidato, falha ao obter a vaga")
			return "", errors.New("erro ao criar candidato")
		}
		if vagaRec == nil {
			return "", errors.New("vaga não encontrada")
		}
		rec.VagaID = &data.VagaID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("erro ao criar candidato")
		return "", errors.New("erro ao criar candidato")
	}
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCandidato,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeCreated,
		Description: "candidato cadastrado",
	})
	if data.VagaID != "" {
		i.boardCache.Invalidate(data.VagaID)
		evento.Instance.LogEvent(evento.LogParams{
			Entity:      models.EntityCandidato,
			EntityID:    id,
			UserID:      userID,
			EventType:   models.EventTypeLinked,
			Description: "candidato vinculado à vaga",
		})
	}
	logger.
		WithField("candidato_nome", rec.GetNomeCompleto()).
		WithField("rec_id", id).
		Info("candidato cadastrado")
	return id, nil
}

func (i impl) Update(userID, id string, data candidatoapimodels.CandidatoData) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	updMap := map[string]interface{}{
		"nome":               data.Nome,
		"sobrenome":          data.Sobrenome,
		"email":              data.Email,
		"telefone":           data.Telefone,
		"cidade":             data.Cidade,
		"uf":                 data.Uf,
		"linked_in":          data.LinkedIn,
		"pretensao_salarial": data.PretensaoSalarial,
		"observacao":         data.Observacao,
	}
	if data.Origem != "" {
		updMap["origem"] = data.Origem
	}
	if data.Tags != nil {
		updMap["tags"] = pq.StringArray(data.Tags)
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("erro ao atualizar candidato")
		return err
	}
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCandidato,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeUpdated,
		Description: "dados do candidato atualizados",
	})
	logger.Info("candidato atualizado")
	return nil
}

func (i impl) Get(id string) (item candidatoapimodels.CandidatoView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao obter candidato")
		return candidatoapimodels.CandidatoView{}, errors.New("erro ao obter candidato")
	}
	if rec == nil {
		return candidatoapimodels.CandidatoView{}, errors.New("candidato não encontrado")
	}
	return i.toView(*rec), nil
}

func (i impl) Delete(userID, id string) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("erro ao excluir candidato")
		return errors.New("erro ao excluir candidato")
	}
	if rec == nil {
		return errors.New("candidato não encontrado")
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("erro ao excluir candidato")
		return errors.New("erro ao excluir candidato")
	}
	if rec.VagaID != nil {
		i.boardCache.Invalidate(*rec.VagaID)
	}
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCandidato,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeArchived,
		Description: "candidato arquivado",
	})
	logger.Info("candidato excluído")
	return nil
}

func (i impl) List(filter candidatoapimodels.CandidatoFilter) (list []candidatoapimodels.CandidatoView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("erro ao obter a lista de candidatos")
		return nil, 0, errors.New("erro ao obter a lista de candidatos")
	}
	result := make([]candidatoapimodels.CandidatoView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, i.toView(rec))
	}
	return result, rowCount, nil
}

// ChangeStage aplica o movimento no cache do kanban antes da escrita no banco
// resolver; se a transação falhar, o rollback devolve o card à coluna original.
func (i impl) ChangeStage(userID, id string, request candidatoapimodels.CandidatoStageRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao mover candidato de etapa")
		return errors.New("erro ao mover candidato de etapa")
	}
	if rec == nil {
		return errors.New("candidato não encontrado")
	}

	var rollback func()
	cat := catalog.ForEntity(models.EntityCandidato)
	if rec.VagaID != nil {
		if target := cat.Get(request.StageSlug); target != nil {
			// board fora do cache segue direto para o banco
			rollback, _ = i.boardCache.ApplyMove(*rec.VagaID, id, target.Slug)
		}
	}

	result, err := funnel.Instance.Move(funnel.MoveRequest{
		Entity:      models.EntityCandidato,
		EntityID:    id,
		ToStage:     request.StageSlug,
		UserID:      userID,
		Description: request.Comment,
	})
	if err != nil {
		if rollback != nil {
			rollback()
		}
		return err
	}

	if rec.VagaID != nil {
		i.notifyBoardMove(*rec.VagaID, id, result)
	}
	return nil
}

// JoinVaga vincula o candidato a uma vaga. Candidato ainda no banco de
// talentos entra direto na triagem da vaga, na mesma transação do vínculo.
func (i impl) JoinVaga(userID, id, vagaID string) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id).
		WithField("vaga_id", vagaID)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("erro ao vincular candidato à vaga")
		return errors.New("erro ao vincular candidato à vaga")
	}
	if rec == nil {
		return errors.New("candidato não encontrado")
	}
	vagaRec, err := i.vagaStore.GetByID(vagaID)
	if err != nil {
		logger.WithError(err).Error("erro ao vincular candidato à vaga")
		return errors.New("erro ao vincular candidato à vaga")
	}
	if vagaRec == nil {
		return errors.New("vaga não encontrada")
	}

	cat := catalog.ForEntity(models.EntityCandidato)
	if rec.StageSlug == cat.Initial().Slug {
		_, err = funnel.Instance.Move(funnel.MoveRequest{
			Entity:       models.EntityCandidato,
			EntityID:     id,
			ToStage:      catalog.CandidatoStageTriagem,
			UserID:       userID,
			Description:  "vinculado à vaga " + vagaRec.Titulo,
			ExtraUpdates: map[string]interface{}{"vaga_id": vagaID},
		})
		if err != nil {
			return err
		}
	} else {
		err = i.store.Update(id, map[string]interface{}{"vaga_id": vagaID})
		if err != nil {
			logger.WithError(err).Error("erro ao vincular candidato à vaga")
			return errors.New("erro ao vincular candidato à vaga")
		}
	}
	if rec.VagaID != nil {
		i.boardCache.Invalidate(*rec.VagaID)
	}
	i.boardCache.Invalidate(vagaID)
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCandidato,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeLinked,
		Description: "candidato vinculado à vaga " + vagaRec.Titulo,
	})
	logger.Info("candidato vinculado à vaga")
	return nil
}

// IsolateVaga desfaz o vínculo e devolve o candidato ao banco de talentos.
func (i impl) IsolateVaga(userID, id string) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("erro ao desvincular candidato da vaga")
		return errors.New("erro ao desvincular candidato da vaga")
	}
	if rec == nil {
		return errors.New("candidato não encontrado")
	}
	if rec.VagaID == nil {
		return errors.New("candidato não está vinculado a uma vaga")
	}
	vagaID := *rec.VagaID

	cat := catalog.ForEntity(models.EntityCandidato)
	if rec.StageSlug != cat.Initial().Slug {
		_, err = funnel.Instance.Move(funnel.MoveRequest{
			Entity:       models.EntityCandidato,
			EntityID:     id,
			ToStage:      cat.Initial().Slug,
			UserID:       userID,
			Description:  "desvinculado da vaga",
			ExtraUpdates: map[string]interface{}{"vaga_id": nil},
		})
		if err != nil {
			return err
		}
	} else {
		err = i.store.Update(id, map[string]interface{}{"vaga_id": nil})
		if err != nil {
			logger.WithError(err).Error("erro ao desvincular candidato da vaga")
			return errors.New("erro ao desvincular candidato da vaga")
		}
	}
	i.boardCache.Invalidate(vagaID)
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCandidato,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeUnlinked,
		Description: "candidato desvinculado da vaga",
	})
	logger.Info("candidato desvinculado da vaga")
	return nil
}

func (i impl) AddNote(userID, id string, request candidatoapimodels.CandidatoNoteRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao registrar anotação")
		return errors.New("erro ao registrar anotação")
	}
	if rec == nil {
		return errors.New("candidato não encontrado")
	}
	return evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCandidato,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeComment,
		Description: request.Texto,
	})
}

func (i impl) Timeline(id string) (entries []timeline.Entry, err error) {
	recList, err := i.eventoStore.ListTransitions(models.EntityCandidato, id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao obter a linha do tempo do candidato")
		return nil, errors.New("erro ao obter a linha do tempo do candidato")
	}
	return timeline.Build(models.EntityCandidato, recList), nil
}

func (i impl) notifyBoardMove(vagaID, candidatoID string, result *funnel.MoveResult) {
	vagaRec, err := i.vagaStore.GetByID(vagaID)
	if err != nil || vagaRec == nil {
		return
	}
	connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
		ToUserID: vagaRec.ResponsavelID,
		Type:     wsmodels.MsgTypeBoardMove,
		SentAt:   time.Now(),
		Data: wsmodels.BoardMoveData{
			EntityKind: string(models.EntityCandidato),
			EntityID:   candidatoID,
			FromStage:  result.FromStage,
			ToStage:    result.ToStage,
			MovedBy:    result.MovedBy,
		},
	})
}

func (i impl) toView(rec dbmodels.Candidato) candidatoapimodels.CandidatoView {
	cat := catalog.ForEntity(models.EntityCandidato)
	view := candidatoapimodels.CandidatoConvert(rec)
	if stage := cat.Get(rec.StageSlug); stage != nil {
		view.StageNome = stage.Nome
		view.StageColor = stage.Color
	}
	view.Progresso = cat.Progress(rec.StageSlug)
	view.DiasNaEtapa = dateutils.BusinessDaysFromNow(rec.LastStageChangeAt)
	return view
}
