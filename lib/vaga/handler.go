package vaga

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talentos-backend/db"
	"talentos-backend/lib/board"
	clientestore "talentos-backend/lib/cliente/store"
	"talentos-backend/lib/evento"
	"talentos-backend/lib/funnel"
	"talentos-backend/lib/funnel/catalog"
	eventostore "talentos-backend/lib/funnel/event-store"
	"talentos-backend/lib/funnel/timeline"
	usuariostore "talentos-backend/lib/usuario/store"
	"talentos-backend/lib/utils/dateutils"
	initchecker "talentos-backend/lib/utils/init-checker"
	store "talentos-backend/lib/vaga/store"
	"talentos-backend/models"
	vagaapimodels "talentos-backend/models/api/vaga"
	dbmodels "talentos-backend/models/db"

	candidatostore "talentos-backend/lib/candidato/store"
)

type Provider interface {
	Create(userID string, data vagaapimodels.VagaData) (id string, err error)
	Update(userID, id string, data vagaapimodels.VagaData) error
	Get(id string) (item vagaapimodels.VagaView, err error)
	Delete(userID, id string) error
	List(filter vagaapimodels.VagaFilter) (list []vagaapimodels.VagaView, rowCount int64, err error)
	ChangeStage(userID, id string, request vagaapimodels.VagaStageRequest) error
	Timeline(id string) (entries []timeline.Entry, err error)
	Board(id string) (columns []board.Column, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          store.NewInstance(db.DB),
		candidatoStore: candidatostore.NewInstance(db.DB),
		clienteStore:   clientestore.NewInstance(db.DB),
		usuarioStore:   usuariostore.NewInstance(db.DB),
		eventoStore:    eventostore.NewInstance(db.DB),
		boardCache:     board.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidatoStore", instance.candidatoStore,
		"clienteStore", instance.clienteStore,
		"usuarioStore", instance.usuarioStore,
		"eventoStore", instance.eventoStore,
		"boardCache", instance.boardCache,
	)
	Instance = instance
}

type impl struct {
	store          store.Provider
	candidatoStore candidatostore.Provider
	clienteStore   clientestore.Provider
	usuarioStore   usuariostore.Provider
	eventoStore    eventostore.Provider
	boardCache     *board.Cache
}

func (i impl) Create(userID string, data vagaapimodels.VagaData) (id string, err error) {
	logger := log.WithField("user_id", userID)
	cat := catalog.ForEntity(models.EntityVaga)
	rec := dbmodels.Vaga{
		ResponsavelID: data.ResponsavelID,
		Titulo:        data.Titulo,
		Descricao:     data.Descricao,
		Cidade:        data.Cidade,
		Uf:            data.Uf,
		Remota:        data.Remota,
		SalarioDe:     data.SalarioDe,
		SalarioAte:    data.SalarioAte,
		Posicoes:      data.Posicoes,
		PrazoDias:     data.PrazoDias,
	}
	rec.StageSlug = cat.Initial().Slug
	rec.LastStageChangeAt = time.Now()
	if rec.ResponsavelID == "" {
		rec.ResponsavelID = userID
	}
	if data.ClienteID != "" {
		cliente, err := i.clienteStore.GetByID(data.ClienteID)
		if err != nil {
			logger.WithError(err).Error("erro ao criar vaga, falha ao obter o cliente")
			return "", errors.New("erro ao criar vaga")
		}
		if cliente == nil {
			return "", errors.New("cliente não encontrado")
		}
		rec.ClienteID = &data.ClienteID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("erro ao criar vaga")
		return "", errors.New("erro ao criar vaga")
	}
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityVaga,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeCreated,
		Description: "vaga criada",
	})
	logger.
		WithField("vaga_titulo", data.Titulo).
		WithField("rec_id", id).
		Info("vaga criada")
	return id, nil
}

func (i impl) Update(userID, id string, data vagaapimodels.VagaData) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	updMap := map[string]interface{}{
		"titulo":      data.Titulo,
		"descricao":   data.Descricao,
		"cidade":      data.Cidade,
		"uf":          data.Uf,
		"remota":      data.Remota,
		"salario_de":  data.SalarioDe,
		"salario_ate": data.SalarioAte,
		"posicoes":    data.Posicoes,
		"prazo_dias":  data.PrazoDias,
	}
	if data.ResponsavelID != "" {
		updMap["responsavel_id"] = data.ResponsavelID
	}
	if data.ClienteID != "" {
		updMap["cliente_id"] = data.ClienteID
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("erro ao atualizar vaga")
		return err
	}
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityVaga,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeUpdated,
		Description: "dados da vaga atualizados",
	})
	logger.Info("vaga atualizada")
	return nil
}

func (i impl) Get(id string) (item vagaapimodels.VagaView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao obter vaga")
		return vagaapimodels.VagaView{}, errors.New("erro ao obter vaga")
	}
	if rec == nil {
		return vagaapimodels.VagaView{}, errors.New("vaga não encontrada")
	}
	return i.toView(*rec), nil
}

func (i impl) Delete(userID, id string) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("erro ao excluir vaga")
		return errors.New("erro ao excluir vaga")
	}
	i.boardCache.Invalidate(id)
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityVaga,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeArchived,
		Description: "vaga arquivada",
	})
	logger.Info("vaga excluída")
	return nil
}

func (i impl) List(filter vagaapimodels.VagaFilter) (list []vagaapimodels.VagaView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("erro ao obter a lista de vagas")
		return nil, 0, errors.New("erro ao obter a lista de vagas")
	}
	result := make([]vagaapimodels.VagaView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, i.toView(rec))
	}
	return result, rowCount, nil
}

func (i impl) ChangeStage(userID, id string, request vagaapimodels.VagaStageRequest) error {
	_, err := funnel.Instance.Move(funnel.MoveRequest{
		Entity:      models.EntityVaga,
		EntityID:    id,
		ToStage:     request.StageSlug,
		UserID:      userID,
		Description: request.Comment,
	})
	return err
}

func (i impl) Timeline(id string) (entries []timeline.Entry, err error) {
	recList, err := i.eventoStore.ListTransitions(models.EntityVaga, id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao obter a linha do tempo da vaga")
		return nil, errors.New("erro ao obter a linha do tempo da vaga")
	}
	return timeline.Build(models.EntityVaga, recList), nil
}

// Board devolve o kanban de candidatos da vaga. Leitura passa pelo cache;
// cache frio reconstrói as colunas a partir do banco.
func (i impl) Board(id string) (columns []board.Column, err error) {
	if columns, ok := i.boardCache.Get(id); ok {
		return columns, nil
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao montar o kanban da vaga")
		return nil, errors.New("erro ao montar o kanban da vaga")
	}
	if rec == nil {
		return nil, errors.New("vaga não encontrada")
	}
	candidatos, err := i.candidatoStore.ListByVaga(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao montar o kanban da vaga")
		return nil, errors.New("erro ao montar o kanban da vaga")
	}
	cat := catalog.ForEntity(models.EntityCandidato)
	columns = make([]board.Column, 0, len(cat.Stages()))
	for _, stage := range cat.Stages() {
		column := board.Column{
			StageSlug: stage.Slug,
			Nome:      stage.Nome,
			Color:     stage.Color,
			Cards:     []board.Card{},
		}
		for _, candidato := range candidatos {
			if candidato.StageSlug != stage.Slug {
				continue
			}
			column.Cards = append(column.Cards, board.Card{
				ID:        candidato.ID,
				Titulo:    candidato.GetNomeCompleto(),
				Subtitulo: candidato.Cidade,
				StageSlug: candidato.StageSlug,
				MovedAt:   candidato.LastStageChangeAt,
			})
		}
		columns = append(columns, column)
	}
	i.boardCache.Set(id, columns)
	return columns, nil
}

func (i impl) toView(rec dbmodels.Vaga) vagaapimodels.VagaView {
	cat := catalog.ForEntity(models.EntityVaga)
	view := vagaapimodels.VagaConvert(rec)
	if stage := cat.Get(rec.StageSlug); stage != nil {
		view.StageNome = stage.Nome
		view.StageColor = stage.Color
	}
	view.Progresso = cat.Progress(rec.StageSlug)
	view.DiasNaEtapa = dateutils.BusinessDaysFromNow(rec.LastStageChangeAt)
	lastChange := rec.LastStageChangeAt
	// prazo zero significa vaga sem prazo definido
	view.DentroDoPrazo = rec.PrazoDias == 0 || dateutils.IsWithinDeadline(&lastChange, rec.PrazoDias)
	return view
}
