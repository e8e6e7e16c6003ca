package cliente

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talentos-backend/db"
	store "talentos-backend/lib/cliente/store"
	"talentos-backend/lib/cnpj"
	"talentos-backend/lib/evento"
	"talentos-backend/lib/funnel"
	"talentos-backend/lib/funnel/catalog"
	eventostore "talentos-backend/lib/funnel/event-store"
	"talentos-backend/lib/funnel/timeline"
	"talentos-backend/lib/utils/helpers"
	initchecker "talentos-backend/lib/utils/init-checker"
	"talentos-backend/models"
	clienteapimodels "talentos-backend/models/api/cliente"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Create(userID string, data clienteapimodels.ClienteData) (id string, err error)
	// CreateFromCnpj pré-preenche o cadastro com os dados da consulta de CNPJ.
	CreateFromCnpj(ctx context.Context, userID, numero string) (id string, err error)
	Update(userID, id string, data clienteapimodels.ClienteData) error
	Get(id string) (item clienteapimodels.ClienteView, err error)
	Delete(userID, id string) error
	List(filter clienteapimodels.ClienteFilter) (list []clienteapimodels.ClienteView, rowCount int64, err error)
	ChangeStage(userID, id string, request clienteapimodels.ClienteStageRequest) error
	Timeline(id string) (entries []timeline.Entry, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       store.NewInstance(db.DB),
		eventoStore: eventostore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"eventoStore", instance.eventoStore,
	)
	Instance = instance
}

type impl struct {
	store       store.Provider
	eventoStore eventostore.Provider
}

func (i impl) Create(userID string, data clienteapimodels.ClienteData) (id string, err error) {
	logger := log.WithField("user_id", userID)
	cat := catalog.ForEntity(models.EntityCliente)
	numero := helpers.OnlyDigits(data.Cnpj)
	if numero != "" {
		if err = cnpj.Validate(numero); err != nil {
			return "", err
		}
		existente, err := i.store.GetByCnpj(numero)
		if err != nil {
			logger.WithError(err).Error("erro ao criar cliente")
			return "", errors.New("erro ao criar cliente")
		}
		if existente != nil {
			return "", errors.New("já existe um cliente com este CNPJ")
		}
	}
	rec := dbmodels.Cliente{
		RazaoSocial:  data.RazaoSocial,
		NomeFantasia: data.NomeFantasia,
		Cnpj:         numero,
		Cidade:       data.Cidade,
		Uf:           data.Uf,
		ContatoNome:  data.ContatoNome,
		ContatoEmail: data.ContatoEmail,
		ContatoFone:  data.ContatoFone,
		Observacao:   data.Observacao,
	}
	rec.StageSlug = cat.Initial().Slug
	rec.LastStageChangeAt = time.Now()
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("erro ao criar cliente")
		return "", errors.New("erro ao criar cliente")
	}
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCliente,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeCreated,
		Description: "cliente cadastrado",
	})
	logger.
		WithField("cliente_nome", rec.NomeFantasia).
		WithField("rec_id", id).
		Info("cliente cadastrado")
	return id, nil
}

func (i impl) CreateFromCnpj(ctx context.Context, userID, numero string) (id string, err error) {
	view, err := cnpj.Instance.Lookup(ctx, numero)
	if err != nil {
		return "", err
	}
	return i.Create(userID, clienteapimodels.ClienteData{
		RazaoSocial:  view.RazaoSocial,
		NomeFantasia: view.NomeFantasia,
		Cnpj:         view.Cnpj,
		Cidade:       view.Cidade,
		Uf:           view.Uf,
	})
}

func (i impl) Update(userID, id string, data clienteapimodels.ClienteData) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	updMap := map[string]interface{}{
		"razao_social":  data.RazaoSocial,
		"nome_fantasia": data.NomeFantasia,
		"cidade":        data.Cidade,
		"uf":            data.Uf,
		"contato_nome":  data.ContatoNome,
		"contato_email": data.ContatoEmail,
		"contato_fone":  data.ContatoFone,
		"observacao":    data.Observacao,
	}
	if numero := helpers.OnlyDigits(data.Cnpj); numero != "" {
		if err := cnpj.Validate(numero); err != nil {
			return err
		}
		updMap["cnpj"] = numero
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("erro ao atualizar cliente")
		return err
	}
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCliente,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeUpdated,
		Description: "dados do cliente atualizados",
	})
	logger.Info("cliente atualizado")
	return nil
}

func (i impl) Get(id string) (item clienteapimodels.ClienteView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao obter cliente")
		return clienteapimodels.ClienteView{}, errors.New("erro ao obter cliente")
	}
	if rec == nil {
		return clienteapimodels.ClienteView{}, errors.New("cliente não encontrado")
	}
	return i.toView(*rec), nil
}

func (i impl) Delete(userID, id string) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("erro ao excluir cliente")
		return errors.New("erro ao excluir cliente")
	}
	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCliente,
		EntityID:    id,
		UserID:      userID,
		EventType:   models.EventTypeArchived,
		Description: "cliente arquivado",
	})
	logger.Info("cliente excluído")
	return nil
}

func (i impl) List(filter clienteapimodels.ClienteFilter) (list []clienteapimodels.ClienteView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("erro ao obter a lista de clientes")
		return nil, 0, errors.New("erro ao obter a lista de clientes")
	}
	result := make([]clienteapimodels.ClienteView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, i.toView(rec))
	}
	return result, rowCount, nil
}

func (i impl) ChangeStage(userID, id string, request clienteapimodels.ClienteStageRequest) error {
	_, err := funnel.Instance.Move(funnel.MoveRequest{
		Entity:      models.EntityCliente,
		EntityID:    id,
		ToStage:     request.StageSlug,
		UserID:      userID,
		Description: request.Comment,
	})
	return err
}

func (i impl) Timeline(id string) (entries []timeline.Entry, err error) {
	recList, err := i.eventoStore.ListTransitions(models.EntityCliente, id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao obter a linha do tempo do cliente")
		return nil, errors.New("erro ao obter a linha do tempo do cliente")
	}
	return timeline.Build(models.EntityCliente, recList), nil
}

func (i impl) toView(rec dbmodels.Cliente) clienteapimodels.ClienteView {
	cat := catalog.ForEntity(models.EntityCliente)
	view := clienteapimodels.ClienteConvert(rec)
	if stage := cat.Get(rec.StageSlug); stage != nil {
		view.StageNome = stage.Nome
		view.StageColor = stage.Color
	}
	view.Progresso = cat.Progress(rec.StageSlug)
	return view
}
