package sharelink

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talentos-backend/config"
	"talentos-backend/db"
	"talentos-backend/lib/board"
	candidatostore "talentos-backend/lib/candidato/store"
	"talentos-backend/lib/evento"
	"talentos-backend/lib/funnel/catalog"
	"talentos-backend/lib/notificacao"
	store "talentos-backend/lib/sharelink/store"
	initchecker "talentos-backend/lib/utils/init-checker"
	vagastore "talentos-backend/lib/vaga/store"
	"talentos-backend/models"
	candidatoapimodels "talentos-backend/models/api/candidato"
	sharelinkapimodels "talentos-backend/models/api/sharelink"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Create(userID, vagaID string, data sharelinkapimodels.ShareLinkData) (item sharelinkapimodels.ShareLinkView, err error)
	Update(userID, id string, data sharelinkapimodels.ShareLinkData) error
	Toggle(userID, id string, ativo bool) error
	// Regenerate troca o token; o link antigo deixa de funcionar na hora.
	Regenerate(userID, id string) (item sharelinkapimodels.ShareLinkView, err error)
	Delete(userID, id string) error
	ListByVaga(vagaID string) (list []sharelinkapimodels.ShareLinkView, err error)
	GetPublicVaga(token string) (item sharelinkapimodels.PublicVagaView, err error)
	// Apply registra a inscrição pública: cria o candidato já vinculado à
	// vaga, no banco de talentos, e notifica o responsável.
	Apply(token string, request candidatoapimodels.ApplicationRequest) (candidatoID string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          store.NewInstance(db.DB),
		vagaStore:      vagastore.NewInstance(db.DB),
		candidatoStore: candidatostore.NewInstance(db.DB),
		boardCache:     board.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"vagaStore", instance.vagaStore,
		"candidatoStore", instance.candidatoStore,
		"boardCache", instance.boardCache,
	)
	Instance = instance
}

type impl struct {
	store          store.Provider
	vagaStore      vagastore.Provider
	candidatoStore candidatostore.Provider
	boardCache     *board.Cache
}

func (i impl) Create(userID, vagaID string, data sharelinkapimodels.ShareLinkData) (item sharelinkapimodels.ShareLinkView, err error) {
	logger := log.WithField("user_id", userID).
		WithField("vaga_id", vagaID)
	vagaRec, err := i.vagaStore.GetByID(vagaID)
	if err != nil {
		logger.WithError(err).Error("erro ao criar link de divulgação")
		return sharelinkapimodels.ShareLinkView{}, errors.New("erro ao criar link de divulgação")
	}
	if vagaRec == nil {
		return sharelinkapimodels.ShareLinkView{}, errors.New("vaga não encontrada")
	}
	rec := dbmodels.ShareLink{
		VagaID:      vagaID,
		Token:       uuid.NewString(),
		Ativo:       true,
		Titulo:      data.Titulo,
		ExpiresAt:   data.ExpiresAt,
		CreatedByID: userID,
	}
	if rec.Titulo == "" {
		rec.Titulo = vagaRec.Titulo
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("erro ao criar link de divulgação")
		return sharelinkapimodels.ShareLinkView{}, errors.New("erro ao criar link de divulgação")
	}
	rec.ID = id
	logger.
		WithField("rec_id", id).
		Info("link de divulgação criado")
	return sharelinkapimodels.Convert(rec, i.publicURL(rec.Token)), nil
}

func (i impl) Update(userID, id string, data sharelinkapimodels.ShareLinkData) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	updMap := map[string]interface{}{
		"titulo":     data.Titulo,
		"expires_at": data.ExpiresAt,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("erro ao atualizar link de divulgação")
		return err
	}
	logger.Info("link de divulgação atualizado")
	return nil
}

func (i impl) Toggle(userID, id string, ativo bool) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	err := i.store.Update(id, map[string]interface{}{"ativo": ativo})
	if err != nil {
		logger.WithError(err).Error("erro ao alterar o link de divulgação")
		return err
	}
	logger.WithField("ativo", ativo).Info("link de divulgação alterado")
	return nil
}

func (i impl) Regenerate(userID, id string) (item sharelinkapimodels.ShareLinkView, err error) {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	token := uuid.NewString()
	err = i.store.Update(id, map[string]interface{}{"token": token})
	if err != nil {
		logger.WithError(err).Error("erro ao regenerar o link de divulgação")
		return sharelinkapimodels.ShareLinkView{}, err
	}
	rec, err := i.store.GetByID(id)
	if err != nil || rec == nil {
		return sharelinkapimodels.ShareLinkView{}, errors.New("erro ao regenerar o link de divulgação")
	}
	logger.Info("link de divulgação regenerado")
	return sharelinkapimodels.Convert(*rec, i.publicURL(rec.Token)), nil
}

func (i impl) Delete(userID, id string) error {
	logger := log.WithField("user_id", userID).
		WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("erro ao excluir o link de divulgação")
		return errors.New("erro ao excluir o link de divulgação")
	}
	logger.Info("link de divulgação excluído")
	return nil
}

func (i impl) ListByVaga(vagaID string) (list []sharelinkapimodels.ShareLinkView, err error) {
	recList, err := i.store.ListByVaga(vagaID)
	if err != nil {
		log.WithField("vaga_id", vagaID).WithError(err).Error("erro ao obter os links de divulgação")
		return nil, errors.New("erro ao obter os links de divulgação")
	}
	result := make([]sharelinkapimodels.ShareLinkView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, sharelinkapimodels.Convert(rec, i.publicURL(rec.Token)))
	}
	return result, nil
}

func (i impl) GetPublicVaga(token string) (item sharelinkapimodels.PublicVagaView, err error) {
	rec, err := i.resolveUsable(token)
	if err != nil {
		return sharelinkapimodels.PublicVagaView{}, err
	}
	vagaRec, err := i.vagaStore.GetByID(rec.VagaID)
	if err != nil || vagaRec == nil {
		return sharelinkapimodels.PublicVagaView{}, errors.New("vaga não encontrada")
	}
	item = sharelinkapimodels.PublicVagaView{
		Titulo:     vagaRec.Titulo,
		Descricao:  vagaRec.Descricao,
		Cidade:     vagaRec.Cidade,
		Uf:         vagaRec.Uf,
		Remota:     vagaRec.Remota,
		LinkTitulo: rec.Titulo,
	}
	if vagaRec.Cliente != nil {
		item.ClienteNome = vagaRec.Cliente.NomeFantasia
	}
	return item, nil
}

func (i impl) Apply(token string, request candidatoapimodels.ApplicationRequest) (candidatoID string, err error) {
	logger := log.WithField("share_token", token)
	rec, err := i.resolveUsable(token)
	if err != nil {
		return "", err
	}
	vagaRec, err := i.vagaStore.GetByID(rec.VagaID)
	if err != nil || vagaRec == nil {
		return "", errors.New("vaga não encontrada")
	}

	cat := catalog.ForEntity(models.EntityCandidato)
	candidato := dbmodels.Candidato{
		VagaID:            &rec.VagaID,
		Nome:              request.Nome,
		Sobrenome:         request.Sobrenome,
		Email:             request.Email,
		Telefone:          request.Telefone,
		LinkedIn:          request.LinkedIn,
		Origem:            models.OrigemLinkVaga,
		PretensaoSalarial: request.PretensaoSalarial,
	}
	candidato.StageSlug = cat.Initial().Slug
	candidato.LastStageChangeAt = time.Now()
	candidatoID, err = i.candidatoStore.Create(candidato)
	if err != nil {
		logger.WithError(err).Error("erro ao registrar inscrição pública")
		return "", errors.New("erro ao registrar inscrição")
	}
	i.boardCache.Invalidate(rec.VagaID)

	evento.Instance.LogEvent(evento.LogParams{
		Entity:      models.EntityCandidato,
		EntityID:    candidatoID,
		EventType:   models.EventTypeApplication,
		Description: "inscrição recebida pelo link " + rec.Titulo,
	})
	notificacao.Instance.Notify(vagaRec.ResponsavelID, rec.VagaID,
		"Nova inscrição",
		fmt.Sprintf("%v %v se inscreveu na vaga %v", request.Nome, request.Sobrenome, vagaRec.Titulo))
	logger.
		WithField("candidato_id", candidatoID).
		WithField("vaga_id", rec.VagaID).
		Info("inscrição pública registrada")
	return candidatoID, nil
}

func (i impl) resolveUsable(token string) (*dbmodels.ShareLink, error) {
	rec, err := i.store.GetByToken(token)
	if err != nil {
		log.WithField("share_token", token).WithError(err).Error("erro ao resolver o link de divulgação")
		return nil, errors.New("erro ao resolver o link de divulgação")
	}
	if rec == nil || !rec.IsUsable(time.Now()) {
		return nil, errors.New("link inválido ou expirado")
	}
	return rec, nil
}

func (i impl) publicURL(token string) string {
	return fmt.Sprintf("%v/inscricao/%v", config.Conf.ShareLink.PublicHost, token)
}
