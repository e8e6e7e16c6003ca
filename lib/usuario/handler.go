package usuario

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"talentos-backend/db"
	store "talentos-backend/lib/usuario/store"
	initchecker "talentos-backend/lib/utils/init-checker"
	usuarioapimodels "talentos-backend/models/api/usuario"
	dbmodels "talentos-backend/models/db"
)

type Provider interface {
	Create(data usuarioapimodels.UsuarioData) (id string, err error)
	Update(id string, data usuarioapimodels.UsuarioData) error
	Get(id string) (item usuarioapimodels.UsuarioView, err error)
	List() (list []usuarioapimodels.UsuarioView, err error)
	Deactivate(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(data usuarioapimodels.UsuarioData) (id string, err error) {
	logger := log.WithField("user_email", data.Email)
	existente, err := i.store.GetByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("erro ao criar usuário")
		return "", errors.New("erro ao criar usuário")
	}
	if existente != nil {
		return "", errors.New("já existe um usuário com este e-mail")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Error("erro ao criar usuário")
		return "", errors.New("erro ao criar usuário")
	}
	rec := dbmodels.Usuario{
		Nome:         data.Nome,
		Sobrenome:    data.Sobrenome,
		Email:        data.Email,
		PasswordHash: string(hash),
		Role:         data.Role,
		Ativo:        true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("erro ao criar usuário")
		return "", errors.New("erro ao criar usuário")
	}
	logger.WithField("rec_id", id).Info("usuário criado")
	return id, nil
}

func (i impl) Update(id string, data usuarioapimodels.UsuarioData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"nome":      data.Nome,
		"sobrenome": data.Sobrenome,
		"email":     data.Email,
		"role":      data.Role,
	}
	if data.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.WithError(err).Error("erro ao atualizar usuário")
			return errors.New("erro ao atualizar usuário")
		}
		updMap["password_hash"] = string(hash)
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("erro ao atualizar usuário")
		return errors.New("erro ao atualizar usuário")
	}
	logger.Info("usuário atualizado")
	return nil
}

func (i impl) Get(id string) (item usuarioapimodels.UsuarioView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("erro ao obter usuário")
		return usuarioapimodels.UsuarioView{}, errors.New("erro ao obter usuário")
	}
	if rec == nil {
		return usuarioapimodels.UsuarioView{}, errors.New("usuário não encontrado")
	}
	return usuarioapimodels.Convert(*rec), nil
}

func (i impl) List() (list []usuarioapimodels.UsuarioView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("erro ao obter a lista de usuários")
		return nil, errors.New("erro ao obter a lista de usuários")
	}
	result := make([]usuarioapimodels.UsuarioView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, usuarioapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Deactivate(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Update(id, map[string]interface{}{"ativo": false})
	if err != nil {
		logger.WithError(err).Error("erro ao desativar usuário")
		return errors.New("erro ao desativar usuário")
	}
	logger.Info("usuário desativado")
	return nil
}
