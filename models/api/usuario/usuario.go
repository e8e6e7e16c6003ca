package usuarioapimodels

import (
	"time"

	"github.com/pkg/errors"

	"talentos-backend/models"
	dbmodels "talentos-backend/models/db"
)

type UsuarioData struct {
	Nome      string          `json:"nome"`
	Sobrenome string          `json:"sobrenome"`
	Email     string          `json:"email"`
	Password  string          `json:"password,omitempty"`
	Role      models.UserRole `json:"role"`
}

func (u UsuarioData) Validate(isNew bool) error {
	if u.Nome == "" {
		return errors.New("nome não informado")
	}
	if u.Email == "" {
		return errors.New("e-mail não informado")
	}
	if isNew && len(u.Password) < 8 {
		return errors.New("senha deve ter ao menos 8 caracteres")
	}
	switch u.Role {
	case models.UserRoleAdmin, models.UserRoleRecrutador:
	default:
		return errors.New("perfil de acesso inválido")
	}
	return nil
}

type UsuarioView struct {
	ID           string          `json:"id"`
	Nome         string          `json:"nome"`
	Sobrenome    string          `json:"sobrenome"`
	NomeCompleto string          `json:"nome_completo"`
	Email        string          `json:"email"`
	Role         models.UserRole `json:"role"`
	Ativo        bool            `json:"ativo"`
	CreationDate time.Time       `json:"creation_date"`
}

func Convert(rec dbmodels.Usuario) UsuarioView {
	return UsuarioView{
		ID:           rec.ID,
		Nome:         rec.Nome,
		Sobrenome:    rec.Sobrenome,
		NomeCompleto: rec.GetNomeCompleto(),
		Email:        rec.Email,
		Role:         rec.Role,
		Ativo:        rec.Ativo,
		CreationDate: rec.CreatedAt,
	}
}
