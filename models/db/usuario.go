package dbmodels

import (
	"fmt"
	"strings"

	"talentos-backend/models"
)

type Usuario struct {
	BaseModel
	Nome         string          `gorm:"type:varchar(255)"`
	Sobrenome    string          `gorm:"type:varchar(255)"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(255)"`
	Role         models.UserRole `gorm:"type:varchar(50)"`
	Ativo        bool            `gorm:"default:true"`
}

func (u Usuario) GetNomeCompleto() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", u.Nome, u.Sobrenome))
}
