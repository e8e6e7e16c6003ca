package dbmodels

import (
	"time"

	"github.com/lib/pq"

	"talentos-backend/models"
)

type Candidato struct {
	BaseFunnelModel
	VagaID            *string `gorm:"type:varchar(36);index"`
	Vaga              *Vaga   `gorm:"foreignKey:VagaID"`
	Nome              string  `gorm:"type:varchar(255)"`
	Sobrenome         string  `gorm:"type:varchar(255)"`
	Email             string  `gorm:"type:varchar(255);index"`
	Telefone          string  `gorm:"type:varchar(50)"`
	Cidade            string  `gorm:"type:varchar(255)"`
	Uf                string  `gorm:"type:varchar(2)"`
	LinkedIn          string  `gorm:"type:varchar(255)"`
	Origem            models.CandidatoOrigem `gorm:"type:varchar(50)"`
	PretensaoSalarial int
	Tags              pq.StringArray `gorm:"type:text[]"`
	Observacao        string
	DataNascimento    time.Time
}

func (c Candidato) GetNomeCompleto() string {
	if c.Sobrenome == "" {
		return c.Nome
	}
	return c.Nome + " " + c.Sobrenome
}
