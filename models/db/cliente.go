package dbmodels

type Cliente struct {
	BaseFunnelModel
	RazaoSocial  string `gorm:"type:varchar(255)"`
	NomeFantasia string `gorm:"type:varchar(255)"`
	Cnpj         string `gorm:"type:varchar(14);index"`
	Cidade       string `gorm:"type:varchar(255)"`
	Uf           string `gorm:"type:varchar(2)"`
	ContatoNome  string `gorm:"type:varchar(255)"`
	ContatoEmail string `gorm:"type:varchar(255)"`
	ContatoFone  string `gorm:"type:varchar(50)"`
	Observacao   string
}
