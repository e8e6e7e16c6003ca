package dbmodels

type Vaga struct {
	BaseFunnelModel
	ClienteID     *string  `gorm:"type:varchar(36);index"`
	Cliente       *Cliente `gorm:"foreignKey:ClienteID"`
	ResponsavelID string   `gorm:"type:varchar(36)"`
	Responsavel   *Usuario `gorm:"foreignKey:ResponsavelID"`
	Titulo        string   `gorm:"type:varchar(255)"`
	Descricao     string
	Cidade        string `gorm:"type:varchar(255)"`
	Uf            string `gorm:"type:varchar(2)"`
	Remota        bool
	SalarioDe     int `gorm:"column:salario_de"`
	SalarioAte    int `gorm:"column:salario_ate"`
	Posicoes      int `gorm:"default:1"`
	PrazoDias     int `gorm:"default:30"` // prazo em dias uteis para fechamento
}
