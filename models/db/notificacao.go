package dbmodels

type Notificacao struct {
	BaseModel
	UserID   string `gorm:"type:varchar(36);index"`
	VagaID   string `gorm:"type:varchar(36)"`
	Titulo   string `gorm:"type:varchar(255)"`
	Mensagem string
	Lida     bool `gorm:"default:false"`
}

type NotificacaoFilter struct {
	NaoLidas bool `json:"nao_lidas"`
}
