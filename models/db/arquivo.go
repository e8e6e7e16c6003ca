package dbmodels

import "talentos-backend/models"

type Arquivo struct {
	BaseModel
	CandidatoID string          `gorm:"type:varchar(36);index"`
	Tipo        models.FileType `gorm:"type:varchar(50)"`
	Nome        string          `gorm:"type:varchar(255)"`
	ObjectName  string          `gorm:"type:varchar(512)"`
}
