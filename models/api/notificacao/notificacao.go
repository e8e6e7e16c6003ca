package notificacaoapimodels

import (
	"time"

	dbmodels "talentos-backend/models/db"
)

type NotificacaoView struct {
	ID           string    `json:"id"`
	Titulo       string    `json:"titulo"`
	Mensagem     string    `json:"mensagem"`
	VagaID       string    `json:"vaga_id,omitempty"`
	Lida         bool      `json:"lida"`
	CreationDate time.Time `json:"creation_date"`
}

func Convert(rec dbmodels.Notificacao) NotificacaoView {
	return NotificacaoView{
		ID:           rec.ID,
		Titulo:       rec.Titulo,
		Mensagem:     rec.Mensagem,
		VagaID:       rec.VagaID,
		Lida:         rec.Lida,
		CreationDate: rec.CreatedAt,
	}
}
