package wsmodels

import "time"

type MsgType string

const (
	MsgTypeNotificacao MsgType = "notificacao"
	MsgTypeBoardMove   MsgType = "board_move"
)

type ServerMessage struct {
	ToUserID string      `json:"-"`
	Type     MsgType     `json:"type"`
	SentAt   time.Time   `json:"sent_at"`
	Data     interface{} `json:"data,omitempty"`
}

type BoardMoveData struct {
	EntityKind string `json:"entity_kind"`
	EntityID   string `json:"entity_id"`
	FromStage  string `json:"from_stage"`
	ToStage    string `json:"to_stage"`
	MovedBy    string `json:"moved_by"`
}

type NotificacaoData struct {
	ID       string `json:"id"`
	Titulo   string `json:"titulo"`
	Mensagem string `json:"mensagem"`
	VagaID   string `json:"vaga_id,omitempty"`
}
