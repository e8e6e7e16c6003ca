package agendaapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type InterviewRequest struct {
	CandidatoID string    `json:"candidato_id"`
	Titulo      string    `json:"titulo"`
	Descricao   string    `json:"descricao"`
	Inicio      time.Time `json:"inicio"`
	Fim         time.Time `json:"fim"`
	// convidados extras além do candidato (gestor do cliente etc.)
	Convidados []string `json:"convidados"`
}

func (r InterviewRequest) Validate() error {
	if r.CandidatoID == "" {
		return errors.New("informe o candidato da entrevista")
	}
	if r.Inicio.IsZero() || r.Fim.IsZero() {
		return errors.New("informe o início e o fim da entrevista")
	}
	if !r.Fim.After(r.Inicio) {
		return errors.New("o fim da entrevista deve ser depois do início")
	}
	if r.Inicio.Before(time.Now()) {
		return errors.New("a entrevista deve ser no futuro")
	}
	return nil
}

type LoginUriView struct {
	Uri string `json:"uri"`
}

type StatusView struct {
	Conectado bool      `json:"conectado"`
	ExpiraEm  time.Time `json:"expira_em,omitempty"`
}

type InterviewView struct {
	EventID  string `json:"event_id"`
	HtmlLink string `json:"html_link"`
}
