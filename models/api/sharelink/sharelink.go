package sharelinkapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "talentos-backend/models/db"
)

type ShareLinkData struct {
	Titulo    string     `json:"titulo"`     // título exibido na página pública
	ExpiresAt *time.Time `json:"expires_at"` // vazio = sem expiração
}

func (s ShareLinkData) Validate() error {
	if s.ExpiresAt != nil && s.ExpiresAt.Before(time.Now()) {
		return errors.New("data de expiração já passou")
	}
	return nil
}

type ShareLinkView struct {
	ID           string     `json:"id"`
	VagaID       string     `json:"vaga_id"`
	Token        string     `json:"token"`
	Url          string     `json:"url"`
	Titulo       string     `json:"titulo"`
	Ativo        bool       `json:"ativo"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreationDate time.Time  `json:"creation_date"`
}

// PublicVagaView é o que a página pública de inscrição enxerga da vaga.
type PublicVagaView struct {
	Titulo      string `json:"titulo"`
	Descricao   string `json:"descricao"`
	Cidade      string `json:"cidade"`
	Uf          string `json:"uf"`
	Remota      bool   `json:"remota"`
	ClienteNome string `json:"cliente_nome,omitempty"`
	LinkTitulo  string `json:"link_titulo,omitempty"`
}

func Convert(rec dbmodels.ShareLink, publicURL string) ShareLinkView {
	return ShareLinkView{
		ID:           rec.ID,
		VagaID:       rec.VagaID,
		Token:        rec.Token,
		Url:          publicURL,
		Titulo:       rec.Titulo,
		Ativo:        rec.Ativo,
		ExpiresAt:    rec.ExpiresAt,
		CreationDate: rec.CreatedAt,
	}
}
