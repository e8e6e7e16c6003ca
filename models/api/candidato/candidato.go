package candidatoapimodels

import (
	"time"

	"github.com/pkg/errors"

	"talentos-backend/models"
	apimodels "talentos-backend/models/api"
	dbmodels "talentos-backend/models/db"
)

type CandidatoData struct {
	VagaID            string                 `json:"vaga_id"` // vaga vinculada (vazio = banco de talentos)
	Nome              string                 `json:"nome"`
	Sobrenome         string                 `json:"sobrenome"`
	Email             string                 `json:"email"`
	Telefone          string                 `json:"telefone"`
	Cidade            string                 `json:"cidade"`
	Uf                string                 `json:"uf"`
	LinkedIn          string                 `json:"linkedin"`
	Origem            models.CandidatoOrigem `json:"origem"`
	PretensaoSalarial int                    `json:"pretensao_salarial"`
	Tags              []string               `json:"tags"`
	Observacao        string                 `json:"observacao"`
	DataNascimento    time.Time              `json:"data_nascimento"`
}

func (c CandidatoData) Validate() error {
	if c.Nome == "" {
		return errors.New("nome do candidato não informado")
	}
	if c.Email == "" && c.Telefone == "" {
		return errors.New("informe ao menos um contato (email ou telefone)")
	}
	return nil
}

type CandidatoInfo struct {
	NomeCompleto string `json:"nome_completo"`
	VagaTitulo   string `json:"vaga_titulo"`
	StageSlug    string `json:"stage_slug"`
	StageNome    string `json:"stage_nome"`
	StageColor   string `json:"stage_color"`
	Progresso    int    `json:"progresso"`
	DiasNaEtapa  int    `json:"dias_na_etapa"`
}

type CandidatoView struct {
	CandidatoData
	CandidatoInfo
	ID           string    `json:"id"`
	CreationDate time.Time `json:"creation_date"`
}

type CandidatoSort struct {
	CreatedAtDesc bool `json:"created_at_desc"`
}

type CandidatoFilter struct {
	apimodels.Pagination
	Search     string                 `json:"search"`
	VagaID     string                 `json:"vaga_id"`
	StageSlugs []string               `json:"stage_slugs"`
	Origem     models.CandidatoOrigem `json:"origem"`
	Tag        string                 `json:"tag"`
	Sort       CandidatoSort          `json:"sort"`
}

type CandidatoStageRequest struct {
	StageSlug string `json:"stage_slug"`
	Comment   string `json:"comment"`
}

func (c CandidatoStageRequest) Validate() error {
	if c.StageSlug == "" {
		return errors.New("etapa de destino não informada")
	}
	return nil
}

type CandidatoNoteRequest struct {
	Texto string `json:"texto"`
}

func (c CandidatoNoteRequest) Validate() error {
	if c.Texto == "" {
		return errors.New("texto da anotação não informado")
	}
	return nil
}

// ApplicationRequest é a inscrição pública feita via link compartilhado.
type ApplicationRequest struct {
	Nome              string `json:"nome"`
	Sobrenome         string `json:"sobrenome"`
	Email             string `json:"email"`
	Telefone          string `json:"telefone"`
	LinkedIn          string `json:"linkedin"`
	PretensaoSalarial int    `json:"pretensao_salarial"`
}

func (a ApplicationRequest) Validate() error {
	if a.Nome == "" {
		return errors.New("nome não informado")
	}
	if a.Email == "" {
		return errors.New("email não informado")
	}
	return nil
}

func CandidatoConvert(rec dbmodels.Candidato) CandidatoView {
	result := CandidatoView{
		CandidatoData: CandidatoData{
			Nome:              rec.Nome,
			Sobrenome:         rec.Sobrenome,
			Email:             rec.Email,
			Telefone:          rec.Telefone,
			Cidade:            rec.Cidade,
			Uf:                rec.Uf,
			LinkedIn:          rec.LinkedIn,
			Origem:            rec.Origem,
			PretensaoSalarial: rec.PretensaoSalarial,
			Tags:              rec.Tags,
			Observacao:        rec.Observacao,
			DataNascimento:    rec.DataNascimento,
		},
		CandidatoInfo: CandidatoInfo{
			NomeCompleto: rec.GetNomeCompleto(),
			StageSlug:    rec.StageSlug,
		},
		ID:           rec.ID,
		CreationDate: rec.CreatedAt,
	}
	if rec.VagaID != nil {
		result.VagaID = *rec.VagaID
	}
	if rec.Vaga != nil {
		result.VagaTitulo = rec.Vaga.Titulo
	}
	return result
}
