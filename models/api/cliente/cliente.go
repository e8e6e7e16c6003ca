package clienteapimodels

import (
	"time"

	"github.com/pkg/errors"

	apimodels "talentos-backend/models/api"
	dbmodels "talentos-backend/models/db"
)

type ClienteData struct {
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia"`
	Cnpj         string `json:"cnpj"` // somente dígitos ou com máscara
	Cidade       string `json:"cidade"`
	Uf           string `json:"uf"`
	ContatoNome  string `json:"contato_nome"`
	ContatoEmail string `json:"contato_email"`
	ContatoFone  string `json:"contato_fone"`
	Observacao   string `json:"observacao"`
}

func (c ClienteData) Validate() error {
	if c.NomeFantasia == "" && c.RazaoSocial == "" {
		return errors.New("nome do cliente não informado")
	}
	return nil
}

type ClienteInfo struct {
	StageSlug  string `json:"stage_slug"`
	StageNome  string `json:"stage_nome"`
	StageColor string `json:"stage_color"`
	Progresso  int    `json:"progresso"`
}

type ClienteView struct {
	ClienteData
	ClienteInfo
	ID           string    `json:"id"`
	CreationDate time.Time `json:"creation_date"`
}

type ClienteFilter struct {
	apimodels.Pagination
	Search    string `json:"search"`
	StageSlug string `json:"stage_slug"`
}

type ClienteStageRequest struct {
	StageSlug string `json:"stage_slug"`
	Comment   string `json:"comment"`
}

func (c ClienteStageRequest) Validate() error {
	if c.StageSlug == "" {
		return errors.New("etapa de destino não informada")
	}
	return nil
}

// CnpjView é o retorno da consulta de CNPJ usada no pré-cadastro de cliente.
type CnpjView struct {
	Cnpj         string `json:"cnpj"`
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia"`
	Cidade       string `json:"cidade"`
	Uf           string `json:"uf"`
	Situacao     string `json:"situacao"`
}

func ClienteConvert(rec dbmodels.Cliente) ClienteView {
	return ClienteView{
		ClienteData: ClienteData{
			RazaoSocial:  rec.RazaoSocial,
			NomeFantasia: rec.NomeFantasia,
			Cnpj:         rec.Cnpj,
			Cidade:       rec.Cidade,
			Uf:           rec.Uf,
			ContatoNome:  rec.ContatoNome,
			ContatoEmail: rec.ContatoEmail,
			ContatoFone:  rec.ContatoFone,
			Observacao:   rec.Observacao,
		},
		ClienteInfo: ClienteInfo{
			StageSlug: rec.StageSlug,
		},
		ID:           rec.ID,
		CreationDate: rec.CreatedAt,
	}
}
