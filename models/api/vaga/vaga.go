package vagaapimodels

import (
	"time"

	"github.com/pkg/errors"

	apimodels "talentos-backend/models/api"
	dbmodels "talentos-backend/models/db"
)

type VagaData struct {
	ClienteID     string `json:"cliente_id"`     // id do cliente dono da vaga
	ResponsavelID string `json:"responsavel_id"` // id do recrutador responsável
	Titulo        string `json:"titulo"`         // título da vaga
	Descricao     string `json:"descricao"`      // descrição completa
	Cidade        string `json:"cidade"`
	Uf            string `json:"uf"`
	Remota        bool   `json:"remota"`
	SalarioDe     int    `json:"salario_de"`
	SalarioAte    int    `json:"salario_ate"`
	Posicoes      int    `json:"posicoes"`   // quantidade de posições abertas
	PrazoDias     int    `json:"prazo_dias"` // prazo em dias úteis para fechamento
}

func (v VagaData) Validate() error {
	if v.Titulo == "" {
		return errors.New("título da vaga não informado")
	}
	if v.Posicoes < 0 {
		return errors.New("quantidade de posições inválida")
	}
	if v.SalarioDe > 0 && v.SalarioAte > 0 && v.SalarioAte < v.SalarioDe {
		return errors.New("faixa salarial inválida")
	}
	return nil
}

type VagaInfo struct {
	ClienteNome     string `json:"cliente_nome"`
	ResponsavelNome string `json:"responsavel_nome"`
	StageSlug       string `json:"stage_slug"`
	StageNome       string `json:"stage_nome"`
	StageColor      string `json:"stage_color"`
	Progresso       int    `json:"progresso"`          // percentual de avanço no funil
	DiasNaEtapa     int    `json:"dias_na_etapa"`      // dias úteis desde a última mudança de etapa
	DentroDoPrazo   bool   `json:"dentro_do_prazo"`    // dentro do prazo em dias úteis
}

type VagaView struct {
	VagaData
	VagaInfo
	ID           string    `json:"id"`
	CreationDate time.Time `json:"creation_date"`
}

type VagaSort struct {
	CreatedAtDesc bool `json:"created_at_desc"` // ordem de criação false = ASC / true = DESC
}

type VagaFilter struct {
	apimodels.Pagination
	Search        string   `json:"search"`
	StageSlugs    []string `json:"stage_slugs"`
	ClienteID     string   `json:"cliente_id"`
	ResponsavelID string   `json:"responsavel_id"`
	Cidade        string   `json:"cidade"`
	Sort          VagaSort `json:"sort"`
}

type VagaStageRequest struct {
	StageSlug string `json:"stage_slug"` // slug ou nome da etapa de destino
	Comment   string `json:"comment"`
}

func (v VagaStageRequest) Validate() error {
	if v.StageSlug == "" {
		return errors.New("etapa de destino não informada")
	}
	return nil
}

func VagaConvert(rec dbmodels.Vaga) VagaView {
	result := VagaView{
		VagaData: VagaData{
			ResponsavelID: rec.ResponsavelID,
			Titulo:        rec.Titulo,
			Descricao:     rec.Descricao,
			Cidade:        rec.Cidade,
			Uf:            rec.Uf,
			Remota:        rec.Remota,
			SalarioDe:     rec.SalarioDe,
			SalarioAte:    rec.SalarioAte,
			Posicoes:      rec.Posicoes,
			PrazoDias:     rec.PrazoDias,
		},
		VagaInfo: VagaInfo{
			StageSlug: rec.StageSlug,
		},
		ID:           rec.ID,
		CreationDate: rec.CreatedAt,
	}
	if rec.ClienteID != nil {
		result.ClienteID = *rec.ClienteID
	}
	if rec.Cliente != nil {
		result.ClienteNome = rec.Cliente.NomeFantasia
	}
	if rec.Responsavel != nil {
		result.ResponsavelNome = rec.Responsavel.GetNomeCompleto()
	}
	return result
}
