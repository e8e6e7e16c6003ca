package catalog

import "talentos-backend/models"

const (
	CandidatoStageBancoTalentos     = "banco-talentos"
	CandidatoStageTriagem           = "triagem"
	CandidatoStageEntrevistaRh      = "entrevista-rh"
	CandidatoStageTeste             = "teste"
	CandidatoStageEntrevistaCliente = "entrevista-cliente"
	CandidatoStageProposta          = "proposta"
	CandidatoStageContratado        = "contratado"
	CandidatoStageDesistiu          = "desistiu"
	CandidatoStageReprovado         = "reprovado"
)

var candidatoStages = []Stage{
	{Slug: CandidatoStageBancoTalentos, Nome: "Banco de Talentos", Order: 1, Color: "#A78BFA", Kind: models.StageNormal},
	{Slug: CandidatoStageTriagem, Nome: "Triagem", Order: 2, Color: "#60A5FA", Kind: models.StageNormal},
	{Slug: CandidatoStageEntrevistaRh, Nome: "Entrevista RH", Order: 3, Color: "#34D399", Kind: models.StageNormal},
	{Slug: CandidatoStageTeste, Nome: "Teste Técnico", Order: 4, Color: "#FBBF24", Kind: models.StageNormal},
	{Slug: CandidatoStageEntrevistaCliente, Nome: "Entrevista com Cliente", Order: 5, Color: "#F97316", Kind: models.StageNormal},
	{Slug: CandidatoStageProposta, Nome: "Proposta", Order: 6, Color: "#F472B6", Kind: models.StageNormal},
	{Slug: CandidatoStageContratado, Nome: "Contratado", Order: 7, Color: "#22C55E", Kind: models.StageFinal},
	{Slug: CandidatoStageDesistiu, Nome: "Desistiu", Order: 8, Color: "#94A3B8", Kind: models.StageFrozen},
	{Slug: CandidatoStageReprovado, Nome: "Reprovado", Order: 9, Color: "#EF4444", Kind: models.StageCanceled},
}
