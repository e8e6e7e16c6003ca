package catalog

import "talentos-backend/models"

const (
	VagaStageDiscovery         = "discovery"
	VagaStageTriagem           = "triagem"
	VagaStageEntrevistas       = "entrevistas"
	VagaStageShortlist         = "shortlist"
	VagaStageEntrevistaCliente = "entrevista-cliente"
	VagaStageProposta          = "proposta"
	VagaStageContratacao       = "contratacao"
	VagaStageCongelada         = "congelada"
	VagaStageCancelada         = "cancelada"
)

var vagaStages = []Stage{
	{Slug: VagaStageDiscovery, Nome: "Discovery", Order: 1, Color: "#A78BFA", Kind: models.StageNormal},
	{Slug: VagaStageTriagem, Nome: "Triagem", Order: 2, Color: "#60A5FA", Kind: models.StageNormal},
	{Slug: VagaStageEntrevistas, Nome: "Entrevistas", Order: 3, Color: "#34D399", Kind: models.StageNormal},
	{Slug: VagaStageShortlist, Nome: "Shortlist", Order: 4, Color: "#FBBF24", Kind: models.StageNormal},
	{Slug: VagaStageEntrevistaCliente, Nome: "Entrevista com Cliente", Order: 5, Color: "#F97316", Kind: models.StageNormal},
	{Slug: VagaStageProposta, Nome: "Proposta", Order: 6, Color: "#F472B6", Kind: models.StageNormal},
	{Slug: VagaStageContratacao, Nome: "Contratação", Order: 7, Color: "#22C55E", Kind: models.StageFinal},
	{Slug: VagaStageCongelada, Nome: "Congelada", Order: 8, Color: "#94A3B8", Kind: models.StageFrozen},
	{Slug: VagaStageCancelada, Nome: "Cancelada", Order: 9, Color: "#EF4444", Kind: models.StageCanceled},
}
