package catalog

import "talentos-backend/models"

const (
	ClienteStageProspeccao       = "prospeccao"
	ClienteStageContato          = "contato"
	ClienteStageProposta         = "proposta"
	ClienteStageContratoAssinado = "contrato-assinado"
	ClienteStagePerdido          = "perdido"
)

var clienteStages = []Stage{
	{Slug: ClienteStageProspeccao, Nome: "Prospecção", Order: 1, Color: "#A78BFA", Kind: models.StageNormal},
	{Slug: ClienteStageContato, Nome: "Em Contato", Order: 2, Color: "#60A5FA", Kind: models.StageNormal},
	{Slug: ClienteStageProposta, Nome: "Proposta Enviada", Order: 3, Color: "#FBBF24", Kind: models.StageNormal},
	{Slug: ClienteStageContratoAssinado, Nome: "Contrato Assinado", Order: 4, Color: "#22C55E", Kind: models.StageFinal},
	{Slug: ClienteStagePerdido, Nome: "Perdido", Order: 5, Color: "#EF4444", Kind: models.StageCanceled},
}
