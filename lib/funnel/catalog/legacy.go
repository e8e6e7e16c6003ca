package catalog

import "strings"

// legacyNames normaliza nomes de status em texto livre gravados por versões
// antigas do sistema. Tabela de melhor esforço sobre dados históricos
// inconsistentes; usada apenas na leitura, escritas sempre gravam slug.
var legacyNames = map[string]string{
	"banco de talento":     CandidatoStageBancoTalentos,
	"em triagem":           CandidatoStageTriagem,
	"triagem de curriculo": CandidatoStageTriagem,
	"entrevista com rh":    CandidatoStageEntrevistaRh,
	"teste tecnico":        CandidatoStageTeste,
	"aguardando cliente":   CandidatoStageEntrevistaCliente,
	"proposta enviada":     CandidatoStageProposta,
	"contratado(a)":        CandidatoStageContratado,
	"aprovado":             CandidatoStageContratado,
	"stand by":             CandidatoStageDesistiu,
	"declinou":             CandidatoStageDesistiu,
	"nao aprovado":         CandidatoStageReprovado,
	"não aprovado":         CandidatoStageReprovado,

	"hunting":              VagaStageDiscovery,
	"alinhamento":          VagaStageDiscovery,
	"em entrevistas":       VagaStageEntrevistas,
	"short list":           VagaStageShortlist,
	"aguardando proposta":  VagaStageProposta,
	"fechada":              VagaStageContratacao,
	"pausada":              VagaStageCongelada,
	"encerrada sem exito":  VagaStageCancelada,
	"encerrada sem êxito":  VagaStageCancelada,
}

// MapLegacyName devolve o slug correspondente a um nome legado; string vazia
// quando não há mapeamento.
func MapLegacyName(name string) string {
	if slug, ok := legacyNames[normalizeKey(name)]; ok {
		return slug
	}
	return ""
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
