package kpiapimodels

import "time"

// KpiStageView é uma linha da view materializada kpi_vagas.
type KpiStageView struct {
	StageSlug        string  `json:"stage_slug"`
	StageNome        string  `json:"stage_nome"`
	Total            int64   `json:"total"`
	MediaDiasNaEtapa float64 `json:"media_dias_na_etapa"` // em dias corridos
}

type KpiDashboardView struct {
	Etapas           []KpiStageView `json:"etapas"`
	TotalVagas       int64          `json:"total_vagas"`
	TotalAbertas     int64          `json:"total_abertas"`
	TotalContratadas int64          `json:"total_contratadas"`
	DentroDoPrazo    int64          `json:"dentro_do_prazo"`
	ForaDoPrazo      int64          `json:"fora_do_prazo"`
	GeradoEm         time.Time      `json:"gerado_em"`
}
