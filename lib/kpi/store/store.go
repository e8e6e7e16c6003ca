package kpistore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// StageRow é uma linha da view materializada kpi_vagas.
type StageRow struct {
	StageSlug        string
	Total            int64
	MediaDiasNaEtapa float64
}

type Provider interface {
	ListStageRows() (list []StageRow, err error)
	CountAbertas(terminalSlugs []string) (count int64, err error)
	CountByStage(slug string) (count int64, err error)
	CountDentroDoPrazo(terminalSlugs []string) (dentro, fora int64, err error)
	// Refresh atualiza a view materializada sem bloquear as leituras.
	Refresh() error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListStageRows() (list []StageRow, err error) {
	list = []StageRow{}
	err = i.db.
		Raw("SELECT stage_slug, total, media_dias_na_etapa FROM kpi_vagas").
		Scan(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) CountAbertas(terminalSlugs []string) (count int64, err error) {
	err = i.db.
		Table("vagas").
		Where("deleted_at IS NULL").
		Where("stage_slug not in ?", terminalSlugs).
		Count(&count).
		Error
	return count, err
}

func (i impl) CountByStage(slug string) (count int64, err error) {
	err = i.db.
		Table("vagas").
		Where("deleted_at IS NULL").
		Where("stage_slug = ?", slug).
		Count(&count).
		Error
	return count, err
}

func (i impl) CountDentroDoPrazo(terminalSlugs []string) (dentro, fora int64, err error) {
	type row struct {
		Dentro int64
		Fora   int64
	}
	result := row{}
	// prazo em dias corridos é aproximação conservadora do prazo em dias
	// úteis; a checagem exata fica com o worker de vagas estagnadas.
	// prazo_dias = 0 significa vaga sem prazo, sempre dentro
	err = i.db.
		Raw(`
			SELECT count(*) FILTER (WHERE prazo_dias = 0 OR now() - last_stage_change_at <= prazo_dias * interval '1 day') AS dentro,
			       count(*) FILTER (WHERE prazo_dias > 0 AND now() - last_stage_change_at > prazo_dias * interval '1 day') AS fora
			FROM vagas
			WHERE deleted_at IS NULL
			  AND stage_slug not in ?`, terminalSlugs).
		Scan(&result).
		Error
	if err != nil {
		return 0, 0, err
	}
	return result.Dentro, result.Fora, nil
}

func (i impl) Refresh() error {
	return i.db.Exec("REFRESH MATERIALIZED VIEW CONCURRENTLY kpi_vagas").Error
}
