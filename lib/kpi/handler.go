package kpi

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talentos-backend/db"
	xlsexport "talentos-backend/lib/export/xls"
	"talentos-backend/lib/funnel/catalog"
	store "talentos-backend/lib/kpi/store"
	initchecker "talentos-backend/lib/utils/init-checker"
	"talentos-backend/models"
	kpiapimodels "talentos-backend/models/api/kpi"
)

type Provider interface {
	Dashboard() (item kpiapimodels.KpiDashboardView, err error)
	ExportXls() (*bytes.Buffer, error)
	RefreshView() error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Dashboard() (item kpiapimodels.KpiDashboardView, err error) {
	cat := catalog.ForEntity(models.EntityVaga)
	rows, err := i.store.ListStageRows()
	if err != nil {
		log.WithError(err).Error("erro ao obter os indicadores por etapa")
		return kpiapimodels.KpiDashboardView{}, errors.New("erro ao obter os indicadores")
	}
	byStage := make(map[string]store.StageRow, len(rows))
	for _, row := range rows {
		byStage[row.StageSlug] = row
	}

	item = kpiapimodels.KpiDashboardView{
		Etapas:   make([]kpiapimodels.KpiStageView, 0, len(cat.Stages())),
		GeradoEm: time.Now(),
	}
	terminalSlugs := []string{}
	finalSlug := ""
	for _, stage := range cat.Stages() {
		if stage.Kind.IsTerminal() {
			terminalSlugs = append(terminalSlugs, stage.Slug)
		}
		if stage.Kind == models.StageFinal {
			finalSlug = stage.Slug
		}
		row := byStage[stage.Slug]
		item.TotalVagas += row.Total
		item.Etapas = append(item.Etapas, kpiapimodels.KpiStageView{
			StageSlug:        stage.Slug,
			StageNome:        stage.Nome,
			Total:            row.Total,
			MediaDiasNaEtapa: row.MediaDiasNaEtapa,
		})
	}

	if item.TotalAbertas, err = i.store.CountAbertas(terminalSlugs); err != nil {
		log.WithError(err).Error("erro ao obter o total de vagas abertas")
		return kpiapimodels.KpiDashboardView{}, errors.New("erro ao obter os indicadores")
	}
	if item.TotalContratadas, err = i.store.CountByStage(finalSlug); err != nil {
		log.WithError(err).Error("erro ao obter o total de vagas fechadas")
		return kpiapimodels.KpiDashboardView{}, errors.New("erro ao obter os indicadores")
	}
	if item.DentroDoPrazo, item.ForaDoPrazo, err = i.store.CountDentroDoPrazo(terminalSlugs); err != nil {
		log.WithError(err).Error("erro ao obter o ritmo das vagas")
		return kpiapimodels.KpiDashboardView{}, errors.New("erro ao obter os indicadores")
	}
	return item, nil
}

func (i impl) ExportXls() (*bytes.Buffer, error) {
	dashboard, err := i.Dashboard()
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportKpi(dashboard)
}

func (i impl) RefreshView() error {
	err := i.store.Refresh()
	if err != nil {
		log.WithError(err).Error("erro ao atualizar a view materializada de KPI")
		return errors.New("erro ao atualizar os indicadores")
	}
	log.Info("view materializada de KPI atualizada")
	return nil
}
