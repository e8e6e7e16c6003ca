package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	candidatoapimodels "talentos-backend/models/api/candidato"
	kpiapimodels "talentos-backend/models/api/kpi"
)

type Provider interface {
	ExportCandidatoList(list []candidatoapimodels.CandidatoView) (*bytes.Buffer, error)
	ExportKpi(dashboard kpiapimodels.KpiDashboardView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidatoHeaders = []string{"Nome", "Contatos", "Vaga", "Etapa", "Origem", "Cidade", "Pretensão salarial", "Data de cadastro"}

func (i impl) ExportCandidatoList(list []candidatoapimodels.CandidatoView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("erro ao fechar o arquivo")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidatoHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o cabeçalho do xlsx")
	}
	if len(list) != 0 {
		row, err = writeCandidatoData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao montar a tabela de dados do xlsx")
		}
	}
	f.SetSheetName(sheet, "Candidatos")
	return f.WriteToBuffer()
}

func writeCandidatoData(f *excelize.File, sheet string, list []candidatoapimodels.CandidatoView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidatoHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Nome"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.NomeCompleto); err != nil {
			return row, err
		}

		// "Contatos"
		col++
		if err := writeColumn(f, sheet, col, row, item.Telefone+"\r"+item.Email); err != nil {
			return row, err
		}

		// "Vaga"
		col++
		if err := writeColumn(f, sheet, col, row, item.VagaTitulo); err != nil {
			return row, err
		}

		// "Etapa"
		col++
		if err := writeColumn(f, sheet, col, row, item.StageNome); err != nil {
			return row, err
		}

		// "Origem"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Origem)); err != nil {
			return row, err
		}

		// "Cidade"
		col++
		if err := writeColumn(f, sheet, col, row, item.Cidade); err != nil {
			return row, err
		}

		// "Pretensão salarial"
		col++
		if item.PretensaoSalarial > 0 {
			if err := writeColumn(f, sheet, col, row, item.PretensaoSalarial); err != nil {
				return row, err
			}
		}

		// "Data de cadastro"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreationDate.Format("02/01/2006")); err != nil {
			return row, err
		}
	}
	return row, nil
}

var kpiHeaders = []string{"Etapa", "Total de vagas", "Média de dias na etapa"}

func (i impl) ExportKpi(dashboard kpiapimodels.KpiDashboardView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("erro ao fechar o arquivo")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, kpiHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o cabeçalho do xlsx")
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(kpiHeaders), len(dashboard.Etapas)+1); err != nil {
		return nil, errors.Wrap(err, "erro ao montar a tabela de dados do xlsx")
	}
	for _, item := range dashboard.Etapas {
		row++
		col := 1
		if err = writeColumn(f, sheet, col, row, item.StageNome); err != nil {
			return nil, err
		}
		col++
		if err = writeColumn(f, sheet, col, row, item.Total); err != nil {
			return nil, err
		}
		col++
		if err = writeColumn(f, sheet, col, row, item.MediaDiasNaEtapa); err != nil {
			return nil, err
		}
	}
	f.SetSheetName(sheet, "Indicadores")
	return f.WriteToBuffer()
}
