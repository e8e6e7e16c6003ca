package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"talentos-backend/lib/funnel/timeline"
	vagaapimodels "talentos-backend/models/api/vaga"
)

// GenerateVagaReport monta o relatório da vaga com a linha do tempo do funil.
func GenerateVagaReport(vaga vagaapimodels.VagaView, entries []timeline.Entry) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateVagaReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(vaga.Titulo), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if vaga.ClienteNome != "" {
		pdf.CellFormat(0, 6, tr("Cliente: "+vaga.ClienteNome), "", 1, "L", false, 0, "")
	}
	local := vaga.Cidade
	if vaga.Uf != "" {
		local = fmt.Sprintf("%v - %v", vaga.Cidade, vaga.Uf)
	}
	if vaga.Remota {
		local = "Remota"
	}
	pdf.CellFormat(0, 6, tr("Local: "+local), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Etapa atual: %v (%v%% do funil)", vaga.StageNome, vaga.Progresso)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Criada em: %v", vaga.CreationDate.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Linha do tempo do funil"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(50, 7, tr("Etapa"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, tr("Data"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, tr("Dias úteis"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(0, 7, tr("Movido por"), "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range entries {
		pdf.CellFormat(50, 7, tr(entry.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, entry.Timestamp.Format("02/01/2006"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%d", entry.DiasNaEtapa), "1", 0, "R", false, 0, "")
		pdf.CellFormat(0, 7, tr(entry.MovedBy), "1", 1, "L", false, 0, "")
	}
	if len(entries) == 0 {
		pdf.CellFormat(0, 7, tr("Sem movimentações registradas"), "1", 1, "L", false, 0, "")
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
