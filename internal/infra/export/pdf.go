package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

// palette lifted from the web client theme
var (
	colPrimary = [3]int{37, 99, 235}
	colText    = [3]int{31, 41, 55}
	colBody    = [3]int{55, 65, 81}
	colMuted   = [3]int{107, 114, 128}
	colFill    = [3]int{243, 244, 246}
	colBorder  = [3]int{229, 231, 235}
	colHigh    = [3]int{220, 38, 38}
	colModer   = [3]int{245, 158, 11}
	colLow     = [3]int{16, 185, 129}
)

func severityColor(s domain.Severity) [3]int {
	switch s {
	case domain.SeverityHigh:
		return colHigh
	case domain.SeverityModerate:
		return colModer
	default:
		return colLow
	}
}

// PDF renders a stored analysis as a paginated A4 document: title block,
// executive summary, stat tiles, one card per damage item with a 3-column
// price table, and the aggregate financial summary.
func PDF(a *domain.Analysis) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	const pageW = 210.0
	const left = 18.0
	const contentW = pageW - 2*left

	// title block
	pdf.SetTextColor(colPrimary[0], colPrimary[1], colPrimary[2])
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(contentW, 10, tr("RELATÓRIO DE ANÁLISE DE DANOS"), "", 1, "C", false, 0, "")

	pdf.SetTextColor(colMuted[0], colMuted[1], colMuted[2])
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Gerado em: %s", a.Timestamp.Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("ID: %s", a.ID), "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetDrawColor(colPrimary[0], colPrimary[1], colPrimary[2])
	pdf.SetLineWidth(0.8)
	pdf.Line(left, pdf.GetY(), pageW-left, pdf.GetY())
	pdf.Ln(6)

	// executive summary
	sectionTitle(pdf, tr, "RESUMO EXECUTIVO")
	pdf.SetTextColor(colBody[0], colBody[1], colBody[2])
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(contentW, 4.5, tr(a.Summary), "", "J", false)
	if a.Description != "" {
		pdf.Ln(1)
		pdf.SetTextColor(colMuted[0], colMuted[1], colMuted[2])
		pdf.SetFont("Helvetica", "", 8)
		pdf.MultiCell(contentW, 4, tr("Descrição adicional: "+a.Description), "", "J", false)
	}
	pdf.Ln(4)

	// stat tiles
	sectionTitle(pdf, tr, "ESTATÍSTICAS")
	tiles := []struct {
		label string
		value int
		color [3]int
	}{
		{"Total de Danos", a.TotalItems, colPrimary},
		{"Alta Severidade", a.SeverityCounts.High, colHigh},
		{"Média Severidade", a.SeverityCounts.Moderate, colModer},
		{"Baixa Severidade", a.SeverityCounts.Low, colLow},
	}
	const tileW, tileH, tileGap = 40.5, 24.0, 4.0
	tileY := pdf.GetY()
	x := left
	for _, t := range tiles {
		pdf.SetFillColor(colFill[0], colFill[1], colFill[2])
		pdf.SetDrawColor(colBorder[0], colBorder[1], colBorder[2])
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, tileY, tileW, tileH, "FD")

		pdf.SetTextColor(t.color[0], t.color[1], t.color[2])
		pdf.SetFont("Helvetica", "B", 18)
		pdf.SetXY(x, tileY+5)
		pdf.CellFormat(tileW, 8, fmt.Sprintf("%d", t.value), "", 0, "C", false, 0, "")

		pdf.SetTextColor(colMuted[0], colMuted[1], colMuted[2])
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetXY(x, tileY+15)
		pdf.CellFormat(tileW, 5, tr(t.label), "", 0, "C", false, 0, "")

		x += tileW + tileGap
	}
	pdf.SetY(tileY + tileH + 8)

	// per-item cards
	sectionTitle(pdf, tr, "DANOS IDENTIFICADOS")
	for i, item := range a.DamageItems {
		if pdf.GetY() > 230 {
			pdf.AddPage()
		}

		headerY := pdf.GetY()
		pdf.SetFillColor(colFill[0], colFill[1], colFill[2])
		pdf.Rect(left, headerY, contentW, 7, "F")
		pdf.SetTextColor(colText[0], colText[1], colText[2])
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetXY(left+2, headerY+1)
		pdf.CellFormat(contentW-4, 5, tr(fmt.Sprintf("%d. %s", i+1, item.ItemName)), "", 1, "L", false, 0, "")
		pdf.SetY(headerY + 9)

		if item.ItemType != "" {
			pdf.SetTextColor(colMuted[0], colMuted[1], colMuted[2])
			pdf.SetFont("Helvetica", "", 8)
			pdf.CellFormat(contentW, 4, tr("Categoria: "+item.ItemType), "", 1, "L", false, 0, "")
		}

		sc := severityColor(item.Severity)
		pdf.SetTextColor(sc[0], sc[1], sc[2])
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(contentW, 4, tr("Severidade: "+severityLabels[item.Severity]), "", 1, "L", false, 0, "")
		pdf.Ln(1)

		pdf.SetTextColor(colText[0], colText[1], colText[2])
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 4.5, tr("Descrição do Dano:"), "", 1, "L", false, 0, "")
		pdf.SetTextColor(colBody[0], colBody[1], colBody[2])
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW, 4.5, tr(item.Description), "", "J", false)
		pdf.Ln(1)

		if item.EstimatedImpact != "" {
			pdf.SetTextColor(colText[0], colText[1], colText[2])
			pdf.SetFont("Helvetica", "B", 9)
			pdf.CellFormat(contentW, 4.5, tr("Impacto Estimado:"), "", 1, "L", false, 0, "")
			pdf.SetTextColor(colBody[0], colBody[1], colBody[2])
			pdf.SetFont("Helvetica", "", 9)
			pdf.MultiCell(contentW, 4.5, tr(item.EstimatedImpact), "", "J", false)
			pdf.Ln(1)
		}

		priceTable(pdf, tr, item)

		pdf.Ln(2)
		pdf.SetDrawColor(colBorder[0], colBorder[1], colBorder[2])
		pdf.SetLineWidth(0.2)
		pdf.Line(left, pdf.GetY(), pageW-left, pdf.GetY())
		pdf.Ln(3)
	}

	// financial summary
	if pdf.GetY() > 230 {
		pdf.AddPage()
	}
	sum := Summarize(a.DamageItems)
	sectionTitle(pdf, tr, "RESUMO FINANCEIRO")
	pdf.SetTextColor(colBody[0], colBody[1], colBody[2])
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 5.5, tr("• Custo total (peças novas): "+FormatKwanza(sum.TotalNew)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5.5, tr("• Custo total (peças usadas): "+FormatKwanza(sum.TotalUsed)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5.5, tr("• Custo total de reparos: "+FormatKwanza(sum.TotalRepair)), "", 1, "L", false, 0, "")

	pdf.Ln(6)
	pdf.SetDrawColor(colPrimary[0], colPrimary[1], colPrimary[2])
	pdf.SetLineWidth(0.8)
	pdf.Line(left, pdf.GetY(), pageW-left, pdf.GetY())
	pdf.Ln(4)

	pdf.SetTextColor(colMuted[0], colMuted[1], colMuted[2])
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, tr("Este relatório foi gerado automaticamente por sistema de análise de danos baseado em IA."), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4, tr("Os valores apresentados são estimativas e podem variar conforme o mercado e fornecedores."), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetTextColor(colText[0], colText[1], colText[2])
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(174, 7, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func priceTable(pdf *fpdf.Fpdf, tr func(string) string, item domain.DamageItem) {
	const left = 18.0
	const colW = 58.0

	pdf.SetTextColor(colText[0], colText[1], colText[2])
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(174, 4.5, tr("Estimativa de Custos:"), "", 1, "L", false, 0, "")

	y := pdf.GetY()
	pdf.SetFillColor(239, 246, 255)
	pdf.SetDrawColor(colBorder[0], colBorder[1], colBorder[2])
	pdf.SetLineWidth(0.2)
	headers := []string{"Peça Nova", "Peça Usada", "Custo de Reparo"}
	for i, h := range headers {
		pdf.SetXY(left+float64(i)*colW, y)
		pdf.CellFormat(colW, 6, tr(h), "1", 0, "C", true, 0, "")
	}

	values := []string{orND(item.PriceNew), orND(item.PriceUsed), orND(item.RepairCost)}
	pdf.SetTextColor(colPrimary[0], colPrimary[1], colPrimary[2])
	pdf.SetFont("Helvetica", "B", 9)
	for i, v := range values {
		pdf.SetXY(left+float64(i)*colW, y+6)
		pdf.CellFormat(colW, 8, tr(v), "1", 0, "C", false, 0, "")
	}
	pdf.SetY(y + 14)
}

func orND(s string) string {
	if s == "" {
		return "N/D"
	}
	return s
}
