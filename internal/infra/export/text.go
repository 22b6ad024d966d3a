package export

import (
	"fmt"
	"strings"

	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

var severityLabels = map[domain.Severity]string{
	domain.SeverityLow:      "BAIXA",
	domain.SeverityModerate: "MÉDIA",
	domain.SeverityHigh:     "ALTA",
}

// Text renders a stored analysis as a plain-text report.
func Text(a *domain.Analysis) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "RELATÓRIO DE ANÁLISE DE DANOS\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Data: %s\n", a.Timestamp.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "ID: %s\n", a.ID)
	fmt.Fprintf(&b, "Severidade Geral: %s\n", severityLabels[a.OverallSeverity])
	fmt.Fprintf(&b, "Total de Itens Danificados: %d\n\n", a.TotalItems)

	fmt.Fprintf(&b, "RESUMO:\n%s\n\n", a.Summary)
	if a.Description != "" {
		fmt.Fprintf(&b, "DESCRIÇÃO ADICIONAL:\n%s\n\n", a.Description)
	}

	fmt.Fprintf(&b, "ESTATÍSTICAS:\n")
	fmt.Fprintf(&b, "- Danos Leves: %d\n", a.SeverityCounts.Low)
	fmt.Fprintf(&b, "- Danos Moderados: %d\n", a.SeverityCounts.Moderate)
	fmt.Fprintf(&b, "- Danos Graves: %d\n\n", a.SeverityCounts.High)

	fmt.Fprintf(&b, "LISTA COMPLETA DE DANOS:\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("-", 50))

	for i, item := range a.DamageItems {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.ToUpper(item.ItemName))
		if item.ItemType != "" {
			fmt.Fprintf(&b, "   Tipo: %s\n", item.ItemType)
		}
		fmt.Fprintf(&b, "   Severidade: %s\n", severityLabels[item.Severity])
		fmt.Fprintf(&b, "   Descrição: %s\n", item.Description)
		if item.EstimatedImpact != "" {
			fmt.Fprintf(&b, "   Impacto: %s\n", item.EstimatedImpact)
		}
		if item.PriceNew != "" {
			fmt.Fprintf(&b, "   Peça Nova: %s\n", item.PriceNew)
		}
		if item.PriceUsed != "" {
			fmt.Fprintf(&b, "   Peça Usada: %s\n", item.PriceUsed)
		}
		if item.RepairCost != "" {
			fmt.Fprintf(&b, "   Custo de Reparo: %s\n", item.RepairCost)
		}
		b.WriteString("\n")
	}

	sum := Summarize(a.DamageItems)
	fmt.Fprintf(&b, "RESUMO FINANCEIRO:\n")
	fmt.Fprintf(&b, "- Custo total (peças novas): %s\n", FormatKwanza(sum.TotalNew))
	fmt.Fprintf(&b, "- Custo total (peças usadas): %s\n", FormatKwanza(sum.TotalUsed))
	fmt.Fprintf(&b, "- Custo total de reparos: %s\n", FormatKwanza(sum.TotalRepair))

	return []byte(b.String())
}
