package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

func sampleAnalysis() *domain.Analysis {
	return &domain.Analysis{
		ID:         "rep-1",
		Timestamp:  time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Summary:    "Veículo sedan com danos concentrados na dianteira",
		TotalItems: 2,
		SeverityCounts: domain.SeverityCounts{
			Low:  1,
			High: 1,
		},
		DamageItems: []domain.DamageItem{
			{
				ItemName:        "Para-choque Dianteiro",
				ItemType:        "Elemento Externo - Carroceria",
				Severity:        domain.SeverityHigh,
				Description:     "Amassado profundo no lado esquerdo, aprox. 30cm",
				EstimatedImpact: "Substituição recomendada",
				PriceNew:        "180.000-350.000 KZ",
				PriceUsed:       "80.000-160.000 KZ",
				RepairCost:      "45.000-120.000 KZ",
			},
			{
				ItemName:    "Farol Direito",
				Severity:    domain.SeverityLow,
				Description: "Arranhão superficial na lente",
			},
		},
		OverallSeverity: domain.SeverityHigh,
		Description:     "batida no estacionamento",
	}
}

func TestTextExport(t *testing.T) {
	out := string(Text(sampleAnalysis()))

	assert.Contains(t, out, "RELATÓRIO DE ANÁLISE DE DANOS")
	assert.Contains(t, out, "ID: rep-1")
	assert.Contains(t, out, "Severidade Geral: ALTA")
	assert.Contains(t, out, "Total de Itens Danificados: 2")
	assert.Contains(t, out, "1. PARA-CHOQUE DIANTEIRO")
	assert.Contains(t, out, "2. FAROL DIREITO")
	assert.Contains(t, out, "Peça Nova: 180.000-350.000 KZ")
	// range midpoints: (180000+350000)/2 = 265000
	assert.Contains(t, out, "Custo total (peças novas): 265.000 KZ")
	assert.Contains(t, out, "RESUMO FINANCEIRO")
}

func TestJSONExportRoundTrips(t *testing.T) {
	a := sampleAnalysis()
	data, err := JSON(a)
	require.NoError(t, err)

	var got domain.Analysis
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *a, got)
}

func TestPDFExportProducesDocument(t *testing.T) {
	data, err := PDF(sampleAnalysis())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFExportManyItemsPaginates(t *testing.T) {
	a := sampleAnalysis()
	for i := 0; i < 30; i++ {
		a.DamageItems = append(a.DamageItems, domain.DamageItem{
			ItemName:    "Porta Traseira Esquerda",
			Severity:    domain.SeverityModerate,
			Description: "Arranhão de 10cm na parte inferior",
			PriceNew:    "250.000 KZ",
			PriceUsed:   "120.000 KZ",
			RepairCost:  "60.000 KZ",
		})
	}
	a.TotalItems = len(a.DamageItems)

	data, err := PDF(a)
	require.NoError(t, err)
	assert.Greater(t, len(data), 10_000)
}
