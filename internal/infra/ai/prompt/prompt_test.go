package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avarialab/avaria/internal/domain/analysis"
)

func TestVisionPromptIncludesUserContext(t *testing.T) {
	p := Vision("colisão traseira no estacionamento")
	assert.Contains(t, p, "Contexto adicional fornecido pelo usuário: colisão traseira no estacionamento")
	assert.Contains(t, p, "Liste TODOS os componentes visíveis")
}

func TestVisionPromptWithoutDescription(t *testing.T) {
	p := Vision("")
	assert.NotContains(t, p, "Contexto adicional")
}

func TestReasoningPromptCarriesVisionTextVerbatim(t *testing.T) {
	vision := "Para-choque dianteiro com amassado de ~20cm no lado esquerdo."
	p := Reasoning(vision, "bati num poste", analysis.AssetInfo{})
	assert.Contains(t, p, vision)
	assert.Contains(t, p, "CONTEXTO DO USUÁRIO:\nbati num poste")
}

func TestReasoningPromptDefaultsMissingDescription(t *testing.T) {
	p := Reasoning("texto visual", "", analysis.AssetInfo{})
	assert.Contains(t, p, "CONTEXTO DO USUÁRIO:\nNão fornecido")
}

func TestReasoningPromptStatesOutputContract(t *testing.T) {
	p := Reasoning("x", "", analysis.AssetInfo{})
	for _, key := range []string{
		`"summary"`, `"damageItems"`, `"itemName"`, `"severity"`,
		`"priceNew"`, `"priceUsed"`, `"repairCost"`,
	} {
		assert.Contains(t, p, key)
	}
	assert.Contains(t, p, `"low|moderate|high"`)
	assert.Contains(t, p, "Retorne APENAS o objeto JSON válido")
}

func TestReasoningPromptEmbedsPriceReference(t *testing.T) {
	p := Reasoning("x", "", analysis.AssetInfo{})
	assert.Contains(t, p, "TABELA DE REFERÊNCIA DE PREÇOS")
	assert.Contains(t, p, "Kwanza")
}

func TestAssetSummary(t *testing.T) {
	tests := []struct {
		name  string
		asset analysis.AssetInfo
		want  []string
		skip  []string
	}{
		{
			name: "full vehicle",
			asset: analysis.AssetInfo{
				AssetType: analysis.AssetVehicle,
				Brand:     "Toyota",
				Model:     "Corolla",
				Year:      "2019",
				Quality:   analysis.QualityMedium,
			},
			want: []string{
				"Tipo de bem: Veículo", "Marca: Toyota", "Modelo: Corolla",
				"Ano: 2019", "Tier de qualidade: Médio",
			},
		},
		{
			name:  "empty metadata omits optional lines",
			asset: analysis.AssetInfo{},
			want:  []string{"Tipo de bem: Não informado"},
			skip:  []string{"Marca:", "Modelo:", "Ano:", "Tier"},
		},
		{
			name:  "furniture premium",
			asset: analysis.AssetInfo{AssetType: analysis.AssetFurniture, Quality: analysis.QualityPremium},
			want:  []string{"Tipo de bem: Mobília", "Tier de qualidade: Premium"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssetSummary(tt.asset)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, s := range tt.skip {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestReasoningPromptEmbedsAssetSummary(t *testing.T) {
	p := Reasoning("x", "", analysis.AssetInfo{AssetType: analysis.AssetRealEstate, Brand: "n/a"})
	i := strings.Index(p, "DADOS DO BEM:")
	assert.GreaterOrEqual(t, i, 0)
	assert.Contains(t, p, "Tipo de bem: Imóvel")
}
