package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avarialab/avaria/internal/domain/analysis"
)

func TestParseReportValid(t *testing.T) {
	raw := []byte(`{
		"summary": "ok",
		"damageItems": [
			{"itemName": "Para-choque Dianteiro", "severity": "high", "description": "amassado no lado esquerdo", "priceNew": "180.000-350.000 KZ"},
			{"itemName": "Farol Direito", "severity": "low", "description": "arranhão superficial"}
		]
	}`)

	rep, err := ParseReport(raw)
	require.NoError(t, err)
	assert.Equal(t, "ok", rep.Summary)
	require.Len(t, rep.DamageItems, 2)
	assert.Equal(t, "Para-choque Dianteiro", rep.DamageItems[0].ItemName)
	assert.Equal(t, analysis.SeverityHigh, rep.DamageItems[0].Severity)
	assert.Equal(t, "180.000-350.000 KZ", rep.DamageItems[0].PriceNew)
}

func TestParseReportEmptyArrayIsValid(t *testing.T) {
	// the assembler, not the parser, decides what an empty report means
	rep, err := ParseReport([]byte(`{"summary": "nada", "damageItems": []}`))
	require.NoError(t, err)
	assert.Empty(t, rep.DamageItems)
}

func TestParseReportMissingDamageItems(t *testing.T) {
	_, err := ParseReport([]byte(`{"summary": "ok"}`))
	require.ErrorIs(t, err, analysis.ErrInvalidModelOutput)
	assert.Contains(t, err.Error(), "missing damageItems")
}

func TestParseReportDamageItemsWrongType(t *testing.T) {
	cases := map[string]string{
		"null":   `{"damageItems": null}`,
		"object": `{"damageItems": {"itemName": "x"}}`,
		"string": `{"damageItems": "none"}`,
		"number": `{"damageItems": 3}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseReport([]byte(raw))
			require.ErrorIs(t, err, analysis.ErrInvalidModelOutput)
		})
	}
}

func TestParseReportRejectsUnknownSeverity(t *testing.T) {
	raw := []byte(`{"damageItems": [{"itemName": "Porta", "severity": "critical", "description": "x"}]}`)
	_, err := ParseReport(raw)
	require.ErrorIs(t, err, analysis.ErrInvalidModelOutput)
	assert.Contains(t, err.Error(), "critical")
}

func TestParseReportNotJSON(t *testing.T) {
	_, err := ParseReport([]byte("sorry, I cannot help with that"))
	require.ErrorIs(t, err, analysis.ErrInvalidModelOutput)
}

func TestParseReportSummaryWrongTypeTolerated(t *testing.T) {
	raw := []byte(`{"summary": 42, "damageItems": [{"itemName": "Porta", "severity": "low", "description": "x"}]}`)
	rep, err := ParseReport(raw)
	require.NoError(t, err)
	assert.Empty(t, rep.Summary)
}
