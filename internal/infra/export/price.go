package export

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

// The core keeps prices as opaque display strings; this tolerant parser is
// consumed only by the export collaborators, never by the pipeline.

var (
	rangeRe  = regexp.MustCompile(`([\d.]+)\s*-\s*([\d.]+)`)
	numberRe = regexp.MustCompile(`[\d.]+`)
)

// ParsePrice extracts a numeric value out of free-form currency text like
// "85.000 KZ" or "45.000-60.000 KZ". Dots are thousands separators. A range
// yields its midpoint; unparseable text yields 0.
func ParsePrice(s string) float64 {
	if s == "" {
		return 0
	}

	if m := rangeRe.FindStringSubmatch(s); m != nil {
		min := parseNumber(m[1])
		max := parseNumber(m[2])
		return (min + max) / 2
	}

	if m := numberRe.FindString(s); m != "" {
		return parseNumber(m)
	}

	return 0
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ".", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// FinancialSummary holds the aggregate cost totals of one report.
type FinancialSummary struct {
	TotalNew    float64
	TotalUsed   float64
	TotalRepair float64
}

// Summarize totals the three price columns across all damage items.
func Summarize(items []domain.DamageItem) FinancialSummary {
	var sum FinancialSummary
	for _, it := range items {
		sum.TotalNew += ParsePrice(it.PriceNew)
		sum.TotalUsed += ParsePrice(it.PriceUsed)
		sum.TotalRepair += ParsePrice(it.RepairCost)
	}
	return sum
}

// FormatKwanza renders a value as "1.234.567 KZ".
func FormatKwanza(v float64) string {
	n := int64(math.Round(v))
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	return out + " KZ"
}
