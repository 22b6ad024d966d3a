package analysis

import (
	"github.com/google/uuid"

	"github.com/avarialab/avaria/internal/domain/ai"
	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

const defaultSummary = "Análise concluída com sucesso"

// assemble turns a validated report into the immutable Analysis record:
// one counting pass per severity bucket, overall severity by presence
// precedence high > moderate > low. Item order is the model's output order.
func (s *Service) assemble(rep ai.Report, description string) (*domain.Analysis, error) {
	if len(rep.DamageItems) == 0 {
		// user-actionable outcome, not a system fault: the caller should
		// retry with clearer images or more context
		return nil, domain.ErrNoDamageFound
	}

	var counts domain.SeverityCounts
	for _, it := range rep.DamageItems {
		switch it.Severity {
		case domain.SeverityLow:
			counts.Low++
		case domain.SeverityModerate:
			counts.Moderate++
		case domain.SeverityHigh:
			counts.High++
		}
	}

	overall := domain.SeverityLow
	if counts.High > 0 {
		overall = domain.SeverityHigh
	} else if counts.Moderate > 0 {
		overall = domain.SeverityModerate
	}

	summary := rep.Summary
	if summary == "" {
		summary = defaultSummary
	}

	return &domain.Analysis{
		ID:              domain.AnalysisID(uuid.New().String()),
		Timestamp:       s.Clock.Now(),
		Summary:         summary,
		TotalItems:      len(rep.DamageItems),
		SeverityCounts:  counts,
		DamageItems:     rep.DamageItems,
		OverallSeverity: overall,
		Description:     description,
	}, nil
}
