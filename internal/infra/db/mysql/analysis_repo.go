package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save inserts an analysis record. Analyses are write-once, but the upsert
// keeps a retried save of the same id harmless.
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO damage_analyses
  (id, created_at, summary, total_items, count_low, count_moderate, count_high,
   damage_items, overall_severity, description, artifact_url)
VALUES (?,?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  summary=VALUES(summary), total_items=VALUES(total_items),
  count_low=VALUES(count_low), count_moderate=VALUES(count_moderate), count_high=VALUES(count_high),
  damage_items=VALUES(damage_items), overall_severity=VALUES(overall_severity),
  description=VALUES(description), artifact_url=VALUES(artifact_url);
`
	items, err := json.Marshal(a.DamageItems)
	if err != nil {
		return fmt.Errorf("marshal damage items: %w", err)
	}
	createdAt := a.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = r.db.ExecContext(ctx, q,
		a.ID, createdAt, a.Summary, a.TotalItems,
		a.SeverityCounts.Low, a.SeverityCounts.Moderate, a.SeverityCounts.High,
		items, a.OverallSeverity, a.Description, a.ArtifactURL,
	)
	return err
}

// Get by ID
func (r *AnalysisRepository) Get(ctx context.Context, id domain.AnalysisID) (*domain.Analysis, error) {
	const q = `
SELECT id, created_at, summary, total_items, count_low, count_moderate, count_high,
       damage_items, overall_severity, description, artifact_url
FROM damage_analyses
WHERE id=? LIMIT 1;
`
	a, err := scanAnalysis(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return a, err
}

// List returns every analysis, newest first
func (r *AnalysisRepository) List(ctx context.Context) ([]*domain.Analysis, error) {
	const q = `
SELECT id, created_at, summary, total_items, count_low, count_moderate, count_high,
       damage_items, overall_severity, description, artifact_url
FROM damage_analyses
ORDER BY created_at DESC, id DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Delete removes one record; absent id maps to ErrNotFound
func (r *AnalysisRepository) Delete(ctx context.Context, id domain.AnalysisID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM damage_analyses WHERE id=?;`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*domain.Analysis, error) {
	var a domain.Analysis
	var items []byte
	if err := row.Scan(
		&a.ID, &a.Timestamp, &a.Summary, &a.TotalItems,
		&a.SeverityCounts.Low, &a.SeverityCounts.Moderate, &a.SeverityCounts.High,
		&items, &a.OverallSeverity, &a.Description, &a.ArtifactURL,
	); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &a.DamageItems); err != nil {
			return nil, fmt.Errorf("unmarshal damage items for %s: %w", a.ID, err)
		}
	}
	return &a, nil
}
