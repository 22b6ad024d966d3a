package analysis

import "context"

// Repository port (interface for persistence). Implementations must be safe
// for concurrent Save/List/Delete; Delete of an absent id returns ErrNotFound.
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	Get(ctx context.Context, id AnalysisID) (*Analysis, error)
	List(ctx context.Context) ([]*Analysis, error)
	Delete(ctx context.Context, id AnalysisID) error
}
