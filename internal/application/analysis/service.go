package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/avarialab/avaria/internal/domain/ai"
	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

// Clock abstraction so timestamps are easy to test
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ArtifactStore port for the optional report archive. A nil store disables
// archiving.
type ArtifactStore interface {
	UploadJSON(ctx context.Context, key string, data []byte) (string, error)
}

// Service implements the analyze use-cases. Safe for concurrent use: the
// only shared state between requests is the Repository.
type Service struct {
	Repo      domain.Repository
	Vision    ai.VisionClient
	Reasoning ai.ReasoningClient
	Artifacts ArtifactStore
	Guard     Guard
	Clock     Clock

	// StageTimeout caps each model call separately. Zero means no cap
	// beyond the transport default.
	StageTimeout time.Duration
}

// AnalyzeCommand carries one analyze request. Images and Asset are consumed
// here and never outlive the call.
type AnalyzeCommand struct {
	Images      []domain.UploadedImage
	Description string
	Asset       domain.AssetInfo
}

// Analyze runs guard → vision → reasoning → assemble strictly in order.
// Any stage failure short-circuits the rest; there is no internal retry
// (retrying a non-deterministic generation can also change its output) and
// nothing is persisted until the whole pipeline has succeeded.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (*domain.Analysis, error) {
	if err := s.Guard.Validate(cmd.Images); err != nil {
		return nil, err
	}

	vctx, cancel := s.stageContext(ctx)
	visionText, err := s.Vision.Describe(vctx, cmd.Images, cmd.Description)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("vision stage: %w", err)
	}

	rctx, cancel := s.stageContext(ctx)
	rep, err := s.Reasoning.Synthesize(rctx, visionText, cmd.Description, cmd.Asset)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("reasoning stage: %w", err)
	}

	a, err := s.assemble(rep, cmd.Description)
	if err != nil {
		return nil, err
	}

	// archive is best-effort: a report the user paid two model calls for
	// must not be lost to a bucket hiccup
	if s.Artifacts != nil {
		if data, merr := json.Marshal(a); merr == nil {
			key := fmt.Sprintf("reports/%s.json", a.ID)
			if url, uerr := s.Artifacts.UploadJSON(ctx, key, data); uerr == nil {
				a.ArtifactURL = url
			} else {
				log.Printf("artifact upload failed id=%s err=%v", a.ID, uerr)
			}
		}
	}

	if err := s.Repo.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save analysis: %w", err)
	}
	return a, nil
}

// List returns every persisted analysis, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Analysis, error) {
	return s.Repo.List(ctx)
}

// Get returns one analysis by id.
func (s *Service) Get(ctx context.Context, id domain.AnalysisID) (*domain.Analysis, error) {
	return s.Repo.Get(ctx, id)
}

// Delete removes one analysis by id. Deleting an absent id returns
// ErrNotFound, so concurrent deletes of the same id are harmless.
func (s *Service) Delete(ctx context.Context, id domain.AnalysisID) error {
	return s.Repo.Delete(ctx, id)
}

func (s *Service) stageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.StageTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.StageTimeout)
}
