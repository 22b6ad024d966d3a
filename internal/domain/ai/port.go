package ai

import (
	"context"

	"github.com/avarialab/avaria/internal/domain/analysis"
)

// Report is the validated payload of the reasoning stage.
type Report struct {
	Summary     string                `json:"summary"`
	DamageItems []analysis.DamageItem `json:"damageItems"`
}

// VisionClient describes every visible component and damage on the images
// as one block of free text.
type VisionClient interface {
	Describe(ctx context.Context, images []analysis.UploadedImage, description string) (string, error)
}

// ReasoningClient turns the vision text plus asset metadata into a
// structured damage report.
type ReasoningClient interface {
	Synthesize(ctx context.Context, visionText, description string, asset analysis.AssetInfo) (Report, error)
}
