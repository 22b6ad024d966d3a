package analysis

import "errors"

// Error taxonomy. The HTTP layer maps these to status codes; everything else
// falls through as an unclassified 500.
var (
	// caller-fixable input errors
	ErrNoImages         = errors.New("no images provided")
	ErrTooManyImages    = errors.New("too many images")
	ErrImageTooLarge    = errors.New("image too large")
	ErrInvalidImageType = errors.New("invalid image type")

	// ErrPayloadTooLarge means the base64-encoded data URI exceeded the
	// model's practical ceiling, even though the raw file passed the guard.
	ErrPayloadTooLarge = errors.New("encoded image payload too large")

	// upstream model errors
	ErrEmptyVisionResponse = errors.New("vision stage returned no description")
	ErrInvalidModelOutput  = errors.New("invalid model output")

	// ErrNoDamageFound is a business outcome, not a technical fault: the
	// pipeline ran but identified zero damage items.
	ErrNoDamageFound = errors.New("no damage identified")

	// ErrMissingCredential means the model API key is not configured.
	ErrMissingCredential = errors.New("model API key not configured")

	ErrNotFound = errors.New("analysis not found")
)
