package export

import (
	"encoding/json"

	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

// JSON renders a stored analysis as indented JSON.
func JSON(a *domain.Analysis) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}
