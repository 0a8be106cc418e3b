package lookup

import (
	"context"

	"github.com/ytget/animal-sounds/internal/model"
)

// Lookup defines the backend operations used by the selection controller.
type Lookup interface {
	// GetSounds returns the sounds for animal in response order. A missing
	// "sounds" field yields an empty list.
	GetSounds(ctx context.Context, animal string) ([]string, error)

	// GetCallFor returns the call-for text for the pair, or "" when absent.
	GetCallFor(ctx context.Context, animal, sound string) (string, error)

	// ListAnimals returns the animals offered by the index page.
	ListAnimals(ctx context.Context) ([]string, error)

	// Health returns the backend health report.
	Health(ctx context.Context) (model.HealthResponse, error)
}
