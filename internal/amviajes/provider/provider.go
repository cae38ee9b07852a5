package provider

import (
	"context"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
)

// Provider turns a validated search into itinerary offers.
type Provider interface {
	Name() string
	Search(ctx context.Context, query entity.SearchQuery) ([]entity.Itinerary, error)
}
