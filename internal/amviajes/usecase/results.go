package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/event"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/kvstore"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/session"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgerror"
)

const MaxResults = 5

type ResultsInput struct {
	ClientID string
	Sort     string
}

type ResultsOutput struct {
	Query       entity.SearchQuery
	Sort        string
	Total       int
	Itineraries []entity.Itinerary
}

func (u *Usecase) Results(ctx context.Context, in ResultsInput) (*ResultsOutput, error) {
	if _, err := u.requireSession(ctx, in.ClientID, msgResultsLogin); err != nil {
		return nil, err
	}

	query, ok, err := kvstore.GetJSON[entity.SearchQuery](ctx, u.store, session.ClientKey(in.ClientID, KeySearch))
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}
	if !ok {
		return nil, pkgerror.NewBusiness(msgNoSearch, pkgerror.CodeNotFound).WithRedirect("/")
	}

	itineraries, _, err := kvstore.GetJSON[[]entity.Itinerary](ctx, u.store, session.ClientKey(in.ClientID, KeyItineraries))
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}

	criterion := strings.TrimSpace(in.Sort)
	if criterion == "" {
		criterion = DefaultSort
	}

	sorted := SortItineraries(itineraries, criterion)
	if len(sorted) > MaxResults {
		sorted = sorted[:MaxResults]
	}

	return &ResultsOutput{
		Query:       query,
		Sort:        criterion,
		Total:       len(itineraries),
		Itineraries: sorted,
	}, nil
}

type SelectInput struct {
	ClientID    string
	ItineraryID string
}

func (u *Usecase) SelectItinerary(ctx context.Context, in SelectInput) (*entity.Itinerary, error) {
	if _, err := u.requireSession(ctx, in.ClientID, msgSelectLogin); err != nil {
		return nil, err
	}

	itineraries, _, err := kvstore.GetJSON[[]entity.Itinerary](ctx, u.store, session.ClientKey(in.ClientID, KeyItineraries))
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}

	id := strings.TrimSpace(in.ItineraryID)
	for _, it := range itineraries {
		if it.ID != id {
			continue
		}
		if err := kvstore.SetJSON(ctx, u.store, session.ClientKey(in.ClientID, KeySelected), it); err != nil {
			return nil, pkgerror.NewServer(err)
		}

		slog.InfoContext(ctx, "itinerary selected", "client_id", in.ClientID, "itinerary_id", it.ID)
		u.publish(ctx, event.TypeItinerarySelected, in.ClientID, map[string]any{
			"id":          it.ID,
			"aerolinea":   it.Airline,
			"precioTotal": it.TotalPrice,
		})

		selected := it
		return &selected, nil
	}

	return nil, pkgerror.NewBusiness(msgItineraryNotFound, pkgerror.CodeNotFound).WithRedirect("/vuelos")
}
