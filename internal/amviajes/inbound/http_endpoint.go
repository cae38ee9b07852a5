package inbound

import (
	"context"
	"net/http"
	"strings"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/usecase"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

// Airports answers autocomplete by default. country or city switch it to a
// plain lookup.
func (h *HTTPEndpoint) Airports(ctx context.Context, r *http.Request) (any, error) {
	q := r.URL.Query()

	if city := strings.TrimSpace(q.Get("city")); city != "" {
		a, err := h.uc.AirportByCity(ctx, city)
		if err != nil {
			return nil, err
		}
		return AirportsResponse{Airports: []entity.Airport{a}}, nil
	}

	if q.Has("country") {
		airports, err := h.uc.AirportsByCountry(ctx, q.Get("country"))
		if err != nil {
			return nil, err
		}
		return AirportsResponse{Airports: nonNil(airports)}, nil
	}

	airports, err := h.uc.Autocomplete(ctx, usecase.AutocompleteInput{
		Query:     q.Get("q"),
		ExcludeID: q.Get("exclude"),
	})
	if err != nil {
		return nil, err
	}
	return AirportsResponse{Airports: nonNil(airports)}, nil
}

func (h *HTTPEndpoint) Airport(ctx context.Context, r *http.Request) (any, error) {
	a, err := h.uc.Airport(ctx, pkgrouter.PathParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (h *HTTPEndpoint) Countries(ctx context.Context, _ *http.Request) (any, error) {
	countries, err := h.uc.Countries(ctx)
	if err != nil {
		return nil, err
	}
	return CountriesResponse{Countries: nonNil(countries)}, nil
}

func (h *HTTPEndpoint) Register(ctx context.Context, r *http.Request) (any, error) {
	var req AuthRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	out, err := h.uc.Register(ctx, usecase.AuthInput{
		ClientID: pkgrouter.ClientID(ctx),
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}
	return mapSession(out), nil
}

func (h *HTTPEndpoint) Login(ctx context.Context, r *http.Request) (any, error) {
	var req AuthRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	out, err := h.uc.Login(ctx, usecase.AuthInput{
		ClientID: pkgrouter.ClientID(ctx),
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}
	return mapSession(out), nil
}

func (h *HTTPEndpoint) Logout(ctx context.Context, _ *http.Request) (any, error) {
	if err := h.uc.Logout(ctx, pkgrouter.ClientID(ctx)); err != nil {
		return nil, err
	}
	return SessionResponse{}, nil
}

func (h *HTTPEndpoint) Session(ctx context.Context, _ *http.Request) (any, error) {
	out, err := h.uc.Session(ctx, pkgrouter.ClientID(ctx))
	if err != nil {
		return nil, err
	}
	return mapSession(out), nil
}

func (h *HTTPEndpoint) SubmitSearch(ctx context.Context, r *http.Request) (any, error) {
	var req SearchRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	in, err := toSubmitInput(pkgrouter.ClientID(ctx), req)
	if err != nil {
		return nil, err
	}

	out, err := h.uc.SubmitSearch(ctx, in)
	if err != nil {
		return nil, err
	}
	return SearchResponse{
		Query:       mapSearchQuery(out.Query),
		Itineraries: nonNil(out.Itineraries),
	}, nil
}

func (h *HTTPEndpoint) Results(ctx context.Context, r *http.Request) (any, error) {
	out, err := h.uc.Results(ctx, usecase.ResultsInput{
		ClientID: pkgrouter.ClientID(ctx),
		Sort:     r.URL.Query().Get("sort"),
	})
	if err != nil {
		return nil, err
	}
	return ResultsResponse{
		Query:       mapSearchQuery(out.Query),
		Sort:        out.Sort,
		Total:       out.Total,
		Itineraries: nonNil(out.Itineraries),
	}, nil
}

func (h *HTTPEndpoint) SelectItinerary(ctx context.Context, r *http.Request) (any, error) {
	return h.uc.SelectItinerary(ctx, usecase.SelectInput{
		ClientID:    pkgrouter.ClientID(ctx),
		ItineraryID: pkgrouter.PathParam(r, "id"),
	})
}

func (h *HTTPEndpoint) Ticket(ctx context.Context, _ *http.Request) (any, error) {
	return h.uc.Ticket(ctx, pkgrouter.ClientID(ctx))
}
