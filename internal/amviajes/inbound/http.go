package inbound

import (
	"context"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/usecase"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgrouter"
)

type uc interface {
	Autocomplete(ctx context.Context, in usecase.AutocompleteInput) ([]entity.Airport, error)
	Airport(ctx context.Context, id string) (entity.Airport, error)
	AirportsByCountry(ctx context.Context, country string) ([]entity.Airport, error)
	AirportByCity(ctx context.Context, city string) (entity.Airport, error)
	Countries(ctx context.Context) ([]string, error)

	Register(ctx context.Context, in usecase.AuthInput) (*usecase.SessionOutput, error)
	Login(ctx context.Context, in usecase.AuthInput) (*usecase.SessionOutput, error)
	Logout(ctx context.Context, clientID string) error
	Session(ctx context.Context, clientID string) (*usecase.SessionOutput, error)

	SubmitSearch(ctx context.Context, in usecase.SubmitSearchInput) (*usecase.SubmitSearchOutput, error)
	Results(ctx context.Context, in usecase.ResultsInput) (*usecase.ResultsOutput, error)
	SelectItinerary(ctx context.Context, in usecase.SelectInput) (*entity.Itinerary, error)
	Ticket(ctx context.Context, clientID string) (*entity.Ticket, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/airports", end.Airports)
	r.GET("/airports/{id}", end.Airport)
	r.GET("/countries", end.Countries)

	r.POST("/auth/register", end.Register)
	r.POST("/auth/login", end.Login)
	r.POST("/auth/logout", end.Logout)
	r.GET("/auth/session", end.Session)

	r.POST("/searches", end.SubmitSearch)
	r.GET("/vuelos", end.Results)
	r.POST("/vuelos/{id}/select", end.SelectItinerary)
	r.GET("/pasajes", end.Ticket)
}
