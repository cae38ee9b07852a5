package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/event"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/kvstore"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/searchform"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/session"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgerror"
)

const (
	KeySearch      = "busquedaVuelo"
	KeyItineraries = "vuelosGenerados"
	KeySelected    = "vueloSeleccionado"
)

var itinerariesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "amviajes_itineraries_generated_total",
	Help: "Itineraries produced by submitted searches, by provider",
}, []string{"provider"})

type SubmitSearchInput struct {
	ClientID      string
	OriginID      string
	DestinationID string
	DepartDate    *time.Time
	ReturnDate    *time.Time
	OneWay        bool
	Swap          bool
	// Passengers nil keeps the form default of one adult.
	Passengers *entity.PassengerCounts
}

type SubmitSearchOutput struct {
	Query       entity.SearchQuery
	Itineraries []entity.Itinerary
}

func (u *Usecase) SubmitSearch(ctx context.Context, in SubmitSearchInput) (*SubmitSearchOutput, error) {
	username, err := u.sessions.Current(ctx, in.ClientID)
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}

	form := searchform.New(searchform.Options{MaxPassengers: u.maxPassengers, MaxDate: u.maxDate})
	if username != "" {
		if err := u.fillForm(form, in); err != nil {
			return nil, err
		}
	}

	query, err := form.Submit(username)
	if err != nil {
		return nil, formError(err)
	}

	if err := kvstore.SetJSON(ctx, u.store, session.ClientKey(in.ClientID, KeySearch), query); err != nil {
		return nil, pkgerror.NewServer(err)
	}

	itineraries, err := u.generate(ctx, query)
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}

	if err := kvstore.SetJSON(ctx, u.store, session.ClientKey(in.ClientID, KeyItineraries), itineraries); err != nil {
		return nil, pkgerror.NewServer(err)
	}

	itinerariesGenerated.WithLabelValues(u.provider.Name()).Add(float64(len(itineraries)))
	slog.InfoContext(ctx, "search submitted",
		"client_id", in.ClientID,
		"origin", query.Origin.IATA,
		"destination", query.Destination.IATA,
		"itineraries", len(itineraries),
	)
	u.publish(ctx, event.TypeSearchSubmitted, in.ClientID, map[string]any{
		"origen":      query.Origin.IATA,
		"destino":     query.Destination.IATA,
		"soloIda":     query.OneWay,
		"pasajeros":   query.Passengers.Total(),
		"itinerarios": len(itineraries),
	})

	return &SubmitSearchOutput{Query: query, Itineraries: itineraries}, nil
}

func (u *Usecase) fillForm(form *searchform.Form, in SubmitSearchInput) error {
	origin, err := u.lookupOptional(in.OriginID)
	if err != nil {
		return err
	}
	destination, err := u.lookupOptional(in.DestinationID)
	if err != nil {
		return err
	}
	form.SetRoute(origin, destination)
	if in.Swap {
		form.Swap()
	}

	form.SetOneWay(in.OneWay)
	if in.DepartDate != nil {
		form.SetDepartDate(*in.DepartDate)
	}
	if in.ReturnDate != nil && !in.OneWay {
		if err := form.SetReturnDate(*in.ReturnDate); err != nil {
			return pkgerror.NewServer(err)
		}
	}
	if in.Passengers != nil {
		form.Passengers().Set(*in.Passengers)
	}
	return nil
}

// lookupOptional resolves an airport id; an empty id leaves the field unset so
// the form reports it as missing.
func (u *Usecase) lookupOptional(id string) (*entity.Airport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	a, err := u.airports.ByID(id)
	if err != nil {
		return nil, airportError(err)
	}
	return &a, nil
}

func (u *Usecase) generate(ctx context.Context, query entity.SearchQuery) ([]entity.Itinerary, error) {
	if u.providerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.providerTimeout)
		defer cancel()
	}

	itineraries, err := u.provider.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if itineraries == nil {
		itineraries = []entity.Itinerary{}
	}
	return itineraries, nil
}
