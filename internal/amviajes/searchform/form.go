// Package searchform holds the flight search form: origin and destination
// selection, trip type, dates and passengers, plus the submit rules that turn
// it into a SearchQuery.
package searchform

import (
	"errors"
	"fmt"
	"time"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/passenger"
)

var (
	ErrSameAirport    = errors.New("destination equals origin")
	ErrReturnDisabled = errors.New("return date is disabled for one-way trips")

	DefaultMaxDate = time.Date(2027, time.December, 31, 0, 0, 0, 0, time.UTC)
)

const (
	msgLoginRequired   = "Debes iniciar sesión para buscar vuelos."
	msgRequiredFields  = "Por favor, completa todos los campos requeridos."
	msgSameAirport     = "El origen y el destino no pueden ser iguales."
	msgReturnBefore    = "La fecha de vuelta debe ser posterior a la fecha de ida."
	msgAdultRequired   = "Debe viajar al menos un adulto."
	msgNegativeCount   = "La cantidad de pasajeros no puede ser negativa."
	msgHorizonTemplate = "Las fechas no pueden ser posteriores al %s."
)

type Kind int

const (
	KindInvalid Kind = iota + 1
	KindUnauthorized
)

// ValidationError is a refused submit. Message is the text shown next to the
// form.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type Options struct {
	MaxPassengers int
	MaxDate       time.Time
}

type Form struct {
	origin          *entity.Airport
	originText      string
	destination     *entity.Airport
	destinationText string
	oneWay          bool
	departDate      *time.Time
	returnDate      *time.Time
	passengers      *passenger.Counter
	maxDate         time.Time
	message         string
}

func New(opts Options) *Form {
	maxDate := opts.MaxDate
	if maxDate.IsZero() {
		maxDate = DefaultMaxDate
	}
	return &Form{
		passengers: passenger.NewCounter(opts.MaxPassengers),
		maxDate:    truncateDay(maxDate),
	}
}

// DisplayText is how a selected airport is shown in its input.
func DisplayText(a entity.Airport) string {
	return fmt.Sprintf("%s (%s)", a.City, a.IATA)
}

// SelectOrigin clears the destination when it is the new origin.
func (f *Form) SelectOrigin(a entity.Airport) {
	f.origin = &a
	f.originText = DisplayText(a)
	if f.destination != nil && f.destination.ID == a.ID {
		f.ClearDestination()
	}
}

func (f *Form) SelectDestination(a entity.Airport) error {
	if f.origin != nil && f.origin.ID == a.ID {
		return ErrSameAirport
	}
	f.destination = &a
	f.destinationText = DisplayText(a)
	return nil
}

// SetRoute fills both ends at once, as a submitted payload does. Unlike the
// interactive selectors it keeps an equal pair so Validate can report it.
func (f *Form) SetRoute(origin, destination *entity.Airport) {
	f.ClearOrigin()
	f.ClearDestination()
	if origin != nil {
		o := *origin
		f.origin = &o
		f.originText = DisplayText(o)
	}
	if destination != nil {
		d := *destination
		f.destination = &d
		f.destinationText = DisplayText(d)
	}
}

func (f *Form) ClearOrigin() {
	f.origin = nil
	f.originText = ""
}

func (f *Form) ClearDestination() {
	f.destination = nil
	f.destinationText = ""
}

// Swap exchanges origin and destination together with their text. It does
// nothing when both are empty.
func (f *Form) Swap() {
	if f.origin == nil && f.destination == nil {
		return
	}
	f.origin, f.destination = f.destination, f.origin
	f.originText, f.destinationText = f.destinationText, f.originText
}

// SetOneWay clears the return date when switching to a one-way trip.
func (f *Form) SetOneWay(oneWay bool) {
	f.oneWay = oneWay
	if oneWay {
		f.returnDate = nil
	}
}

func (f *Form) SetDepartDate(d time.Time) {
	d = truncateDay(d)
	f.departDate = &d
}

func (f *Form) SetReturnDate(d time.Time) error {
	if f.oneWay {
		return ErrReturnDisabled
	}
	d = truncateDay(d)
	f.returnDate = &d
	return nil
}

func (f *Form) ClearDates() {
	f.departDate = nil
	f.returnDate = nil
}

func (f *Form) Origin() (entity.Airport, bool) {
	if f.origin == nil {
		return entity.Airport{}, false
	}
	return *f.origin, true
}

func (f *Form) Destination() (entity.Airport, bool) {
	if f.destination == nil {
		return entity.Airport{}, false
	}
	return *f.destination, true
}

func (f *Form) OriginText() string      { return f.originText }
func (f *Form) DestinationText() string { return f.destinationText }
func (f *Form) OneWay() bool            { return f.oneWay }
func (f *Form) ReturnEnabled() bool     { return !f.oneWay }
func (f *Form) MaxDate() time.Time      { return f.maxDate }

func (f *Form) Passengers() *passenger.Counter {
	return f.passengers
}

// Message is the inline message left by the last submit attempt.
func (f *Form) Message() string {
	return f.message
}

// Validate applies the submit rules in order and returns the first one that
// fails. session is the logged in username, empty when nobody is.
func (f *Form) Validate(session string) error {
	if session == "" {
		return &ValidationError{Kind: KindUnauthorized, Message: msgLoginRequired}
	}
	if f.origin == nil || f.destination == nil || f.departDate == nil || (!f.oneWay && f.returnDate == nil) {
		return invalid(msgRequiredFields)
	}
	if f.origin.ID == f.destination.ID {
		return invalid(msgSameAirport)
	}
	if f.departDate.After(f.maxDate) || (!f.oneWay && f.returnDate.After(f.maxDate)) {
		return invalid(fmt.Sprintf(msgHorizonTemplate, f.maxDate.Format("02/01/2006")))
	}
	if !f.oneWay && f.returnDate.Before(*f.departDate) {
		return invalid(msgReturnBefore)
	}
	if c := f.passengers.Counts(); c.Adults < 0 || c.Children < 0 || c.Infants < 0 {
		return invalid(msgNegativeCount)
	}
	if f.passengers.Total() > f.passengers.Max() {
		return invalid(passenger.MaxMessage(f.passengers.Max()))
	}
	if f.passengers.Counts().Adults < 1 {
		return invalid(msgAdultRequired)
	}
	return nil
}

// Submit validates the form and freezes it into a SearchQuery. A refused
// submit only updates Message; a blocking authorization notice leaves it as
// it was.
func (f *Form) Submit(session string) (entity.SearchQuery, error) {
	if err := f.Validate(session); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) && verr.Kind == KindInvalid {
			f.message = verr.Message
		}
		return entity.SearchQuery{}, err
	}
	f.message = ""

	query := entity.SearchQuery{
		Origin:      *f.origin,
		Destination: *f.destination,
		DepartDate:  *f.departDate,
		OneWay:      f.oneWay,
		Passengers:  f.passengers.Counts(),
	}
	if !f.oneWay {
		r := *f.returnDate
		query.ReturnDate = &r
	}
	return query, nil
}

func invalid(msg string) *ValidationError {
	return &ValidationError{Kind: KindInvalid, Message: msg}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
