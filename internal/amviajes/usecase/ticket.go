package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/kvstore"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/session"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgerror"
)

func (u *Usecase) Ticket(ctx context.Context, clientID string) (*entity.Ticket, error) {
	username, err := u.requireSession(ctx, clientID, msgTicketLogin)
	if err != nil {
		return nil, err
	}

	selected, ok, err := kvstore.GetJSON[entity.Itinerary](ctx, u.store, session.ClientKey(clientID, KeySelected))
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}
	if !ok {
		return nil, pkgerror.NewBusiness(msgNoSelection, pkgerror.CodeNotFound).WithRedirect("/vuelos")
	}

	var passengers *entity.PassengerCounts
	query, ok, err := kvstore.GetJSON[entity.SearchQuery](ctx, u.store, session.ClientKey(clientID, KeySearch))
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}
	if ok {
		passengers = &query.Passengers
	}

	return BuildTicket(username, selected, passengers), nil
}

// BuildTicket renders the ticket of a selected itinerary. passengers is the
// breakdown of the search that produced it, nil when that search is gone.
func BuildTicket(username string, it entity.Itinerary, passengers *entity.PassengerCounts) *entity.Ticket {
	t := &entity.Ticket{
		Name:        username,
		Airline:     it.Airline,
		Passengers:  PassengerText(passengers),
		Origin:      it.Origin,
		Destination: it.Destination,
		DepartDate:  it.DepartDate,
		DepartTime:  it.DepartTime,
		RoundTrip:   !it.OneWay,
		TotalPrice:  it.TotalPrice,
		TotalPaid:   FormatUSD(it.TotalPrice),
	}
	if t.RoundTrip {
		t.ReturnDate = it.ReturnDate
		t.ReturnTime = it.ReturnTime
	}
	return t
}

// PassengerText renders a breakdown like "3 (2 adultos, 1 niño)".
func PassengerText(p *entity.PassengerCounts) string {
	if p == nil || p.Total() == 0 {
		return "0 pasajeros"
	}

	var parts []string
	parts = appendPart(parts, p.Adults, "adulto", "adultos")
	parts = appendPart(parts, p.Children, "niño", "niños")
	parts = appendPart(parts, p.Infants, "bebé", "bebés")

	text := strconv.Itoa(p.Total())
	if len(parts) > 0 {
		text += " (" + strings.Join(parts, ", ") + ")"
	}
	return text
}

func appendPart(parts []string, count int, singular, plural string) []string {
	if count <= 0 {
		return parts
	}
	if count == 1 {
		return append(parts, fmt.Sprintf("%d %s", count, singular))
	}
	return append(parts, fmt.Sprintf("%d %s", count, plural))
}

// FormatUSD formats whole dollars the es-AR way: "US$ 1.234".
func FormatUSD(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	value := strconv.Itoa(amount)
	for i := len(value) - 3; i > 0; i -= 3 {
		value = value[:i] + "." + value[i:]
	}
	if negative {
		return "-US$ " + value
	}
	return "US$ " + value
}
