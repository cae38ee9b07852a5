package inbound

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/usecase"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgerror"
)

const (
	maxBodyBytes = 1 << 16

	msgInvalidBody = "Solicitud inválida."
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeBody reads an optional JSON body into dst and checks its shape. An
// empty body leaves dst untouched.
func decodeBody(r *http.Request, dst any) error {
	if r.Body != nil {
		err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
		if err != nil && !errors.Is(err, io.EOF) {
			return pkgerror.NewBusiness(msgInvalidBody, pkgerror.CodeInvalidInput)
		}
	}
	if err := validate.Struct(dst); err != nil {
		return pkgerror.NewBusiness(msgInvalidBody, pkgerror.CodeInvalidInput)
	}
	return nil
}

func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		return nil, pkgerror.NewBusiness(msgInvalidBody, pkgerror.CodeInvalidInput)
	}
	return &parsed, nil
}

func toSubmitInput(clientID string, req SearchRequest) (usecase.SubmitSearchInput, error) {
	depart, err := parseDate(req.DepartDate)
	if err != nil {
		return usecase.SubmitSearchInput{}, err
	}
	ret, err := parseDate(req.ReturnDate)
	if err != nil {
		return usecase.SubmitSearchInput{}, err
	}

	in := usecase.SubmitSearchInput{
		ClientID:      clientID,
		OriginID:      strings.TrimSpace(req.OriginID),
		DestinationID: strings.TrimSpace(req.DestinationID),
		DepartDate:    depart,
		ReturnDate:    ret,
		OneWay:        req.OneWay,
		Swap:          req.Swap,
	}
	if req.Passengers != nil {
		in.Passengers = &entity.PassengerCounts{
			Adults:   req.Passengers.Adults,
			Children: req.Passengers.Children,
			Infants:  req.Passengers.Infants,
		}
	}
	return in, nil
}

func mapSearchQuery(q entity.SearchQuery) SearchQueryResponse {
	resp := SearchQueryResponse{
		Origin:      q.Origin.City,
		OriginIATA:  q.Origin.IATA,
		Destination: q.Destination.City,
		DestIATA:    q.Destination.IATA,
		DepartDate:  q.DepartDate.Format(entity.DateLayout),
		OneWay:      q.OneWay,
		Passengers:  q.Passengers.Total(),
		Adults:      q.Passengers.Adults,
		Children:    q.Passengers.Children,
		Infants:     q.Passengers.Infants,
	}
	if q.ReturnDate != nil {
		value := q.ReturnDate.Format(entity.DateLayout)
		resp.ReturnDate = &value
	}
	return resp
}

func mapSession(out *usecase.SessionOutput) SessionResponse {
	return SessionResponse{Username: out.Username, LoggedIn: out.LoggedIn}
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
