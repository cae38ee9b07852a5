package usecase

import (
	"errors"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/airport"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/searchform"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/session"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgerror"
)

const (
	msgAirportsUnavailable = "No se pudieron cargar los aeropuertos."
	msgAirportNotFound     = "Aeropuerto no encontrado."
	msgResultsLogin        = "Debes iniciar sesión para ver los resultados."
	msgSelectLogin         = "Debes iniciar sesión."
	msgTicketLogin         = "Debes iniciar sesión para ver tu pasaje."
	msgNoSearch            = "No hay una búsqueda de vuelos activa."
	msgItineraryNotFound   = "El vuelo seleccionado no existe."
	msgNoSelection         = "No se ha seleccionado un vuelo."
	msgMissingCredentials  = "Completá usuario y contraseña."
	msgInvalidUsername     = "El usuario solo puede contener letras."
	msgUserExists          = "Ese usuario ya existe."
	msgInvalidCredentials  = "Usuario o contraseña incorrectos."
	msgMissingClient       = "Falta el identificador de cliente."
)

func airportError(err error) error {
	switch {
	case errors.Is(err, airport.ErrNotLoaded):
		return pkgerror.NewBusiness(msgAirportsUnavailable, pkgerror.CodeUnavailable)
	case errors.Is(err, airport.ErrNotFound):
		return pkgerror.NewBusiness(msgAirportNotFound, pkgerror.CodeNotFound)
	default:
		return pkgerror.NewServer(err)
	}
}

func sessionError(err error) error {
	switch {
	case errors.Is(err, session.ErrMissingCredentials):
		return pkgerror.NewBusiness(msgMissingCredentials, pkgerror.CodeInvalidInput)
	case errors.Is(err, session.ErrInvalidUsername):
		return pkgerror.NewBusiness(msgInvalidUsername, pkgerror.CodeInvalidInput)
	case errors.Is(err, session.ErrUserExists):
		return pkgerror.NewBusiness(msgUserExists, pkgerror.CodeConflict)
	case errors.Is(err, session.ErrInvalidCredentials):
		return pkgerror.NewBusiness(msgInvalidCredentials, pkgerror.CodeUnauthorized)
	case errors.Is(err, session.ErrMissingClient):
		return pkgerror.NewBusiness(msgMissingClient, pkgerror.CodeInvalidInput)
	default:
		return pkgerror.NewServer(err)
	}
}

func formError(err error) error {
	var verr *searchform.ValidationError
	if !errors.As(err, &verr) {
		return pkgerror.NewServer(err)
	}
	if verr.Kind == searchform.KindUnauthorized {
		return pkgerror.NewBusiness(verr.Message, pkgerror.CodeUnauthorized).WithRedirect("/")
	}
	return pkgerror.NewBusiness(verr.Message, pkgerror.CodeInvalidInput)
}
