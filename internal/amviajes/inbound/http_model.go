package inbound

import "github.com/shandysiswandi/goamviajes/internal/amviajes/entity"

type AuthRequest struct {
	Username string `json:"usuario" validate:"max=64"`
	Password string `json:"clave" validate:"max=128"`
}

type SearchRequest struct {
	OriginID      string             `json:"origenId" validate:"max=32"`
	DestinationID string             `json:"destinoId" validate:"max=32"`
	DepartDate    string             `json:"fechaIda" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate    string             `json:"fechaVuelta" validate:"omitempty,datetime=2006-01-02"`
	OneWay        bool               `json:"soloIda"`
	Swap          bool               `json:"invertir"`
	Passengers    *PassengersRequest `json:"pasajeros"`
}

type PassengersRequest struct {
	Adults   int `json:"adultos" validate:"min=0,max=99"`
	Children int `json:"ninos" validate:"min=0,max=99"`
	Infants  int `json:"bebes" validate:"min=0,max=99"`
}

type AirportsResponse struct {
	Airports []entity.Airport `json:"aeropuertos"`
}

type CountriesResponse struct {
	Countries []string `json:"paises"`
}

type SessionResponse struct {
	Username string `json:"usuario,omitempty"`
	LoggedIn bool   `json:"sesionIniciada"`
}

// SearchQueryResponse is the flat search summary shown above the results.
type SearchQueryResponse struct {
	Origin      string  `json:"origen"`
	OriginIATA  string  `json:"origenIATA"`
	Destination string  `json:"destino"`
	DestIATA    string  `json:"destinoIATA"`
	DepartDate  string  `json:"fechaIda"`
	ReturnDate  *string `json:"fechaVuelta"`
	OneWay      bool    `json:"soloIda"`
	Passengers  int     `json:"pasajeros"`
	Adults      int     `json:"adultos"`
	Children    int     `json:"ninos"`
	Infants     int     `json:"bebes"`
}

type SearchResponse struct {
	Query       SearchQueryResponse `json:"busqueda"`
	Itineraries []entity.Itinerary  `json:"vuelos"`
}

type ResultsResponse struct {
	Query       SearchQueryResponse `json:"busqueda"`
	Sort        string              `json:"orden"`
	Total       int                 `json:"total"`
	Itineraries []entity.Itinerary  `json:"vuelos"`
}
