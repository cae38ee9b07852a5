package entity

type Itinerary struct {
	ID                string  `json:"id"`
	Airline           string  `json:"aerolinea"`
	Origin            string  `json:"origen"`
	Destination       string  `json:"destino"`
	DepartDate        string  `json:"fechaIda"`
	DepartTime        string  `json:"horaSalida"`
	OneWay            bool    `json:"soloIda"`
	ReturnDate        *string `json:"fechaVuelta"`
	ReturnTime        *string `json:"horaVuelta"`
	BasePrice         int     `json:"precioBase"`
	PricePerPassenger int     `json:"precioPorPasajero"`
	TotalPassengers   int     `json:"pasajeros"`
	TotalPrice        int     `json:"precioTotal"`
}

type Ticket struct {
	Name        string  `json:"nombre"`
	Airline     string  `json:"aerolinea"`
	Passengers  string  `json:"pasajeros"`
	Origin      string  `json:"origen"`
	Destination string  `json:"destino"`
	DepartDate  string  `json:"fechaIda"`
	DepartTime  string  `json:"horaIda"`
	RoundTrip   bool    `json:"idaYVuelta"`
	ReturnDate  *string `json:"fechaVuelta,omitempty"`
	ReturnTime  *string `json:"horaVuelta,omitempty"`
	TotalPrice  int     `json:"precioTotal"`
	TotalPaid   string  `json:"totalPagado"`
}
