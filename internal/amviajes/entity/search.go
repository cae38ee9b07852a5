package entity

import "time"

const DateLayout = "2006-01-02"

type PassengerCounts struct {
	Adults   int `json:"adultos"`
	Children int `json:"ninos"`
	Infants  int `json:"bebes"`
}

func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants
}

// SearchQuery is the frozen form state handed to the generator and kept for
// the results and ticket views.
type SearchQuery struct {
	Origin      Airport         `json:"origen"`
	Destination Airport         `json:"destino"`
	DepartDate  time.Time       `json:"fechaIda"`
	ReturnDate  *time.Time      `json:"fechaVuelta"`
	OneWay      bool            `json:"soloIda"`
	Passengers  PassengerCounts `json:"pasajeros"`
}
