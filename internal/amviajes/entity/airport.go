package entity

// Airport mirrors the records of the static airport document. The JSON and
// BSON field names are part of the data format.
type Airport struct {
	ID      string `json:"id" bson:"id"`
	City    string `json:"city" bson:"city"`
	IATA    string `json:"IATA" bson:"IATA"`
	Name    string `json:"name" bson:"name"`
	Country string `json:"Country" bson:"Country"`
}
