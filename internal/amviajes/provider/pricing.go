package provider

import "fmt"

const (
	MaxItineraries = 5

	domesticMin      = 20
	domesticMax      = 100
	internationalMin = 300
	internationalMax = 900
)

var Airlines = []string{
	"Aerolíneas Argentinas",
	"LATAM",
	"Iberia",
	"American Airlines",
	"Copa Airlines",
}

// lowCostCities are the cities whose routes between each other are priced as
// domestic.
var lowCostCities = map[string]struct{}{
	"Córdoba":      {},
	"Buenos Aires": {},
}

func IsLowCostRoute(originCity, destinationCity string) bool {
	_, okOrigin := lowCostCities[originCity]
	_, okDestination := lowCostCities[destinationCity]
	return okOrigin && okDestination
}

// BasePrice is uniform in [20,100] on low cost routes and in [300,900]
// otherwise.
func BasePrice(rng Rand, originCity, destinationCity string) int {
	if IsLowCostRoute(originCity, destinationCity) {
		return domesticMin + rng.Intn(domesticMax-domesticMin+1)
	}
	return internationalMin + rng.Intn(internationalMax-internationalMin+1)
}

// RandomTime returns a uniformly random HH:MM.
func RandomTime(rng Rand) string {
	h := rng.Intn(24)
	m := rng.Intn(60)
	return fmt.Sprintf("%02d:%02d", h, m)
}
