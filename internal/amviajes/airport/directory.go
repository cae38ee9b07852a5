package airport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
)

var (
	ErrNotLoaded = errors.New("airport directory not loaded")
	ErrNotFound  = errors.New("airport not found")
)

// Directory holds the airport list loaded from a Source. Until Load succeeds
// every lookup returns ErrNotLoaded.
type Directory struct {
	source Source

	mu       sync.RWMutex
	airports []entity.Airport
	byID     map[string]int
	loaded   bool
}

func NewDirectory(source Source) *Directory {
	return &Directory{source: source}
}

func (d *Directory) Load(ctx context.Context) error {
	airports, err := d.source.Airports(ctx)
	if err != nil {
		return fmt.Errorf("load airports from %s: %w", d.source.Name(), err)
	}

	byID := make(map[string]int, len(airports))
	for i, a := range airports {
		byID[a.ID] = i
	}

	d.mu.Lock()
	d.airports = airports
	d.byID = byID
	d.loaded = true
	d.mu.Unlock()

	return nil
}

func (d *Directory) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}

func (d *Directory) All() ([]entity.Airport, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.loaded {
		return nil, ErrNotLoaded
	}
	return append([]entity.Airport(nil), d.airports...), nil
}

func (d *Directory) ByID(id string) (entity.Airport, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.loaded {
		return entity.Airport{}, ErrNotLoaded
	}
	i, ok := d.byID[id]
	if !ok {
		return entity.Airport{}, ErrNotFound
	}
	return d.airports[i], nil
}

// ByCity returns the first airport whose city equals city, ignoring case.
func (d *Directory) ByCity(city string) (entity.Airport, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.loaded {
		return entity.Airport{}, ErrNotLoaded
	}
	for _, a := range d.airports {
		if strings.EqualFold(a.City, city) {
			return a, nil
		}
	}
	return entity.Airport{}, ErrNotFound
}

// ByCountry returns the airports of country; an empty country returns all.
func (d *Directory) ByCountry(country string) ([]entity.Airport, error) {
	all, err := d.All()
	if err != nil {
		return nil, err
	}
	if country == "" {
		return all, nil
	}
	out := make([]entity.Airport, 0)
	for _, a := range all {
		if a.Country == country {
			out = append(out, a)
		}
	}
	return out, nil
}

func (d *Directory) Countries() ([]string, error) {
	all, err := d.All()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(all))
	countries := make([]string, 0)
	for _, a := range all {
		if _, ok := seen[a.Country]; ok {
			continue
		}
		seen[a.Country] = struct{}{}
		countries = append(countries, a.Country)
	}
	sortStrings(countries)
	return countries, nil
}

func (d *Directory) Autocomplete(query, excludeID string, limit int) ([]entity.Airport, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.loaded {
		return nil, ErrNotLoaded
	}
	return Filter(d.airports, query, excludeID, limit), nil
}
