package passenger

import (
	"errors"
	"fmt"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
)

const DefaultMax = 10

type Category string

const (
	Adults   Category = "adultos"
	Children Category = "ninos"
	Infants  Category = "bebes"
)

var ErrUnknownCategory = errors.New("unknown passenger category")

// MaxReachedError is returned when an increment would push the total past
// the ceiling. Its message is shown to the user as is.
type MaxReachedError struct {
	Max int
}

func (e *MaxReachedError) Error() string {
	return MaxMessage(e.Max)
}

func MaxMessage(max int) string {
	return fmt.Sprintf("El número máximo de pasajeros es %d.", max)
}

// Counter tracks the passenger mix of a search. The zero value is not
// usable; call NewCounter.
type Counter struct {
	counts entity.PassengerCounts
	max    int
}

// NewCounter starts at one adult. A non positive max falls back to
// DefaultMax.
func NewCounter(max int) *Counter {
	if max <= 0 {
		max = DefaultMax
	}
	return &Counter{counts: entity.PassengerCounts{Adults: 1}, max: max}
}

func (c *Counter) Max() int {
	return c.max
}

func (c *Counter) Counts() entity.PassengerCounts {
	return c.counts
}

func (c *Counter) Total() int {
	return c.counts.Total()
}

// AtMax reports whether every increment is currently refused.
func (c *Counter) AtMax() bool {
	return c.Total() >= c.max
}

func (c *Counter) Increment(cat Category) error {
	v, err := c.field(cat)
	if err != nil {
		return err
	}
	if c.Total()+1 > c.max {
		return &MaxReachedError{Max: c.max}
	}
	*v++
	return nil
}

// Decrement is a no-op at the category floor: one adult, zero otherwise.
func (c *Counter) Decrement(cat Category) error {
	v, err := c.field(cat)
	if err != nil {
		return err
	}
	if *v-1 < floor(cat) {
		return nil
	}
	*v--
	return nil
}

func (c *Counter) field(cat Category) (*int, error) {
	switch cat {
	case Adults:
		return &c.counts.Adults, nil
	case Children:
		return &c.counts.Children, nil
	case Infants:
		return &c.counts.Infants, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
}

func floor(cat Category) int {
	if cat == Adults {
		return 1
	}
	return 0
}

// Set replaces the counts as given. It is used when the mix arrives already
// chosen, e.g. from an API payload; the search form validates the result.
func (c *Counter) Set(counts entity.PassengerCounts) {
	c.counts = counts
}
