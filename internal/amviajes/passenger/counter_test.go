package passenger

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCounter(t *testing.T) {
	c := NewCounter(0)
	assert.Equal(t, DefaultMax, c.Max())
	assert.Equal(t, entity.PassengerCounts{Adults: 1}, c.Counts())
	assert.Equal(t, 1, c.Total())
}

func TestCounter_DecrementFloors(t *testing.T) {
	c := NewCounter(10)

	require.NoError(t, c.Decrement(Adults))
	require.NoError(t, c.Decrement(Children))
	require.NoError(t, c.Decrement(Infants))

	assert.Equal(t, entity.PassengerCounts{Adults: 1}, c.Counts())

	require.NoError(t, c.Increment(Children))
	require.NoError(t, c.Decrement(Children))
	assert.Equal(t, 0, c.Counts().Children)
}

func TestCounter_IncrementCeiling(t *testing.T) {
	c := NewCounter(10)
	for i := 0; i < 5; i++ {
		require.NoError(t, c.Increment(Adults))
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, c.Increment(Infants))
	}
	assert.Equal(t, 10, c.Total())
	assert.True(t, c.AtMax())

	err := c.Increment(Children)
	var maxErr *MaxReachedError
	require.True(t, errors.As(err, &maxErr))
	assert.Equal(t, "El número máximo de pasajeros es 10.", err.Error())
	assert.Equal(t, entity.PassengerCounts{Adults: 6, Infants: 4}, c.Counts())
}

func TestCounter_UnknownCategory(t *testing.T) {
	c := NewCounter(10)
	assert.ErrorIs(t, c.Increment("mascotas"), ErrUnknownCategory)
	assert.ErrorIs(t, c.Decrement("mascotas"), ErrUnknownCategory)
	assert.Equal(t, 1, c.Total())
}

func TestCounter_TotalAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	cats := []Category{Adults, Children, Infants}
	c := NewCounter(10)

	for i := 0; i < 5000; i++ {
		cat := cats[rng.IntN(len(cats))]
		if rng.IntN(2) == 0 {
			_ = c.Increment(cat)
		} else {
			_ = c.Decrement(cat)
		}
		counts := c.Counts()
		require.GreaterOrEqual(t, counts.Adults, 1)
		require.GreaterOrEqual(t, counts.Children, 0)
		require.GreaterOrEqual(t, counts.Infants, 0)
		require.GreaterOrEqual(t, c.Total(), 1)
		require.LessOrEqual(t, c.Total(), 10)
	}
}
