package amviajes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/event"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/kvstore"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/searchform"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgrouter"
)

type mapConfig map[string]any

func (m mapConfig) GetString(key string) string {
	v, _ := m[key].(string)
	return v
}

func (m mapConfig) GetInt(key string) int {
	v, _ := m[key].(int)
	return v
}

func (m mapConfig) GetBool(key string) bool {
	v, _ := m[key].(bool)
	return v
}

func (m mapConfig) GetStringSlice(key string) []string {
	v, _ := m[key].([]string)
	return v
}

func (m mapConfig) GetDuration(key string) time.Duration {
	v, _ := m[key].(time.Duration)
	return v
}

func (m mapConfig) Close() error { return nil }

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func TestNew_ServesEndpoints(t *testing.T) {
	ctx := context.Background()
	router := pkgrouter.NewRouter(fixedID("client"))

	m, err := New(ctx, Dependency{
		Config: mapConfig{
			"modules.amviajes.airports.path": "../../data/db.json",
			"modules.amviajes.provider.seed": 11,
		},
		Router: router,
		UUID:   fixedID("id"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, m.Close(ctx)) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/airports?q=mad", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"IATA":"MAD"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "amviajes_http_requests_total")
}

func TestNew_AirportLoadFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	router := pkgrouter.NewRouter(fixedID("client"))

	m, err := New(ctx, Dependency{
		Config: mapConfig{"modules.amviajes.airports.path": "missing.json"},
		Router: router,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, m.Close(ctx)) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/countries", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "No se pudieron cargar los aeropuertos.")
}

func TestNew_InvalidConfig(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, Dependency{
		Config: mapConfig{"modules.amviajes.airports.source": "ftp"},
		Router: pkgrouter.NewRouter(fixedID("client")),
	})
	assert.ErrorContains(t, err, `unknown airport source "ftp"`)

	_, err = New(ctx, Dependency{
		Config: mapConfig{
			"modules.amviajes.airports.path":   "../../data/db.json",
			"modules.amviajes.search.max_date": "31/12/2027",
		},
		Router: pkgrouter.NewRouter(fixedID("client")),
	})
	assert.ErrorContains(t, err, "parse search max date")
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	s, err := NewStore(ctx, mapConfig{})
	require.NoError(t, err)
	assert.IsType(t, &kvstore.Memory{}, s)

	mr := miniredis.RunT(t)
	s, err = NewStore(ctx, mapConfig{
		"modules.amviajes.storage.driver":     "redis",
		"modules.amviajes.storage.redis.addr": mr.Addr(),
	})
	require.NoError(t, err)
	assert.IsType(t, &kvstore.Redis{}, s)
	require.NoError(t, s.Close())

	_, err = NewStore(ctx, mapConfig{"modules.amviajes.storage.driver": "sqlite"})
	assert.ErrorContains(t, err, `unknown storage driver "sqlite"`)
}

func TestNewPublisher(t *testing.T) {
	assert.Equal(t, event.Noop{}, NewPublisher(mapConfig{}))

	p := NewPublisher(mapConfig{
		"modules.amviajes.events.driver":        "kafka",
		"modules.amviajes.events.kafka.brokers": []string{"localhost:9092"},
	})
	k, ok := p.(*event.Kafka)
	require.True(t, ok)
	assert.Equal(t, "amviajes.events", k.Topic())
	assert.NoError(t, k.Close())
}

func TestNewProvider_Seeded(t *testing.T) {
	cfg := mapConfig{"modules.amviajes.provider.seed": 99}
	a := NewProvider(cfg, fixedID("x"))
	b := NewProvider(cfg, fixedID("x"))
	assert.Equal(t, "mock", a.Name())

	for i := 0; i < 5; i++ {
		q := cordobaQuery()
		ia, errA := a.Search(context.Background(), q)
		ib, errB := b.Search(context.Background(), q)
		require.NoError(t, errors.Join(errA, errB))
		assert.Equal(t, ia, ib)
	}
}

func TestMaxDate(t *testing.T) {
	d, err := maxDate("")
	require.NoError(t, err)
	assert.Equal(t, searchform.DefaultMaxDate, d)

	d, err = maxDate("2026-06-30")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-30", d.Format("2006-01-02"))

	_, err = maxDate(strings.Repeat("x", 3))
	assert.Error(t, err)
}

func cordobaQuery() entity.SearchQuery {
	return entity.SearchQuery{
		Origin:      entity.Airport{ID: "3", City: "Córdoba", IATA: "COR"},
		Destination: entity.Airport{ID: "1", City: "Buenos Aires", IATA: "AEP"},
		DepartDate:  time.Date(2027, time.March, 10, 0, 0, 0, 0, time.UTC),
		OneWay:      true,
		Passengers:  entity.PassengerCounts{Adults: 1},
	}
}
