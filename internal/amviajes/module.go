package amviajes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/airport"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/cache"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/event"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/inbound"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/kvstore"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/provider"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/searchform"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/session"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/usecase"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkguid"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
	UUID   pkguid.StringID
}

// Module owns the resources opened for the booking endpoints.
type Module struct {
	closers []func(context.Context) error
}

func New(ctx context.Context, dep Dependency) (*Module, error) {
	m := &Module{}
	cfg := dep.Config

	source, closeSource, err := NewAirportSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	m.add(closeSource)

	directory := airport.NewDirectory(source)
	loadCtx, cancel := context.WithTimeout(ctx, durationOr(cfg.GetDuration("modules.amviajes.airports.load_timeout"), 10*time.Second))
	if err := directory.Load(loadCtx); err != nil {
		slog.ErrorContext(ctx, "failed to load airports, airport features disabled", "source", source.Name(), "error", err)
	}
	cancel()

	store, err := NewStore(ctx, cfg)
	if err != nil {
		_ = m.Close(ctx)
		return nil, err
	}
	m.add(func(context.Context) error { return store.Close() })

	publisher := NewPublisher(cfg)
	m.add(func(context.Context) error { return publisher.Close() })

	maxDate, err := maxDate(cfg.GetString("modules.amviajes.search.max_date"))
	if err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	uid := dep.UUID
	if uid == nil {
		uid = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Airports:        directory,
		Sessions:        session.NewService(store),
		Store:           store,
		Provider:        NewProvider(cfg, uid),
		Publisher:       publisher,
		Cache:           cache.New(usecase.CloneAirports),
		CacheTTL:        time.Duration(intOr(cfg.GetInt("modules.amviajes.cache.ttl_seconds"), 60)) * time.Second,
		ProviderTimeout: time.Duration(intOr(cfg.GetInt("modules.amviajes.provider.timeout_ms"), 1000)) * time.Millisecond,
		MaxPassengers:   cfg.GetInt("modules.amviajes.search.max_passengers"),
		MaxDate:         maxDate,
		UUID:            uid,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	dep.Router.Handle("/metrics", promhttp.Handler())

	return m, nil
}

// Close releases everything in reverse order of acquisition.
func (m *Module) Close(ctx context.Context) error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	m.closers = nil
	return errors.Join(errs...)
}

func (m *Module) add(fn func(context.Context) error) {
	if fn != nil {
		m.closers = append(m.closers, fn)
	}
}

// NewAirportSource picks the airport source named by
// modules.amviajes.airports.source: file (default), http or mongo.
func NewAirportSource(ctx context.Context, cfg pkgconfig.Config) (airport.Source, func(context.Context) error, error) {
	switch kind := cfg.GetString("modules.amviajes.airports.source"); kind {
	case "", "file":
		return airport.NewFileSource(stringOr(cfg.GetString("modules.amviajes.airports.path"), "data/db.json")), nil, nil
	case "http":
		return airport.NewHTTPSource(cfg.GetString("modules.amviajes.airports.url"), nil), nil, nil
	case "mongo":
		src, err := airport.NewMongoSource(ctx,
			cfg.GetString("modules.amviajes.airports.mongo.uri"),
			stringOr(cfg.GetString("modules.amviajes.airports.mongo.database"), "amviajes"),
			stringOr(cfg.GetString("modules.amviajes.airports.mongo.collection"), "aeropuertos"),
		)
		if err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown airport source %q", kind)
	}
}

// NewStore opens the key-value store named by modules.amviajes.storage.driver:
// memory (default), redis or postgres.
func NewStore(ctx context.Context, cfg pkgconfig.Config) (kvstore.Store, error) {
	switch driver := cfg.GetString("modules.amviajes.storage.driver"); driver {
	case "", "memory":
		return kvstore.NewMemory(), nil
	case "redis":
		return kvstore.NewRedis(ctx, kvstore.RedisConfig{
			Addr:      cfg.GetString("modules.amviajes.storage.redis.addr"),
			Password:  cfg.GetString("modules.amviajes.storage.redis.password"),
			DB:        cfg.GetInt("modules.amviajes.storage.redis.db"),
			KeyPrefix: cfg.GetString("modules.amviajes.storage.redis.key_prefix"),
		})
	case "postgres":
		return kvstore.NewPostgres(ctx, cfg.GetString("modules.amviajes.storage.postgres.dsn"))
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// NewPublisher returns a Kafka publisher when modules.amviajes.events.driver
// is kafka, and a no-op one otherwise.
func NewPublisher(cfg pkgconfig.Config) event.Publisher {
	if cfg.GetString("modules.amviajes.events.driver") != "kafka" {
		return event.Noop{}
	}
	return event.NewKafka(event.KafkaConfig{
		Brokers: cfg.GetStringSlice("modules.amviajes.events.kafka.brokers"),
		Topic:   stringOr(cfg.GetString("modules.amviajes.events.kafka.topic"), "amviajes.events"),
	})
}

// NewProvider builds the mock generator. A non zero seed makes it
// reproducible; a positive rate limit spaces out searches.
func NewProvider(cfg pkgconfig.Config, uid pkguid.StringID) provider.Provider {
	var rng provider.Rand
	if seed := cfg.GetInt("modules.amviajes.provider.seed"); seed != 0 {
		rng = provider.NewSeededRand(uint64(seed))
	}

	var p provider.Provider = provider.NewMockProvider(rng, uid)
	if ms := cfg.GetInt("modules.amviajes.provider.rate_limit_ms"); ms > 0 {
		p = provider.NewRateLimitedProvider(p, time.Duration(ms)*time.Millisecond)
	}
	return p
}

func maxDate(value string) (time.Time, error) {
	if value == "" {
		return searchform.DefaultMaxDate, nil
	}
	t, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse search max date %q: %w", value, err)
	}
	return t, nil
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return value
}
