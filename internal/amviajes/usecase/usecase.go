package usecase

import (
	"time"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/airport"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/cache"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/event"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/kvstore"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/provider"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/session"
	"github.com/shandysiswandi/goamviajes/internal/pkg/pkguid"
)

type Dependency struct {
	Airports        *airport.Directory
	Sessions        *session.Service
	Store           kvstore.Store
	Provider        provider.Provider
	Publisher       event.Publisher
	Cache           *cache.Cache[[]entity.Airport]
	CacheTTL        time.Duration
	ProviderTimeout time.Duration
	MaxPassengers   int
	MaxDate         time.Time
	UUID            pkguid.StringID
	Now             func() time.Time
}

type Usecase struct {
	airports        *airport.Directory
	sessions        *session.Service
	store           kvstore.Store
	provider        provider.Provider
	publisher       event.Publisher
	cache           *cache.Cache[[]entity.Airport]
	cacheTTL        time.Duration
	providerTimeout time.Duration
	maxPassengers   int
	maxDate         time.Time
	uuid            pkguid.StringID
	now             func() time.Time
}

func New(dep Dependency) *Usecase {
	u := &Usecase{
		airports:        dep.Airports,
		sessions:        dep.Sessions,
		store:           dep.Store,
		provider:        dep.Provider,
		publisher:       dep.Publisher,
		cache:           dep.Cache,
		cacheTTL:        dep.CacheTTL,
		providerTimeout: dep.ProviderTimeout,
		maxPassengers:   dep.MaxPassengers,
		maxDate:         dep.MaxDate,
		uuid:            dep.UUID,
		now:             dep.Now,
	}
	if u.publisher == nil {
		u.publisher = event.Noop{}
	}
	if u.uuid == nil {
		u.uuid = pkguid.NewUUID()
	}
	if u.now == nil {
		u.now = time.Now
	}
	return u
}
