package sandbox

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/benedict-erwin/agency-console/config"
	attractionbookings "github.com/benedict-erwin/agency-console/internal/entities/attraction_bookings"
	busbookings "github.com/benedict-erwin/agency-console/internal/entities/bus_bookings"
	flightbookings "github.com/benedict-erwin/agency-console/internal/entities/flight_bookings"
	hotelbookings "github.com/benedict-erwin/agency-console/internal/entities/hotel_bookings"
	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	supporttickets "github.com/benedict-erwin/agency-console/internal/entities/support_tickets"
	"github.com/benedict-erwin/agency-console/pkg/logger"
)

// ErrUnknownScreen is returned for screen names the sandbox does not serve
var ErrUnknownScreen = errors.New("unknown screen")

// ErrNotInitialized is returned when the sandbox is queried before Init
var ErrNotInitialized = errors.New("sandbox not initialized")

// Route describes where one screen is served
type Route struct {
	Name       string
	Resource   string
	ListPath   string
	StatusPath string
}

// endpoint is the type-erased view of a Dataset
type endpoint interface {
	list(q Query) (any, error)
	statuses() []screens.StatusEntry
	size() int
}

type datasetEndpoint[T screens.Filterable] struct {
	*Dataset[T]
}

func (e datasetEndpoint[T]) list(q Query) (any, error) { return e.List(q) }

func (e datasetEndpoint[T]) statuses() []screens.StatusEntry { return e.Statuses() }

func (e datasetEndpoint[T]) size() int { return e.Len() }

// screenSpec binds a screen config to the way its dataset is built
type screenSpec struct {
	route Route
	build func(opts buildOptions) (endpoint, error)
}

type buildOptions struct {
	stream     uint64
	seed       uint64
	records    int
	maxPerPage int
	fixtures   json.RawMessage
	now        time.Time
}

func specFor[T screens.Filterable](c screens.Config[T]) screenSpec {
	return screenSpec{
		route: Route{
			Name:       c.Name,
			Resource:   c.Resource,
			ListPath:   c.ListPath,
			StatusPath: c.StatusPath,
		},
		build: func(opts buildOptions) (endpoint, error) {
			var records []T
			if len(opts.fixtures) > 0 {
				if err := json.Unmarshal(opts.fixtures, &records); err != nil {
					return nil, fmt.Errorf("decode %s fixtures: %w", c.Name, err)
				}
			} else {
				records = Generate(c, opts.seed, opts.stream, opts.records, opts.now)
			}
			return datasetEndpoint[T]{NewDataset(records, c.Statuses, opts.maxPerPage)}, nil
		},
	}
}

var catalog = []screenSpec{
	specFor(busbookings.GetScreenConfig()),
	specFor(attractionbookings.GetScreenConfig()),
	specFor(hotelbookings.GetScreenConfig()),
	specFor(flightbookings.GetScreenConfig()),
	specFor(supporttickets.GetScreenConfig()),
}

var (
	endpoints map[string]endpoint
	mu        sync.RWMutex
)

// Routes lists every screen the sandbox serves, in menu order
func Routes() []Route {
	out := make([]Route, len(catalog))
	for i, s := range catalog {
		out[i] = s.route
	}
	return out
}

// Generate builds n deterministic fixtures for a screen. The same seed, stream and
// now always produce the same records.
func Generate[T any](c screens.Config[T], seed, stream uint64, n int, now time.Time) []T {
	rng := rand.New(rand.NewPCG(seed, stream))
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, c.Generate(rng, i, now))
	}
	return out
}

// Init builds every dataset, from the fixtures file when one is configured and
// from the seeded generator otherwise. Screens missing from the file are generated.
func Init(cfg config.SandboxConfig, now time.Time) error {
	log := logger.WithScope("sandbox")

	fixtures, err := readFixtures(cfg.FixturesPath)
	if err != nil {
		return err
	}

	built := make(map[string]endpoint, len(catalog))
	for i, s := range catalog {
		ep, err := s.build(buildOptions{
			stream:     uint64(i + 1),
			seed:       cfg.Seed,
			records:    cfg.Records,
			maxPerPage: cfg.MaxPerPage,
			fixtures:   fixtures[s.route.Name],
			now:        now,
		})
		if err != nil {
			return err
		}
		built[s.route.Name] = ep

		source := "generated"
		if _, ok := fixtures[s.route.Name]; ok {
			source = cfg.FixturesPath
		}
		log.Info().
			Str("screen", s.route.Name).
			Int("records", ep.size()).
			Str("source", source).
			Msg("Dataset loaded")
	}

	mu.Lock()
	endpoints = built
	mu.Unlock()
	return nil
}

// readFixtures loads a JSON object keyed by screen name
func readFixtures(path string) (map[string]json.RawMessage, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode fixtures %s: %w", path, err)
	}
	return out, nil
}

func lookup(name string) (endpoint, error) {
	mu.RLock()
	defer mu.RUnlock()
	if endpoints == nil {
		return nil, ErrNotInitialized
	}
	ep, ok := endpoints[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScreen, name)
	}
	return ep, nil
}

// List runs a list query against one screen. The result is a *pager.Page of the
// screen's record type.
func List(name string, q Query) (any, error) {
	ep, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return ep.list(q)
}

// Statuses returns the status list of one screen
func Statuses(name string) ([]screens.StatusEntry, error) {
	ep, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return ep.statuses(), nil
}

// Sizes returns the record count of every loaded dataset
func Sizes() (map[string]int, error) {
	mu.RLock()
	defer mu.RUnlock()
	if endpoints == nil {
		return nil, ErrNotInitialized
	}
	out := make(map[string]int, len(endpoints))
	for name, ep := range endpoints {
		out[name] = ep.size()
	}
	return out, nil
}
