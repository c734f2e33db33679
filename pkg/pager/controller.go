package pager

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/benedict-erwin/agency-console/pkg/logger"
)

// FetchFunc loads one page of records matching the given filters
type FetchFunc[T any] func(ctx context.Context, filters Filters) (*Page[T], error)

// StatusFunc loads the choices of the status filter
type StatusFunc func(ctx context.Context) ([]StatusOption, error)

// State is a consistent copy of everything a screen renders
type State[T any] struct {
	Filters            Filters
	Pagination         Pagination
	Items              []T
	IsLoading          bool
	LastErrorMessage   string
	StatusOptions      []StatusOption
	StatusErrorMessage string
}

// Option configures a Controller
type Option[T any] func(*Controller[T])

// WithStatuses sets the provider used by Initialize to fill the status choices
func WithStatuses[T any](fn StatusFunc) Option[T] {
	return func(c *Controller[T]) {
		c.statuses = fn
	}
}

// WithObserver registers a callback that receives a snapshot after every state
// change. It runs outside the controller lock and may call back into it.
func WithObserver[T any](fn func(State[T])) Option[T] {
	return func(c *Controller[T]) {
		c.observer = fn
	}
}

// WithName tags log lines of this controller with a screen name
func WithName[T any](name string) Option[T] {
	return func(c *Controller[T]) {
		c.name = name
	}
}

// Controller drives the edit-filters / apply / paginate cycle of one list screen.
//
// Filter edits are applied synchronously in call order. Fetches may overlap; every
// fetch is tagged with a sequence number and only the response of the most recently
// issued fetch is ever applied, whatever order responses arrive in.
type Controller[T any] struct {
	mu       sync.Mutex
	name     string
	fetch    FetchFunc[T]
	statuses StatusFunc
	observer func(State[T])

	defaults   map[string]string
	filters    Filters
	pagination Pagination
	items      []T
	lastErr    string

	statusOptions []StatusOption
	statusErr     string

	issued  uint64 // sequence number of the latest issued fetch
	settled uint64 // sequence number of the latest fetch that was applied or failed
}

// New creates a controller around a fetch function
func New[T any](fetch FetchFunc[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		name:       "list",
		fetch:      fetch,
		defaults:   map[string]string{},
		filters:    NewFilters(nil),
		pagination: emptyPagination(DefaultPerPage),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize resets the screen to the given defaults and runs the first fetch.
// Status options load concurrently; their failure is recorded in the state and
// never fails Initialize.
func (c *Controller[T]) Initialize(ctx context.Context, defaults Filters) error {
	c.mu.Lock()
	c.defaults = cloneFields(defaults.Fields)
	c.filters = defaults.Clone()
	c.filters.Page = 1
	if c.filters.PerPage <= 0 {
		c.filters.PerPage = DefaultPerPage
	}
	c.pagination = emptyPagination(c.filters.PerPage)
	c.items = nil
	c.lastErr = ""
	c.statusOptions = nil
	c.statusErr = ""
	c.mu.Unlock()

	var g errgroup.Group
	if c.statuses != nil {
		g.Go(func() error {
			c.loadStatuses(ctx)
			return nil
		})
	}
	g.Go(func() error {
		_, err := c.cycle(ctx, func(*Filters) bool { return true })
		return err
	})
	return g.Wait()
}

// SetFilterField edits one field without fetching. Editing anything but page
// moves the pending page back to 1.
func (c *Controller[T]) SetFilterField(name, value string) error {
	c.mu.Lock()
	next := c.filters.Clone()
	if err := next.Set(name, value); err != nil {
		c.mu.Unlock()
		return err
	}
	c.filters = next
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// Search commits pending edits and fetches from page 1
func (c *Controller[T]) Search(ctx context.Context) error {
	_, err := c.cycle(ctx, func(f *Filters) bool {
		f.Page = 1
		return true
	})
	return err
}

// Reset restores the screen defaults, keeps the page size and fetches page 1
func (c *Controller[T]) Reset(ctx context.Context) error {
	_, err := c.cycle(ctx, func(f *Filters) bool {
		*f = Filters{
			Fields:  cloneFields(c.defaults),
			Page:    1,
			PerPage: f.PerPage,
		}
		return true
	})
	return err
}

// Refresh re-runs the current filters unchanged
func (c *Controller[T]) Refresh(ctx context.Context) error {
	_, err := c.cycle(ctx, func(*Filters) bool { return true })
	return err
}

// GoToPage fetches the given page. Pages outside [1, lastPage] and the current
// page itself are ignored; the boolean reports whether a fetch ran.
func (c *Controller[T]) GoToPage(ctx context.Context, page int) (bool, error) {
	return c.cycle(ctx, func(f *Filters) bool {
		return c.movePageLocked(f, page)
	})
}

// Next moves one page forward, a no-op on the last page
func (c *Controller[T]) Next(ctx context.Context) (bool, error) {
	return c.cycle(ctx, func(f *Filters) bool {
		return c.movePageLocked(f, c.pagination.CurrentPage+1)
	})
}

// Prev moves one page back, a no-op on page 1
func (c *Controller[T]) Prev(ctx context.Context) (bool, error) {
	return c.cycle(ctx, func(f *Filters) bool {
		return c.movePageLocked(f, c.pagination.CurrentPage-1)
	})
}

// Snapshot returns a copy of the current state
func (c *Controller[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller[T]) movePageLocked(f *Filters, page int) bool {
	if page < 1 || page > c.pagination.LastPage || page == c.pagination.CurrentPage {
		return false
	}
	f.Page = page
	return true
}

// cycle runs one fetch. prepare is applied to the filter state under the lock and
// may veto the fetch by returning false.
func (c *Controller[T]) cycle(ctx context.Context, prepare func(*Filters) bool) (bool, error) {
	log := logger.WithScope("pager." + c.name)

	c.mu.Lock()
	next := c.filters.Clone()
	if !prepare(&next) {
		c.mu.Unlock()
		return false, nil
	}
	c.filters = next
	c.issued++
	seq := c.issued
	request := next.Clone()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	log.Debug().
		Uint64("seq", seq).
		Int("page", request.Page).
		Int("per_page", request.PerPage).
		Interface("filters", request.Fields).
		Msg("Fetch issued")

	page, err := c.fetch(ctx, request)

	c.mu.Lock()
	if seq != c.issued {
		latest := c.issued
		c.mu.Unlock()
		log.Debug().
			Uint64("seq", seq).
			Uint64("latest", latest).
			Msg("Discarding superseded response")
		return true, nil
	}
	c.settled = seq

	if err != nil {
		c.lastErr = UserMessage(err)
		snap = c.snapshotLocked()
		c.mu.Unlock()

		c.notify(snap)
		log.Warn().
			Err(err).
			Uint64("seq", seq).
			Int("page", request.Page).
			Msg("Fetch failed, keeping previous page")
		return true, fmt.Errorf("fetch page %d: %w", request.Page, err)
	}

	if page == nil {
		page = &Page[T]{}
	}
	c.items = slices.Clone(page.Data)
	c.pagination = page.Pagination.normalize(request)
	c.lastErr = ""
	snap = c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	log.Debug().
		Uint64("seq", seq).
		Int("total", snap.Pagination.Total).
		Int("current_page", snap.Pagination.CurrentPage).
		Int("last_page", snap.Pagination.LastPage).
		Int("items", len(snap.Items)).
		Msg("Page applied")
	return true, nil
}

func (c *Controller[T]) loadStatuses(ctx context.Context) {
	options, err := c.statuses(ctx)

	c.mu.Lock()
	if err != nil {
		c.statusOptions = nil
		c.statusErr = UserMessage(err)
	} else {
		c.statusOptions = slices.Clone(options)
		c.statusErr = ""
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if err != nil {
		logger.WithScope("pager."+c.name).Warn().Err(err).Msg("Status options unavailable")
	}
	c.notify(snap)
}

func (c *Controller[T]) snapshotLocked() State[T] {
	return State[T]{
		Filters:            c.filters.Clone(),
		Pagination:         c.pagination,
		Items:              slices.Clone(c.items),
		IsLoading:          c.settled != c.issued,
		LastErrorMessage:   c.lastErr,
		StatusOptions:      slices.Clone(c.statusOptions),
		StatusErrorMessage: c.statusErr,
	}
}

func (c *Controller[T]) notify(state State[T]) {
	if c.observer != nil {
		c.observer(state)
	}
}
