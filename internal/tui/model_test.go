package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	"github.com/benedict-erwin/agency-console/pkg/pager"
)

type ticket struct {
	No     string
	Status string
}

type backend struct {
	mu    sync.Mutex
	total int
	err   error
	calls []pager.Filters
}

func (b *backend) fetch(_ context.Context, f pager.Filters) (*pager.Page[ticket], error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, f.Clone())
	if b.err != nil {
		return nil, b.err
	}

	var data []ticket
	for i := (f.Page-1)*f.PerPage + 1; i <= b.total && i <= f.Page*f.PerPage; i++ {
		data = append(data, ticket{No: fmt.Sprintf("TKT-%06d", i), Status: f.Fields[pager.FieldStatus]})
	}
	return &pager.Page[ticket]{
		Data: data,
		Pagination: pager.Pagination{
			Total:       b.total,
			CurrentPage: f.Page,
			LastPage:    pager.LastPageFor(b.total, f.PerPage),
			PerPage:     f.PerPage,
		},
	}, nil
}

func (b *backend) last() pager.Filters {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[len(b.calls)-1]
}

func (b *backend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func statuses(context.Context) ([]pager.StatusOption, error) {
	return []pager.StatusOption{{Label: "Open", Value: "OPEN"}, {Label: "Closed", Value: "CLOSED"}}, nil
}

var testScreen = screens.Config[ticket]{
	Name:   "tickets",
	Title:  "Support Tickets",
	Fields: screens.StandardFields,
	Columns: []screens.Column[ticket]{
		{Header: "Ticket", Value: func(t ticket) string { return t.No }},
		{Header: "Status", Value: func(t ticket) string { return t.Status }},
	},
}

// newTestModel returns an initialized model over total records
func newTestModel(t *testing.T, total int) (Model[ticket], *backend) {
	t.Helper()
	b := &backend{total: total}
	ctrl := pager.New(b.fetch, pager.WithStatuses[ticket](statuses))
	m := NewModel[ticket](context.Background(), ctrl, testScreen, testScreen.DefaultFilters(15), nil)
	m = step(t, m, m.initialize())
	return m, b
}

// step runs cmd synchronously and feeds its message back into the model
func step(t *testing.T, m Model[ticket], cmd tea.Cmd) Model[ticket] {
	t.Helper()
	if cmd == nil {
		return m
	}
	next, _ := m.Update(cmd())
	return next.(Model[ticket])
}

// press delivers a key without running the command it schedules
func press(t *testing.T, m Model[ticket], k tea.KeyMsg) Model[ticket] {
	t.Helper()
	next, _ := m.Update(k)
	return next.(Model[ticket])
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model[ticket], s string) Model[ticket] {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runes(string(r)))
	}
	return m
}

func TestInitialLoad(t *testing.T) {
	m, b := newTestModel(t, 37)

	assert.Equal(t, 1, b.count())
	assert.Len(t, m.state.Items, 15)
	assert.Equal(t, []pager.StatusOption{{Label: "Open", Value: "OPEN"}, {Label: "Closed", Value: "CLOSED"}}, m.state.StatusOptions)

	view := m.View()
	assert.Contains(t, view, "Support Tickets")
	assert.Contains(t, view, "TKT-000001")
	assert.Contains(t, view, "Showing 1-15 of 37 · page 1/3")
}

func TestPaging(t *testing.T) {
	m, b := newTestModel(t, 37)

	m = step(t, m, mustCmd(t, m, runes("n")))
	assert.Equal(t, 2, b.last().Page)
	assert.Equal(t, 2, m.state.Pagination.CurrentPage)
	assert.Contains(t, m.View(), "TKT-000016")

	m = step(t, m, mustCmd(t, m, tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, 1, m.state.Pagination.CurrentPage)

	// prev on page 1 runs no fetch
	calls := b.count()
	m = step(t, m, mustCmd(t, m, runes("p")))
	assert.Equal(t, calls, b.count())
	assert.Equal(t, 1, m.state.Pagination.CurrentPage)
}

func TestSearchCommitsInputs(t *testing.T) {
	m, b := newTestModel(t, 37)
	m = step(t, m, mustCmd(t, m, runes("n")))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model[ticket])
	require.Equal(t, 0, m.focus)
	require.Equal(t, pager.FieldFromDate, m.fields[0])
	m = typeText(t, m, "2024-05-01")

	// letters go to the focused input, not to the paging keys
	assert.Equal(t, 2, b.count())

	m = step(t, m, mustCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, 3, b.count())
	assert.Equal(t, "2024-05-01", b.last().Fields[pager.FieldFromDate])
	assert.Equal(t, 1, b.last().Page)
	assert.Empty(t, m.notice)
}

func TestSearchRejectsBadDate(t *testing.T) {
	m, b := newTestModel(t, 37)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, next.(Model[ticket]), "yesterday")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model[ticket])
	assert.Nil(t, cmd)
	assert.Equal(t, 1, b.count())
	assert.Contains(t, m.notice, "from_date must be YYYY-MM-DD")
	assert.Contains(t, m.View(), "from_date must be YYYY-MM-DD")
}

func TestStatusCycle(t *testing.T) {
	m, b := newTestModel(t, 37)

	m = step(t, m, mustCmd(t, m, runes("s")))
	assert.Equal(t, "OPEN", b.last().Fields[pager.FieldStatus])
	assert.Contains(t, m.View(), "status Open")

	m = step(t, m, mustCmd(t, m, runes("s")))
	assert.Equal(t, "CLOSED", b.last().Fields[pager.FieldStatus])

	m = step(t, m, mustCmd(t, m, runes("s")))
	assert.Equal(t, "", b.last().Fields[pager.FieldStatus])
	assert.Contains(t, m.View(), "status all")
}

func TestResetRestoresInputs(t *testing.T) {
	m, b := newTestModel(t, 37)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, next.(Model[ticket]), "2024-05-01")
	m = step(t, m, mustCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, "2024-05-01", m.inputs[0].Value())

	m = step(t, m, mustCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlR}))
	assert.Equal(t, "", m.inputs[0].Value())
	assert.Equal(t, "", b.last().Fields[pager.FieldFromDate])
	assert.Equal(t, 1, b.last().Page)
}

func TestFetchFailureShowsMessage(t *testing.T) {
	m, b := newTestModel(t, 37)

	b.mu.Lock()
	b.err = &pager.ServerError{Status: 500, Message: "Backend is down for maintenance"}
	b.mu.Unlock()

	m = step(t, m, mustCmd(t, m, runes("r")))
	view := m.View()
	assert.Contains(t, view, "Backend is down for maintenance")
	assert.Contains(t, view, "TKT-000001", "previous page stays visible")
}

func TestEmptyResult(t *testing.T) {
	m, _ := newTestModel(t, 0)

	assert.Contains(t, m.View(), "No records match the current filters.")
	assert.Contains(t, m.View(), "Showing 0-0 of 0 · page 1/1")
}

func TestFocusCycle(t *testing.T) {
	m, _ := newTestModel(t, 1)
	require.Len(t, m.inputs, 4)

	for want := 0; want < 4; want++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(Model[ticket])
		assert.Equal(t, want, m.focus)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model[ticket])
	assert.Equal(t, -1, m.focus)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model[ticket])
	assert.Equal(t, 3, m.focus)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model[ticket])
	assert.Equal(t, -1, m.focus)
}

func TestObserverSignalsCoalesce(t *testing.T) {
	observe, updates := NewObserver[ticket]()
	observe(pager.State[ticket]{})
	observe(pager.State[ticket]{})

	assert.Len(t, updates, 1)
	<-updates
	assert.Len(t, updates, 0)
}

// mustCmd presses k and returns the controller operation it scheduled
func mustCmd(t *testing.T, m Model[ticket], k tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(k)
	require.NotNil(t, cmd, "key %q scheduled nothing", k.String())
	return cmd
}
