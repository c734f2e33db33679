package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	"github.com/benedict-erwin/agency-console/pkg/pager"
)

// Controller is the part of a pager.Controller the screen drives
type Controller[T any] interface {
	Initialize(ctx context.Context, defaults pager.Filters) error
	SetFilterField(name, value string) error
	Search(ctx context.Context) error
	Reset(ctx context.Context) error
	Refresh(ctx context.Context) error
	Next(ctx context.Context) (bool, error)
	Prev(ctx context.Context) (bool, error)
	Snapshot() pager.State[T]
}

// stateMsg tells the model the controller state changed
type stateMsg struct{}

// opDoneMsg is delivered when a controller operation returns
type opDoneMsg struct {
	op  string
	err error
}

// NewObserver returns a controller observer and the channel it signals. Signals
// coalesce; the model always re-reads the latest snapshot.
func NewObserver[T any]() (func(pager.State[T]), <-chan struct{}) {
	updates := make(chan struct{}, 1)
	return func(pager.State[T]) {
		select {
		case updates <- struct{}{}:
		default:
		}
	}, updates
}

// Model is the bubbletea model of one list screen
type Model[T any] struct {
	ctx      context.Context
	ctrl     Controller[T]
	screen   screens.Config[T]
	defaults pager.Filters
	updates  <-chan struct{}

	keys  KeyMap
	theme Theme

	fields  []string // text filter fields, in input order
	inputs  []textinput.Model
	focus   int // index into inputs, -1 when the table has focus
	spinner spinner.Model

	state  pager.State[T]
	notice string // local problems such as a rejected filter value
	width  int
}

// NewModel creates the screen. updates may be nil, in which case the view only
// refreshes when an operation returns.
func NewModel[T any](ctx context.Context, ctrl Controller[T], screen screens.Config[T], defaults pager.Filters, updates <-chan struct{}) Model[T] {
	m := Model[T]{
		ctx:      ctx,
		ctrl:     ctrl,
		screen:   screen,
		defaults: defaults.Clone(),
		updates:  updates,
		keys:     DefaultKeyMap,
		theme:    DefaultTheme,
		focus:    -1,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		state:    ctrl.Snapshot(),
	}

	for _, name := range screen.Fields {
		if name == pager.FieldStatus {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholder(name)
		in.CharLimit = 64
		in.Width = 18
		in.SetValue(defaults.Get(name))
		m.fields = append(m.fields, name)
		m.inputs = append(m.inputs, in)
	}
	return m
}

func placeholder(name string) string {
	if pager.IsDateField(name) {
		return "YYYY-MM-DD"
	}
	return "any"
}

// Init implements tea.Model
func (m Model[T]) Init() tea.Cmd {
	cmds := []tea.Cmd{m.initialize(), m.spinner.Tick}
	if m.updates != nil {
		cmds = append(cmds, listen(m.updates))
	}
	return tea.Batch(cmds...)
}

func listen(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return stateMsg{}
	}
}

func (m Model[T]) initialize() tea.Cmd {
	return m.run("initialize", func(ctx context.Context) error {
		return m.ctrl.Initialize(ctx, m.defaults)
	})
}

// run executes a blocking controller operation off the update loop
func (m Model[T]) run(op string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

// Update implements tea.Model
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case stateMsg:
		m.state = m.ctrl.Snapshot()
		return m, listen(m.updates)

	case opDoneMsg:
		m.state = m.ctrl.Snapshot()
		if msg.op == "reset" || msg.op == "initialize" {
			m.syncInputs()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m.search()
	case key.Matches(msg, m.keys.Reset):
		m.notice = ""
		return m, m.run("reset", m.ctrl.Reset)
	case key.Matches(msg, m.keys.NextField):
		return m.moveFocus(1), nil
	case key.Matches(msg, m.keys.PrevField):
		return m.moveFocus(-1), nil
	}

	if m.focus >= 0 {
		if key.Matches(msg, m.keys.Blur) {
			m.inputs[m.focus].Blur()
			m.focus = -1
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		return m, m.run("refresh", m.ctrl.Refresh)
	case key.Matches(msg, m.keys.NextPage):
		return m, m.run("next", func(ctx context.Context) error {
			_, err := m.ctrl.Next(ctx)
			return err
		})
	case key.Matches(msg, m.keys.PrevPage):
		return m, m.run("prev", func(ctx context.Context) error {
			_, err := m.ctrl.Prev(ctx)
			return err
		})
	case key.Matches(msg, m.keys.Status):
		return m.cycleStatus()
	}
	return m, nil
}

func (m Model[T]) moveFocus(delta int) Model[T] {
	if len(m.inputs) == 0 {
		return m
	}
	if m.focus >= 0 {
		m.inputs[m.focus].Blur()
	}
	n := len(m.inputs) + 1 // the table is the extra stop
	next := (m.focus + 1 + delta + n) % n
	m.focus = next - 1
	if m.focus >= 0 {
		m.inputs[m.focus].Focus()
	}
	return m
}

// search commits the text inputs and runs a search. A rejected value aborts
// before anything is fetched.
func (m Model[T]) search() (tea.Model, tea.Cmd) {
	for i, name := range m.fields {
		if err := m.ctrl.SetFilterField(name, m.inputs[i].Value()); err != nil {
			m.notice = filterNotice(err)
			m.state = m.ctrl.Snapshot()
			return m, nil
		}
	}
	m.notice = ""
	m.state = m.ctrl.Snapshot()
	return m, m.run("search", m.ctrl.Search)
}

// cycleStatus moves the status filter to the next option, "all" included, and searches
func (m Model[T]) cycleStatus() (tea.Model, tea.Cmd) {
	values := []string{""}
	for _, opt := range m.state.StatusOptions {
		values = append(values, opt.Value)
	}
	if len(values) == 1 {
		for _, s := range m.screen.Statuses {
			values = append(values, s.Code)
		}
	}

	current := slices.Index(values, m.state.Filters.Get(pager.FieldStatus))
	next := values[(current+1)%len(values)]
	if err := m.ctrl.SetFilterField(pager.FieldStatus, next); err != nil {
		m.notice = filterNotice(err)
		return m, nil
	}
	m.state = m.ctrl.Snapshot()
	return m, m.run("search", m.ctrl.Search)
}

func (m *Model[T]) syncInputs() {
	for i, name := range m.fields {
		m.inputs[i].SetValue(m.state.Filters.Get(name))
	}
}

func filterNotice(err error) string {
	if errors.Is(err, pager.ErrInvalidFilter) {
		return strings.TrimPrefix(err.Error(), pager.ErrInvalidFilter.Error()+": ")
	}
	return err.Error()
}

// View implements tea.Model
func (m Model[T]) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.screen.Title))
	b.WriteString("\n\n")
	b.WriteString(m.filtersView())
	b.WriteString("\n\n")
	b.WriteString(m.tableView())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model[T]) filtersView() string {
	parts := make([]string, 0, len(m.inputs)+1)
	for i, name := range m.fields {
		parts = append(parts, m.theme.Label.Render(name+" ")+m.inputs[i].View())
	}

	status := m.state.Filters.Get(pager.FieldStatus)
	label := "all"
	if status != "" {
		label = m.statusLabel(status)
	}
	statusLine := m.theme.Label.Render("status ") + m.theme.StatusTag.Render(label)
	if m.state.StatusErrorMessage != "" {
		statusLine += " " + m.theme.Error.Render("(statuses unavailable)")
	}
	parts = append(parts, statusLine)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model[T]) statusLabel(code string) string {
	for _, opt := range m.state.StatusOptions {
		if opt.Value == code {
			return opt.Label
		}
	}
	return m.screen.StatusLabel(code)
}

func (m Model[T]) tableView() string {
	if len(m.state.Items) == 0 {
		if m.state.IsLoading {
			return m.theme.Footer.Render("Loading...")
		}
		return m.theme.Footer.Render("No records match the current filters.")
	}

	rows := make([][]string, 0, len(m.state.Items))
	for _, item := range m.state.Items {
		rows = append(rows, m.screen.Row(item))
	}
	return renderTable(m.theme, m.screen.Header(), rows, m.width)
}

func (m Model[T]) footerView() string {
	p := m.state.Pagination
	from, to := p.Window(len(m.state.Items))

	line := fmt.Sprintf("Showing %d-%d of %d · page %d/%d", from, to, p.Total, p.CurrentPage, p.LastPage)
	if m.state.IsLoading {
		line = m.spinner.View() + " " + line
	}

	lines := []string{m.theme.Footer.Render(line)}
	if m.notice != "" {
		lines = append(lines, m.theme.Error.Render(m.notice))
	}
	if m.state.LastErrorMessage != "" {
		lines = append(lines, m.theme.Error.Render(m.state.LastErrorMessage))
	}

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	lines = append(lines, m.theme.Help.Render(strings.Join(help, " • ")))
	return strings.Join(lines, "\n")
}
