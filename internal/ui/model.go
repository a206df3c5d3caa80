package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"usersearch/internal/domain"
	"usersearch/internal/eventbus"
	"usersearch/internal/search"
	"usersearch/internal/ui/toast"
	"usersearch/internal/ui/views"
)

// DefaultDebounce is the quiet interval before a request is sent
const DefaultDebounce = 300 * time.Millisecond

// Options configures the search view
type Options struct {
	Searcher search.Searcher
	Debounce time.Duration
	Assets   views.Assets
	ToastTTL time.Duration
	Bus      eventbus.EventBus // optional
	Notify   toast.Func        // optional, sees every toast shown
	Context  context.Context   // cancelled requests are abandoned
}

// Model is the search view
type Model struct {
	ctx      context.Context
	cancel   context.CancelFunc
	searcher search.Searcher
	bus      eventbus.EventBus
	notify   toast.Func

	state     *search.State
	debouncer *Debouncer
	router    *Router
	profile   *domain.User
	selected  int

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	toasts  toast.Model

	renderer *views.Renderer
	width    int
	height   int
	closed   bool
}

// NewModel creates the search view with an empty, focused input
func NewModel(opts Options) *Model {
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	delay := opts.Debounce
	if delay <= 0 {
		delay = DefaultDebounce
	}

	ti := textinput.New()
	ti.Placeholder = "Search for a user"
	ti.Prompt = "› "
	ti.CharLimit = 0
	ti.Width = 40
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	return &Model{
		ctx:       ctx,
		cancel:    cancel,
		searcher:  opts.Searcher,
		bus:       opts.Bus,
		notify:    opts.Notify,
		state:     search.NewState(),
		debouncer: NewDebouncer(delay),
		router:    NewRouter(),
		input:     ti,
		spinner:   sp,
		help:      help.New(),
		keys:      newKeyMap(),
		toasts:    toast.New(opts.ToastTTL, 3),
		renderer:  views.NewRenderer(opts.Assets),
	}
}

// State exposes the session state for inspection
func (m *Model) State() *search.State {
	return m.state
}

// Route returns the active client-side route
func (m *Model) Route() string {
	return m.router.Current()
}

// Selected returns the highlighted suggestion index
func (m *Model) Selected() int {
	return m.selected
}

// Toasts returns the visible toasts
func (m *Model) Toasts() []toast.Toast {
	return m.toasts.Items()
}

// Close tears the view down: the pending debounce fire is cancelled and
// in-flight requests are abandoned. It is safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.debouncer.Stop()
	m.cancel()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if w := msg.Width - 16; w > 10 {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case DebounceMsg:
		return m, m.handleDebounce(msg)

	case searchResultMsg:
		return m, m.handleResult(msg)

	case spinner.TickMsg:
		// let the tick chain die once nothing is loading
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toast.ExpireMsg:
		m.toasts.Update(msg)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Msg("help pager failed")
			return m, m.showToast("Help", msg.err.Error(), toast.SeverityWarning)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		m.Close()
		return tea.Quit
	}

	if m.profile != nil {
		if key.Matches(msg, m.keys.Back) {
			m.router.Back()
			m.profile = nil
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		return showHelpPager(RenderHelpContent(m.keys, m.debouncer.Delay().String()))

	case key.Matches(msg, m.keys.Up):
		if m.suggestionsVisible() && m.selected > 0 {
			m.selected--
		}
		return nil

	case key.Matches(msg, m.keys.Down):
		if m.suggestionsVisible() && m.selected < len(m.state.Results)-1 {
			m.selected++
		}
		return nil

	case key.Matches(msg, m.keys.Open):
		if m.suggestionsVisible() && m.selected >= 0 && m.selected < len(m.state.Results) {
			m.openProfile(m.state.Results[m.selected])
		}
		return nil

	case key.Matches(msg, m.keys.Clear):
		if m.input.Value() == "" {
			return nil
		}
		m.input.SetValue("")
		return m.textChanged()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.textChanged())
}

// textChanged records the new input value and restarts the debounce timer
func (m *Model) textChanged() tea.Cmd {
	m.state.SetText(m.input.Value())
	return m.debouncer.Schedule()
}

func (m *Model) handleDebounce(msg DebounceMsg) tea.Cmd {
	if !m.debouncer.Fire(msg) {
		return nil
	}

	if !m.state.HasQuery() {
		m.state.Clear()
		m.selected = 0
		m.publish(eventbus.ResultsClearedEvent{})
		log.Debug().Msg("search cleared")
		return nil
	}

	wasLoading := m.state.Loading
	query := m.state.Query()
	seq := m.state.Begin()
	m.publish(eventbus.SearchDispatchedEvent{Query: query, Seq: seq})
	log.Info().Str("query", query).Uint64("seq", seq).Msg("search dispatched")

	cmds := []tea.Cmd{m.searchCmd(seq, query)}
	if !wasLoading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *Model) searchCmd(seq uint64, query string) tea.Cmd {
	ctx := m.ctx
	searcher := m.searcher
	return func() tea.Msg {
		users, err := searcher.Search(ctx, query)
		return searchResultMsg{seq: seq, query: query, users: users, err: err}
	}
}

func (m *Model) handleResult(msg searchResultMsg) tea.Cmd {
	if msg.err != nil {
		current := m.state.Fail(msg.seq)
		m.publish(eventbus.SearchFailedEvent{Query: msg.query, Seq: msg.seq, Err: msg.err, Stale: !current})
		if !current {
			log.Debug().Str("query", msg.query).Uint64("seq", msg.seq).Err(msg.err).Msg("stale search failure discarded")
			return nil
		}
		log.Warn().Str("query", msg.query).Uint64("seq", msg.seq).Bool("api_error", search.IsAPIError(msg.err)).Err(msg.err).Msg("search failed")
		return m.showToast("Error", msg.err.Error(), toast.SeverityError)
	}

	if !m.state.Complete(msg.seq, msg.users) {
		log.Debug().Str("query", msg.query).Uint64("seq", msg.seq).Msg("stale search response discarded")
		return nil
	}
	m.selected = 0
	m.publish(eventbus.SearchCompletedEvent{Query: msg.query, Seq: msg.seq, Count: len(msg.users)})
	log.Info().Str("query", msg.query).Uint64("seq", msg.seq).Int("count", len(msg.users)).Msg("search completed")
	return nil
}

func (m *Model) openProfile(u domain.User) {
	user := u
	m.profile = &user
	m.router.Navigate(u.Route())
	m.publish(eventbus.NavigatedEvent{Route: u.Route()})
	log.Info().Str("route", u.Route()).Msg("navigated")
}

func (m *Model) suggestionsVisible() bool {
	return views.Body(m.state.Text, m.state.Results, m.state.Loading) == views.BodySuggestions
}

func (m *Model) showToast(title, message string, severity toast.Severity) tea.Cmd {
	if m.notify != nil {
		m.notify(title, message, severity)
	}
	return m.toasts.Push(title, message, severity)
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.closed {
		return ""
	}

	state := views.ViewState{
		Width:     m.width,
		Text:      m.state.Text,
		Results:   m.state.Results,
		Loading:   m.state.Loading,
		Selected:  m.selected,
		InputView: m.input.View(),
		Toasts:    m.toasts.View(),
		Profile:   m.profile,
	}
	if m.state.Loading {
		state.Button = m.spinner.View()
	}
	if m.profile != nil {
		state.Help = m.help.View(profileHelp{keys: m.keys})
	} else {
		state.Help = m.help.View(m.keys)
	}

	return m.renderer.Render(state)
}
