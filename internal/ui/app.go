package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/viewstate"
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Audit       viewstate.AuditSink
	Logger      zerolog.Logger
	SourceLabel string
	PollTick    time.Duration
	ThemeName   string
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	store       *state.Store
	audit       viewstate.AuditSink
	logger      zerolog.Logger
	sourceLabel string
	prefsPath   string
	pollTick    time.Duration
	keys        keyMap

	// UI state
	theme   Theme
	width   int
	height  int
	ready   bool
	spinner spinner.Model

	// Data state. engine stays nil until the store reports PhaseReady.
	snapshot    state.Snapshot
	lastUpdated time.Time
	engine      *viewstate.Engine

	// Table state
	cursor int
	offset int

	search searchState

	// Overlays
	showHelp bool
	modal    Modal

	// Flash message (temporary notification)
	flash   string
	flashID uint64
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		audit:       opts.Audit,
		logger:      opts.Logger,
		sourceLabel: opts.SourceLabel,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		spinner:     sp,
		search:      newSearchState(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.input.Width = max(m.width-12, 10)
		m.ensureCursorVisible()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case spinner.TickMsg:
		// Stop spinning once the data is in.
		if m.engine != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDebounceMsg:
		return m.handleSearchDebounce(msg)

	case healthFilterMsg:
		if m.engine != nil {
			m.engine.SetHealth(viewstate.HealthSet(msg))
			m.clampCursor()
		}
		return m, nil

	case flashClearMsg:
		if msg.id == m.flashID {
			m.flash = ""
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// applySnapshot records the latest load state. The engine is built once, from
// the first ready snapshot, and owns the collection from then on.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.lastUpdated = time.Now()
	if m.engine == nil && snap.Phase == state.PhaseReady {
		m.engine = viewstate.NewEngine(snap.Characters, m.audit)
		if text := m.search.input.Value(); text != "" {
			m.engine.SetSearch(text)
		}
		m.cursor, m.offset = 0, 0
		m.snapshot.Characters = nil
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if m.search.active {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn().Err(err).Str("theme", m.theme.Name).Msg("save prefs failed")
			}
		}
		return m, nil
	}

	// Everything below needs loaded data.
	if m.engine == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.startSearch()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		if m.engine.Params().Search != "" {
			m.clearSearch()
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.modal = newHealthFilterModal(m.engine.Params().Health)
		return m, nil

	case key.Matches(msg, m.keys.ToggleHealthy):
		m.toggleHealth(roster.Healthy)
	case key.Matches(msg, m.keys.ToggleInjured):
		m.toggleHealth(roster.Injured)
	case key.Matches(msg, m.keys.ToggleCritical):
		m.toggleHealth(roster.Critical)

	case key.Matches(msg, m.keys.CycleSort):
		m.cycleSort()

	case key.Matches(msg, m.keys.ToggleSelect):
		if c, ok := m.currentRow(); ok {
			m.engine.Toggle(c.ID)
		}

	case key.Matches(msg, m.keys.SelectAll):
		m.engine.ToggleAll()

	case key.Matches(msg, m.keys.MarkViewed):
		cmd := m.markViewed(true)
		return m, cmd

	case key.Matches(msg, m.keys.MarkUnviewed):
		cmd := m.markViewed(false)
		return m, cmd

	default:
		m.handleNavigation(msg)
	}

	return m, nil
}

// handleNavigation moves the cursor within the visible rows.
func (m *Model) handleNavigation(msg tea.KeyMsg) {
	count := m.engine.View().Len()
	if count == 0 {
		return
	}
	page := m.pageSize()

	switch {
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = count - 1
	case key.Matches(msg, m.keys.PageDown):
		m.cursor += page
	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= page
	case key.Matches(msg, m.keys.HalfPageDown):
		m.cursor += max(page/2, 1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.cursor -= max(page/2, 1)
	default:
		return
	}
	m.clampCursor()
}

func (m *Model) toggleHealth(h roster.Health) {
	m.engine.ToggleHealth(h)
	m.clampCursor()
}

func (m *Model) cycleSort() {
	// Keep the cursor on the same record when the order changes.
	var id string
	if c, ok := m.currentRow(); ok {
		id = c.ID
	}
	m.engine.CycleSort()
	if idx := m.engine.View().IndexOf(id); id != "" && idx >= 0 {
		m.cursor = idx
	}
	m.clampCursor()
}

// markViewed applies the bulk action. It is a no-op with an empty selection.
func (m *Model) markViewed(viewed bool) tea.Cmd {
	if m.engine.Selected() == 0 {
		return nil
	}
	n := m.engine.MarkViewed(viewed)
	verb := "viewed"
	if !viewed {
		verb = "unviewed"
	}
	return m.setFlash(fmt.Sprintf("Marked %d %s", n, verb))
}

func (m *Model) setFlash(text string) tea.Cmd {
	m.flashID++
	m.flash = text
	id := m.flashID
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{id: id}
	})
}

// handleTick polls the store until the collection is loaded.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.engine != nil || m.store == nil {
		return m, nil
	}
	return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderTable())

	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type flashClearMsg struct {
	id uint64
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		// Cancelling the context is a normal shutdown.
		if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
