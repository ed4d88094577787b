package screen

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/papersift-io/papersift/internal/keyword"
	"github.com/papersift-io/papersift/internal/models"
	"github.com/papersift-io/papersift/internal/store"
)

// Interaction modes. Exactly one is active; it decides which keys work
// and what the area under the record shows.
const (
	modeDeciding = iota
	modeReason
	modeNote
	modeHelp
	modeSummary
)

// Model is the root Bubbletea model for a screening session.
type Model struct {
	set     *models.RecordSet
	ledger  *store.Ledger
	matcher *keyword.Matcher
	theme   Theme
	logger  *zap.Logger

	displayColumns []string
	reasons        []string

	// queue holds the identities presented this session, pos the cursor.
	queue []string
	pos   int

	mode          int
	pendingReason string

	viewport  viewport.Model
	progress  progress.Model
	noteInput textinput.Model

	width    int
	height   int
	widthCap int
	ready    bool

	flash      string
	flashIsErr bool
	savedAt    string
	inputStale bool

	fatalErr error
	outcome  *Outcome

	program *programRef
}

// NewModel creates the initial model for one session.
func NewModel(cfg Config, program *programRef) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if program == nil {
		program = &programRef{}
	}

	queue := cfg.Ledger.Pending()
	if cfg.RedoCompleted {
		queue = cfg.Set.Identities()
	}

	ti := textinput.New()
	ti.Placeholder = "detail"
	ti.Prompt = "> "
	ti.PromptStyle = cfg.Theme.Prompt
	ti.CharLimit = 240

	prog := progress.New(progress.WithDefaultGradient())
	if cfg.Theme.GradFrom != "" {
		prog = progress.New(progress.WithGradient(cfg.Theme.GradFrom, cfg.Theme.GradTo))
	}

	m := Model{
		set:            cfg.Set,
		ledger:         cfg.Ledger,
		matcher:        cfg.Matcher,
		theme:          cfg.Theme,
		logger:         logger,
		displayColumns: cfg.DisplayColumns,
		reasons:        cfg.Reasons,
		queue:          queue,
		viewport:       viewport.New(80, 24),
		progress:       prog,
		noteInput:      ti,
		widthCap:       cfg.WidthCap,
		program:        program,
	}
	if len(queue) == 0 {
		m.mode = modeSummary
		m.outcome = &Outcome{Status: StatusCompleted, Stats: cfg.Ledger.Stats()}
	}
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateDimensions()
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case InputChangedMsg:
		m.inputStale = true
		m.logger.Warn("input file changed on disk", zap.String("path", msg.Path))
		return m, nil

	case WatchErrorMsg:
		m.logger.Debug("input watcher error", zap.Error(msg.Err))
		return m, nil

	case clearFlashMsg:
		m.flash = ""
		m.flashIsErr = false
		return m, nil
	}

	return m, nil
}

// handleKey routes key events by mode.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeDeciding:
		return m.handleDecideKey(msg)
	case modeReason:
		return m.handleReasonKey(msg)
	case modeNote:
		return m.handleNoteKey(msg)
	case modeHelp:
		m.mode = modeDeciding
		m.updateDimensions()
		return nil
	case modeSummary:
		return m.quit(StatusCompleted)
	}
	return nil
}

func (m *Model) handleDecideKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, decideKeys.Quit):
		return m.quit(StatusInterrupted)

	case key.Matches(msg, decideKeys.Include):
		return m.decide(models.NewInclude())

	case key.Matches(msg, decideKeys.Exclude):
		m.mode = modeReason
		m.updateDimensions()
		return nil

	case key.Matches(msg, decideKeys.Skip):
		m.logger.Debug("record skipped", zap.String("identity", m.current()))
		return m.advance()

	case key.Matches(msg, decideKeys.Help):
		m.mode = modeHelp
		return nil

	case key.Matches(msg, decideKeys.Up):
		m.viewport.LineUp(1)
		return nil

	case key.Matches(msg, decideKeys.Down):
		m.viewport.LineDown(1)
		return nil

	case key.Matches(msg, decideKeys.PageUp):
		m.viewport.HalfViewUp()
		return nil

	case key.Matches(msg, decideKeys.PageDown):
		m.viewport.HalfViewDown()
		return nil
	}

	// Anything else is rejected without touching session state.
	return m.reject("press i to include, e to exclude, s to skip, q to quit (? for help)")
}

func (m *Model) handleReasonKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, reasonKeys.Cancel):
		m.mode = modeDeciding
		m.updateDimensions()
		return nil
	case key.Matches(msg, reasonKeys.Quit):
		return m.quit(StatusInterrupted)
	}

	if idx, ok := reasonIndex(msg.String(), len(m.reasons)); ok {
		reason := m.reasons[idx]
		// The last reason asks for a free-text note.
		if idx == len(m.reasons)-1 {
			m.pendingReason = reason
			m.mode = modeNote
			m.noteInput.Reset()
			m.updateDimensions()
			return m.noteInput.Focus()
		}
		return m.decide(models.NewExclude(reason, ""))
	}

	return m.reject(fmt.Sprintf("press 1-%d to pick a reason, Esc to cancel", len(m.reasons)))
}

// reasonIndex maps a pressed digit to a reason slot.
func reasonIndex(s string, n int) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	idx := int(s[0] - '1')
	if idx >= n {
		return 0, false
	}
	return idx, true
}

func (m *Model) handleNoteKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, noteKeys.Accept):
		note := strings.TrimSpace(m.noteInput.Value())
		m.noteInput.Blur()
		return m.decide(models.NewExclude(m.pendingReason, note))

	case key.Matches(msg, noteKeys.Cancel):
		m.noteInput.Blur()
		m.mode = modeReason
		m.updateDimensions()
		return nil

	case key.Matches(msg, reasonKeys.Quit):
		return m.quit(StatusInterrupted)
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return cmd
}

// decide records the verdict for the current record. The ledger flush
// happens here, synchronously, so once we move on the decision is on
// disk. A write failure ends the session.
func (m *Model) decide(d models.Decision) tea.Cmd {
	id := m.current()
	if id == "" {
		return nil
	}
	if err := m.ledger.Record(id, d); err != nil {
		m.fatalErr = err
		m.logger.Error("failed to persist decision", zap.String("identity", id), zap.Error(err))
		return m.quitNow()
	}
	m.logger.Debug("decision recorded",
		zap.String("identity", id),
		zap.String("verdict", string(d.Verdict)),
		zap.String("reason", d.Reason))
	m.savedAt = time.Now().Format("15:04:05")
	return m.advance()
}

// advance moves to the next queued record, or to the summary when the
// queue is exhausted.
func (m *Model) advance() tea.Cmd {
	m.pos++
	m.mode = modeDeciding
	m.pendingReason = ""
	m.flash = ""
	if m.pos >= len(m.queue) {
		m.mode = modeSummary
		m.outcome = &Outcome{Status: StatusCompleted, Stats: m.ledger.Stats()}
		return nil
	}
	m.updateDimensions()
	m.refreshViewport()
	return nil
}

// reject flashes a hint for an unrecognized key. No session state changes.
func (m *Model) reject(hint string) tea.Cmd {
	m.flash = hint
	m.flashIsErr = true
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}

func (m *Model) quit(status string) tea.Cmd {
	m.outcome = &Outcome{Status: status, Stats: m.ledger.Stats()}
	return m.quitNow()
}

func (m *Model) quitNow() tea.Cmd {
	m.program.Clear()
	return tea.Quit
}

// current returns the identity under the cursor, or "" past the end.
func (m *Model) current() string {
	if m.pos < 0 || m.pos >= len(m.queue) {
		return ""
	}
	return m.queue[m.pos]
}

// currentRecord resolves the record under the cursor.
func (m *Model) currentRecord() (models.Record, bool) {
	id := m.current()
	if id == "" {
		return models.Record{}, false
	}
	for _, rec := range m.set.Records {
		if rec.Identity == id {
			return rec, true
		}
	}
	return models.Record{}, false
}

// contentWidth is the usable width, honoring the --width cap.
func (m *Model) contentWidth() int {
	w := m.width
	if m.widthCap > 0 && m.widthCap < w {
		w = m.widthCap
	}
	if w < 20 {
		w = 20
	}
	return w
}

// promptHeight is the number of lines the area under the record uses.
func (m *Model) promptHeight() int {
	switch m.mode {
	case modeReason:
		return len(m.reasons) + 2
	case modeNote:
		return 3
	default:
		return 1
	}
}

func (m *Model) updateDimensions() {
	w := m.contentWidth()
	m.viewport.Width = w
	// Chrome: header block is 3 lines, status bar 1.
	h := m.height - 3 - m.promptHeight() - 1
	if h < 3 {
		h = 3
	}
	m.viewport.Height = h
	// Leave room for the "record N of M" counter beside the bar.
	pw := w - 28
	if pw < 10 {
		pw = 10
	}
	m.progress.Width = pw
	m.noteInput.Width = w - 8
}

func (m *Model) refreshViewport() {
	rec, ok := m.currentRecord()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(renderRecord(m, rec))
	m.viewport.GotoTop()
}

// View renders the screening view.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	if m.width < 40 || m.height < 10 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				m.theme.Warn.Render("Terminal too small"),
				m.theme.Dim.Render(fmt.Sprintf("Need 40x10, have %dx%d", m.width, m.height)),
			))
	}

	if m.mode == modeSummary {
		return renderSummary(&m)
	}

	header := renderHeader(&m)
	body := m.viewport.View()
	prompt := renderPrompt(&m)
	status := renderStatusBar(&m)

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, prompt, status)

	if m.mode == modeHelp {
		view = renderOverlay(view, renderHelp(&m), m.width, m.height, m.theme.Dim)
	}
	return view
}
