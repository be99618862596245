package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/levelgen/internal/config"
	"github.com/vovakirdan/levelgen/internal/pipeline"
	"github.com/vovakirdan/levelgen/internal/storage"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateGenerating
	stateSummary
	stateHistory
)

// generatedMsg carries the result of a background generation.
type generatedMsg struct {
	outcome *pipeline.Outcome
	err     error
}

// SessionModel manages the full picker flow: menu -> generate -> summary ->
// menu, with the history browser one key away. It is the top-level model for
// both the local menu command and SSH sessions.
type SessionModel struct {
	pipe       *pipeline.Pipeline
	store      *storage.Store
	request    pipeline.Request // Template for every generation in the session
	username   string
	width      int
	height     int
	keyMapper  *KeyMapper
	state      sessionState
	menu       MenuModel
	history    HistoryModel
	difficulty config.Difficulty
	outcome    *pipeline.Outcome
	last       *pipeline.Outcome // Last successful generation
	err        error
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(pipe *pipeline.Pipeline, store *storage.Store, req pipeline.Request, width, height int, username string) SessionModel {
	return SessionModel{
		pipe:      pipe,
		store:     store,
		request:   req,
		username:  username,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		menu:      NewMenuModel(width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// generate runs the pipeline off the UI goroutine.
func (m SessionModel) generate(seed uint64) tea.Cmd {
	req := m.request
	req.Difficulty = m.difficulty
	req.Seed = seed
	pipe := m.pipe
	return func() tea.Msg {
		out, err := pipe.Run(req)
		return generatedMsg{outcome: out, err: err}
	}
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.state {
	case stateGenerating:
		return m.updateGenerating(msg)
	case stateSummary:
		return m.updateSummary(msg)
	case stateHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		return m.openHistory()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.difficulty = selected.Difficulty
		m.state = stateGenerating
		return m, m.generate(m.request.Seed)
	}

	return m, cmd
}

// updateGenerating waits for the background generation to finish.
func (m SessionModel) updateGenerating(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		m.outcome, m.err = msg.outcome, msg.err
		if msg.err == nil {
			m.last = msg.outcome
		}
		m.state = stateSummary
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// updateSummary handles keys on the summary screen.
func (m SessionModel) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(keyMsg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack, MenuActionSelect:
		return m.backToMenu()
	case MenuActionRegenerate:
		m.state = stateGenerating
		return m, m.generate(0) // fresh seed
	case MenuActionHistory:
		return m.openHistory()
	}

	return m, nil
}

// updateHistory forwards messages to the embedded history browser.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHistory, cmd := m.history.Update(msg)
	if historyModel, ok := newHistory.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) openHistory() (tea.Model, tea.Cmd) {
	m.history = NewHistoryModel(m.store, m.width, m.height)
	m.history.embedded = true
	m.state = stateHistory
	return m, m.history.Init()
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.width, m.height)
	m.state = stateMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGenerating:
		return "\n" + centerText(fmt.Sprintf("Generating %s level...", m.difficulty.Title()), m.width)
	case stateSummary:
		return m.viewSummary()
	case stateHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

func (m SessionModel) viewSummary() string {
	var b strings.Builder
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Generation failed: " + m.err.Error()))
	} else {
		b.WriteString(RenderSummary(m.outcome))
	}

	b.WriteString("\n\n")
	controls := "Enter/B: Back  |  R: Regenerate  |  Tab: History  |  Q: Quit"
	if m.username != "" {
		controls = m.username + "  |  " + controls
	}
	b.WriteString(helpStyle.Render(controls))
	return b.String()
}

// LastOutcome returns the most recent successful generation, if any.
func (m SessionModel) LastOutcome() *pipeline.Outcome {
	return m.last
}

// RunSession runs an interactive session in the local terminal and returns
// the last level generated.
func RunSession(pipe *pipeline.Pipeline, store *storage.Store, req pipeline.Request, width, height int) (*pipeline.Outcome, error) {
	p := tea.NewProgram(
		NewSessionModel(pipe, store, req, width, height, ""),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SessionModel)
	if !ok {
		return nil, nil
	}
	return m.LastOutcome(), nil
}
