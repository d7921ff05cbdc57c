package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/states"
)

// Model is the Bubble Tea model driving a state machine.
type Model struct {
	machine    *states.Machine
	screen     *core.Screen
	config     core.RuntimeConfig
	clock      *core.Clock
	keyMapper  *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	now        func() time.Time
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given machine.
func NewModel(machine *states.Machine, cfg core.RuntimeConfig) Model {
	return Model{
		machine:    machine,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		clock:      core.NewClock(cfg.TickRate),
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.clock.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.holds.Release()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}
	if action == core.ActionNone {
		return m, nil
	}
	m.inputFrame.Set(action)
	if isMovement(action) {
		m.holds.Press(action, m.now())
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	dt := m.clock.Tick()
	m.holds.Apply(&m.inputFrame, m.now())
	m.machine.Update(dt, m.inputFrame)
	m.inputFrame.Clear()

	if m.machine.Done() {
		return m.quit()
	}
	return m, tickCmd(m.clock.TickRate())
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.machine.Close()
	return m, tea.Quit
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	m.machine.Draw(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".starcatcher", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.machine.Current().Name(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.machine.Draw(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a machine.
func Run(machine *states.Machine, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(machine, cfg),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
