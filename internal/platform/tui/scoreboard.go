package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-catcher/internal/game"
	"github.com/vovakirdan/star-catcher/internal/registry"
	"github.com/vovakirdan/star-catcher/internal/storage"
)

const leaderboardSize = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevMode, k.NextMode, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next board")),
		PrevMode: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev board")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreMode is one leaderboard: free play or one song.
type ScoreMode struct {
	ID    string
	Title string
}

// ScoreModes lists free play, every registered song and any other mode that
// has stored scores, e.g. songs loaded from files that are gone now.
func ScoreModes(store *storage.Store) []ScoreMode {
	modes := []ScoreMode{{ID: game.ModeFreePlay, Title: "Free Play"}}
	seen := map[string]bool{game.ModeFreePlay: true}
	for _, song := range registry.List() {
		id := game.RhythmMode(song.ID)
		modes = append(modes, ScoreMode{ID: id, Title: song.Title})
		seen[id] = true
	}
	if store == nil {
		return modes
	}
	stats, err := store.GetAllModesStats()
	if err != nil {
		return modes
	}
	extra := make([]string, 0, len(stats))
	for id := range stats {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	slices.Sort(extra)
	for _, id := range extra {
		modes = append(modes, ScoreMode{ID: id, Title: id})
	}
	return modes
}

// ScoreboardModel shows the leaderboard of one mode at a time.
type ScoreboardModel struct {
	store  *storage.Store
	modes  []ScoreMode
	cursor int
	stats  *storage.ModeStats
	rows   int
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	done   bool
}

// NewScoreboardModel creates a scoreboard opened on the given mode, or on
// free play when mode is empty or unknown.
func NewScoreboardModel(store *storage.Store, mode string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		modes: ScoreModes(store),
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
		width: width, height: height,
	}
	for i, sm := range m.modes {
		if sm.ID == mode {
			m.cursor = i
		}
	}
	m.table = newScoreTable(height)
	m.load()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 16},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-10)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// load reads the top scores and stats of the current mode. Storage errors
// show as an empty board.
func (m *ScoreboardModel) load() {
	m.stats = nil
	var scores []storage.ScoreEntry
	if m.store != nil {
		scores, _ = m.store.TopScores(m.Mode(), leaderboardSize)
		m.stats, _ = m.store.GetModeStats(m.Mode())
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Owner,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.rows = len(rows)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cursor = (m.cursor + 1) % len(m.modes)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cursor = (m.cursor + len(m.modes) - 1) % len(m.modes)
			m.load()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(3, m.height-10))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardDimStyle.Italic(true).Padding(2, 4).Render("No scores yet.\nCatch some stars to set one!")
	if m.rows > 0 {
		body = m.table.View()
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")
	if m.stats != nil && m.stats.Sessions > 0 {
		line := fmt.Sprintf("best %d · %d runs · avg %.0f", m.stats.HighScore, m.stats.Sessions, m.stats.AvgScore)
		b.WriteString(centerText(boardDimStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders every board title, or only the current one between arrows
// when they do not fit the width.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.modes))
	for i, sm := range m.modes {
		if i == m.cursor {
			tabs[i] = boardActiveTab.Render(sm.Title)
		} else {
			tabs[i] = boardTabStyle.Render(sm.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = boardActiveTab.Render("< " + m.modes[m.cursor].Title + " >")
	}
	return line
}

// Mode returns the mode currently shown.
func (m ScoreboardModel) Mode() string {
	return m.modes[m.cursor].ID
}

// RunScoreboard runs the interactive scoreboard.
func RunScoreboard(store *storage.Store, mode string, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, mode, width, height), tea.WithAltScreen()).Run()
	return err
}
