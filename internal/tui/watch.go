package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// RebuildMsg delivers the outcome of a rebuild to the watch view.
type RebuildMsg struct {
	View    string // Rendered tree; kept from the previous rebuild when Err is set
	Summary string
	Err     error
	At      time.Time
}

// WatchModel is the interactive view of the watch command. It shows the
// latest tree and the status of the last rebuild.
type WatchModel struct {
	root      string
	keys      KeyMap
	help      help.Model
	spinner   spinner.Model
	onRefresh func()

	view     string
	summary  string
	err      error
	at       time.Time
	rebuilds int
}

// NewWatchModel creates the view for root. onRefresh is called when the user
// asks for a rebuild; it should trigger one and return immediately.
func NewWatchModel(root string, onRefresh func()) WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return WatchModel{
		root:      root,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   s,
		onRefresh: onRefresh,
	}
}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			if m.onRefresh == nil {
				return m, nil
			}
			refresh := m.onRefresh
			return m, func() tea.Msg {
				refresh()
				return nil
			}
		}

	case RebuildMsg:
		m.rebuilds++
		m.at = msg.At
		m.err = msg.Err
		if msg.Err == nil {
			m.view = msg.View
			m.summary = msg.Summary
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m WatchModel) View() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(TitleStyle.Render("Watching " + m.root))
	b.WriteString("\n")

	if m.view != "" {
		b.WriteString(m.view)
		if !strings.HasSuffix(m.view, "\n") {
			b.WriteString("\n")
		}
	}

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("%s rebuild failed at %s: %v", SymbolCross, m.at.Format(time.TimeOnly), m.err)))
	case m.rebuilds > 0:
		b.WriteString(SuccessStyle.Render(fmt.Sprintf("%s %s (rebuilt at %s)", SymbolCheck, m.summary, m.at.Format(time.TimeOnly))))
	default:
		b.WriteString(WarningStyle.Render("Building..."))
	}
	b.WriteString("\n")

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
