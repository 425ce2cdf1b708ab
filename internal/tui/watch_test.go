package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestWatchModel_InitialView(t *testing.T) {
	m := NewWatchModel("/srv/data", nil)

	view := m.View()
	assert.Contains(t, view, "Watching /srv/data")
	assert.Contains(t, view, "Building...")
	assert.Contains(t, view, "quit")
}

func TestWatchModel_RebuildUpdatesView(t *testing.T) {
	m := NewWatchModel("/srv/data", nil)
	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	next, cmd := m.Update(RebuildMsg{View: "data\n└── a.txt", Summary: "0 directories, 1 file", At: at})
	assert.Nil(t, cmd)

	view := next.View()
	assert.Contains(t, view, "└── a.txt")
	assert.Contains(t, view, "0 directories, 1 file")
	assert.Contains(t, view, "12:30:00")
}

func TestWatchModel_FailedRebuildKeepsLastTree(t *testing.T) {
	m := NewWatchModel("/srv/data", nil)
	next, _ := m.Update(RebuildMsg{View: "data\n└── a.txt", Summary: "ok", At: time.Now()})
	next, _ = next.Update(RebuildMsg{Err: errors.New("permission denied"), At: time.Now()})

	view := next.View()
	assert.Contains(t, view, "└── a.txt")
	assert.Contains(t, view, "rebuild failed")
	assert.Contains(t, view, "permission denied")
}

func TestWatchModel_Keys(t *testing.T) {
	refreshed := 0
	m := NewWatchModel("/srv/data", func() { refreshed++ })

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(runeKey('r'))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Equal(t, 1, refreshed)

	next, cmd := m.Update(runeKey('?'))
	assert.Nil(t, cmd)
	assert.True(t, next.(WatchModel).help.ShowAll)
}
