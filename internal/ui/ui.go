package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/ytpl/internal/models"
)

const (
	defaultWidth  = 72
	defaultHeight = 24
)

// Model represents the TUI menu state.
type Model struct {
	menu     list.Model
	info     *models.PlaylistInfo
	handle   Handler
	palette  *Palette
	busy     bool
	quitting bool
	status   []string
	help     help.Model
	keys     keyMap
}

// NewModel creates the TUI menu for an already fetched playlist.
func NewModel(info *models.PlaylistInfo, handle Handler) *Model {
	menu := list.New(menuListItems(), list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	menu.Title = menuTitle
	menu.SetShowHelp(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowStatusBar(false)

	return &Model{
		menu:    menu,
		info:    info,
		handle:  handle,
		palette: DefaultPalette(),
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init implements [tea.Model].
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and export results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width, max(msg.Height-len(m.status)-4, 8))
		return m, nil

	case Msg:
		if msg.kind == MsgExportComplete {
			data := msg.data.(exportComplete)
			m.busy = false
			m.status = RenderResult(m.palette, data.result)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.quitting = true
			return m, tea.Quit
		case m.busy:
			return m, nil
		case key.Matches(msg, m.keys.choose):
			item, err := ParseChoice(msg.String())
			if err != nil {
				m.status = []string{m.palette.Err("❌ Invalid choice.")}
				return m, nil
			}
			return m.choose(item)
		case key.Matches(msg, m.keys.enter):
			selected, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			return m.choose(selected.item)
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) choose(item MenuItem) (tea.Model, tea.Cmd) {
	if item.Exit {
		m.quitting = true
		return m, tea.Quit
	}

	m.busy = true
	m.status = []string{m.palette.Warn("Exporting...")}
	handle := m.handle
	return m, func() tea.Msg {
		return exportCompleteMsg(item, handle(item.Projections))
	}
}

// View renders the menu, the last export status and the key help.
func (m *Model) View() string {
	if m.quitting {
		return "👋 Exiting.\n"
	}

	var b strings.Builder
	if m.info != nil {
		title := m.info.Title
		if title == "" {
			title = "(untitled playlist)"
		}
		b.WriteString(m.palette.Help(title+" • ") + m.palette.Help(pluralize(m.info.Len(), "entry", "entries")) + "\n")
	}
	b.WriteString(m.menu.View())
	b.WriteString("\n")
	for _, line := range m.status {
		b.WriteString(line + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
