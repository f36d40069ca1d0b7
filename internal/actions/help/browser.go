package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/dispatch/internal/dispatchers"
	"github.com/footprint-tools/dispatch/internal/ui/style"
)

type sidebarItem struct {
	Label string
	Depth int
	Help  string
}

type model struct {
	items     []sidebarItem
	cursor    int
	width     int
	height    int
	content   viewport.Model
	colors    style.Palette
	cancelled bool
}

func newModel(reg *dispatchers.Registry) model {
	var items []sidebarItem
	reg.Walk(func(id dispatchers.NodeID, depth int) bool {
		cmd, _ := reg.Node(id)
		text, err := reg.ComposeHelp(id)
		if err != nil {
			text = "Unable to compose help information."
		}
		items = append(items, sidebarItem{Label: cmd.Name, Depth: depth, Help: text})
		return true
	})

	m := model{
		items:   items,
		content: viewport.New(80, 20),
		colors:  style.Colors(),
	}
	m.syncContent()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, contentWidth, mainHeight := m.layout()
		m.content.Width = contentWidth
		m.content.Height = mainHeight
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
			return m, nil
		case "down", "j":
			m.moveCursor(1)
			return m, nil
		case "home", "g":
			m.cursor = 0
			m.syncContent()
			return m, nil
		case "end", "G":
			m.cursor = len(m.items) - 1
			m.syncContent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m *model) moveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.items)) % len(m.items)
	m.syncContent()
}

func (m *model) syncContent() {
	if len(m.items) == 0 {
		m.content.SetContent("No commands registered.")
		return
	}
	m.content.SetContent(strings.ReplaceAll(m.items[m.cursor].Help, "\t", "    "))
	m.content.GotoTop()
}

// layout returns the sidebar width, content width and main area height.
func (m model) layout() (int, int, int) {
	width, height := m.width, m.height
	if width == 0 {
		width = 100
	}
	if height == 0 {
		height = 30
	}

	sidebarWidth := width / 4
	if sidebarWidth < 20 {
		sidebarWidth = 20
	}
	if sidebarWidth > 32 {
		sidebarWidth = 32
	}
	return sidebarWidth, width - sidebarWidth - 1, height - 2
}

func (m model) View() string {
	sidebarWidth, _, mainHeight := m.layout()

	sidebar := m.renderSidebar(sidebarWidth, mainHeight)
	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(lipgloss.Color(m.colors.Muted))

	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, border.Render(m.content.View()))
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.colors.Muted)).
		Render("↑/↓ select  pgup/pgdn scroll  q quit")

	return lipgloss.JoinVertical(lipgloss.Left, main, footer)
}

func (m model) renderSidebar(width, height int) string {
	// Keep the cursor visible.
	offset := 0
	if m.cursor >= height {
		offset = m.cursor - height + 1
	}

	selected := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(m.colors.Info))

	var lines []string
	for i := offset; i < len(m.items) && len(lines) < height; i++ {
		item := m.items[i]
		label := strings.Repeat("  ", item.Depth) + item.Label

		prefix := "  "
		if i == m.cursor {
			prefix = "▸ "
			label = selected.Render(label)
		}
		lines = append(lines, prefix+label)
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(lines, "\n"))
}
