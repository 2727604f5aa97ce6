package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	// Footer context drives which bindings show
	m.footer.SetContext(
		m.selector.ActiveID() != "",
		m.selector.ReadOnly(),
		m.focus == FocusSidebar,
		m.dispatcher.Pending(),
	)

	header := m.header.View()
	footer := m.footer.View()

	var content string
	switch m.page {
	case PageDashboard:
		content = m.dashboard.View()
	case PageLogs:
		content = m.logView.View()
	default:
		if m.sidebarVisible {
			content = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.chat.View())
		} else {
			content = m.chat.View()
		}
	}

	view := lipgloss.JoinVertical(lipgloss.Left, header, content, footer)

	if m.modal.IsVisible() {
		v.SetContent(m.modal.View(m.width, m.height))
		return v
	}

	v.SetContent(view)
	return v
}
