package ui

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Salman1205/M-bot/internal/keys"
	"github.com/Salman1205/M-bot/internal/logger"
)

// LogView is a full-page viewer for the debug log, with tail following and
// slog text-format highlighting.
type LogView struct {
	viewport   viewport.Model
	width      int
	height     int
	path       string
	followTail bool
	loadErr    error
}

// NewLogView creates a viewer for the default debug log.
func NewLogView() *LogView {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	vp.SoftWrap = true

	return &LogView{
		viewport:   vp,
		path:       logger.DefaultLogPath,
		followTail: true,
	}
}

// SetSize sets the page dimensions
func (l *LogView) SetSize(width, height int) {
	l.width = width
	l.height = height

	vc := GetViewContext()
	l.viewport.SetWidth(vc.InnerWidth(width))
	l.viewport.SetHeight(vc.InnerHeight(height) - 1) // one line for the nav bar
}

// Refresh reloads the log file content.
func (l *LogView) Refresh() {
	content, err := os.ReadFile(l.path)
	if err != nil {
		l.loadErr = err
		l.viewport.SetContent("")
		return
	}
	l.loadErr = nil
	l.viewport.SetContent(highlightLogContent(string(content)))
	if l.followTail {
		l.viewport.GotoBottom()
	}
}

// FollowTail reports whether tail following is on.
func (l *LogView) FollowTail() bool {
	return l.followTail
}

// Update handles scrolling, refresh, and follow toggling.
func (l *LogView) Update(msg tea.Msg) (*LogView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Up, "k":
			l.followTail = false
			l.viewport.ScrollUp(1)
		case keys.Down, "j":
			l.viewport.ScrollDown(1)
		case keys.PgUp:
			l.followTail = false
			l.viewport.HalfPageUp()
		case keys.PgDown:
			l.viewport.HalfPageDown()
		case "f":
			l.followTail = !l.followTail
			if l.followTail {
				l.viewport.GotoBottom()
			}
		case "r":
			l.Refresh()
		}
	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		l.viewport, cmd = l.viewport.Update(msg)
		return l, cmd
	}
	return l, nil
}

// View renders the log page
func (l *LogView) View() string {
	navBar := l.renderNavBar(GetViewContext().InnerWidth(l.width))

	var body string
	if l.loadErr != nil {
		body = StatusErrorStyle.Render(fmt.Sprintf("Cannot read log file: %v", l.loadErr))
	} else {
		body = l.viewport.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, navBar, body)
	return PanelStyle.Width(l.width).Height(l.height).Render(content)
}

// renderNavBar renders the one-line header above the log content.
func (l *LogView) renderNavBar(width int) string {
	name := lipgloss.NewStyle().Foreground(ColorText).Bold(true).Render("Debug Log")
	path := SidebarTimeStyle.Render(" " + l.path)

	var follow string
	if l.followTail {
		follow = " " + lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true).Render("[Follow]")
	} else {
		follow = " " + lipgloss.NewStyle().Foreground(ColorTextMuted).Render("[f: follow]")
	}
	refresh := " " + lipgloss.NewStyle().Foreground(ColorTextMuted).Render("[r: refresh]")

	return lipgloss.NewStyle().Width(width).Render(name + path + follow + refresh)
}

// highlightLogContent applies syntax highlighting to slog text output.
func highlightLogContent(content string) string {
	var sb strings.Builder
	for _, line := range strings.Split(content, "\n") {
		sb.WriteString(highlightLogLine(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

// highlightLogLine applies syntax highlighting to a single log line.
func highlightLogLine(line string) string {
	if line == "" {
		return line
	}

	levelErrorStyle := lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	levelWarnStyle := lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	levelInfoStyle := lipgloss.NewStyle().Foreground(ColorInfo)
	levelDebugStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(ColorText)

	if strings.Contains(line, "level=ERROR") {
		line = strings.Replace(line, "level=ERROR", levelErrorStyle.Render("level=ERROR"), 1)
	} else if strings.Contains(line, "level=WARN") {
		line = strings.Replace(line, "level=WARN", levelWarnStyle.Render("level=WARN"), 1)
	} else if strings.Contains(line, "level=INFO") {
		line = strings.Replace(line, "level=INFO", levelInfoStyle.Render("level=INFO"), 1)
	} else if strings.Contains(line, "level=DEBUG") {
		line = strings.Replace(line, "level=DEBUG", levelDebugStyle.Render("level=DEBUG"), 1)
	}

	// Highlight msg= values (quoted form only)
	if idx := strings.Index(line, "msg="); idx >= 0 {
		before := line[:idx]
		rest := line[idx:]
		if len(rest) > 4 && rest[4] == '"' {
			endIdx := strings.Index(rest[5:], "\"")
			if endIdx >= 0 {
				msgKey := keyStyle.Render("msg=")
				msgValue := valueStyle.Render(rest[4 : 5+endIdx+1])
				line = before + msgKey + msgValue + rest[5+endIdx+1:]
			}
		}
	}

	return line
}
