package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Header represents the top header bar
type Header struct {
	width    int
	pageName string
	userName string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetPageName sets the current page name to display
func (h *Header) SetPageName(name string) {
	h.pageName = name
}

// SetUserName sets the signed-in user's display name
func (h *Header) SetUserName(name string) {
	h.userName = name
}

// View renders the header
func (h *Header) View() string {
	titleText := " M"
	var rightText string
	if h.userName != "" {
		rightText = h.userName
		if h.pageName != "" {
			rightText += " (" + h.pageName + ")"
		}
		rightText += " "
	} else if h.pageName != "" {
		rightText = h.pageName + " "
	}

	paddingLen := h.width - len(titleText) - len(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent, h.pageName)
}

// parseHexColor parses a hex color string (e.g., "#0D9488") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// pageName is used to identify and mute the page portion of the text.
func (h *Header) renderGradient(content string, pageName string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	// End color: fade to the main background
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	// Find where the page portion starts (if present)
	pageStart := -1
	if pageName != "" {
		pageMarker := "(" + pageName + ")"
		pageStart = strings.Index(content, pageMarker)
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		inPage := pageStart >= 0 && i >= pageStart

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 2) // Bold for the "M" title

		if inPage {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
