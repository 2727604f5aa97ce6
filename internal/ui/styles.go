package ui

import "charm.land/lipgloss/v2"

// Color palette - Teal + Rose theme (matches the web client)
var (
	ColorPrimary     = lipgloss.Color("#0D9488") // Teal
	ColorSecondary   = lipgloss.Color("#F43F5E") // Rose
	ColorMuted       = lipgloss.Color("#99B8B4") // Gray-teal
	ColorBorder      = lipgloss.Color("#115E59") // Dark teal
	ColorBorderFocus = lipgloss.Color("#0D9488") // Teal when focused
	ColorBg          = lipgloss.Color("#134E4A") // Dark background
	ColorText        = lipgloss.Color("#F0FDFA") // Light text
	ColorTextMuted   = lipgloss.Color("#99B8B4") // Muted text
	ColorTextInverse = lipgloss.Color("#134E4A") // Dark text for light backgrounds
	ColorUser        = lipgloss.Color("#5EEAD4") // Light teal for user messages
	ColorAssistant   = lipgloss.Color("#FDA4AF") // Light rose for mentor messages
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber for warnings
	ColorInfo        = lipgloss.Color("#2DD4BF") // Teal for info
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green for success
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// Sidebar styles
var (
	SidebarItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected())).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].Text)).
				Bold(true).
				Padding(0, 1)

	SidebarTimeStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Chat styles
var (
	ChatUserStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
				Foreground(ColorAssistant).
				Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	ChatErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Italic(true)

	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)

	ReadOnlyBannerStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Italic(true).
				Padding(0, 1)

	CharCounterStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)
)

// Welcome view styles
var (
	WelcomeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	WelcomeSubtitleStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	SuggestionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorText).
			Padding(0, 1)

	SuggestionSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Foreground(ColorPrimary).
				Bold(true).
				Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Status styles
var (
	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Dashboard styles
var (
	StatCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	StatValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)
