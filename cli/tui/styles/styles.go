package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	// Textarea
	MinTextareaHeight = 3
	MaxTextareaHeight = 8
	DefaultWidth      = 80

	// Viewport
	MinViewportHeight = 1

	// Conversation list
	ListWidth    = 30
	ListMinWidth = 16

	// Layout
	NavHeight          = 1
	HelpHeight         = 1
	StatusHeight       = 1
	MessagePaddingLeft = 2
	InputPaddingLeft   = 1

	// Truncation
	TruncateSuffix       = "…"
	TruncateSuffixLength = 1
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#06B6D4") // Cyan
	AccentColor    = lipgloss.Color("#F59E0B") // Amber
	SuccessColor   = lipgloss.Color("#10B981") // Green
	ErrorColor     = lipgloss.Color("#EF4444") // Red
	MutedColor     = lipgloss.Color("#6B7280") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light gray
	DimTextColor   = lipgloss.Color("#9CA3AF") // Dim gray
	BorderColor    = lipgloss.Color("#4B5563")
	DividerColor   = lipgloss.Color("#374151")
)

// Navigation bar
var (
	NavStyle = lipgloss.NewStyle().
			Background(PrimaryColor).
			Foreground(TextColor)

	AppTitleStyle = lipgloss.NewStyle().
			Inherit(NavStyle).
			Bold(true).
			Padding(0, 1)

	NavItemStyle = lipgloss.NewStyle().
			Inherit(NavStyle).
			Foreground(DimTextColor).
			Padding(0, 1)

	NavActiveItemStyle = lipgloss.NewStyle().
				Inherit(NavStyle).
				Foreground(TextColor).
				Bold(true).
				Underline(true).
				Padding(0, 1)

	LocaleStyle = lipgloss.NewStyle().
			Inherit(NavStyle).
			Foreground(AccentColor).
			Padding(0, 1)
)

// Messages.
var (
	messageStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	UserMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(PrimaryColor).
				MarginLeft(10)

	AIMessageStyle = lipgloss.NewStyle().
			Inherit(messageStyle).
			BorderForeground(SecondaryColor).
			MarginRight(10)

	SystemStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			PaddingLeft(MessagePaddingLeft)

	DimTextStyle = lipgloss.NewStyle().
			Foreground(DimTextColor)
)

// Parse result
var (
	ResultLabelStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)
)

// Conversation list
var (
	ListStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	ListFocusedStyle = lipgloss.NewStyle().
				Inherit(ListStyle).
				BorderForeground(PrimaryColor)

	ListTitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(DimTextColor)

	ListSelectedItemStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	ListCursorStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	ConfirmStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)
)

// Error
var (
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)
)

// Input area
var (
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			PaddingLeft(InputPaddingLeft)

	InputFocusedStyle = lipgloss.NewStyle().
				Inherit(InputStyle).
				BorderForeground(PrimaryColor)

	InputDisabledStyle = lipgloss.NewStyle().
				Inherit(InputStyle).
				BorderForeground(DividerColor).
				Foreground(MutedColor)
)

// Spinner
var (
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor)
)

// Help text
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	ModelStyle = lipgloss.NewStyle().
			Foreground(AccentColor)
)

// MessageHorizontalFrameSize returns the horizontal frame size of AI messages.
func MessageHorizontalFrameSize() int {
	return AIMessageStyle.GetHorizontalFrameSize()
}

// Input returns the input style for the given focus and enablement.
func Input(focused, enabled bool) lipgloss.Style {
	switch {
	case !enabled:
		return InputDisabledStyle
	case focused:
		return InputFocusedStyle
	default:
		return InputStyle
	}
}

// Truncate truncates a string to the specified number of runes with a suffix.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen || maxLen <= TruncateSuffixLength {
		return s
	}
	return string(runes[:maxLen-TruncateSuffixLength]) + TruncateSuffix
}
