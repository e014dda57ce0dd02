package cli

import (
	"github.com/charmbracelet/lipgloss"

	"navkit/internal/config"
)

// Headline - High-emphasis text for section headers
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
)

// Title - Medium-emphasis text for titles and subtitles
var (
	titleMedium = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
)

// Body - Main content text
var (
	bodyLarge = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
)

// Label - Small text for labels, captions, and supplementary content
var (
	labelMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")).Italic(true)
)

// Semantic styles - mapped to Material typography scale
var (
	sectionHeader = headlineLarge.MarginBottom(1)
	commandName   = titleMedium
	mutedText     = labelMedium

	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53935"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
)

// printer renders styled text, or plain text when output is not a terminal
type printer struct {
	styled bool
}

func (p printer) render(style lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}

	return style.Render(text)
}

// title renders the app name, version and description
func (p printer) title() string {
	name := p.render(appNameStyle, config.AppName) + p.render(appVersionStyle, " v"+config.Version)

	return lipgloss.JoinVertical(lipgloss.Left, name, p.render(bodyLarge, config.AppDescription))
}

func (p printer) section(text string) string {
	if !p.styled {
		return "\n" + text
	}

	return sectionHeader.Render(text)
}
