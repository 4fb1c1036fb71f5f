package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/wandersoul/internal/models"
	"github.com/ngmaloney/wandersoul/internal/notify"
)

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#E67E22") // Sunset orange
	colorSecondary = lipgloss.Color("#16A085") // Lagoon green
	colorAccent    = lipgloss.Color("#F1C40F") // Sand yellow
	colorDanger    = lipgloss.Color("#E74C3C") // Red
	colorInfo      = lipgloss.Color("#3498DB") // Blue
	colorSuccess   = lipgloss.Color("#2ECC71") // Green
	colorMuted     = lipgloss.Color("#6C757D") // Gray
	colorBorder    = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Italic(true)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)

	// Form styles
	groupLabelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	focusedGroupLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorSecondary).
				Bold(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorMuted).
			Padding(0, 1)

	activeButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(colorAccent).
				Bold(true).
				Padding(0, 1)

	// Badge style for the personality summary
	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorSecondary).
			Padding(0, 1).
			MarginRight(1)

	// Card styles
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(cardWidth)

	focusedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1).
				Width(cardWidth)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	// Match score tiers
	scoreHighStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	scoreMediumStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	scoreLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8C42")).
			Bold(true)

	// Modal styles
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	weatherBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorInfo).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2).
			MarginTop(1)

	linkStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			Underline(true)

	// Map
	mapBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	focusedMapBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorPrimary)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	// Notifications
	notificationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Padding(0, 2).
				MarginTop(1)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0, 0, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	italicStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// scoreStyle colours a match score by tier
func scoreStyle(tier models.ScoreTier) lipgloss.Style {
	switch tier {
	case models.TierHigh:
		return scoreHighStyle
	case models.TierMedium:
		return scoreMediumStyle
	default:
		return scoreLowStyle
	}
}

// notificationColor follows the severity of a notification
func notificationColor(sev notify.Severity) lipgloss.Color {
	switch sev {
	case notify.Success:
		return colorSuccess
	case notify.Error:
		return colorDanger
	default:
		return colorInfo
	}
}
