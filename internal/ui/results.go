package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/wandersoul/internal/models"
)

const (
	cardWidth     = 34
	mapHeight     = 16
	maxMapWidth   = 110
	resultsHeader = "✨ Your Travel Personality"
	emptyResults  = "No destinations found. Try adjusting your preferences."
)

// destinationCard is one rendered recommendation. Its actions are bound to
// its own destination when the result set is rendered.
type destinationCard struct {
	destination models.Destination
	detailsZone string
	saveZone    string
	onDetails   func(m *Model) tea.Cmd
	onSave      func(m *Model) tea.Cmd
}

// buildCards binds one card per destination, in result order
func buildCards(seq uint64, destinations []models.Destination) []destinationCard {
	cards := make([]destinationCard, 0, len(destinations))
	for i, d := range destinations {
		cards = append(cards, destinationCard{
			destination: d,
			detailsZone: fmt.Sprintf("card-%d-%d-details", seq, i),
			saveZone:    fmt.Sprintf("card-%d-%d-save", seq, i),
			onDetails:   func(m *Model) tea.Cmd { return m.viewDetails(d.XID) },
			onSave:      func(m *Model) tea.Cmd { return m.saveTrip(d) },
		})
	}
	return cards
}

func (m Model) renderBadges() string {
	profile, ok := m.session.Profile()
	if !ok {
		return ""
	}
	var badges []string
	for _, b := range profile.Badges() {
		badges = append(badges, badgeStyle.Render(b.Icon+" "+b.Text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

func (m Model) renderCard(i int, c destinationCard) string {
	d := c.destination
	cat := d.Category()

	details := buttonStyle.Render("View Details")
	save := buttonStyle.Render("♥ Save")
	if i == m.cardFocus && !m.mapFocus {
		details = activeButtonStyle.Render("View Details")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(d.Name),
		mutedStyle.Render(cat.Icon+" "+cat.Label),
		scoreStyle(d.Tier()).Render(d.ScoreLabel()),
		mutedStyle.Render("📍 "+d.DistanceLabel()+" away"),
		"",
		m.zones.Mark(c.detailsZone, details)+" "+m.zones.Mark(c.saveZone, save),
	)

	if i == m.cardFocus && !m.mapFocus {
		return focusedCardStyle.Render(body)
	}
	return cardStyle.Render(body)
}

// renderCardGrid lays cards out in as many columns as the width allows
func (m Model) renderCardGrid() string {
	if len(m.cards) == 0 {
		return italicStyle.Render(emptyResults)
	}

	cols := (m.contentWidth()) / (cardWidth + 4)
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(m.cards); start += cols {
		end := start + cols
		if end > len(m.cards) {
			end = len(m.cards)
		}
		var row []string
		for i := start; i < end; i++ {
			row = append(row, m.renderCard(i, m.cards[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// resultsContent renders the scrollable results page and the line the map starts on
func (m Model) resultsContent() (string, int) {
	var sections []string

	sections = append(sections, titleStyle.Render(resultsHeader))
	sections = append(sections, m.renderBadges())
	sections = append(sections, sectionHeaderStyle.Render(fmt.Sprintf("🏝️  Recommended Destinations (%d)", len(m.cards))))
	sections = append(sections, m.renderCardGrid())

	top := lipgloss.JoinVertical(lipgloss.Left, sections...)
	mapLine := strings.Count(top, "\n") + 1

	return lipgloss.JoinVertical(lipgloss.Left, top, m.renderMapPane()), mapLine
}

// contentWidth is the usable width inside the results viewport
func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width - 2
}

// syncViewport re-renders the results page into the viewport
func (m *Model) syncViewport() {
	content, mapLine := m.resultsContent()
	m.viewport.SetContent(content)
	m.mapLine = mapLine
}

// focusCard moves the card focus by delta, wrapping around
func (m *Model) focusCard(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.cardFocus = (m.cardFocus + delta + len(m.cards)) % len(m.cards)
}
