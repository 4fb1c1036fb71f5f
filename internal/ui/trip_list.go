package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ngmaloney/wandersoul/internal/models"
)

const (
	emptyTripsTitle = "No saved trips yet!"
	emptyTripsHint  = "Start exploring and save your favorite destinations."
	tripsErrorTitle = "Couldn't load your trips."
	staleTripsNote  = "Showing trips from the last successful load."
)

// tripItem wraps a SavedTrip for use in a list
type tripItem struct {
	trip models.SavedTrip
}

// FilterValue implements list.Item
func (t tripItem) FilterValue() string {
	return t.trip.Name
}

// Title implements list.DefaultItem
func (t tripItem) Title() string {
	return "❤️ " + t.trip.Name
}

// Description implements list.DefaultItem
func (t tripItem) Description() string {
	parts := []string{}
	if t.trip.Category != "" {
		parts = append(parts, t.trip.Category)
	}
	saved := "Saved on " + t.trip.SavedOn()
	if !t.trip.CreatedAt.IsZero() {
		saved += fmt.Sprintf(" (%s)", humanize.Time(t.trip.CreatedAt))
	}
	parts = append(parts, saved)
	if notes := strings.TrimSpace(t.trip.Notes); notes != "" {
		parts = append(parts, notes)
	}
	return strings.Join(parts, " • ")
}

var viewOnMapKey = key.NewBinding(
	key.WithKeys("enter", "v"),
	key.WithHelp("enter", "🗺️ view on map"),
)

var backKey = key.NewBinding(
	key.WithKeys("esc"),
	key.WithHelp("esc", "back"),
)

// createTripList creates a list.Model from saved trips
func createTripList(trips []models.SavedTrip, width, height int) list.Model {
	items := make([]list.Item, len(trips))
	for i, trip := range trips {
		items[i] = tripItem{trip: trip}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "❤️ My Saved Trips"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{viewOnMapKey, backKey}
	}

	return l
}

// selectedTrip returns the highlighted trip
func (m Model) selectedTrip() (models.SavedTrip, bool) {
	item, ok := m.tripList.SelectedItem().(tripItem)
	if !ok {
		return models.SavedTrip{}, false
	}
	return item.trip, true
}

func (m Model) updateTrips(msg tea.KeyMsg) (Model, tea.Cmd) {
	filtering := m.tripList.FilterState() == list.Filtering
	clearing := m.tripList.FilterState() == list.FilterApplied && key.Matches(msg, backKey)
	if filtering || clearing {
		var cmd tea.Cmd
		m.tripList, cmd = m.tripList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, backKey):
		m.state = m.previousState
		return m, nil
	case key.Matches(msg, viewOnMapKey):
		if trip, ok := m.selectedTrip(); ok {
			return m, openLink(m.opener, trip.MapURL())
		}
		return m, nil
	case msg.String() == "r":
		return m, m.loadTrips()
	}

	var cmd tea.Cmd
	m.tripList, cmd = m.tripList.Update(msg)
	return m, cmd
}

func (m Model) viewTrips() string {
	if !m.tripsLoaded {
		return titleStyle.Render("❤️ My Saved Trips") + "\n\n" + mutedStyle.Render("Loading your trips...")
	}
	if m.tripsErr != nil {
		if len(m.tripList.Items()) > 0 {
			l := m.tripList
			l.SetHeight(l.Height() - 1)
			return lipgloss.JoinVertical(lipgloss.Left,
				l.View(),
				italicStyle.Render(staleTripsNote+" Press r to retry."),
			)
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("❤️ My Saved Trips"),
			"",
			italicStyle.Render(tripsErrorTitle),
			helpStyle.Render("r: retry • esc: back • q: quit"),
		)
	}
	if len(m.tripList.Items()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("❤️ My Saved Trips"),
			"",
			italicStyle.Render(emptyTripsTitle),
			mutedStyle.Render(emptyTripsHint),
			helpStyle.Render("esc: back • q: quit"),
		)
	}
	return m.tripList.View()
}
