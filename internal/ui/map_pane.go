package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/wandersoul/internal/mapview"
)

const (
	zoneMap          = "map-grid"
	zonePopupDetails = "map-popup-details"
)

// mapSize returns the grid size of the map pane
func (m Model) mapSize() (int, int) {
	w := m.contentWidth() - 2
	if w > maxMapWidth {
		w = maxMapWidth
	}
	if w < 20 {
		w = 20
	}
	return w, mapHeight
}

// selectedMarker returns the selected marker of the current map
func (m Model) selectedMarker() (mapview.Marker, bool) {
	mp := m.session.Map()
	if mp == nil {
		return mapview.Marker{}, false
	}
	markers := mp.Markers()
	if m.markerFocus < 0 || m.markerFocus >= len(markers) {
		return mapview.Marker{}, false
	}
	return markers[m.markerFocus], true
}

// focusMap hands the keyboard to the map, selecting the first destination
func (m *Model) focusMap() {
	mp := m.session.Map()
	if mp == nil {
		return
	}
	m.mapFocus = true
	if m.markerFocus < 0 {
		m.markerFocus = 0
		if mp.DestinationMarkers() > 0 {
			m.markerFocus = 1
		}
	}
	m.viewport.SetYOffset(m.mapLine)
}

// cycleMarker moves the marker selection by delta, wrapping around
func (m *Model) cycleMarker(delta int) {
	mp := m.session.Map()
	if mp == nil {
		return
	}
	n := len(mp.Markers())
	if n == 0 {
		return
	}
	m.markerFocus = (m.markerFocus + delta + n) % n
}

// showSelectedDetails opens the detail view of the selected destination marker
func (m *Model) showSelectedDetails() tea.Cmd {
	mk, ok := m.selectedMarker()
	if !ok || mk.Kind != mapview.DestinationMarker {
		return nil
	}
	return m.viewDetails(mk.Destination.XID)
}

func (m Model) updateMap(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "shift+tab":
		m.cycleMarker(-1)
	case "right", "l", "tab":
		m.cycleMarker(1)
	case "enter", "d":
		cmd := m.showSelectedDetails()
		return m, cmd
	case "esc", "m":
		m.mapFocus = false
	}
	return m, nil
}

// clickMap selects the marker under a click on the map grid
func (m *Model) clickMap(msg tea.MouseMsg) bool {
	mp := m.session.Map()
	if mp == nil {
		return false
	}
	col, row := m.zones.Get(zoneMap).Pos(msg)
	if col < 0 || row < 0 {
		return false
	}
	w, h := m.mapSize()
	if i := mp.MarkerAt(col, row, w, h); i >= 0 {
		m.markerFocus = i
		m.mapFocus = true
	}
	return true
}

// renderMapPane draws the map with the popup of the selected marker
func (m Model) renderMapPane() string {
	mp := m.session.Map()
	if mp == nil {
		return ""
	}

	var sections []string
	sections = append(sections, sectionHeaderStyle.Render("🗺️  Destinations Map"))

	w, h := m.mapSize()
	box := mapBoxStyle
	if m.mapFocus {
		box = focusedMapBoxStyle
	}
	sections = append(sections, box.Render(m.zones.Mark(zoneMap, mp.Render(w, h, m.markerFocus))))

	if mk, ok := m.selectedMarker(); ok {
		lines := mk.Popup()
		if mk.Kind == mapview.DestinationMarker {
			lines = append(lines, m.zones.Mark(zonePopupDetails, activeButtonStyle.Render("View Details")))
		}
		sections = append(sections, popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
