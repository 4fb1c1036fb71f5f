package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/wandersoul/internal/planner"
)

const (
	zoneModal      = "modal-content"
	zoneModalClose = "modal-close"
	zoneModalImage = "modal-image"
	zoneModalLink  = "modal-link"
	modalMaxWidth  = 80
)

// closeDetail hides the modal; a later detail response reopens it
func (m *Model) closeDetail() {
	m.detail = nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "x":
		m.closeDetail()
	case "o":
		return m, openLink(m.opener, m.detail.Destination.HeroImage())
	case "w":
		if url := m.detail.Destination.ReferenceURL; url != "" {
			return m, openLink(m.opener, url)
		}
	}
	return m, nil
}

// clickDetail handles a left click while the modal is open.
// Clicks outside the modal content close it.
func (m Model) clickDetail(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch {
	case m.zones.Get(zoneModalClose).InBounds(msg):
		m.closeDetail()
	case m.zones.Get(zoneModalImage).InBounds(msg):
		return m, openLink(m.opener, m.detail.Destination.HeroImage())
	case m.zones.Get(zoneModalLink).InBounds(msg):
		return m, openLink(m.opener, m.detail.Destination.ReferenceURL)
	case !m.zones.Get(zoneModal).InBounds(msg):
		m.closeDetail()
	}
	return m, nil
}

func (m Model) modalWidth() int {
	w := m.width - 8
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < 30 {
		w = 30
	}
	return w
}

// renderDetail builds the modal box for the current detail
func (m Model) renderDetail(result *planner.DetailResult) string {
	d := result.Destination
	width := m.modalWidth()
	text := lipgloss.NewStyle().Width(width)

	var sections []string

	sections = append(sections, m.zones.Mark(zoneModalImage, linkStyle.Render("🖼️  "+d.HeroImage())+mutedStyle.Render("  (o to open)")))
	sections = append(sections, "")
	sections = append(sections, titleStyle.Render(d.Name))

	if extract := d.TruncatedExtract(); extract != "" {
		sections = append(sections, sectionHeaderStyle.Render("About"))
		sections = append(sections, text.Render(extract))
	}
	if loc := d.LocationLine(); loc != "" {
		sections = append(sections, "")
		sections = append(sections, "📍 "+loc)
	}
	if cats := d.CategoryLine(); cats != "" {
		sections = append(sections, mutedStyle.Render("Categories: ")+cats)
	}

	if w := result.Weather; w != nil {
		weather := lipgloss.JoinVertical(lipgloss.Left,
			sectionHeaderStyle.UnsetMarginTop().Render("☀️ Current Weather"),
			titleStyle.Render(w.TemperatureLabel())+"  "+w.Description,
			"💧 "+w.HumidityLabel()+"   🌪️ "+w.WindLabel(),
		)
		sections = append(sections, weatherBoxStyle.Render(weather))
	}

	if d.ReferenceURL != "" {
		sections = append(sections, "")
		sections = append(sections, m.zones.Mark(zoneModalLink, linkStyle.Render("📖 Read More on Wikipedia")+mutedStyle.Render("  (w)")))
	}

	sections = append(sections, "")
	sections = append(sections, m.zones.Mark(zoneModalClose, activeButtonStyle.Render("Close"))+mutedStyle.Render("  esc/x"))

	return m.zones.Mark(zoneModal, modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...)))
}

// overlayDetail centres the modal over a blank backdrop of the given height
func (m Model) overlayDetail(height int) string {
	modal := m.renderDetail(m.detail)
	if m.width <= 0 || height <= 0 {
		return modal
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, modal)
}
