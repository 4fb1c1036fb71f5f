package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/ngmaloney/wandersoul/internal/models"
	"github.com/ngmaloney/wandersoul/internal/preferences"
)

// formField identifies a focusable element of the personality form
type formField int

const (
	fieldCrowd formField = iota
	fieldActivity
	fieldDistance
	fieldNature
	fieldCulture
	fieldBudget
	fieldLatitude
	fieldLongitude
	fieldLocation
	fieldSubmit
	fieldCount
)

// radio options per group, in display order
var (
	crowdOptions    = optionValues(models.Crowds)
	activityOptions = optionValues(models.Activities)
	distanceOptions = optionValues(models.Distances)
)

func optionValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// preferenceForm is the editable personality questionnaire.
// Radio indexes are -1 until the user picks an option.
type preferenceForm struct {
	crowd    int
	activity int
	distance int
	nature   bool
	culture  bool
	budget   bool

	latitude  textinput.Model
	longitude textinput.Model
	location  textinput.Model

	focus formField
}

func newPreferenceForm(defaults preferences.Form) preferenceForm {
	lat := textinput.New()
	lat.Placeholder = "10.5276"
	lat.CharLimit = 12
	lat.Width = 12
	lat.SetValue(defaults.Latitude)

	lon := textinput.New()
	lon.Placeholder = "76.2144"
	lon.CharLimit = 12
	lon.Width = 12
	lon.SetValue(defaults.Longitude)

	loc := textinput.New()
	loc.Placeholder = "Place, city or zipcode (e.g. Thrissur, Kerala)..."
	loc.CharLimit = 100
	loc.Width = 48

	return preferenceForm{
		crowd:     indexOf(crowdOptions, defaults.Crowd),
		activity:  indexOf(activityOptions, defaults.Activity),
		distance:  indexOf(distanceOptions, defaults.Distance),
		nature:    defaults.Nature,
		culture:   defaults.Culture,
		budget:    defaults.Budget,
		latitude:  lat,
		longitude: lon,
		location:  loc,
		focus:     fieldCrowd,
	}
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}

func optionAt(options []string, i int) string {
	if i < 0 || i >= len(options) {
		return ""
	}
	return options[i]
}

// values returns the raw form state for validation
func (f preferenceForm) values() preferences.Form {
	return preferences.Form{
		Crowd:     optionAt(crowdOptions, f.crowd),
		Activity:  optionAt(activityOptions, f.activity),
		Distance:  optionAt(distanceOptions, f.distance),
		Nature:    f.nature,
		Culture:   f.culture,
		Budget:    f.budget,
		Latitude:  f.latitude.Value(),
		Longitude: f.longitude.Value(),
	}
}

// editingText reports whether keystrokes belong to a text input
func (f preferenceForm) editingText() bool {
	switch f.focus {
	case fieldLatitude, fieldLongitude, fieldLocation:
		return true
	}
	return false
}

func (f *preferenceForm) setFocus(field formField) {
	f.focus = (field + fieldCount) % fieldCount
	f.latitude.Blur()
	f.longitude.Blur()
	f.location.Blur()
	switch f.focus {
	case fieldLatitude:
		f.latitude.Focus()
	case fieldLongitude:
		f.longitude.Focus()
	case fieldLocation:
		f.location.Focus()
	}
}

func (f *preferenceForm) next() { f.setFocus(f.focus + 1) }
func (f *preferenceForm) prev() { f.setFocus(f.focus - 1) }

// radio returns the selection and option count of a radio field
func (f *preferenceForm) radio(field formField) (*int, int) {
	switch field {
	case fieldCrowd:
		return &f.crowd, len(crowdOptions)
	case fieldActivity:
		return &f.activity, len(activityOptions)
	case fieldDistance:
		return &f.distance, len(distanceOptions)
	}
	return nil, 0
}

func (f *preferenceForm) checkbox(field formField) *bool {
	switch field {
	case fieldNature:
		return &f.nature
	case fieldCulture:
		return &f.culture
	case fieldBudget:
		return &f.budget
	}
	return nil
}

// move shifts the focused radio selection by delta, wrapping around.
// An unselected group picks its first or last option.
func (f *preferenceForm) move(delta int) {
	sel, n := f.radio(f.focus)
	if sel == nil {
		return
	}
	if *sel < 0 {
		if delta > 0 {
			*sel = 0
		} else {
			*sel = n - 1
		}
		return
	}
	*sel = (*sel + delta + n) % n
}

// toggle flips the focused checkbox, or advances the focused radio group
func (f *preferenceForm) toggle() {
	if b := f.checkbox(f.focus); b != nil {
		*b = !*b
		return
	}
	f.move(1)
}

// setCoordinates fills the coordinate fields with a resolved location
func (f *preferenceForm) setCoordinates(lat, lon float64) {
	f.latitude.SetValue(preferences.FormatCoordinate(lat))
	f.longitude.SetValue(preferences.FormatCoordinate(lon))
}

// updateInput passes a message to the focused text input
func (f *preferenceForm) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldLatitude:
		f.latitude, cmd = f.latitude.Update(msg)
	case fieldLongitude:
		f.longitude, cmd = f.longitude.Update(msg)
	case fieldLocation:
		f.location, cmd = f.location.Update(msg)
	}
	return cmd
}

// zone ids of the form's clickable elements
func optionZone(field formField, i int) string { return fmt.Sprintf("form-opt-%d-%d", field, i) }
func fieldZone(field formField) string         { return fmt.Sprintf("form-field-%d", field) }

const (
	zoneSubmit = "form-submit"
	zoneLocate = "form-locate"
)

// click applies a left click to whichever form element it hit.
// It reports whether the click submitted the form or asked for a lookup.
func (f *preferenceForm) click(zones *zone.Manager, msg tea.MouseMsg) (submit, locate bool) {
	for _, field := range []formField{fieldCrowd, fieldActivity, fieldDistance} {
		sel, n := f.radio(field)
		for i := 0; i < n; i++ {
			if zones.Get(optionZone(field, i)).InBounds(msg) {
				*sel = i
				f.setFocus(field)
				return false, false
			}
		}
	}
	for _, field := range []formField{fieldNature, fieldCulture, fieldBudget, fieldLatitude, fieldLongitude, fieldLocation} {
		if zones.Get(fieldZone(field)).InBounds(msg) {
			f.setFocus(field)
			if b := f.checkbox(field); b != nil {
				*b = !*b
			}
			return false, false
		}
	}
	if zones.Get(zoneLocate).InBounds(msg) {
		f.setFocus(fieldLocation)
		return false, true
	}
	if zones.Get(zoneSubmit).InBounds(msg) {
		f.setFocus(fieldSubmit)
		return true, false
	}
	return false, false
}

func (f preferenceForm) label(field formField, text string) string {
	if f.focus == field {
		return focusedGroupLabelStyle.Render(text)
	}
	return groupLabelStyle.Render(text)
}

func (f preferenceForm) radioRow(zones *zone.Manager, field formField, title string, options []string, selected int) string {
	parts := []string{f.label(field, title)}
	for i, o := range options {
		mark := "( )"
		style := optionStyle
		if i == selected {
			mark = "(•)"
			style = selectedOptionStyle
		}
		parts = append(parts, zones.Mark(optionZone(field, i), style.Render(mark+" "+models.PreferenceLabel(o))))
	}
	return strings.Join(parts, "  ")
}

func (f preferenceForm) checkboxRow(zones *zone.Manager, field formField, text string, checked bool) string {
	mark := "[ ]"
	style := optionStyle
	if checked {
		mark = "[x]"
		style = selectedOptionStyle
	}
	box := style.Render(mark)
	if f.focus == field {
		box = focusedGroupLabelStyle.Render(mark)
	}
	return zones.Mark(fieldZone(field), box+" "+style.Render(text))
}

// view renders the form inside its box
func (f preferenceForm) view(zones *zone.Manager) string {
	var sections []string

	sections = append(sections, titleStyle.Render("🧭 Discover Your Travel Personality"))
	sections = append(sections, subtitleStyle.Render("Tell us how you like to travel and we'll find places that match."))
	sections = append(sections, "")

	sections = append(sections, f.radioRow(zones, fieldCrowd, "👥 Crowd", crowdOptions, f.crowd))
	sections = append(sections, f.radioRow(zones, fieldActivity, "⚡ Activity", activityOptions, f.activity))
	sections = append(sections, f.radioRow(zones, fieldDistance, "📍 Distance", distanceOptions, f.distance))
	sections = append(sections, "")

	sections = append(sections, strings.Join([]string{
		f.checkboxRow(zones, fieldNature, "🌿 Nature Lover", f.nature),
		f.checkboxRow(zones, fieldCulture, "🏛️ Culture Enthusiast", f.culture),
		f.checkboxRow(zones, fieldBudget, "💰 Budget Conscious", f.budget),
	}, "   "))
	sections = append(sections, "")

	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
		f.label(fieldLatitude, "Latitude "), " ",
		zones.Mark(fieldZone(fieldLatitude), f.latitude.View()), "  ",
		f.label(fieldLongitude, "Longitude "), " ",
		zones.Mark(fieldZone(fieldLongitude), f.longitude.View()),
	))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
		f.label(fieldLocation, "📌 Find location"), " ",
		zones.Mark(fieldZone(fieldLocation), f.location.View()), " ",
		zones.Mark(zoneLocate, buttonStyle.Render("Locate")),
	))
	sections = append(sections, "")

	submit := buttonStyle
	if f.focus == fieldSubmit {
		submit = activeButtonStyle
	}
	sections = append(sections, zones.Mark(zoneSubmit, submit.Render("🔍 Find Recommendations")))

	return formBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
