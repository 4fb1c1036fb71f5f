package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/wandersoul/internal/geocoding"
	"github.com/ngmaloney/wandersoul/internal/models"
	"github.com/ngmaloney/wandersoul/internal/planner"
)

// fakeClient records calls and answers from canned data
type fakeClient struct {
	mu sync.Mutex

	recommendations *planner.RecommendationResult
	recommendErr    error
	profiles        []models.PreferenceProfile

	details     map[string]*planner.DetailResult
	detailsErr  error
	detailCalls []string

	saveErr error
	saved   []planner.TripRequest

	trips    []models.SavedTrip
	tripsErr error
}

func (f *fakeClient) FetchRecommendations(ctx context.Context, profile models.PreferenceProfile) (*planner.RecommendationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles = append(f.profiles, profile)
	if f.recommendErr != nil {
		return nil, f.recommendErr
	}
	return f.recommendations, nil
}

func (f *fakeClient) FetchDetails(ctx context.Context, xid string) (*planner.DetailResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls = append(f.detailCalls, xid)
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	if d, ok := f.details[xid]; ok {
		return d, nil
	}
	return nil, &planner.LogicalError{Op: "details", Status: 404, Reason: "not found"}
}

func (f *fakeClient) SaveTrip(ctx context.Context, trip planner.TripRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, trip)
	return f.saveErr
}

func (f *fakeClient) ListTrips(ctx context.Context) ([]models.SavedTrip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.trips, f.tripsErr
}

// fakeOpener records opened links, failing when err is set
type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) Open(url string) error {
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, url)
	return nil
}

// fakeGeocoder answers every query with the same location
type fakeGeocoder struct {
	location *geocoding.Location
	err      error
	queries  []string
}

func (g *fakeGeocoder) Geocode(ctx context.Context, query string) (*geocoding.Location, error) {
	g.queries = append(g.queries, query)
	if g.err != nil {
		return nil, g.err
	}
	return g.location, nil
}

var errUnreachable = &planner.TransportError{Op: "request", Err: errors.New("connection refused")}

func keralaDestinations() []models.Destination {
	return []models.Destination{
		{XID: "N1", Name: "Athirappilly Falls", Kinds: "natural,waterfalls", Lat: 10.2851, Lon: 76.5698, Score: 92, Distance: 1500},
		{XID: "N2", Name: "St. Mary's Church", Kinds: "religion,churches", Lat: 10.5167, Lon: 76.2167, Score: 71, Distance: 3200},
		{XID: "N3", Name: "Vadakkunnathan Temple", Kinds: "religion,hindu_temples,architecture", Lat: 10.5246, Lon: 76.2144, Score: 55, Distance: 800},
	}
}

func testProfile() models.PreferenceProfile {
	return models.PreferenceProfile{
		Crowd:     models.CrowdQuiet,
		Activity:  models.ActivityBalanced,
		Distance:  models.DistanceNearby,
		Nature:    true,
		Latitude:  10.5276,
		Longitude: 76.2144,
	}
}

func newTestModel(t *testing.T, client *fakeClient) Model {
	t.Helper()
	m := NewModel(Options{
		Client:           client,
		Opener:           &fakeOpener{},
		DefaultLatitude:  10.5276,
		DefaultLongitude: 76.2144,
		NotificationTTL:  time.Millisecond,
	})
	m.scrollDelay = time.Millisecond
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

// withResults applies a recommendation result as query seq
func withResults(t *testing.T, m Model, destinations []models.Destination) Model {
	t.Helper()
	seq := m.session.BeginQuery()
	result := &planner.RecommendationResult{Destinations: destinations, Profile: testProfile()}
	updated, _ := m.Update(recommendationsMsg{seq: seq, profile: testProfile(), result: result})
	return updated.(Model)
}

// fillForm picks an option in every radio group
func fillForm(m Model) Model {
	m.form.crowd = 0
	m.form.activity = 1
	m.form.distance = 0
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m, cmd
}

// collect runs a command and flattens batches into their messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// run executes cmd once and feeds its messages back into the model.
// Follow-up commands are dropped, so notifications stay on screen.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func notificationTexts(m Model) []string {
	var out []string
	for _, n := range m.notices.Active() {
		out = append(out, n.Message)
	}
	return out
}

func hasNotification(m Model, text string) bool {
	for _, msg := range notificationTexts(m) {
		if msg == text {
			return true
		}
	}
	return false
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
