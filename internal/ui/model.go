package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/ngmaloney/wandersoul/internal/geocoding"
	"github.com/ngmaloney/wandersoul/internal/mapview"
	"github.com/ngmaloney/wandersoul/internal/models"
	"github.com/ngmaloney/wandersoul/internal/notify"
	"github.com/ngmaloney/wandersoul/internal/planner"
	"github.com/ngmaloney/wandersoul/internal/preferences"
	"github.com/ngmaloney/wandersoul/internal/session"
)

// AppState represents the current state of the application
type AppState int

const (
	StateProvisioning AppState = iota // First-run data downloads
	StatePreferences                  // Personality form
	StateResults                      // Recommendation cards and map
	StateTrips                        // Saved trips list
)

// defaultScrollDelay is how long the results stay at the top before the map is shown
const defaultScrollDelay = 500 * time.Millisecond

// Geocoder resolves a free-text place to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*geocoding.Location, error)
}

// SetupStep is one first-run preparation task. A failed step is reported
// and skipped; the client works without its data.
type SetupStep struct {
	Name string
	Run  func(ctx context.Context) error
}

// Options configures a Model
type Options struct {
	Client           planner.Client
	Geocoder         Geocoder
	Opener           LinkOpener
	Logger           *zap.Logger
	DefaultLatitude  float64
	DefaultLongitude float64
	NotificationTTL  time.Duration
	Setup            []SetupStep
	LoadBasemap      func() (*mapview.Basemap, error)
}

// Model represents the application's state
type Model struct {
	state         AppState
	previousState AppState
	width         int
	height        int

	// Collaborators
	client   planner.Client
	geocoder Geocoder
	opener   LinkOpener
	logger   *zap.Logger

	// Preferences
	form preferenceForm

	// Results
	session     *session.State
	basemap     *mapview.Basemap
	cards       []destinationCard
	cardFocus   int
	mapFocus    bool
	markerFocus int
	mapLine     int
	viewport    viewport.Model
	scrollDelay time.Duration

	// Detail modal, open while non-nil
	detail *planner.DetailResult

	// Trips
	tripList    list.Model
	tripsLoaded bool
	tripsErr    error

	// Feedback
	notices *notify.Center
	loader  loader
	spinner spinner.Model
	zones   *zone.Manager

	// Provisioning
	setup       []SetupStep
	setupIndex  int
	loadBasemap func() (*mapview.Basemap, error)
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	opener := opts.Opener
	if opener == nil {
		opener = BrowserOpener{}
	}

	state := StatePreferences
	if len(opts.Setup) > 0 || opts.LoadBasemap != nil {
		state = StateProvisioning
	}

	vp := viewport.New(80, 20)

	return Model{
		state:         state,
		previousState: StatePreferences,
		client:        opts.Client,
		geocoder:      opts.Geocoder,
		opener:        opener,
		logger:        logger,
		form:          newPreferenceForm(preferences.Defaults(opts.DefaultLatitude, opts.DefaultLongitude)),
		session:       session.New(),
		markerFocus:   -1,
		viewport:      vp,
		scrollDelay:   defaultScrollDelay,
		tripList:      createTripList(nil, 80, 20),
		notices:       notify.NewCenter(opts.NotificationTTL),
		loader:        newLoader(),
		spinner:       s,
		zones:         zone.New(),
		setup:         opts.Setup,
		loadBasemap:   opts.LoadBasemap,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.state == StateProvisioning {
		return tea.Batch(m.spinner.Tick, m.nextSetup())
	}
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if next.state == StateResults {
		next.syncViewport()
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case scopedResult:
		m.loader.end(msg.token)
		return m.update(msg.msg)

	case spinner.TickMsg:
		if !m.loader.busy() && m.state != StateProvisioning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notificationExpiredMsg:
		m.notices.Dismiss(msg.id)
		return m, nil

	case setupStepMsg:
		return m.handleSetupStep(msg)

	case basemapLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("basemap unavailable", zap.Error(msg.err))
		} else {
			m.basemap = msg.basemap
			m.logger.Info("basemap loaded", zap.Int("lines", msg.basemap.Len()))
		}
		m.state = StatePreferences
		return m, textinput.Blink

	case recommendationsMsg:
		return m.handleRecommendations(msg)

	case scrollToMapMsg:
		if m.state == StateResults && msg.seq == m.session.Rendered() {
			m.viewport.SetYOffset(m.mapLine)
		}
		return m, nil

	case detailsMsg:
		if msg.err != nil {
			m.logFailure("details", msg.err, zap.String("xid", msg.xid))
			return m, m.notify(planner.UserMessage(msg.err, "Error loading details: ", "Failed to load destination details."), notify.Error)
		}
		if m.state != StateResults {
			m.logger.Debug("dropping details for inactive results view", zap.String("xid", msg.xid))
			return m, nil
		}
		m.detail = msg.result
		return m, nil

	case tripSavedMsg:
		if msg.err != nil {
			m.logFailure("save trip", msg.err, zap.String("name", msg.name))
			return m, m.notify(planner.UserMessage(msg.err, "Error saving trip: ", "Failed to save trip."), notify.Error)
		}
		return m, m.notify("Trip saved successfully! ❤️", notify.Success)

	case tripsLoadedMsg:
		m.tripsLoaded = true
		m.tripsErr = msg.err
		if msg.err != nil {
			m.logFailure("list trips", msg.err)
			return m, m.notify(planner.UserMessage(msg.err, "Error loading trips: ", "Failed to load trips."), notify.Error)
		}
		m.tripList = createTripList(msg.trips, m.width, m.tripListHeight())
		return m, nil

	case geocodeMsg:
		if msg.err != nil {
			m.logger.Warn("geocoding failed", zap.String("query", msg.query), zap.Error(msg.err))
			return m, m.notify("Unable to find that location. Keeping the current coordinates.", notify.Error)
		}
		m.form.setCoordinates(msg.location.Latitude, msg.location.Longitude)
		return m, m.notify("Location obtained successfully!", notify.Success)

	case linkOpenedMsg:
		switch {
		case msg.err != nil:
			m.logger.Warn("link not opened", zap.String("url", msg.url), zap.Error(msg.err))
			return m, m.notify("Could not open "+msg.url, notify.Error)
		case msg.copied:
			return m, m.notify("Link copied to clipboard: "+msg.url, notify.Info)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass anything else to the focused component
	var cmd tea.Cmd
	switch m.state {
	case StatePreferences:
		cmd = m.form.updateInput(msg)
	case StateTrips:
		m.tripList, cmd = m.tripList.Update(msg)
	}
	return m, cmd
}

// logFailure logs transport failures as errors and backend refusals as info
func (m Model) logFailure(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	var logical *planner.LogicalError
	if errors.As(err, &logical) {
		m.logger.Info("request refused", fields...)
		return
	}
	m.logger.Error("request failed", fields...)
}

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 2
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.tripList.SetSize(m.width, m.tripListHeight())
}

func (m Model) tripListHeight() int {
	h := m.height - 2
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.state == StateProvisioning {
		return m, nil
	}
	if m.detail != nil {
		return m.updateDetail(msg)
	}

	switch m.state {
	case StatePreferences:
		if !m.form.editingText() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "t":
				cmd := m.openTrips()
				return m, cmd
			case "esc":
				if m.session.HasResults() {
					m.state = StateResults
				}
				return m, nil
			}
		}
		return m.updatePreferences(msg)

	case StateResults:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "t":
			cmd := m.openTrips()
			return m, cmd
		}
		if m.mapFocus {
			return m.updateMap(msg)
		}
		return m.updateResults(msg)

	case StateTrips:
		if msg.String() == "q" && m.tripList.FilterState() != list.Filtering {
			return m, tea.Quit
		}
		return m.updateTrips(msg)
	}
	return m, nil
}

func (m Model) updatePreferences(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	case "enter":
		if m.form.focus == fieldLocation {
			cmd := m.geocode()
			return m, cmd
		}
		cmd := m.submit()
		return m, cmd
	}

	if m.form.editingText() {
		cmd := m.form.updateInput(msg)
		return m, cmd
	}

	switch msg.String() {
	case "left", "h":
		m.form.move(-1)
	case "right", "l":
		m.form.move(1)
	case " ":
		m.form.toggle()
	}
	return m, nil
}

func (m Model) updateResults(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "p":
		m.state = StatePreferences
		return m, nil
	case "tab", "right", "l":
		m.focusCard(1)
		return m, nil
	case "shift+tab", "left", "h":
		m.focusCard(-1)
		return m, nil
	case "enter", "d":
		if m.cardFocus < len(m.cards) {
			cmd := m.cards[m.cardFocus].onDetails(&m)
			return m, cmd
		}
		return m, nil
	case "s":
		if m.cardFocus < len(m.cards) {
			cmd := m.cards[m.cardFocus].onSave(&m)
			return m, cmd
		}
		return m, nil
	case "m":
		m.focusMap()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		if m.state == StateResults && m.detail == nil && tea.MouseEvent(msg).IsWheel() {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.detail != nil {
		return m.clickDetail(msg)
	}

	switch m.state {
	case StatePreferences:
		submit, locate := m.form.click(m.zones, msg)
		switch {
		case submit:
			cmd := m.submit()
			return m, cmd
		case locate:
			cmd := m.geocode()
			return m, cmd
		}

	case StateResults:
		for i, c := range m.cards {
			if m.zones.Get(c.detailsZone).InBounds(msg) {
				m.cardFocus = i
				m.mapFocus = false
				cmd := c.onDetails(&m)
				return m, cmd
			}
			if m.zones.Get(c.saveZone).InBounds(msg) {
				m.cardFocus = i
				m.mapFocus = false
				cmd := c.onSave(&m)
				return m, cmd
			}
		}
		if m.zones.Get(zonePopupDetails).InBounds(msg) {
			cmd := m.showSelectedDetails()
			return m, cmd
		}
		m.clickMap(msg)
	}
	return m, nil
}

// request opens a loading scope for fn and starts the spinner if it was idle
func (m *Model) request(label string, fn func(ctx context.Context) tea.Msg, onPanic func(err error) tea.Msg) tea.Cmd {
	wasBusy := m.loader.busy()
	cmd := scoped(m.loader.begin(label), fn, onPanic)
	if wasBusy || m.state == StateProvisioning {
		return cmd
	}
	return tea.Batch(cmd, m.spinner.Tick)
}

// submit validates the form and asks for recommendations
func (m *Model) submit() tea.Cmd {
	profile, err := m.form.values().Collect()
	if err != nil {
		var invalid *preferences.ValidationError
		if errors.As(err, &invalid) {
			return m.notify("Please complete your preferences: "+strings.Join(invalid.Problems, ", ")+".", notify.Error)
		}
		return m.notify(err.Error(), notify.Error)
	}

	seq := m.session.BeginQuery()
	client := m.client
	m.logger.Info("requesting recommendations",
		zap.Uint64("seq", seq),
		zap.String("crowd", string(profile.Crowd)),
		zap.String("activity", string(profile.Activity)),
		zap.String("distance", string(profile.Distance)))

	return m.request("Finding your perfect destinations...",
		func(ctx context.Context) tea.Msg {
			result, err := client.FetchRecommendations(ctx, profile)
			return recommendationsMsg{seq: seq, profile: profile, result: result, err: err}
		},
		func(err error) tea.Msg {
			return recommendationsMsg{seq: seq, profile: profile, err: err}
		})
}

func (m Model) handleRecommendations(msg recommendationsMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.logFailure("recommendations", msg.err, zap.Uint64("seq", msg.seq))
		return m, m.notify(planner.UserMessage(msg.err, "Error getting recommendations: ", "Failed to get recommendations. Please try again."), notify.Error)
	}

	center := mapview.LatLon{Lat: msg.profile.Latitude, Lon: msg.profile.Longitude}
	if !m.session.Apply(msg.seq, msg.result, center, m.basemap) {
		m.logger.Debug("dropping stale recommendations",
			zap.Uint64("seq", msg.seq),
			zap.Uint64("rendered", m.session.Rendered()))
		return m, nil
	}

	m.cards = buildCards(msg.seq, m.session.Destinations())
	m.cardFocus = 0
	m.mapFocus = false
	m.markerFocus = -1

	// The trips list stays up; esc returns to the new results.
	if m.state == StateTrips {
		m.previousState = StateResults
		m.viewport.GotoTop()
		return m, m.notify("New recommendations are ready. Press esc to view them.", notify.Info)
	}

	m.state = StateResults
	m.syncViewport()
	m.viewport.GotoTop()

	seq := msg.seq
	return m, tea.Tick(m.scrollDelay, func(time.Time) tea.Msg {
		return scrollToMapMsg{seq: seq}
	})
}

// viewDetails fetches one destination for the modal
func (m *Model) viewDetails(xid string) tea.Cmd {
	client := m.client
	return m.request("Loading destination details...",
		func(ctx context.Context) tea.Msg {
			result, err := client.FetchDetails(ctx, xid)
			return detailsMsg{xid: xid, result: result, err: err}
		},
		func(err error) tea.Msg {
			return detailsMsg{xid: xid, err: err}
		})
}

// saveTrip stores a destination in the user's trips
func (m *Model) saveTrip(d models.Destination) tea.Cmd {
	client := m.client
	trip := planner.NewTripRequest(d)
	return m.request("Saving trip...",
		func(ctx context.Context) tea.Msg {
			return tripSavedMsg{name: trip.Name, err: client.SaveTrip(ctx, trip)}
		},
		func(err error) tea.Msg {
			return tripSavedMsg{name: trip.Name, err: err}
		})
}

// openTrips switches to the trips list and refreshes it
func (m *Model) openTrips() tea.Cmd {
	if m.state != StateTrips {
		m.previousState = m.state
	}
	m.state = StateTrips
	return m.loadTrips()
}

func (m *Model) loadTrips() tea.Cmd {
	m.tripsLoaded = false
	client := m.client
	return m.request("Loading your trips...",
		func(ctx context.Context) tea.Msg {
			trips, err := client.ListTrips(ctx)
			return tripsLoadedMsg{trips: trips, err: err}
		},
		func(err error) tea.Msg {
			return tripsLoadedMsg{err: err}
		})
}

// geocode resolves the location field into the coordinate fields
func (m *Model) geocode() tea.Cmd {
	query := strings.TrimSpace(m.form.location.Value())
	if query == "" {
		return m.notify("Enter a place, city or zipcode to look up.", notify.Info)
	}
	if m.geocoder == nil {
		return m.notify("Location lookup is not available.", notify.Error)
	}

	geocoder := m.geocoder
	return m.request("Looking up location...",
		func(ctx context.Context) tea.Msg {
			ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			location, err := geocoder.Geocode(ctx, query)
			return geocodeMsg{query: query, location: location, err: err}
		},
		func(err error) tea.Msg {
			return geocodeMsg{query: query, err: err}
		})
}

// nextSetup runs the pending setup step, then loads the basemap
func (m Model) nextSetup() tea.Cmd {
	if m.setupIndex < len(m.setup) {
		index, step := m.setupIndex, m.setup[m.setupIndex]
		return func() tea.Msg {
			return setupStepMsg{index: index, err: step.Run(context.Background())}
		}
	}
	load := m.loadBasemap
	return func() tea.Msg {
		if load == nil {
			return basemapLoadedMsg{basemap: mapview.NewBasemap(nil)}
		}
		basemap, err := load()
		return basemapLoadedMsg{basemap: basemap, err: err}
	}
}

func (m Model) handleSetupStep(msg setupStepMsg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if msg.err != nil && msg.index < len(m.setup) {
		name := m.setup[msg.index].Name
		m.logger.Warn("setup step failed", zap.String("step", name), zap.Error(msg.err))
		cmds = append(cmds, m.notify(fmt.Sprintf("Setup of %s failed; continuing without it.", name), notify.Error))
	}
	m.setupIndex = msg.index + 1
	cmds = append(cmds, m.nextSetup())
	return m, tea.Batch(cmds...)
}

// View renders the current state
func (m Model) View() string {
	status := m.renderStatus()
	notices := m.renderNotifications()

	bodyHeight := m.height - lipgloss.Height(status) - m.notificationHeight()

	var body string
	switch {
	case m.state == StateProvisioning:
		body = m.viewProvisioning()
	case m.detail != nil:
		body = m.overlayDetail(bodyHeight)
	case m.state == StatePreferences:
		body = m.form.view(m.zones)
	case m.state == StateResults:
		vp := m.viewport
		if bodyHeight > 0 {
			vp.Height = bodyHeight
		}
		body = vp.View()
	case m.state == StateTrips:
		body = m.viewTrips()
	}

	parts := []string{body}
	if notices != "" {
		parts = append(parts, notices)
	}
	parts = append(parts, status)

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewProvisioning() string {
	var sections []string
	sections = append(sections, titleStyle.Render("🧭 WanderSoul"))
	sections = append(sections, "")

	if m.setupIndex < len(m.setup) {
		sections = append(sections, fmt.Sprintf("%s %s (%d/%d)",
			m.spinner.View(), m.setup[m.setupIndex].Name, m.setupIndex+1, len(m.setup)))
		sections = append(sections, mutedStyle.Render("This only happens on the first run."))
	} else {
		sections = append(sections, m.spinner.View()+" Loading map data...")
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatus shows the spinner while busy, key help otherwise
func (m Model) renderStatus() string {
	if m.loader.busy() {
		return m.spinner.View() + " " + m.loader.label()
	}

	var help string
	switch {
	case m.state == StateProvisioning:
		return ""
	case m.detail != nil:
		help = "esc/x: close • o: open image • w: wikipedia • ctrl+c: quit"
	case m.state == StatePreferences:
		help = "tab/↑↓: move • ←/→/space: choose • enter: find (locate in the search field) • t: my trips • q: quit"
		if m.session.HasResults() {
			help += " • esc: results"
		}
	case m.state == StateResults && m.mapFocus:
		help = "←/→: markers • enter: details • esc: leave map • q: quit"
	case m.state == StateResults:
		help = "←/→: cards • enter: details • s: save • m: map • ↑/↓: scroll • p: preferences • t: my trips • q: quit"
	case m.state == StateTrips:
		return ""
	}
	return helpStyle.UnsetPadding().Render(help)
}
