package models

import "fmt"

// Crowd is the preferred crowd level at a destination
type Crowd string

const (
	CrowdQuiet    Crowd = "quiet"
	CrowdModerate Crowd = "moderate"
	CrowdLively   Crowd = "lively"
)

// Activity is the preferred activity level on a trip
type Activity string

const (
	ActivityRelaxed     Activity = "relaxed"
	ActivityBalanced    Activity = "balanced"
	ActivityAdventurous Activity = "adventurous"
)

// Distance is how far the traveller is willing to go
type Distance string

const (
	DistanceNearby Distance = "nearby"
	DistanceFar    Distance = "far"
)

// Crowds, Activities and Distances list the options in display order
var (
	Crowds     = []Crowd{CrowdQuiet, CrowdModerate, CrowdLively}
	Activities = []Activity{ActivityRelaxed, ActivityBalanced, ActivityAdventurous}
	Distances  = []Distance{DistanceNearby, DistanceFar}
)

// PreferenceProfile is the personality query sent to the recommendation backend.
// It is built fresh for every request and never stored.
type PreferenceProfile struct {
	Crowd     Crowd    `json:"crowd"`
	Activity  Activity `json:"activity"`
	Distance  Distance `json:"distance"`
	Nature    bool     `json:"nature"`
	Culture   bool     `json:"culture"`
	Budget    bool     `json:"budget"`
	Latitude  float64  `json:"lat"`
	Longitude float64  `json:"lon"`
}

// ParseCrowd validates a crowd option
func ParseCrowd(s string) (Crowd, error) {
	for _, c := range Crowds {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown crowd preference %q", s)
}

// ParseActivity validates an activity option
func ParseActivity(s string) (Activity, error) {
	for _, a := range Activities {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown activity level %q", s)
}

// ParseDistance validates a distance option
func ParseDistance(s string) (Distance, error) {
	for _, d := range Distances {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown distance preference %q", s)
}

// preferenceLabels maps raw option values to display text.
// Unknown values are shown verbatim.
var preferenceLabels = map[string]string{
	"quiet":       "Quiet & Peaceful",
	"moderate":    "Moderate",
	"lively":      "Lively & Bustling",
	"relaxed":     "Relaxed & Chill",
	"balanced":    "Balanced",
	"adventurous": "Adventurous",
	"nearby":      "Nearby",
	"far":         "Far Away",
}

// PreferenceLabel returns the display text for an option value
func PreferenceLabel(value string) string {
	if label, ok := preferenceLabels[value]; ok {
		return label
	}
	return value
}

func (c Crowd) Label() string    { return PreferenceLabel(string(c)) }
func (a Activity) Label() string { return PreferenceLabel(string(a)) }
func (d Distance) Label() string { return PreferenceLabel(string(d)) }

// Badge is one entry of the personality summary shown above the results
type Badge struct {
	Icon string
	Text string
}

// Badges returns the personality summary for a profile.
// The three categorical preferences are always present; the flags only when set.
func (p PreferenceProfile) Badges() []Badge {
	badges := []Badge{
		{Icon: "👥", Text: p.Crowd.Label()},
		{Icon: "⚡", Text: p.Activity.Label()},
		{Icon: "📍", Text: p.Distance.Label()},
	}
	if p.Nature {
		badges = append(badges, Badge{Icon: "🌿", Text: "Nature Lover"})
	}
	if p.Culture {
		badges = append(badges, Badge{Icon: "🏛️", Text: "Culture Enthusiast"})
	}
	if p.Budget {
		badges = append(badges, Badge{Icon: "💰", Text: "Budget Conscious"})
	}
	return badges
}
