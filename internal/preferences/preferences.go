// Package preferences turns the raw form state into a validated PreferenceProfile
package preferences

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ngmaloney/wandersoul/internal/models"
)

// Form is the raw state of the personality form. Empty option strings mean
// the group has no selection yet.
type Form struct {
	Crowd     string
	Activity  string
	Distance  string
	Nature    bool
	Culture   bool
	Budget    bool
	Latitude  string
	Longitude string
}

// ValidationError lists every problem found in the form
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "incomplete preferences: " + strings.Join(e.Problems, "; ")
}

// Defaults returns a form with no option selected and the given coordinates.
// Nature and culture start checked.
func Defaults(lat, lon float64) Form {
	return Form{
		Nature:    true,
		Culture:   true,
		Latitude:  FormatCoordinate(lat),
		Longitude: FormatCoordinate(lon),
	}
}

// FormatCoordinate renders a coordinate the way the form displays it (4 decimals)
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Collect validates the form and builds the profile sent to the backend.
// It never returns a partially filled profile.
func (f Form) Collect() (models.PreferenceProfile, error) {
	var problems []string
	var profile models.PreferenceProfile

	if f.Crowd == "" {
		problems = append(problems, "choose a crowd preference")
	} else if c, err := models.ParseCrowd(f.Crowd); err != nil {
		problems = append(problems, err.Error())
	} else {
		profile.Crowd = c
	}

	if f.Activity == "" {
		problems = append(problems, "choose an activity level")
	} else if a, err := models.ParseActivity(f.Activity); err != nil {
		problems = append(problems, err.Error())
	} else {
		profile.Activity = a
	}

	if f.Distance == "" {
		problems = append(problems, "choose a distance preference")
	} else if d, err := models.ParseDistance(f.Distance); err != nil {
		problems = append(problems, err.Error())
	} else {
		profile.Distance = d
	}

	lat, err := parseCoordinate(f.Latitude, 90)
	if err != nil {
		problems = append(problems, fmt.Sprintf("latitude %v", err))
	}
	lon, err := parseCoordinate(f.Longitude, 180)
	if err != nil {
		problems = append(problems, fmt.Sprintf("longitude %v", err))
	}

	if len(problems) > 0 {
		return models.PreferenceProfile{}, &ValidationError{Problems: problems}
	}

	profile.Nature = f.Nature
	profile.Culture = f.Culture
	profile.Budget = f.Budget
	profile.Latitude = lat
	profile.Longitude = lon
	return profile, nil
}

func parseCoordinate(s string, limit float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%v is out of range", v)
	}
	return v, nil
}
