package models

import (
	"fmt"
	"math"
	"strings"
)

// Destination is one recommended place as returned by the recommendation backend
type Destination struct {
	XID      string  `json:"xid"`
	Name     string  `json:"name"`
	Kinds    string  `json:"kinds"`    // comma-separated category tags
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Score    float64 `json:"score"`    // personality match, 0-100
	Distance float64 `json:"distance"` // meters from the user
}

// Category is a display category derived from a destination's kinds
type Category struct {
	Keyword string
	Label   string
	Icon    string
}

// DefaultCategory is used when no keyword matches
var DefaultCategory = Category{Keyword: "other", Label: "Attraction", Icon: "📍"}

// categoryPriority is checked in order; the first keyword found in any tag wins
// regardless of where that tag appears in the kinds string.
var categoryPriority = []Category{
	{Keyword: "natural", Label: "Natural", Icon: "🌿"},
	{Keyword: "cultural", Label: "Cultural", Icon: "🏛️"},
	{Keyword: "religion", Label: "Religious", Icon: "⛪"},
	{Keyword: "architecture", Label: "Architecture", Icon: "🏛️"},
	{Keyword: "historic", Label: "Historic", Icon: "📜"},
	{Keyword: "museums", Label: "Museum", Icon: "🖼️"},
	{Keyword: "sport", Label: "Sports", Icon: "⚽"},
	{Keyword: "tourist_facilities", Label: "Tourist Facility", Icon: "🏨"},
	{Keyword: "interesting_places", Label: "Interesting Place", Icon: "⭐"},
	DefaultCategory,
}

// ClassifyKinds maps a kinds string to its display category
func ClassifyKinds(kinds string) Category {
	if strings.TrimSpace(kinds) == "" {
		return DefaultCategory
	}

	tags := strings.Split(kinds, ",")
	for _, cat := range categoryPriority {
		for _, tag := range tags {
			if strings.Contains(strings.TrimSpace(tag), cat.Keyword) {
				return cat
			}
		}
	}

	return DefaultCategory
}

// Category returns the display category of the destination
func (d Destination) Category() Category {
	return ClassifyKinds(d.Kinds)
}

// ScoreTier buckets a match score for colouring
type ScoreTier int

const (
	TierLow ScoreTier = iota
	TierMedium
	TierHigh
)

func (t ScoreTier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// TierForScore returns the tier for a score; 80 and 60 belong to the higher tier
func TierForScore(score float64) ScoreTier {
	switch {
	case score >= 80:
		return TierHigh
	case score >= 60:
		return TierMedium
	default:
		return TierLow
	}
}

// Tier returns the score tier of the destination
func (d Destination) Tier() ScoreTier {
	return TierForScore(d.Score)
}

// FormatDistance renders meters as kilometers with one decimal
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}

// DistanceLabel returns the distance from the user, e.g. "1.5 km"
func (d Destination) DistanceLabel() string {
	return FormatDistance(d.Distance)
}

// RoundedScore returns the score rounded to a whole percentage
func (d Destination) RoundedScore() int {
	return int(math.Round(d.Score))
}

// ScoreLabel returns the card badge text, e.g. "Match Score: 92%"
func (d Destination) ScoreLabel() string {
	return fmt.Sprintf("Match Score: %d%%", d.RoundedScore())
}
