package models

import (
	"testing"
)

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		name  string
		kinds string
		want  string
	}{
		{"empty kinds", "", "Attraction"},
		{"whitespace kinds", "  ", "Attraction"},
		{"no known keyword", "foods,shops", "Attraction"},
		{"single keyword", "museums,interesting_places", "Museum"},
		{"natural beats later tags", "natural,park,nature,wildlife", "Natural"},
		{"priority not position", "historic,cultural,monument", "Cultural"},
		{"priority not position natural last", "sport,historic,natural", "Natural"},
		{"substring inside tag", "historic_architecture", "Architecture"},
		{"religion", "religion,churches", "Religious"},
		{"tourist facilities", "tourist_facilities,banks", "Tourist Facility"},
		{"explicit other", "other", "Attraction"},
		{"tags with spaces", " sport , foods", "Sports"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyKinds(tt.kinds)
			if got.Label != tt.want {
				t.Errorf("ClassifyKinds(%q) = %q, want %q", tt.kinds, got.Label, tt.want)
			}
		})
	}
}

func TestTierForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  ScoreTier
	}{
		{100, TierHigh},
		{80, TierHigh},
		{79.99, TierMedium},
		{60, TierMedium},
		{59.9, TierLow},
		{0, TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := TierForScore(tt.score); got != tt.want {
				t.Errorf("TierForScore(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestDestination_DistanceLabel(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{1500, "1.5 km"},
		{999, "1.0 km"},
		{0, "0.0 km"},
		{25000, "25.0 km"},
		{8549, "8.5 km"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			d := Destination{Distance: tt.meters}
			if got := d.DistanceLabel(); got != tt.want {
				t.Errorf("DistanceLabel() for %v m = %q, want %q", tt.meters, got, tt.want)
			}
		})
	}
}

func TestDestination_ScoreLabel(t *testing.T) {
	d := Destination{Score: 84.6}
	if got := d.ScoreLabel(); got != "Match Score: 85%" {
		t.Errorf("ScoreLabel() = %q, want 'Match Score: 85%%'", got)
	}
}
