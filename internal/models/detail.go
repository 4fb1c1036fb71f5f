package models

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxExtractLength caps the description shown in the detail view, in characters
	MaxExtractLength = 500
	// MaxDetailCategories caps the category tags listed in the detail view
	MaxDetailCategories = 5
	// PlaceholderImageURL is shown when a destination has no usable image
	PlaceholderImageURL = "https://via.placeholder.com/800x400?text=No+Image+Available"
)

// DestinationDetail is the extended record for a single destination.
// Every field beyond the embedded Destination is optional.
type DestinationDetail struct {
	Destination
	ImageURL     string
	Extract      string
	City         string
	State        string
	ReferenceURL string // e.g. the Wikipedia article
}

// TruncateExtract caps text at MaxExtractLength characters and appends "..."
// only when something was cut.
func TruncateExtract(text string) string {
	if utf8.RuneCountInString(text) <= MaxExtractLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:MaxExtractLength]) + "..."
}

// TruncatedExtract returns the extract as displayed
func (d DestinationDetail) TruncatedExtract() string {
	return TruncateExtract(d.Extract)
}

// LocationLine joins city and state, empty when neither is known
func (d DestinationDetail) LocationLine() string {
	parts := make([]string, 0, 2)
	if c := strings.TrimSpace(d.City); c != "" {
		parts = append(parts, c)
	}
	if s := strings.TrimSpace(d.State); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// CategoryLine lists the first few kinds with underscores shown as spaces
func (d DestinationDetail) CategoryLine() string {
	if strings.TrimSpace(d.Kinds) == "" {
		return ""
	}
	tags := strings.Split(strings.ReplaceAll(d.Kinds, "_", " "), ",")
	if len(tags) > MaxDetailCategories {
		tags = tags[:MaxDetailCategories]
	}
	return strings.Join(tags, ", ")
}

// HeroImage returns the image to show, falling back to the placeholder
func (d DestinationDetail) HeroImage() string {
	if strings.TrimSpace(d.ImageURL) == "" {
		return PlaceholderImageURL
	}
	return d.ImageURL
}
