package models

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateExtract(t *testing.T) {
	exact := strings.Repeat("a", MaxExtractLength)
	long := strings.Repeat("b", MaxExtractLength+42)
	accented := strings.Repeat("é", MaxExtractLength+1)

	if got := TruncateExtract("short text"); got != "short text" {
		t.Errorf("TruncateExtract(short) = %q, want unchanged", got)
	}

	if got := TruncateExtract(exact); got != exact {
		t.Error("TruncateExtract() should not modify a 500 character extract")
	}

	got := TruncateExtract(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("TruncateExtract(long) should end with ..., got suffix %q", got[len(got)-5:])
	}
	if body := strings.TrimSuffix(got, "..."); len(body) != MaxExtractLength {
		t.Errorf("TruncateExtract(long) kept %d characters, want %d", len(body), MaxExtractLength)
	}

	got = TruncateExtract(accented)
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, "...")); n != MaxExtractLength {
		t.Errorf("TruncateExtract(accented) kept %d runes, want %d", n, MaxExtractLength)
	}
}

func TestDestinationDetail_LocationLine(t *testing.T) {
	tests := []struct {
		name  string
		city  string
		state string
		want  string
	}{
		{"both", "Kochi", "Kerala", "Kochi Kerala"},
		{"city only", "Kochi", "", "Kochi"},
		{"state only", "", "Kerala", "Kerala"},
		{"neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DestinationDetail{City: tt.city, State: tt.state}
			if got := d.LocationLine(); got != tt.want {
				t.Errorf("LocationLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDestinationDetail_CategoryLine(t *testing.T) {
	d := DestinationDetail{Destination: Destination{
		Kinds: "historic,cultural,historic_architecture,other_buildings,interesting_places,museums,tourist_facilities",
	}}

	want := "historic, cultural, historic architecture, other buildings, interesting places"
	if got := d.CategoryLine(); got != want {
		t.Errorf("CategoryLine() = %q, want %q", got, want)
	}

	if got := (DestinationDetail{}).CategoryLine(); got != "" {
		t.Errorf("CategoryLine() with no kinds = %q, want empty", got)
	}
}

func TestDestinationDetail_HeroImage(t *testing.T) {
	if got := (DestinationDetail{}).HeroImage(); got != PlaceholderImageURL {
		t.Errorf("HeroImage() without image = %q, want placeholder", got)
	}

	d := DestinationDetail{ImageURL: "https://example.com/a.jpg"}
	if got := d.HeroImage(); got != "https://example.com/a.jpg" {
		t.Errorf("HeroImage() = %q, want the image url", got)
	}
}
