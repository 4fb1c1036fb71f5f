package models

import (
	"testing"
)

func TestParseOptions(t *testing.T) {
	if c, err := ParseCrowd("lively"); err != nil || c != CrowdLively {
		t.Errorf("ParseCrowd(lively) = %v, %v", c, err)
	}
	if _, err := ParseCrowd("packed"); err == nil {
		t.Error("ParseCrowd(packed) expected error")
	}
	if a, err := ParseActivity("balanced"); err != nil || a != ActivityBalanced {
		t.Errorf("ParseActivity(balanced) = %v, %v", a, err)
	}
	if _, err := ParseActivity(""); err == nil {
		t.Error("ParseActivity(\"\") expected error")
	}
	if d, err := ParseDistance("far"); err != nil || d != DistanceFar {
		t.Errorf("ParseDistance(far) = %v, %v", d, err)
	}
	if _, err := ParseDistance("moderate"); err == nil {
		t.Error("ParseDistance(moderate) expected error")
	}
}

func TestPreferenceProfile_Badges(t *testing.T) {
	p := PreferenceProfile{
		Crowd:    CrowdQuiet,
		Activity: ActivityAdventurous,
		Distance: DistanceFar,
		Nature:   true,
		Budget:   true,
	}

	badges := p.Badges()
	want := []string{"Quiet & Peaceful", "Adventurous", "Far Away", "Nature Lover", "Budget Conscious"}

	if len(badges) != len(want) {
		t.Fatalf("Badges() returned %d badges, want %d", len(badges), len(want))
	}
	for i, b := range badges {
		if b.Text != want[i] {
			t.Errorf("badge[%d] = %q, want %q", i, b.Text, want[i])
		}
	}
}

func TestPreferenceLabel_Unknown(t *testing.T) {
	if got := PreferenceLabel("sideways"); got != "sideways" {
		t.Errorf("PreferenceLabel(unknown) = %q, want it verbatim", got)
	}
}
