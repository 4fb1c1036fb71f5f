package notify

import (
	"testing"
	"time"
)

func TestPushStacksNewestLast(t *testing.T) {
	c := NewCenter(time.Second)

	first := c.Push("Location obtained successfully!", Success)
	second := c.Push("Failed to save trip.", Error)

	active := c.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(active))
	}
	if active[0].ID != first.ID || active[1].ID != second.ID {
		t.Errorf("notifications out of order: %+v", active)
	}
	if first.ID == second.ID {
		t.Error("expected distinct ids")
	}
	if active[1].Severity != Error {
		t.Errorf("expected error severity, got %v", active[1].Severity)
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	c := NewCenter(time.Second)
	n := c.Push("Trip saved successfully! ❤️", Success)
	other := c.Push("still here", Info)

	if !c.Dismiss(n.ID) {
		t.Error("first dismiss should remove the notification")
	}
	if c.Dismiss(n.ID) {
		t.Error("second dismiss should be a no-op")
	}
	if c.Dismiss("unknown") {
		t.Error("unknown id should be a no-op")
	}

	active := c.Active()
	if len(active) != 1 || active[0].ID != other.ID {
		t.Errorf("expected only the other notification to remain, got %+v", active)
	}
}

func TestActiveReturnsCopy(t *testing.T) {
	c := NewCenter(time.Second)
	c.Push("one", Info)

	active := c.Active()
	active[0].Message = "changed"

	if c.Active()[0].Message != "one" {
		t.Error("Active should not expose internal state")
	}
}

func TestNewCenterDefaultTTL(t *testing.T) {
	if got := NewCenter(0).TTL(); got != DefaultTTL {
		t.Errorf("TTL() = %v, want %v", got, DefaultTTL)
	}
	if got := NewCenter(5 * time.Second).TTL(); got != 5*time.Second {
		t.Errorf("TTL() = %v, want 5s", got)
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{Info: "info", Success: "success", Error: "error"}
	for sev, want := range tests {
		if got := sev.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", sev, got, want)
		}
	}
}
