package ui

import (
	"strings"
	"testing"
)

func TestFormStartsUnselected(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	if m.state != StatePreferences {
		t.Fatalf("Expected StatePreferences, got %v", m.state)
	}
	if m.form.crowd != -1 || m.form.activity != -1 || m.form.distance != -1 {
		t.Errorf("Expected no radio selected, got %d/%d/%d", m.form.crowd, m.form.activity, m.form.distance)
	}
	if !m.form.nature || !m.form.culture || m.form.budget {
		t.Errorf("Expected nature and culture checked, budget unchecked")
	}
	if got := m.form.latitude.Value(); got != "10.5276" {
		t.Errorf("Expected default latitude 10.5276, got %q", got)
	}
	if got := m.form.longitude.Value(); got != "76.2144" {
		t.Errorf("Expected default longitude 76.2144, got %q", got)
	}
}

func TestFormKeyboardSelection(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	m, _ = press(t, m, "right")
	if m.form.crowd != 0 {
		t.Errorf("Expected first crowd option, got %d", m.form.crowd)
	}
	m, _ = press(t, m, "right", "right", "right")
	if m.form.crowd != 0 {
		t.Errorf("Expected crowd selection to wrap to 0, got %d", m.form.crowd)
	}

	m, _ = press(t, m, "tab", " ")
	if m.form.focus != fieldActivity || m.form.activity != 0 {
		t.Errorf("Expected space to select first activity, got focus %d activity %d", m.form.focus, m.form.activity)
	}

	m, _ = press(t, m, "down", "left")
	if m.form.distance != len(distanceOptions)-1 {
		t.Errorf("Expected left on an empty group to pick the last option, got %d", m.form.distance)
	}

	m, _ = press(t, m, "tab", " ")
	if m.form.focus != fieldNature || m.form.nature {
		t.Errorf("Expected space to clear nature, got focus %d nature %v", m.form.focus, m.form.nature)
	}

	values := m.form.values()
	if values.Crowd != "quiet" || values.Activity != "relaxed" || values.Distance != "far" {
		t.Errorf("Unexpected form values: %+v", values)
	}
}

func TestFormFocusWraps(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	m, _ = press(t, m, "shift+tab")
	if m.form.focus != fieldSubmit {
		t.Errorf("Expected shift+tab from the first field to reach submit, got %d", m.form.focus)
	}
	m, _ = press(t, m, "tab")
	if m.form.focus != fieldCrowd {
		t.Errorf("Expected tab from submit to wrap to crowd, got %d", m.form.focus)
	}
}

func TestTextFieldsReceiveLetters(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.form.setFocus(fieldLocation)

	m, cmd := press(t, m, "t", "q")
	if isQuit(cmd) {
		t.Fatal("Expected q to be typed into the location field, not quit")
	}
	if m.state != StatePreferences {
		t.Errorf("Expected to stay on the form, got %v", m.state)
	}
	if got := m.form.location.Value(); got != "tq" {
		t.Errorf("Expected location %q, got %q", "tq", got)
	}
}

func TestQuitOutsideTextFields(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	_, cmd := press(t, m, "q")
	if !isQuit(cmd) {
		t.Error("Expected q on a radio group to quit")
	}
}

func TestIncompleteFormIsNotSent(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(t, client)

	m, _ = press(t, m, "enter")

	want := "Please complete your preferences: choose a crowd preference, choose an activity level, choose a distance preference."
	if !hasNotification(m, want) {
		t.Errorf("Expected notification %q, got %v", want, notificationTexts(m))
	}
	if len(client.profiles) != 0 {
		t.Errorf("Expected no request, got %d", len(client.profiles))
	}
	if m.session.Pending() {
		t.Error("Expected no query to be issued")
	}
}

func TestInvalidCoordinatesAreReported(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m = fillForm(m)
	m.form.latitude.SetValue("north")

	m, _ = press(t, m, "enter")

	texts := strings.Join(notificationTexts(m), "\n")
	if !strings.Contains(texts, `latitude "north" is not a number`) {
		t.Errorf("Expected a latitude problem, got %q", texts)
	}
}
