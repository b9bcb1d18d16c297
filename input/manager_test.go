package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// recorder captures callback traffic
type recorder struct {
	changes []string
	commits []string
}

func newRecordingManager() (*Manager, *recorder) {
	m := NewManager()
	rec := &recorder{}
	m.OnBufferChange(func(b string) { rec.changes = append(rec.changes, b) })
	m.OnCommit(func(b string) { rec.commits = append(rec.commits, b) })
	return m, rec
}

func typeString(m *Manager, s string) {
	for _, c := range s {
		m.HandleKey(Event{Key: string(c)})
	}
}

func TestDisabledIgnoresKeys(t *testing.T) {
	m, rec := newRecordingManager()

	if m.HandleKey(Event{Key: "k"}) {
		t.Error("disabled manager reported key as handled")
	}
	if m.HandleKey(Event{Key: KeyBackspace}) {
		t.Error("disabled manager handled backspace")
	}
	if m.Buffer() != "" || len(rec.changes) != 0 || len(rec.commits) != 0 {
		t.Errorf("disabled manager mutated state: %q %v %v", m.Buffer(), rec.changes, rec.commits)
	}
}

func TestAppendEmitsChangeThenCommit(t *testing.T) {
	m, rec := newRecordingManager()
	m.Enable()

	order := []string{}
	m.OnBufferChange(func(b string) { order = append(order, "change:"+b) })
	m.OnCommit(func(b string) { order = append(order, "commit:"+b); rec.commits = append(rec.commits, b) })

	typeString(m, "ka")

	want := []string{"change:k", "commit:k", "change:ka", "commit:ka"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestUppercaseLowered(t *testing.T) {
	m, rec := newRecordingManager()
	m.Enable()

	typeString(m, "KA")
	if m.Buffer() != "ka" {
		t.Errorf("buffer = %q, want ka", m.Buffer())
	}
	if rec.commits[len(rec.commits)-1] != "ka" {
		t.Errorf("last commit = %q", rec.commits[len(rec.commits)-1])
	}
}

func TestRejectedCharacters(t *testing.T) {
	m, rec := newRecordingManager()
	m.Enable()

	for _, key := range []string{"1", " ", "!", "'", "-", "漢", "Enter", "Escape", "Tab"} {
		if m.HandleKey(Event{Key: key}) {
			t.Errorf("key %q should be ignored", key)
		}
	}
	if m.Buffer() != "" || len(rec.commits) != 0 {
		t.Errorf("rejected keys changed state: %q %v", m.Buffer(), rec.commits)
	}
}

// TestAllLatinLettersAccepted covers spellings outside the built-in tables
func TestAllLatinLettersAccepted(t *testing.T) {
	m, rec := newRecordingManager()
	m.Enable()

	typeString(m, "lqvx")
	if m.Buffer() != "lqvx" || len(rec.commits) != 4 {
		t.Errorf("buffer = %q commits = %v", m.Buffer(), rec.commits)
	}
}

func TestModifierCombosIgnored(t *testing.T) {
	m, rec := newRecordingManager()
	m.Enable()

	m.HandleKey(Event{Key: "a", Ctrl: true})
	m.HandleKey(Event{Key: "a", Meta: true})
	if m.Buffer() != "" || len(rec.changes) != 0 {
		t.Errorf("modifier combos changed state: %q", m.Buffer())
	}
}

func TestKanaAccepted(t *testing.T) {
	m, rec := newRecordingManager()
	m.Enable()

	m.HandleKey(Event{Key: "か"})
	m.HandleKey(Event{Key: "カ"})
	if m.Buffer() != "かカ" {
		t.Errorf("buffer = %q", m.Buffer())
	}
	if len(rec.commits) != 2 {
		t.Errorf("expected 2 commits, got %d", len(rec.commits))
	}
}

func TestBackspace(t *testing.T) {
	m, rec := newRecordingManager()
	m.Enable()

	typeString(m, "sh")
	commits := len(rec.commits)

	if !m.HandleKey(Event{Key: KeyBackspace}) {
		t.Error("backspace should be handled")
	}
	if m.Buffer() != "s" {
		t.Errorf("buffer = %q, want s", m.Buffer())
	}
	if len(rec.commits) != commits {
		t.Error("backspace must not commit")
	}

	m.HandleKey(Event{Key: KeyBackspace})
	changes := len(rec.changes)
	if !m.HandleKey(Event{Key: KeyBackspace}) {
		t.Error("backspace on empty buffer should still be handled")
	}
	if m.Buffer() != "" {
		t.Errorf("buffer = %q, want empty", m.Buffer())
	}
	if len(rec.changes) != changes+1 {
		t.Error("backspace on empty buffer should still emit a change")
	}
}

func TestBackspaceRemovesWholeKana(t *testing.T) {
	m, _ := newRecordingManager()
	m.Enable()
	m.HandleKey(Event{Key: "か"})
	m.HandleKey(Event{Key: "し"})
	m.HandleKey(Event{Key: KeyBackspace})
	if m.Buffer() != "か" {
		t.Errorf("buffer = %q, want か", m.Buffer())
	}
}

func TestSetBufferAndRefresh(t *testing.T) {
	m, rec := newRecordingManager()

	m.SetBuffer("shi")
	if m.Buffer() != "shi" || rec.changes[len(rec.changes)-1] != "shi" {
		t.Errorf("SetBuffer not reflected: %q %v", m.Buffer(), rec.changes)
	}

	m.Refresh()
	if len(rec.changes) != 2 || rec.changes[1] != "shi" {
		t.Errorf("Refresh did not re-emit: %v", rec.changes)
	}
	if len(rec.commits) != 0 {
		t.Error("SetBuffer/Refresh must not commit")
	}
}

func TestStateTransitions(t *testing.T) {
	m := NewManager()
	if m.Enabled() || m.State() != StateDisabled {
		t.Error("new manager should start disabled")
	}
	m.Enable()
	if !m.Enabled() || m.State().String() != "enabled" {
		t.Error("Enable failed")
	}
	m.Disable()
	if m.Enabled() {
		t.Error("Disable failed")
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{"Rune", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), Event{Key: "k"}},
		{"Kana rune", tcell.NewEventKey(tcell.KeyRune, 'か', tcell.ModNone), Event{Key: "か"}},
		{"Alt rune", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModAlt), Event{Key: "k", Meta: true}},
		{"Backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), Event{Key: KeyBackspace}},
		{"Backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Event{Key: KeyBackspace}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTcell(tt.ev); got != tt.want {
				t.Errorf("FromTcell = %+v, want %+v", got, tt.want)
			}
		})
	}

	enter := FromTcell(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if len([]rune(enter.Key)) < 2 {
		t.Errorf("Enter should map to a multi-character name, got %q", enter.Key)
	}
}
