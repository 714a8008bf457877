package store

import (
	"testing"

	"github.com/jobtrackr/jobtrackr/internal/matching"
)

func TestPrefsAbsentByDefault(t *testing.T) {
	prefs := NewPrefs(testKV(t))

	if got, ok := prefs.Get(); ok || got != nil {
		t.Fatalf("expected absent preferences, got %+v", got)
	}
}

func TestPrefsRoundtripAndClear(t *testing.T) {
	prefs := NewPrefs(testKV(t))

	want := &matching.Preferences{
		RoleKeywords:    []string{"backend", "golang"},
		ExperienceLevel: "mid",
		MinMatchScore:   60,
	}
	if err := prefs.Set(want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok := prefs.Get()
	if !ok {
		t.Fatalf("expected preferences to exist")
	}
	if len(got.RoleKeywords) != 2 || got.ExperienceLevel != "mid" || got.MinMatchScore != 60 {
		t.Fatalf("unexpected preferences: %+v", got)
	}

	if err := prefs.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := prefs.Get(); ok {
		t.Fatalf("expected preferences to be gone after clear")
	}
}
