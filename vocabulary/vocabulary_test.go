package vocabulary

import (
	"testing"

	"screenplaydoc/common"
)

func TestDefaultEnvironmentWords(t *testing.T) {
	v := Default()

	cases := []struct {
		text string
		want common.Environment
	}{
		{"INT.", common.EnvironmentInt},
		{"ext.", common.EnvironmentExt},
		{"INT./EXT.", common.EnvironmentCombo},
		{"i./e.", common.EnvironmentCombo},
	}
	for _, c := range cases {
		got, ok := v.Environment(c.text)
		if !ok {
			t.Fatalf("Environment(%q): no match", c.text)
		}
		if got != c.want {
			t.Fatalf("Environment(%q) = %v, want %v", c.text, got, c.want)
		}
	}

	if _, ok := v.Environment("HOUSE"); ok {
		t.Fatalf("Environment(%q) unexpectedly matched", "HOUSE")
	}
}

func TestDefaultTimeOfDayWords(t *testing.T) {
	v := Default()
	if tod, ok := v.TimeOfDay("day"); !ok || tod != common.TimeOfDayDay {
		t.Fatalf("TimeOfDay(day) = %v, %v", tod, ok)
	}
	if _, ok := v.TimeOfDay("TUESDAY"); ok {
		t.Fatalf("TimeOfDay(TUESDAY) unexpectedly matched")
	}
}

func TestRevisionMarkerOverride(t *testing.T) {
	v := Default().WithRevisionMarker("#")
	if v.RevisionMarker() != "#" {
		t.Fatalf("RevisionMarker() = %q, want %q", v.RevisionMarker(), "#")
	}
	if v.IsRevisionMarker("*") {
		t.Fatalf("IsRevisionMarker(*) should be false after override")
	}
	if !v.IsRevisionMarker("#") {
		t.Fatalf("IsRevisionMarker(#) should be true after override")
	}
}

func TestMoreContinued(t *testing.T) {
	v := Default()
	for _, text := range []string{"(MORE)", "(CONTINUED)", "(CONT'D)"} {
		if !v.IsMoreContinued(text) {
			t.Fatalf("IsMoreContinued(%q) = false, want true", text)
		}
	}
	if v.IsMoreContinued("CONTINUE WALKING") {
		t.Fatalf("IsMoreContinued should require the configured callout tokens")
	}
}

func TestWithEnvironmentWordsReplacesOnlyThatBucket(t *testing.T) {
	v := Default().WithEnvironmentWords(common.EnvironmentInt, "INTERIOR")
	if _, ok := v.Environment("INT."); ok {
		t.Fatalf("old INT. mapping should be gone after override")
	}
	if got, ok := v.Environment("INTERIOR"); !ok || got != common.EnvironmentInt {
		t.Fatalf("new INTERIOR mapping missing: %v %v", got, ok)
	}
	if _, ok := v.Environment("EXT."); !ok {
		t.Fatalf("unrelated EXT. bucket should be untouched")
	}
}
