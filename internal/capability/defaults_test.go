package capability

import "testing"

func TestDefaultsFor_TotalOverFamilies(t *testing.T) {
	for _, f := range Families() {
		d := DefaultsFor(f)
		for _, c := range All() {
			// Get must be defined for every capability on every family
			_ = d.Get(c)
		}
		if _, ok := platformDefaults[f]; !ok {
			t.Errorf("family %s has no defaults entry", f)
		}
	}
}

func TestDefaultsFor_FixedFamilyFacts(t *testing.T) {
	tests := []struct {
		family                      Family
		touch, hover, haptics       bool
		screenReader, assistiveTouch bool
	}{
		{FamilyHandheld, true, false, true, false, true},
		{FamilyWearable, true, false, true, false, false},
		{FamilyDesktop, false, true, false, false, false},
		{FamilyLivingRoom, false, false, false, false, false},
		{FamilySpatial, false, true, false, true, false},
		{FamilyUnknown, false, false, false, false, false},
	}

	for _, test := range tests {
		d := DefaultsFor(test.family)
		if d.Touch != test.touch {
			t.Errorf("%s: touch = %v, expected %v", test.family, d.Touch, test.touch)
		}
		if d.Hover != test.hover {
			t.Errorf("%s: hover = %v, expected %v", test.family, d.Hover, test.hover)
		}
		if d.Haptics != test.haptics {
			t.Errorf("%s: haptics = %v, expected %v", test.family, d.Haptics, test.haptics)
		}
		if d.ScreenReader != test.screenReader {
			t.Errorf("%s: screen reader = %v, expected %v", test.family, d.ScreenReader, test.screenReader)
		}
		if d.AssistiveTouch != test.assistiveTouch {
			t.Errorf("%s: assistive touch = %v, expected %v", test.family, d.AssistiveTouch, test.assistiveTouch)
		}
		if d.SwitchControl {
			t.Errorf("%s: switch control should default to false", test.family)
		}
	}
}

func TestDefaultsGet_MatchesFields(t *testing.T) {
	d := Defaults{Touch: true, Hover: true, ScreenReader: true}

	tests := []struct {
		capability Capability
		expected   bool
	}{
		{Touch, true},
		{Hover, true},
		{Haptics, false},
		{ScreenReader, true},
		{SwitchControl, false},
		{AssistiveTouch, false},
		{Capability("bogus"), false},
	}

	for _, test := range tests {
		if got := d.Get(test.capability); got != test.expected {
			t.Errorf("Get(%s) = %v, expected %v", test.capability, got, test.expected)
		}
	}
}
