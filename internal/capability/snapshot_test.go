package capability

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshot_ValueEquality(t *testing.T) {
	a := NewResolver(FamilyHandheld, nil).WithOverrides(NewOverrideStore()).WithTestMode(true).Resolve()
	b := NewResolver(FamilyHandheld, nil).WithOverrides(NewOverrideStore()).WithTestMode(true).Resolve()

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("identical resolutions should produce equal snapshots (-a +b):\n%s", diff)
	}

	c := NewResolver(FamilyDesktop, nil).WithOverrides(NewOverrideStore()).WithTestMode(true).Resolve()
	if cmp.Equal(a, c) {
		t.Error("snapshots for different families should differ")
	}
}

func TestSnapshot_GetMatchesFields(t *testing.T) {
	snap := Snapshot{Touch: true, Haptics: true, ScreenReader: true}

	tests := []struct {
		capability Capability
		expected   bool
	}{
		{Touch, true},
		{Hover, false},
		{Haptics, true},
		{ScreenReader, true},
		{SwitchControl, false},
		{AssistiveTouch, false},
		{Capability("bogus"), false},
	}

	for _, test := range tests {
		if got := snap.Get(test.capability); got != test.expected {
			t.Errorf("Get(%s) = %v, expected %v", test.capability, got, test.expected)
		}
	}
}

func TestCapability_Overridable(t *testing.T) {
	tests := []struct {
		capability Capability
		expected   bool
	}{
		{Touch, true},
		{Hover, true},
		{Haptics, true},
		{ScreenReader, false},
		{SwitchControl, false},
		{AssistiveTouch, false},
	}

	for _, test := range tests {
		if got := test.capability.Overridable(); got != test.expected {
			t.Errorf("%s.Overridable() = %v, expected %v", test.capability, got, test.expected)
		}
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		input    string
		expected Family
	}{
		{"handheld", FamilyHandheld},
		{"desktop", FamilyDesktop},
		{"living_room", FamilyLivingRoom},
		{"wearable", FamilyWearable},
		{"spatial", FamilySpatial},
		{"unknown", FamilyUnknown},
		{"toaster", FamilyUnknown},
		{"", FamilyUnknown},
	}

	for _, test := range tests {
		if got := ParseFamily(test.input); got != test.expected {
			t.Errorf("ParseFamily(%q) = %s, expected %s", test.input, got, test.expected)
		}
	}
}
