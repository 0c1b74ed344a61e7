package capability

// Family categorizes the device environment the app is presenting on.
// Each family carries fixed default capabilities and its own derived
// constant rules.
type Family string

const (
	// FamilyHandheld covers touch-first phones and tablets
	FamilyHandheld Family = "handheld"

	// FamilyDesktop covers pointer-first desktops and laptops
	FamilyDesktop Family = "desktop"

	// FamilyLivingRoom covers remote-controlled TV environments
	FamilyLivingRoom Family = "living_room"

	// FamilyWearable covers watch-class touch devices
	FamilyWearable Family = "wearable"

	// FamilySpatial covers XR headsets with proxy pointing
	FamilySpatial Family = "spatial"

	// FamilyUnknown is the degraded fallback when detection fails.
	// It resolves every capability to false and both constants to zero.
	FamilyUnknown Family = "unknown"
)

// Families returns every platform family in declaration order
func Families() []Family {
	return []Family{FamilyHandheld, FamilyDesktop, FamilyLivingRoom, FamilyWearable, FamilySpatial, FamilyUnknown}
}

// String returns the string representation of the family
func (f Family) String() string {
	return string(f)
}

// TouchFirst returns true for families whose primary input is a finger
// on the display. These always reserve the accessible touch target.
func (f Family) TouchFirst() bool {
	return f == FamilyHandheld || f == FamilyWearable
}

// HasCameraEquivalent returns true when the family ships an on-device
// camera usable for capture flows
func (f Family) HasCameraEquivalent() bool {
	return f == FamilyHandheld || f == FamilyWearable
}

// ParseFamily maps a string to a known family, degrading to
// FamilyUnknown rather than reporting an error
func ParseFamily(s string) Family {
	for _, f := range Families() {
		if s == string(f) {
			return f
		}
	}
	return FamilyUnknown
}
