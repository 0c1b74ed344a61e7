package capability

// Defaults is one fixed record of per-family capability values, used
// while running under test instrumentation when no override is set
type Defaults struct {
	Touch          bool
	Hover          bool
	Haptics        bool
	ScreenReader   bool
	SwitchControl  bool
	AssistiveTouch bool
}

// Get returns the default value for a single capability
func (d Defaults) Get(c Capability) bool {
	switch c {
	case Touch:
		return d.Touch
	case Hover:
		return d.Hover
	case Haptics:
		return d.Haptics
	case ScreenReader:
		return d.ScreenReader
	case SwitchControl:
		return d.SwitchControl
	case AssistiveTouch:
		return d.AssistiveTouch
	}
	return false
}

// platformDefaults encodes fixed product facts per family. Changing any
// entry is a deliberate product decision, not a bug fix.
var platformDefaults = map[Family]Defaults{
	FamilyHandheld: {
		Touch:          true,
		Haptics:        true,
		AssistiveTouch: true,
	},
	FamilyWearable: {
		Touch:   true,
		Haptics: true,
	},
	FamilyDesktop: {
		Hover: true,
	},
	FamilyLivingRoom: {},
	FamilySpatial: {
		// Hover via proxy pointing (gaze/hand ray), screen reader ships enabled
		Hover:        true,
		ScreenReader: true,
	},
	FamilyUnknown: {},
}

// DefaultsFor returns the fixed capability defaults for a platform
// family. Total over the closed family set; unrecognized families get
// the all-false record.
func DefaultsFor(f Family) Defaults {
	return platformDefaults[f]
}
