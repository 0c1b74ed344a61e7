package platform

import (
	"fyne.io/fyne/v2"

	"github.com/adaptkit/adaptkit/internal/capability"
)

// DeviceProber answers live capability queries through the Fyne device
// API. Fyne exposes no assistive-technology state, so the three
// assistive capabilities probe false on every platform; only the fixed
// defaults or overrides can turn them on.
type DeviceProber struct{}

// NewDeviceProber creates a prober for the current device
func NewDeviceProber() *DeviceProber {
	return &DeviceProber{}
}

// Probe answers one live capability query. Without a running app every
// query answers false, keeping resolution total and safe to call
// speculatively.
func (p *DeviceProber) Probe(c capability.Capability) bool {
	if fyne.CurrentApp() == nil || fyne.CurrentDevice() == nil {
		return false
	}

	mobile := fyne.CurrentDevice().IsMobile()
	switch c {
	case capability.Touch:
		return mobile
	case capability.Hover:
		// Desktop drivers ship a pointer; mobile drivers do not
		return !mobile
	case capability.Haptics:
		return mobile
	}
	return false
}
