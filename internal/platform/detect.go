package platform

import (
	"os"
	"runtime"

	"fyne.io/fyne/v2"

	"github.com/adaptkit/adaptkit/internal/capability"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSIOS     = "ios"
)

// DetectFamily maps the running host to a platform family. Prefers the
// Fyne device answer when an app is running, falls back to GOOS, and
// degrades to FamilyUnknown rather than failing.
func DetectFamily() capability.Family {
	if fyne.CurrentApp() != nil && fyne.CurrentDevice() != nil {
		if fyne.CurrentDevice().IsMobile() {
			return capability.FamilyHandheld
		}
		return capability.FamilyDesktop
	}

	switch runtime.GOOS {
	case OSAndroid, OSIOS:
		return capability.FamilyHandheld
	case OSDarwin, OSWindows, OSLinux:
		if isAndroidEnvironment() {
			return capability.FamilyHandheld
		}
		return capability.FamilyDesktop
	}
	return capability.FamilyUnknown
}

// isAndroidEnvironment catches Android hosts where GOOS reads linux
func isAndroidEnvironment() bool {
	return os.Getenv("ANDROID_DATA") != "" || os.Getenv("ANDROID_ROOT") != ""
}
