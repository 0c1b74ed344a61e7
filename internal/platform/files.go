package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"

	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// Fallback Linux file managers when xdg-open is unavailable
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// EnsureDir creates the directory if it does not exist
func EnsureDir(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// CapturesDir returns the directory where captured content is stored
func CapturesDir() (string, error) {
	if runtime.GOOS == OSAndroid || isAndroidEnvironment() {
		// External storage so captures show up in the system gallery
		return "/sdcard/Pictures", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Pictures"), nil
}

// RevealInFileManager opens the system file manager with the file
// highlighted where the platform supports selection
func RevealInFileManager(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return revealLinux(absPath)
	case OSAndroid:
		return revealAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// revealLinux opens the parent directory; file selection is not
// standardized across Linux file managers
func revealLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}
	return fmt.Errorf("no suitable file manager found")
}

// revealAndroid opens the containing directory through an intent,
// falling back to the documents UI
func revealAndroid(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", "file://"+dir).Run(); err == nil {
		return nil
	}
	if err := exec.Command("am", "start", "-a", "android.intent.action.VIEW",
		"-d", "content://com.android.externalstorage.documents/root/primary").Run(); err == nil {
		return nil
	}
	return fmt.Errorf("no suitable file manager found")
}
