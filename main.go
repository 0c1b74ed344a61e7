package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/adaptkit/adaptkit/internal/capability"
	"github.com/adaptkit/adaptkit/internal/config"
	"github.com/adaptkit/adaptkit/internal/logging"
	"github.com/adaptkit/adaptkit/internal/platform"
	"github.com/adaptkit/adaptkit/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.adaptkit.gallery"
	AppName = "AdaptKit Gallery"
)

func main() {
	logger := logging.New("gallery", os.Getenv("ADAPTKIT_VERBOSE") != "")
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting", zap.String("version", version))

	// Create new Fyne app
	galleryApp := app.NewWithID(AppID)

	// Resolve capabilities once for the theme; the root UI re-resolves
	// per presentation pass
	family := platform.DetectFamily()
	snapshot := capability.NewResolver(family, platform.NewDeviceProber()).Resolve()
	settings := config.NewSettings(galleryApp)
	galleryApp.Settings().SetTheme(ui.NewAdaptiveTheme(snapshot, settings.GetDensity()))

	window := galleryApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	ui.NewRootUI(window, galleryApp, logger)

	window.ShowAndRun()
}
