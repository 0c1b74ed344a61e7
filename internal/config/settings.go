package config

import (
	"fyne.io/fyne/v2"

	"github.com/adaptkit/adaptkit/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyDensity           = "layout_density"
	KeyReduceMotion      = "reduce_motion"
	KeyHapticsDisabled   = "haptics_disabled"
	KeyEmptyStateMessage = "empty_state_message"
	KeyCaptureDir        = "capture_directory"
)

// Default values
const (
	DefaultDensity         = model.DensityBalanced
	DefaultReduceMotion    = false
	DefaultHapticsDisabled = false
)

// Settings manages user presentation preferences persisted through the
// Fyne preferences store
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDensity returns the configured layout density
func (s *Settings) GetDensity() model.Density {
	value := s.app.Preferences().String(KeyDensity)
	if value == "" {
		s.SetDensity(DefaultDensity)
		return DefaultDensity
	}
	return model.Density(value).Normalize()
}

// SetDensity sets the layout density
func (s *Settings) SetDensity(d model.Density) {
	s.app.Preferences().SetString(KeyDensity, string(d.Normalize()))
}

// GetDensityOptions returns the selectable density values
func (s *Settings) GetDensityOptions() []model.Density {
	return []model.Density{model.DensityCompact, model.DensityBalanced, model.DensitySpacious}
}

// GetReduceMotion returns whether the user asked for reduced motion
func (s *Settings) GetReduceMotion() bool {
	return s.app.Preferences().BoolWithFallback(KeyReduceMotion, DefaultReduceMotion)
}

// SetReduceMotion sets the reduced motion preference
func (s *Settings) SetReduceMotion(v bool) {
	s.app.Preferences().SetBool(KeyReduceMotion, v)
}

// GetHapticsDisabled returns whether the user opted out of haptics
func (s *Settings) GetHapticsDisabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyHapticsDisabled, DefaultHapticsDisabled)
}

// SetHapticsDisabled sets the haptics opt-out
func (s *Settings) SetHapticsDisabled(v bool) {
	s.app.Preferences().SetBool(KeyHapticsDisabled, v)
}

// GetEmptyStateMessage returns the custom empty-state text, empty when
// the default should be used
func (s *Settings) GetEmptyStateMessage() string {
	return s.app.Preferences().String(KeyEmptyStateMessage)
}

// SetEmptyStateMessage sets the custom empty-state text
func (s *Settings) SetEmptyStateMessage(msg string) {
	s.app.Preferences().SetString(KeyEmptyStateMessage, msg)
}

// GetCaptureDirectory returns the configured capture directory, empty
// when the platform default should be used
func (s *Settings) GetCaptureDirectory() string {
	return s.app.Preferences().String(KeyCaptureDir)
}

// SetCaptureDirectory sets the capture directory
func (s *Settings) SetCaptureDirectory(dir string) {
	s.app.Preferences().SetString(KeyCaptureDir, dir)
}

// BuildPreferences assembles the stored settings into the preference
// block a content descriptor carries
func (s *Settings) BuildPreferences() model.Preferences {
	return model.Preferences{
		Density:           s.GetDensity(),
		ReduceMotion:      s.GetReduceMotion(),
		HapticsDisabled:   s.GetHapticsDisabled(),
		EmptyStateMessage: s.GetEmptyStateMessage(),
	}
}
