// adaptkit-inspect resolves a capability snapshot for a platform family
// and runs the layout and strategy engines headlessly, printing the full
// decision report as YAML. Useful for auditing the precedence rules and
// for diffing decisions across families without a display.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/adaptkit/adaptkit/internal/capability"
	"github.com/adaptkit/adaptkit/internal/layout"
	"github.com/adaptkit/adaptkit/internal/logging"
	"github.com/adaptkit/adaptkit/internal/model"
	"github.com/adaptkit/adaptkit/internal/platform"
	"github.com/adaptkit/adaptkit/internal/strategy"
	"github.com/adaptkit/adaptkit/internal/uiconfig"
)

var (
	flagFamily  string
	flagPurpose string
	flagDensity string
	flagType    string
	flagWidth   float32
	flagHeight  float32
	flagCount   int
	flagLive    bool
	flagVerbose bool

	// Three-state capability overrides: "", "on", "off"
	flagTouch   string
	flagHover   string
	flagHaptics string

	logger *zap.Logger
)

// report is the YAML document printed for one inspection
type report struct {
	Snapshot struct {
		Family           string        `yaml:"family"`
		Touch            bool          `yaml:"touch"`
		Hover            bool          `yaml:"hover"`
		Haptics          bool          `yaml:"haptics"`
		ScreenReader     bool          `yaml:"screenReader"`
		SwitchControl    bool          `yaml:"switchControl"`
		AssistiveTouch   bool          `yaml:"assistiveTouch"`
		MinTouchTarget   float32       `yaml:"minTouchTarget"`
		HoverDelay       time.Duration `yaml:"hoverDelay"`
		UsedTestDefaults bool          `yaml:"usedTestDefaults"`
	} `yaml:"snapshot"`
	Layout   model.LayoutDecision         `yaml:"layout"`
	Strategy model.StrategyDecision       `yaml:"strategy"`
	Platform uiconfig.PlatformConfig      `yaml:"platformConfig"`
	Perf     uiconfig.PerformanceConfig   `yaml:"performanceConfig"`
	A11y     uiconfig.AccessibilityConfig `yaml:"accessibilityConfig"`
}

var rootCmd = &cobra.Command{
	Use:   "adaptkit-inspect",
	Short: "Inspect capability resolution and adaptive decisions",
	Long: `adaptkit-inspect runs the capability resolver and the decision
engine for a chosen platform family and content descriptor, then prints
the resolved snapshot, layout decision, strategy decision, and the
derived configuration bundles as YAML.

By default the fixed per-family testing defaults are used so output is
reproducible anywhere; pass --live to consult the actual device.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagFamily, "family", "", "platform family (handheld, desktop, living_room, wearable, spatial); detected when empty")
	rootCmd.Flags().StringVar(&flagPurpose, "purpose", string(model.PurposeBrowse), "presentation purpose (capture, selection, display, browse)")
	rootCmd.Flags().StringVar(&flagDensity, "density", string(model.DensityBalanced), "density preference (compact, balanced, spacious)")
	rootCmd.Flags().StringVar(&flagType, "type", string(model.ContentMedia), "content type (media, document, form, text)")
	rootCmd.Flags().Float32Var(&flagWidth, "width", 1280, "available width in points")
	rootCmd.Flags().Float32Var(&flagHeight, "height", 800, "available height in points")
	rootCmd.Flags().IntVar(&flagCount, "count", 12, "item count")
	rootCmd.Flags().BoolVar(&flagLive, "live", false, "probe the live device instead of the testing defaults")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.Flags().StringVar(&flagTouch, "touch", "", "override touch (on, off)")
	rootCmd.Flags().StringVar(&flagHover, "hover", "", "override hover (on, off)")
	rootCmd.Flags().StringVar(&flagHaptics, "haptics", "", "override haptics (on, off)")
}

func run(cmd *cobra.Command, args []string) error {
	logger = logging.New("inspect", flagVerbose)
	defer logger.Sync() //nolint:errcheck

	family := capability.ParseFamily(flagFamily)
	if flagFamily == "" {
		family = platform.DetectFamily()
	}
	logger.Debug("resolving", zap.String("family", family.String()), zap.Bool("live", flagLive))

	overrides := capability.NewOverrideStore()
	if err := applyOverride(overrides, capability.Touch, flagTouch); err != nil {
		return err
	}
	if err := applyOverride(overrides, capability.Hover, flagHover); err != nil {
		return err
	}
	if err := applyOverride(overrides, capability.Haptics, flagHaptics); err != nil {
		return err
	}

	snap := capability.NewResolver(family, platform.NewDeviceProber()).
		WithOverrides(overrides).
		WithTestMode(!flagLive).
		Resolve()

	desc := model.NewContentDescriptor()
	desc.Purpose = model.Purpose(flagPurpose)
	desc.Type = model.ContentType(flagType)
	desc.ItemCount = flagCount
	desc.AvailableWidth = flagWidth
	desc.AvailableHeight = flagHeight
	desc.Preferences.Density = model.Density(flagDensity).Normalize()

	var r report
	r.Snapshot.Family = snap.Family.String()
	r.Snapshot.Touch = snap.Touch
	r.Snapshot.Hover = snap.Hover
	r.Snapshot.Haptics = snap.Haptics
	r.Snapshot.ScreenReader = snap.ScreenReader
	r.Snapshot.SwitchControl = snap.SwitchControl
	r.Snapshot.AssistiveTouch = snap.AssistiveTouch
	r.Snapshot.MinTouchTarget = snap.MinTouchTarget
	r.Snapshot.HoverDelay = snap.HoverDelay
	r.Snapshot.UsedTestDefaults = snap.UsedTestDefaults
	r.Layout = layout.Decide(snap, desc)
	r.Strategy = strategy.Select(snap, desc)
	r.Platform = uiconfig.BuildPlatformConfig(snap)
	r.Perf = uiconfig.BuildPerformanceConfig(snap)
	r.A11y = uiconfig.BuildAccessibilityConfig(snap, desc.Preferences)

	out, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	cmd.OutOrStdout().Write(out) //nolint:errcheck
	return nil
}

// applyOverride parses a three-state flag into the override store
func applyOverride(store *capability.OverrideStore, c capability.Capability, value string) error {
	switch value {
	case "":
		return nil
	case "on":
		store.Set(c, true)
	case "off":
		store.Set(c, false)
	default:
		return fmt.Errorf("invalid value %q for --%s: use on or off", value, c)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
