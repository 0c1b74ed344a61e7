package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/adaptkit/adaptkit/internal/capability"
	"github.com/adaptkit/adaptkit/internal/config"
	"github.com/adaptkit/adaptkit/internal/layout"
	"github.com/adaptkit/adaptkit/internal/model"
	"github.com/adaptkit/adaptkit/internal/platform"
	"github.com/adaptkit/adaptkit/internal/strategy"
	"github.com/adaptkit/adaptkit/internal/uiconfig"
)

// RootUI is the gallery demo shell: it resolves capabilities, runs the
// decision engine for the current purpose and window geometry, and
// renders the result. All adaptation flows through engine decisions;
// the shell itself holds no platform branching.
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings
	logger   *zap.Logger

	family   capability.Family
	resolver *capability.Resolver

	purpose model.Purpose
	items   []*model.ContentItem

	content *fyne.Container
}

// NewRootUI creates and mounts the gallery UI
func NewRootUI(window fyne.Window, app fyne.App, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	family := platform.DetectFamily()
	ui := &RootUI{
		window:   window,
		app:      app,
		settings: config.NewSettings(app),
		logger:   logger,
		family:   family,
		resolver: capability.NewResolver(family, platform.NewDeviceProber()),
		purpose:  model.PurposeBrowse,
		items:    sampleItems(),
		content:  container.NewStack(),
	}

	ui.setupUI()
	return ui
}

// setupUI builds the static chrome and performs the first presentation pass
func (ui *RootUI) setupUI() {
	purposeSelect := widget.NewSelect([]string{
		string(model.PurposeBrowse),
		string(model.PurposeSelection),
		string(model.PurposeDisplay),
		string(model.PurposeCapture),
	}, func(value string) {
		ui.purpose = model.Purpose(value)
		ui.refresh()
	})
	purposeSelect.SetSelected(string(model.PurposeBrowse))

	densitySelect := widget.NewSelect([]string{
		string(model.DensityCompact),
		string(model.DensityBalanced),
		string(model.DensitySpacious),
	}, func(value string) {
		ui.settings.SetDensity(model.Density(value))
		ui.refresh()
	})
	densitySelect.SetSelected(string(ui.settings.GetDensity()))

	toolbar := container.NewHBox(
		widget.NewLabel("Purpose"), purposeSelect,
		widget.NewLabel("Density"), densitySelect,
	)

	ui.window.SetContent(container.NewBorder(toolbar, nil, nil, nil, ui.content))
	ui.refresh()
}

// refresh runs one full resolution and decision pass and re-renders
func (ui *RootUI) refresh() {
	snap := ui.resolver.Resolve()
	desc := ui.describe()

	decision := layout.Decide(snap, desc)
	strategies := strategy.Select(snap, desc)
	perf := uiconfig.BuildPerformanceConfig(snap)

	ui.logger.Debug("presentation pass",
		zap.String("family", snap.Family.String()),
		zap.String("purpose", string(ui.purpose)),
		zap.Int("columns", decision.Columns),
		zap.String("interaction", string(strategies.Interaction)),
		zap.String("expansion", string(strategies.Expansion)),
	)

	ui.content.Objects = []fyne.CanvasObject{ui.render(snap, desc, decision, strategies, perf)}
	ui.content.Refresh()
}

// describe assembles the content descriptor for the current state
func (ui *RootUI) describe() model.ContentDescriptor {
	desc := model.NewContentDescriptor()
	desc.Purpose = ui.purpose
	desc.ItemCount = len(ui.items)
	desc.Preferences = ui.settings.BuildPreferences()

	size := ui.window.Canvas().Size()
	desc.AvailableWidth = size.Width
	desc.AvailableHeight = size.Height
	return desc
}

// render turns the engine's decisions into widgets
func (ui *RootUI) render(snap capability.Snapshot, desc model.ContentDescriptor,
	decision model.LayoutDecision, strategies model.StrategyDecision,
	perf uiconfig.PerformanceConfig) fyne.CanvasObject {

	if strategies.Capture != model.CaptureNone {
		return ui.renderCapture(strategies)
	}
	if len(ui.items) == 0 || !desc.HasSpace() {
		return BuildEmptyState(desc.Preferences)
	}

	visible := ui.items
	if len(visible) > perf.MaxVisibleItems {
		visible = visible[:perf.MaxVisibleItems]
	}

	cards := make([]fyne.CanvasObject, 0, len(visible))
	for _, item := range visible {
		cards = append(cards, NewContentCard(item, strategies, snap.HoverDelay, ui.onActivate, ui.onExpand))
	}
	return BuildGrid(decision, desc.Preferences, cards...)
}

// renderCapture shows the capture surface selected by the engine
func (ui *RootUI) renderCapture(strategies model.StrategyDecision) fyne.CanvasObject {
	var primary *widget.Button
	if strategies.Capture == model.CaptureCamera {
		primary = widget.NewButton(IconCamera+" "+CaptureButtonLabel, ui.onCapture)
	} else {
		primary = widget.NewButton(IconLibrary+" "+LibraryButtonLabel, ui.onCapture)
	}
	primary.Importance = widget.HighImportance

	return container.NewCenter(container.NewVBox(primary))
}

// onCapture stores a new item in the captures directory flow
func (ui *RootUI) onCapture() {
	dir := ui.settings.GetCaptureDirectory()
	if dir == "" {
		var err error
		if dir, err = platform.CapturesDir(); err != nil {
			ui.logger.Warn("captures directory unavailable", zap.Error(err))
			dialog.ShowError(err, ui.window)
			return
		}
	}
	if err := platform.EnsureDir(dir); err != nil {
		ui.logger.Warn("failed to ensure captures directory", zap.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}

	item := model.NewContentItem(fmt.Sprintf("Capture %d", len(ui.items)+1), model.ContentMedia)
	ui.items = append(ui.items, item)
	ui.logger.Info("captured item", zap.String("id", item.ID), zap.String("dir", dir))

	if ui.family == capability.FamilyDesktop {
		ui.offerReveal(dir)
	}

	ui.purpose = model.PurposeBrowse
	ui.refresh()
}

// offerReveal lets pointer environments jump to the captures directory
// in the system file manager
func (ui *RootUI) offerReveal(dir string) {
	dialog.ShowConfirm("Captured", IconFolder+" Show the captures folder?", func(ok bool) {
		if !ok {
			return
		}
		if err := platform.RevealInFileManager(dir); err != nil {
			ui.logger.Warn("failed to reveal captures directory", zap.Error(err))
		}
	}, ui.window)
}

// onActivate handles the primary interaction on an item
func (ui *RootUI) onActivate(item *model.ContentItem) {
	ui.logger.Debug("activated", zap.String("id", item.ID))
}

// onExpand shows item detail via the selected expansion strategy
func (ui *RootUI) onExpand(item *model.ContentItem) {
	detail := item.Title + MiddleDotSeparator + string(item.Type)
	dialog.ShowInformation("Detail", detail, ui.window)
}

// sampleItems seeds the gallery with demo content
func sampleItems() []*model.ContentItem {
	titles := []string{"Harbor at dusk", "Receipt scan", "Team notes", "Mountain trail", "Floor plan", "Birthday"}
	items := make([]*model.ContentItem, 0, len(titles))
	for i, title := range titles {
		contentType := model.ContentMedia
		if i%3 == 1 {
			contentType = model.ContentDocument
		}
		items = append(items, model.NewContentItem(title, contentType))
	}
	return items
}
