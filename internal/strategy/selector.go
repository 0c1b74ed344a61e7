package strategy

import (
	"github.com/adaptkit/adaptkit/internal/capability"
	"github.com/adaptkit/adaptkit/internal/model"
)

// interactionPriority fixes the primary interaction order per purpose.
// First supported entry wins; InteractionBasic terminates every list.
var interactionPriority = map[model.Purpose][]model.InteractionStrategy{
	model.PurposeCapture:   {model.InteractionTap, model.InteractionPointer, model.InteractionFocus, model.InteractionBasic},
	model.PurposeSelection: {model.InteractionTap, model.InteractionPointer, model.InteractionFocus, model.InteractionBasic},
	model.PurposeDisplay:   {model.InteractionPointer, model.InteractionTap, model.InteractionFocus, model.InteractionBasic},
	model.PurposeBrowse:    {model.InteractionPointer, model.InteractionTap, model.InteractionFocus, model.InteractionBasic},
}

// expansionPriority fixes the primary expansion order per purpose
var expansionPriority = map[model.Purpose][]model.ExpansionStrategy{
	model.PurposeCapture:   {model.ExpansionTap, model.ExpansionLongPress, model.ExpansionHover, model.ExpansionFocus, model.ExpansionInline},
	model.PurposeSelection: {model.ExpansionLongPress, model.ExpansionHover, model.ExpansionTap, model.ExpansionFocus, model.ExpansionInline},
	model.PurposeDisplay:   {model.ExpansionHover, model.ExpansionTap, model.ExpansionFocus, model.ExpansionInline},
	model.PurposeBrowse:    {model.ExpansionHover, model.ExpansionLongPress, model.ExpansionTap, model.ExpansionFocus, model.ExpansionInline},
}

// Select computes the strategy decision for one presentation request.
// Pure and total: unknown purposes fall back to browse ordering and the
// supported sets always contain the universal fallback.
func Select(snap capability.Snapshot, desc model.ContentDescriptor) model.StrategyDecision {
	purpose := desc.Purpose
	if _, ok := interactionPriority[purpose]; !ok {
		purpose = model.PurposeBrowse
	}

	interactions := supportedInteractions(snap)
	expansions := supportedExpansions(snap)

	return model.StrategyDecision{
		Interaction:           pickInteraction(interactionPriority[purpose], interactions),
		Expansion:             pickExpansion(expansionPriority[purpose], expansions),
		Capture:               captureStrategy(snap, purpose),
		Display:               displayStrategy(desc),
		SupportedInteractions: interactions,
		SupportedExpansions:   expansions,
		HapticConfirm:         snap.Haptics && !desc.Preferences.HapticsDisabled,
	}
}

// supportedInteractions builds the capability-gated interaction set in
// declaration order, fallback last
func supportedInteractions(snap capability.Snapshot) []model.InteractionStrategy {
	set := make([]model.InteractionStrategy, 0, 4)
	if snap.Touch {
		set = append(set, model.InteractionTap)
	}
	if snap.Hover {
		set = append(set, model.InteractionPointer)
	}
	if snap.Family == capability.FamilyLivingRoom {
		set = append(set, model.InteractionFocus)
	}
	return append(set, model.InteractionBasic)
}

// supportedExpansions builds the capability-gated expansion set in
// declaration order, fallback last
func supportedExpansions(snap capability.Snapshot) []model.ExpansionStrategy {
	set := make([]model.ExpansionStrategy, 0, 5)
	if snap.Hover {
		set = append(set, model.ExpansionHover)
	}
	if snap.Touch && snap.Haptics {
		set = append(set, model.ExpansionLongPress)
	}
	if snap.Touch {
		set = append(set, model.ExpansionTap)
	}
	if snap.Family == capability.FamilyLivingRoom {
		set = append(set, model.ExpansionFocus)
	}
	return append(set, model.ExpansionInline)
}

func pickInteraction(priority []model.InteractionStrategy, supported []model.InteractionStrategy) model.InteractionStrategy {
	for _, p := range priority {
		for _, s := range supported {
			if p == s {
				return p
			}
		}
	}
	return model.InteractionBasic
}

func pickExpansion(priority []model.ExpansionStrategy, supported []model.ExpansionStrategy) model.ExpansionStrategy {
	for _, p := range priority {
		for _, s := range supported {
			if p == s {
				return p
			}
		}
	}
	return model.ExpansionInline
}

// captureStrategy is camera-first when a camera-equivalent exists,
// library otherwise; none for purposes that do not acquire content
func captureStrategy(snap capability.Snapshot, purpose model.Purpose) model.CaptureStrategy {
	if purpose != model.PurposeCapture {
		return model.CaptureNone
	}
	if snap.Family.HasCameraEquivalent() {
		return model.CaptureCamera
	}
	return model.CaptureLibrary
}

// displayStrategy arranges items by purpose and count
func displayStrategy(desc model.ContentDescriptor) model.DisplayStrategy {
	switch desc.Purpose {
	case model.PurposeCapture:
		return model.DisplaySingle
	case model.PurposeSelection:
		return model.DisplayList
	case model.PurposeDisplay:
		if desc.ItemCount <= 1 {
			return model.DisplaySingle
		}
		if desc.Type == model.ContentMedia {
			return model.DisplayCarousel
		}
		return model.DisplayGrid
	}
	return model.DisplayGrid
}
