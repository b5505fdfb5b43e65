package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconBack     = "‹"
	IconForward  = "›"
	IconReload   = "⟳"
	IconError    = "❌"
	IconRecipe   = "🍲"
	IconTag      = "🏷"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	StepCounterFormat  = "%d / %d"
)

// Layout sizing (RecipeRow / lists)
const (
	RowMinWidth  float32 = 320
	RowMinHeight float32 = 64

	ThumbnailSize     float32 = 56
	DetailImageHeight float32 = 180

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Notification panel behavior
const (
	NotificationAutoHide = 5 * time.Second
)
