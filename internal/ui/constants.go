package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClear    = "×"
	IconHealthy  = "●"
	IconDown     = "○"
)

// Labels
const (
	TextAppTitle          = "Animal Sounds"
	TextAnimal            = "Animal"
	TextSound             = "Sound"
	TextSubmit            = "What does it mean?"
	TextAnimalPlaceholder = "-- Select an Animal --"
	TextSettings          = "Settings"
	TextServerURL         = "Server URL"
	TextFallbackAnimals   = "Fallback animals (comma separated)"
	TextSave              = "Save"
	TextCancel            = "Cancel"
	TextSettingsSaved     = "Settings saved. A new server URL is used after restart."
	TextChecking          = "Checking server..."
	TextServerHealthy     = "Server ready (%d records)"
	TextServerNoData      = "Server reachable, no data loaded"
	TextServerDown        = "Server unreachable: %s"
)

// Layout sizing
const (
	WindowWidth  float32 = 520
	WindowHeight float32 = 420

	ResultMinHeight float32 = 96

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 260
)
