package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconLabeled   = "●" // Item has a saved angle
	IconUnlabeled = "○" // Item still needs a label
	IconCursor    = "▶" // Currently displayed item
	IconSaved     = "✓" // Save confirmed
	IconWarn      = "!" // Non-fatal notice
)
