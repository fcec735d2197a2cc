package tui

import "time"

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// WindowTitle is shown in the terminal title bar and at the top of the screen
	WindowTitle = "Keyboard Mapping Editor"

	// Column headers of the mapping grid
	HeaderFrom = "Persian"
	HeaderTo   = "English"

	// Button labels
	ButtonSave  = "Save Mapping"
	ButtonReset = "Reset to Default"

	// Modal Dimensions - Standard margins for modal dialogs
	ModalWidthMargin     = 6  // Standard horizontal margin (m.width - 6)
	ModalHeightMarginMed = 4  // Medium vertical margin (m.height - 4)
	NoticeWidth          = 60 // Preferred notice width
	NoticeHeight         = 10 // Preferred notice height

	// Viewport Padding
	ViewportPaddingHorizontal = 4 // Horizontal padding (left + right)

	// Modal Content Calculations
	ModalOverheadLines = 6 // Title (2) + padding (2) + border (2)
	ModalFooterLines   = 2 // Footer + blank line

	// Main view: title (2) + grid header (2) + borders (2) + buttons (2) + status (1)
	MainViewHeightOffset = 9

	// Grid layout
	GridIndexWidth  = 5  // "1234 "
	GridMinColWidth = 12 // minimum width of a label column

	// GridSkippedMarker follows rows that are left out on save
	GridSkippedMarker = " (skipped)"

	// Footer message truncation
	MaxFooterMessage = 100

	// DefaultMessageTimeout clears status/error messages from the footer
	DefaultMessageTimeout = 4 * time.Second
)
