package tui

// Color constants for the timeclock theme
const (
	// Base Colors
	ColorBorder         = "#35524A" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F1EE" // Labels, user input, titles
	ColorSecondaryText = "#A9BDB6" // Secondary text
	ColorPlaceholder   = "#A9BDB6"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#0F9D84" // Banner, active borders
	ColorAccentBright = "#5EEAD4" // Clock digits, highlights

	// State Colors
	ColorError   = "#EF4444" // Validation errors, negative pay
	ColorSuccess = "#22C55E" // On time, clocked out
	ColorWarning = "#F59E0B" // Late, early leave, overtime
)
