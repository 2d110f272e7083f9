// Package tui provides the terminal user interface for tasktrack.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal    Mode = iota // Default navigation mode
	ModeSearch                // Search text input mode
	ModeConfirm               // Confirmation dialog mode
	ModeForm                  // New/edit task form
	ModePathInput             // Import/export file path input
	ModeHelp                  // Help overlay mode
	ModeDetail                // Task detail view mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeConfirm:
		return "confirm"
	case ModeForm:
		return "form"
	case ModePathInput:
		return "path_input"
	case ModeHelp:
		return "help"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeSearch, ModeForm, ModePathInput:
		return true
	case ModeNormal, ModeConfirm, ModeHelp, ModeDetail:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone     ConfirmAction = iota
	ConfirmDelete                 // Delete one task
	ConfirmClearAll               // Delete every task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	case ConfirmClearAll:
		return "delete all"
	}
	return ""
}

// PathAction represents what the path input is for.
type PathAction int

const (
	PathNone   PathAction = iota
	PathImport            // Append tasks from the file
	PathExport            // Write tasks to the file
)

// String returns a human-readable description of the action.
func (a PathAction) String() string {
	switch a {
	case PathNone:
		return ""
	case PathImport:
		return "import"
	case PathExport:
		return "export"
	}
	return ""
}
