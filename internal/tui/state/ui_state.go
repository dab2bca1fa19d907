package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	LoadingMode       Mode = iota // Waiting for the first dataset load
	TableMode                     // Default navigation mode over the records table
	RecordFormMode                // Create or update form with huh
	DeleteConfirmMode             // Confirming record deletion
	ResultMode                    // Showing the outcome of a submission
	ErrorMode                     // Blocking error, dataset could not be loaded
	HelpMode                      // Displaying help screen
)

// String returns a short label for the status bar
func (m Mode) String() string {
	switch m {
	case LoadingMode:
		return "LOADING"
	case TableMode:
		return "TABLE"
	case RecordFormMode:
		return "FORM"
	case DeleteConfirmMode:
		return "DELETE"
	case ResultMode:
		return "RESULT"
	case ErrorMode:
		return "ERROR"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// UIState manages the user interface state.
// This includes the selected table row, terminal dimensions and the current
// interaction mode.
type UIState struct {
	// selectedRow is the index of the highlighted record in the table
	selectedRow int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// previousMode is restored when help is dismissed
	previousMode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		selectedRow:  0,
		mode:         LoadingMode,
		previousMode: TableMode,
	}
}

// SelectedRow returns the index of the highlighted record.
func (s *UIState) SelectedRow() int {
	return s.selectedRow
}

// SetSelectedRow updates the highlighted row, clamped to [0, rowCount).
func (s *UIState) SetSelectedRow(index, rowCount int) {
	if rowCount <= 0 {
		s.selectedRow = 0
		return
	}
	s.selectedRow = min(max(index, 0), rowCount-1)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ContentHeight returns the available height for the main content area.
// This is terminal height minus header and status bar, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 3    // title + program + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// EnterHelp switches to help, remembering where to return.
func (s *UIState) EnterHelp() {
	if s.mode == HelpMode {
		return
	}
	s.previousMode = s.mode
	s.mode = HelpMode
}

// ExitHelp returns to the mode active before help was opened.
func (s *UIState) ExitHelp() {
	if s.mode != HelpMode {
		return
	}
	s.mode = s.previousMode
}
