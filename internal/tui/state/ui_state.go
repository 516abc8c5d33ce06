package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	GrabMode                            // A ticket or column is picked up
	AddTicketMode                       // Typing the title of a new ticket
	AddColumnMode                       // Typing the title of a new column
	DeleteTicketConfirmMode             // Confirming ticket deletion
	DeleteColumnConfirmMode             // Confirming column deletion
	BoardFormMode                       // Creating a new board with huh
	TicketFormMode                      // Editing a ticket with huh
	TicketDetailMode                    // Reading a ticket in a viewport
	HelpMode                            // Displaying help screen
)

// UIState manages the user interface state.
// This includes navigation (column/ticket selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedTicket int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:         NormalMode,
		viewportSize: 1, // recalculated when width is set
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTicket returns the index of the currently selected ticket.
func (s *UIState) SelectedTicket() int {
	return s.selectedTicket
}

// SetSelectedTicket updates the selected ticket index.
func (s *UIState) SetSelectedTicket(index int) {
	s.selectedTicket = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus tab bar and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3    // tabs + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-tabBarHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns can fit in the terminal width.
//
// Column layout:
//   - Content width: 32 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between columns)
//   - Total per column: 38 characters
//
// 4 characters are reserved for margins and at least 1 column is visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const columnWidth = 38
	const reservedWidth = 4

	s.viewportSize = max(1, (s.width-reservedWidth)/columnWidth)
}

// EnsureSelectionVisible adjusts the viewport so that column is on screen.
func (s *UIState) EnsureSelectionVisible(column int) {
	if column < s.viewportOffset {
		s.viewportOffset = column
	}
	if column >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = column - s.viewportSize + 1
	}
}

// ClampSelection keeps the selection inside a board with the given
// column count and ticket counts per column.
func (s *UIState) ClampSelection(ticketCounts []int) {
	if len(ticketCounts) == 0 {
		s.selectedColumn, s.selectedTicket, s.viewportOffset = 0, 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), len(ticketCounts)-1)
	n := ticketCounts[s.selectedColumn]
	s.selectedTicket = min(max(s.selectedTicket, 0), max(n-1, 0))

	if s.viewportOffset+s.viewportSize > len(ticketCounts) {
		s.viewportOffset = max(0, len(ticketCounts)-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedColumn)
}

// ResetSelection resets both column and ticket selection to zero.
// This is called when switching boards.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTicket = 0
	s.viewportOffset = 0
}
