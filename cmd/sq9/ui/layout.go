// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for the chart screen
const (
	// Grid cells
	DefaultCellWidth = 6
	CellHeight       = 2

	// Sidebar
	SidebarWidth = 28

	// Control areas
	HeaderHeight   = 1
	ControlsHeight = 3
	FooterHeight   = 1

	// Responsive breakpoints
	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 24
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	GridSize       int
	CellWidth      int
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height, gridSize, cellWidth int) LayoutConfig {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		GridSize:       gridSize,
		CellWidth:      cellWidth,
	}
}

// GridWidth returns the rendered width of the spiral.
func (l LayoutConfig) GridWidth() int {
	return l.GridSize * l.CellWidth
}

// GridHeight returns the rendered height of the spiral.
func (l LayoutConfig) GridHeight() int {
	return l.GridSize * CellHeight
}

// ContentHeight returns the rows available below the header and controls.
func (l LayoutConfig) ContentHeight() int {
	return l.TerminalHeight - HeaderHeight - ControlsHeight - FooterHeight
}

// ShowSidebar reports whether the sidebar fits next to the grid.
func (l LayoutConfig) ShowSidebar() bool {
	return l.TerminalWidth == 0 || l.TerminalWidth >= l.GridWidth()+SidebarWidth
}

// Fits reports whether the full grid fits the terminal, which must also meet
// the minimum size. Unknown sizes (before the first WindowSizeMsg) count as
// fitting.
func (l LayoutConfig) Fits() bool {
	if l.TerminalWidth == 0 && l.TerminalHeight == 0 {
		return true
	}
	if l.TerminalWidth < MinimumTerminalWidth || l.TerminalHeight < MinimumTerminalHeight {
		return false
	}
	return l.TerminalWidth >= l.GridWidth() && l.ContentHeight() >= l.GridHeight()
}
