package connectfour

import (
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Board is a grid of cells with gravity: pieces settle in the lowest empty row of a column.
// Only the engine writes to it; everything exported is a read.
type Board struct {
	height int
	width  int
	cells  [][]entity.PlayerID
}

func newBoard(height, width int) *Board {
	cells := make([][]entity.PlayerID, height)
	for row := range cells {
		cells[row] = make([]entity.PlayerID, width)
	}

	return &Board{
		height: height,
		width:  width,
		cells:  cells,
	}
}

func (that *Board) Height() int {
	return that.height
}

func (that *Board) Width() int {
	return that.width
}

// Cell returns the content of (row, column); ok is false when the position is off the board.
func (that *Board) Cell(row, column int) (entity.PlayerID, bool) {
	if !that.contains(row, column) {
		return entity.None, false
	}
	return that.cells[row][column], true
}

// Cells returns a deep copy of the grid.
func (that *Board) Cells() [][]entity.PlayerID {
	cells := make([][]entity.PlayerID, len(that.cells))
	for row := range that.cells {
		cells[row] = make([]entity.PlayerID, len(that.cells[row]))
		copy(cells[row], that.cells[row])
	}
	return cells
}

// IsFull reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == entity.None {
				return false
			}
		}
	}
	return true
}

// String renders the board top to bottom, one line per row: '.' empty, '1' first, '2' second.
func (that *Board) String() string {
	var sb strings.Builder
	sb.Grow(that.height * (that.width + 1))

	for row := range that.cells {
		for _, cell := range that.cells[row] {
			switch cell {
			case entity.First:
				sb.WriteByte('1')
			case entity.Second:
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Board) contains(row, column int) bool {
	return row >= 0 && row < that.height && column >= 0 && column < that.width
}

// lowestEmptyRow scans the column from the bottom up; -1 means the column is full.
func (that *Board) lowestEmptyRow(column int) int {
	for row := that.height - 1; row >= 0; row-- {
		if that.cells[row][column] == entity.None {
			return row
		}
	}
	return -1
}

func (that *Board) place(row, column int, player entity.PlayerID) {
	that.cells[row][column] = player
}
