// Package tui renders a connect-four game in the terminal and forwards key presses to the game use case.
package tui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	cellWidth = 3

	pieceRune  = '●'
	emptyRune  = '·'
	cursorRune = '▼'

	// rows above the grid: cursor line and column numbers
	headerHeight = 2
)

// BoardView draws the grid of the current game with a column cursor above it.
type BoardView struct {
	*tview.Box
	state    entity.GameState
	cursor   int
	line     map[entity.Position]bool
	lastMove *entity.Position
}

func NewBoardView() *BoardView {
	view := &BoardView{
		Box: tview.NewBox(),
	}

	view.SetBorder(true)
	view.SetTitle(" Connect Four ")
	view.SetDrawFunc(view.draw)

	return view
}

// SetState replaces the game shown. The cursor is kept inside the new board.
func (that *BoardView) SetState(state entity.GameState) {
	that.state = state

	that.line = make(map[entity.Position]bool, len(state.Line))
	for _, pos := range state.Line {
		that.line[pos] = true
	}

	that.lastMove = state.LastMove
	that.cursor = clamp(that.cursor, 0, state.Width()-1)
}

func (that *BoardView) State() entity.GameState {
	return that.state
}

func (that *BoardView) Cursor() int {
	return that.cursor
}

// MoveCursor shifts the cursor by delta columns, stopping at the board edges.
func (that *BoardView) MoveCursor(delta int) {
	that.cursor = clamp(that.cursor+delta, 0, that.state.Width()-1)
}

// CenterCursor puts the cursor on the middle column.
func (that *BoardView) CenterCursor() {
	that.cursor = that.state.Width() / 2
}

// Size returns the width and height the board needs, border included.
func (that *BoardView) Size() (int, int) {
	return that.state.Width()*cellWidth + 2, that.state.Height() + headerHeight + 2
}

func (that *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	innerX, innerY, innerWidth, innerHeight := x+1, y+1, width-2, height-2

	if that.state.Width() == 0 {
		return innerX, innerY, innerWidth, innerHeight
	}

	numberStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	cursorStyle := tcell.StyleDefault.Foreground(that.turnColor()).Bold(true)

	for column := 0; column < that.state.Width(); column++ {
		cellX := innerX + column*cellWidth + 1

		if column == that.cursor && !that.state.IsFinished() {
			screen.SetContent(cellX, innerY, cursorRune, nil, cursorStyle)
		}

		label := strconv.Itoa(column + 1)
		for i, r := range label {
			screen.SetContent(cellX+i, innerY+1, r, nil, numberStyle)
		}
	}

	for row := 0; row < that.state.Height(); row++ {
		for column := 0; column < that.state.Width(); column++ {
			cellX, cellY := cellPosition(innerX, innerY, row, column)
			r, style := that.cellGlyph(row, column)
			screen.SetContent(cellX, cellY, r, nil, style)
		}
	}

	return innerX, innerY, innerWidth, innerHeight
}

func (that *BoardView) cellGlyph(row, column int) (rune, tcell.Style) {
	owner := that.state.Board[row][column]
	if owner == entity.None {
		return emptyRune, tcell.StyleDefault.Foreground(tcell.ColorGray)
	}

	pos := entity.Position{Row: row, Column: column}
	style := tcell.StyleDefault.Foreground(playerColor(that.state.Player(owner)))

	switch {
	case that.line[pos]:
		style = style.Bold(true).Reverse(true)
	case that.lastMove != nil && *that.lastMove == pos:
		style = style.Underline(true)
	}

	return pieceRune, style
}

func (that *BoardView) turnColor() tcell.Color {
	return playerColor(that.state.Player(that.state.Turn))
}

// cellPosition maps a board cell to the screen, given the top-left corner inside the border.
func cellPosition(innerX, innerY, row, column int) (int, int) {
	return innerX + column*cellWidth + 1, innerY + headerHeight + row
}

// playerColor resolves a color name or #rrggbb value; unknown names fall back to white.
func playerColor(player entity.Player) tcell.Color {
	color := lookupColor(player.Color)
	if color == tcell.ColorDefault {
		return tcell.ColorWhite
	}
	return color
}

// lookupColor is tcell.GetColor without case sensitivity. ColorDefault means unknown.
func lookupColor(name string) tcell.Color {
	return tcell.GetColor(strings.ToLower(strings.TrimSpace(name)))
}

func clamp(value, lower, upper int) int {
	if upper < lower {
		return lower
	}
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
