package connectfour

import "github.com/rocketscienceinc/connectfour/internal/entity"

const WinLength = 4

type axis struct {
	deltaRow, deltaCol int
}

// axes are checked in this order; the first one reaching WinLength wins.
var axes = [4]axis{
	{deltaRow: 1, deltaCol: 0},  // vertical
	{deltaRow: 0, deltaCol: 1},  // horizontal
	{deltaRow: 1, deltaCol: 1},  // diagonal
	{deltaRow: 1, deltaCol: -1}, // anti-diagonal
}

// findWin looks for a run of WinLength through (row, column) owned by player.
// It returns the run's positions ordered along the axis, or nil when there is none.
func findWin(board *Board, row, column int, player entity.PlayerID) []entity.Position {
	for _, a := range axes {
		backward := collectRun(board, row, column, -a.deltaRow, -a.deltaCol, player)
		forward := collectRun(board, row, column, a.deltaRow, a.deltaCol, player)

		if 1+len(forward)+len(backward) < WinLength {
			continue
		}

		line := make([]entity.Position, 0, 1+len(forward)+len(backward))
		for i := len(backward) - 1; i >= 0; i-- {
			line = append(line, backward[i])
		}
		line = append(line, entity.Position{Row: row, Column: column})
		line = append(line, forward...)

		return line
	}

	return nil
}

// collectRun walks at most WinLength-1 steps away from (row, column) while cells belong to player.
func collectRun(board *Board, row, column, deltaRow, deltaCol int, player entity.PlayerID) []entity.Position {
	var run []entity.Position

	for step := 1; step < WinLength; step++ {
		r, c := row+step*deltaRow, column+step*deltaCol

		cell, ok := board.Cell(r, c)
		if !ok || cell != player {
			break
		}

		run = append(run, entity.Position{Row: r, Column: c})
	}

	return run
}
