// Package ui is the terminal front end: it draws the board and score and turns key presses
// into moves on a game session.
package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const cellWidth = 3

var (
	crossStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	noughtStyle = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	tagStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	gridStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Board renders a snapshot as a grid and tracks the cursor.
type Board struct {
	Box      *tview.Box
	snapshot entity.Snapshot
	selX     int
	selY     int
}

func NewBoard(snapshot entity.Snapshot) *Board {
	board := &Board{
		Box: tview.NewBox(),
	}
	board.Box.SetBorder(true).SetTitle(" Tic Tac Toe ")
	board.Box.SetDrawFunc(board.draw)
	board.SetSnapshot(snapshot)

	return board
}

// SetSnapshot - replaces the rendered state. The cursor is kept when the size is unchanged.
func (that *Board) SetSnapshot(snapshot entity.Snapshot) {
	if snapshot.Size != that.snapshot.Size {
		that.selX = snapshot.Size / 2
		that.selY = snapshot.Size / 2
	}
	that.snapshot = snapshot
}

// Selected - returns the cursor position as (column, row).
func (that *Board) Selected() (int, int) {
	return that.selX, that.selY
}

// MoveSelection - moves the cursor by (h, v), staying on the board.
func (that *Board) MoveSelection(h, v int) {
	size := that.snapshot.Size
	if that.selX+h >= 0 && that.selX+h < size {
		that.selX += h
	}
	if that.selY+v >= 0 && that.selY+v < size {
		that.selY += v
	}
}

// draw - lays out the grid as cells of cellWidth characters separated by '|' and '-' lines.
func (that *Board) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := that.snapshot.Size
	if size == 0 {
		return x, y, width, height
	}

	gridW := size*(cellWidth+1) - 1
	gridH := size*2 - 1
	left := x + (width-gridW)/2
	top := y + (height-gridH)/2

	for row := 0; row < size; row++ {
		lineY := top + row*2

		for column := 0; column < size; column++ {
			cellX := left + column*(cellWidth+1)
			that.drawCell(screen, cellX, lineY, column, row)

			if column < size-1 {
				screen.SetContent(cellX+cellWidth, lineY, tview.Borders.Vertical, nil, gridStyle)
			}
		}

		if row == size-1 {
			continue
		}

		for i := 0; i < gridW; i++ {
			ch := tview.Borders.Horizontal
			if (i+1)%(cellWidth+1) == 0 {
				ch = tview.Borders.Cross
			}
			screen.SetContent(left+i, lineY+1, ch, nil, gridStyle)
		}
	}

	return x, y, width, height
}

func (that *Board) drawCell(screen tcell.Screen, cellX, cellY, column, row int) {
	text, style := " ", tagStyle

	switch that.snapshot.Board[row][column] {
	case entity.MarkCross:
		text, style = entity.MarkCross.String(), crossStyle
	case entity.MarkNought:
		text, style = entity.MarkNought.String(), noughtStyle
	default:
		if !that.snapshot.State.IsOver() {
			text = strconv.Itoa(CellTag(column, row, that.snapshot.Size))
		}
	}

	if column == that.selX && row == that.selY && !that.snapshot.State.IsOver() {
		style = style.Reverse(true)
	}

	for i := 0; i < cellWidth; i++ {
		screen.SetContent(cellX+i, cellY, ' ', nil, style)
	}
	for i, ch := range text {
		screen.SetContent(cellX+(cellWidth-len(text))/2+i, cellY, ch, nil, style)
	}
}
