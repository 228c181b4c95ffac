package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Engine holds the rules and state of one game session: the board, whose turn it is,
// the round state and the cumulative score. It is not safe for concurrent use.
type Engine struct {
	size      int
	maxMoves  int
	grid      [][]entity.Mark
	player    entity.Player
	state     entity.RoundState
	moveCount int
	score     entity.Score
}

// NewEngine - creates an engine with an empty size x size board and a zero score.
func NewEngine(size int) (*Engine, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidGridSize, size)
	}

	engine := &Engine{
		size:     size,
		maxMoves: size * size,
	}
	engine.NewRound()

	return engine, nil
}

func (that *Engine) Size() int {
	return that.size
}

func (that *Engine) CurrentPlayer() entity.Player {
	return that.player
}

func (that *Engine) CurrentMark() entity.Mark {
	return that.player.Mark()
}

func (that *Engine) State() entity.RoundState {
	return that.state
}

func (that *Engine) Score() entity.Score {
	return that.score
}

func (that *Engine) MoveCount() int {
	return that.moveCount
}

// Cell - returns the mark at (column, row), or MarkEmpty when the coordinate is off the board.
func (that *Engine) Cell(column, row int) entity.Mark {
	if !that.inBounds(column, row) {
		return entity.MarkEmpty
	}
	return that.grid[row][column]
}

// Board - returns a copy of the grid, indexed [row][column].
func (that *Engine) Board() [][]entity.Mark {
	board := make([][]entity.Mark, that.size)
	for row := range that.grid {
		board[row] = append([]entity.Mark(nil), that.grid[row]...)
	}
	return board
}

// AttemptMove - places the current player's mark at (column, row).
// It returns false and changes nothing when the move is not allowed.
func (that *Engine) AttemptMove(column, row int) bool {
	return that.Move(column, row) == nil
}

// Move - same as AttemptMove, but reports why a move was rejected.
func (that *Engine) Move(column, row int) error {
	if err := that.validateMove(column, row); err != nil {
		return fmt.Errorf("invalid move (%d, %d): %w", column, row, err)
	}

	that.grid[row][column] = that.player.Mark()
	that.moveCount++
	that.updateRoundState(column, row)

	return nil
}

// NewRound - clears the board and gives the first move to PlayerA. The score is kept.
func (that *Engine) NewRound() {
	that.grid = make([][]entity.Mark, that.size)
	for row := range that.grid {
		that.grid[row] = make([]entity.Mark, that.size)
	}

	that.player = entity.PlayerA
	that.state = entity.StateOngoing
	that.moveCount = 0
}

// NewSession - starts a new round and zeroes the score.
func (that *Engine) NewSession() {
	that.NewRound()
	that.score = entity.Score{}
}

// validateMove - checks the move against the round state, the board bounds and the target cell.
func (that *Engine) validateMove(column, row int) error {
	if that.state.IsOver() {
		return apperror.ErrRoundOver
	}

	if !that.inBounds(column, row) {
		return apperror.ErrOutOfRange
	}

	if that.grid[row][column] != entity.MarkEmpty {
		return apperror.ErrCellOccupied
	}

	return nil
}

func (that *Engine) inBounds(column, row int) bool {
	return column >= 0 && column < that.size && row >= 0 && row < that.size
}

// updateRoundState - evaluates the board after a placement at (column, row).
func (that *Engine) updateRoundState(column, row int) {
	switch {
	case that.completesLine(column, row):
		that.state = entity.StateFinished
		that.score[that.player]++
	case that.moveCount == that.maxMoves:
		that.state = entity.StateDraw
	default:
		that.player = that.player.Opponent()
	}
}

// completesLine - reports whether the last placed mark filled a row, column or diagonal.
// Only lines through (column, row) can have changed, so only those are scanned.
func (that *Engine) completesLine(column, row int) bool {
	mark := that.player.Mark()
	last := that.size - 1

	if that.lineFilled(mark, func(i int) entity.Mark { return that.grid[row][i] }) {
		return true
	}

	if that.lineFilled(mark, func(i int) entity.Mark { return that.grid[i][column] }) {
		return true
	}

	if row == column && that.lineFilled(mark, func(i int) entity.Mark { return that.grid[i][i] }) {
		return true
	}

	return row+column == last && that.lineFilled(mark, func(i int) entity.Mark { return that.grid[i][last-i] })
}

func (that *Engine) lineFilled(mark entity.Mark, at func(i int) entity.Mark) bool {
	for i := 0; i < that.size; i++ {
		if at(i) != mark {
			return false
		}
	}
	return true
}
