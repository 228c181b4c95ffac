package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type engineState struct {
	Board     [][]entity.Mark
	Player    entity.Player
	State     entity.RoundState
	MoveCount int
	Score     entity.Score
}

func captureState(engine *Engine) engineState {
	return engineState{
		Board:     engine.Board(),
		Player:    engine.CurrentPlayer(),
		State:     engine.State(),
		MoveCount: engine.MoveCount(),
		Score:     engine.Score(),
	}
}

func newTestEngine(t *testing.T, size int) *Engine {
	t.Helper()

	engine, err := NewEngine(size)
	require.NoError(t, err)

	return engine
}

// playMoves - plays (column, row) pairs in order and fails the test on any rejected move.
func playMoves(t *testing.T, engine *Engine, moves ...[2]int) {
	t.Helper()

	for _, move := range moves {
		require.True(t, engine.AttemptMove(move[0], move[1]), "move (%d, %d) rejected", move[0], move[1])
	}
}

func emptyBoard(size int) [][]entity.Mark {
	board := make([][]entity.Mark, size)
	for row := range board {
		board[row] = make([]entity.Mark, size)
	}
	return board
}

func TestNewEngine(t *testing.T) {
	for _, size := range []int{1, 3, 4, 7} {
		// When: an engine is created
		engine := newTestEngine(t, size)

		// Then: it starts with an empty board, PlayerA to move and a zero score
		expected := engineState{
			Board:     emptyBoard(size),
			Player:    entity.PlayerA,
			State:     entity.StateOngoing,
			MoveCount: 0,
			Score:     entity.Score{},
		}
		require.Equal(t, expected, captureState(engine), "size %d", size)
		assert.Equal(t, size, engine.Size())
		assert.Equal(t, entity.MarkCross, engine.CurrentMark())
	}

	t.Run("Rejects a non-positive size", func(t *testing.T) {
		// When: an engine is created with size 0
		engine, err := NewEngine(0)

		// Then: ErrInvalidGridSize is returned
		require.ErrorIs(t, err, apperror.ErrInvalidGridSize)
		assert.Nil(t, engine)
	})
}

func TestEngine_AttemptMove(t *testing.T) {
	t.Run("Places the mark and passes the turn", func(t *testing.T) {
		// Given: a new 3x3 engine
		engine := newTestEngine(t, 3)

		// When: PlayerA plays column 2, row 1
		ok := engine.AttemptMove(2, 1)

		// Then: the cross is placed and PlayerB is to move
		require.True(t, ok)
		assert.Equal(t, entity.MarkCross, engine.Cell(2, 1))
		assert.Equal(t, entity.MarkEmpty, engine.Cell(1, 2))
		assert.Equal(t, 1, engine.MoveCount())
		assert.Equal(t, entity.PlayerB, engine.CurrentPlayer())
		assert.Equal(t, entity.MarkNought, engine.CurrentMark())
		assert.Equal(t, entity.StateOngoing, engine.State())
	})

	t.Run("Turns alternate A, B, A, B, A", func(t *testing.T) {
		// Given: a new 3x3 engine
		engine := newTestEngine(t, 3)

		moves := [][2]int{{0, 0}, {1, 1}, {0, 1}, {1, 0}, {0, 2}}
		expected := []entity.Player{entity.PlayerA, entity.PlayerB, entity.PlayerA, entity.PlayerB, entity.PlayerA}

		for i, move := range moves {
			// Then: each move is made by the expected player
			require.Equal(t, expected[i], engine.CurrentPlayer(), "move %d", i)
			require.True(t, engine.AttemptMove(move[0], move[1]))
		}
	})

	t.Run("Rejects an occupied cell without side effects", func(t *testing.T) {
		// Given: an engine where (0, 0) holds a cross
		engine := newTestEngine(t, 3)
		playMoves(t, engine, [2]int{0, 0})
		before := captureState(engine)

		// When: PlayerB plays the same cell
		err := engine.Move(0, 0)

		// Then: ErrCellOccupied is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.False(t, engine.AttemptMove(0, 0))
		require.Equal(t, before, captureState(engine))
	})

	t.Run("Rejects coordinates off the board", func(t *testing.T) {
		// Given: a new 3x3 engine
		engine := newTestEngine(t, 3)
		before := captureState(engine)

		for _, move := range [][2]int{{3, 0}, {0, 3}, {3, 3}, {-1, 0}, {0, -1}} {
			// When: a move outside [0, 2] is attempted
			err := engine.Move(move[0], move[1])

			// Then: ErrOutOfRange is returned and nothing changed
			require.ErrorIs(t, err, apperror.ErrOutOfRange, "move %v", move)
			assert.False(t, engine.AttemptMove(move[0], move[1]))
		}
		require.Equal(t, before, captureState(engine))
	})

	t.Run("Rejects moves after the round is over", func(t *testing.T) {
		// Given: a round won by PlayerA
		engine := newTestEngine(t, 3)
		playMoves(t, engine, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 0})
		require.Equal(t, entity.StateFinished, engine.State())
		before := captureState(engine)

		// When: a move is attempted on an empty cell
		err := engine.Move(2, 2)

		// Then: ErrRoundOver is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrRoundOver)
		require.Equal(t, before, captureState(engine))
	})
}

func TestEngine_RoundEnd(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		moves  [][2]int
		winner entity.Player
		score  entity.Score
	}{
		{
			name:   "row completed by PlayerA",
			size:   3,
			moves:  [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}},
			winner: entity.PlayerA,
			score:  entity.Score{1, 0},
		},
		{
			name:   "line scenario A,B,A,B,A",
			size:   3,
			moves:  [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}},
			winner: entity.PlayerA,
			score:  entity.Score{1, 0},
		},
		{
			name:   "column completed by PlayerB",
			size:   3,
			moves:  [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 2}, {1, 2}},
			winner: entity.PlayerB,
			score:  entity.Score{0, 1},
		},
		{
			name:   "main diagonal on 4x4",
			size:   4,
			moves:  [][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 0}, {2, 2}, {3, 0}, {3, 3}},
			winner: entity.PlayerA,
			score:  entity.Score{1, 0},
		},
		{
			name:   "anti-diagonal",
			size:   3,
			moves:  [][2]int{{2, 0}, {0, 0}, {1, 1}, {1, 0}, {0, 2}},
			winner: entity.PlayerA,
			score:  entity.Score{1, 0},
		},
		{
			name:   "single cell board",
			size:   1,
			moves:  [][2]int{{0, 0}},
			winner: entity.PlayerA,
			score:  entity.Score{1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a new engine
			engine := newTestEngine(t, tt.size)

			// When: the moves are played
			playMoves(t, engine, tt.moves...)

			// Then: the round is finished, the turn stays with the winner and only the winner scores
			assert.Equal(t, entity.StateFinished, engine.State())
			assert.Equal(t, tt.winner, engine.CurrentPlayer())
			assert.Equal(t, tt.score, engine.Score())
			assert.Equal(t, len(tt.moves), engine.MoveCount())
		})
	}

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a new 3x3 engine
		engine := newTestEngine(t, 3)

		// When: all nine cells are filled without completing a line
		//   X O X
		//   X O O
		//   O X X
		playMoves(t, engine,
			[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
			[2]int{1, 1}, [2]int{0, 1}, [2]int{2, 1},
			[2]int{1, 2}, [2]int{0, 2}, [2]int{2, 2},
		)

		// Then: the round is a draw and the score is unchanged
		assert.Equal(t, entity.StateDraw, engine.State())
		assert.Equal(t, entity.Score{}, engine.Score())
		assert.Equal(t, 9, engine.MoveCount())
	})

	t.Run("Two lines completed by the last cell count as one win", func(t *testing.T) {
		// Given: a new 3x3 engine
		engine := newTestEngine(t, 3)

		// When: the ninth move, the centre, completes both diagonals
		//   X O X
		//   O X O
		//   X O X
		playMoves(t, engine,
			[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
			[2]int{0, 1}, [2]int{0, 2}, [2]int{2, 1},
			[2]int{2, 2}, [2]int{1, 2}, [2]int{1, 1},
		)

		// Then: the round is finished, not drawn, and PlayerA scores exactly once
		assert.Equal(t, entity.StateFinished, engine.State())
		assert.Equal(t, entity.Score{1, 0}, engine.Score())
	})
}

func TestEngine_NewRound(t *testing.T) {
	// Given: an engine after a round won by PlayerA and one move into the next
	engine := newTestEngine(t, 3)
	playMoves(t, engine, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 0})
	engine.NewRound()
	playMoves(t, engine, [2]int{1, 1})

	// When: a new round is started twice
	engine.NewRound()
	engine.NewRound()

	// Then: the board, turn and state are reset but the score is kept
	expected := engineState{
		Board:     emptyBoard(3),
		Player:    entity.PlayerA,
		State:     entity.StateOngoing,
		MoveCount: 0,
		Score:     entity.Score{1, 0},
	}
	require.Equal(t, expected, captureState(engine))
}

func TestEngine_NewSession(t *testing.T) {
	// Given: an engine with a non-zero score
	engine := newTestEngine(t, 3)
	playMoves(t, engine, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 0})
	require.Equal(t, entity.Score{1, 0}, engine.Score())

	// When: a new session is started
	engine.NewSession()
	once := captureState(engine)

	// Then: everything, including the score, is reset
	expected := engineState{
		Board:     emptyBoard(3),
		Player:    entity.PlayerA,
		State:     entity.StateOngoing,
		MoveCount: 0,
		Score:     entity.Score{},
	}
	require.Equal(t, expected, once)

	// When: a new session is started again
	engine.NewSession()

	// Then: the state is the same as after the first call
	require.Equal(t, once, captureState(engine))
}

func TestEngine_Board(t *testing.T) {
	// Given: an engine with one mark placed
	engine := newTestEngine(t, 3)
	playMoves(t, engine, [2]int{1, 2})

	// When: the returned board copy is modified
	board := engine.Board()
	board[2][1] = entity.MarkNought
	board[0][0] = entity.MarkCross

	// Then: the engine's grid is untouched
	assert.Equal(t, entity.MarkCross, engine.Cell(1, 2))
	assert.Equal(t, entity.MarkEmpty, engine.Cell(0, 0))
	assert.Equal(t, entity.MarkEmpty, engine.Cell(5, 5))
}
