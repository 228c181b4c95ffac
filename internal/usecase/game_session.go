package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type gameEngine interface {
	Size() int
	CurrentPlayer() entity.Player
	CurrentMark() entity.Mark
	State() entity.RoundState
	Score() entity.Score
	MoveCount() int
	Board() [][]entity.Mark

	Move(column, row int) error
	NewRound()
	NewSession()
}

type resultPublisher interface {
	Publish(ctx context.Context, result *entity.RoundResult) error
}

// GameSession serializes all access to one engine and reports finished rounds.
type GameSession struct {
	logger    *slog.Logger
	engine    gameEngine
	publisher resultPublisher
	now       func() time.Time

	mu    sync.Mutex
	id    string
	round int
}

// NewGameSession - creates a session around the engine. publisher may be nil.
func NewGameSession(logger *slog.Logger, engine gameEngine, publisher resultPublisher) *GameSession {
	id := uuid.NewString()

	return &GameSession{
		logger:    logger.With("component", "session", "sessionID", id),
		engine:    engine,
		publisher: publisher,
		now:       time.Now,

		id:    id,
		round: 1,
	}
}

func (that *GameSession) ID() string {
	return that.id
}

// PlaceMove - plays the current player's mark at (column, row) and returns the resulting snapshot.
// A rejected move returns the unchanged snapshot together with the reason.
func (that *GameSession) PlaceMove(ctx context.Context, column, row int) (entity.Snapshot, error) {
	log := that.logger.With("method", "PlaceMove", "column", column, "row", row)

	that.mu.Lock()
	player := that.engine.CurrentPlayer()
	err := that.engine.Move(column, row)
	snapshot := that.snapshot()
	that.mu.Unlock()

	if err != nil {
		log.Debug("move rejected", "player", player.String(), "error", err)
		return snapshot, fmt.Errorf("failed to place move: %w", err)
	}

	log.Debug("move placed", "player", player.String(), "state", snapshot.State.String())

	if snapshot.State.IsOver() {
		log.Info("round over", "round", snapshot.Round, "outcome", snapshot.Outcome())
		that.publishResult(ctx, snapshot)
	}

	return snapshot, nil
}

// StartNewRound - clears the board and keeps the score.
func (that *GameSession) StartNewRound() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.engine.NewRound()
	that.round++

	that.logger.Info("new round started", "round", that.round)

	return that.snapshot()
}

// StartNewSession - clears the board and resets the score and round counter.
func (that *GameSession) StartNewSession() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.engine.NewSession()
	that.round = 1

	that.logger.Info("new session started")

	return that.snapshot()
}

func (that *GameSession) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

// snapshot - copies the engine state. The caller must hold the lock.
func (that *GameSession) snapshot() entity.Snapshot {
	return entity.Snapshot{
		SessionID:     that.id,
		Round:         that.round,
		Size:          that.engine.Size(),
		Board:         that.engine.Board(),
		CurrentPlayer: that.engine.CurrentPlayer(),
		CurrentMark:   that.engine.CurrentMark(),
		State:         that.engine.State(),
		Score:         that.engine.Score(),
		MoveCount:     that.engine.MoveCount(),
	}
}

// publishResult - sends the round result to the feed. Failures are logged and never reach the player.
func (that *GameSession) publishResult(ctx context.Context, snapshot entity.Snapshot) {
	if that.publisher == nil {
		return
	}

	log := that.logger.With("method", "publishResult", "round", snapshot.Round)

	if err := that.publisher.Publish(ctx, entity.NewRoundResult(snapshot, that.now())); err != nil {
		log.Error("failed to publish round result", "error", err)
	}
}
