package entity

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownRoundState = errors.New("unknown round state")

// RoundState is the lifecycle state of the current round.
type RoundState int

const (
	StateOngoing RoundState = iota
	StateFinished
	StateDraw
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
	StatusDraw     = "draw"
)

func (that RoundState) String() string {
	switch that {
	case StateFinished:
		return StatusFinished
	case StateDraw:
		return StatusDraw
	default:
		return StatusOngoing
	}
}

// MarshalText encodes the state by name, so JSON payloads carry "finished" instead of 1.
func (that RoundState) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *RoundState) UnmarshalText(text []byte) error {
	switch string(text) {
	case StatusOngoing:
		*that = StateOngoing
	case StatusFinished:
		*that = StateFinished
	case StatusDraw:
		*that = StateDraw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRoundState, string(text))
	}
	return nil
}

// IsOver reports whether the round no longer accepts moves.
func (that RoundState) IsOver() bool {
	return that != StateOngoing
}

// Score holds the win count of each player, indexed by Player.
type Score [2]int

// Pair - returns the score as the ordered (PlayerA, PlayerB) tuple.
func (that Score) Pair() (int, int) {
	return that[PlayerA], that[PlayerB]
}

// Of - returns the win count of one player.
func (that Score) Of(player Player) int {
	return that[player]
}

// Snapshot is a consistent, read-only copy of a session at one point in time.
type Snapshot struct {
	SessionID     string
	Round         int
	Size          int
	Board         [][]Mark
	CurrentPlayer Player
	CurrentMark   Mark
	State         RoundState
	Score         Score
	MoveCount     int
}

// Outcome - returns the round-end message, or "" while the round is ongoing.
// On a finished round the current player is the winner, since the turn does not advance on a win.
func (that Snapshot) Outcome() string {
	switch that.State {
	case StateFinished:
		return that.CurrentPlayer.String() + " has won!"
	case StateDraw:
		return "it is a draw"
	default:
		return ""
	}
}

// RoundResult is emitted once per round, when the round leaves the ongoing state.
type RoundResult struct {
	SessionID  string     `json:"session_id"`
	Round      int        `json:"round"`
	State      RoundState `json:"state"`
	Winner     string     `json:"winner"`
	Score      Score      `json:"score"`
	Moves      int        `json:"moves"`
	Board      [][]string `json:"board"`
	FinishedAt time.Time  `json:"finished_at"`
}

func NewRoundResult(snapshot Snapshot, finishedAt time.Time) *RoundResult {
	result := &RoundResult{
		SessionID:  snapshot.SessionID,
		Round:      snapshot.Round,
		State:      snapshot.State,
		Score:      snapshot.Score,
		Moves:      snapshot.MoveCount,
		Board:      make([][]string, len(snapshot.Board)),
		FinishedAt: finishedAt,
	}

	if snapshot.State == StateFinished {
		result.Winner = snapshot.CurrentPlayer.String()
	}

	for row, cells := range snapshot.Board {
		result.Board[row] = make([]string, len(cells))
		for column, mark := range cells {
			result.Board[row][column] = mark.String()
		}
	}

	return result
}
