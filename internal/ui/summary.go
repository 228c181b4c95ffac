package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Printer writes plain-terminal output after the full-screen UI has exited.
type Printer struct {
	out *termenv.Output
}

func NewPrinter(out *termenv.Output) *Printer {
	return &Printer{out: out}
}

// Summary - prints the final score of a session.
func (that *Printer) Summary(snapshot entity.Snapshot) {
	a, b := snapshot.Score.Pair()

	fmt.Fprintf(that.out, "%s %s %d : %d %s\n",
		that.out.String("Final score").Bold(),
		that.player(entity.PlayerA), a, b,
		that.player(entity.PlayerB))
}

// Result - prints one round result received from the results feed.
func (that *Printer) Result(result *entity.RoundResult) {
	outcome := "draw"
	if result.State == entity.StateFinished {
		outcome = result.Winner + " won"
	}

	fmt.Fprintf(that.out, "%s round %d: %s in %d moves, score %d : %d\n",
		that.out.String(shortID(result.SessionID)).Faint(),
		result.Round, outcome, result.Moves, result.Score[entity.PlayerA], result.Score[entity.PlayerB])

	for _, row := range result.Board {
		cells := make([]string, len(row))
		for i, mark := range row {
			cells[i] = that.mark(mark)
		}
		fmt.Fprintf(that.out, "  %s\n", strings.Join(cells, " "))
	}
}

func (that *Printer) player(player entity.Player) string {
	return that.mark(player.Mark().String()) + " " + player.String()
}

func (that *Printer) mark(mark string) string {
	switch mark {
	case entity.MarkCross.String():
		return that.out.String(mark).Foreground(termenv.ANSIRed).Bold().String()
	case entity.MarkNought.String():
		return that.out.String(mark).Foreground(termenv.ANSIBlue).Bold().String()
	default:
		return "."
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
