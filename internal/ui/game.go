package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	pageGame    = "game"
	pageConfirm = "confirm"
	pageAlert   = "alert"

	labelYes    = "Yes"
	labelCancel = "Cancel"
	labelOK     = "OK"
)

type gameSession interface {
	PlaceMove(ctx context.Context, column, row int) (entity.Snapshot, error)
	StartNewRound() entity.Snapshot
	StartNewSession() entity.Snapshot
	Snapshot() entity.Snapshot
}

// GameUI is the whole screen: the board, the score panel and the modal dialogs.
type GameUI struct {
	ctx     context.Context
	logger  *slog.Logger
	app     *tview.Application
	session gameSession

	pages  *tview.Pages
	board  *Board
	score  *tview.TextView
	status *tview.TextView

	pending func()
}

func New(ctx context.Context, logger *slog.Logger, app *tview.Application, session gameSession) *GameUI {
	snapshot := session.Snapshot()

	that := &GameUI{
		ctx:     ctx,
		logger:  logger.With("component", "ui"),
		app:     app,
		session: session,
		pages:   tview.NewPages(),
		board:   NewBoard(snapshot),
		score:   tview.NewTextView(),
		status:  tview.NewTextView(),
	}

	that.score.SetDynamicColors(true).SetBorder(true).SetTitle(" Score ")
	that.status.SetDynamicColors(true).SetBorder(true).SetTitle(" Status ")

	help := tview.NewTextView().
		SetDynamicColors(true).
		SetText("[gray]arrows/hjkl move · enter play · 1-9 play cell · n new round · r reset · q quit")

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(that.score, 4, 0, false).
		AddItem(that.status, 0, 1, false)

	body := tview.NewFlex().
		AddItem(that.board.Box, 0, 2, true).
		AddItem(side, 30, 0, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(help, 1, 0, false)

	that.board.Box.SetInputCapture(that.handleKey)
	that.pages.AddPage(pageGame, layout, true, true)
	that.refresh(snapshot)

	return that
}

// Root - returns the primitive to pass to Application.SetRoot.
func (that *GameUI) Root() tview.Primitive {
	return that.pages
}

func (that *GameUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		that.board.MoveSelection(0, -1)
	case tcell.KeyDown:
		that.board.MoveSelection(0, 1)
	case tcell.KeyLeft:
		that.board.MoveSelection(-1, 0)
	case tcell.KeyRight:
		that.board.MoveSelection(1, 0)
	case tcell.KeyEnter:
		that.playSelected()
	case tcell.KeyEsc:
		that.app.Stop()
	case tcell.KeyRune:
		that.handleRune(event.Rune())
	default:
		return event
	}

	return nil
}

func (that *GameUI) handleRune(ch rune) {
	switch ch {
	case 'h':
		that.board.MoveSelection(-1, 0)
	case 'j':
		that.board.MoveSelection(0, 1)
	case 'k':
		that.board.MoveSelection(0, -1)
	case 'l':
		that.board.MoveSelection(1, 0)
	case ' ':
		that.playSelected()
	case 'n':
		that.confirm("Are you sure?\n\nnew game will clear existing marks", func() {
			that.refresh(that.session.StartNewRound())
		})
	case 'r':
		that.confirm("Are you sure?\n\nreset will erase current scores", func() {
			that.refresh(that.session.StartNewSession())
		})
	case 'q':
		that.app.Stop()
	default:
		if ch >= '1' && ch <= '9' {
			that.playTag(int(ch - '0'))
		}
	}
}

func (that *GameUI) playSelected() {
	column, row := that.board.Selected()
	that.play(column, row)
}

// playTag - plays the cell addressed by a digit key.
func (that *GameUI) playTag(tag int) {
	column, row, ok := CellCoordinates(tag, that.board.snapshot.Size)
	if !ok {
		return
	}
	that.play(column, row)
}

// play - forwards the move to the session. A rejected move is a no-op for the player.
func (that *GameUI) play(column, row int) {
	log := that.logger.With("method", "play")

	snapshot, err := that.session.PlaceMove(that.ctx, column, row)
	if err != nil {
		log.Debug("move ignored", "error", err)
		return
	}

	that.refresh(snapshot)

	if snapshot.State.IsOver() {
		that.alert("This Round Is Over\n\n" + snapshot.Outcome())
	}
}

func (that *GameUI) refresh(snapshot entity.Snapshot) {
	that.board.SetSnapshot(snapshot)

	a, b := snapshot.Score.Pair()
	that.score.SetText(fmt.Sprintf(" [red]%s (X)[-]: %d\n [dodgerblue]%s (O)[-]: %d",
		entity.PlayerA, a, entity.PlayerB, b))

	if snapshot.State.IsOver() {
		that.status.SetText(fmt.Sprintf(" Round %d\n\n %s\n\n press n for a new round", snapshot.Round, snapshot.Outcome()))
		return
	}

	that.status.SetText(fmt.Sprintf(" Round %d\n\n %s (%s) to move", snapshot.Round, snapshot.CurrentPlayer, snapshot.CurrentMark))
}

// confirm - asks before running a destructive action.
func (that *GameUI) confirm(text string, onYes func()) {
	that.pending = onYes

	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{labelCancel, labelYes}).
		SetDoneFunc(func(_ int, buttonLabel string) {
			that.resolveConfirm(buttonLabel == labelYes)
		})

	that.pages.AddPage(pageConfirm, modal, false, true)
	that.app.SetFocus(modal)
}

func (that *GameUI) resolveConfirm(yes bool) {
	action := that.pending
	that.pending = nil

	that.pages.RemovePage(pageConfirm)
	that.app.SetFocus(that.board.Box)

	if yes && action != nil {
		action()
	}
}

func (that *GameUI) alert(text string) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{labelOK}).
		SetDoneFunc(func(_ int, _ string) {
			that.closeAlert()
		})

	that.pages.AddPage(pageAlert, modal, false, true)
	that.app.SetFocus(modal)
}

func (that *GameUI) closeAlert() {
	that.pages.RemovePage(pageAlert)
	that.app.SetFocus(that.board.Box)
}
