package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

const (
	pageSetup  = "setup"
	pageGame   = "game"
	pageResult = "result"

	buttonNewGame = "New Game"
	buttonQuit    = "Quit"

	keysHelp = "←/→ move  Enter drop  1-9 column  n new game  q quit"
)

type gameUseCase interface {
	NewGame(ctx context.Context, settings entity.GameSettings) (entity.GameState, error)
	DropPiece(ctx context.Context, column int) (entity.MoveResult, error)
	State(ctx context.Context) (entity.GameState, error)
}

// UI is the terminal front end. All of its methods run on the tview event loop.
type UI struct {
	logger *slog.Logger
	games  gameUseCase

	app      *tview.Application
	pages    *tview.Pages
	frame    *tview.Flex
	boardRow *tview.Flex
	board    *BoardView
	hint     *tview.TextView
	setup    *SetupForm
}

func New(logger *slog.Logger, games gameUseCase, conf *config.Config) *UI {
	ui := &UI{
		logger: logger.With("component", "tui"),
		games:  games,
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		board:  NewBoardView(),
	}

	ui.hint = tview.NewTextView()
	ui.hint.SetBorder(true)
	ui.hint.SetBorderPadding(0, 0, 1, 1)
	ui.hint.SetTitle(" Status ")
	ui.hint.SetTitleAlign(tview.AlignLeft)

	ui.setup = NewSetupForm(conf, ui.app.Stop)

	ui.boardRow = tview.NewFlex().
		AddItem(ui.board, 0, 1, true).
		AddItem(nil, 0, 1, false)

	ui.frame = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ui.boardRow, 0, 1, true).
		AddItem(ui.hint, 3, 0, false).
		AddItem(nil, 0, 1, false)

	ui.pages.AddPage(pageSetup, ui.setup.Primitive(), true, true)
	ui.pages.AddPage(pageGame, ui.frame, true, false)

	return ui
}

// Run blocks until the user quits or ctx is cancelled.
func (that *UI) Run(ctx context.Context) error {
	that.bind(ctx)

	go func() {
		<-ctx.Done()
		that.app.Stop()
	}()

	if err := that.app.SetRoot(that.pages, true).Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return nil
}

// bind routes key presses and form submits to the use case with ctx.
func (that *UI) bind(ctx context.Context) {
	that.board.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		return that.handleKey(ctx, event)
	})

	that.setup.SetStartFunc(func(settings entity.GameSettings) {
		that.startGame(ctx, settings)
	})
}

func (that *UI) handleKey(ctx context.Context, event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		that.board.MoveCursor(-1)
	case tcell.KeyRight:
		that.board.MoveCursor(1)
	case tcell.KeyEnter:
		that.dropPiece(ctx, that.board.Cursor())
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r == 'h':
			that.board.MoveCursor(-1)
		case r == 'l':
			that.board.MoveCursor(1)
		case r == ' ':
			that.dropPiece(ctx, that.board.Cursor())
		case r >= '1' && r <= '9':
			that.dropPiece(ctx, int(r-'1'))
		case r == 'n':
			that.showSetup()
		case r == 'q':
			that.app.Stop()
		default:
			return event
		}
	default:
		return event
	}

	return nil
}

func (that *UI) startGame(ctx context.Context, settings entity.GameSettings) {
	state, err := that.games.NewGame(ctx, settings)
	if err != nil {
		if errors.Is(err, apperror.ErrConfiguration) {
			that.setup.SetError(setupErrorText(err))
			return
		}

		that.logger.Error("failed to start game", "error", err)
		that.setup.SetError("Could not start the game, see the log for details.")
		return
	}

	that.setup.ClearError()

	that.board.SetState(state)
	that.board.CenterCursor()
	that.fitBoard()
	that.hint.SetText(statusText(state))

	that.pages.SwitchToPage(pageGame)
	that.app.SetFocus(that.board)
}

func (that *UI) dropPiece(ctx context.Context, column int) {
	log := that.logger.With("method", "dropPiece", "column", column)

	result, err := that.games.DropPiece(ctx, column)
	switch {
	case errors.Is(err, apperror.ErrInvalidColumn):
		// stray key for a column the board does not have
		return
	case errors.Is(err, apperror.ErrColumnFull):
		that.hint.SetText(fmt.Sprintf("Column %d is full, pick another one.\n%s", column+1, keysHelp))
		return
	case errors.Is(err, apperror.ErrGameOver), errors.Is(err, usecase.ErrNoActiveGame):
		that.hint.SetText("The game is over. Press n to start a new one.")
		return
	case err != nil:
		log.Error("failed to drop piece", "error", err)
		that.hint.SetText("Something went wrong, see the log for details.")
		return
	}

	state, err := that.games.State(ctx)
	if err != nil {
		log.Error("failed to read game state", "error", err)
		return
	}

	that.board.SetState(state)
	that.hint.SetText(statusText(state))

	if result.Status.IsTerminal() {
		that.showResult(resultText(state, result))
	}
}

// fitBoard sizes the board area to the current grid so the status panel sits right below it.
func (that *UI) fitBoard() {
	width, height := that.board.Size()

	that.boardRow.ResizeItem(that.board, width, 0)
	that.frame.ResizeItem(that.boardRow, height, 0)
}

func (that *UI) showResult(text string) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{buttonNewGame, buttonQuit}).
		SetDoneFunc(func(_ int, label string) {
			that.pages.RemovePage(pageResult)

			switch label {
			case buttonNewGame:
				that.showSetup()
			case buttonQuit:
				that.app.Stop()
			default:
				that.app.SetFocus(that.board)
			}
		})

	that.pages.AddPage(pageResult, modal, true, true)
	that.app.SetFocus(modal)
}

func (that *UI) showSetup() {
	that.pages.SwitchToPage(pageSetup)
	that.app.SetFocus(that.setup.Primitive())
}

func statusText(state entity.GameState) string {
	switch {
	case state.Status.IsWon():
		return fmt.Sprintf("%s wins after %d moves. Press n for a new game.", state.Player(state.Status.Winner).Color, state.Moves)
	case state.Status.IsTied():
		return "Tie game. Press n for a new game."
	default:
		return fmt.Sprintf("%s to move.\n%s", state.Player(state.Turn).Color, keysHelp)
	}
}

func resultText(state entity.GameState, result entity.MoveResult) string {
	if result.Status.IsWon() {
		return capitalize(state.Player(result.Status.Winner).Color) + " wins!"
	}
	return "Tie game!"
}

// setupErrorText strips the sentinel prefix so the form shows only the reason.
func setupErrorText(err error) string {
	text := err.Error()
	if i := strings.LastIndex(text, apperror.ErrConfiguration.Error()+": "); i >= 0 {
		text = text[i+len(apperror.ErrConfiguration.Error())+2:]
	}
	return capitalize(text)
}

func capitalize(text string) string {
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:]
}
