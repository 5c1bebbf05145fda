package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	setupHelp = "Colors: names like red or blue, or #rrggbb  |  Tab: next field  |  Enter: confirm"

	minDimension = 4
	maxDimension = 12
)

// SetupForm lets the players pick their colors and the board size before a game.
type SetupForm struct {
	form     *tview.Form
	message  *tview.TextView
	flex     *tview.Flex
	onStart  func(entity.GameSettings)
	onCancel func()

	settings entity.GameSettings
}

func NewSetupForm(conf *config.Config, onCancel func()) *SetupForm {
	setup := &SetupForm{
		onCancel: onCancel,
		settings: entity.GameSettings{
			Height:      clamp(conf.Board.Height, minDimension, maxDimension),
			Width:       clamp(conf.Board.Width, minDimension, maxDimension),
			FirstColor:  conf.Players.First,
			SecondColor: conf.Players.Second,
		},
	}

	dimensions := make([]string, 0, maxDimension-minDimension+1)
	for size := minDimension; size <= maxDimension; size++ {
		dimensions = append(dimensions, strconv.Itoa(size))
	}

	form := tview.NewForm()

	form.AddInputField("Player 1 color", setup.settings.FirstColor, 20, nil, func(text string) {
		setup.settings.FirstColor = text
	})

	form.AddInputField("Player 2 color", setup.settings.SecondColor, 20, nil, func(text string) {
		setup.settings.SecondColor = text
	})

	form.AddDropDown("Rows", dimensions, setup.settings.Height-minDimension, func(_ string, index int) {
		setup.settings.Height = index + minDimension
	})

	form.AddDropDown("Columns", dimensions, setup.settings.Width-minDimension, func(_ string, index int) {
		setup.settings.Width = index + minDimension
	})

	form.AddButton("Start Game", setup.submit)
	form.AddButton("Quit", func() {
		if setup.onCancel != nil {
			setup.onCancel()
		}
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(tcell.ColorDarkCyan)
	form.SetButtonTextColor(tcell.ColorWhite)

	setup.form = form
	setup.message = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	setup.ClearError()

	setup.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(setup.message, 1, 0, false)

	return setup
}

// Primitive returns the form together with its message line.
func (that *SetupForm) Primitive() tview.Primitive {
	return that.flex
}

// SetStartFunc sets the handler called with the chosen settings when the form is submitted.
func (that *SetupForm) SetStartFunc(onStart func(entity.GameSettings)) {
	that.onStart = onStart
}

// SetError shows a problem with the settings below the form.
func (that *SetupForm) SetError(text string) {
	that.message.SetTextColor(tcell.ColorRed)
	that.message.SetText(text)
}

// ClearError puts the help line back.
func (that *SetupForm) ClearError() {
	that.message.SetTextColor(tcell.ColorGray)
	that.message.SetText(setupHelp)
}

func (that *SetupForm) submit() {
	settings := that.settings
	settings.FirstColor = strings.TrimSpace(settings.FirstColor)
	settings.SecondColor = strings.TrimSpace(settings.SecondColor)

	for _, color := range []string{settings.FirstColor, settings.SecondColor} {
		if color != "" && lookupColor(color) == tcell.ColorDefault {
			that.SetError(fmt.Sprintf("Unknown color %q", color))
			return
		}
	}

	if that.onStart != nil {
		that.onStart(settings)
	}
}
