package app

import (
	"context"
	"errors"
	"math"

	"github.com/dshills/lesser/internal/command"
	"github.com/dshills/lesser/internal/pager"
)

// eventLoop renders the initial screen, then applies queued commands one
// at a time in arrival order.
func (app *Application) eventLoop(ctx context.Context) error {
	log := app.logger.WithComponent("eventloop")

	rows, cols := app.viewport()
	page, err := app.scroll.InitialScreen(rows, cols)
	if err != nil {
		return NewOperationError("initial-screen", app.displayName(), err)
	}
	if page != nil {
		app.sink.Draw(page.Text)
	} else {
		app.sink.Draw("")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-app.done:
			return nil

		case cmd := <-app.queue.Receive():
			err := app.handleCommand(cmd)
			if errors.Is(err, ErrQuit) {
				log.Debug("exit")
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// handleCommand dispatches cmd to the scroll handler and emits the result.
// Returns ErrQuit if the application should exit.
func (app *Application) handleCommand(cmd command.Command) error {
	if cmd == command.Exit {
		return ErrQuit
	}

	// The viewport is read for every command so resizes apply immediately.
	rows, cols := app.viewport()

	var (
		page *pager.Page
		err  error
	)
	switch cmd {
	case command.ScrollUp:
		page, err = app.scroll.MoveUp(rows, cols)
	case command.ScrollDown:
		page, err = app.scroll.MoveDown(rows, cols)
	case command.ScrollUpPage:
		page, err = app.scroll.MoveUpPage(rows, cols)
	case command.ScrollDownPage:
		page, err = app.scroll.MoveDownPage(rows, cols)
	case command.ScrollLeft:
		page, err = app.scroll.MoveLeft(rows, cols)
	case command.ScrollRight:
		page, err = app.scroll.MoveRight(rows, cols)
	case command.ScrollToBeginning:
		page, err = app.scroll.MoveToBeginning(rows, cols)
	case command.ScrollToEnd:
		page, err = app.scroll.MoveToEnd(rows, cols)
	case command.Reload:
		app.sink.Sync()
		page, err = app.scroll.Reload(rows, cols)
	default:
		return nil
	}
	if err != nil {
		return NewOperationError(cmd.String(), app.displayName(), err)
	}

	pos := app.scroll.Position()
	app.logger.WithComponent("eventloop").Debug("%s: row=%d col=%d viewport=%dx%d redraw=%t",
		cmd, pos.Row, pos.Col, cols, rows, page != nil)

	app.emit(page)
	return nil
}

// emit hands a result to the sink; nil means zero progress.
func (app *Application) emit(page *pager.Page) {
	if page == nil {
		app.sink.Unchanged()
		return
	}
	app.sink.Draw(page.Text)
}

// viewport returns the terminal size as rows and columns.
func (app *Application) viewport() (rows, cols uint16) {
	width, height := app.backend.Size()
	return clampUint16(height), clampUint16(width)
}

func clampUint16(v int) uint16 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(v)
	}
}
