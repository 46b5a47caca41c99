package app

import (
	"context"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/dshills/lesser/internal/command"
	"github.com/dshills/lesser/internal/input/key"
	"github.com/dshills/lesser/internal/renderer/backend"
)

// exitSignals end the pager. Terminal resizes are reported by the backend.
var exitSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// NotifySignals relays the signals the pager handles to a new channel.
// The returned function stops delivery.
func NotifySignals() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, exitSignals...)
	return ch, func() { signal.Stop(ch) }
}

// readKeys turns backend events into commands until the backend closes or
// ctx is done. Unbound keys produce no command.
func (app *Application) readKeys(ctx context.Context) {
	log := app.logger.WithComponent("keys")
	defer app.recoverProducer("keys")

	for {
		ev := app.backend.PollEvent()

		var cmd command.Command
		switch ev.Type {
		case backend.EventClosed:
			return
		case backend.EventResize:
			log.Debug("resize %dx%d", ev.Width, ev.Height)
			cmd = command.Reload
		case backend.EventKey:
			keyEv := convertToKeyEvent(ev)
			c, ok := app.keymap.Lookup(keyEv)
			if !ok {
				log.Debug("unbound key %s", keyEv)
				continue
			}
			cmd = c
		default:
			continue
		}

		if err := app.queue.Send(ctx, cmd); err != nil {
			return
		}
	}
}

// forwardSignals turns OS signals into commands until ctx is done or sigs
// is closed.
func (app *Application) forwardSignals(ctx context.Context, sigs <-chan os.Signal) {
	log := app.logger.WithComponent("signals")
	defer app.recoverProducer("signals")

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigs:
			if !ok {
				return
			}
			cmd := signalCommand(sig)
			log.Debug("signal %v -> %s", sig, cmd)
			if err := app.queue.Send(ctx, cmd); err != nil {
				return
			}
		}
	}
}

// signalCommand maps a signal to the command it requests.
func signalCommand(sig os.Signal) command.Command {
	for _, s := range exitSignals {
		if s == sig {
			return command.Exit
		}
	}
	return command.None
}

// recoverProducer logs a producer panic and asks the event loop to exit,
// so the terminal is restored instead of the process dying in raw mode.
func (app *Application) recoverProducer(name string) {
	r := recover()
	if r == nil {
		return
	}
	err := &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
	app.logger.WithComponent(name).Error("%v", err)
	app.Shutdown()
}

// convertToKeyEvent converts a backend.Event to a key.Event.
func convertToKeyEvent(ev backend.Event) key.Event {
	mods := key.ModNone
	if ev.Mod.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if ev.Mod.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if ev.Mod.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}

	if ev.Key == backend.KeyRune {
		return key.NewRuneEvent(ev.Rune, mods).Normalize()
	}
	return key.NewSpecialEvent(mapBackendKey(ev.Key), mods).Normalize()
}

// backendKeys maps backend keys to key.Key.
var backendKeys = map[backend.Key]key.Key{
	backend.KeyEscape:    key.KeyEscape,
	backend.KeyEnter:     key.KeyEnter,
	backend.KeyTab:       key.KeyTab,
	backend.KeyBackspace: key.KeyBackspace,
	backend.KeyDelete:    key.KeyDelete,
	backend.KeyInsert:    key.KeyInsert,
	backend.KeyHome:      key.KeyHome,
	backend.KeyEnd:       key.KeyEnd,
	backend.KeyPageUp:    key.KeyPageUp,
	backend.KeyPageDown:  key.KeyPageDown,
	backend.KeyUp:        key.KeyUp,
	backend.KeyDown:      key.KeyDown,
	backend.KeyLeft:      key.KeyLeft,
	backend.KeyRight:     key.KeyRight,
	backend.KeyF1:        key.KeyF1,
	backend.KeyF2:        key.KeyF2,
	backend.KeyF3:        key.KeyF3,
	backend.KeyF4:        key.KeyF4,
	backend.KeyF5:        key.KeyF5,
	backend.KeyF6:        key.KeyF6,
	backend.KeyF7:        key.KeyF7,
	backend.KeyF8:        key.KeyF8,
	backend.KeyF9:        key.KeyF9,
	backend.KeyF10:       key.KeyF10,
	backend.KeyF11:       key.KeyF11,
	backend.KeyF12:       key.KeyF12,
}

// mapBackendKey maps a backend.Key to a key.Key.
func mapBackendKey(bk backend.Key) key.Key {
	if k, ok := backendKeys[bk]; ok {
		return k
	}
	return key.KeyNone
}
