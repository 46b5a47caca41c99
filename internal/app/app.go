// Package app wires the pager together: it owns the terminal backend, the
// command queue and the scroll state, and runs the event loop that turns
// commands into drawn pages.
package app

import (
	"context"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/lesser/internal/command"
	"github.com/dshills/lesser/internal/input/keymap"
	"github.com/dshills/lesser/internal/pager"
	"github.com/dshills/lesser/internal/renderer"
	"github.com/dshills/lesser/internal/renderer/backend"
	"github.com/dshills/lesser/internal/scroll"
)

// Sink realizes event loop results on screen.
type Sink interface {
	// Draw clears the screen and draws text at the origin.
	Draw(text string)
	// Unchanged reports a command that produced no new page.
	Unchanged()
	// Sync makes the next Draw repaint the whole terminal.
	Sync()
}

// Options configures the application.
type Options struct {
	// Name identifies the input in errors and logs.
	Name string

	// Backend is the terminal backend. Required.
	Backend backend.Backend

	// Keymap resolves key presses. Nil means the default bindings.
	Keymap *keymap.Registry

	// QueueSize is the command queue capacity. Zero means command.DefaultQueueSize.
	QueueSize int

	// Bell rings the terminal bell on zero-progress results.
	Bell bool

	// Signals delivers OS signals to translate into commands. May be nil.
	Signals <-chan os.Signal

	// Logger receives diagnostics. Nil disables logging.
	Logger *Logger
}

// Application is the pager: one consumer owning the scroll state, fed by
// the key and signal producers through the command queue.
type Application struct {
	name    string
	backend backend.Backend
	sink    Sink
	reader  *pager.Reader
	scroll  *scroll.Handler
	keymap  *keymap.Registry
	queue   *command.Queue
	signals <-chan os.Signal
	logger  *Logger

	// State
	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
}

// New creates an application paging src.
func New(src pager.Source, opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, &InitError{Component: "backend", Err: ErrNoBackend}
	}

	km := opts.Keymap
	if km == nil {
		var err error
		if km, err = keymap.NewDefaultRegistry(); err != nil {
			return nil, &InitError{Component: "keymap", Err: err}
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = NewNullLogger()
	}

	reader := pager.NewReader(src)
	return &Application{
		name:    opts.Name,
		backend: opts.Backend,
		sink:    renderer.New(opts.Backend, renderer.Options{Bell: opts.Bell}),
		reader:  reader,
		scroll:  scroll.NewHandler(reader),
		keymap:  km,
		queue:   command.NewQueue(opts.QueueSize),
		signals: opts.Signals,
		logger:  logger,
		done:    make(chan struct{}),
	}, nil
}

// Run initializes the terminal, draws the first page and processes
// commands until an exit command, Shutdown, or cancellation of ctx. Paging
// errors are fatal and returned as *OperationError.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.backend.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.readKeys(ctx)
	}()

	if app.signals != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.forwardSignals(ctx, app.signals)
		}()
	}

	app.logger.WithComponent("app").Info("paging %s", app.displayName())
	err := app.eventLoop(ctx)

	// Shutting the backend down unblocks the key producer.
	cancel()
	app.backend.Shutdown()
	wg.Wait()

	if err != nil {
		app.logger.WithComponent("app").Error("%v", err)
	}
	return err
}

// Shutdown stops a running event loop. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() { close(app.done) })
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Position returns the current view position. It must not be called while
// Run is active.
func (app *Application) Position() scroll.Position {
	return app.scroll.Position()
}

func (app *Application) displayName() string {
	if app.name == "" {
		return "<input>"
	}
	return app.name
}
