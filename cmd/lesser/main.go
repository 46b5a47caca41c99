// Package main is the entry point for the lesser pager.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dshills/lesser/internal/app"
	"github.com/dshills/lesser/internal/config"
	"github.com/dshills/lesser/internal/input/keymap"
	"github.com/dshills/lesser/internal/renderer/backend"
	"github.com/dshills/lesser/internal/source"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// stdinName names piped input in messages and logs.
const stdinName = "<stdin>"

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if opts.showVersion {
		fmt.Printf("lesser %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(config.Options{
		Path:      opts.configPath,
		Required:  opts.configPath != "",
		Overrides: opts.overrides(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, logCloser, err := app.OpenLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logCloser.Close()

	src, err := openSource(opts.file, os.Stdin)
	if err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer src.Close()

	userKeys, err := cfg.Keymap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	bindings, err := keymap.NewDefaultRegistry(userKeys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	terminal, err := backend.NewTerminal()
	if err != nil {
		logger.Error("creating terminal: %v", err)
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	signals, stopSignals := app.NotifySignals()
	defer stopSignals()

	application, err := app.New(src, app.Options{
		Name:      src.Name(),
		Backend:   terminal,
		Keymap:    bindings,
		QueueSize: cfg.Pager.QueueSize,
		Bell:      cfg.Pager.Bell,
		Signals:   signals,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := application.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// cliOptions holds the parsed command line.
type cliOptions struct {
	configPath  string
	logLevel    string
	logFile     string
	showVersion bool
	file        string

	// set records the flags given explicitly, so that only those
	// override the configuration file.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("lesser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (disabled when empty)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "lesser - a terminal pager\n\n")
		fmt.Fprintf(stderr, "Usage: lesser [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  lesser notes.txt            Page a file\n")
		fmt.Fprintf(stderr, "  git log | lesser            Page piped input\n")
		fmt.Fprintf(stderr, "  lesser -log-file /tmp/l.log -log-level debug big.log\n")
		fmt.Fprintf(stderr, "\nKeys: q quit, j/k line, Space/b page, g/G start/end, Left/Right pan\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "Error: only one file can be paged at a time\n")
		fs.Usage()
		return opts, errors.New("too many arguments")
	}

	if opts.set["log-level"] {
		switch opts.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			return opts, errors.New("invalid log level")
		}
	}

	return opts, nil
}

// overrides returns the configuration layer set by flags.
func (o cliOptions) overrides() map[string]any {
	logSection := map[string]any{}
	if o.set["log-level"] {
		logSection["level"] = o.logLevel
	}
	if o.set["log-file"] {
		logSection["file"] = o.logFile
	}
	if len(logSection) == 0 {
		return nil
	}
	return map[string]any{"log": logSection}
}

// openSource maps the named file, or drains stdin when it is not a terminal.
func openSource(path string, stdin *os.File) (*source.Source, error) {
	if path != "" {
		return source.Open(path)
	}
	if stdin == nil || term.IsTerminal(int(stdin.Fd())) {
		return nil, app.ErrMissingInput
	}
	src, err := source.FromReader(stdinName, stdin, "")
	if err != nil {
		return nil, &app.InitError{Component: "stdin", Err: err}
	}
	return src, nil
}
