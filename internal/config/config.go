package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/lesser/internal/command"
	"github.com/dshills/lesser/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "LESSER_"

// Config is the decoded, validated configuration.
type Config struct {
	Pager PagerConfig       `toml:"pager"`
	Log   LogConfig         `toml:"log"`
	Keys  map[string]string `toml:"keys"`
}

// PagerConfig holds the [pager] section.
type PagerConfig struct {
	// QueueSize is the capacity of the command queue.
	QueueSize int `toml:"queue_size"`

	// Bell rings the terminal bell when a command changes nothing.
	Bell bool `toml:"bell"`
}

// LogConfig holds the [log] section.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`

	// File receives log output. Empty disables logging.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pager: PagerConfig{
			QueueSize: command.DefaultQueueSize,
			Bell:      true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Keys: map[string]string{},
	}
}

// Options controls where Load reads from.
type Options struct {
	// Path is the configuration file. Empty means DefaultPath.
	Path string

	// Required makes a missing file an error. It is set when the path
	// was given explicitly.
	Required bool

	// FS reads the configuration file. Nil means the OS file system.
	FS loader.FileSystem

	// Environ lists the environment. Nil means os.Environ.
	Environ func() []string

	// Overrides is the highest layer, typically built from flags.
	Overrides map[string]any
}

// DefaultPath returns the per-user configuration file location, or an
// empty string when no configuration directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lesser", "config.toml")
}

// Load builds the configuration from defaults, the file, the environment
// and opts.Overrides, in increasing priority.
func Load(opts Options) (*Config, error) {
	var layers []loader.Loader

	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		fsys := opts.FS
		if fsys == nil {
			fsys = loader.DefaultFS()
		}
		l := loader.NewTOMLLoaderWithFS(fsys, path)
		if opts.Required {
			l.Required()
		}
		layers = append(layers, l)
	}

	env := loader.NewEnvLoader(EnvPrefix, "pager", "log")
	if opts.Environ != nil {
		env.WithEnviron(opts.Environ)
	}
	layers = append(layers, env)

	merged, err := loader.LoadAll(defaultMap(), layers...)
	if err != nil {
		return nil, err
	}
	merged = loader.DeepMerge(merged, loader.Clone(opts.Overrides))

	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and the key bindings.
func (c *Config) Validate() error {
	if c.Pager.QueueSize < 1 {
		return &ValidationError{Field: "pager.queue_size", Message: "must be at least 1", Value: c.Pager.QueueSize}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Field: "log.level", Message: "must be debug, info, warn or error", Value: c.Log.Level}
	}

	if _, err := c.Keymap(); err != nil {
		return &ValidationError{Field: "keys", Message: err.Error(), Err: err}
	}
	return nil
}

// defaultMap returns Default as a layer for merging.
func defaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"pager": map[string]any{
			"queue_size": int64(d.Pager.QueueSize),
			"bell":       d.Pager.Bell,
		},
		"log": map[string]any{
			"level": d.Log.Level,
			"file":  d.Log.File,
		},
	}
}

// decode turns the merged map into a Config, rejecting unknown settings.
func decode(merged map[string]any) (*Config, error) {
	data, err := toml.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encoding merged config: %w", err)
	}

	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) && len(missing.Errors) > 0 {
			return nil, &ValidationError{
				Field:   strings.Join(missing.Errors[0].Key(), "."),
				Message: "not a known setting",
				Err:     ErrUnknownSetting,
			}
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			return nil, &ValidationError{
				Field:   strings.Join(derr.Key(), "."),
				Message: derr.Error(),
				Err:     ErrTypeMismatch,
			}
		}
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}
	return cfg, nil
}
