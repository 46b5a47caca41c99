// Package loader reads configuration layers into generic maps.
//
// The TOML loader parses configuration files and the environment loader
// turns prefixed environment variables into the same nested map shape, so
// that layers can be combined with DeepMerge before decoding.
package loader

import (
	"io/fs"
	"os"
)

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// LoadAll loads each layer in order and deep-merges it over base, so later
// layers win. Layers that report a missing source (nil, nil) are skipped.
func LoadAll(base map[string]any, layers ...Loader) (map[string]any, error) {
	merged := Clone(base)
	for _, l := range layers {
		m, err := l.Load()
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		merged = DeepMerge(merged, m)
	}
	return merged, nil
}

// FileSystem is an abstraction for file system operations.
// testing/fstest.MapFS satisfies it.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}
