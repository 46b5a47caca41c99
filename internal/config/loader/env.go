package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
//
// A variable named <prefix><SECTION>_<KEY> sets section.key, with KEY
// lower-cased and kept in snake case: LESSER_PAGER_QUEUE_SIZE sets
// pager.queue_size.
type EnvLoader struct {
	prefix   string              // Environment variable prefix (e.g., "LESSER_")
	sections map[string]struct{} // Accepted sections; empty accepts all
	environ  func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "LESSER_").
// When sections are given, variables for other sections are ignored.
func NewEnvLoader(prefix string, sections ...string) *EnvLoader {
	l := &EnvLoader{
		prefix:   prefix,
		sections: make(map[string]struct{}, len(sections)),
		environ:  os.Environ,
	}
	for _, s := range sections {
		l.sections[strings.ToLower(s)] = struct{}{}
	}
	return l
}

// WithEnviron replaces the environment source, mainly for tests.
func (l *EnvLoader) WithEnviron(environ func() []string) *EnvLoader {
	l.environ = environ
	return l
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, ok := l.envToPath(name)
		if !ok {
			continue
		}
		setByPath(config, path, parseValue(value))
	}

	return config, nil
}

// envToPath converts LESSER_PAGER_QUEUE_SIZE to pager.queue_size.
func (l *EnvLoader) envToPath(env string) (string, bool) {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))

	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return "", false
	}
	if len(l.sections) > 0 {
		if _, known := l.sections[section]; !known {
			return "", false
		}
	}
	return section + "." + key, true
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Only values with a decimal point are floats.
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
