package loader

import "testing"

func environ(vars ...string) func() []string {
	return func() []string { return vars }
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoader("LESSER_", "pager", "log").WithEnviron(environ(
		"LESSER_PAGER_QUEUE_SIZE=50",
		"LESSER_PAGER_BELL=off",
		"LESSER_LOG_FILE=/tmp/lesser.log",
		"LESSER_LOG_LEVEL=debug",
		"LESSER_KEYS_Q=exit",
		"LESSER_CONFIG=/etc/lesser.toml",
		"HOME=/root",
	))

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	pager := cfg["pager"].(map[string]any)
	if pager["queue_size"] != int64(50) {
		t.Errorf("queue_size = %#v, want 50", pager["queue_size"])
	}
	if pager["bell"] != false {
		t.Errorf("bell = %#v, want false", pager["bell"])
	}
	log := cfg["log"].(map[string]any)
	if log["file"] != "/tmp/lesser.log" || log["level"] != "debug" {
		t.Errorf("log = %v", log)
	}
	if _, ok := cfg["keys"]; ok {
		t.Error("unlisted section should be ignored")
	}
	if _, ok := cfg["config"]; ok {
		t.Error("variable without a key should be ignored")
	}
	if len(cfg) != 2 {
		t.Errorf("cfg = %v, want only pager and log", cfg)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"Yes", true},
		{"off", false},
		{"1", int64(1)},
		{"-20", int64(-20)},
		{"0.5", 0.5},
		{"/var/log/x.log", "/var/log/x.log"},
		{"info", "info"},
	}

	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
