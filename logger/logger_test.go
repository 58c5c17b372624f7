package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output stdout, got %s", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfig_Validate_Success(t *testing.T) {
	cfg := &Config{Level: "debug", Format: "json", Output: "stderr"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestConfig_Validate_BadLevel(t *testing.T) {
	cfg := &Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestConfig_Validate_BadFormat(t *testing.T) {
	cfg := &Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{Level: "nope", Format: "json", Output: "stdout"}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger instance")
	}
}

func TestLogger_WithComponent(t *testing.T) {
	l := NewDefault("test")
	cl := l.WithComponent("resolver")
	if cl == l {
		t.Error("WithComponent should return a new logger")
	}
}

func TestFields_Pairs(t *testing.T) {
	m := Fields("realm", "demo", "client_id", "app")
	if m["realm"] != "demo" {
		t.Errorf("expected realm=demo, got %v", m["realm"])
	}
	if m["client_id"] != "app" {
		t.Errorf("expected client_id=app, got %v", m["client_id"])
	}
}

func TestFields_OddArgsIgnored(t *testing.T) {
	m := Fields("key", "value", "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 field, got %d", len(m))
	}
}

func TestGetGlobalLogger_LazyInit(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected lazily created global logger")
	}
}
