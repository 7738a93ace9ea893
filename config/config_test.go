package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/config"
)

func TestLoad_DefaultsWithoutPath(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Manifest != "manifest.yaml" || cfg.Output != "out" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if _, ok := cfg.UnknownPolicy(); ok {
		t.Fatalf("defaults should not override the unknown policy")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join("testdata", "gocomp.yaml")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := filepath.Join("testdata", "components"); len(cfg.Components) != 1 || cfg.Components[0] != want {
		t.Fatalf("components not resolved against the config dir: %v", cfg.Components)
	}
	if cfg.Manifest != filepath.Join("testdata", "manifest.yaml") {
		t.Fatalf("unexpected manifest %s", cfg.Manifest)
	}
	if cfg.Output != "/tmp/gocomp-out" {
		t.Fatalf("absolute output should be kept: %s", cfg.Output)
	}
	if cfg.Indent != "\t" || !cfg.Nested || !cfg.KeepGoing || cfg.Language != "ja" {
		t.Fatalf("unexpected settings %+v", cfg)
	}
	if p, ok := cfg.UnknownPolicy(); !ok || p != gocomp.UnknownStrip {
		t.Fatalf("expected strip override, got %v %v", p, ok)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.UnknownProperties = "maybe"
	cfg.Language = "fr"
	cfg.Indent = "--"
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected errors")
	}
	for _, field := range []string{"logging.level", "logging.format", "unknown_properties", "language", "indent"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s in %v", field, err)
		}
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("language: fr\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestResolve(t *testing.T) {
	t.Setenv(config.EnvVar, "from-env.yaml")
	if got := config.Resolve("flag.yaml"); got != "flag.yaml" {
		t.Fatalf("flag should win, got %s", got)
	}
	if got := config.Resolve(""); got != "from-env.yaml" {
		t.Fatalf("expected env value, got %s", got)
	}
}
