package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, filename := range []string{"", filepath.Join(t.TempDir(), "absent.yaml")} {
		cfg, err := Load(filename)
		if err != nil {
			t.Fatalf("Load(%q): %v", filename, err)
		}
		if cfg.EphemerisPath != "" || cfg.Debug {
			t.Errorf("Load(%q): unexpected non-defaults: %+v", filename, cfg)
		}
		if !reflect.DeepEqual(cfg.Zones, DefaultZones) {
			t.Errorf("Load(%q): zones = %v, expected defaults", filename, cfg.Zones)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "ephemeris_path: /data/VSOP87B.ear\nzones:\n  - Europe/Paris\n  - Asia/Dubai\ndebug: true\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EphemerisPath != "/data/VSOP87B.ear" {
		t.Errorf("EphemerisPath = %q", cfg.EphemerisPath)
	}
	if !reflect.DeepEqual(cfg.Zones, []string{"Europe/Paris", "Asia/Dubai"}) {
		t.Errorf("Zones = %v", cfg.Zones)
	}
	if !cfg.Debug {
		t.Error("Debug = false")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("zones: {not a list"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
