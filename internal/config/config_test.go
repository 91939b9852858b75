package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/loom-ui/loom/internal/errors"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Inspect.Host != DefaultHost || cfg.Inspect.Port != DefaultPort {
		t.Errorf("inspect defaults = %+v", cfg.Inspect)
	}
	if cfg.Snapshots.Dir != DefaultSnapshotDir {
		t.Errorf("snapshot dir = %q", cfg.Snapshots.Dir)
	}
	if cfg.InspectAddress() != "localhost:7410" {
		t.Errorf("InspectAddress = %q", cfg.InspectAddress())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	data := `{
  "name": "demo",
  "inspect": {"host": "0.0.0.0", "port": 9000},
  "snapshots": {"bucket": "snaps", "prefix": "ui/", "region": "eu-west-1"}
}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.InspectAddress() != "0.0.0.0:9000" {
		t.Errorf("InspectAddress = %q", cfg.InspectAddress())
	}
	if cfg.Snapshots.Bucket != "snaps" || cfg.Snapshots.Region != "eu-west-1" {
		t.Errorf("snapshots = %+v", cfg.Snapshots)
	}
	// Unset fields still get defaults.
	if cfg.Snapshots.Dir != DefaultSnapshotDir {
		t.Errorf("snapshot dir = %q", cfg.Snapshots.Dir)
	}
	if cfg.Path() != path {
		t.Errorf("Path = %q", cfg.Path())
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("invalid JSON accepted")
	}
	if !stderrors.Is(err, errors.New("E041")) {
		t.Errorf("err = %v, want code E041", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := New()
	cfg.Name = "saved"
	cfg.Inspect.Port = 8123

	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "saved" || got.Inspect.Port != 8123 {
		t.Errorf("round trip = %+v", got)
	}
}
