package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/driftboard/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultSpacing = 60.0
	cfg.Theme = "dark"
	cfg.AutoSaveInterval = 5
	cfg.RecentBoards = []string{"/tmp/sprint.board", "/tmp/retro.board"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultSpacing != 60.0 {
		t.Errorf("expected DefaultSpacing=60.0, got %f", loaded.DefaultSpacing)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.AutoSaveInterval != 5 {
		t.Errorf("expected AutoSaveInterval=5, got %d", loaded.AutoSaveInterval)
	}
	if len(loaded.RecentBoards) != 2 {
		t.Errorf("expected 2 recent boards, got %d", len(loaded.RecentBoards))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultSpacing != defaults.DefaultSpacing {
		t.Errorf("expected default spacing %f, got %f", defaults.DefaultSpacing, cfg.DefaultSpacing)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadAppConfigNilRecentBoards(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := []byte(`{"default_spacing":40,"theme":"light","recent_boards":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentBoards == nil {
		t.Error("RecentBoards should not be nil after loading")
	}
}

func TestAddRecentBoard(t *testing.T) {
	cfg := model.DefaultAppConfig()

	AddRecentBoard(&cfg, "/tmp/a.board")
	AddRecentBoard(&cfg, "/tmp/b.board")
	AddRecentBoard(&cfg, "/tmp/a.board") // re-open moves to front

	if len(cfg.RecentBoards) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(cfg.RecentBoards))
	}
	if cfg.RecentBoards[0] != "/tmp/a.board" {
		t.Errorf("expected most recent first, got %v", cfg.RecentBoards)
	}

	for i := 0; i < 15; i++ {
		AddRecentBoard(&cfg, filepath.Join("/tmp", string(rune('a'+i))+".board"))
	}
	if len(cfg.RecentBoards) != 10 {
		t.Errorf("recent list should cap at 10, got %d", len(cfg.RecentBoards))
	}
}
