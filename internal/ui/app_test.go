package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/piwi3910/driftboard/internal/model"
	"github.com/piwi3910/driftboard/internal/project"
)

// newTestApp builds an App against the test driver with its config
// files redirected to a temp directory.
func newTestApp(t *testing.T) *App {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	dir := t.TempDir()
	return &App{
		window:        w,
		board:         model.NewBoard(),
		sizes:         model.DefaultSizes(),
		categories:    model.DefaultCategories(),
		appConfig:     model.DefaultAppConfig(),
		templates:     model.NewTemplateStore(),
		configPath:    filepath.Join(dir, "config.json"),
		templatesPath: filepath.Join(dir, "templates.json"),
	}
}

// ─── Recent Boards Tests ───────────────────────────────────

func TestRememberBoardPersistsRecentList(t *testing.T) {
	a := newTestApp(t)

	a.rememberBoard("/boards/alpha.board")
	a.rememberBoard("/boards/beta.board")
	a.rememberBoard("/boards/alpha.board") // re-open moves to front, no duplicate

	if len(a.appConfig.RecentBoards) != 2 {
		t.Fatalf("expected 2 recent boards, got %d", len(a.appConfig.RecentBoards))
	}
	if a.appConfig.RecentBoards[0] != "/boards/alpha.board" {
		t.Errorf("most recent board should lead the list, got %q", a.appConfig.RecentBoards[0])
	}

	// The config is persisted so the list survives restarts.
	loaded, err := project.LoadAppConfig(a.configPath)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if len(loaded.RecentBoards) != 2 {
		t.Errorf("persisted config has %d recent boards, want 2", len(loaded.RecentBoards))
	}
}

func TestBuildRecentMenu(t *testing.T) {
	a := newTestApp(t)

	menu := a.buildRecentMenu()
	if len(menu.Items) != 1 || !menu.Items[0].Disabled {
		t.Error("empty recent list should yield a single disabled entry")
	}

	a.appConfig.RecentBoards = []string{"/boards/alpha.board", "/boards/beta.board"}
	menu = a.buildRecentMenu()
	if len(menu.Items) != 2 {
		t.Fatalf("expected 2 menu items, got %d", len(menu.Items))
	}
	if menu.Items[0].Label != "alpha.board" {
		t.Errorf("menu shows %q, want base name 'alpha.board'", menu.Items[0].Label)
	}
}

// ─── Defaults Tests ────────────────────────────────────────

func TestNewBoardInheritsSavedDefaults(t *testing.T) {
	a := newTestApp(t)
	a.appConfig.DefaultSpacing = 12
	a.appConfig.DefaultStrategy = model.StrategyFlow

	a.newBoard()

	if a.board.Config.Spacing != 12 {
		t.Errorf("Spacing = %v, want 12", a.board.Config.Spacing)
	}
	if a.board.Config.Strategy != model.StrategyFlow {
		t.Errorf("Strategy = %v, want flow", a.board.Config.Strategy)
	}
}

// ─── Template Tests ────────────────────────────────────────

func TestSaveBoardTemplateRoundTrip(t *testing.T) {
	a := newTestApp(t)
	a.board.Containers = []model.Container{
		model.NewContainer("Work", 0, 0, 1600, 900),
	}

	if err := a.saveBoardTemplate("Sprint", "Weekly wall"); err != nil {
		t.Fatalf("saveBoardTemplate failed: %v", err)
	}

	loaded, err := project.LoadTemplates(a.templatesPath)
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}
	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if len(loaded.Templates[0].Containers) != 1 {
		t.Error("template lost its zones")
	}
}

// ─── Backup Tests ──────────────────────────────────────────

func TestRestoreBackupAppliesAndPersists(t *testing.T) {
	a := newTestApp(t)

	cfg := model.DefaultAppConfig()
	cfg.DefaultSpacing = 25
	store := model.NewTemplateStore()
	store.Add(model.NewBoardTemplate("Sprint", "", nil, model.DefaultConfig()))

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	if err := project.ExportAllData(backupPath, cfg, store); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}
	backup, err := project.ImportAllData(backupPath)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if err := a.restoreBackup(backup); err != nil {
		t.Fatalf("restoreBackup failed: %v", err)
	}

	if a.appConfig.DefaultSpacing != 25 {
		t.Errorf("DefaultSpacing = %v, want 25", a.appConfig.DefaultSpacing)
	}
	if len(a.templates.Templates) != 1 {
		t.Errorf("expected 1 restored template, got %d", len(a.templates.Templates))
	}
	if _, err := os.Stat(a.configPath); err != nil {
		t.Errorf("restored config was not persisted: %v", err)
	}
	if _, err := os.Stat(a.templatesPath); err != nil {
		t.Errorf("restored templates were not persisted: %v", err)
	}
}
