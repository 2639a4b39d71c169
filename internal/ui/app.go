package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/driftboard/internal/engine"
	"github.com/piwi3910/driftboard/internal/export"
	boardimporter "github.com/piwi3910/driftboard/internal/importer"
	"github.com/piwi3910/driftboard/internal/model"
	"github.com/piwi3910/driftboard/internal/project"
	"github.com/piwi3910/driftboard/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window     fyne.Window
	board      model.Board
	sizes      model.SizeTable
	categories model.CategoryTable
	tabs       *container.AppTabs

	// Persisted preferences and the paths they live at
	appConfig     model.AppConfig
	templates     model.TemplateStore
	configPath    string
	templatesPath string

	// UI references for dynamic updates
	boardContainer *fyne.Container
	itemsContainer *fyne.Container
	zonesContainer *fyne.Container
}

func NewApp(window fyne.Window) *App {
	appConfig, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		appConfig = model.DefaultAppConfig()
	}
	templatesPath, err := project.DefaultTemplatePath()
	if err != nil {
		templatesPath = filepath.Join(project.DefaultConfigDir(), "templates.json")
	}
	templates, err := project.LoadTemplates(templatesPath)
	if err != nil {
		templates = model.NewTemplateStore()
	}

	a := &App{
		window:        window,
		sizes:         model.DefaultSizes(),
		categories:    model.DefaultCategories(),
		appConfig:     appConfig,
		templates:     templates,
		configPath:    project.DefaultConfigPath(),
		templatesPath: templatesPath,
	}
	a.board = model.NewBoard()
	a.appConfig.ApplyToConfig(&a.board.Config)
	a.applyThemePreference()
	return a
}

// newEngine builds a layout engine from the board's current settings.
func (a *App) newEngine() *engine.Engine {
	return engine.New(a.board.Config, a.sizes)
}

// SetupMenus creates the native menu bar for the application. It is
// called again whenever the recent-boards list changes so the submenu
// stays current.
func (a *App) SetupMenus() {
	recentItem := fyne.NewMenuItem("Open Recent", nil)
	recentItem.ChildMenu = a.buildRecentMenu()

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Board", func() {
			a.newBoard()
		}),
		fyne.NewMenuItem("New from Template...", func() {
			a.showNewFromTemplateDialog()
		}),
		fyne.NewMenuItem("Open Board...", func() {
			a.loadBoard()
		}),
		recentItem,
		fyne.NewMenuItem("Save Board...", func() {
			a.saveBoard()
		}),
		fyne.NewMenuItem("Save as Template...", func() {
			a.showSaveTemplateDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Items from CSV...", func() {
			a.importCSV()
		}),
		fyne.NewMenuItem("Import Items from Excel...", func() {
			a.importExcel()
		}),
		fyne.NewMenuItem("Import Zones from DXF...", func() {
			a.importZonesDXF()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Board PDF...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Export Item Labels...", func() {
			a.exportLabels()
		}),
		fyne.NewMenuItem("Export Manifest (Excel)...", func() {
			a.exportManifest()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Clear All Items", func() {
			a.board.Items = nil
			a.refreshAll()
		}),
		fyne.NewMenuItem("Clear All Zones", func() {
			a.board.Containers = nil
			a.refreshAll()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Arrange Board", func() {
			a.runArrange()
			a.tabs.SelectIndex(0) // Switch to Board tab
		}),
		fyne.NewMenuItem("Compare Strategies", func() {
			a.showCompareDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export All Data...", func() {
			a.exportAllData()
		}),
		fyne.NewMenuItem("Import All Data...", func() {
			a.importAllData()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Driftboard",
		"Driftboard — Infinite Canvas Board\n\n"+
			"A cross-platform desktop application for organizing\n"+
			"notes, todos, and media widgets on a spatial canvas.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	boardTab := container.NewTabItem("Board", a.buildBoardPanel())
	itemsTab := container.NewTabItem("Items", a.buildItemsPanel())
	zonesTab := container.NewTabItem("Zones", a.buildZonesPanel())
	settingsTab := container.NewTabItem("Settings", a.buildSettingsPanel())

	a.tabs = container.NewAppTabs(boardTab, itemsTab, zonesTab, settingsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

func (a *App) refreshAll() {
	a.refreshBoard()
	a.refreshItemsList()
	a.refreshZonesList()
}

// ─── Board Panel ───────────────────────────────────────────

func (a *App) buildBoardPanel() fyne.CanvasObject {
	a.boardContainer = container.NewStack()
	a.refreshBoard()

	arrangeBtn := widget.NewButtonWithIcon("Arrange", theme.ViewRefreshIcon(), func() {
		a.runArrange()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Board", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			arrangeBtn,
		),
		nil, nil, nil,
		a.boardContainer,
	)
}

func (a *App) refreshBoard() {
	if a.boardContainer == nil {
		return
	}
	a.boardContainer.RemoveAll()

	if len(a.board.Items) == 0 && len(a.board.Containers) == 0 {
		a.boardContainer.Add(widget.NewLabel("Empty board. Add zones and items, then click Arrange."))
		a.boardContainer.Refresh()
		return
	}

	bc := widgets.NewBoardCanvas(&a.board, a.newEngine(), 900, 600)
	a.boardContainer.Add(container.NewScroll(bc))
	a.boardContainer.Refresh()
}

// ─── Items Panel ───────────────────────────────────────────

func (a *App) buildItemsPanel() fyne.CanvasObject {
	a.itemsContainer = container.NewVBox()
	a.refreshItemsList()

	addBtn := widget.NewButtonWithIcon("Add Item", theme.ContentAddIcon(), func() {
		a.showAddItemDialog()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Board Items", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.itemsContainer),
	)
}

func (a *App) refreshItemsList() {
	if a.itemsContainer == nil {
		return
	}
	a.itemsContainer.RemoveAll()

	if len(a.board.Items) == 0 {
		a.itemsContainer.Add(widget.NewLabel("No items yet. Click 'Add Item' to begin."))
		return
	}

	header := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Type", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Size", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Zone", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.itemsContainer.Add(header)
	a.itemsContainer.Add(widget.NewSeparator())

	for i := range a.board.Items {
		idx := i // capture
		item := a.board.Items[idx]
		size := a.sizes.Resolve(item)
		row := container.NewGridWithColumns(6,
			widget.NewLabel(item.Label),
			widget.NewLabel(item.TypeTag),
			widget.NewLabel(fmt.Sprintf("%.0f x %.0f", size.Width, size.Height)),
			widget.NewLabel(a.zoneLabelFor(item.ContainerID)),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditItemDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.board.Items = append(a.board.Items[:idx], a.board.Items[idx+1:]...)
				a.refreshItemsList()
				a.refreshBoard()
			}),
		)
		a.itemsContainer.Add(row)
	}
}

func (a *App) zoneLabelFor(containerID string) string {
	if containerID == "" {
		return "-"
	}
	for _, c := range a.board.Containers {
		if c.ID == containerID {
			return c.Label
		}
	}
	return containerID
}

func (a *App) showAddItemDialog() {
	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("Item name")
	labelEntry.SetText(fmt.Sprintf("Item %d", len(a.board.Items)+1))

	typeSelect := widget.NewSelect(a.sizes.TypeTags(), nil)
	typeSelect.SetSelected("note")

	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("Leave empty for type default")

	heightEntry := widget.NewEntry()
	heightEntry.SetPlaceHolder("Leave empty for type default")

	form := dialog.NewForm("Add Item", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Type", typeSelect),
			widget.NewFormItem("Width", widthEntry),
			widget.NewFormItem("Height", heightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			if typeSelect.Selected == "" {
				dialog.ShowError(fmt.Errorf("an item needs a type"), a.window)
				return
			}

			item := model.NewItem(labelEntry.Text, typeSelect.Selected)
			if widthEntry.Text != "" || heightEntry.Text != "" {
				w, werr := strconv.ParseFloat(widthEntry.Text, 64)
				h, herr := strconv.ParseFloat(heightEntry.Text, 64)
				if werr != nil || herr != nil || w <= 0 || h <= 0 {
					dialog.ShowError(fmt.Errorf("width and height must be > 0"), a.window)
					return
				}
				item.Size = &model.Size2D{Width: w, Height: h}
			}

			a.board.Items = append(a.board.Items, item)
			a.refreshItemsList()
			a.refreshBoard()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

func (a *App) showEditItemDialog(idx int) {
	item := a.board.Items[idx]

	labelEntry := widget.NewEntry()
	labelEntry.SetText(item.Label)

	typeSelect := widget.NewSelect(a.sizes.TypeTags(), nil)
	typeSelect.SetSelected(item.TypeTag)

	widthEntry := widget.NewEntry()
	heightEntry := widget.NewEntry()
	if item.Size != nil {
		widthEntry.SetText(fmt.Sprintf("%.0f", item.Size.Width))
		heightEntry.SetText(fmt.Sprintf("%.0f", item.Size.Height))
	}

	form := dialog.NewForm("Edit Item", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Type", typeSelect),
			widget.NewFormItem("Width", widthEntry),
			widget.NewFormItem("Height", heightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			a.board.Items[idx].Label = labelEntry.Text
			a.board.Items[idx].TypeTag = typeSelect.Selected
			if widthEntry.Text == "" && heightEntry.Text == "" {
				a.board.Items[idx].Size = nil
			} else {
				w, werr := strconv.ParseFloat(widthEntry.Text, 64)
				h, herr := strconv.ParseFloat(heightEntry.Text, 64)
				if werr != nil || herr != nil || w <= 0 || h <= 0 {
					dialog.ShowError(fmt.Errorf("width and height must be > 0"), a.window)
					return
				}
				a.board.Items[idx].Size = &model.Size2D{Width: w, Height: h}
			}
			a.refreshItemsList()
			a.refreshBoard()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

// ─── Zones Panel ───────────────────────────────────────────

func (a *App) buildZonesPanel() fyne.CanvasObject {
	a.zonesContainer = container.NewVBox()
	a.refreshZonesList()

	addBtn := widget.NewButtonWithIcon("Add Zone", theme.ContentAddIcon(), func() {
		a.showAddZoneDialog()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Board Zones", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.zonesContainer),
	)
}

func (a *App) refreshZonesList() {
	if a.zonesContainer == nil {
		return
	}
	a.zonesContainer.RemoveAll()

	if len(a.board.Containers) == 0 {
		a.zonesContainer.Add(widget.NewLabel("No zones defined. Click 'Add Zone' to begin."))
		return
	}

	header := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Position", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Size", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Categories", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.zonesContainer.Add(header)
	a.zonesContainer.Add(widget.NewSeparator())

	for i := range a.board.Containers {
		idx := i
		c := a.board.Containers[idx]
		row := container.NewGridWithColumns(6,
			widget.NewLabel(c.Label),
			widget.NewLabel(fmt.Sprintf("(%.0f, %.0f)", c.Position.X, c.Position.Y)),
			widget.NewLabel(fmt.Sprintf("%.0f x %.0f", c.Size.Width, c.Size.Height)),
			widget.NewLabel(strings.Join(c.AcceptedCategories, ", ")),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditZoneDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.board.Containers = append(a.board.Containers[:idx], a.board.Containers[idx+1:]...)
				a.refreshZonesList()
				a.refreshBoard()
			}),
		)
		a.zonesContainer.Add(row)
	}
}

// zoneForm shows an add/edit dialog and calls apply with the parsed values.
func (a *App) zoneForm(title, confirm string, c model.Container, apply func(label string, x, y, w, h float64, cats []string)) {
	labelEntry := widget.NewEntry()
	labelEntry.SetText(c.Label)

	xEntry := widget.NewEntry()
	xEntry.SetText(fmt.Sprintf("%.0f", c.Position.X))
	yEntry := widget.NewEntry()
	yEntry.SetText(fmt.Sprintf("%.0f", c.Position.Y))
	wEntry := widget.NewEntry()
	wEntry.SetText(fmt.Sprintf("%.0f", c.Size.Width))
	hEntry := widget.NewEntry()
	hEntry.SetText(fmt.Sprintf("%.0f", c.Size.Height))

	catsEntry := widget.NewEntry()
	catsEntry.SetPlaceHolder("productivity, creative, media")
	catsEntry.SetText(strings.Join(c.AcceptedCategories, ", "))

	form := dialog.NewForm(title, confirm, "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", labelEntry),
			widget.NewFormItem("X", xEntry),
			widget.NewFormItem("Y", yEntry),
			widget.NewFormItem("Width", wEntry),
			widget.NewFormItem("Height", hEntry),
			widget.NewFormItem("Categories", catsEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			x, _ := strconv.ParseFloat(xEntry.Text, 64)
			y, _ := strconv.ParseFloat(yEntry.Text, 64)
			w, werr := strconv.ParseFloat(wEntry.Text, 64)
			h, herr := strconv.ParseFloat(hEntry.Text, 64)
			if werr != nil || herr != nil || w <= 0 || h <= 0 {
				dialog.ShowError(fmt.Errorf("width and height must be > 0"), a.window)
				return
			}

			var cats []string
			for _, cat := range strings.Split(catsEntry.Text, ",") {
				if trimmed := strings.TrimSpace(cat); trimmed != "" {
					cats = append(cats, trimmed)
				}
			}

			apply(labelEntry.Text, x, y, w, h, cats)
			a.refreshZonesList()
			a.refreshBoard()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(420, 380))
	form.Show()
}

func (a *App) showAddZoneDialog() {
	seed := model.Container{
		Label: fmt.Sprintf("Zone %d", len(a.board.Containers)+1),
		Size:  model.Size2D{Width: 1200, Height: 800},
	}
	a.zoneForm("Add Zone", "Add", seed, func(label string, x, y, w, h float64, cats []string) {
		c := model.NewContainer(label, x, y, w, h)
		c.AcceptedCategories = cats
		a.board.Containers = append(a.board.Containers, c)
	})
}

func (a *App) showEditZoneDialog(idx int) {
	a.zoneForm("Edit Zone", "Save", a.board.Containers[idx], func(label string, x, y, w, h float64, cats []string) {
		c := &a.board.Containers[idx]
		c.Label = label
		c.Position = model.Point2D{X: x, Y: y}
		c.Size = model.Size2D{Width: w, Height: h}
		c.AcceptedCategories = cats
	})
}

// ─── Settings Panel ────────────────────────────────────────

func (a *App) buildSettingsPanel() fyne.CanvasObject {
	cfg := &a.board.Config

	// Helper to create a bound float entry
	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	strategySelect := widget.NewSelect([]string{"Occupancy (Dense)", "Grid (Uniform)", "Flow (Reading Order)"}, func(selected string) {
		switch selected {
		case "Grid (Uniform)":
			cfg.Strategy = model.StrategyGrid
		case "Flow (Reading Order)":
			cfg.Strategy = model.StrategyFlow
		default:
			cfg.Strategy = model.StrategyOccupancy
		}
	})
	switch cfg.Strategy {
	case model.StrategyGrid:
		strategySelect.SetSelected("Grid (Uniform)")
	case model.StrategyFlow:
		strategySelect.SetSelected("Flow (Reading Order)")
	default:
		strategySelect.SetSelected("Occupancy (Dense)")
	}

	packingSection := widget.NewCard("Packing", "", container.NewGridWithColumns(2,
		widget.NewLabel("Strategy"), strategySelect,
		widget.NewLabel("Spacing"), floatEntry(&cfg.Spacing),
		widget.NewLabel("Start Offset X"), floatEntry(&cfg.StartX),
		widget.NewLabel("Start Offset Y"), floatEntry(&cfg.StartY),
		widget.NewLabel("Grid Cell Size"), floatEntry(&cfg.GridCellSize),
	))

	dropSection := widget.NewCard("Drop Placement", "", container.NewGridWithColumns(2,
		widget.NewLabel("Max Search Radius"), floatEntry(&cfg.MaxSearchRadius),
		widget.NewLabel("Max Search Iterations"), intEntry(&cfg.MaxSearchIterations),
	))

	dragSection := widget.NewCard("Drag Feel", "", container.NewGridWithColumns(2,
		widget.NewLabel("Repulsion Constant"), floatEntry(&cfg.RepulsionConstant),
		widget.NewLabel("Damping Fraction"), floatEntry(&cfg.DampingFraction),
	))

	themeSelect := widget.NewSelect([]string{"System", "Light", "Dark"}, func(selected string) {
		a.appConfig.Theme = strings.ToLower(selected)
		a.applyThemePreference()
		a.saveAppConfig()
	})
	switch a.appConfig.Theme {
	case "light":
		themeSelect.SetSelected("Light")
	case "dark":
		themeSelect.SetSelected("Dark")
	default:
		themeSelect.SetSelected("System")
	}

	saveDefaultsBtn := widget.NewButton("Use These Settings for New Boards", func() {
		a.appConfig.DefaultStrategy = cfg.Strategy
		a.appConfig.DefaultSpacing = cfg.Spacing
		a.appConfig.DefaultGridCellSize = cfg.GridCellSize
		a.appConfig.DefaultRepulsionConstant = cfg.RepulsionConstant
		a.appConfig.DefaultDampingFraction = cfg.DampingFraction
		a.saveAppConfig()
		dialog.ShowInformation("Defaults Saved", "New boards will start with these layout settings.", a.window)
	})

	preferencesSection := widget.NewCard("Preferences", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Theme"), themeSelect,
		),
		saveDefaultsBtn,
	))

	return container.NewVScroll(container.NewVBox(
		packingSection,
		dropSection,
		dragSection,
		preferencesSection,
	))
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) runArrange() {
	if len(a.board.Items) == 0 {
		dialog.ShowInformation("Nothing to arrange", "Add at least one item first.", a.window)
		return
	}
	if len(a.board.Containers) == 0 {
		dialog.ShowInformation("No zones", "Add at least one zone first.", a.window)
		return
	}

	eng := a.newEngine()
	result := eng.Arrange(a.board.Items, a.board.Containers, a.categories)
	a.board.Items = result.Items
	a.refreshAll()

	if len(result.Unassigned) > 0 {
		names := make([]string, len(result.Unassigned))
		for i, item := range result.Unassigned {
			names[i] = fmt.Sprintf("%s (%s)", item.Label, item.TypeTag)
		}
		dialog.ShowInformation("Unassigned items",
			fmt.Sprintf("%d items matched no zone:\n\n%s", len(names), strings.Join(names, "\n")),
			a.window)
	}
	if n := result.DegradedCount(); n > 0 {
		dialog.ShowInformation("Zones overfull",
			fmt.Sprintf("%d items did not fit and were placed below their zone.", n),
			a.window)
	}
}

func (a *App) showCompareDialog() {
	if len(a.board.Items) == 0 || len(a.board.Containers) == 0 {
		dialog.ShowInformation("Nothing to compare", "Add items and zones first.", a.window)
		return
	}

	reports := engine.CompareStrategies(a.board.Config, a.sizes, a.board.Items, a.board.Containers, a.categories)

	var lines []string
	for _, r := range reports {
		lines = append(lines, fmt.Sprintf("%s: %.1f%% density, %d overflowed, %d unassigned",
			r.Strategy, r.Density*100, r.DegradedCount, r.UnassignedCount))
	}
	dialog.ShowInformation("Strategy Comparison", strings.Join(lines, "\n"), a.window)
}

func (a *App) saveBoard() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveBoard(path, a.board); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberBoard(path)
	}, a.window)
	d.SetFileName(a.board.Name + ".board")
	d.Show()
}

func (a *App) loadBoard() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openBoardPath(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) openBoardPath(path string) {
	board, err := project.LoadBoard(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.board = board
	a.rememberBoard(path)
	a.refreshAll()
}

// ─── Preferences & Templates ───────────────────────────────

func (a *App) newBoard() {
	a.board = model.NewBoard()
	a.appConfig.ApplyToConfig(&a.board.Config)
	a.refreshAll()
}

// rememberBoard records a path in the recent list, persists the config
// and rebuilds the menu bar so Open Recent reflects it.
func (a *App) rememberBoard(path string) {
	project.AddRecentBoard(&a.appConfig, path)
	a.saveAppConfig()
	a.SetupMenus()
}

func (a *App) buildRecentMenu() *fyne.Menu {
	if len(a.appConfig.RecentBoards) == 0 {
		empty := fyne.NewMenuItem("(no recent boards)", nil)
		empty.Disabled = true
		return fyne.NewMenu("Open Recent", empty)
	}
	items := make([]*fyne.MenuItem, 0, len(a.appConfig.RecentBoards))
	for _, path := range a.appConfig.RecentBoards {
		p := path
		items = append(items, fyne.NewMenuItem(filepath.Base(p), func() {
			a.openBoardPath(p)
		}))
	}
	return fyne.NewMenu("Open Recent", items...)
}

func (a *App) saveAppConfig() {
	if err := project.SaveAppConfig(a.configPath, a.appConfig); err != nil {
		fmt.Printf("could not save app config: %v\n", err)
	}
}

func (a *App) applyThemePreference() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	switch a.appConfig.Theme {
	case "light":
		app.Settings().SetTheme(NewDriftboardThemeWithVariant(theme.VariantLight))
	case "dark":
		app.Settings().SetTheme(NewDriftboardThemeWithVariant(theme.VariantDark))
	default:
		app.Settings().SetTheme(NewDriftboardTheme())
	}
}

// saveBoardTemplate snapshots the current board's zones and settings
// into the template store and persists it.
func (a *App) saveBoardTemplate(name, description string) error {
	tpl := model.NewBoardTemplate(name, description, a.board.Containers, a.board.Config)
	a.templates.Add(tpl)
	return project.SaveTemplates(a.templatesPath, a.templates)
}

func (a *App) showSaveTemplateDialog() {
	if len(a.board.Containers) == 0 {
		dialog.ShowInformation("No zones", "A template captures zones; add at least one first.", a.window)
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.board.Name)
	descEntry := widget.NewEntry()
	descEntry.SetPlaceHolder("Optional description")

	form := dialog.NewForm("Save as Template", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			if nameEntry.Text == "" {
				dialog.ShowError(fmt.Errorf("a template needs a name"), a.window)
				return
			}
			if err := a.saveBoardTemplate(nameEntry.Text, descEntry.Text); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			dialog.ShowInformation("Template Saved",
				fmt.Sprintf("Saved %q with %d zones.", nameEntry.Text, len(a.board.Containers)), a.window)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 220))
	form.Show()
}

func (a *App) showNewFromTemplateDialog() {
	if len(a.templates.Templates) == 0 {
		dialog.ShowInformation("No templates", "Save a board as a template first.", a.window)
		return
	}

	names := make([]string, len(a.templates.Templates))
	for i, t := range a.templates.Templates {
		names[i] = t.Name
	}
	tplSelect := widget.NewSelect(names, nil)
	tplSelect.SetSelected(names[0])

	nameEntry := widget.NewEntry()
	nameEntry.SetText("New Board")

	form := dialog.NewForm("New from Template", "Create", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Template", tplSelect),
			widget.NewFormItem("Board Name", nameEntry),
		},
		func(ok bool) {
			if !ok || tplSelect.SelectedIndex() < 0 {
				return
			}
			tpl := a.templates.Templates[tplSelect.SelectedIndex()]
			a.board = tpl.ToBoard(nameEntry.Text)
			a.refreshAll()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 220))
	form.Show()
}

func (a *App) exportAllData() {
	a.saveWithDialog("driftboard-backup.json", func(path string) error {
		return project.ExportAllData(path, a.appConfig, a.templates)
	})
}

// restoreBackup applies imported settings and templates and persists
// them to the default locations.
func (a *App) restoreBackup(backup project.BackupData) error {
	a.appConfig = backup.Config
	a.templates = backup.Templates
	if err := project.SaveAppConfig(a.configPath, a.appConfig); err != nil {
		return err
	}
	return project.SaveTemplates(a.templatesPath, a.templates)
}

func (a *App) importAllData() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		backup, err := project.ImportAllData(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := a.restoreBackup(backup); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.applyThemePreference()
		a.SetupMenus()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Restored settings and %d templates.", len(a.templates.Templates)), a.window)
	}, a.window)
}

// ─── Export Functions ──────────────────────────────────────

func (a *App) exportPDF() {
	if len(a.board.Containers) == 0 {
		dialog.ShowInformation("No zones", "Add at least one zone before exporting.", a.window)
		return
	}
	a.saveWithDialog(a.board.Name+".pdf", func(path string) error {
		return export.ExportPDF(path, a.board, a.sizes)
	})
}

func (a *App) exportLabels() {
	if len(a.board.Items) == 0 {
		dialog.ShowInformation("No items", "Add at least one item before exporting labels.", a.window)
		return
	}
	a.saveWithDialog(a.board.Name+"-labels.pdf", func(path string) error {
		return export.ExportLabels(path, a.board, a.sizes)
	})
}

func (a *App) exportManifest() {
	a.saveWithDialog(a.board.Name+".xlsx", func(path string) error {
		return export.ExportManifest(path, a.board, a.sizes)
	})
}

func (a *App) saveWithDialog(defaultName string, save func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := save(path); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := boardimporter.ImportCSV(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := boardimporter.ImportExcel(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importZonesDXF() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := boardimporter.ImportZonesDXF(reader.URI().Path())
		if len(result.Errors) > 0 {
			dialog.ShowError(fmt.Errorf("%s", strings.Join(result.Errors, "\n")), a.window)
			return
		}
		a.board.Containers = append(a.board.Containers, result.Containers...)
		a.refreshZonesList()
		a.refreshBoard()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Imported %d zones.", len(result.Containers)), a.window)
	}, a.window)
}

func (a *App) handleImportResult(result boardimporter.ImportResult) {
	// Show errors if any
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	// Just log warnings, don't block
	if len(result.Warnings) > 0 {
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}

	if len(result.Items) > 0 {
		a.board.Items = append(a.board.Items, result.Items...)
		a.refreshItemsList()
		a.refreshBoard()

		msg := fmt.Sprintf("Successfully imported %d items.", len(result.Items))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}
