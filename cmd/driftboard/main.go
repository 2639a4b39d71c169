// Driftboard — Infinite Canvas Board
//
// A cross-platform desktop application for organizing notes, todos, and
// media widgets on a spatial canvas with automatic layout.
//
// Build:
//   go build -o driftboard ./cmd/driftboard
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o driftboard.exe ./cmd/driftboard
//   GOOS=darwin  GOARCH=amd64 go build -o driftboard-darwin ./cmd/driftboard
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/driftboard/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.driftboard")
	application.Settings().SetTheme(ui.NewDriftboardTheme())

	window := application.NewWindow("Driftboard — Infinite Canvas Board")

	appUI := ui.NewApp(window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1400, 800))
	window.CenterOnScreen()

	window.ShowAndRun()
}
