package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/recipekit/recipebox/internal/catalog"
	"github.com/recipekit/recipebox/internal/logging"
	"github.com/recipekit/recipebox/internal/platform"
	"github.com/recipekit/recipebox/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.recipekit.recipebox"
	AppName = "Recipe Box"

	WindowWidth  = 420
	WindowHeight = 700
)

func main() {
	if err := logging.Init("info"); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
	}
	defer logging.Sync()

	logging.L().Info("starting", zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	if logo, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(logo)
	}

	// Initialize services
	source := catalog.NewFileSource(platform.AssetSearchPaths()...)
	catalogSvc := catalog.NewService(source)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, catalogSvc)

	// Kick off the initial catalog load off the UI path
	rootUI.Reload()

	// Show and run
	myWindow.ShowAndRun()
}
