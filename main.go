package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/animal-sounds/internal/config"
	"github.com/ytget/animal-sounds/internal/controller"
	"github.com/ytget/animal-sounds/internal/logging"
	"github.com/ytget/animal-sounds/internal/lookup"
	"github.com/ytget/animal-sounds/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.animal-sounds"
	AppName = "Animal Sounds"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}

	logger := logging.New(env.Log)
	logger.Info("starting", "app", AppName, "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp, env)
	client := lookup.NewClient(settings.GetServerURL(),
		lookup.WithTimeout(env.RequestTimeout),
		lookup.WithLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create and setup UI
	root := ui.NewRootUI(myWindow, settings, client, logger, controller.WithContext(ctx))

	go root.RefreshAnimals(ctx)
	go root.CheckHealth(ctx)

	// Show and run
	myWindow.ShowAndRun()
}
