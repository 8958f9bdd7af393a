package window

import (
	"context"
	"io/fs"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
)

// Hooks are the lifecycle callbacks passed to Wails.
type Hooks struct {
	OnStartup  func(ctx context.Context)
	OnDomReady func(ctx context.Context)
	OnShutdown func(ctx context.Context)
}

// Logging configures the Wails logger for the window host.
type Logging struct {
	Logger logger.Logger
	Level  logger.LogLevel
}

// Options maps cfg onto the Wails application options.
func Options(cfg Config, assets fs.FS, appMenu *menu.Menu, logging Logging, hooks Hooks, bind ...interface{}) *options.App {
	gpuPolicy := linux.WebviewGpuPolicyOnDemand
	if cfg.ExperimentalFeatures {
		gpuPolicy = linux.WebviewGpuPolicyAlways
	}

	if cfg.AutoHideMenuBar {
		appMenu = nil
	}

	return &options.App{
		Title:       cfg.Title,
		Width:       cfg.Width,
		Height:      cfg.Height,
		StartHidden: cfg.StartHidden,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Menu: appMenu,
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    gpuPolicy,
			ProgramName:         cfg.Title,
		},
		BackgroundColour:   &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:             logging.Logger,
		LogLevel:           logging.Level,
		LogLevelProduction: logging.Level,
		OnStartup:          hooks.OnStartup,
		OnDomReady:         hooks.OnDomReady,
		OnShutdown:         hooks.OnShutdown,
		Bind:               bind,
	}
}
