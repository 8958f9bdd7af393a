package main

import (
	"embed"
	"fmt"
	goruntime "runtime"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	gormlogger "gorm.io/gorm/logger"

	"plantviewer/internal/appmenu"
	"plantviewer/internal/config"
	"plantviewer/internal/database"
	"plantviewer/internal/logging"
	"plantviewer/internal/services"
	"plantviewer/internal/window"
)

//go:embed all:frontend/dist
var assets embed.FS

// RPC interfaces the renderer's iModel client expects the backend to serve.
var rpcInterfaces = []string{
	"IModelReadRpcInterface",
	"IModelTileRpcInterface",
	"PresentationRpcInterface",
	"SnapshotIModelRpcInterface",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		return
	}

	log := logging.NewLevelLogger(logger.NewDefaultLogger(), cfg.LogLevel)

	var svc *services.Services
	var dbClose func() error
	if cfg.History {
		db, err := database.Init(database.Config{
			Path:     cfg.DBPath,
			LogLevel: gormlogger.Warn,
		})
		if err != nil {
			// History is optional; the settings store works without it.
			fmt.Println("Error opening database:", err)
			svc = services.NewServices(cfg.SettingsPath, nil, log)
		} else {
			svc = services.NewServices(cfg.SettingsPath, db, log)
			if sqlDB, err := db.DB(); err == nil {
				dbClose = sqlDB.Close
			}
		}
	} else {
		svc = services.NewServices(cfg.SettingsPath, nil, log)
	}

	app := NewApp(cfg, svc, rpcInterfaces, log)
	app.dbClose = dbClose

	// Initial menu before the catalog is known; the host rebuilds it on ready.
	initialMenu := appmenu.Build(goruntime.GOOS, nil, appmenu.Handlers{})

	err = wails.Run(window.Options(
		cfg.Window,
		assets,
		initialMenu,
		window.Logging{Logger: log, Level: cfg.LogLevel},
		window.Hooks{
			OnStartup:  app.startup,
			OnDomReady: app.domReady,
			OnShutdown: app.shutdown,
		},
		app,
	))

	if err != nil {
		println("Error:", err.Error())
	}
}
