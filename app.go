package main

import (
	"context"
	"fmt"
	goruntime "runtime"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"plantviewer/internal/appmenu"
	"plantviewer/internal/config"
	"plantviewer/internal/events"
	"plantviewer/internal/models"
	"plantviewer/internal/services"
	"plantviewer/internal/window"
)

// App struct
type App struct {
	ctx     context.Context
	cfg     config.Config
	svc     *services.Services
	host    *window.Host
	emitter events.Emitter
	log     logger.Logger
	dbClose func() error
}

// NewApp creates a new App application struct
func NewApp(cfg config.Config, svc *services.Services, rpcInterfaces []string, log logger.Logger) *App {
	return newApp(cfg, svc, svc.Emitter, window.RuntimeShell(), rpcInterfaces, log)
}

func newApp(cfg config.Config, svc *services.Services, emitter events.Emitter, shell window.Shell, rpcInterfaces []string, log logger.Logger) *App {
	a := &App{cfg: cfg, svc: svc, emitter: emitter, log: log}
	a.host = window.NewHost(
		cfg.Window,
		shell,
		window.NewEventRPCRegistrar(emitter),
		rpcInterfaces,
		a.buildMenu,
		log,
	)
	return a
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.svc.Startup(ctx)

	if _, err := a.svc.Settings.EnsureDefault(); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to create default settings: %v", err))
	}
	if _, err := a.svc.Settings.MigrateLegacyDrawing(); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to migrate legacy drawing: %v", err))
	}

	if a.cfg.WatchSettings {
		if err := a.svc.Watcher.Start(ctx); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to watch settings: %v", err))
		}
	}
}

// domReady fires once the main window has loaded; the host ignores repeats.
func (a *App) domReady(ctx context.Context) {
	a.host.OnReady(ctx)
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if err := a.svc.Watcher.Stop(); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to stop settings watcher: %v", err))
	}
	a.svc.Emitter.Shutdown()

	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// ReadData loads settings.json in the background and answers on
// readConfigResultsIModel when arg is "imodel", readConfigResults otherwise.
func (a *App) ReadData(arg string) {
	a.svc.Settings.ReadAsync(arg)
}

// ReadSettings is the synchronous form of ReadData.
func (a *App) ReadSettings() events.ReadResult {
	return a.svc.Settings.Read()
}

func (a *App) ChangeIModel(name string) (*models.SettingsRecord, error) {
	return a.svc.Settings.UpdateIModel(name)
}

func (a *App) ChangeProject(name string) (*models.SettingsRecord, error) {
	return a.svc.Settings.UpdateProject(name)
}

func (a *App) ChangeDrawingName(name string) (*models.SettingsRecord, error) {
	return a.svc.Settings.UpdateDrawingName(name)
}

func (a *App) GetIModels() []models.IModelInfo {
	return a.svc.Relay.GetIModels()
}

func (a *App) SetIModels(iModels []models.IModelInfo) {
	a.svc.Relay.SetIModels(iModels)
}

func (a *App) GetProjects() []models.ProjectInfo {
	return a.svc.Relay.GetProjects()
}

func (a *App) SetProjects(projects []models.ProjectInfo) {
	a.svc.Relay.SetProjects(projects)
}

func (a *App) GetCurrentProject() *models.ProjectInfo {
	return a.svc.Relay.GetCurrentProject()
}

func (a *App) SetCurrentProject(project *models.ProjectInfo) {
	a.svc.Relay.SetCurrentProject(project)
}

func (a *App) GetDrawings() []models.DrawingInfo {
	return a.svc.Relay.GetDrawings()
}

// SetDrawings stores the drawing list and rebuilds the Drawings menu.
func (a *App) SetDrawings(drawings []models.DrawingInfo) {
	a.svc.Relay.SetDrawings(drawings)
	if a.ctx != nil {
		a.host.RefreshMenu(a.ctx)
	}
}

// RecentSelections lists the latest settings changes, newest first.
func (a *App) RecentSelections(limit int) ([]models.SelectionChange, error) {
	if a.svc.History == nil {
		return []models.SelectionChange{}, nil
	}
	return a.svc.History.Recent(limit)
}

func (a *App) ClearSelectionHistory() error {
	if a.svc.History == nil {
		return nil
	}
	return a.svc.History.Clear()
}

// SelectConfigurationFiles opens a native multi-file picker. Cancelling the
// picker quits the application.
func (a *App) SelectConfigurationFiles() ([]string, error) {
	files, err := runtime.OpenMultipleFilesDialog(a.ctx, configurationFileDialog())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		runtime.Quit(a.ctx)
		return nil, nil
	}
	return files, nil
}

// configurationFileDialog accepts any file type.
func configurationFileDialog() runtime.OpenDialogOptions {
	return runtime.OpenDialogOptions{Title: "Select configuration File"}
}

// PopupWarning tells the user which entry the settings file is missing.
func (a *App) PopupWarning(kind string) error {
	_, err := runtime.MessageDialog(a.ctx, runtime.MessageDialogOptions{
		Type:    runtime.ErrorDialog,
		Title:   "Error",
		Message: fmt.Sprintf("Warning! The %s is missing from the settings file!", kind),
	})
	return err
}

func (a *App) buildMenu() *menu.Menu {
	return appmenu.Build(goruntime.GOOS, a.svc.Relay.GetDrawings(), appmenu.Handlers{
		OnRefresh:       a.onMenuRefresh,
		OnSelectDrawing: a.onMenuSelectDrawing,
	})
}

func (a *App) onMenuRefresh() {
	if err := a.emitter.Emit(events.MenuRefresh); err != nil {
		a.log.Warning(fmt.Sprintf("emit %s: %v", events.MenuRefresh, err))
	}
}

// onMenuSelectDrawing stores the drawing's id (its wsgId) as drawing_name;
// names are only labels and may repeat.
func (a *App) onMenuSelectDrawing(d models.DrawingInfo) {
	if _, err := a.svc.Settings.UpdateDrawingName(d.ID); err != nil {
		a.log.Error(fmt.Sprintf("select drawing %q: %v", d.ID, err))
		return
	}
	if err := a.emitter.Emit(events.DrawingSelected, d); err != nil {
		a.log.Warning(fmt.Sprintf("emit %s: %v", events.DrawingSelected, err))
	}
}
