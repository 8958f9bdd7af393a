package window

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Shell is the part of the Wails runtime the host drives.
type Shell interface {
	Show(ctx context.Context)
	ExecJS(ctx context.Context, js string)
	SetMenu(ctx context.Context, m *menu.Menu)
}

type wailsShell struct{}

// RuntimeShell drives the real Wails window.
func RuntimeShell() Shell { return wailsShell{} }

func (wailsShell) Show(ctx context.Context) { runtime.WindowShow(ctx) }

func (wailsShell) ExecJS(ctx context.Context, js string) { runtime.WindowExecJS(ctx, js) }

func (wailsShell) SetMenu(ctx context.Context, m *menu.Menu) {
	runtime.MenuSetApplicationMenu(ctx, m)
	runtime.MenuUpdateApplicationMenu(ctx)
}

// Host performs the one-time setup that must wait for the main window: show
// it, run the preload script, install the menu and register RPC interfaces.
type Host struct {
	cfg        Config
	shell      Shell
	registrar  RPCRegistrar
	interfaces []string
	buildMenu  func() *menu.Menu
	log        logger.Logger

	once  sync.Once
	ready chan struct{}
}

func NewHost(cfg Config, shell Shell, registrar RPCRegistrar, interfaces []string, buildMenu func() *menu.Menu, log logger.Logger) *Host {
	return &Host{
		cfg:        cfg,
		shell:      shell,
		registrar:  registrar,
		interfaces: append([]string(nil), interfaces...),
		buildMenu:  buildMenu,
		log:        log,
		ready:      make(chan struct{}),
	}
}

// OnReady is wired to the DOM-ready hook. Only the first call has effect.
func (h *Host) OnReady(ctx context.Context) {
	h.once.Do(func() {
		defer close(h.ready)

		h.shell.Show(ctx)
		h.runPreload(ctx)

		if !h.cfg.AutoHideMenuBar && h.buildMenu != nil {
			h.shell.SetMenu(ctx, h.buildMenu())
		}

		if h.registrar != nil {
			if err := h.registrar.Register(ctx, h.interfaces); err != nil {
				h.log.Error(fmt.Sprintf("register rpc interfaces: %v", err))
			}
		}
	})
}

// Ready is closed once OnReady has finished.
func (h *Host) Ready() <-chan struct{} {
	return h.ready
}

func (h *Host) IsReady() bool {
	select {
	case <-h.ready:
		return true
	default:
		return false
	}
}

// RefreshMenu reinstalls the application menu after the catalog changed.
// Before the window is ready it does nothing; OnReady installs the menu then.
func (h *Host) RefreshMenu(ctx context.Context) {
	if !h.IsReady() || h.cfg.AutoHideMenuBar || h.buildMenu == nil {
		return
	}
	h.shell.SetMenu(ctx, h.buildMenu())
}

func (h *Host) runPreload(ctx context.Context) {
	if h.cfg.PreloadScript == "" {
		return
	}
	script, err := os.ReadFile(h.cfg.PreloadScript)
	if err != nil {
		h.log.Warning(fmt.Sprintf("preload script %s: %v", h.cfg.PreloadScript, err))
		return
	}
	h.shell.ExecJS(ctx, string(script))
}
