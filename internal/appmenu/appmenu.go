// Package appmenu builds the native application menu: a Refresh action and a
// Drawings submenu listing the drawings currently held by the relay.
package appmenu

import (
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"

	"plantviewer/internal/models"
)

const (
	RefreshLabel    = "Refresh"
	DrawingsLabel   = "Drawings"
	NoDrawingsLabel = "No drawings"
)

type Handlers struct {
	OnRefresh       func()
	OnSelectDrawing func(models.DrawingInfo)
}

// Build returns the menu for goos. macOS gets the standard app and edit menus
// first so the usual shortcuts keep working.
func Build(goos string, drawings []models.DrawingInfo, h Handlers) *menu.Menu {
	m := menu.NewMenu()
	if goos == "darwin" {
		m.Append(menu.AppMenu())
		m.Append(menu.EditMenu())
	}

	m.AddText(RefreshLabel, keys.CmdOrCtrl("r"), func(*menu.CallbackData) {
		if h.OnRefresh != nil {
			h.OnRefresh()
		}
	})

	sub := m.AddSubmenu(DrawingsLabel)
	if len(drawings) == 0 {
		sub.AddText(NoDrawingsLabel, nil, nil).Disabled = true
		return m
	}
	for _, d := range drawings {
		sub.AddText(d.Label(), nil, func(*menu.CallbackData) {
			if h.OnSelectDrawing != nil {
				h.OnSelectDrawing(d)
			}
		})
	}
	return m
}
