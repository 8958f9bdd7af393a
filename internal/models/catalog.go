package models

// IModelInfo identifies an iModel the renderer discovered. ID is the wsgId.
type IModelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProjectInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DrawingInfo is one drawing of the current project. ID is the wsgId stored
// as drawing_name; Name is only shown in menus.
type DrawingInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Label is the text shown for the drawing in menus.
func (d DrawingInfo) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}
