package models

import "fmt"

// SettingsField names one key of the settings file.
type SettingsField string

const (
	FieldIModelName  SettingsField = "imodel_name"
	FieldProjectName SettingsField = "project_name"
	FieldDrawingName SettingsField = "drawing_name"
)

// SettingsRecord is the on-disk settings.json document. All three keys are
// always written.
type SettingsRecord struct {
	IModelName  string `json:"imodel_name"`
	ProjectName string `json:"project_name"`
	DrawingName string `json:"drawing_name"`
}

func (f SettingsField) Valid() bool {
	switch f {
	case FieldIModelName, FieldProjectName, FieldDrawingName:
		return true
	}
	return false
}

// Get returns the value stored under field, or "" for an unknown field.
func (r SettingsRecord) Get(field SettingsField) string {
	switch field {
	case FieldIModelName:
		return r.IModelName
	case FieldProjectName:
		return r.ProjectName
	case FieldDrawingName:
		return r.DrawingName
	}
	return ""
}

// With returns a copy of r with field set to value.
func (r SettingsRecord) With(field SettingsField, value string) (SettingsRecord, error) {
	switch field {
	case FieldIModelName:
		r.IModelName = value
	case FieldProjectName:
		r.ProjectName = value
	case FieldDrawingName:
		r.DrawingName = value
	default:
		return r, fmt.Errorf("unknown settings field %q", field)
	}
	return r, nil
}
