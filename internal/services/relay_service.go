package services

import (
	"sync"

	"plantviewer/internal/models"
)

// RelayService holds the catalog the renderer learns (iModels, projects,
// drawings, current project) so other windows and the menu can read it back.
// Slots are independent: nothing is validated and nobody is notified on
// change. An unset slot reads as nil.
type RelayService struct {
	mu             sync.RWMutex
	iModels        []models.IModelInfo
	projects       []models.ProjectInfo
	currentProject *models.ProjectInfo
	drawings       []models.DrawingInfo
}

// RelaySnapshot is a copy of every slot at one point in time.
type RelaySnapshot struct {
	IModels        []models.IModelInfo  `json:"iModels"`
	Projects       []models.ProjectInfo `json:"projects"`
	CurrentProject *models.ProjectInfo  `json:"currentProject"`
	Drawings       []models.DrawingInfo `json:"drawings"`
}

func NewRelayService() *RelayService {
	return &RelayService{}
}

func (r *RelayService) GetIModels() []models.IModelInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.iModels)
}

func (r *RelayService) SetIModels(iModels []models.IModelInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.iModels = cloneSlice(iModels)
}

func (r *RelayService) GetProjects() []models.ProjectInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.projects)
}

func (r *RelayService) SetProjects(projects []models.ProjectInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = cloneSlice(projects)
}

// GetCurrentProject returns the value last passed to SetCurrentProject.
func (r *RelayService) GetCurrentProject() *models.ProjectInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.currentProject == nil {
		return nil
	}
	p := *r.currentProject
	return &p
}

func (r *RelayService) SetCurrentProject(project *models.ProjectInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if project == nil {
		r.currentProject = nil
		return
	}
	p := *project
	r.currentProject = &p
}

func (r *RelayService) GetDrawings() []models.DrawingInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.drawings)
}

func (r *RelayService) SetDrawings(drawings []models.DrawingInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drawings = cloneSlice(drawings)
}

func (r *RelayService) Snapshot() RelaySnapshot {
	return RelaySnapshot{
		IModels:        r.GetIModels(),
		Projects:       r.GetProjects(),
		CurrentProject: r.GetCurrentProject(),
		Drawings:       r.GetDrawings(),
	}
}

// cloneSlice keeps nil as nil so an unset slot stays distinguishable from an
// empty list.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
