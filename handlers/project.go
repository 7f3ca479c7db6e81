package handlers

import (
	"net/http"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
	"github.com/vishaldubey2210/portfolio/services"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List godoc
// GET /api/projects, GET /api/admin/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		pkg.Error(w, err, "Failed to load projects")
		return
	}
	pkg.JSON(w, http.StatusOK, pkg.Fields{"projects": projects})
}

// Create godoc
// POST /api/admin/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pkg.Error(w, err, "")
		return
	}

	if _, err := h.projectService.Create(r.Context(), &req); err != nil {
		pkg.Error(w, err, "Failed to add project")
		return
	}
	pkg.Message(w, http.StatusOK, "Project added successfully!")
}

// Delete godoc
// DELETE /api/admin/projects?id=N
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		pkg.Error(w, err, "")
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err, "Failed to delete project")
		return
	}
	pkg.Message(w, http.StatusOK, "Project deleted successfully!")
}
