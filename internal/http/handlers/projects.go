package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/clockhouse/timesheet/internal/domain/project"
	"github.com/gin-gonic/gin"
)

type ProjectsHandler struct{}

func NewProjectsHandler() *ProjectsHandler {
	return &ProjectsHandler{}
}

func (h *ProjectsHandler) ListProjects(ctx *gin.Context) {
	body, err := json.Marshal(gin.H{
		"success": true,
		"data":    project.Catalog(),
	})

	if err != nil {
		RespondInternal(ctx, "Failed to fetch projects")
		return
	}

	ServeJSONWithETag(ctx, http.StatusOK, body)
}
