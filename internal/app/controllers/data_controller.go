package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/app/services"
	"github.com/yigit/turmas/internal/middleware"
)

// DataController serves the composite read model
type DataController struct {
	viewService services.ViewService
	storage     string
}

// NewDataController creates a new DataController. storage names the active
// persistence driver reported by the health check.
func NewDataController(viewService services.ViewService, storage string) *DataController {
	return &DataController{
		viewService: viewService,
		storage:     storage,
	}
}

// GetData returns sections, catalog, students, offerings and enrollments in one payload
// @Summary Get the composite view
// @Description Optional filters narrow sections by name, disciplines by code or name and students by name or registration number
// @Tags data
// @Produce json
// @Param search_turma query string false "Section filter"
// @Param search_disciplina query string false "Discipline filter"
// @Param search_aluno query string false "Student filter"
// @Success 200 {object} dto.CompositeView
// @Router /data [get]
func (c *DataController) GetData(ctx *gin.Context) {
	var filters dto.ViewFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	view, err := c.viewService.GetView(ctx.Request.Context(), filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// Health reports liveness
func (c *DataController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Storage: c.storage})
}
