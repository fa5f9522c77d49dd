package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/app/services"
	"github.com/yigit/turmas/internal/middleware"
)

// CatalogController handles discipline catalog operations
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// CreateEntry handles discipline creation
// @Summary Add a discipline to the catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.CatalogEntryRequest true "Discipline information"
// @Success 201 {object} dto.MutationResponse "Discipline created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Code already in use"
// @Router /catalog [post]
func (c *CatalogController) CreateEntry(ctx *gin.Context) {
	var req dto.CatalogEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	id, err := c.catalogService.CreateEntry(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MutationResponse{Message: "Discipline created successfully", ID: string(id)})
}

// UpdateEntry handles discipline updates
// @Summary Update a catalog discipline
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Discipline ID"
// @Param request body dto.CatalogEntryRequest true "Discipline information"
// @Success 200 {object} dto.MutationResponse "Discipline updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Discipline not found"
// @Failure 409 {object} dto.ErrorResponse "Code already in use"
// @Router /catalog/{id} [put]
func (c *CatalogController) UpdateEntry(ctx *gin.Context) {
	var req dto.CatalogEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	id, err := c.catalogService.UpdateEntry(ctx.Request.Context(), models.CatalogID(ctx.Param("id")), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Message: "Discipline updated successfully", ID: string(id)})
}

// DeleteEntry handles discipline deletion
// @Summary Remove a discipline from the catalog
// @Tags catalog
// @Produce json
// @Param id path string true "Discipline ID"
// @Success 200 {object} dto.MutationResponse "Discipline deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Discipline not found"
// @Failure 409 {object} dto.ErrorResponse "Discipline is offered in a section"
// @Router /catalog/{id} [delete]
func (c *CatalogController) DeleteEntry(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.catalogService.DeleteEntry(ctx.Request.Context(), models.CatalogID(id)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Message: "Discipline deleted successfully", ID: id})
}
