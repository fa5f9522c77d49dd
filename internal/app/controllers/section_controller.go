package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/app/services"
	"github.com/yigit/turmas/internal/middleware"
)

// SectionController handles section-related operations
type SectionController struct {
	sectionService services.SectionService
}

// NewSectionController creates a new SectionController
func NewSectionController(sectionService services.SectionService) *SectionController {
	return &SectionController{
		sectionService: sectionService,
	}
}

// CreateSection handles section creation
// @Summary Create a new section
// @Tags sections
// @Accept json
// @Produce json
// @Param request body dto.SectionRequest true "Section information"
// @Success 201 {object} dto.MutationResponse "Section created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [post]
func (c *SectionController) CreateSection(ctx *gin.Context) {
	var req dto.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	id, err := c.sectionService.CreateSection(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MutationResponse{Message: "Section created successfully", ID: string(id)})
}

// UpdateSection handles section rename
// @Summary Rename a section
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param request body dto.SectionRequest true "Section information"
// @Success 200 {object} dto.MutationResponse "Section updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{id} [put]
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	var req dto.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	id, err := c.sectionService.UpdateSection(ctx.Request.Context(), models.SectionID(ctx.Param("id")), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Message: "Section updated successfully", ID: string(id)})
}

// DeleteSection handles section deletion
// @Summary Delete a section
// @Description Fails with 409 while any discipline is offered in the section
// @Tags sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} dto.MutationResponse "Section deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 409 {object} dto.ErrorResponse "Section has offerings"
// @Router /sections/{id} [delete]
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.sectionService.DeleteSection(ctx.Request.Context(), models.SectionID(id)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Message: "Section deleted successfully", ID: id})
}
