package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/app/services"
	"github.com/yigit/turmas/internal/middleware"
)

// OfferingController handles discipline offerings within sections
type OfferingController struct {
	offeringService services.OfferingService
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(offeringService services.OfferingService) *OfferingController {
	return &OfferingController{
		offeringService: offeringService,
	}
}

// CreateOffering handles offering creation
// @Summary Offer a discipline in a section
// @Tags offerings
// @Accept json
// @Produce json
// @Param request body dto.OfferingRequest true "Offering information"
// @Success 201 {object} dto.MutationResponse "Offering created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Section or discipline not found"
// @Failure 409 {object} dto.ErrorResponse "Discipline already offered in the section"
// @Router /offerings [post]
func (c *OfferingController) CreateOffering(ctx *gin.Context) {
	var req dto.OfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	id, err := c.offeringService.CreateOffering(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MutationResponse{Message: "Offering created successfully", ID: string(id)})
}

// UpdateOffering handles offering updates
// @Summary Update an offering
// @Description sectionId and catalogId may be omitted to keep the current ones
// @Tags offerings
// @Accept json
// @Produce json
// @Param id path string true "Offering ID"
// @Param request body dto.OfferingRequest true "Offering information"
// @Success 200 {object} dto.MutationResponse "Offering updated successfully"
// @Router /offerings/{id} [put]
func (c *OfferingController) UpdateOffering(ctx *gin.Context) {
	var req dto.OfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	id, err := c.offeringService.UpdateOffering(ctx.Request.Context(), models.OfferingID(ctx.Param("id")), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Message: "Offering updated successfully", ID: string(id)})
}

// DeleteOffering handles offering deletion
// @Summary Delete an offering
// @Tags offerings
// @Produce json
// @Param id path string true "Offering ID"
// @Success 200 {object} dto.MutationResponse "Offering deleted successfully"
// @Failure 409 {object} dto.ErrorResponse "Students are enrolled in the offering"
// @Router /offerings/{id} [delete]
func (c *OfferingController) DeleteOffering(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.offeringService.DeleteOffering(ctx.Request.Context(), models.OfferingID(id)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Message: "Offering deleted successfully", ID: id})
}
