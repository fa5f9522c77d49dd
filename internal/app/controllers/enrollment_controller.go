package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/app/services"
	"github.com/yigit/turmas/internal/middleware"
)

// EnrollmentController handles student enrollments
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollment handles enrollment creation
// @Summary Enroll a student into an offering
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.MutationResponse "Enrollment created successfully"
// @Failure 404 {object} dto.ErrorResponse "Student or offering not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	id, err := c.enrollmentService.CreateEnrollment(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MutationResponse{Message: "Enrollment created successfully", ID: string(id)})
}

// UpdateEnrollment handles enrollment changes
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	id, err := c.enrollmentService.UpdateEnrollment(ctx.Request.Context(), models.EnrollmentID(ctx.Param("id")), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Message: "Enrollment updated successfully", ID: string(id)})
}

// DeleteEnrollment handles enrollment removal
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.enrollmentService.DeleteEnrollment(ctx.Request.Context(), models.EnrollmentID(id)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Message: "Enrollment deleted successfully", ID: id})
}
