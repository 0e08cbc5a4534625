package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/app/services"
	"github.com/devika/facultyhub/internal/middleware"
)

// ReportController handles aggregated report queries
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetReport builds a filtered achievement report for the acting user's scope
// @Summary Build an achievement report
// @Description Aggregates conference, journal, patent and workshop records for the caller's department scope, filtered by the query parameters
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Inclusive range start (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive range end (YYYY-MM-DD)"
// @Param filterType query string false "all | Conferences | Journals | Patents | Workshops"
// @Param title query string false "Case-insensitive title substring"
// @Param status query string false "PENDING | APPROVED | REJECTED"
// @Param facultyId query string false "Restrict to one faculty member"
// @Param department query string false "Department (editors only)"
// @Success 200 {object} dto.APIResponse{data=dto.ReportData} "Report assembled"
// @Failure 400 {object} dto.APIResponse "Invalid filter values"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Caller has no reviewing role"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /reports [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	acting, ok := middleware.ActingFaculty(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
		return
	}

	var req dto.ReportRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.TranslateBindingError(err)))
		return
	}

	filter := services.ReportFilter{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		FilterType: req.FilterType,
		Title:      req.Title,
		Status:     models.VerificationStatus(req.Status),
		FacultyID:  req.FacultyID,
		Department: req.Department,
	}

	report, err := c.reportService.BuildReport(ctx.Request.Context(), acting, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report))
}
