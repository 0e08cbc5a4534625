package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/app/services"
	"github.com/devika/facultyhub/internal/middleware"
)

// ApprovalController handles the review queue and approval decisions
type ApprovalController struct {
	reportService   services.ReportService
	approvalService services.ApprovalService
}

// NewApprovalController creates a new ApprovalController
func NewApprovalController(reportService services.ReportService, approvalService services.ApprovalService) *ApprovalController {
	return &ApprovalController{
		reportService:   reportService,
		approvalService: approvalService,
	}
}

// ListApprovals returns the review queue for the acting user's scope.
// The queue is the report pipeline with the status defaulting to PENDING.
// @Summary List records awaiting review
// @Description Returns records in the caller's department scope, defaulting to PENDING status when none is given
// @Tags approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Inclusive range start (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive range end (YYYY-MM-DD)"
// @Param filterType query string false "all | Conferences | Journals | Patents | Workshops"
// @Param title query string false "Case-insensitive title substring"
// @Param status query string false "PENDING | APPROVED | REJECTED (defaults to PENDING)"
// @Param facultyId query string false "Restrict to one faculty member"
// @Param department query string false "Department (editors only)"
// @Success 200 {object} dto.APIResponse{data=dto.ReportData} "Review queue"
// @Failure 400 {object} dto.APIResponse "Invalid filter values"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Caller has no reviewing role"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /approvals [get]
func (c *ApprovalController) ListApprovals(ctx *gin.Context) {
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
	if req.Status == "" {
		req.Status = string(models.StatusPending)
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

	queue, err := c.reportService.BuildReport(ctx.Request.Context(), acting, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(queue))
}

// Decide records a single approval decision
// @Summary Approve or reject one record
// @Description Transitions a PENDING record to APPROVED or REJECTED; already-decided records yield 409
// @Tags approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DecisionRequest true "Decision"
// @Success 200 {object} dto.APIResponse "Decision recorded, updated record returned"
// @Failure 400 {object} dto.APIResponse "Invalid entry type or action"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Record outside the caller's department"
// @Failure 404 {object} dto.APIResponse "Record not found"
// @Failure 409 {object} dto.APIResponse "Record already decided"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /approvals/decide [post]
func (c *ApprovalController) Decide(ctx *gin.Context) {
	acting, ok := middleware.ActingFaculty(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
		return
	}

	var req dto.DecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.TranslateBindingError(err)))
		return
	}

	record, err := c.approvalService.Decide(ctx.Request.Context(), acting, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// BulkDecide records several independent decisions in one call
// @Summary Approve or reject records in bulk
// @Description Applies each decision independently and returns a best-effort summary; failed entries do not roll back succeeded ones
// @Tags approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkDecisionRequest true "Decisions"
// @Success 200 {object} dto.APIResponse{data=dto.BulkDecisionResult} "Summary of the batch"
// @Failure 400 {object} dto.APIResponse "Empty or malformed batch"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /approvals/bulk [post]
func (c *ApprovalController) BulkDecide(ctx *gin.Context) {
	acting, ok := middleware.ActingFaculty(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
		return
	}

	var req dto.BulkDecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.TranslateBindingError(err)))
		return
	}

	result := c.approvalService.BulkDecide(ctx.Request.Context(), acting, req)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
