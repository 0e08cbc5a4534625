package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/app/services"
	"github.com/devika/facultyhub/internal/middleware"
)

// RecordController handles achievement submissions
type RecordController struct {
	recordService services.RecordService
}

// NewRecordController creates a new RecordController
func NewRecordController(recordService services.RecordService) *RecordController {
	return &RecordController{
		recordService: recordService,
	}
}

// CreateConference submits a conference paper
// @Summary Submit a conference paper
// @Description Creates a conference record owned by the caller with PENDING status
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateConferenceRequest true "Conference details"
// @Success 201 {object} dto.APIResponse{data=models.Conference} "Conference submitted"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /records/conferences [post]
func (c *RecordController) CreateConference(ctx *gin.Context) {
	acting, ok := middleware.ActingFaculty(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
		return
	}

	var req dto.CreateConferenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.TranslateBindingError(err)))
		return
	}

	conference, err := c.recordService.SubmitConference(ctx.Request.Context(), acting, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(conference))
}

// CreateJournal submits a journal publication
// @Summary Submit a journal publication
// @Description Creates a journal record owned by the caller with PENDING status
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJournalRequest true "Journal details"
// @Success 201 {object} dto.APIResponse{data=models.Journal} "Journal submitted"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /records/journals [post]
func (c *RecordController) CreateJournal(ctx *gin.Context) {
	acting, ok := middleware.ActingFaculty(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
		return
	}

	var req dto.CreateJournalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.TranslateBindingError(err)))
		return
	}

	journal, err := c.recordService.SubmitJournal(ctx.Request.Context(), acting, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(journal))
}

// CreatePatent submits a patent
// @Summary Submit a patent
// @Description Creates a patent record owned by the caller with PENDING status
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePatentRequest true "Patent details"
// @Success 201 {object} dto.APIResponse{data=models.Patent} "Patent submitted"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /records/patents [post]
func (c *RecordController) CreatePatent(ctx *gin.Context) {
	acting, ok := middleware.ActingFaculty(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
		return
	}

	var req dto.CreatePatentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.TranslateBindingError(err)))
		return
	}

	patent, err := c.recordService.SubmitPatent(ctx.Request.Context(), acting, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(patent))
}

// CreateWorkshop submits a workshop or FDP
// @Summary Submit a workshop
// @Description Creates a workshop record owned by the caller with PENDING status
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWorkshopRequest true "Workshop details"
// @Success 201 {object} dto.APIResponse{data=models.Workshop} "Workshop submitted"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /records/workshops [post]
func (c *RecordController) CreateWorkshop(ctx *gin.Context) {
	acting, ok := middleware.ActingFaculty(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
		return
	}

	var req dto.CreateWorkshopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.TranslateBindingError(err)))
		return
	}

	workshop, err := c.recordService.SubmitWorkshop(ctx.Request.Context(), acting, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(workshop))
}

// ListMine returns the caller's own submissions across all categories
// @Summary List my submissions
// @Description Returns the caller's conference, journal, patent and workshop records grouped by category
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MySubmissionsResponse} "Submissions grouped by category"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /records/mine [get]
func (c *RecordController) ListMine(ctx *gin.Context) {
	acting, ok := middleware.ActingFaculty(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
		return
	}

	submissions, err := c.recordService.ListMySubmissions(ctx.Request.Context(), acting)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submissions))
}
