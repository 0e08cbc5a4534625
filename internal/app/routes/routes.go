package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/devika/facultyhub/internal/app/controllers"
	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	recordController *controllers.RecordController,
	reportController *controllers.ReportController,
	approvalController *controllers.ApprovalController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// Every other route requires a valid token and a directory entry for
	// the authenticated identity
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth(), authMiddleware.ResolveFaculty())
	{
		// Achievement submissions, open to any faculty member
		records := authenticated.Group("/records")
		{
			records.POST("/conferences", recordController.CreateConference)
			records.POST("/journals", recordController.CreateJournal)
			records.POST("/patents", recordController.CreatePatent)
			records.POST("/workshops", recordController.CreateWorkshop)
			records.GET("/mine", recordController.ListMine)
		}

		// Reports and the approval queue; scope enforcement happens in the
		// services, which re-read the caller's role from the directory
		authenticated.GET("/reports", reportController.GetReport)

		approvals := authenticated.Group("/approvals")
		{
			approvals.GET("", approvalController.ListApprovals)
			approvals.POST("/decide", approvalController.Decide)
			approvals.POST("/bulk", approvalController.BulkDecide)
		}
	}
}
