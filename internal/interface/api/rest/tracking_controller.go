package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/interface/api/rest/dto/tracking"
	"resume-evaluator-api/internal/interface/api/rest/middleware"
	"resume-evaluator-api/internal/interface/api/rest/validator"
)

// TrackingController serves job applications, stored optimized resumes
// and interview preparations. Every route is owner scoped.
type TrackingController struct {
	trackingService ports.TrackingService
	logger          *zap.Logger
}

func NewTrackingController(
	r *gin.Engine,
	trackingService ports.TrackingService,
	logger *zap.Logger,
	tokens ports.TokenValidator,
) *TrackingController {
	tc := &TrackingController{
		trackingService: trackingService,
		logger:          logger,
	}

	auth := middleware.AuthMiddleware(tokens)
	r.GET(RouteApplications, auth, tc.ListApplicationsHandler)
	r.POST(RouteApplications, auth, tc.CreateApplicationHandler)
	r.PUT(RouteApplication, auth, tc.UpdateApplicationHandler)
	r.DELETE(RouteApplication, auth, tc.DeleteApplicationHandler)

	r.GET(RouteOptimizedResumes, auth, tc.ListOptimizedResumesHandler)
	r.DELETE(RouteOptimizedResumeID, auth, tc.DeleteOptimizedResumeHandler)

	r.GET(RouteInterviewPreps, auth, tc.ListPreparationsHandler)
	r.POST(RouteInterviewPreps, auth, tc.CreatePreparationHandler)
	r.PUT(RouteInterviewPrep, auth, tc.UpdatePreparationHandler)
	r.DELETE(RouteInterviewPrep, auth, tc.DeletePreparationHandler)

	return tc
}

func (tc *TrackingController) ListApplicationsHandler(c *gin.Context) {
	as, err := tc.trackingService.Applications(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, tc.logger, "Applications()", "failed to get applications", err)
		return
	}

	c.JSON(http.StatusOK, tracking.MapAll(as, tracking.ToResponseApplication))
}

func (tc *TrackingController) CreateApplicationHandler(c *gin.Context) {
	var req tracking.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	a, err := tc.trackingService.CreateApplication(c.Request.Context(), middleware.UserID(c), tracking.ToDomainApplication(req))
	if err != nil {
		respondError(c, tc.logger, "CreateApplication()", "failed to create application", err)
		return
	}

	c.JSON(http.StatusCreated, tracking.ToResponseApplication(*a))
}

func (tc *TrackingController) UpdateApplicationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req tracking.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	app := tracking.ToDomainApplication(req)
	app.ID = id

	a, err := tc.trackingService.UpdateApplication(c.Request.Context(), middleware.UserID(c), app)
	if err != nil {
		respondError(c, tc.logger, "UpdateApplication()", "failed to update application", err)
		return
	}

	c.JSON(http.StatusOK, tracking.ToResponseApplication(*a))
}

func (tc *TrackingController) DeleteApplicationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := tc.trackingService.DeleteApplication(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, tc.logger, "DeleteApplication()", "failed to delete application", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (tc *TrackingController) ListOptimizedResumesHandler(c *gin.Context) {
	rs, err := tc.trackingService.OptimizedResumes(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, tc.logger, "OptimizedResumes()", "failed to get optimized resumes", err)
		return
	}

	c.JSON(http.StatusOK, tracking.MapAll(rs, tracking.ToResponseOptimizedResume))
}

func (tc *TrackingController) DeleteOptimizedResumeHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := tc.trackingService.DeleteOptimizedResume(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, tc.logger, "DeleteOptimizedResume()", "failed to delete optimized resume", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (tc *TrackingController) ListPreparationsHandler(c *gin.Context) {
	ps, err := tc.trackingService.Preparations(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, tc.logger, "Preparations()", "failed to get interview preparations", err)
		return
	}

	c.JSON(http.StatusOK, tracking.MapAll(ps, tracking.ToResponsePreparation))
}

func (tc *TrackingController) CreatePreparationHandler(c *gin.Context) {
	var req tracking.PreparationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	p, err := tc.trackingService.CreatePreparation(c.Request.Context(), middleware.UserID(c), tracking.ToDomainPreparation(req))
	if err != nil {
		respondError(c, tc.logger, "CreatePreparation()", "failed to create interview preparation", err)
		return
	}

	c.JSON(http.StatusCreated, tracking.ToResponsePreparation(*p))
}

func (tc *TrackingController) UpdatePreparationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req tracking.PreparationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	prep := tracking.ToDomainPreparation(req)
	prep.ID = id

	p, err := tc.trackingService.UpdatePreparation(c.Request.Context(), middleware.UserID(c), prep)
	if err != nil {
		respondError(c, tc.logger, "UpdatePreparation()", "failed to update interview preparation", err)
		return
	}

	c.JSON(http.StatusOK, tracking.ToResponsePreparation(*p))
}

func (tc *TrackingController) DeletePreparationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := tc.trackingService.DeletePreparation(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, tc.logger, "DeletePreparation()", "failed to delete interview preparation", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}
