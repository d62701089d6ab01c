package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/interface/api/rest/dto/job"
	"resume-evaluator-api/internal/interface/api/rest/middleware"
)

type JobController struct {
	jobService ports.JobService
	logger     *zap.Logger
}

func NewJobController(
	r *gin.Engine,
	jobService ports.JobService,
	logger *zap.Logger,
	tokens ports.TokenValidator,
) *JobController {
	jc := &JobController{
		jobService: jobService,
		logger:     logger,
	}

	auth := middleware.AuthMiddleware(tokens)
	r.POST(RouteJobAnalyze, auth, jc.AnalyzeHandler)
	r.POST(RouteJobSearch, auth, jc.SearchHandler)
	r.POST(RouteJobMatch, auth, jc.MatchHandler)

	return jc
}

func (jc *JobController) AnalyzeHandler(c *gin.Context) {
	var req job.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	a, err := jc.jobService.Analyze(req.JobDescription)
	if err != nil {
		respondError(c, jc.logger, "Analyze()", "failed to analyze job", err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (jc *JobController) SearchHandler(c *gin.Context) {
	var req job.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ps, err := jc.jobService.Search(c.Request.Context(), middleware.UserID(c), req.Query, req.Location, req.Limit)
	if err != nil {
		respondError(c, jc.logger, "Search()", "failed to search jobs", err)
		return
	}

	c.JSON(http.StatusOK, job.ResponseData{Data: job.ToResponsePostings(ps)})
}

func (jc *JobController) MatchHandler(c *gin.Context) {
	var req job.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ps, err := jc.jobService.Match(c.Request.Context(), middleware.UserID(c), req.ResumeText, req.JobDescription, req.Location, req.Limit)
	if err != nil {
		respondError(c, jc.logger, "Match()", "failed to match jobs", err)
		return
	}

	c.JSON(http.StatusOK, job.ResponseData{Data: job.ToResponsePostings(ps)})
}
