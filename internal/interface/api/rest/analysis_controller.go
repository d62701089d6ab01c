package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/interface/api/rest/dto/analysis"
	trackingdto "resume-evaluator-api/internal/interface/api/rest/dto/tracking"
	"resume-evaluator-api/internal/interface/api/rest/middleware"
	"resume-evaluator-api/internal/interface/api/rest/validator"
)

type AnalysisController struct {
	analysisService   ports.AnalysisService
	generationService ports.GenerationService
	logger            *zap.Logger
}

func NewAnalysisController(
	r *gin.Engine,
	analysisService ports.AnalysisService,
	generationService ports.GenerationService,
	logger *zap.Logger,
	tokens ports.TokenValidator,
) *AnalysisController {
	ac := &AnalysisController{
		analysisService:   analysisService,
		generationService: generationService,
		logger:            logger,
	}

	auth := middleware.AuthMiddleware(tokens)
	r.POST(RouteAnalyses, auth, ac.EvaluateHandler)
	r.GET(RouteAnalyses, auth, ac.ListHandler)
	r.GET(RouteAnalysis, auth, ac.GetHandler)
	r.POST(RouteCoverLetter, auth, ac.CoverLetterHandler)
	r.POST(RouteInterviewQuestions, auth, ac.InterviewQuestionsHandler)
	r.POST(RouteOptimizedResume, auth, ac.OptimizeResumeHandler)

	return ac
}

func (ac *AnalysisController) EvaluateHandler(c *gin.Context) {
	var req analysis.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	a, err := ac.analysisService.Evaluate(c.Request.Context(), middleware.UserID(c), analysis.ToEvaluateRequest(req))
	if err != nil {
		respondError(c, ac.logger, "Evaluate()", "failed to evaluate resume", err)
		return
	}

	c.JSON(http.StatusCreated, analysis.ToResponseAnalysis(*a))
}

func (ac *AnalysisController) ListHandler(c *gin.Context) {
	limit, err := validator.ParseLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	as, err := ac.analysisService.List(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		respondError(c, ac.logger, "List()", "failed to get analyses", err)
		return
	}

	c.JSON(http.StatusOK, analysis.ResponseData{Data: analysis.ToResponseAnalyses(as)})
}

func (ac *AnalysisController) GetHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("analysis_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis_id must be a positive integer"})
		return
	}

	a, err := ac.analysisService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, ac.logger, "Get()", "failed to get analysis", err)
		return
	}

	c.JSON(http.StatusOK, analysis.ToResponseAnalysis(*a))
}

func (ac *AnalysisController) CoverLetterHandler(c *gin.Context) {
	var req analysis.CoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	letter, err := ac.generationService.CoverLetter(c.Request.Context(), middleware.UserID(c), analysis.ToCoverLetterRequest(req))
	if err != nil {
		respondError(c, ac.logger, "CoverLetter()", "failed to generate cover letter", err)
		return
	}

	c.JSON(http.StatusOK, analysis.CoverLetter{CoverLetter: letter})
}

func (ac *AnalysisController) InterviewQuestionsHandler(c *gin.Context) {
	var req analysis.InterviewQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	qs, err := ac.generationService.InterviewQuestions(c.Request.Context(), middleware.UserID(c), req.ResumeText, req.JobDescription)
	if err != nil {
		respondError(c, ac.logger, "InterviewQuestions()", "failed to generate interview questions", err)
		return
	}

	c.JSON(http.StatusOK, analysis.InterviewQuestions{Questions: qs})
}

func (ac *AnalysisController) OptimizeResumeHandler(c *gin.Context) {
	var req analysis.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	o, err := ac.generationService.OptimizeResume(c.Request.Context(), middleware.UserID(c), analysis.ToOptimizeRequest(req))
	if err != nil {
		respondError(c, ac.logger, "OptimizeResume()", "failed to optimize resume", err)
		return
	}

	c.JSON(http.StatusCreated, trackingdto.ToResponseOptimizedResume(*o))
}
