package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/interface/api/rest/dto/user"
	"resume-evaluator-api/internal/interface/api/rest/middleware"
	"resume-evaluator-api/internal/interface/api/rest/validator"
)

const defaultHistoryMonths = 12

type UserController struct {
	userService        ports.UserService
	entitlementService ports.EntitlementService
	logger             *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	entitlementService ports.EntitlementService,
	logger *zap.Logger,
	tokens ports.TokenValidator,
) *UserController {
	uc := &UserController{
		userService:        userService,
		entitlementService: entitlementService,
		logger:             logger,
	}

	auth := middleware.AuthMiddleware(tokens)
	r.POST(RouteUsers, auth, uc.CreateUserHandler)
	r.GET(RouteMe, auth, uc.GetMeHandler)
	r.PUT(RouteMe, auth, uc.UpdateMeHandler)
	r.DELETE(RouteMe, auth, uc.DeleteMeHandler)
	r.GET(RouteMePlan, auth, uc.GetPlanHandler)
	r.GET(RouteMeUsage, auth, uc.GetUsageHandler)
	r.PUT(RouteCurrentResume, auth, uc.SetCurrentResumeHandler)

	return uc
}

// CreateUserHandler creates or merges the caller. The identity is always the
// token subject; the email defaults to the token email claim.
func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Email == "" {
		req.Email = middleware.UserEmail(c)
	}
	if errs := validator.ValidateProfile(req, true); errs != nil {
		badRequest(c, errs)
		return
	}

	u, err := uc.userService.CreateOrMerge(c.Request.Context(), middleware.UserID(c), user.ToDomainProfile(req))
	if err != nil {
		respondError(c, uc.logger, "CreateOrMerge()", "failed to create a user", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) GetMeHandler(c *gin.Context) {
	u, err := uc.userService.FindUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, uc.logger, "FindUser()", "failed to get a user", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateMeHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if errs := validator.ValidateProfile(req, false); errs != nil {
		badRequest(c, errs)
		return
	}

	u, err := uc.userService.UpdateProfile(c.Request.Context(), middleware.UserID(c), user.ToDomainProfile(req))
	if err != nil {
		respondError(c, uc.logger, "UpdateProfile()", "failed to update a user", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteMeHandler(c *gin.Context) {
	if err := uc.userService.DeleteUser(c.Request.Context(), middleware.UserID(c)); err != nil {
		respondError(c, uc.logger, "DeleteUser()", "failed to delete user", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) GetPlanHandler(c *gin.Context) {
	st, err := uc.entitlementService.Status(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, uc.logger, "Status()", "failed to get plan", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponsePlanStatus(*st))
}

func (uc *UserController) GetUsageHandler(c *gin.Context) {
	months := defaultHistoryMonths
	if m := c.Query("months"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be a positive integer"})
			return
		}
		months = n
	}

	records, err := uc.entitlementService.History(c.Request.Context(), middleware.UserID(c), months)
	if err != nil {
		respondError(c, uc.logger, "History()", "failed to get usage", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUsageHistory(records))
}

func (uc *UserController) SetCurrentResumeHandler(c *gin.Context) {
	var req user.CurrentResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	u, err := uc.userService.SetCurrentResume(c.Request.Context(), middleware.UserID(c), req.FileID)
	if err != nil {
		respondError(c, uc.logger, "SetCurrentResume()", "failed to set current resume", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}
