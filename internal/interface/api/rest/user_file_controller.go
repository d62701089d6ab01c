package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/application/services"
	domain "resume-evaluator-api/internal/domain/user_file"
	"resume-evaluator-api/internal/interface/api/rest/dto/user_file"
	"resume-evaluator-api/internal/interface/api/rest/middleware"
	"resume-evaluator-api/internal/interface/api/rest/validator"
)

type UserFileController struct {
	userFileService ports.UserFileService
	logger          *zap.Logger
}

func NewUserFileController(
	r *gin.Engine,
	userFileService ports.UserFileService,
	logger *zap.Logger,
	tokens ports.TokenValidator,
) *UserFileController {
	ufc := &UserFileController{
		userFileService: userFileService,
		logger:          logger,
	}

	auth := middleware.AuthMiddleware(tokens)
	r.GET(RouteFiles, auth, ufc.GetUserFilesHandler)
	r.POST(RouteFileResume, auth, ufc.UploadResumeHandler)
	r.DELETE(RouteFile, auth, ufc.DeleteUserFileHandler)

	return ufc
}

func (ufc *UserFileController) GetUserFilesHandler(c *gin.Context) {
	var fileType *domain.FileType
	if v := c.Query("file_type"); v != "" {
		ft, ok := domain.ParseFileType(v)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown file_type"})
			return
		}
		fileType = &ft
	}

	files, err := ufc.userFileService.ListFiles(c.Request.Context(), middleware.UserID(c), fileType)
	if err != nil {
		respondError(c, ufc.logger, "ListFiles()", "failed to get files", err)
		return
	}

	c.JSON(http.StatusOK, user_file.ResponseData{
		Data: user_file.ToResponseUserFiles(files),
	})
}

func (ufc *UserFileController) UploadResumeHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxUploadBytes+(1<<20))

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > services.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	up, err := ufc.userFileService.UploadResume(c.Request.Context(), middleware.UserID(c), fh)
	if err != nil {
		respondError(c, ufc.logger, "UploadResume()", "failed to upload a file", err)
		return
	}

	c.JSON(http.StatusCreated, user_file.ToResponseUpload(*up))
}

func (ufc *UserFileController) DeleteUserFileHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("file_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a positive integer"})
		return
	}

	if err = ufc.userFileService.DeleteFile(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, ufc.logger, "DeleteFile()", "failed to delete file", err)
		return
	}

	c.Status(http.StatusNoContent)
}
