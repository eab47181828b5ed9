package controller

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AudioController struct {
	AudioService *service.AudioService
	AuthService  *service.AuthService
}

func NewAudioController(audioService *service.AudioService, authService *service.AuthService) *AudioController {
	return &AudioController{
		AudioService: audioService,
		AuthService:  authService,
	}
}

// Upload godoc
// @Summary Upload a listening recording for a test
// @Tags audios
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "test id"
// @Param title formData string false "display title"
// @Param file formData file true "audio file"
// @Success 201 {object} util.Response{data=model.Audio}
// @Failure 400 {object} util.Response
// @Router /api/tests/{id}/audios [post]
func (c *AudioController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	audio, err := c.AudioService.Upload(ctx.Request.Context(), util.ParseUintOrZero(ctx.Param("id")), ctx.PostForm("title"), file, user.ID)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Created(ctx, audio)
}

// List godoc
// @Summary List a test's recordings
// @Tags audios
// @Produce json
// @Security BearerAuth
// @Param id path int true "test id"
// @Success 200 {object} util.Response{data=[]model.Audio}
// @Router /api/tests/{id}/audios [get]
func (c *AudioController) List(ctx *gin.Context) {
	audios, err := c.AudioService.ListByTest(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, audios)
}

// Delete godoc
// @Summary Delete a recording
// @Tags audios
// @Produce json
// @Security BearerAuth
// @Param id path int true "audio id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/audios/{id} [delete]
func (c *AudioController) Delete(ctx *gin.Context) {
	if err := c.AudioService.Delete(ctx.Request.Context(), util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
