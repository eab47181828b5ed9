package controller

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
	AuthService       *service.AuthService
}

func NewSubmissionController(submissionService *service.SubmissionService, authService *service.AuthService) *SubmissionController {
	return &SubmissionController{
		SubmissionService: submissionService,
		AuthService:       authService,
	}
}

// Start godoc
// @Summary Start a test sitting via a link token
// @Description Claims one link use atomically; refused once the link is exhausted.
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param token path string true "link token"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 409 {object} util.Response "link exhausted"
// @Router /api/links/{token}/start [post]
func (c *SubmissionController) Start(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	submission, err := c.SubmissionService.Start(ctx.Request.Context(), ctx.Param("token"), user)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Created(ctx, submission)
}

// SaveAnswers godoc
// @Summary Save one module's answers
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "submission id"
// @Param body body service.SaveAnswersInput true "module answers"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 409 {object} util.Response "already finished or scored"
// @Router /api/submissions/{id}/answers [put]
func (c *SubmissionController) SaveAnswers(ctx *gin.Context) {
	var req service.SaveAnswersInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	submission, err := c.SubmissionService.SaveAnswers(util.ParseUintOrZero(ctx.Param("id")), user.ID, req)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// Finish godoc
// @Summary Close the sitting
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "submission id"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 404 {object} util.Response
// @Router /api/submissions/{id}/finish [post]
func (c *SubmissionController) Finish(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	submission, err := c.SubmissionService.Finish(util.ParseUintOrZero(ctx.Param("id")), user.ID)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// Get godoc
// @Summary Fetch one submission
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "submission id"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 404 {object} util.Response
// @Router /api/submissions/{id} [get]
func (c *SubmissionController) Get(ctx *gin.Context) {
	submission, err := c.SubmissionService.Get(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// List godoc
// @Summary List submissions visible to the caller
// @Description Students see their own sittings; teachers see submissions against their links. Pass ungraded=true for the grading queue.
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param ungraded query bool false "only ungraded"
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Router /api/submissions [get]
func (c *SubmissionController) List(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var (
		submissions []*model.Submission
		err         error
	)
	switch {
	case user.Role == model.Student:
		submissions, err = c.SubmissionService.ListByStudent(user.ID)
	case ctx.Query("ungraded") == "true":
		submissions, err = c.SubmissionService.ListUngraded(user.ID)
	default:
		submissions, err = c.SubmissionService.ListByTeacher(user.ID)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}
