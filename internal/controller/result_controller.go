package controller

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
	AuthService   *service.AuthService
}

func NewResultController(resultService *service.ResultService, authService *service.AuthService) *ResultController {
	return &ResultController{
		ResultService: resultService,
		AuthService:   authService,
	}
}

// Grade godoc
// @Summary Grade a submission
// @Description Reading and listening are auto-scored from the answer key; writing and speaking come from the grader's rubric. A submission can be graded exactly once.
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "submission id"
// @Param body body service.GradeInput true "rubric scores"
// @Success 201 {object} util.Response{data=model.Result}
// @Failure 400 {object} util.Response "band outside the scale"
// @Failure 409 {object} util.Response "already scored"
// @Router /api/submissions/{id}/grade [post]
func (c *ResultController) Grade(ctx *gin.Context) {
	var req service.GradeInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.ResultService.Grade(ctx.Request.Context(), util.ParseUintOrZero(ctx.Param("id")), req, user)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// AnswerKeys godoc
// @Summary Extract a test's answer keys
// @Description Returns the canonical reading and listening keys derived from the current content.
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "test id"
// @Success 200 {object} util.Response{data=scoring.TestAnswerKeys}
// @Router /api/tests/{id}/answer-keys [get]
func (c *ResultController) AnswerKeys(ctx *gin.Context) {
	keys, err := c.ResultService.AnswerKeys(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, keys)
}

// Get godoc
// @Summary Fetch one result
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "result id"
// @Success 200 {object} util.Response{data=model.Result}
// @Failure 404 {object} util.Response
// @Router /api/results/{id} [get]
func (c *ResultController) Get(ctx *gin.Context) {
	result, err := c.ResultService.Get(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// List godoc
// @Summary List results visible to the caller
// @Tags results
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Result}
// @Router /api/results [get]
func (c *ResultController) List(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var (
		results []*model.Result
		err     error
	)
	if user.Role == model.Student {
		results, err = c.ResultService.ListByStudent(user.ID)
	} else {
		results, err = c.ResultService.ListByTeacher(user.ID)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
