package controller

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
	AuthService *service.AuthService
}

func NewTestController(testService *service.TestService, authService *service.AuthService) *TestController {
	return &TestController{
		TestService: testService,
		AuthService: authService,
	}
}

// Create godoc
// @Summary Create a test with one empty part per module
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateTestInput true "test payload"
// @Success 201 {object} util.Response{data=model.Test}
// @Failure 400 {object} util.Response
// @Router /api/tests [post]
func (c *TestController) Create(ctx *gin.Context) {
	var req service.CreateTestInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	test, err := c.TestService.Create(ctx.Request.Context(), req, user)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Created(ctx, test)
}

// Get godoc
// @Summary Fetch a test with its parts and sections
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "test id"
// @Success 200 {object} util.Response{data=model.Test}
// @Failure 404 {object} util.Response
// @Router /api/tests/{id} [get]
func (c *TestController) Get(ctx *gin.Context) {
	test, err := c.TestService.Get(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, test)
}

// List godoc
// @Summary List the caller's tests
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Test}
// @Router /api/tests [get]
func (c *TestController) List(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var (
		tests []*model.Test
		err   error
	)
	if user.Role == model.Supervisor {
		tests, err = c.TestService.ListBySupervisor(user.ID)
	} else {
		tests, err = c.TestService.ListByCreator(user.ID)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tests)
}

// Update godoc
// @Summary Update test metadata and durations
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "test id"
// @Param body body service.UpdateTestInput true "fields to update"
// @Success 200 {object} util.Response{data=model.Test}
// @Failure 404 {object} util.Response
// @Router /api/tests/{id} [put]
func (c *TestController) Update(ctx *gin.Context) {
	var req service.UpdateTestInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.TestService.Update(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, test)
}

// Delete godoc
// @Summary Soft-delete a test
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "test id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/tests/{id} [delete]
func (c *TestController) Delete(ctx *gin.Context) {
	if err := c.TestService.Delete(ctx.Request.Context(), util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Copy godoc
// @Summary Duplicate a test under the caller's ownership
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "test id"
// @Success 201 {object} util.Response{data=model.Test}
// @Failure 404 {object} util.Response
// @Router /api/tests/{id}/copy [post]
func (c *TestController) Copy(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dup, err := c.TestService.Copy(ctx.Request.Context(), util.ParseUintOrZero(ctx.Param("id")), user)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Created(ctx, dup)
}
