package controller

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TemplateController struct {
	TemplateService *service.TemplateService
	AuthService     *service.AuthService
}

func NewTemplateController(templateService *service.TemplateService, authService *service.AuthService) *TemplateController {
	return &TemplateController{
		TemplateService: templateService,
		AuthService:     authService,
	}
}

// Create godoc
// @Summary Create a test blueprint
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TemplateInput true "template payload"
// @Success 201 {object} util.Response{data=model.Template}
// @Router /api/templates [post]
func (c *TemplateController) Create(ctx *gin.Context) {
	var req service.TemplateInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	template, err := c.TemplateService.Create(ctx.Request.Context(), req, user.ID)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Created(ctx, template)
}

// List godoc
// @Summary List active templates
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Template}
// @Router /api/templates [get]
func (c *TemplateController) List(ctx *gin.Context) {
	templates, err := c.TemplateService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, templates)
}

// Get godoc
// @Summary Fetch one template
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Param id path int true "template id"
// @Success 200 {object} util.Response{data=model.Template}
// @Failure 404 {object} util.Response
// @Router /api/templates/{id} [get]
func (c *TemplateController) Get(ctx *gin.Context) {
	template, err := c.TemplateService.Get(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, template)
}

// Update godoc
// @Summary Update a template
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "template id"
// @Param body body service.TemplateInput true "template payload"
// @Success 200 {object} util.Response{data=model.Template}
// @Failure 404 {object} util.Response
// @Router /api/templates/{id} [put]
func (c *TemplateController) Update(ctx *gin.Context) {
	var req service.TemplateInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	template, err := c.TemplateService.Update(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, template)
}

// Delete godoc
// @Summary Delete a template
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Param id path int true "template id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/templates/{id} [delete]
func (c *TemplateController) Delete(ctx *gin.Context) {
	if err := c.TemplateService.Delete(ctx.Request.Context(), util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
