package controller

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LinkController struct {
	LinkService *service.LinkService
	AuthService *service.AuthService
}

func NewLinkController(linkService *service.LinkService, authService *service.AuthService) *LinkController {
	return &LinkController{
		LinkService: linkService,
		AuthService: authService,
	}
}

// Create godoc
// @Summary Create a shareable test link
// @Tags links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateLinkInput true "link payload"
// @Success 201 {object} util.Response{data=model.Link}
// @Failure 404 {object} util.Response
// @Router /api/links [post]
func (c *LinkController) Create(ctx *gin.Context) {
	var req service.CreateLinkInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	link, err := c.LinkService.Create(ctx.Request.Context(), req, user)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Created(ctx, link)
}

// List godoc
// @Summary List the caller's links
// @Tags links
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Link}
// @Router /api/links [get]
func (c *LinkController) List(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	links, err := c.LinkService.ListByCreator(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, links)
}

// Preview godoc
// @Summary Open a link as a candidate
// @Description Returns the sanitized test view: no answers, no correct indices, shuffled option banks. Counts a visit.
// @Tags links
// @Produce json
// @Param token path string true "link token"
// @Success 200 {object} util.Response{data=service.TestPreview}
// @Failure 404 {object} util.Response
// @Router /api/links/{token}/preview [get]
func (c *LinkController) Preview(ctx *gin.Context) {
	preview, err := c.LinkService.Preview(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, preview)
}

// Delete godoc
// @Summary Delete a link
// @Tags links
// @Produce json
// @Security BearerAuth
// @Param token path string true "link token"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/links/{token} [delete]
func (c *LinkController) Delete(ctx *gin.Context) {
	if err := c.LinkService.Delete(ctx.Param("token")); err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
