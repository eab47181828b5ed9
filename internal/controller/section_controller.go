package controller

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SectionController struct {
	SectionService *service.SectionService
	AuthService    *service.AuthService
}

func NewSectionController(sectionService *service.SectionService, authService *service.AuthService) *SectionController {
	return &SectionController{
		SectionService: sectionService,
		AuthService:    authService,
	}
}

// Create godoc
// @Summary Add a section to a part
// @Description Validates the content payload against its declared type and derives the question count.
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "part id"
// @Param body body service.SectionInput true "section payload"
// @Success 201 {object} util.Response{data=model.Section}
// @Failure 400 {object} util.Response "unknown type or malformed content"
// @Router /api/parts/{id}/sections [post]
func (c *SectionController) Create(ctx *gin.Context) {
	var req service.SectionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	section, err := c.SectionService.Create(util.ParseUintOrZero(ctx.Param("id")), req, user)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Created(ctx, section)
}

// Update godoc
// @Summary Update a section's payload
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "section id"
// @Param body body service.SectionInput true "section payload"
// @Success 200 {object} util.Response{data=model.Section}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sections/{id} [put]
func (c *SectionController) Update(ctx *gin.Context) {
	var req service.SectionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.SectionService.Update(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, section)
}

// Delete godoc
// @Summary Remove a section
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param id path int true "section id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sections/{id} [delete]
func (c *SectionController) Delete(ctx *gin.Context) {
	if err := c.SectionService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
