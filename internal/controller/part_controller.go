package controller

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PartController struct {
	PartService *service.PartService
	AuthService *service.AuthService
}

func NewPartController(partService *service.PartService, authService *service.AuthService) *PartController {
	return &PartController{
		PartService: partService,
		AuthService: authService,
	}
}

// swagger:model AddPartRequest
type AddPartRequest struct {
	Module      string `json:"module" binding:"required,oneof=reading writing listening"`
	Description string `json:"description"`
}

// Add godoc
// @Summary Append a part to a test module
// @Tags parts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "test id"
// @Param body body AddPartRequest true "part payload"
// @Success 201 {object} util.Response{data=model.Part}
// @Failure 400 {object} util.Response "module full or not authorable"
// @Router /api/tests/{id}/parts [post]
func (c *PartController) Add(ctx *gin.Context) {
	var req AddPartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	part, err := c.PartService.Add(util.ParseUintOrZero(ctx.Param("id")), model.Module(req.Module), req.Description, user.ID)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Created(ctx, part)
}

// Get godoc
// @Summary Fetch a part with its sections
// @Tags parts
// @Produce json
// @Security BearerAuth
// @Param id path int true "part id"
// @Success 200 {object} util.Response{data=model.Part}
// @Failure 404 {object} util.Response
// @Router /api/parts/{id} [get]
func (c *PartController) Get(ctx *gin.Context) {
	part, err := c.PartService.Get(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, part)
}

// swagger:model UpdatePartRequest
type UpdatePartRequest struct {
	Description string `json:"description"`
}

// Update godoc
// @Summary Update a part's description
// @Tags parts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "part id"
// @Param body body UpdatePartRequest true "fields to update"
// @Success 200 {object} util.Response{data=model.Part}
// @Failure 404 {object} util.Response
// @Router /api/parts/{id} [put]
func (c *PartController) Update(ctx *gin.Context) {
	var req UpdatePartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	part, err := c.PartService.Update(util.ParseUintOrZero(ctx.Param("id")), req.Description)
	if err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, part)
}

// Delete godoc
// @Summary Delete a part and renumber the rest
// @Tags parts
// @Produce json
// @Security BearerAuth
// @Param id path int true "part id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/parts/{id} [delete]
func (c *PartController) Delete(ctx *gin.Context) {
	if err := c.PartService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.Domain(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
