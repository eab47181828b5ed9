package controller

import (
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.StatsService
	AuthService  *service.AuthService
}

func NewStatsController(statsService *service.StatsService, authService *service.AuthService) *StatsController {
	return &StatsController{
		StatsService: statsService,
		AuthService:  authService,
	}
}

// Dashboard godoc
// @Summary Last seven days of activity
// @Description Days without activity come back zero-valued, oldest first.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Stat}
// @Router /api/stats/dashboard [get]
func (c *StatsController) Dashboard(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	days, err := c.StatsService.Dashboard(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, days)
}

// Detailed godoc
// @Summary Bucketed activity over a date range
// @Description Bucket width adapts to the range: hours up to two days, days up to three months, months up to two years, else years.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param from query string true "range start (RFC 3339)"
// @Param to query string true "range end (RFC 3339)"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/stats/detailed [get]
func (c *StatsController) Detailed(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	from, err := time.Parse(time.RFC3339, ctx.Query("from"))
	if err != nil {
		util.BadRequest(ctx, "invalid from")
		return
	}
	to, err := time.Parse(time.RFC3339, ctx.Query("to"))
	if err != nil {
		util.BadRequest(ctx, "invalid to")
		return
	}
	if !to.After(from) {
		util.BadRequest(ctx, "to must be after from")
		return
	}

	granularity, buckets, err := c.StatsService.Detailed(user.ID, from, to)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"granularity": granularity,
		"buckets":     buckets,
	})
}

// Lifetime godoc
// @Summary Lifetime aggregate for the caller
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserStat}
// @Router /api/stats/me [get]
func (c *StatsController) Lifetime(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stat, err := c.StatsService.UserStats(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stat)
}

// Recalculate godoc
// @Summary Rebuild a user's lifetime aggregate from source tables
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=model.UserStat}
// @Router /api/stats/users/{id}/recalculate [post]
func (c *StatsController) Recalculate(ctx *gin.Context) {
	stat, err := c.StatsService.RecalculateUserStats(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stat)
}

// Backfill godoc
// @Summary Rebuild daily result counters over a date range
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param from query string true "range start (RFC 3339)"
// @Param to query string true "range end (RFC 3339)"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/stats/backfill [post]
func (c *StatsController) Backfill(ctx *gin.Context) {
	from, err := time.Parse(time.RFC3339, ctx.Query("from"))
	if err != nil {
		util.BadRequest(ctx, "invalid from")
		return
	}
	to, err := time.Parse(time.RFC3339, ctx.Query("to"))
	if err != nil {
		util.BadRequest(ctx, "invalid to")
		return
	}

	if err := c.StatsService.Backfill(from, to); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
