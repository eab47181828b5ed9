package controller

import (
	"errors"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/service"
	"github.com/yaxyobekuz/ielts-mock-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"omitempty,oneof=student teacher supervisor"`
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "registration payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "phone already registered"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      model.UserRole(req.Role),
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrPhoneRegistered) {
			util.Domain(ctx, err)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in with phone and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Phone, req.Password)
	if err != nil {
		util.Domain(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"role":      user.Role,
		},
	})
}

// Me godoc
// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
