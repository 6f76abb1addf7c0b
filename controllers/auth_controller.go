package controllers

import (
	"errors"
	"time"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/pkg/resp"
	"github.com/trung2605/bakery-assginment-be/services"
	"github.com/trung2605/bakery-assginment-be/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users     *services.UserService
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthController(users *services.UserService, jwtSecret string, jwtTTL time.Duration) *AuthController {
	return &AuthController{users: users, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

type AuthResponse struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      int    `json:"role"`
	CartID    string `json:"cartId,omitempty"`
	Token     string `json:"token"`
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, cartID, err := ctl.users.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrPhoneTaken):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	token, err := utils.GenerateToken(user.UserID, user.Role, ctl.jwtSecret, ctl.jwtTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, ctl.authResponse(user, cartID, token))
}

type loginReq struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// POST /api/auth/login — identifier is an email or a CUS user id.
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.users.Authenticate(req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}

	cartID, err := ctl.users.CartIDForUser(user.UserID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	token, err := utils.GenerateToken(user.UserID, user.Role, ctl.jwtSecret, ctl.jwtTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ctl.authResponse(user, cartID, token))
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	userID := c.GetString("userId")
	user, err := ctl.users.Get(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

func (ctl *AuthController) authResponse(user *entity.User, cartID, token string) AuthResponse {
	return AuthResponse{
		UserID:    user.UserID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CartID:    cartID,
		Token:     token,
	}
}
