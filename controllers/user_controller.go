package controllers

import (
	"errors"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/pkg/resp"
	"github.com/trung2605/bakery-assginment-be/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

// GET /api/users (admin)
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /api/users/:id (admin or self)
func (ctl *UserController) Get(c *gin.Context) {
	if !ctl.canAccess(c) {
		resp.Forbidden(c, "forbidden")
		return
	}
	user, err := ctl.svc.Get(c.Param("id"))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, user)
}

type updateProfileReq struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

// PATCH /api/users/:id (admin or self)
func (ctl *UserController) Update(c *gin.Context) {
	if !ctl.canAccess(c) {
		resp.Forbidden(c, "forbidden")
		return
	}
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	user, err := ctl.svc.UpdateProfile(c.Param("id"), updates)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /api/users/:id (admin). The user's cart is detached, not deleted.
func (ctl *UserController) Delete(c *gin.Context) {
	if err := ctl.svc.Delete(c.Param("id")); err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// canAccess allows admins, and users acting on their own id.
func (ctl *UserController) canAccess(c *gin.Context) bool {
	if c.GetInt("role") == entity.RoleAdmin {
		return true
	}
	return c.GetString("userId") == c.Param("id")
}

func (ctl *UserController) respondError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrUserNotFound) {
		resp.NotFound(c, "user not found")
		return
	}
	resp.ServerError(c, err)
}
