package controllers

import (
	"errors"
	"strconv"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/pkg/resp"
	"github.com/trung2605/bakery-assginment-be/services"

	"github.com/gin-gonic/gin"
)

type BranchController struct {
	svc *services.BranchService
}

func NewBranchController(svc *services.BranchService) *BranchController {
	return &BranchController{svc: svc}
}

type branchReq struct {
	Name    string `json:"name" binding:"required,max=255"`
	Address string `json:"address" binding:"required,max=500"`
	Hotline string `json:"hotline" binding:"max=20"`
	MapURL  string `json:"mapUrl" binding:"max=1000"`
}

// GET /api/branches
func (ctl *BranchController) List(c *gin.Context) {
	branches, err := ctl.svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, branches)
}

// GET /api/branches/:id
func (ctl *BranchController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid branch id")
		return
	}
	branch, err := ctl.svc.Get(uint(id))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, branch)
}

// POST /api/branches (admin)
func (ctl *BranchController) Create(c *gin.Context) {
	var req branchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	branch := entity.Branch{Name: req.Name, Address: req.Address, Hotline: req.Hotline, MapURL: req.MapURL}
	if err := ctl.svc.Create(&branch); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, branch)
}

// PUT /api/branches/:id (admin)
func (ctl *BranchController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid branch id")
		return
	}
	var req branchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	branch, err := ctl.svc.Update(uint(id), &entity.Branch{Name: req.Name, Address: req.Address, Hotline: req.Hotline, MapURL: req.MapURL})
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, branch)
}

// DELETE /api/branches/:id (admin)
func (ctl *BranchController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid branch id")
		return
	}
	if err := ctl.svc.Delete(uint(id)); err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func (ctl *BranchController) respondError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrBranchNotFound) {
		resp.NotFound(c, "branch not found")
		return
	}
	resp.ServerError(c, err)
}
