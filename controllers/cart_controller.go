package controllers

import (
	"errors"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/pkg/resp"
	"github.com/trung2605/bakery-assginment-be/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{svc: svc}
}

// GET /api/cart/:cartId
func (ctl *CartController) Get(c *gin.Context) {
	view, err := ctl.svc.GetCart(c.Param("cartId"))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /api/cart — provisions a guest cart.
func (ctl *CartController) CreateGuest(c *gin.Context) {
	view, err := ctl.svc.CreateGuestCart()
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.Created(c, view)
}

type addItemReq struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// POST /api/cart/:cartId/items
func (ctl *CartController) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := ctl.svc.AddItemToCart(c.Param("cartId"), req.ProductID, req.Quantity)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, view)
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

// PUT /api/cart/:cartId/items/:itemId
func (ctl *CartController) UpdateItem(c *gin.Context) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := ctl.svc.UpdateQuantity(c.Param("cartId"), c.Param("itemId"), req.Quantity)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /api/cart/:cartId/items/:itemId
func (ctl *CartController) RemoveItem(c *gin.Context) {
	view, err := ctl.svc.RemoveItem(c.Param("cartId"), c.Param("itemId"))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /api/cart/:cartId/items
func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.svc.ClearCart(c.Param("cartId")); err != nil {
		ctl.respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

func (ctl *CartController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, entity.ErrCartItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInsufficientStock),
		errors.Is(err, services.ErrItemNotInCart):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
