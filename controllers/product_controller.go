package controllers

import (
	"errors"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/pkg/resp"
	"github.com/trung2605/bakery-assginment-be/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	svc *services.ProductService
}

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{svc: svc}
}

// GET /api/products?category=
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.svc.List(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /api/products/:id
func (ctl *ProductController) Get(c *gin.Context) {
	product, err := ctl.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}

// POST /api/products (admin)
func (ctl *ProductController) Create(c *gin.Context) {
	var product entity.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.svc.Save(&product); err != nil {
		ctl.respondSaveError(c, err)
		return
	}
	resp.Created(c, product)
}

// PUT /api/products/:id (admin)
func (ctl *ProductController) Update(c *gin.Context) {
	var product entity.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product.ProductID = c.Param("id")
	if err := ctl.svc.Save(&product); err != nil {
		ctl.respondSaveError(c, err)
		return
	}
	resp.OK(c, product)
}

// DELETE /api/products/:id (admin)
func (ctl *ProductController) Delete(c *gin.Context) {
	if err := ctl.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func (ctl *ProductController) respondSaveError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidProductID) || errors.Is(err, services.ErrNegativeStock) {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.ServerError(c, err)
}
