package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

type ProductHandler struct {
	create *usecase.CreateProduct
	query  usecase.ProductRepo
}

func NewProductHandler(create *usecase.CreateProduct, query usecase.ProductRepo) *ProductHandler {
	return &ProductHandler{create: create, query: query}
}

func (h *ProductHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	products, err := h.query.FindAll(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]productResp, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResp(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := domain.NewProductID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	p, err := h.query.FindByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResp(p))
}

type createProductReq struct {
	Name  string `json:"name" binding:"required"`
	Price struct {
		Cents    int64  `json:"cents" binding:"min=0"`
		Currency string `json:"currency" binding:"required,len=3"`
	} `json:"price" binding:"required"`
	Stock int `json:"stock" binding:"min=0"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	p, err := h.create.Execute(ctx, usecase.CreateProductInput{
		Name:       req.Name,
		PriceCents: req.Price.Cents,
		Currency:   req.Price.Currency,
		Stock:      req.Stock,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResp(p))
}
