package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/hqv2816/storefront-api/internal/adapter/http/middleware"
	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/session"
	"github.com/hqv2816/storefront-api/internal/usecase"
	"github.com/hqv2816/storefront-api/internal/validation"
)

type OrderHandler struct {
	create   *usecase.CreateOrder
	update   *usecase.UpdateOrderStatus
	query    usecase.OrderRepo
	validate *validatorv10.Validate
}

func NewOrderHandler(create *usecase.CreateOrder, update *usecase.UpdateOrderStatus, query usecase.OrderRepo) *OrderHandler {
	return &OrderHandler{
		create:   create,
		update:   update,
		query:    query,
		validate: validation.New(),
	}
}

// Create places an order for the authenticated customer.
func (h *OrderHandler) Create(c *gin.Context) {
	var req validation.CreateOrderRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	caller := session.User(c.Request.Context())
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	items := make([]usecase.OrderItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.create.Execute(ctx, usecase.CreateOrderInput{
		CustomerID: caller.ID,
		Items:      items,
	})
	middleware.RecordOrderOperation("create", err == nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResp(order))
}

func (h *OrderHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	order, err := h.query.FindByID(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !mayAccess(c, order.CustomerID) {
		// hide existence from other customers
		writeError(c, domain.ErrOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, toOrderResp(order))
}

func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	customerID := c.Param("id")
	if !mayAccess(c, customerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	orders, err := h.query.FindByCustomer(ctx, customerID)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]orderResp, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResp(o))
	}
	c.JSON(http.StatusOK, out)
}

// Process and Complete are admin transitions; Cancel is available to the
// order's owner as well.
func (h *OrderHandler) Process(c *gin.Context) {
	h.applyTransition(c, usecase.TransitionProcess, false)
}

func (h *OrderHandler) Complete(c *gin.Context) {
	h.applyTransition(c, usecase.TransitionComplete, false)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, usecase.TransitionCancel, true)
}

func (h *OrderHandler) applyTransition(c *gin.Context, t usecase.OrderTransition, ownerAllowed bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	id := c.Param("id")
	if ownerAllowed {
		order, err := h.query.FindByID(ctx, id)
		if err != nil {
			writeError(c, err)
			return
		}
		if !mayAccess(c, order.CustomerID) {
			writeError(c, domain.ErrOrderNotFound)
			return
		}
	}

	order, err := h.update.Execute(ctx, id, t)
	middleware.RecordOrderOperation(string(t), err == nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResp(order))
}

// mayAccess reports whether the caller owns the resource or is an admin.
func mayAccess(c *gin.Context, customerID string) bool {
	caller := session.User(c.Request.Context())
	if caller == nil {
		return false
	}
	return caller.IsAdmin() || caller.ID == customerID
}
