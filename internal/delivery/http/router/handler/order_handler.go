package handler

import (
	"log/slog"
	"net/http"

	"easyshop/internal/delivery/http/middleware"
	"easyshop/internal/delivery/http/response"
	"easyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the checkout handler.
type OrderHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Checkout handles POST /orders: it converts the authenticated user's cart
// into an order. The request carries no body; the cart is the input.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.Checkout(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order created")
}
