package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"lookchat/internal/delivery/http/response"
	"lookchat/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the cart
type AddItemRequest struct {
	Product ProductPayload `json:"product" validate:"required"`
}

// AddItem handles adding a product card to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	frame, err := h.cartUC.Add(c.Request().Context(), sessionID, req.Product.toEntity())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame, "Cart updated successfully")
}

// RemoveItem handles removing a product from the cart by ID.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	frame, err := h.cartUC.Remove(c.Request().Context(), sessionID, productID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame, "Cart updated successfully")
}

// Checkout handles submitting the cart as an order.
func (h *CartHandler) Checkout(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	frame, err := h.cartUC.Checkout(c.Request().Context(), sessionID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame, "Checkout processed")
}
