package handler

import (
	"log/slog"
	"net/http"

	"lookchat/internal/delivery/http/response"
	"lookchat/internal/domain/entity"
	"lookchat/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ConversationUC usecase.ConversationUsecase
	CompareUC      usecase.CompareUsecase
	Logger         *slog.Logger
}

// ChatHandler holds dependencies for conversation-related handlers
type ChatHandler struct {
	conversationUC usecase.ConversationUsecase
	compareUC      usecase.CompareUsecase
	logger         *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		conversationUC: params.ConversationUC,
		compareUC:      params.CompareUC,
		logger:         params.Logger,
	}
}

// SendMessageRequest represents the request body for sending a message
type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// QuickReplyRequest represents the request body for tapping a quick reply
type QuickReplyRequest struct {
	Label string `json:"label" validate:"required"`
}

// CompareRequest represents the request body for offering a product to the
// comparison tray
type CompareRequest struct {
	Product ProductPayload `json:"product" validate:"required"`
}

// StoreActionRequest represents the request body for a map-popup action
type StoreActionRequest struct {
	Action string       `json:"action" validate:"required,oneof=search details directions"`
	Store  StorePayload `json:"store" validate:"required"`
}

// ProductPayload mirrors the product fields the widget holds on a card.
type ProductPayload struct {
	ID               int64   `json:"id" validate:"required"`
	Name             string  `json:"name" validate:"required"`
	Brand            string  `json:"brand"`
	Category         string  `json:"category"`
	Department       string  `json:"department"`
	SKU              string  `json:"sku"`
	RetailPrice      float64 `json:"retail_price"`
	DistributionName string  `json:"distribution_name"`
}

// StorePayload mirrors the store fields the widget holds on a map marker.
type StorePayload struct {
	ID        int64   `json:"id" validate:"required"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

func (p ProductPayload) toEntity() entity.Product {
	return entity.Product{
		ID:               p.ID,
		Name:             p.Name,
		Brand:            p.Brand,
		Category:         p.Category,
		Department:       p.Department,
		SKU:              p.SKU,
		RetailPrice:      p.RetailPrice,
		DistributionName: p.DistributionName,
	}
}

func (s StorePayload) toEntity() entity.Store {
	return entity.Store{
		ID:        s.ID,
		Name:      s.Name,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
}

// SendMessage handles a typed user message and returns the turn's frame.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	frame, err := h.conversationUC.Submit(c.Request().Context(), sessionID, req.Text)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame, "Message processed successfully")
}

// TapQuickReply handles a quick-reply button tap.
func (h *ChatHandler) TapQuickReply(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req QuickReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quick reply input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	frame, err := h.conversationUC.TapQuickReply(c.Request().Context(), sessionID, req.Label)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame, "Quick reply processed successfully")
}

// OfferCompare handles offering a product card to the comparison tray.
func (h *ChatHandler) OfferCompare(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid compare input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	frame, err := h.compareUC.Offer(c.Request().Context(), sessionID, req.Product.toEntity())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame, "Comparison updated successfully")
}

// StoreAction handles a map-popup action on a store marker.
func (h *ChatHandler) StoreAction(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req StoreActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store action input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.StoreActionInput{
		Kind:  usecase.StoreActionKind(req.Action),
		Store: req.Store.toEntity(),
	}

	frame, err := h.conversationUC.StoreAction(c.Request().Context(), sessionID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, frame, "Store action processed successfully")
}
