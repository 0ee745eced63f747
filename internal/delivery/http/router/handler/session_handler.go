// Package handler contains the HTTP handlers for the chat widget API.
package handler

import (
	"log/slog"
	"net/http"

	"lookchat/internal/delivery/http/response"
	"lookchat/internal/domain/entity"
	domainerrors "lookchat/internal/domain/errors"
	"lookchat/internal/domain/repository"
	"lookchat/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	ConversationUC usecase.ConversationUsecase
	Logger         *slog.Logger
}

// SessionHandler holds dependencies for session lifecycle handlers
type SessionHandler struct {
	conversationUC usecase.ConversationUsecase
	logger         *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		conversationUC: params.ConversationUC,
		logger:         params.Logger,
	}
}

// CreateSession opens a new chat session and returns the greeting frame.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	out, err := h.conversationUC.StartSession(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out, "Session created successfully")
}

// HealthCheck reports service liveness.
func (h *SessionHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// parseSessionID extracts and validates the session ID path parameter. The
// returned error is an echo.HTTPError so the caller can return it directly.
func parseSessionID(c echo.Context) (uuid.UUID, error) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid session ID")
	}

	return sessionID, nil
}

// handleAppError maps domain sentinels to AppError responses and passes
// everything else to the global error handler.
func handleAppError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		err = domainerrors.ErrSessionNotFound
	case errors.Is(err, entity.ErrTurnInFlight):
		err = domainerrors.ErrTurnInFlight
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
