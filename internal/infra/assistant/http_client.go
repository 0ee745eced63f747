// Package assistant implements the HTTP gateway to the backend assistant
// service.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"lookchat/config"
	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// httpAssistant implements service.AssistantService over plain HTTP with
// JSON bodies, matching the backend's /chat, /cart and /checkout endpoints.
type httpAssistant struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates the assistant gateway from configuration.
func New(cfg *config.Config, logger *slog.Logger) service.AssistantService {
	timeout := cfg.Assistant.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpAssistant{
		baseURL: cfg.Assistant.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Chat sends one user turn as GET /chat?message=<text>.
func (a *httpAssistant) Chat(ctx context.Context, message string) (*service.ChatReply, error) {
	endpoint := a.baseURL + "/chat?message=" + url.QueryEscape(message)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("assistant returned non-success status: %d", resp.StatusCode)
	}

	var reply service.ChatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, errors.Wrap(err, "decode chat reply")
	}

	return &reply, nil
}

// CartSummary sends the ordered cart contents as POST /cart.
func (a *httpAssistant) CartSummary(ctx context.Context, items []entity.Product) (*service.CartSummary, error) {
	if items == nil {
		items = []entity.Product{}
	}
	body, err := json.Marshal(items)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := a.post(ctx, "/cart", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("assistant returned non-success status: %d", resp.StatusCode)
	}

	var summary service.CartSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, errors.Wrap(err, "decode cart summary")
	}

	return &summary, nil
}

// Checkout submits the cart as POST /checkout. A non-success status with a
// decodable body becomes a *service.CheckoutRejectedError carrying the
// backend's human-readable detail.
func (a *httpAssistant) Checkout(ctx context.Context, items []entity.Product) (*service.OrderConfirmation, error) {
	if items == nil {
		items = []entity.Product{}
	}
	body, err := json.Marshal(map[string]any{"cart": items})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := a.post(ctx, "/checkout", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, a.checkoutRejection(resp)
	}

	var confirmation service.OrderConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, errors.Wrap(err, "decode order confirmation")
	}

	return &confirmation, nil
}

func (a *httpAssistant) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return resp, nil
}

func (a *httpAssistant) checkoutRejection(resp *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err == nil {
		// Detail stays empty on a malformed body; the caller falls back
		// to a generic message.
		_ = json.Unmarshal(raw, &payload)
	}

	a.logger.Warn("checkout rejected by assistant",
		slog.Int("status", resp.StatusCode),
		slog.String("detail", payload.Detail),
	)

	return &service.CheckoutRejectedError{
		StatusCode: resp.StatusCode,
		Detail:     payload.Detail,
	}
}
