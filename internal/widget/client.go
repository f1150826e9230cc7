package widget

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"countdown/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	activeTimersPath   = "/api/public/timers/active"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 4 << 10
)

// TimerSource lists the running timers a storefront should display.
type TimerSource interface {
	ActiveTimers(ctx context.Context, shop, productID string) ([]*entity.Timer, error)
}

// HTTPClient reads active timers from the public storefront endpoint.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a client for the API served at baseURL.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("widget api url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errors.Wrap(err, "invalid widget api url")
	}

	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger: logger,
	}, nil
}

type activeTimersResponse struct {
	Data []*entity.Timer `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ActiveTimers fetches the shop's running timers, narrowed to productID when set.
func (c *HTTPClient) ActiveTimers(ctx context.Context, shop, productID string) ([]*entity.Timer, error) {
	query := url.Values{}
	query.Set("shop", shop)
	if productID != "" {
		query.Set("product", productID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+activeTimersPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch active timers")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp)
	}

	var body activeTimersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode active timers")
	}

	c.logger.Debug("Fetched active timers",
		slog.String("shop", shop),
		slog.Int("count", len(body.Data)),
	)

	return body.Data, nil
}

func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var body errorResponse
	if json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
		return errors.Errorf("HTTP error! status: %d (%s)", resp.StatusCode, body.Error.Message)
	}

	return errors.Errorf("HTTP error! status: %d", resp.StatusCode)
}
