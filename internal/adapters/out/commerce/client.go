package commerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"khasdash/internal/core/domain/model/order"
	"khasdash/internal/pkg/errs"
)

// DefaultPageSize is the fixed bounded page cap sent with every fetch.
// The dashboard never paginates beyond this single page.
const DefaultPageSize = 100

const defaultTimeout = 15 * time.Second

// Config holds the settings the order source client requires. BaseURL and
// BearerToken are required; PageSize defaults to DefaultPageSize when zero.
type Config struct {
	// BaseURL is the orders endpoint, e.g. "https://shop.example.com/wp-json/wc/v3/orders".
	BaseURL string

	// BearerToken is attached to every request as "Authorization: Bearer <token>".
	BearerToken string

	// PageSize caps the number of orders fetched in the single bounded page.
	PageSize int
}

// Validate checks the required configuration fields.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errs.NewValueIsRequiredError("orders base URL")
	}
	if strings.TrimSpace(c.BearerToken) == "" {
		return errs.NewValueIsRequiredError("orders bearer token")
	}
	return nil
}

// Client implements the OrderSource port against the commerce HTTP API.
// Each FetchOrders call performs exactly one outbound GET; the client never
// retries on its own.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an order source client from explicit configuration.
// A nil httpClient gets a default with a sane timeout.
func NewClient(config Config, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.PageSize <= 0 {
		config.PageSize = DefaultPageSize
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     logger.With("component", "commerce_client"),
	}, nil
}

// FetchOrders performs one authenticated bounded fetch of orders created
// after the given instant. The boundary is sent as an ISO-8601 local
// timestamp without a timezone suffix, matching what the order API expects.
//
// A transport failure or non-2xx status yields a FetchError; the response
// body is otherwise parsed into the order domain model verbatim. Rows that
// fail domain validation are skipped with a warning rather than failing the
// whole fetch.
func (c *Client) FetchOrders(ctx context.Context, after time.Time) ([]*order.Order, error) {
	fetchID := uuid.NewString()

	reqURL, err := c.buildURL(after)
	if err != nil {
		return nil, errs.NewFetchErrorWithCause("invalid orders URL", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errs.NewFetchErrorWithCause("build orders request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.BearerToken)
	req.Header.Set("Accept", "application/json")

	c.logger.InfoContext(ctx, "Fetching orders",
		"fetch_id", fetchID,
		"after", after.Format(dateCreatedLayout),
		"per_page", c.config.PageSize,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewFetchErrorWithCause("orders request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, errs.NewFetchErrorWithStatus(
			fmt.Sprintf("order source returned %s", resp.Status), resp.StatusCode)
	}

	var dtos []orderDTO
	if err = json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, errs.NewFetchErrorWithCause("decode orders response", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			c.logger.WarnContext(ctx, "Skipping malformed order row",
				"fetch_id", fetchID, "order_id", dto.ID, "error", mapErr)
			continue
		}
		orders = append(orders, o)
	}

	c.logger.InfoContext(ctx, "Fetched orders", "fetch_id", fetchID, "count", len(orders))
	return orders, nil
}

func (c *Client) buildURL(after time.Time) (string, error) {
	u, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("after", after.Format(dateCreatedLayout))
	q.Set("per_page", strconv.Itoa(c.config.PageSize))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
