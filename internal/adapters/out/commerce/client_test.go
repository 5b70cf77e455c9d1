package commerce_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khasdash/internal/adapters/out/commerce"
	"khasdash/internal/core/domain/model/order"
	"khasdash/internal/pkg/errs"
)

const ordersBody = `[
  {
    "id": 1043,
    "number": "1043",
    "status": "pending",
    "date_created": "2024-05-15T09:30:00",
    "total": "1450.00",
    "currency": "PKR",
    "payment_method_title": "Cash on delivery",
    "billing": {"first_name": "Ayesha"},
    "shipping": {"address_1": "House 12, Block 5, Clifton"},
    "line_items": [
      {"id": 1, "name": "Chicken Karahi", "quantity": 2, "total": "1200.00"}
    ],
    "meta_data": [
      {"key": "delivery_coordinates", "value": "24.8607,67.0011"},
      {"key": "loyalty_points", "value": 35}
    ],
    "rider_name": "Bilal",
    "customer_id": 77
  },
  {
    "id": 1044,
    "number": "1044",
    "status": "weird-future-status",
    "date_created": "2024-05-15T10:00:00",
    "total": "300.00",
    "currency": "PKR",
    "billing": {},
    "shipping": {},
    "line_items": [],
    "meta_data": []
  }
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*commerce.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := commerce.NewClient(commerce.Config{
		BaseURL:     server.URL + "/wp-json/wc/v3/orders",
		BearerToken: "secret-token",
	}, server.Client(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return client, server
}

func TestNewClient_ConfigValidation(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("missing_base_url", func(t *testing.T) {
		_, err := commerce.NewClient(commerce.Config{BearerToken: "x"}, nil, logger)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing_token", func(t *testing.T) {
		_, err := commerce.NewClient(commerce.Config{BaseURL: "https://x"}, nil, logger)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestClient_FetchOrders(t *testing.T) {
	after := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	t.Run("sends_boundary_page_cap_and_bearer_credential", func(t *testing.T) {
		var gotAuth, gotAfter, gotPerPage string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotAfter = r.URL.Query().Get("after")
			gotPerPage = r.URL.Query().Get("per_page")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
		})

		_, err := client.FetchOrders(context.Background(), after)

		require.NoError(t, err)
		assert.Equal(t, "Bearer secret-token", gotAuth)
		assert.Equal(t, "2024-05-15T00:00:00", gotAfter, "boundary must be ISO-8601 local, no zone suffix")
		assert.Equal(t, "100", gotPerPage)
	})

	t.Run("parses_orders_verbatim", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(ordersBody))
		})

		orders, err := client.FetchOrders(context.Background(), after)

		require.NoError(t, err)
		require.Len(t, orders, 2)

		first := orders[0]
		assert.Equal(t, int64(1043), first.ID())
		assert.Equal(t, order.StatusPending, first.Status())
		assert.Equal(t, "1450.00", first.Total())
		assert.Equal(t, "PKR", first.Currency())
		assert.Equal(t, "Ayesha", first.CustomerName())
		assert.Equal(t, "Bilal", first.RiderName())
		assert.Equal(t, int64(77), first.CustomerID())

		raw, ok := first.RawCoordinates()
		assert.True(t, ok)
		assert.Equal(t, "24.8607,67.0011", raw)

		points, ok := first.MetaValue("loyalty_points")
		assert.True(t, ok)
		assert.Equal(t, "35", points, "non-string metadata values are kept as raw JSON text")

		// Unknown statuses are accepted, not rejected.
		assert.Equal(t, order.Status("weird-future-status"), orders[1].Status())
		assert.Empty(t, orders[1].RiderName())
	})

	t.Run("non_success_status_yields_fetch_error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "upstream exploded", http.StatusBadGateway)
		})

		_, err := client.FetchOrders(context.Background(), after)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrFetchFailed)

		var fetchErr *errs.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, http.StatusBadGateway, fetchErr.StatusCode)
	})

	t.Run("transport_failure_yields_fetch_error", func(t *testing.T) {
		client, server := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		server.Close()

		_, err := client.FetchOrders(context.Background(), after)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrFetchFailed)
	})

	t.Run("malformed_body_yields_fetch_error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		})

		_, err := client.FetchOrders(context.Background(), after)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrFetchFailed)
	})

	t.Run("rows_failing_validation_are_skipped", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[
				{"id": 0, "date_created": "2024-05-15T10:00:00"},
				{"id": 7, "date_created": "2024-05-15T10:00:00"}
			]`))
		})

		orders, err := client.FetchOrders(context.Background(), after)

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, int64(7), orders[0].ID())
	})
}
