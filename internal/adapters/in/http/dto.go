package http

import (
	"khasdash/internal/core/application/dashboard"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SelectWindowRequest is the JSON body for POST /api/v1/dashboard/window.
type SelectWindowRequest struct {
	Name string `json:"name"`
}

// SelectBucketRequest is the JSON body for POST /api/v1/dashboard/bucket.
type SelectBucketRequest struct {
	ID string `json:"id"`
}

// LineItemResponse is a single purchased item within an order.
type LineItemResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
}

// OrderResponse is a single order as shown on the dashboard.
type OrderResponse struct {
	ID              int64              `json:"id"`
	Number          string             `json:"number"`
	Status          string             `json:"status"`
	CreatedAt       string             `json:"created_at"`
	Total           string             `json:"total"`
	Currency        string             `json:"currency"`
	PaymentMethod   string             `json:"payment_method"`
	CustomerName    string             `json:"customer_name"`
	ShippingAddress string             `json:"shipping_address"`
	RiderName       string             `json:"rider_name,omitempty"`
	Area            string             `json:"area,omitempty"`
	LineItems       []LineItemResponse `json:"line_items"`
}

// DashboardResponse is the JSON body for GET /api/v1/dashboard.
type DashboardResponse struct {
	LoadState    string          `json:"load_state"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Window       string          `json:"window"`
	Bucket       string          `json:"bucket"`
	BucketCounts map[string]int  `json:"bucket_counts"`
	Orders       []OrderResponse `json:"orders"`
}

const createdAtLayout = "2006-01-02T15:04:05"

func toDashboardResponse(snapshot dashboard.Snapshot) DashboardResponse {
	counts := make(map[string]int, len(snapshot.BucketCounts))
	for bucket, count := range snapshot.BucketCounts {
		counts[bucket.ID()] = count
	}

	orders := make([]OrderResponse, len(snapshot.VisibleOrders))
	for i, ord := range snapshot.VisibleOrders {
		items := make([]LineItemResponse, len(ord.LineItems()))
		for j, item := range ord.LineItems() {
			items[j] = LineItemResponse{
				ID:       item.ID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Total:    item.Total,
			}
		}

		orders[i] = OrderResponse{
			ID:              ord.ID(),
			Number:          ord.Number(),
			Status:          ord.Status().String(),
			CreatedAt:       ord.CreatedAt().Format(createdAtLayout),
			Total:           ord.Total(),
			Currency:        ord.Currency(),
			PaymentMethod:   ord.PaymentMethod(),
			CustomerName:    ord.CustomerName(),
			ShippingAddress: ord.ShippingAddress(),
			RiderName:       ord.RiderName(),
			Area:            snapshot.AreaByOrderID[ord.ID()],
			LineItems:       items,
		}
	}

	return DashboardResponse{
		LoadState:    snapshot.LoadState.String(),
		ErrorMessage: snapshot.ErrorMessage,
		Window:       snapshot.ActiveWindow.String(),
		Bucket:       snapshot.ActiveBucket.ID(),
		BucketCounts: counts,
		Orders:       orders,
	}
}
