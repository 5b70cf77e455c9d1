// Package commerce implements the OrderSource port against the remote
// commerce HTTP API. It performs one authenticated bounded fetch per call and
// maps the wire representation onto the order domain model.
package commerce

import (
	"encoding/json"
	"time"

	"khasdash/internal/core/domain/model/order"
)

// dateCreatedLayout is the ISO-8601 local timestamp format (no timezone
// suffix) the order API uses both for the "after" query parameter and the
// date_created field.
const dateCreatedLayout = "2006-01-02T15:04:05"

// orderDTO represents one order object as delivered by the order API.
// Unknown wire fields are ignored; absent optional fields map to the domain
// model's "not set" zero values.
type orderDTO struct {
	ID                 int64         `json:"id"`
	Number             string        `json:"number"`
	Status             string        `json:"status"`
	DateCreated        string        `json:"date_created"`
	Total              string        `json:"total"`
	Currency           string        `json:"currency"`
	PaymentMethodTitle string        `json:"payment_method_title"`
	Billing            billingDTO    `json:"billing"`
	Shipping           shippingDTO   `json:"shipping"`
	LineItems          []lineItemDTO `json:"line_items"`
	MetaData           []metaDTO     `json:"meta_data"`
	RiderName          string        `json:"rider_name"`
	CustomerID         int64         `json:"customer_id"`
}

type billingDTO struct {
	FirstName string `json:"first_name"`
}

type shippingDTO struct {
	Address1 string `json:"address_1"`
}

type lineItemDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
}

// metaDTO carries one extension field. Values arrive as arbitrary JSON; only
// string values are meaningful to the dashboard, anything else is flattened
// to its JSON text.
type metaDTO struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// toDomain converts a wire order onto the domain model. The raw status is
// carried verbatim; rows with unknown statuses are accepted and simply stay
// outside every workflow bucket.
func toDomain(dto orderDTO) (*order.Order, error) {
	createdAt, err := time.Parse(dateCreatedLayout, dto.DateCreated)
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, item := range dto.LineItems {
		lineItems = append(lineItems, order.LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}

	metadata := make([]order.MetaEntry, 0, len(dto.MetaData))
	for _, entry := range dto.MetaData {
		metadata = append(metadata, order.MetaEntry{
			Key:   entry.Key,
			Value: metaValueString(entry.Value),
		})
	}

	return order.NewOrder(order.Params{
		ID:              dto.ID,
		Number:          dto.Number,
		Status:          order.Status(dto.Status),
		CreatedAt:       createdAt,
		Total:           dto.Total,
		Currency:        dto.Currency,
		PaymentMethod:   dto.PaymentMethodTitle,
		CustomerName:    dto.Billing.FirstName,
		ShippingAddress: dto.Shipping.Address1,
		CustomerID:      dto.CustomerID,
		RiderName:       dto.RiderName,
		LineItems:       lineItems,
		Metadata:        metadata,
	})
}

// metaValueString extracts the string form of a metadata value. String values
// are unquoted; any other JSON shape is kept as its raw text so nothing is
// lost.
func metaValueString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
