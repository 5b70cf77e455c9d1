package order

import (
	"errors"
	"time"

	"khasdash/internal/core/domain/model/kernel"
	"khasdash/internal/pkg/errs"
)

// MetaCoordinatesKey is the metadata key under which the order source carries
// an order's raw "lat,lon" coordinate pair.
const MetaCoordinatesKey = "delivery_coordinates"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// LineItem is a single ordered line: the item name, how many were ordered,
// and the per-line total as a decimal string in the order's currency.
type LineItem struct {
	ID       int64
	Name     string
	Quantity int
	Total    string
}

// MetaEntry is one free-form key/value extension field attached to an order
// by the source. Entries are carried verbatim; the dashboard only interprets
// MetaCoordinatesKey.
type MetaEntry struct {
	Key   string
	Value string
}

// Params carries the attributes of an order as delivered by the source.
// ID and CreatedAt are required; every other field is optional and its zero
// value means "not set".
type Params struct {
	ID              int64
	Number          string
	Status          Status
	CreatedAt       time.Time
	Total           string
	Currency        string
	PaymentMethod   string
	CustomerName    string
	ShippingAddress string
	CustomerID      int64
	RiderName       string
	LineItems       []LineItem
	Metadata        []MetaEntry
}

// Order represents one order fetched from the commerce source.
//
// Orders are immutable once fetched: a later fetch replaces the whole
// in-memory collection rather than patching entries, so an Order never
// changes after construction. The dashboard is read-only with respect to the
// source; there are no mutating operations on this type.
//
// Order follows these invariants:
//   - Must have a positive source-assigned identifier
//   - Must have a creation timestamp
//   - Can only be created through the NewOrder constructor
//
// The status is kept verbatim even when it falls outside the known set; such
// orders are simply invisible to every workflow bucket.
type Order struct {
	// id is the stable, source-assigned identifier
	id int64

	// number is the human-facing order number
	number string

	// status is the raw lifecycle status from the source
	status Status

	// createdAt is the order creation timestamp
	createdAt time.Time

	// total and currency form the monetary total; total stays a decimal
	// string as delivered by the source
	total    string
	currency string

	paymentMethod   string
	customerName    string
	shippingAddress string
	customerID      int64

	// riderName is the assigned fulfillment agent (empty if unassigned)
	riderName string

	lineItems []LineItem
	metadata  []MetaEntry

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order from source-delivered attributes with validation.
// This is the only way to create a valid Order.
//
// Returns a validation error if the id is not positive or the creation
// timestamp is missing. Optional fields are accepted as-is; absent optional
// fields are treated as "not set".
func NewOrder(params Params) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(params.ID),
		o.setCreatedAt(params.CreatedAt),
	); err != nil {
		return nil, err
	}

	o.number = params.Number
	o.status = params.Status
	o.total = params.Total
	o.currency = params.Currency
	o.paymentMethod = params.PaymentMethod
	o.customerName = params.CustomerName
	o.shippingAddress = params.ShippingAddress
	o.customerID = params.CustomerID
	o.riderName = params.RiderName
	o.lineItems = append([]LineItem(nil), params.LineItems...)
	o.metadata = append([]MetaEntry(nil), params.Metadata...)

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating the
// struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their source-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the stable, source-assigned identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() string {
	return o.number
}

// Status returns the raw lifecycle status from the source.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the monetary total as a decimal string.
func (o *Order) Total() string {
	return o.total
}

// Currency returns the ISO currency code of the total.
func (o *Order) Currency() string {
	return o.currency
}

// PaymentMethod returns the payment method label.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// CustomerName returns the customer reference name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ShippingAddress returns the shipping address text.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// CustomerID returns the source-side customer identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// RiderName returns the assigned fulfillment agent's name.
// Empty means no agent is assigned.
func (o *Order) RiderName() string {
	return o.riderName
}

// LineItems returns a copy of the ordered line items.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// Metadata returns a copy of the free-form metadata entries.
func (o *Order) Metadata() []MetaEntry {
	return append([]MetaEntry(nil), o.metadata...)
}

// MetaValue returns the value of the first metadata entry with the given key.
// The second return value is false when the key is absent.
func (o *Order) MetaValue(key string) (string, bool) {
	for _, entry := range o.metadata {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// RawCoordinates returns the raw "lat,lon" coordinate string carried in the
// order metadata. The second return value is false when the order carries no
// coordinates, either because the metadata key is absent or because the
// source stored the "not available" sentinel.
func (o *Order) RawCoordinates() (string, bool) {
	raw, ok := o.MetaValue(MetaCoordinatesKey)
	if !ok || raw == "" || raw == kernel.CoordinatesNotAvailable {
		return "", false
	}
	return raw, true
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("order createdAt")
	}
	o.createdAt = createdAt
	return nil
}
