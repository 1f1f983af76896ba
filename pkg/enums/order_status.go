package enums

import "fmt"

// OrderStatus tracks an order through the fulfillment pipeline. The
// pipeline is strictly linear: orders only ever move one step forward.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusAssembly  OrderStatus = "assembly"
	OrderStatusQA        OrderStatus = "qa"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// orderStatusFlow is the fixed forward order of the pipeline.
var orderStatusFlow = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusAssembly,
	OrderStatusQA,
	OrderStatusShipped,
	OrderStatusDelivered,
}

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPending:   "Order Placed",
	OrderStatusConfirmed: "Confirmed",
	OrderStatusAssembly:  "In Assembly",
	OrderStatusQA:        "Quality Testing",
	OrderStatusShipped:   "Shipped",
	OrderStatusDelivered: "Delivered",
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range orderStatusFlow {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered
}

// Label returns the customer-facing display name for the status.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Next returns the status immediately following s in the pipeline, or
// false when s is terminal or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, candidate := range orderStatusFlow {
		if candidate != s {
			continue
		}
		if i+1 < len(orderStatusFlow) {
			return orderStatusFlow[i+1], true
		}
		return "", false
	}
	return "", false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range orderStatusFlow {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
