package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/honestpc/honestpc-backend/internal/orders"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
)

// OrderStats is the admin dashboard summary. Revenue sums the quoted
// total across every order regardless of stage.
type OrderStats struct {
	Total      int             `json:"total"`
	Pending    int             `json:"pending"`
	InProgress int             `json:"inProgress"`
	Shipped    int             `json:"shipped"`
	Delivered  int             `json:"delivered"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type orderLister interface {
	List(ctx context.Context, status *enums.OrderStatus) ([]orders.OrderDTO, error)
}

// Service derives read-side projections over the order book.
type Service struct {
	orders orderLister
}

// NewService constructs an analytics service.
func NewService(lister orderLister) (*Service, error) {
	if lister == nil {
		return nil, fmt.Errorf("order lister is required")
	}
	return &Service{orders: lister}, nil
}

// OrderStats loads the current order book and summarizes it.
func (s *Service) OrderStats(ctx context.Context) (*OrderStats, error) {
	items, err := s.orders.List(ctx, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order book")
	}
	stats := Summarize(items)
	return &stats, nil
}

// Summarize is the pure projection behind OrderStats. Every order lands in
// exactly one stage bucket.
func Summarize(items []orders.OrderDTO) OrderStats {
	stats := OrderStats{
		Total:   len(items),
		Revenue: decimal.Zero,
	}

	for _, order := range items {
		switch order.Status {
		case enums.OrderStatusPending:
			stats.Pending++
		case enums.OrderStatusConfirmed, enums.OrderStatusAssembly, enums.OrderStatusQA:
			stats.InProgress++
		case enums.OrderStatusShipped:
			stats.Shipped++
		case enums.OrderStatusDelivered:
			stats.Delivered++
		}
		stats.Revenue = stats.Revenue.Add(order.Pricing.Total)
	}

	return stats
}
