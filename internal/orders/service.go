package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/honestpc/honestpc-backend/internal/configurator"
	"github.com/honestpc/honestpc-backend/pkg/db/models"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

const (
	orderPlacedNote   = "Order placed successfully"
	advanceNoteFormat = "Status updated to %s"
)

// Service exposes order placement and the admin-driven fulfillment pipeline.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderDTO, error)
	Get(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	List(ctx context.Context, status *enums.OrderStatus) ([]OrderDTO, error)
	AdminGet(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error)
	Advance(ctx context.Context, orderID uuid.UUID, req AdvanceOrderRequest) (*OrderDTO, error)
}

type transactor interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type buildDeriver interface {
	DeriveBuild(tierID string, overrides configurator.Overrides) (*configurator.Build, error)
}

type userReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type savedBuildReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Build, error)
}

type service struct {
	repo         Repository
	tx           transactor
	configurator buildDeriver
	users        userReader
	builds       savedBuildReader
	now          func() time.Time
}

// ServiceParams bundles the dependencies required to build an orders service.
type ServiceParams struct {
	Repo         Repository
	Transactor   transactor
	Configurator buildDeriver
	UserRepo     userReader
	BuildRepo    savedBuildReader

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// NewService constructs an orders service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if params.Transactor == nil {
		return nil, fmt.Errorf("transactor is required")
	}
	if params.Configurator == nil {
		return nil, fmt.Errorf("configurator is required")
	}
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.BuildRepo == nil {
		return nil, fmt.Errorf("build repository is required")
	}
	now := params.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		repo:         params.Repo,
		tx:           params.Transactor,
		configurator: params.Configurator,
		users:        params.UserRepo,
		builds:       params.BuildRepo,
		now:          now,
	}, nil
}

// Create places an order. The build snapshot comes from either the user's
// saved build or a fresh tier derivation; the order number and reference
// are allocated inside the creation transaction.
func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderDTO, error) {
	if err := req.ShippingAddress.Validate(); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "unknown user")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}

	snapshot, buildID, err := s.resolveSnapshot(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	placedAt := s.now()
	order := &models.Order{
		ID:              uuid.New(),
		UserID:          user.ID,
		UserEmail:       user.Email,
		UserName:        user.Name,
		BuildID:         buildID,
		TierID:          snapshot.TierID,
		TierName:        snapshot.TierName,
		Components:      snapshot.Components,
		Pricing:         snapshot.Pricing,
		ShippingAddress: req.ShippingAddress,
		Phone:           strings.TrimSpace(req.Phone),
		Status:          enums.OrderStatusPending,
		StatusHistory: types.StatusHistory{{
			Status:    enums.OrderStatusPending,
			Timestamp: placedAt,
			Note:      orderPlacedNote,
		}},
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		number, err := txRepo.NextOrderNumber(ctx)
		if err != nil {
			return fmt.Errorf("allocate order number: %w", err)
		}
		order.OrderNumber = number
		order.OrderRef = FormatOrderRef(placedAt.Year(), number)

		if _, err := txRepo.Create(ctx, order); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "place order")
	}

	return FromModel(order), nil
}

// Get returns one of the user's orders.
func (s *service) Get(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another user")
	}
	return FromModel(order), nil
}

// ListForUser returns the user's orders, newest first.
func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return fromModels(items), nil
}

// List returns all orders, optionally filtered by status. Admin only;
// authorization happens at the route layer.
func (s *service) List(ctx context.Context, status *enums.OrderStatus) ([]OrderDTO, error) {
	if status != nil && !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status filter %q", *status))
	}
	items, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return fromModels(items), nil
}

// AdminGet returns any order regardless of owner.
func (s *service) AdminGet(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return FromModel(order), nil
}

// Advance moves the order exactly one step forward in the pipeline. The
// target status in the request must equal the next pipeline stage; the
// update is a compare-and-swap so concurrent advances cannot double-step.
func (s *service) Advance(ctx context.Context, orderID uuid.UUID, req AdvanceOrderRequest) (*OrderDTO, error) {
	target, err := enums.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status.IsTerminal() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("order %s is already %s", order.OrderRef, order.Status)).
			WithDetails(map[string]any{"status": order.Status.String()})
	}

	next, ok := order.Status.Next()
	if !ok || target != next {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("cannot move order %s from %s to %s", order.OrderRef, order.Status, target)).
			WithDetails(map[string]any{
				"status":   order.Status.String(),
				"expected": next.String(),
				"got":      target.String(),
			})
	}

	note := fmt.Sprintf(advanceNoteFormat, target.Label())
	if req.Note != nil && strings.TrimSpace(*req.Note) != "" {
		note = strings.TrimSpace(*req.Note)
	}

	advancedAt := s.now()
	history := order.StatusHistory.Append(types.StatusHistoryEntry{
		Status:    target,
		Timestamp: advancedAt,
		Note:      note,
	})

	affected, err := s.repo.AdvanceStatus(ctx, order.ID, order.Status, target, history)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "advance order")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("order %s changed concurrently, reload and retry", order.OrderRef))
	}

	order.Status = target
	order.StatusHistory = history
	order.UpdatedAt = advancedAt
	return FromModel(order), nil
}

func (s *service) resolveSnapshot(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*configurator.Build, *uuid.UUID, error) {
	if req.BuildID != nil {
		saved, err := s.builds.FindByID(ctx, *req.BuildID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, "build not found")
			}
			return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load build")
		}
		if saved.UserID != userID {
			return nil, nil, pkgerrors.New(pkgerrors.CodeForbidden, "build belongs to another user")
		}
		return &configurator.Build{
			TierID:     saved.TierID,
			TierName:   saved.TierName,
			Components: saved.Components,
			Pricing:    saved.Pricing,
		}, req.BuildID, nil
	}

	if strings.TrimSpace(req.TierID) == "" {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "tierId or buildId is required")
	}
	derived, err := s.configurator.DeriveBuild(req.TierID, req.Overrides())
	if err != nil {
		return nil, nil, err
	}
	return derived, nil, nil
}

func (s *service) loadOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return order, nil
}

// FormatOrderRef renders the customer-facing order reference.
func FormatOrderRef(year int, number int64) string {
	return fmt.Sprintf("ORD-%d-%06d", year, number)
}
