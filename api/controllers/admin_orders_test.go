package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	internalorders "github.com/honestpc/honestpc-backend/internal/orders"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

type stubOrderService struct {
	createFn  func(ctx context.Context, userID uuid.UUID, req internalorders.CreateOrderRequest) (*internalorders.OrderDTO, error)
	listFn    func(ctx context.Context, status *enums.OrderStatus) ([]internalorders.OrderDTO, error)
	getFn     func(ctx context.Context, orderID uuid.UUID) (*internalorders.OrderDTO, error)
	advanceFn func(ctx context.Context, orderID uuid.UUID, req internalorders.AdvanceOrderRequest) (*internalorders.OrderDTO, error)
}

func (s stubOrderService) Create(ctx context.Context, userID uuid.UUID, req internalorders.CreateOrderRequest) (*internalorders.OrderDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, userID, req)
	}
	return nil, nil
}

func (s stubOrderService) Get(_ context.Context, _, _ uuid.UUID) (*internalorders.OrderDTO, error) {
	return nil, nil
}

func (s stubOrderService) ListForUser(_ context.Context, _ uuid.UUID) ([]internalorders.OrderDTO, error) {
	return nil, nil
}

func (s stubOrderService) List(ctx context.Context, status *enums.OrderStatus) ([]internalorders.OrderDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx, status)
	}
	return nil, nil
}

func (s stubOrderService) AdminGet(ctx context.Context, orderID uuid.UUID) (*internalorders.OrderDTO, error) {
	if s.getFn != nil {
		return s.getFn(ctx, orderID)
	}
	return nil, nil
}

func (s stubOrderService) Advance(ctx context.Context, orderID uuid.UUID, req internalorders.AdvanceOrderRequest) (*internalorders.OrderDTO, error) {
	if s.advanceFn != nil {
		return s.advanceFn(ctx, orderID, req)
	}
	return nil, nil
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAdminOrdersFiltersByStatus(t *testing.T) {
	var captured *enums.OrderStatus
	svc := stubOrderService{
		listFn: func(_ context.Context, status *enums.OrderStatus) ([]internalorders.OrderDTO, error) {
			captured = status
			return []internalorders.OrderDTO{{OrderRef: "ORD-2026-000001", Status: enums.OrderStatusPending}}, nil
		},
	}

	handler := AdminOrders(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/?status=pending", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured == nil || *captured != enums.OrderStatusPending {
		t.Fatalf("expected pending filter got %v", captured)
	}

	var envelope struct {
		Data []internalorders.OrderDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].OrderRef != "ORD-2026-000001" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestAdminOrdersRejectsUnknownStatus(t *testing.T) {
	handler := AdminOrders(stubOrderService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/?status=teleported", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminOrderAdvance(t *testing.T) {
	orderID := uuid.New()
	svc := stubOrderService{
		advanceFn: func(_ context.Context, gotID uuid.UUID, req internalorders.AdvanceOrderRequest) (*internalorders.OrderDTO, error) {
			if gotID != orderID {
				t.Fatalf("unexpected order id %s", gotID)
			}
			if req.Status != string(enums.OrderStatusConfirmed) {
				t.Fatalf("unexpected target status %s", req.Status)
			}
			return &internalorders.OrderDTO{ID: gotID, Status: enums.OrderStatusConfirmed, StatusLabel: "Confirmed"}, nil
		},
	}

	handler := AdminOrderAdvance(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"confirmed"}`))
	req = withURLParam(req, "orderId", orderID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data internalorders.OrderDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Data.StatusLabel != "Confirmed" {
		t.Fatalf("unexpected label %s", envelope.Data.StatusLabel)
	}
}

func TestAdminOrderAdvanceMapsStateConflict(t *testing.T) {
	svc := stubOrderService{
		advanceFn: func(_ context.Context, _ uuid.UUID, _ internalorders.AdvanceOrderRequest) (*internalorders.OrderDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cannot move order from pending to shipped")
		},
	}

	handler := AdminOrderAdvance(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"shipped"}`))
	req = withURLParam(req, "orderId", uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeStateConflict) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
}

func TestAdminOrderAdvanceRejectsInvalidID(t *testing.T) {
	handler := AdminOrderAdvance(stubOrderService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"confirmed"}`))
	req = withURLParam(req, "orderId", "not-a-uuid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
