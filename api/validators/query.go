package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/honestpc/honestpc-backend/pkg/enums"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseOrderStatusQuery reads an optional order status filter. A missing or
// blank parameter means no filter.
func ParseOrderStatusQuery(r *http.Request, key string) (*enums.OrderStatus, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	status, err := enums.ParseOrderStatus(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status").WithDetails(map[string]any{"field": key, "value": raw})
	}
	return &status, nil
}
