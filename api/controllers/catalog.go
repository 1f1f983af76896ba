package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/honestpc/honestpc-backend/api/responses"
	"github.com/honestpc/honestpc-backend/internal/configurator"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
	"github.com/honestpc/honestpc-backend/pkg/logger"
)

// CatalogTiers lists the storefront budget tiers with base builds and
// upgrade choices.
func CatalogTiers(svc *configurator.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Tiers())
	}
}

// CatalogTier returns a tier plus its default configuration and the priced
// base build that configuration derives.
func CatalogTier(svc *configurator.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		tierID := strings.TrimSpace(chi.URLParam(r, "tierId"))
		if tierID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "tier id is required"))
			return
		}

		selection, err := svc.SelectTier(tierID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, selection)
	}
}
