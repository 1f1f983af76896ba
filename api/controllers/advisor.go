package controllers

import (
	"net/http"

	"github.com/honestpc/honestpc-backend/api/responses"
	"github.com/honestpc/honestpc-backend/api/validators"
	"github.com/honestpc/honestpc-backend/internal/advisor"
	"github.com/honestpc/honestpc-backend/internal/configurator"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
	"github.com/honestpc/honestpc-backend/pkg/logger"
)

// AdvisorAnalyze derives the requested build and asks the advisor for a
// compatibility verdict. A degraded advisor still answers with the fallback.
func AdvisorAnalyze(cfgSvc *configurator.Service, advSvc *advisor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfgSvc == nil || advSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "advisor unavailable"))
			return
		}

		var body advisor.AnalyzeRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		build, err := cfgSvc.DeriveBuild(body.TierID, body.Overrides())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := advSvc.Analyze(r.Context(), build.Components, body.UserContext)
		responses.WriteSuccess(w, result)
	}
}
