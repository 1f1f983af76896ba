package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/honestpc/honestpc-backend/internal/configurator"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	"github.com/honestpc/honestpc-backend/pkg/logger"
	"github.com/honestpc/honestpc-backend/pkg/openai"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

// FallbackAdvice is returned whenever the completion backend cannot be
// reached. The storefront shows it verbatim.
const FallbackAdvice = "Our AI advisor is currently taking a coffee break. Rest assured, this build is factory verified for compatibility."

const defaultUserContext = "student"

const systemPrompt = "You are an honest PC hardware expert helper for students."

// AnalyzeRequest asks for advice on a configured build.
type AnalyzeRequest struct {
	TierID      string  `json:"tierId" validate:"required"`
	RAMID       *string `json:"ramId,omitempty"`
	StorageID   *string `json:"storageId,omitempty"`
	UserContext string  `json:"userContext,omitempty" validate:"omitempty,max=100"`
}

// Overrides converts the optional slot choices into configurator overrides.
func (r AnalyzeRequest) Overrides() configurator.Overrides {
	overrides := configurator.Overrides{}
	if r.RAMID != nil {
		overrides[enums.ComponentTypeRAM] = *r.RAMID
	}
	if r.StorageID != nil {
		overrides[enums.ComponentTypeStorage] = *r.StorageID
	}
	return overrides
}

// AnalyzeResponse carries the advice text. Fallback reports whether the
// canned message was used in place of a live completion.
type AnalyzeResponse struct {
	Advice   string `json:"advice"`
	Fallback bool   `json:"fallback"`
}

type completer interface {
	Complete(ctx context.Context, messages []openai.Message) (string, error)
}

// Service produces build advice. A nil completion client is legal: the
// service then always answers with the fallback.
type Service struct {
	client completer
	logg   *logger.Logger
}

// NewService constructs an advisor service.
func NewService(client completer, logg *logger.Logger) (*Service, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Service{client: client, logg: logg}, nil
}

// Analyze renders advice for the component list. Any backend failure
// degrades to the fallback message rather than an error; the build itself
// is already validated, so the advice is a garnish.
func (s *Service) Analyze(ctx context.Context, components types.ComponentList, userContext string) AnalyzeResponse {
	if s.client == nil {
		return AnalyzeResponse{Advice: FallbackAdvice, Fallback: true}
	}

	advice, err := s.client.Complete(ctx, []openai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(components, userContext)},
	})
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "advisor completion failed, serving fallback")
		return AnalyzeResponse{Advice: FallbackAdvice, Fallback: true}
	}

	return AnalyzeResponse{Advice: advice}
}

func buildPrompt(components types.ComponentList, userContext string) string {
	userContext = strings.TrimSpace(userContext)
	if userContext == "" {
		userContext = defaultUserContext
	}

	var list strings.Builder
	for _, c := range components {
		fmt.Fprintf(&list, "- %s: %s (%s)\n", c.Type, c.Name, c.Specs)
	}

	return fmt.Sprintf(`Analyze the following PC build for a user who is a %q.

Components:
%s
1. Highlight the strongest point of this build for their use case.
2. Confirm if there are any compatibility issues (there shouldn't be, but reassure them).
3. Explain in simple non-tech terms why the Power Supply (PSU) and Motherboard choices are reliable and safe (emphasize no generic parts).
4. Keep the tone encouraging, transparent, and concise (max 150 words).`, userContext, list.String())
}
