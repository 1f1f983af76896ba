package advisor

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honestpc/honestpc-backend/pkg/enums"
	"github.com/honestpc/honestpc-backend/pkg/logger"
	"github.com/honestpc/honestpc-backend/pkg/openai"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

type stubCompleter struct {
	reply    string
	err      error
	received []openai.Message
}

func (s *stubCompleter) Complete(_ context.Context, messages []openai.Message) (string, error) {
	s.received = messages
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testComponents() types.ComponentList {
	return types.ComponentList{
		{ID: "cpu_i3", Type: enums.ComponentTypeCPU, Name: "Intel Core i3-12100F", Specs: "4 Cores, 4.3 GHz"},
		{ID: "psu_550w", Type: enums.ComponentTypePSU, Name: "Deepcool PK550D 550W", Specs: "80+ Bronze, Flat Cables"},
	}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "advisor-test"})
}

func TestAnalyzeReturnsCompletion(t *testing.T) {
	client := &stubCompleter{reply: "Solid starter build."}
	svc, err := NewService(client, testLogger())
	require.NoError(t, err)

	resp := svc.Analyze(context.Background(), testComponents(), "student")

	assert.Equal(t, "Solid starter build.", resp.Advice)
	assert.False(t, resp.Fallback)

	require.Len(t, client.received, 2)
	assert.Equal(t, "system", client.received[0].Role)
	prompt := client.received[1].Content
	assert.Contains(t, prompt, `"student"`)
	assert.Contains(t, prompt, "- CPU: Intel Core i3-12100F (4 Cores, 4.3 GHz)")
	assert.Contains(t, prompt, "- Power Supply: Deepcool PK550D 550W")
}

func TestAnalyzeDefaultsUserContext(t *testing.T) {
	client := &stubCompleter{reply: "ok"}
	svc, err := NewService(client, testLogger())
	require.NoError(t, err)

	svc.Analyze(context.Background(), testComponents(), "   ")

	require.Len(t, client.received, 2)
	assert.Contains(t, client.received[1].Content, `"student"`)
}

func TestAnalyzeFallsBackOnError(t *testing.T) {
	client := &stubCompleter{err: fmt.Errorf("upstream timeout")}
	svc, err := NewService(client, testLogger())
	require.NoError(t, err)

	resp := svc.Analyze(context.Background(), testComponents(), "student")

	assert.True(t, resp.Fallback)
	assert.Equal(t, FallbackAdvice, resp.Advice)
	assert.True(t, strings.HasPrefix(resp.Advice, "Our AI advisor is currently taking a coffee break."))
}

func TestAnalyzeFallsBackWithoutClient(t *testing.T) {
	svc, err := NewService(nil, testLogger())
	require.NoError(t, err)

	resp := svc.Analyze(context.Background(), testComponents(), "gamer")

	assert.True(t, resp.Fallback)
	assert.Equal(t, FallbackAdvice, resp.Advice)
}
