package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{APIKey: "test-key", BaseURL: baseURL}, nil, nil)
}

func TestGenerateReturnsModelText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"1. **Aisha** - Mumbai"}]}}]}`))
	}))
	defer server.Close()

	svc := newTestAIService(server.URL)

	got := svc.generate(context.Background(), "recommend someone")
	assert.Equal(t, "1. **Aisha** - Mumbai", got)
}

func TestGenerateFallsBackWhenBackendErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestAIService(server.URL)

	got := svc.generate(context.Background(), "anything")
	assert.Equal(t, aiUnavailableFallback, got)
}

func TestGenerateFallsBackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	svc := newTestAIService(server.URL)

	got := svc.generate(context.Background(), "anything")
	assert.Equal(t, aiUnavailableFallback, got)
}

func TestGenerateFallsBackOnEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	svc := newTestAIService(server.URL)

	got := svc.generate(context.Background(), "anything")
	assert.Equal(t, aiEmptyResponseFallback, got)
}

func TestBuildRecommendPrompt(t *testing.T) {
	prompt := buildRecommendPrompt("outdoor wedding in Pune", "Aisha (Pune, Weddings); Ravi (Delhi, Corporate)")

	assert.Contains(t, prompt, "User Request: outdoor wedding in Pune")
	assert.Contains(t, prompt, "Aisha (Pune, Weddings)")
	assert.Contains(t, prompt, "Recommend 2-3 planners")
}

func TestBuildBudgetPromptDefaults(t *testing.T) {
	prompt := buildBudgetPrompt(map[string]string{}, "")

	require.Contains(t, prompt, "Estimate budget for: General, Standard, 50 guests, Unknown.")
}

func TestBuildBudgetPromptUsesProvidedDetails(t *testing.T) {
	prompt := buildBudgetPrompt(map[string]string{
		"type":     "Wedding",
		"guests":   "200",
		"location": "Jaipur",
		"theme":    "Royal",
	}, "Aisha (Jaipur, Weddings)")

	assert.Contains(t, prompt, "Estimate budget for: Wedding, Royal, 200 guests, Jaipur.")
	assert.Contains(t, prompt, "Aisha (Jaipur, Weddings)")
}
