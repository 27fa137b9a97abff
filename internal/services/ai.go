package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/config"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/pkg/utils"
)

// Fallback strings returned when the generative backend cannot be used.
// AI failures are absorbed here and never surface as errors to handlers.
const (
	aiEmptyResponseFallback = "Unable to get AI response. Please try again."
	aiUnavailableFallback   = "AI service temporarily unavailable. Please check your API key."
)

// AIService wraps the Gemini generateContent endpoint with a bounded
// timeout and fixed fallback responses.
type AIService struct {
	cfg    config.AIConfig
	db     *gorm.DB
	cache  *Cache
	client *http.Client
}

func NewAIService(cfg config.AIConfig, db *gorm.DB, cache *Cache) *AIService {
	return &AIService{
		cfg:   cfg,
		db:    db,
		cache: cache,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Recommend asks the model to pick 2-3 planners matching the user's criteria.
func (s *AIService) Recommend(ctx context.Context, criteria string) string {
	prompt := buildRecommendPrompt(criteria, s.plannerContext())
	return s.generate(ctx, prompt)
}

// PredictBudget asks the model for a budget estimate for an event.
func (s *AIService) PredictBudget(ctx context.Context, eventDetails map[string]string) string {
	prompt := buildBudgetPrompt(eventDetails, s.plannerContext())
	return s.generate(ctx, prompt)
}

// GenerateEventDescription asks the model for a short past-event write-up.
func (s *AIService) GenerateEventDescription(ctx context.Context, eventDetails string) string {
	prompt := fmt.Sprintf(
		"You are a creative event writer.\n"+
			"Write a short, engaging, and professional description (max 50 words) for a past event with these details:\n"+
			"%s\n"+
			"Highlight the success and atmosphere.\n",
		eventDetails)
	return s.generate(ctx, prompt)
}

func (s *AIService) plannerContext() string {
	if s.db == nil {
		return ""
	}
	var planners []models.Planner
	if err := s.db.Find(&planners).Error; err != nil {
		return ""
	}

	parts := make([]string, 0, len(planners))
	for _, p := range planners {
		parts = append(parts, fmt.Sprintf("%s (%s, %s)", p.FullName, p.City, p.Specialization))
	}
	return strings.Join(parts, "; ")
}

func buildRecommendPrompt(criteria, plannerContext string) string {
	return fmt.Sprintf(
		"You are an event planning assistant.\n"+
			"User Request: %s\n"+
			"Available Planners: %s\n\n"+
			"Recommend 2-3 planners. If none match, say \"No matching planners\".\n"+
			"Format:\n"+
			"1. **Name** - City\n"+
			"   Specialization: Type\n"+
			"   Reason: Short reason\n",
		criteria, plannerContext)
}

func buildBudgetPrompt(eventDetails map[string]string, plannerContext string) string {
	get := func(key, fallback string) string {
		if v, ok := eventDetails[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	return fmt.Sprintf(
		"Estimate budget for: %s, %s, %s guests, %s.\n"+
			"Available Planners: %s\n\n"+
			"Output ONLY this format:\n"+
			"**Budget:** ₹[Min]-₹[Max]\n\n"+
			"**Breakdown:**\n"+
			"Venue: ₹[Amount]\n"+
			"Catering: ₹[Amount]\n"+
			"Decor: ₹[Amount]\n"+
			"Entertainment: ₹[Amount]\n"+
			"Other: ₹[Amount]\n\n"+
			"**Matching Planners:**\n"+
			"[List names matching location/type or \"No planners found\"]\n",
		get("type", "General"),
		get("theme", "Standard"),
		get("guests", "50"),
		get("location", "Unknown"),
		plannerContext)
}

// Request/response shapes of the generateContent API.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generate runs one prompt through the backend. Identical prompts are
// served from the redis cache when one is configured.
func (s *AIService) generate(ctx context.Context, prompt string) string {
	cacheKey := fmt.Sprintf("ai:response:%x", sha256.Sum256([]byte(prompt)))
	if s.cache != nil {
		if cached, ok := s.cache.GetAIResponse(ctx, cacheKey); ok {
			return cached
		}
	}

	text, err := s.callGoogleAI(ctx, prompt)
	if err != nil {
		utils.GetLogger().Error("google AI call failed", zap.Error(err))
		return aiUnavailableFallback
	}
	if text == "" {
		return aiEmptyResponseFallback
	}

	if s.cache != nil {
		s.cache.SetAIResponse(ctx, cacheKey, text)
	}
	return text
}

func (s *AIService) callGoogleAI(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s?key=%s", s.cfg.BaseURL, s.cfg.APIKey)

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from AI backend", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
