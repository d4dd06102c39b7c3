package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"campusvoice/backend/internal/config"
	"campusvoice/backend/internal/metrics"
	"campusvoice/backend/internal/models"
)

const systemPrompt = `You are an AI assistant analyzing student complaints for a college campus.
Classify the complaint and respond with a JSON object containing exactly these fields:
"priority" (low, medium, high or critical), "category" (food, infrastructure, academic, hostel, transport or other),
"sentiment" (positive, neutral or negative), "urgency_score" (integer 0-100),
"impact_level" (individual, group or campus-wide), "summary" (one sentence),
"key_issues" (array of short strings), "suggested_authority" (the role best placed to act).`

// GroqClassifier calls the Groq chat-completions API to analyze complaints.
// Any failure, including a missing API key, yields the fallback analysis so
// complaint intake never blocks on the upstream service.
type GroqClassifier struct {
	client  *http.Client
	apiKey  string
	model   string
	url     string
	metrics *metrics.Metrics
}

func NewGroqClassifier(apiKey, model, url string, timeout time.Duration, m *metrics.Metrics) *GroqClassifier {
	return &GroqClassifier{
		client:  &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		model:   model,
		url:     url,
		metrics: m,
	}
}

func (g *GroqClassifier) Classify(ctx context.Context, title, description string) models.Analysis {
	if g.apiKey == "" {
		g.metrics.IncClassifierFallback()
		return Fallback()
	}

	analysis, err := g.analyze(ctx, title, description)
	if err != nil {
		log.Printf("classify: falling back to manual review: %v", err)
		g.metrics.IncClassifierFallback()
		return Fallback()
	}
	return analysis
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// wireAnalysis uses pointer fields so absent values can be told apart from
// zero values when normalizing.
type wireAnalysis struct {
	Priority           string   `json:"priority"`
	Category           string   `json:"category"`
	Sentiment          string   `json:"sentiment"`
	UrgencyScore       *int     `json:"urgency_score"`
	ImpactLevel        string   `json:"impact_level"`
	Summary            string   `json:"summary"`
	KeyIssues          []string `json:"key_issues"`
	SuggestedAuthority string   `json:"suggested_authority"`
}

func (g *GroqClassifier) analyze(ctx context.Context, title, description string) (models.Analysis, error) {
	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Title: %s\n\nDescription: %s", title, description)},
		},
		Temperature: 0.1,
		MaxTokens:   500,
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return models.Analysis{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("call groq: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Analysis{}, fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return models.Analysis{}, fmt.Errorf("decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return models.Analysis{}, fmt.Errorf("groq returned no choices")
	}

	var wire wireAnalysis
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &wire); err != nil {
		return models.Analysis{}, fmt.Errorf("decode analysis: %w", err)
	}
	return normalize(wire), nil
}

func normalize(w wireAnalysis) models.Analysis {
	a := models.Analysis{
		Priority:           w.Priority,
		Category:           w.Category,
		Sentiment:          w.Sentiment,
		UrgencyScore:       config.DefaultUrgencyScore,
		ImpactLevel:        w.ImpactLevel,
		Summary:            w.Summary,
		KeyIssues:          w.KeyIssues,
		SuggestedAuthority: w.SuggestedAuthority,
	}
	if w.UrgencyScore != nil {
		a.UrgencyScore = *w.UrgencyScore
	}
	if a.Priority == "" {
		a.Priority = models.PriorityMedium
	}
	if a.Category == "" {
		a.Category = "other"
	}
	if a.Sentiment == "" {
		a.Sentiment = "neutral"
	}
	if a.ImpactLevel == "" {
		a.ImpactLevel = "individual"
	}
	if a.SuggestedAuthority == "" {
		a.SuggestedAuthority = AuthorityFor(a.Category).Name
	}
	return a
}
