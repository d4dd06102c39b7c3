package classify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/backend/internal/classify"
	"campusvoice/backend/internal/models"
)

func TestFallback(t *testing.T) {
	a := classify.Fallback()

	assert.Equal(t, models.PriorityMedium, a.Priority)
	assert.Equal(t, "other", a.Category)
	assert.Equal(t, "neutral", a.Sentiment)
	assert.Equal(t, 50, a.UrgencyScore)
	assert.Equal(t, "individual", a.ImpactLevel)
	assert.Equal(t, "Complaint requires manual review", a.Summary)
	assert.Equal(t, []string{"Manual review required"}, a.KeyIssues)
	assert.Equal(t, "Student Affairs Officer", a.SuggestedAuthority)
}

func TestAuthorityFor(t *testing.T) {
	tests := []struct {
		category string
		name     string
		email    string
	}{
		{"food", "Mess Committee Head", "mess@srec.ac.in"},
		{"infrastructure", "Maintenance Officer", "maintenance@srec.ac.in"},
		{"academic", "Academic Dean", "academics@srec.ac.in"},
		{"hostel", "Hostel Warden", "hostel@srec.ac.in"},
		{"transport", "Transport Coordinator", "transport@srec.ac.in"},
		{"other", "Student Affairs Officer", "studentaffairs@srec.ac.in"},
		{"HOSTEL", "Hostel Warden", "hostel@srec.ac.in"},
		{"plumbing", "Student Affairs Officer", "studentaffairs@srec.ac.in"},
		{"", "Student Affairs Officer", "studentaffairs@srec.ac.in"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			a := classify.AuthorityFor(tt.category)
			assert.Equal(t, tt.name, a.Name)
			assert.Equal(t, tt.email, a.Email)
		})
	}
}

func TestKnownCategory(t *testing.T) {
	assert.True(t, classify.KnownCategory("food"))
	assert.True(t, classify.KnownCategory("Transport"))
	assert.False(t, classify.KnownCategory("plumbing"))
}

func groqServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func groqContent(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	require.NoError(t, err)
	return body
}

func TestGroqClassifier_ParsesAnalysis(t *testing.T) {
	srv := groqServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPost, r.Method)

		content := `{"priority":"high","category":"hostel","sentiment":"negative",` +
			`"urgency_score":85,"impact_level":"group","summary":"Water outage in block B",` +
			`"key_issues":["no water","third day"],"suggested_authority":"Hostel Warden"}`
		w.Write(groqContent(t, content))
	})

	c := classify.NewGroqClassifier("test-key", "test-model", srv.URL, 5*time.Second, nil)
	a := c.Classify(context.Background(), "No water", "No water in block B for three days")

	assert.Equal(t, models.PriorityHigh, a.Priority)
	assert.Equal(t, "hostel", a.Category)
	assert.Equal(t, "negative", a.Sentiment)
	assert.Equal(t, 85, a.UrgencyScore)
	assert.Equal(t, "group", a.ImpactLevel)
	assert.Equal(t, []string{"no water", "third day"}, a.KeyIssues)
	assert.Equal(t, "Hostel Warden", a.SuggestedAuthority)
}

func TestGroqClassifier_DefaultsMissingFields(t *testing.T) {
	srv := groqServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(groqContent(t, `{"category":"food","summary":"Cold food"}`))
	})

	c := classify.NewGroqClassifier("test-key", "test-model", srv.URL, 5*time.Second, nil)
	a := c.Classify(context.Background(), "Cold food", "Dinner was served cold")

	assert.Equal(t, models.PriorityMedium, a.Priority)
	assert.Equal(t, "neutral", a.Sentiment)
	assert.Equal(t, 50, a.UrgencyScore)
	assert.Equal(t, "individual", a.ImpactLevel)
	assert.Equal(t, "Mess Committee Head", a.SuggestedAuthority)
}

func TestGroqClassifier_FallbackWithoutKey(t *testing.T) {
	c := classify.NewGroqClassifier("", "test-model", "http://127.0.0.1:0", 5*time.Second, nil)
	a := c.Classify(context.Background(), "Anything", "Anything at all")

	assert.Equal(t, classify.Fallback(), a)
}

func TestGroqClassifier_FallbackOnServerError(t *testing.T) {
	srv := groqServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusInternalServerError)
	})

	c := classify.NewGroqClassifier("test-key", "test-model", srv.URL, 5*time.Second, nil)
	a := c.Classify(context.Background(), "Broken fan", "Fan does not work")

	assert.Equal(t, classify.Fallback(), a)
}

func TestGroqClassifier_FallbackOnMalformedContent(t *testing.T) {
	srv := groqServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(groqContent(t, "I cannot answer in JSON, sorry."))
	})

	c := classify.NewGroqClassifier("test-key", "test-model", srv.URL, 5*time.Second, nil)
	a := c.Classify(context.Background(), "Broken fan", "Fan does not work")

	assert.Equal(t, classify.Fallback(), a)
}

func TestGroqClassifier_FallbackOnTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := groqServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer close(block)

	c := classify.NewGroqClassifier("test-key", "test-model", srv.URL, 5*time.Second, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	a := c.Classify(ctx, "Slow", "The classifier is slow today")
	assert.Equal(t, classify.Fallback(), a)
}
