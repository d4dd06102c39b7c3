package models

// Analysis is the structured result of classifying a complaint. The classifier
// guarantees every field is populated (falling back to defaults), so consumers
// never need to distinguish absent fields.
type Analysis struct {
	Priority           string   `json:"priority"`      // low, medium, high, critical
	Category           string   `json:"category"`      // food, infrastructure, academic, hostel, transport, other
	Sentiment          string   `json:"sentiment"`     // negative, neutral, positive
	UrgencyScore       int      `json:"urgency_score"` // 0-100
	ImpactLevel        string   `json:"impact_level"`  // individual, group, campus-wide
	Summary            string   `json:"summary"`
	KeyIssues          []string `json:"key_issues"`
	SuggestedAuthority string   `json:"suggested_authority"`
}
