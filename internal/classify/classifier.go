// Package classify wraps the external complaint categorizer. Callers always
// get a usable Analysis: any failure of the external service (timeout,
// transport error, malformed response) resolves to the fixed fallback record,
// so an unreachable classifier degrades routing, never submissions.
package classify

import (
	"context"

	"campusvoice/backend/internal/models"
)

// Classifier analyzes a complaint's title and description. Implementations
// must respect the context deadline and must never return a partially
// populated Analysis.
type Classifier interface {
	Classify(ctx context.Context, title, description string) models.Analysis
}

// Fallback is the analysis used whenever the external categorizer cannot
// produce one. It routes the complaint to manual review.
func Fallback() models.Analysis {
	return models.Analysis{
		Priority:           models.PriorityMedium,
		Category:           "other",
		Sentiment:          "neutral",
		UrgencyScore:       50,
		ImpactLevel:        "individual",
		Summary:            "Complaint requires manual review",
		KeyIssues:          []string{"Manual review required"},
		SuggestedAuthority: "Student Affairs Officer",
	}
}
