// Package priority converts a classification result plus vote counts into a
// numeric priority score and its coarse label. All functions are pure: no
// state, no I/O, identical inputs always yield identical outputs.
package priority

import (
	"campusvoice/backend/internal/config"
	"campusvoice/backend/internal/models"
)

// Score computes the numeric priority score for a complaint.
// Base score from the detected priority, plus urgency, plus impact bonus,
// plus the community vote bonus, clamped to [0, config.MaxPriorityScore].
func Score(a models.Analysis, upvotes, downvotes int) int {
	score, ok := config.PriorityBaseScores[a.Priority]
	if !ok {
		score = config.DefaultBaseScore
	}

	urgency := a.UrgencyScore
	if urgency < 0 {
		urgency = 0
	}
	if urgency > config.MaxUrgencyScore {
		urgency = config.MaxUrgencyScore
	}
	score += urgency

	bonus, ok := config.ImpactBonuses[a.ImpactLevel]
	if !ok {
		bonus = config.DefaultImpactBonus
	}
	score += bonus

	net := float64(upvotes) - float64(downvotes)*config.DownvoteWeight
	if net > 0 {
		score += int(net * config.VotePointWeight)
	}

	if score > config.MaxPriorityScore {
		score = config.MaxPriorityScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Label maps a numeric score to its priority label.
func Label(score int) string {
	switch {
	case score >= config.CriticalThreshold:
		return models.PriorityCritical
	case score >= config.HighThreshold:
		return models.PriorityHigh
	case score >= config.MediumThreshold:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// Recalculate returns both the score and its label in one call.
func Recalculate(a models.Analysis, upvotes, downvotes int) (int, string) {
	score := Score(a, upvotes, downvotes)
	return score, Label(score)
}
