package config

// Priority scoring constants. The numeric score combines the classifier's
// verdict with community voting and is clamped to [0, MaxPriorityScore].
const (
	MaxPriorityScore = 2000

	DefaultUrgencyScore = 50
	MaxUrgencyScore     = 100

	// Each net upvote adds VotePointWeight points; downvotes count at half
	// weight against upvotes and never push the vote bonus below zero.
	VotePointWeight = 5
	DownvoteWeight  = 0.5

	// Label thresholds
	CriticalThreshold = 1500
	HighThreshold     = 700
	MediumThreshold   = 300
)

// PriorityBaseScores maps the classifier's detected priority to a base score.
var PriorityBaseScores = map[string]int{
	"low":      100,
	"medium":   300,
	"high":     700,
	"critical": 1500,
}

// DefaultBaseScore applies when the detected priority is unrecognized.
const DefaultBaseScore = 300

// ImpactBonuses maps the classifier's impact level to a score bonus.
var ImpactBonuses = map[string]int{
	"individual":  50,
	"group":       150,
	"campus-wide": 300,
}

// DefaultImpactBonus applies when the impact level is unrecognized.
const DefaultImpactBonus = 50
