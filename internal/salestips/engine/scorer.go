package engine

import "starzcrm_backend/internal/salestips/domain"

const (
	// Leads start at 50 and bonuses add or subtract from this.
	baseLeadScore = 50

	minLeadScore = 0
	maxLeadScore = 100
)

// Urgency thresholds, inclusive lower bounds.
const (
	immediateThreshold = 80
	highThreshold      = 65
	mediumThreshold    = 40
)

// sourceBonus is the score contribution of each acquisition channel.
// Unknown sources contribute nothing.
var sourceBonus = map[domain.LeadSource]int{
	domain.SourceBark:        20,
	domain.SourceGoogleMaps:  15,
	domain.SourceChatWidget:  15,
	domain.SourceReferral:    25,
	domain.SourceManualEntry: 5,
}

// ScoreLead computes the 0-100 lead score and its urgency tier.
// leadAgeHours is optional; when nil the age bonus is skipped.
func ScoreLead(lead domain.LeadRecord, leadAgeHours *float64) (int, domain.Urgency) {
	score := baseLeadScore
	score += budgetBonus(lead.Budget)
	if leadAgeHours != nil {
		score += ageBonus(*leadAgeHours)
	}
	score += sourceBonus[lead.LeadSource]

	score = clampScore(score)
	return score, UrgencyForScore(score)
}

// budgetBonus awards only the highest applicable tier.
func budgetBonus(budget int64) int {
	switch {
	case budget > 10000:
		return 25
	case budget > 5000:
		return 15
	case budget > 1000:
		return 10
	default:
		return 0
	}
}

// ageBonus rewards fresh leads and penalizes stale ones.
func ageBonus(hours float64) int {
	switch {
	case hours <= 1:
		return 20 // First hour - hot lead
	case hours <= 24:
		return 15
	case hours <= 72:
		return 5
	default:
		return -10 // Cooling down
	}
}

// UrgencyForScore maps a lead score onto its response-time tier.
func UrgencyForScore(score int) domain.Urgency {
	switch {
	case score >= immediateThreshold:
		return domain.UrgencyImmediate
	case score >= highThreshold:
		return domain.UrgencyHigh
	case score >= mediumThreshold:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

func clampScore(score int) int {
	if score < minLeadScore {
		return minLeadScore
	}
	if score > maxLeadScore {
		return maxLeadScore
	}
	return score
}

// AgeBand names the age bracket a lead falls into. Every age-dependent rule in
// the engine switches on the same boundaries, so two ages in one band produce
// the same result apart from the echoed LeadAge.
func AgeBand(leadAgeHours *float64) string {
	if leadAgeHours == nil {
		return "unknown"
	}
	switch hours := *leadAgeHours; {
	case hours <= 1:
		return "first_hour"
	case hours <= 24:
		return "first_day"
	case hours <= 72:
		return "first_three_days"
	default:
		return "stale"
	}
}
