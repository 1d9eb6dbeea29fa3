package engine

import (
	"slices"
	"strings"

	"starzcrm_backend/internal/salestips/domain"
)

// IndustryProfile is the static talking-point set for one industry.
type IndustryProfile struct {
	Insights              []string
	PainPoints            []string
	Opportunities         []string
	CompetitiveAdvantages []string
}

// ProfileTable resolves industries to profiles, falling back to a generic
// profile for general or unmapped industries. Read-only after construction.
type ProfileTable struct {
	profiles map[domain.Industry]IndustryProfile
	fallback IndustryProfile
}

// NewProfileTable builds a ProfileTable.
func NewProfileTable(profiles map[domain.Industry]IndustryProfile, fallback IndustryProfile) *ProfileTable {
	copied := make(map[domain.Industry]IndustryProfile, len(profiles))
	for k, v := range profiles {
		copied[k] = v.clone()
	}
	return &ProfileTable{profiles: copied, fallback: fallback.clone()}
}

// Lookup returns a copy of the profile for industry.
func (t *ProfileTable) Lookup(industry domain.Industry) IndustryProfile {
	if p, ok := t.profiles[industry]; ok {
		return p.clone()
	}
	return t.fallback.clone()
}

func (p IndustryProfile) clone() IndustryProfile {
	return IndustryProfile{
		Insights:              slices.Clone(p.Insights),
		PainPoints:            slices.Clone(p.PainPoints),
		Opportunities:         slices.Clone(p.Opportunities),
		CompetitiveAdvantages: slices.Clone(p.CompetitiveAdvantages),
	}
}

// BuildLeadAnalysis assembles the lead analysis from score, urgency and industry.
func BuildLeadAnalysis(score int, urgency domain.Urgency, industry domain.Industry, profiles *ProfileTable) domain.LeadAnalysis {
	profile := profiles.Lookup(industry)
	return domain.LeadAnalysis{
		LeadScore:             score,
		UrgencyLevel:          urgency,
		Industry:              industry,
		IndustryInsights:      profile.Insights,
		PainPoints:            profile.PainPoints,
		Opportunities:         profile.Opportunities,
		CompetitiveAdvantages: profile.CompetitiveAdvantages,
	}
}

const defaultSourceQuality = 50

var sourceQuality = map[domain.LeadSource]int{
	domain.SourceBark:        85,
	domain.SourceGoogleMaps:  75,
	domain.SourceChatWidget:  80,
	domain.SourceReferral:    90,
	domain.SourceManualEntry: 60,
}

// SourceQuality returns the static quality rating of a lead source.
func SourceQuality(source domain.LeadSource) int {
	if q, ok := sourceQuality[source]; ok {
		return q
	}
	return defaultSourceQuality
}

// BuildContextualFactors derives the rep-facing signals for a lead.
func BuildContextualFactors(lead domain.LeadRecord, leadAgeHours *float64) domain.ContextualFactors {
	var age *float64
	if leadAgeHours != nil {
		v := *leadAgeHours
		age = &v
	}
	return domain.ContextualFactors{
		LeadAge:              age,
		SourceQuality:        SourceQuality(lead.LeadSource),
		BudgetIndicators:     budgetIndicators(lead.Budget),
		DecisionMakerSignals: decisionMakerSignals(lead.Position),
		TimelineIndicators:   timelineIndicators(lead, leadAgeHours),
	}
}

func budgetIndicators(budget int64) []string {
	switch {
	case budget > 10000:
		return []string{"Enterprise-level budget", "Can support a full-service package"}
	case budget > 5000:
		return []string{"Substantial budget", "Good fit for premium services"}
	case budget > 1000:
		return []string{"Moderate budget", "Start with a core package and expand"}
	case budget > 0:
		return []string{"Limited budget", "Lead with an entry-level offer"}
	default:
		return []string{"No budget disclosed", "Qualify budget early in the conversation"}
	}
}

var (
	primaryDecisionMakerTitles = []string{"owner", "ceo", "founder", "president", "principal", "partner"}
	influencerTitles           = []string{"manager", "director", "head of", "supervisor", "coordinator"}
)

func decisionMakerSignals(position string) []string {
	pos := strings.ToLower(strings.TrimSpace(position))
	if pos == "" {
		return []string{"Position unknown, confirm decision-making authority"}
	}

	var signals []string
	if containsAny(pos, primaryDecisionMakerTitles) {
		signals = append(signals, "Likely primary decision maker")
	}
	if containsAny(pos, influencerTitles) {
		signals = append(signals, "Decision influencer, confirm who signs off")
	}
	if len(signals) == 0 {
		signals = append(signals, "No clear decision-making authority")
	}
	return signals
}

func timelineIndicators(lead domain.LeadRecord, leadAgeHours *float64) []string {
	var indicators []string

	switch lead.LeadSource {
	case domain.SourceBark:
		indicators = append(indicators, "Actively collecting quotes now")
	case domain.SourceChatWidget:
		indicators = append(indicators, "Engaged on the website recently")
	case domain.SourceGoogleMaps:
		indicators = append(indicators, "Searching for a local provider")
	case domain.SourceReferral:
		indicators = append(indicators, "Warm introduction, trust already established")
	}

	if leadAgeHours != nil {
		hours := *leadAgeHours
		switch {
		case hours <= 1:
			indicators = append(indicators, "Fresh lead, within the first hour")
		case hours <= 24:
			indicators = append(indicators, "Lead is less than a day old")
		case hours <= 72:
			indicators = append(indicators, "Lead is one to three days old")
		default:
			indicators = append(indicators, "Lead is older than three days")
		}
	}

	notes := strings.ToLower(lead.Notes)
	if strings.Contains(notes, "urgent") || strings.Contains(notes, "asap") {
		indicators = append(indicators, "Customer signalled urgency in notes")
	}

	if len(indicators) == 0 {
		indicators = append(indicators, "No timeline signals, ask about their timeframe")
	}
	return indicators
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
