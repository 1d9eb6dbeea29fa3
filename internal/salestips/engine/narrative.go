package engine

import (
	"strings"

	"starzcrm_backend/internal/salestips/domain"
)

// MaxNextActions is the cap on next best actions.
const MaxNextActions = 6

const (
	approachBark = "Bark leads are comparing several quotes, so lead with speed: call within minutes, " +
		"reference their exact request and be the first provider they speak to."
	approachGoogleMaps = "Google Maps leads found you through local search, so open with your local presence, " +
		"reviews and availability in their area."
	approachChatWidget = "Chat widget leads were just on the website, so pick up where the chat left off " +
		"and answer their open question first."
	approachDefault = "Open with a consultative discovery conversation focused on their goals before presenting any solution."

	approachRestaurant = "For restaurants, frame everything around filling tables on slow nights and " +
		"never call during lunch or dinner service."
	approachHVAC = "For HVAC businesses, emphasize capturing emergency and seasonal demand and winning more " +
		"system replacement jobs."
	approachHealthcare = "For healthcare practices, focus on new patient acquisition and retention while " +
		"addressing privacy and compliance early."

	approachFresh = "This lead is fresh, so act now: responding within the first hour sharply increases contact " +
		"and conversion rates."
	approachReengage = "This lead is more than three days old and needs re-engagement: acknowledge the delay " +
		"and bring new value instead of a generic check-in."
)

// BuildApproach assembles the recommended approach from source, industry and age fragments.
// Only restaurant, hvac and healthcare get an industry sentence; the age sentence is
// added only for leads up to one hour old or older than 72 hours.
func BuildApproach(industry domain.Industry, source domain.LeadSource, leadAgeHours *float64) string {
	parts := make([]string, 0, 3)

	switch source {
	case domain.SourceBark:
		parts = append(parts, approachBark)
	case domain.SourceGoogleMaps:
		parts = append(parts, approachGoogleMaps)
	case domain.SourceChatWidget:
		parts = append(parts, approachChatWidget)
	default:
		parts = append(parts, approachDefault)
	}

	switch industry {
	case domain.IndustryRestaurant:
		parts = append(parts, approachRestaurant)
	case domain.IndustryHVAC:
		parts = append(parts, approachHVAC)
	case domain.IndustryHealthcare:
		parts = append(parts, approachHealthcare)
	}

	if leadAgeHours != nil {
		switch hours := *leadAgeHours; {
		case hours <= 1:
			parts = append(parts, approachFresh)
		case hours > 72:
			parts = append(parts, approachReengage)
		}
	}

	return strings.Join(parts, " ")
}

var (
	immediateActions = []string{
		"Call the lead within 5 minutes",
		"Send a personalized text if the call goes unanswered",
		"Book a consultation for today or tomorrow",
	}
	highActions = []string{
		"Call the lead within the hour",
		"Send a follow-up email with a relevant case study",
		"Propose two specific meeting times this week",
	}
	// Medium and low urgency share one list.
	standardActions = []string{
		"Add the lead to a nurture sequence",
		"Research the business before reaching out",
		"Schedule a follow-up call within 3 days",
	}

	barkActions = []string{
		"Reply on Bark with a tailored quote message",
		"Mention response time and reviews in the first contact",
	}
	highBudgetActions = []string{
		"Prepare a premium package proposal",
		"Bring a senior account manager into the next conversation",
	}
	industryActions = map[domain.Industry][]string{
		domain.IndustryRestaurant: {
			"Prepare a local restaurant case study showing covers gained",
			"Mock up a slow-night promotion campaign",
		},
		domain.IndustryHVAC: {
			"Prepare a seasonal demand campaign plan",
			"Show emergency call tracking examples",
		},
	}
)

// BuildNextActions lists next steps in a fixed append order (urgency tier, bark,
// high budget, industry) and truncates to MaxNextActions, so later groups are the
// ones dropped when the list overflows.
func BuildNextActions(lead domain.LeadRecord, industry domain.Industry, analysis domain.LeadAnalysis) []string {
	actions := make([]string, 0, 9)

	switch analysis.UrgencyLevel {
	case domain.UrgencyImmediate:
		actions = append(actions, immediateActions...)
	case domain.UrgencyHigh:
		actions = append(actions, highActions...)
	default:
		actions = append(actions, standardActions...)
	}

	if lead.LeadSource == domain.SourceBark {
		actions = append(actions, barkActions...)
	}
	if lead.Budget > 5000 {
		actions = append(actions, highBudgetActions...)
	}
	actions = append(actions, industryActions[industry]...)

	if len(actions) > MaxNextActions {
		actions = actions[:MaxNextActions]
	}
	return actions
}
