// Package domain holds the value types shared by the sales tip engine, its
// service layer and its transport mappers. Nothing in here performs I/O.
package domain

import "strings"

// Industry is the vertical a lead is classified into.
type Industry string

const (
	IndustryRestaurant Industry = "restaurant"
	IndustryHVAC       Industry = "hvac"
	IndustryPlumbing   Industry = "plumbing"
	IndustryElectrical Industry = "electrical"
	IndustryHealthcare Industry = "healthcare"
	IndustryLegal      Industry = "legal"
	IndustryRealEstate Industry = "real_estate"
	IndustryAutomotive Industry = "automotive"
	IndustryGeneral    Industry = "general"
)

var knownIndustries = map[Industry]struct{}{
	IndustryRestaurant: {},
	IndustryHVAC:       {},
	IndustryPlumbing:   {},
	IndustryElectrical: {},
	IndustryHealthcare: {},
	IndustryLegal:      {},
	IndustryRealEstate: {},
	IndustryAutomotive: {},
	IndustryGeneral:    {},
}

func (i Industry) IsKnown() bool {
	_, ok := knownIndustries[i]
	return ok
}

// Label is the industry as a rep would say it in a script.
func (i Industry) Label() string {
	switch i {
	case IndustryHVAC:
		return "HVAC"
	case IndustryGeneral, "":
		return ""
	default:
		return strings.ReplaceAll(string(i), "_", " ")
	}
}

// LeadSource is the acquisition channel of a lead.
type LeadSource string

const (
	SourceBark        LeadSource = "bark"
	SourceGoogleMaps  LeadSource = "google_maps"
	SourceChatWidget  LeadSource = "chat_widget"
	SourceReferral    LeadSource = "referral"
	SourceManualEntry LeadSource = "manual_entry"
	// SourceUnknown covers absent and unrecognized tags.
	SourceUnknown LeadSource = ""
)

// ParseLeadSource maps a raw CRM tag onto the closed LeadSource set.
// Unrecognized values yield SourceUnknown.
func ParseLeadSource(raw string) LeadSource {
	switch LeadSource(strings.ToLower(strings.TrimSpace(raw))) {
	case SourceBark:
		return SourceBark
	case SourceGoogleMaps:
		return SourceGoogleMaps
	case SourceChatWidget:
		return SourceChatWidget
	case SourceReferral:
		return SourceReferral
	case SourceManualEntry:
		return SourceManualEntry
	default:
		return SourceUnknown
	}
}

// TipCategory groups tips by the conversation phase they help with.
type TipCategory string

const (
	CategoryOpener            TipCategory = "opener"
	CategoryQualification     TipCategory = "qualification"
	CategoryObjectionHandling TipCategory = "objection_handling"
	CategoryClosing           TipCategory = "closing"
	CategoryFollowUp          TipCategory = "follow_up"
	CategoryValueProposition  TipCategory = "value_proposition"
)

func (c TipCategory) IsKnown() bool {
	switch c {
	case CategoryOpener, CategoryQualification, CategoryObjectionHandling,
		CategoryClosing, CategoryFollowUp, CategoryValueProposition:
		return true
	}
	return false
}

// Priority is assigned by the tip author and is independent of runtime confidence.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

func (p Priority) IsKnown() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Impact is the expected effect of applying a tip.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

func (i Impact) IsKnown() bool {
	switch i {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return true
	}
	return false
}

// Urgency is the response-time tier derived from the lead score.
type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyHigh      Urgency = "high"
	UrgencyMedium    Urgency = "medium"
	UrgencyLow       Urgency = "low"
)

// Action is what the sales rep is about to do with the lead.
type Action string

const (
	ActionNone     Action = ""
	ActionCalling  Action = "calling"
	ActionEmailing Action = "emailing"
	ActionClosing  Action = "closing"
)

// ParseAction normalizes a caller hint. Unrecognized hints are kept verbatim and
// simply match no ranking bonus.
func ParseAction(raw string) Action {
	return Action(strings.ToLower(strings.TrimSpace(raw)))
}

// LeadRecord is the caller-owned input. Every field is optional.
type LeadRecord struct {
	Company    string     `json:"company,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	Position   string     `json:"position,omitempty"`
	LeadSource LeadSource `json:"leadSource,omitempty"`
	Budget     int64      `json:"budget,omitempty"`
}

// SalesTip is one entry of the tip repository. Confidence is the authored
// baseline; ranked copies carry the adjusted value.
type SalesTip struct {
	ID              string      `json:"id"`
	Category        TipCategory `json:"category"`
	Priority        Priority    `json:"priority"`
	Title           string      `json:"title"`
	Tip             string      `json:"tip"`
	Script          string      `json:"script"`
	Context         string      `json:"context"`
	Triggers        []string    `json:"triggers"`
	Industry        Industry    `json:"industry,omitempty"`
	LeadSource      LeadSource  `json:"leadSource,omitempty"`
	Confidence      int         `json:"confidence"`
	ExpectedImpact  Impact      `json:"expectedImpact"`
	TimeToImplement int         `json:"timeToImplement"`
}

// LeadAnalysis summarizes lead quality.
type LeadAnalysis struct {
	LeadScore             int      `json:"leadScore"`
	UrgencyLevel          Urgency  `json:"urgencyLevel"`
	Industry              Industry `json:"industry"`
	IndustryInsights      []string `json:"industryInsights"`
	PainPoints            []string `json:"painPoints"`
	Opportunities         []string `json:"opportunities"`
	CompetitiveAdvantages []string `json:"competitiveAdvantages"`
}

// ContextualFactors are the signals the narrative and the rep can act on.
type ContextualFactors struct {
	LeadAge              *float64 `json:"leadAge,omitempty"`
	SourceQuality        int      `json:"sourceQuality"`
	BudgetIndicators     []string `json:"budgetIndicators"`
	DecisionMakerSignals []string `json:"decisionMakerSignals"`
	TimelineIndicators   []string `json:"timelineIndicators"`
}

// CallContext describes the conversation in progress. It is accepted for
// forward compatibility and does not influence ranking.
type CallContext struct {
	PreviousInteractions int      `json:"previousInteractions,omitempty"`
	RaisedObjections     []string `json:"raisedObjections,omitempty"`
	CustomerMood         string   `json:"customerMood,omitempty"`
}

// Result is the full output of one generation.
type Result struct {
	Tips                []SalesTip        `json:"tips"`
	LeadAnalysis        LeadAnalysis      `json:"leadAnalysis"`
	ContextualFactors   ContextualFactors `json:"contextualFactors"`
	RecommendedApproach string            `json:"recommendedApproach"`
	NextBestActions     []string          `json:"nextBestActions"`
}
