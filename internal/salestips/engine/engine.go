// Package engine implements the rule-based sales tip generator: it classifies a
// lead, scores it, ranks canned tips for the context and writes the recommended
// approach. Everything here is deterministic and free of I/O, so an Engine can be
// shared by concurrent requests without locking.
package engine

import "starzcrm_backend/internal/salestips/domain"

// Options carries the optional per-call hints.
type Options struct {
	CurrentAction domain.Action
	// LeadAgeHours is nil when the caller does not know the lead's age.
	LeadAgeHours *float64
	CallContext  *domain.CallContext
}

// Engine generates sales tips from an injected catalog and profile table.
type Engine struct {
	catalog  *Catalog
	profiles *ProfileTable
}

// New creates an engine over the given catalog and profiles.
func New(catalog *Catalog, profiles *ProfileTable) *Engine {
	return &Engine{catalog: catalog, profiles: profiles}
}

// Default creates an engine with the built-in catalog and profiles.
func Default() *Engine {
	return New(DefaultCatalog(), DefaultProfiles())
}

// Catalog exposes the engine's tip repository.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Generate runs the full pipeline for one lead.
func (e *Engine) Generate(lead domain.LeadRecord, opts Options) domain.Result {
	industry := DetectIndustry(lead)
	score, urgency := ScoreLead(lead, opts.LeadAgeHours)

	analysis := BuildLeadAnalysis(score, urgency, industry, e.profiles)
	factors := BuildContextualFactors(lead, opts.LeadAgeHours)

	candidates := e.catalog.Candidates(industry, lead.LeadSource)
	tips := RankTips(candidates, lead, industry, opts.CurrentAction, opts.LeadAgeHours)

	return domain.Result{
		Tips:                tips,
		LeadAnalysis:        analysis,
		ContextualFactors:   factors,
		RecommendedApproach: BuildApproach(industry, lead.LeadSource, opts.LeadAgeHours),
		NextBestActions:     BuildNextActions(lead, industry, analysis),
	}
}
