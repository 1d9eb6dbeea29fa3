package engine

import (
	"slices"

	"starzcrm_backend/internal/salestips/domain"
)

const (
	// MaxTips is the number of tips returned per generation.
	MaxTips = 5

	maxConfidence = 100
)

// Contextual confidence bonuses. They stack.
const (
	callingOpenerBonus    = 10
	emailingFollowUpBonus = 10
	closingClosingBonus   = 15
	sourceMatchBonus      = 15
	industryMatchBonus    = 12
	freshCriticalBonus    = 8
	highImpactBonus       = 5
)

// RankTips adjusts each candidate's confidence for the lead context, sorts
// descending and keeps the top MaxTips. Equal confidences keep candidate order.
// The returned tips are copies; candidates is not modified.
func RankTips(candidates []domain.SalesTip, lead domain.LeadRecord, industry domain.Industry, action domain.Action, leadAgeHours *float64) []domain.SalesTip {
	ranked := cloneTips(candidates)
	if ranked == nil {
		ranked = []domain.SalesTip{}
	}
	for i := range ranked {
		ranked[i].Confidence = AdjustConfidence(ranked[i], lead, industry, action, leadAgeHours)
	}

	slices.SortStableFunc(ranked, func(a, b domain.SalesTip) int {
		return b.Confidence - a.Confidence
	})

	if len(ranked) > MaxTips {
		ranked = ranked[:MaxTips]
	}
	return ranked
}

// AdjustConfidence returns the tip's contextual confidence clamped to [0, 100].
func AdjustConfidence(tip domain.SalesTip, lead domain.LeadRecord, industry domain.Industry, action domain.Action, leadAgeHours *float64) int {
	confidence := tip.Confidence

	switch {
	case action == domain.ActionCalling && tip.Category == domain.CategoryOpener:
		confidence += callingOpenerBonus
	case action == domain.ActionEmailing && tip.Category == domain.CategoryFollowUp:
		confidence += emailingFollowUpBonus
	case action == domain.ActionClosing && tip.Category == domain.CategoryClosing:
		confidence += closingClosingBonus
	}

	if tip.LeadSource != domain.SourceUnknown && tip.LeadSource == lead.LeadSource {
		confidence += sourceMatchBonus
	}
	if tip.Industry != "" && tip.Industry == industry {
		confidence += industryMatchBonus
	}
	if leadAgeHours != nil && *leadAgeHours <= 1 && tip.Priority == domain.PriorityCritical {
		confidence += freshCriticalBonus
	}
	if tip.ExpectedImpact == domain.ImpactHigh {
		confidence += highImpactBonus
	}

	return clampConfidence(confidence)
}

func clampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > maxConfidence {
		return maxConfidence
	}
	return confidence
}
