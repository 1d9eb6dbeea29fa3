package engine

import (
	"strings"

	"starzcrm_backend/internal/salestips/domain"
)

type industryKeywords struct {
	industry domain.Industry
	keywords []string
}

// industryMatchOrder is checked top to bottom; the first industry with a keyword hit wins.
// Keywords are lowercase substrings and must not occur inside unrelated words:
// bare stems such as "pipe", "drain", "health" or "legal" also hit "pipeline",
// "drained", "healthy" and "illegal", so those industries use full terms or phrases.
var industryMatchOrder = []industryKeywords{
	{domain.IndustryRestaurant, []string{
		"restaurant", "cafe", "café", "diner", "bistro", "pizzeria", "pizza",
		"grill", "eatery", "catering", "bakery", "food truck", "steakhouse",
	}},
	{domain.IndustryHVAC, []string{
		"hvac", "heating", "cooling", "air condition", "furnace", "heat pump", "ductwork",
	}},
	{domain.IndustryPlumbing, []string{
		"plumbing", "plumber", "sewer line", "sewer repair", "water heater", "burst pipe",
		"pipe repair", "drain cleaning", "clogged drain", "rooter",
	}},
	{domain.IndustryElectrical, []string{
		"electric", "wiring", "panel upgrade", "generator install",
	}},
	{domain.IndustryHealthcare, []string{
		"dental", "dentist", "medical", "clinic", "healthcare", "health care", "health clinic",
		"physician", "chiropract", "doctor", "orthodont", "physical therapy", "med spa",
	}},
	{domain.IndustryLegal, []string{
		"law firm", "law office", "lawyer", "attorney", "legal services", "legal practice",
		"paralegal", "litigation",
	}},
	{domain.IndustryRealEstate, []string{
		"real estate", "realty", "realtor", "property management", "brokerage", "mortgage",
	}},
	{domain.IndustryAutomotive, []string{
		"automotive", "auto repair", "auto body", "auto shop", "car dealer", "dealership",
		"auto mechanic", "mechanic shop", "tire shop", "tire service", "collision repair", "car wash",
	}},
}

// DetectIndustry classifies a lead from its free-text fields.
func DetectIndustry(lead domain.LeadRecord) domain.Industry {
	text := classificationText(lead)
	if text == "" {
		return domain.IndustryGeneral
	}

	for _, entry := range industryMatchOrder {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.industry
			}
		}
	}
	return domain.IndustryGeneral
}

func classificationText(lead domain.LeadRecord) string {
	parts := []string{lead.Company, lead.Notes, lead.Position}
	return strings.ToLower(strings.TrimSpace(strings.Join(parts, " ")))
}
