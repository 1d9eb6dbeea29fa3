package engine

import "starzcrm_backend/internal/salestips/domain"

// DefaultProfiles returns the built-in industry talking points.
// Electrical and automotive have no dedicated profile and use the generic one.
func DefaultProfiles() *ProfileTable {
	return NewProfileTable(defaultIndustryProfiles, genericProfile)
}

var defaultIndustryProfiles = map[domain.Industry]IndustryProfile{
	domain.IndustryRestaurant: {
		Insights: []string{
			"Most diners check reviews and photos before choosing where to eat",
			"Weeknight covers decide profitability more than weekends",
			"Online ordering and reservations drive repeat visits",
		},
		PainPoints: []string{
			"Empty tables on slow nights",
			"Third-party delivery commissions eating margin",
			"Negative reviews going unanswered",
		},
		Opportunities: []string{
			"Local search and map pack visibility",
			"Slow-night promotions for regulars",
			"Direct online ordering",
		},
		CompetitiveAdvantages: []string{
			"Restaurant-specific campaign templates",
			"Review response management",
			"Reservation tracking tied to campaigns",
		},
	},
	domain.IndustryHVAC: {
		Insights: []string{
			"Demand spikes with extreme weather and drops in shoulder seasons",
			"Emergency calls convert at the highest rates",
			"Maintenance agreements create predictable revenue",
		},
		PainPoints: []string{
			"Missed after-hours emergency calls",
			"Feast-or-famine seasonal cash flow",
			"High cost per lead from aggregators",
		},
		Opportunities: []string{
			"Emergency service campaigns",
			"Maintenance agreement sign-ups before peak season",
			"System replacement financing offers",
		},
		CompetitiveAdvantages: []string{
			"24/7 call tracking and answering",
			"Seasonal campaign calendar",
			"Exclusive leads instead of shared ones",
		},
	},
	domain.IndustryPlumbing: {
		Insights: []string{
			"Most plumbing jobs are urgent and go to the first responder",
			"Reviews mentioning punctuality drive bookings",
			"Service area targeting reduces drive time",
		},
		PainPoints: []string{
			"Competing with franchise brands on visibility",
			"Wasted spend outside the service area",
			"Price shoppers calling several plumbers",
		},
		Opportunities: []string{
			"Emergency plumber search terms",
			"Water heater replacement campaigns",
			"Neighborhood-level targeting",
		},
		CompetitiveAdvantages: []string{
			"Speed-to-lead call routing",
			"Geo-fenced campaigns",
			"Booked-job reporting",
		},
	},
	domain.IndustryHealthcare: {
		Insights: []string{
			"Patients research providers online before booking",
			"Convenient online booking increases new patient volume",
			"Retention matters as much as acquisition",
		},
		PainPoints: []string{
			"Inconsistent new patient flow",
			"No-shows and cancellations",
			"Compliance concerns around marketing data",
		},
		Opportunities: []string{
			"Online booking integration",
			"Reputation building through patient reviews",
			"Recall and reactivation campaigns",
		},
		CompetitiveAdvantages: []string{
			"Privacy-conscious campaign setup",
			"Practice growth reporting",
			"Patient reactivation sequences",
		},
	},
	domain.IndustryLegal: {
		Insights: []string{
			"Clients choose firms based on perceived expertise and trust",
			"A single signed case can justify months of marketing spend",
			"Intake speed strongly affects signed cases",
		},
		PainPoints: []string{
			"High cost per click in legal search",
			"Low-quality inquiries wasting attorney time",
			"Slow intake follow-up",
		},
		Opportunities: []string{
			"Practice-area specific landing pages",
			"Intake automation and call tracking",
			"Thought leadership content",
		},
		CompetitiveAdvantages: []string{
			"Case-value based reporting",
			"Intake qualification scripts",
			"Compliance-aware advertising",
		},
	},
	domain.IndustryRealEstate: {
		Insights: []string{
			"Listing appointments are the key growth metric",
			"Sellers pick agents with visible local market knowledge",
			"Consistent follow-up converts long-cycle leads",
		},
		PainPoints: []string{
			"Long and unpredictable sales cycles",
			"Portal leads shared with many agents",
			"Keeping past clients engaged",
		},
		Opportunities: []string{
			"Seller lead campaigns",
			"Neighborhood market reports",
			"Past client nurture sequences",
		},
		CompetitiveAdvantages: []string{
			"Exclusive seller leads",
			"Automated long-term nurture",
			"Hyper-local content",
		},
	},
}

var genericProfile = IndustryProfile{
	Insights: []string{
		"Small businesses rely on local visibility and reputation",
		"Fast follow-up is the biggest driver of conversion",
		"Clear reporting builds trust in marketing spend",
	},
	PainPoints: []string{
		"Inconsistent lead flow",
		"Limited time to manage marketing",
		"Unclear return on past marketing spend",
	},
	Opportunities: []string{
		"Local search optimization",
		"Review generation",
		"Automated follow-up sequences",
	},
	CompetitiveAdvantages: []string{
		"Done-for-you campaign management",
		"Transparent reporting",
		"Dedicated account manager",
	},
}
