package engine

import "starzcrm_backend/internal/salestips/domain"

// DefaultCatalog returns the built-in tip repository.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultIndustryTips, defaultSourceTips, defaultUniversalTips)
}

var defaultIndustryTips = map[domain.Industry][]domain.SalesTip{
	domain.IndustryRestaurant: {
		{
			ID:              "restaurant-slow-nights",
			Category:        domain.CategoryOpener,
			Priority:        domain.PriorityCritical,
			Title:           "Open with their slow nights",
			Tip:             "Ask which nights are hardest to fill before mentioning any service.",
			Script:          "Hi [Name], quick question before anything else: which nights are the toughest to fill at [Company] right now?",
			Context:         "Owners feel empty Tuesday and Wednesday tables directly in their pocket; starting there earns attention.",
			Triggers:        []string{"slow", "empty", "weeknight", "covers"},
			Industry:        domain.IndustryRestaurant,
			Confidence:      85,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 2,
		},
		{
			ID:              "restaurant-service-hours",
			Category:        domain.CategoryQualification,
			Priority:        domain.PriorityHigh,
			Title:           "Respect service hours",
			Tip:             "Never call between 11:30-14:00 or 17:30-21:00; qualify in the afternoon lull.",
			Script:          "I know service is hectic, [Name]. Is 3pm a good time for a ten minute call about getting more reservations?",
			Context:         "Calls during a rush are remembered for the wrong reasons.",
			Triggers:        []string{"lunch", "dinner", "busy"},
			Industry:        domain.IndustryRestaurant,
			Confidence:      78,
			ExpectedImpact:  domain.ImpactMedium,
			TimeToImplement: 1,
		},
		{
			ID:              "restaurant-reviews-proof",
			Category:        domain.CategoryValueProposition,
			Priority:        domain.PriorityMedium,
			Title:           "Tie results to reviews and reservations",
			Tip:             "Show how review volume and map ranking translate into booked covers.",
			Script:          "Restaurants we work with in [City] added about forty covers a week once their reviews and map listing were working together.",
			Context:         "Restaurant owners trust numbers they can see in their reservation book.",
			Triggers:        []string{"reviews", "yelp", "reservations"},
			Industry:        domain.IndustryRestaurant,
			Confidence:      72,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 5,
		},
	},
	domain.IndustryHVAC: {
		{
			ID:              "hvac-emergency-calls",
			Category:        domain.CategoryOpener,
			Priority:        domain.PriorityCritical,
			Title:           "Lead with emergency call volume",
			Tip:             "Ask how many emergency calls they miss after hours.",
			Script:          "[Name], when a furnace dies at 9pm in January, who answers the phone at [Company]?",
			Context:         "Missed emergency calls are the most expensive leak in an HVAC business.",
			Triggers:        []string{"emergency", "after hours", "no heat"},
			Industry:        domain.IndustryHVAC,
			Confidence:      88,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 2,
		},
		{
			ID:              "hvac-seasonal-demand",
			Category:        domain.CategoryValueProposition,
			Priority:        domain.PriorityHigh,
			Title:           "Plan around the seasons",
			Tip:             "Position campaigns that smooth out the shoulder seasons between heating and cooling peaks.",
			Script:          "Most HVAC shops we talk to are slammed in July and quiet in April. Want to see how we fill April with maintenance agreements?",
			Context:         "Seasonality is the pain every HVAC owner already knows about.",
			Triggers:        []string{"seasonal", "spring", "fall", "maintenance"},
			Industry:        domain.IndustryHVAC,
			Confidence:      80,
			ExpectedImpact:  domain.ImpactMedium,
			TimeToImplement: 5,
		},
		{
			ID:              "hvac-replacement-ticket",
			Category:        domain.CategoryClosing,
			Priority:        domain.PriorityHigh,
			Title:           "Close on replacement jobs",
			Tip:             "Anchor the investment against a single system replacement job.",
			Script:          "One extra system replacement a month covers this program several times over, [Name]. Shall we start on the first of the month?",
			Context:         "A single high-ticket install pays for the service; make that math explicit.",
			Triggers:        []string{"replacement", "install", "ticket"},
			Industry:        domain.IndustryHVAC,
			Confidence:      76,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 3,
		},
	},
	domain.IndustryPlumbing: {
		{
			ID:              "plumbing-first-responder",
			Category:        domain.CategoryOpener,
			Priority:        domain.PriorityCritical,
			Title:           "Win the first-call race",
			Tip:             "Open on speed: homeowners with a leak call the first plumber who answers.",
			Script:          "[Name], when someone searches 'emergency plumber near me', how fast does [Company] show up and pick up?",
			Context:         "Plumbing demand is urgent and goes to whoever responds first.",
			Triggers:        []string{"leak", "burst", "emergency"},
			Industry:        domain.IndustryPlumbing,
			Confidence:      84,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 2,
		},
		{
			ID:              "plumbing-service-area",
			Category:        domain.CategoryQualification,
			Priority:        domain.PriorityMedium,
			Title:           "Map the service area",
			Tip:             "Confirm which zip codes they want more jobs from before proposing coverage.",
			Script:          "Which neighborhoods would you most like more calls from, [Name]?",
			Context:         "Drive time kills margin; targeting the right area matters more than volume.",
			Triggers:        []string{"area", "zip", "travel"},
			Industry:        domain.IndustryPlumbing,
			Confidence:      70,
			ExpectedImpact:  domain.ImpactMedium,
			TimeToImplement: 3,
		},
	},
	domain.IndustryElectrical: {
		{
			ID:              "electrical-licensed-trust",
			Category:        domain.CategoryValueProposition,
			Priority:        domain.PriorityHigh,
			Title:           "Sell licensed trust",
			Tip:             "Highlight license, insurance and safety record in every message.",
			Script:          "Homeowners are nervous about electrical work, [Name]. We make your license and safety record the first thing they see.",
			Context:         "Electrical buyers choose on safety and credentials before price.",
			Triggers:        []string{"licensed", "insured", "safety"},
			Industry:        domain.IndustryElectrical,
			Confidence:      75,
			ExpectedImpact:  domain.ImpactMedium,
			TimeToImplement: 3,
		},
	},
	domain.IndustryHealthcare: {
		{
			ID:              "healthcare-new-patients",
			Category:        domain.CategoryOpener,
			Priority:        domain.PriorityHigh,
			Title:           "Open with new patient flow",
			Tip:             "Ask how many new patients they see per month and what they want that number to be.",
			Script:          "[Name], how many new patients does [Company] see in a typical month, and where would you like that to be?",
			Context:         "Practice owners track new patients closely; it frames the whole conversation.",
			Triggers:        []string{"patients", "appointments", "practice"},
			Industry:        domain.IndustryHealthcare,
			Confidence:      82,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 2,
		},
		{
			ID:              "healthcare-compliance",
			Category:        domain.CategoryObjectionHandling,
			Priority:        domain.PriorityHigh,
			Title:           "Address compliance up front",
			Tip:             "Bring up privacy and compliance before they do.",
			Script:          "Before we go further, [Name], everything we run is built to keep patient information out of marketing systems entirely.",
			Context:         "Compliance worries stall healthcare deals late if they are not handled early.",
			Triggers:        []string{"hipaa", "privacy", "compliance"},
			Industry:        domain.IndustryHealthcare,
			Confidence:      77,
			ExpectedImpact:  domain.ImpactMedium,
			TimeToImplement: 3,
		},
	},
	domain.IndustryLegal: {
		{
			ID:              "legal-case-value",
			Category:        domain.CategoryQualification,
			Priority:        domain.PriorityHigh,
			Title:           "Qualify by case value",
			Tip:             "Ask which case types are most valuable to the firm and focus the pitch there.",
			Script:          "[Name], which matters would you like more of at [Company], and what is a typical case worth to the firm?",
			Context:         "Firms buy marketing to get specific case types, not generic traffic.",
			Triggers:        []string{"cases", "clients", "practice area"},
			Industry:        domain.IndustryLegal,
			Confidence:      74,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 4,
		},
	},
	domain.IndustryRealEstate: {
		{
			ID:              "realestate-listing-pipeline",
			Category:        domain.CategoryOpener,
			Priority:        domain.PriorityMedium,
			Title:           "Talk listings, not leads",
			Tip:             "Agents care about listing appointments; frame results in listings.",
			Script:          "[Name], how many listing appointments would make next quarter a great one for you?",
			Context:         "Real estate professionals measure success in listings and closings.",
			Triggers:        []string{"listings", "sellers", "market"},
			Industry:        domain.IndustryRealEstate,
			Confidence:      71,
			ExpectedImpact:  domain.ImpactMedium,
			TimeToImplement: 2,
		},
	},
	domain.IndustryAutomotive: {
		{
			ID:              "automotive-bay-utilization",
			Category:        domain.CategoryValueProposition,
			Priority:        domain.PriorityMedium,
			Title:           "Fill empty bays",
			Tip:             "Connect the offer to bay utilization and repeat service visits.",
			Script:          "[Name], on an average Tuesday how many bays at [Company] sit empty?",
			Context:         "Shops think in bay hours; empty bays are lost revenue they can picture.",
			Triggers:        []string{"bays", "service", "repair"},
			Industry:        domain.IndustryAutomotive,
			Confidence:      70,
			ExpectedImpact:  domain.ImpactMedium,
			TimeToImplement: 3,
		},
	},
}

var defaultSourceTips = map[domain.LeadSource][]domain.SalesTip{
	domain.SourceBark: {
		{
			ID:              "bark-speed-to-lead",
			Category:        domain.CategoryOpener,
			Priority:        domain.PriorityCritical,
			Title:           "Beat the other Bark responders",
			Tip:             "Bark leads receive several quotes; call within five minutes and reference their request.",
			Script:          "Hi [Name], this is [Your Name]. I just saw your request on Bark about [Service] and wanted to reach you before you get buried in quotes.",
			Context:         "The first responder on Bark wins most of the jobs.",
			Triggers:        []string{"bark", "quote", "request"},
			LeadSource:      domain.SourceBark,
			Confidence:      90,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 1,
		},
		{
			ID:              "bark-differentiate-quote",
			Category:        domain.CategoryObjectionHandling,
			Priority:        domain.PriorityHigh,
			Title:           "Differentiate from cheaper quotes",
			Tip:             "Expect price comparisons; reframe on outcomes and guarantees.",
			Script:          "You'll likely see cheaper quotes, [Name]. The difference is we report on booked jobs, not clicks. Can I show you what that looks like?",
			Context:         "Bark buyers are comparison shopping by design.",
			Triggers:        []string{"price", "cheaper", "quote"},
			LeadSource:      domain.SourceBark,
			Confidence:      80,
			ExpectedImpact:  domain.ImpactMedium,
			TimeToImplement: 3,
		},
	},
	domain.SourceGoogleMaps: {
		{
			ID:              "maps-local-proof",
			Category:        domain.CategoryOpener,
			Priority:        domain.PriorityHigh,
			Title:           "Lead with local proof",
			Tip:             "Mention nearby clients and their map rankings.",
			Script:          "Hi [Name], we help a few businesses near [Company] show up in the top three on Google Maps. I noticed your listing and had a couple of ideas.",
			Context:         "Maps leads are local and respond to local evidence.",
			Triggers:        []string{"maps", "local", "listing"},
			LeadSource:      domain.SourceGoogleMaps,
			Confidence:      78,
			ExpectedImpact:  domain.ImpactMedium,
			TimeToImplement: 2,
		},
		{
			ID:              "maps-listing-audit",
			Category:        domain.CategoryValueProposition,
			Priority:        domain.PriorityMedium,
			Title:           "Offer a free listing audit",
			Tip:             "Give them a quick audit of their Google Business Profile as a reason to talk.",
			Script:          "I put together three quick fixes for [Company]'s Google listing. Want me to walk you through them in five minutes?",
			Context:         "A concrete audit is a low-risk first step.",
			Triggers:        []string{"audit", "profile", "reviews"},
			LeadSource:      domain.SourceGoogleMaps,
			Confidence:      74,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 10,
		},
	},
	domain.SourceChatWidget: {
		{
			ID:              "chat-continue-thread",
			Category:        domain.CategoryOpener,
			Priority:        domain.PriorityCritical,
			Title:           "Continue the chat conversation",
			Tip:             "Reference the exact question they asked in the chat.",
			Script:          "Hi [Name], following up on your chat a few minutes ago about [Topic]. I have the answer and one idea to go with it.",
			Context:         "Chat leads are warm for minutes, not hours.",
			Triggers:        []string{"chat", "website", "question"},
			LeadSource:      domain.SourceChatWidget,
			Confidence:      86,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 1,
		},
		{
			ID:              "chat-email-recap",
			Category:        domain.CategoryFollowUp,
			Priority:        domain.PriorityMedium,
			Title:           "Send a chat recap email",
			Tip:             "Email a summary of the chat with one clear next step.",
			Script:          "Subject: Your question about [Topic]\n\nHi [Name], here is a quick recap of our chat and the one thing I'd suggest doing next.",
			Context:         "A written recap keeps the conversation alive if they leave the site.",
			Triggers:        []string{"recap", "summary", "email"},
			LeadSource:      domain.SourceChatWidget,
			Confidence:      72,
			ExpectedImpact:  domain.ImpactMedium,
			TimeToImplement: 5,
		},
	},
	domain.SourceReferral: {
		{
			ID:              "referral-name-drop",
			Category:        domain.CategoryOpener,
			Priority:        domain.PriorityHigh,
			Title:           "Open with the referrer",
			Tip:             "Mention who referred them in the first sentence.",
			Script:          "Hi [Name], [Referrer] suggested I reach out. They mentioned you might be looking for help with [Service].",
			Context:         "Borrowed trust from the referrer shortens the sales cycle.",
			Triggers:        []string{"referral", "referred", "recommendation"},
			LeadSource:      domain.SourceReferral,
			Confidence:      88,
			ExpectedImpact:  domain.ImpactHigh,
			TimeToImplement: 1,
		},
	},
	domain.SourceManualEntry: {
		{
			ID:              "manual-verify-details",
			Category:        domain.CategoryQualification,
			Priority:        domain.PriorityMedium,
			Title:           "Verify the basics",
			Tip:             "Manually entered leads may have gaps; confirm need, timeline and contact details first.",
			Script:          "Hi [Name], I want to make sure I have this right. You're looking at [Service] for [Company]. Is that still the priority?",
			Context:         "Manual entries are often old or incomplete.",
			Triggers:        []string{"verify", "confirm"},
			LeadSource:      domain.SourceManualEntry,
			Confidence:      65,
			ExpectedImpact:  domain.ImpactLow,
			TimeToImplement: 2,
		},
	},
}

var defaultUniversalTips = []domain.SalesTip{
	{
		ID:              "universal-discovery-questions",
		Category:        domain.CategoryQualification,
		Priority:        domain.PriorityHigh,
		Title:           "Ask before you pitch",
		Tip:             "Use two open questions about goals and current results before presenting anything.",
		Script:          "What would a great year look like for [Company], [Name]? And what's getting in the way right now?",
		Context:         "Prospects buy when they hear their own goals played back.",
		Triggers:        []string{"goals", "discovery"},
		Confidence:      75,
		ExpectedImpact:  domain.ImpactHigh,
		TimeToImplement: 5,
	},
	{
		ID:              "universal-price-objection",
		Category:        domain.CategoryObjectionHandling,
		Priority:        domain.PriorityMedium,
		Title:           "Reframe price as return",
		Tip:             "When price comes up, tie it to the value of one new customer.",
		Script:          "I hear you, [Name]. What is one new customer worth to [Company] over a year?",
		Context:         "Price objections fade once the return is concrete.",
		Triggers:        []string{"expensive", "price", "budget"},
		Confidence:      70,
		ExpectedImpact:  domain.ImpactMedium,
		TimeToImplement: 2,
	},
	{
		ID:              "universal-assumptive-close",
		Category:        domain.CategoryClosing,
		Priority:        domain.PriorityHigh,
		Title:           "Assume the next step",
		Tip:             "Offer two concrete start options instead of asking whether they want to proceed.",
		Script:          "We can start on Monday or on the first of next month, [Name]. Which works better for [Company]?",
		Context:         "Choice between two yeses moves deals forward.",
		Triggers:        []string{"ready", "start", "decision"},
		Confidence:      68,
		ExpectedImpact:  domain.ImpactHigh,
		TimeToImplement: 1,
	},
	{
		ID:              "universal-value-follow-up",
		Category:        domain.CategoryFollowUp,
		Priority:        domain.PriorityMedium,
		Title:           "Follow up with value",
		Tip:             "Every follow-up carries something useful: a stat, a case study or an idea.",
		Script:          "Hi [Name], saw this and thought of [Company]. Businesses like yours are getting results with [Idea]. Worth a quick chat?",
		Context:         "Follow-ups that only 'check in' get ignored.",
		Triggers:        []string{"follow up", "no response"},
		Confidence:      65,
		ExpectedImpact:  domain.ImpactMedium,
		TimeToImplement: 5,
	},
}
