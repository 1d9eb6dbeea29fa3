package engine

import (
	"testing"

	"starzcrm_backend/internal/salestips/domain"
)

func hours(v float64) *float64 { return &v }

func TestScoreLead(t *testing.T) {
	cases := []struct {
		name        string
		lead        domain.LeadRecord
		age         *float64
		wantScore   int
		wantUrgency domain.Urgency
	}{
		{"base only", domain.LeadRecord{}, nil, 50, domain.UrgencyMedium},
		{"budget over 10000", domain.LeadRecord{Budget: 10001}, nil, 75, domain.UrgencyHigh},
		{"budget exactly 10000 is second tier", domain.LeadRecord{Budget: 10000}, nil, 65, domain.UrgencyHigh},
		{"budget over 5000", domain.LeadRecord{Budget: 6000}, nil, 65, domain.UrgencyHigh},
		{"budget over 1000", domain.LeadRecord{Budget: 1500}, nil, 60, domain.UrgencyMedium},
		{"budget 1000 earns nothing", domain.LeadRecord{Budget: 1000}, nil, 50, domain.UrgencyMedium},
		{"age first hour", domain.LeadRecord{}, hours(1), 70, domain.UrgencyHigh},
		{"age same day", domain.LeadRecord{}, hours(24), 65, domain.UrgencyHigh},
		{"age three days", domain.LeadRecord{}, hours(72), 55, domain.UrgencyMedium},
		{"age stale", domain.LeadRecord{}, hours(73), 40, domain.UrgencyMedium},
		{"bark", domain.LeadRecord{LeadSource: domain.SourceBark}, nil, 70, domain.UrgencyHigh},
		{"google maps", domain.LeadRecord{LeadSource: domain.SourceGoogleMaps}, nil, 65, domain.UrgencyHigh},
		{"chat widget", domain.LeadRecord{LeadSource: domain.SourceChatWidget}, nil, 65, domain.UrgencyHigh},
		{"referral", domain.LeadRecord{LeadSource: domain.SourceReferral}, nil, 75, domain.UrgencyHigh},
		{"manual entry", domain.LeadRecord{LeadSource: domain.SourceManualEntry}, nil, 55, domain.UrgencyMedium},
		{"unknown source", domain.LeadRecord{LeadSource: domain.ParseLeadSource("facebook")}, nil, 50, domain.UrgencyMedium},
		{"clamped to 100", domain.LeadRecord{Budget: 12000, LeadSource: domain.SourceReferral}, hours(0.5), 100, domain.UrgencyImmediate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, urgency := ScoreLead(tc.lead, tc.age)
			if score != tc.wantScore {
				t.Errorf("expected score %d, got %d", tc.wantScore, score)
			}
			if urgency != tc.wantUrgency {
				t.Errorf("expected urgency %q, got %q", tc.wantUrgency, urgency)
			}
		})
	}
}

func TestUrgencyForScoreThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  domain.Urgency
	}{
		{100, domain.UrgencyImmediate},
		{80, domain.UrgencyImmediate},
		{79, domain.UrgencyHigh},
		{65, domain.UrgencyHigh},
		{64, domain.UrgencyMedium},
		{40, domain.UrgencyMedium},
		{39, domain.UrgencyLow},
		{0, domain.UrgencyLow},
	}

	for _, tc := range cases {
		if got := UrgencyForScore(tc.score); got != tc.want {
			t.Errorf("UrgencyForScore(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestScoreLeadAlwaysInBounds(t *testing.T) {
	budgets := []int64{-500, 0, 1001, 5001, 10001, 1_000_000}
	ages := []*float64{nil, hours(-3), hours(0), hours(1), hours(2), hours(48), hours(1000)}
	sources := []domain.LeadSource{
		domain.SourceUnknown, domain.SourceBark, domain.SourceGoogleMaps,
		domain.SourceChatWidget, domain.SourceReferral, domain.SourceManualEntry,
	}

	for _, budget := range budgets {
		for _, age := range ages {
			for _, source := range sources {
				score, urgency := ScoreLead(domain.LeadRecord{Budget: budget, LeadSource: source}, age)
				if score < 0 || score > 100 {
					t.Fatalf("score %d out of bounds for budget=%d source=%q", score, budget, source)
				}
				if urgency != UrgencyForScore(score) {
					t.Fatalf("urgency %q inconsistent with score %d", urgency, score)
				}
			}
		}
	}
}

func TestAgeBandMatchesScoring(t *testing.T) {
	pairs := [][2]float64{{0, 1}, {1.01, 24}, {24.5, 72}, {72.01, 1000}}
	lead := domain.LeadRecord{LeadSource: domain.SourceBark}

	for _, p := range pairs {
		lo, hi := hours(p[0]), hours(p[1])
		if AgeBand(lo) != AgeBand(hi) {
			t.Fatalf("expected %v and %v in one band, got %s and %s", p[0], p[1], AgeBand(lo), AgeBand(hi))
		}
		loScore, _ := ScoreLead(lead, lo)
		hiScore, _ := ScoreLead(lead, hi)
		if loScore != hiScore {
			t.Fatalf("band %s: scores differ %d vs %d", AgeBand(lo), loScore, hiScore)
		}
	}
	if AgeBand(nil) != "unknown" {
		t.Fatalf("expected unknown band for nil age, got %s", AgeBand(nil))
	}
}
