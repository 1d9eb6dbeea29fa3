package engine

import (
	"slices"
	"strings"
	"testing"

	"starzcrm_backend/internal/salestips/domain"
)

func TestBuildApproachFragments(t *testing.T) {
	cases := []struct {
		name       string
		industry   domain.Industry
		source     domain.LeadSource
		age        *float64
		wantPrefix string
		contains   []string
		absent     []string
		wantSuffix string
	}{
		{
			name:       "bark restaurant fresh",
			industry:   domain.IndustryRestaurant,
			source:     domain.SourceBark,
			age:        hours(0.5),
			wantPrefix: approachBark,
			contains:   []string{approachRestaurant},
			wantSuffix: approachFresh,
		},
		{
			name:       "maps hvac mid-age omits age sentence",
			industry:   domain.IndustryHVAC,
			source:     domain.SourceGoogleMaps,
			age:        hours(30),
			wantPrefix: approachGoogleMaps,
			contains:   []string{approachHVAC},
			absent:     []string{approachFresh, approachReengage},
			wantSuffix: approachHVAC,
		},
		{
			name:       "chat healthcare no age",
			industry:   domain.IndustryHealthcare,
			source:     domain.SourceChatWidget,
			wantPrefix: approachChatWidget,
			wantSuffix: approachHealthcare,
		},
		{
			name:       "plumbing gets no industry sentence",
			industry:   domain.IndustryPlumbing,
			source:     domain.SourceReferral,
			age:        hours(100),
			wantPrefix: approachDefault,
			absent:     []string{approachRestaurant, approachHVAC, approachHealthcare},
			wantSuffix: approachReengage,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildApproach(tc.industry, tc.source, tc.age)
			if !strings.HasPrefix(got, tc.wantPrefix) {
				t.Errorf("expected prefix %q, got %q", tc.wantPrefix, got)
			}
			if !strings.HasSuffix(got, tc.wantSuffix) {
				t.Errorf("expected suffix %q, got %q", tc.wantSuffix, got)
			}
			for _, s := range tc.contains {
				if !strings.Contains(got, s) {
					t.Errorf("expected approach to contain %q", s)
				}
			}
			for _, s := range tc.absent {
				if strings.Contains(got, s) {
					t.Errorf("expected approach not to contain %q", s)
				}
			}
		})
	}
}

func TestBuildNextActionsOrderAndTruncation(t *testing.T) {
	lead := domain.LeadRecord{Company: "Metro HVAC", LeadSource: domain.SourceBark, Budget: 12000}
	analysis := domain.LeadAnalysis{UrgencyLevel: domain.UrgencyImmediate}

	got := BuildNextActions(lead, domain.IndustryHVAC, analysis)

	want := append(append(slices.Clone(immediateActions), barkActions...), highBudgetActions[0])
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, a := range industryActions[domain.IndustryHVAC] {
		if slices.Contains(got, a) {
			t.Fatalf("expected industry action %q to be truncated", a)
		}
	}
}

func TestBuildNextActionsTiers(t *testing.T) {
	cases := []struct {
		urgency domain.Urgency
		want    []string
	}{
		{domain.UrgencyImmediate, immediateActions},
		{domain.UrgencyHigh, highActions},
		{domain.UrgencyMedium, standardActions},
		{domain.UrgencyLow, standardActions},
	}

	for _, tc := range cases {
		got := BuildNextActions(domain.LeadRecord{}, domain.IndustryGeneral, domain.LeadAnalysis{UrgencyLevel: tc.urgency})
		if !slices.Equal(got, tc.want) {
			t.Errorf("urgency %q: expected %v, got %v", tc.urgency, tc.want, got)
		}
	}
}

func TestBuildNextActionsIndustryOnlyForRestaurantAndHVAC(t *testing.T) {
	analysis := domain.LeadAnalysis{UrgencyLevel: domain.UrgencyMedium}

	restaurant := BuildNextActions(domain.LeadRecord{}, domain.IndustryRestaurant, analysis)
	if len(restaurant) != 5 || restaurant[3] != industryActions[domain.IndustryRestaurant][0] {
		t.Fatalf("expected restaurant actions appended after tier actions, got %v", restaurant)
	}

	healthcare := BuildNextActions(domain.LeadRecord{}, domain.IndustryHealthcare, analysis)
	if len(healthcare) != 3 {
		t.Fatalf("expected only tier actions for healthcare, got %v", healthcare)
	}
}

func TestBuildNextActionsHighBudgetThreshold(t *testing.T) {
	analysis := domain.LeadAnalysis{UrgencyLevel: domain.UrgencyHigh}

	if got := BuildNextActions(domain.LeadRecord{Budget: 5000}, domain.IndustryGeneral, analysis); len(got) != 3 {
		t.Fatalf("expected budget 5000 to add nothing, got %v", got)
	}
	got := BuildNextActions(domain.LeadRecord{Budget: 5001}, domain.IndustryGeneral, analysis)
	if len(got) != 5 || got[3] != highBudgetActions[0] {
		t.Fatalf("expected high budget actions, got %v", got)
	}
}
