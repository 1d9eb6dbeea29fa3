package engine

import (
	"strings"
	"testing"

	"starzcrm_backend/internal/salestips/domain"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected default catalog to validate, got %v", err)
	}
	if c.Len() != len(c.All()) {
		t.Fatalf("Len %d does not match All %d", c.Len(), len(c.All()))
	}
}

func TestCatalogCandidatesOrder(t *testing.T) {
	c := DefaultCatalog()

	got := c.Candidates(domain.IndustryRestaurant, domain.SourceBark)

	want := len(defaultIndustryTips[domain.IndustryRestaurant]) + len(defaultSourceTips[domain.SourceBark]) + len(defaultUniversalTips)
	if len(got) != want {
		t.Fatalf("expected %d candidates, got %d", want, len(got))
	}
	if got[0].Industry != domain.IndustryRestaurant {
		t.Fatalf("expected industry tips first, got %s", got[0].ID)
	}
	last := got[len(got)-1]
	if last.ID != defaultUniversalTips[len(defaultUniversalTips)-1].ID {
		t.Fatalf("expected universal tips last, got %s", last.ID)
	}
}

func TestCatalogCandidatesUnknownKeys(t *testing.T) {
	c := DefaultCatalog()

	got := c.Candidates(domain.IndustryGeneral, domain.SourceUnknown)

	if len(got) != len(defaultUniversalTips) {
		t.Fatalf("expected only universal tips, got %d", len(got))
	}
}

func TestCatalogIsIsolatedFromCallers(t *testing.T) {
	universal := []domain.SalesTip{{
		ID: "u1", Category: domain.CategoryOpener, Priority: domain.PriorityLow,
		ExpectedImpact: domain.ImpactLow, Confidence: 10, Triggers: []string{"a"},
	}}
	c := NewCatalog(nil, nil, universal)

	universal[0].Confidence = 99
	out := c.Candidates(domain.IndustryGeneral, domain.SourceUnknown)
	out[0].Triggers[0] = "mutated"

	again := c.Candidates(domain.IndustryGeneral, domain.SourceUnknown)
	if again[0].Confidence != 10 {
		t.Fatalf("expected catalog confidence 10, got %d", again[0].Confidence)
	}
	if again[0].Triggers[0] != "a" {
		t.Fatalf("expected catalog triggers untouched, got %v", again[0].Triggers)
	}
}

func TestCatalogValidateRejects(t *testing.T) {
	valid := domain.SalesTip{
		ID: "ok", Category: domain.CategoryOpener, Priority: domain.PriorityHigh,
		ExpectedImpact: domain.ImpactHigh, Confidence: 50,
	}

	cases := []struct {
		name    string
		catalog *Catalog
		wantErr string
	}{
		{"duplicate id", NewCatalog(nil, nil, []domain.SalesTip{valid, valid}), "duplicate id"},
		{"bad confidence", NewCatalog(nil, nil, []domain.SalesTip{func() domain.SalesTip { v := valid; v.Confidence = 101; return v }()}), "out of range"},
		{"bad category", NewCatalog(nil, nil, []domain.SalesTip{func() domain.SalesTip { v := valid; v.Category = "pitch"; return v }()}), "unknown category"},
		{
			"misfiled industry",
			NewCatalog(map[domain.Industry][]domain.SalesTip{domain.IndustryHVAC: {valid}}, nil, nil),
			"filed under industry",
		},
		{
			"misfiled source",
			NewCatalog(nil, map[domain.LeadSource][]domain.SalesTip{domain.SourceBark: {valid}}, nil),
			"filed under source",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.catalog.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
