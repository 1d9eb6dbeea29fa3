package engine

import (
	"fmt"
	"slices"

	"starzcrm_backend/internal/salestips/domain"
)

// Catalog is the read-only tip repository. It is partitioned by industry, by
// lead source, and a universal set that applies to every lead.
// A Catalog must not be modified after construction; it is shared across requests.
type Catalog struct {
	industry  map[domain.Industry][]domain.SalesTip
	source    map[domain.LeadSource][]domain.SalesTip
	universal []domain.SalesTip
}

// NewCatalog builds a Catalog from deep copies of the given partitions, so later
// changes to the arguments cannot leak into a live catalog.
func NewCatalog(industry map[domain.Industry][]domain.SalesTip, source map[domain.LeadSource][]domain.SalesTip, universal []domain.SalesTip) *Catalog {
	c := &Catalog{
		industry:  make(map[domain.Industry][]domain.SalesTip, len(industry)),
		source:    make(map[domain.LeadSource][]domain.SalesTip, len(source)),
		universal: cloneTips(universal),
	}
	for k, tips := range industry {
		c.industry[k] = cloneTips(tips)
	}
	for k, tips := range source {
		c.source[k] = cloneTips(tips)
	}
	return c
}

// Candidates returns copies of every tip applicable to the lead, in ranking
// tie-break order: industry tips, then source tips, then universal tips.
func (c *Catalog) Candidates(industry domain.Industry, source domain.LeadSource) []domain.SalesTip {
	out := make([]domain.SalesTip, 0, len(c.industry[industry])+len(c.source[source])+len(c.universal))
	out = append(out, c.industry[industry]...)
	if source != domain.SourceUnknown {
		out = append(out, c.source[source]...)
	}
	out = append(out, c.universal...)
	return cloneTips(out)
}

// All lists every tip once, industries and sources in a stable order.
func (c *Catalog) All() []domain.SalesTip {
	out := make([]domain.SalesTip, 0, c.Len())
	for _, industry := range sortedKeys(c.industry) {
		out = append(out, c.industry[industry]...)
	}
	for _, source := range sortedKeys(c.source) {
		out = append(out, c.source[source]...)
	}
	out = append(out, c.universal...)
	return cloneTips(out)
}

// Len returns the total number of tips.
func (c *Catalog) Len() int {
	n := len(c.universal)
	for _, tips := range c.industry {
		n += len(tips)
	}
	for _, tips := range c.source {
		n += len(tips)
	}
	return n
}

// Validate checks that ids are unique and every enum and confidence is in range.
// Tips filed under an industry or source partition must declare the same key.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, c.Len())
	check := func(tip domain.SalesTip) error {
		if tip.ID == "" {
			return fmt.Errorf("tip %q: empty id", tip.Title)
		}
		if _, dup := seen[tip.ID]; dup {
			return fmt.Errorf("tip %s: duplicate id", tip.ID)
		}
		seen[tip.ID] = struct{}{}

		if !tip.Category.IsKnown() {
			return fmt.Errorf("tip %s: unknown category %q", tip.ID, tip.Category)
		}
		if !tip.Priority.IsKnown() {
			return fmt.Errorf("tip %s: unknown priority %q", tip.ID, tip.Priority)
		}
		if !tip.ExpectedImpact.IsKnown() {
			return fmt.Errorf("tip %s: unknown expected impact %q", tip.ID, tip.ExpectedImpact)
		}
		if tip.Industry != "" && !tip.Industry.IsKnown() {
			return fmt.Errorf("tip %s: unknown industry %q", tip.ID, tip.Industry)
		}
		if tip.Confidence < 0 || tip.Confidence > maxConfidence {
			return fmt.Errorf("tip %s: confidence %d out of range", tip.ID, tip.Confidence)
		}
		return nil
	}

	for industry, tips := range c.industry {
		for _, tip := range tips {
			if err := check(tip); err != nil {
				return err
			}
			if tip.Industry != industry {
				return fmt.Errorf("tip %s: filed under industry %q but declares %q", tip.ID, industry, tip.Industry)
			}
		}
	}
	for source, tips := range c.source {
		for _, tip := range tips {
			if err := check(tip); err != nil {
				return err
			}
			if tip.LeadSource != source {
				return fmt.Errorf("tip %s: filed under source %q but declares %q", tip.ID, source, tip.LeadSource)
			}
		}
	}
	for _, tip := range c.universal {
		if err := check(tip); err != nil {
			return err
		}
	}
	return nil
}

func cloneTips(tips []domain.SalesTip) []domain.SalesTip {
	if tips == nil {
		return nil
	}
	out := make([]domain.SalesTip, len(tips))
	for i, tip := range tips {
		tip.Triggers = slices.Clone(tip.Triggers)
		out[i] = tip
	}
	return out
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
