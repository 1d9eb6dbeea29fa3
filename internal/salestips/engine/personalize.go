package engine

import (
	"strings"

	"starzcrm_backend/internal/salestips/domain"
)

// Placeholders is the set of script values known for a lead.
// Empty fields leave their placeholder in the script.
type Placeholders struct {
	Name     string
	Company  string
	Industry string
	RepName  string
	City     string
	Service  string
}

func (p Placeholders) replacer() *strings.Replacer {
	pairs := make([]string, 0, 12)
	add := func(token, value string) {
		if v := strings.TrimSpace(value); v != "" {
			pairs = append(pairs, token, v)
		}
	}
	add("[Your Name]", p.RepName)
	add("[Name]", p.Name)
	add("[Company]", p.Company)
	add("[Industry]", p.Industry)
	add("[City]", p.City)
	add("[Service]", p.Service)
	return strings.NewReplacer(pairs...)
}

// Personalize returns copies of tips with known placeholders substituted in the script.
func Personalize(tips []domain.SalesTip, p Placeholders) []domain.SalesTip {
	r := p.replacer()
	out := cloneTips(tips)
	for i := range out {
		out[i].Script = r.Replace(out[i].Script)
	}
	return out
}
