package chem

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Token grammar: optional stoichiometry, species core, "_", optional
// site count, site tag. Example: "2H2O_3s". Patterns are compiled once
// and shared; they are stateless and never mutated.
var (
	formulaPattern = regexp.MustCompile(`^(\d*)(([A-Za-z0-9*\-]*)_(\d*)([a-z*]+))$`)
	elementPattern = regexp.MustCompile(`([A-Za-z*])(\d*)`)
)

// Site tags that describe a bulk phase rather than a catalytic surface
// site. Species in these phases occupy no surface site.
const (
	siteGas    = "g"
	siteLiquid = "l"
)

// SpeciesKind classifies what a formula describes.
type SpeciesKind string

const (
	KindGas       SpeciesKind = "gas"
	KindLiquid    SpeciesKind = "liquid"
	KindSite      SpeciesKind = "site"
	KindAdsorbate SpeciesKind = "adsorbate"
)

// Formula is one parsed species/site token of a reaction state.
// It is immutable after parsing.
type Formula struct {
	Raw           string // original token text, trimmed
	Stoichiometry int    // leading multiplier, default 1
	SpeciesSite   string // species plus site substring, e.g. "H2O_3s"
	Species       string // bare species name; "*" marks an empty site
	SiteCount     int    // site multiplier, default 1
	Site          string // site tag, e.g. "s", "g", "l"
}

// ParseFormula parses a single species token such as "2H2O_3s".
// Returns *InvalidFormulaError when the token does not match the grammar.
func ParseFormula(token string) (*Formula, error) {
	token = strings.TrimSpace(token)
	m := formulaPattern.FindStringSubmatch(token)
	if m == nil {
		return nil, &InvalidFormulaError{Token: token}
	}

	f := &Formula{
		Raw:           token,
		Stoichiometry: 1,
		SpeciesSite:   m[2],
		Species:       m[3],
		SiteCount:     1,
		Site:          m[5],
	}
	if f.Species == "" {
		return nil, &InvalidFormulaError{Token: token}
	}
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return nil, &InvalidFormulaError{Token: token}
		}
		f.Stoichiometry = n
	}
	if m[4] != "" {
		n, err := strconv.Atoi(m[4])
		if err != nil || n < 1 {
			return nil, &InvalidFormulaError{Token: token}
		}
		f.SiteCount = n
	}
	return f, nil
}

// ElementCounts returns the total atoms per element contributed by this
// formula, weighted by stoichiometry. The empty-site species "*"
// contributes no elements.
func (f *Formula) ElementCounts() map[string]int {
	counts := make(map[string]int)
	if f.Species == "*" {
		return counts
	}
	for _, m := range elementPattern.FindAllStringSubmatch(f.Species, -1) {
		n := 1
		if m[2] != "" {
			n, _ = strconv.Atoi(m[2])
		}
		counts[m[1]] += n * f.Stoichiometry
	}
	return counts
}

// SiteCounts returns the occupied surface sites per site tag. Gas and
// liquid phases occupy no surface site and yield an empty map.
func (f *Formula) SiteCounts() map[string]int {
	counts := make(map[string]int)
	if f.Site == siteGas || f.Site == siteLiquid {
		return counts
	}
	counts[f.Site] = f.Stoichiometry * f.SiteCount
	return counts
}

// Kind classifies the formula. The phase checks come first: "*_g" would
// be gas, not an empty site.
func (f *Formula) Kind() SpeciesKind {
	switch {
	case f.Site == siteGas:
		return KindGas
	case f.Site == siteLiquid:
		return KindLiquid
	case strings.Contains(f.SpeciesSite, "*"):
		return KindSite
	default:
		return KindAdsorbate
	}
}

// Conserve checks that other has exactly the same element and site
// counts. Returns nil when conserved, *NotConservedError otherwise.
func (f *Formula) Conserve(other *Formula) error {
	return checkConserved(
		f.ElementCounts(), other.ElementCounts(),
		f.SiteCounts(), other.SiteCounts(),
		f.String(), other.String(),
	)
}

// Equal reports whether two formulas parse to the same value,
// ignoring surface differences in the raw text (e.g. "1CO_s" vs "CO_s").
func (f *Formula) Equal(other *Formula) bool {
	return f.Stoichiometry == other.Stoichiometry &&
		f.Species == other.Species &&
		f.SiteCount == other.SiteCount &&
		f.Site == other.Site
}

// String returns the canonical token form. Parsing it yields an equal formula.
func (f *Formula) String() string {
	var b strings.Builder
	if f.Stoichiometry > 1 {
		fmt.Fprintf(&b, "%d", f.Stoichiometry)
	}
	b.WriteString(f.Species)
	b.WriteByte('_')
	if f.SiteCount > 1 {
		fmt.Fprintf(&b, "%d", f.SiteCount)
	}
	b.WriteString(f.Site)
	return b.String()
}
