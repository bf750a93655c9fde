package chem

import "strings"

// State is one side of a reaction arrow: an ordered list of formulas.
// Order is left-to-right as written and matters for display only.
type State struct {
	Raw      string // original state text, trimmed
	Formulas []*Formula
}

// ParseState splits a "+"-joined formula list and parses each piece.
// The first formula that fails to parse aborts the whole state; an
// empty or blank string fails the same way.
func ParseState(text string) (*State, error) {
	trimmed := strings.TrimSpace(text)
	parts := strings.Split(trimmed, "+")
	formulas := make([]*Formula, 0, len(parts))
	for _, part := range parts {
		f, err := ParseFormula(part)
		if err != nil {
			return nil, err
		}
		formulas = append(formulas, f)
	}
	return &State{Raw: trimmed, Formulas: formulas}, nil
}

// ElementCounts sums the element counts of every formula in the state.
func (s *State) ElementCounts() map[string]int {
	counts := make(map[string]int)
	for _, f := range s.Formulas {
		mergeCounts(counts, f.ElementCounts())
	}
	return counts
}

// SiteCounts sums the occupied-site counts of every formula in the state.
func (s *State) SiteCounts() map[string]int {
	counts := make(map[string]int)
	for _, f := range s.Formulas {
		mergeCounts(counts, f.SiteCounts())
	}
	return counts
}

// Conserve checks that other holds exactly the same aggregate element
// and site counts. The error cites the full state strings.
func (s *State) Conserve(other *State) error {
	return checkConserved(
		s.ElementCounts(), other.ElementCounts(),
		s.SiteCounts(), other.SiteCounts(),
		s.String(), other.String(),
	)
}

// Equal reports whether two states hold equal formulas in the same order.
func (s *State) Equal(other *State) bool {
	if len(s.Formulas) != len(other.Formulas) {
		return false
	}
	for i, f := range s.Formulas {
		if !f.Equal(other.Formulas[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical state form, formulas joined by " + ".
func (s *State) String() string {
	parts := make([]string, len(s.Formulas))
	for i, f := range s.Formulas {
		parts[i] = f.String()
	}
	return strings.Join(parts, " + ")
}
