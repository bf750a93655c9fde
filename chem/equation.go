package chem

import (
	"fmt"
	"regexp"
	"strings"
)

// Arrow tokens separating states. The reversible form is tried first so
// that "<->" never lexes as "<" followed by "->".
var arrowPattern = regexp.MustCompile(`<->|->`)

// Equation is a full reaction mechanism: two or three states joined by
// arrows. A two-state equation is a single elementary step; a
// three-state one carries an intermediate (transition) state.
type Equation struct {
	Raw    string // original equation text, trimmed
	States []*State
	Arrows []string // arrow tokens between consecutive states, len(States)-1
}

// ParseEquation segments a reaction string at "->" and "<->" arrows and
// parses each segment as a state. Exactly one or two arrows are
// accepted; every segment must be non-empty. Formula-level failures
// inside a state propagate unchanged.
func ParseEquation(text string) (*Equation, error) {
	trimmed := strings.TrimSpace(text)
	arrows := arrowPattern.FindAllString(trimmed, -1)
	switch {
	case len(arrows) == 0:
		return nil, &InvalidEquationError{Text: trimmed, Reason: "no reaction arrow"}
	case len(arrows) > 2:
		return nil, &InvalidEquationError{
			Text:   trimmed,
			Reason: fmt.Sprintf("%d arrows, mechanisms are capped at 3 states", len(arrows)),
		}
	}

	segments := arrowPattern.Split(trimmed, -1)
	states := make([]*State, 0, len(segments))
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return nil, &InvalidEquationError{Text: trimmed, Reason: "empty state"}
		}
		s, err := ParseState(segment)
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return &Equation{Raw: trimmed, States: states, Arrows: arrows}, nil
}

// FormulaLists returns the per-state formula lists, in state order.
func (e *Equation) FormulaLists() [][]*Formula {
	lists := make([][]*Formula, len(e.States))
	for i, s := range e.States {
		lists[i] = s.Formulas
	}
	return lists
}

// CheckConservation verifies that every state holds the same element
// and site counts as the first state. States are compared against the
// first state only, lowest index first, and the first divergence is
// returned as a *NotConservedError.
func (e *Equation) CheckConservation() error {
	reference := e.States[0]
	for _, s := range e.States[1:] {
		if err := reference.Conserve(s); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether two equations parse to the same states joined
// by the same arrows.
func (e *Equation) Equal(other *Equation) bool {
	if len(e.States) != len(other.States) || len(e.Arrows) != len(other.Arrows) {
		return false
	}
	for i, s := range e.States {
		if !s.Equal(other.States[i]) {
			return false
		}
	}
	for i, a := range e.Arrows {
		if a != other.Arrows[i] {
			return false
		}
	}
	return true
}

// String returns the canonical equation form with single spaces around arrows.
func (e *Equation) String() string {
	var b strings.Builder
	for i, s := range e.States {
		if i > 0 {
			b.WriteString(" " + e.Arrows[i-1] + " ")
		}
		b.WriteString(s.String())
	}
	return b.String()
}
