package chem

import "fmt"

// InvalidFormulaError reports a token that does not match the formula grammar.
type InvalidFormulaError struct {
	Token string
}

func (e *InvalidFormulaError) Error() string {
	return fmt.Sprintf("invalid formula %q", e.Token)
}

// InvalidEquationError reports an equation string without a usable arrow structure.
type InvalidEquationError struct {
	Text   string
	Reason string
}

func (e *InvalidEquationError) Error() string {
	return fmt.Sprintf("invalid equation %q: %s", e.Text, e.Reason)
}

// ConservationKind discriminates which quantity a conservation check found diverging.
type ConservationKind string

const (
	ConservationMass ConservationKind = "mass"
	ConservationSite ConservationKind = "site"
)

// NotConservedError reports a failed conservation comparison. Left and
// Right are the canonical strings of the two compared values. When both
// mass and site counts diverge, the mass error is reported.
type NotConservedError struct {
	Kind  ConservationKind
	Left  string
	Right string
}

func (e *NotConservedError) Error() string {
	return fmt.Sprintf("%s is not conserved between %q and %q", e.Kind, e.Left, e.Right)
}
