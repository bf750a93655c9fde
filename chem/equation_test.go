package chem

import (
	"errors"
	"testing"
)

func mustParseEquation(t *testing.T, text string) *Equation {
	t.Helper()
	e, err := ParseEquation(text)
	if err != nil {
		t.Fatalf("ParseEquation(%q) failed: %v", text, err)
	}
	return e
}

func TestParseEquationTwoStates(t *testing.T) {
	e := mustParseEquation(t, "CO_g + *_s -> CO_s")

	if len(e.States) != 2 {
		t.Fatalf("got %d states, want 2", len(e.States))
	}
	if e.States[0].Raw != "CO_g + *_s" {
		t.Errorf("States[0].Raw = %q, want %q", e.States[0].Raw, "CO_g + *_s")
	}
	if e.States[1].Raw != "CO_s" {
		t.Errorf("States[1].Raw = %q, want %q", e.States[1].Raw, "CO_s")
	}
	if len(e.Arrows) != 1 || e.Arrows[0] != "->" {
		t.Errorf("Arrows = %v, want [->]", e.Arrows)
	}
}

func TestParseEquationThreeStates(t *testing.T) {
	e := mustParseEquation(t, "CO_s + O_s <-> CO-O_s + *_s -> CO2_g + 2*_s")

	if len(e.States) != 3 {
		t.Fatalf("got %d states, want 3", len(e.States))
	}
	// Reversible only on the first leg.
	if len(e.Arrows) != 2 || e.Arrows[0] != "<->" || e.Arrows[1] != "->" {
		t.Errorf("Arrows = %v, want [<-> ->]", e.Arrows)
	}
	if e.States[1].Raw != "CO-O_s + *_s" {
		t.Errorf("States[1].Raw = %q, want %q", e.States[1].Raw, "CO-O_s + *_s")
	}
}

func TestParseEquationInvalid(t *testing.T) {
	tests := []struct {
		text   string
		reason string
	}{
		{"CO_g + *_s", "no arrow"},
		{"CO_g <- CO_s", "left-only arrow is not a thing"},
		{"-> CO_s", "empty left state"},
		{"CO_g ->", "empty right state"},
		{"CO_g -> -> CO_s", "empty middle state"},
		{"A_s -> B_s -> C_s -> D_s", "more than three states"},
	}
	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			_, err := ParseEquation(tt.text)
			if err == nil {
				t.Fatalf("ParseEquation(%q) succeeded, want error", tt.text)
			}
			var invalid *InvalidEquationError
			if !errors.As(err, &invalid) {
				t.Fatalf("error is %T, want *InvalidEquationError", err)
			}
		})
	}
}

func TestParseEquationPropagatesFormulaErrors(t *testing.T) {
	_, err := ParseEquation("CO_g + bogus -> CO_s")
	var invalid *InvalidFormulaError
	if !errors.As(err, &invalid) {
		t.Fatalf("error is %T, want *InvalidFormulaError", err)
	}
	if invalid.Token != "bogus" {
		t.Errorf("Token = %q, want %q", invalid.Token, "bogus")
	}
}

func TestFormulaLists(t *testing.T) {
	e := mustParseEquation(t, "CO_g + *_s -> CO_s")
	lists := e.FormulaLists()

	if len(lists) != 2 {
		t.Fatalf("got %d lists, want 2", len(lists))
	}
	if len(lists[0]) != 2 || len(lists[1]) != 1 {
		t.Fatalf("list lengths = %d, %d, want 2, 1", len(lists[0]), len(lists[1]))
	}
	if lists[0][1].Species != "*" {
		t.Errorf("lists[0][1].Species = %q, want %q", lists[0][1].Species, "*")
	}
}

func TestCheckConservation(t *testing.T) {
	t.Run("adsorption step", func(t *testing.T) {
		e := mustParseEquation(t, "CO_g + *_s -> CO_s")
		if err := e.CheckConservation(); err != nil {
			t.Errorf("CheckConservation() = %v, want nil", err)
		}
	})

	t.Run("three-state mechanism", func(t *testing.T) {
		e := mustParseEquation(t, "CO_s + O_s <-> CO-O_s + *_s -> CO2_g + 2*_s")
		if err := e.CheckConservation(); err != nil {
			t.Errorf("CheckConservation() = %v, want nil", err)
		}
	})

	t.Run("site divergence in the intermediate state", func(t *testing.T) {
		// The gaseous CO on the left occupies no site, so the
		// intermediate holds one surface site too many.
		e := mustParseEquation(t, "CO_g + O_s <-> CO-O_s + *_s -> CO2_g + 2*_s")
		err := e.CheckConservation()
		var nc *NotConservedError
		if !errors.As(err, &nc) {
			t.Fatalf("error is %T, want *NotConservedError", err)
		}
		if nc.Kind != ConservationSite {
			t.Errorf("Kind = %q, want %q", nc.Kind, ConservationSite)
		}
		if nc.Left != "CO_g + O_s" {
			t.Errorf("Left = %q, want the reference state", nc.Left)
		}
		if nc.Right != "CO-O_s + *_s" {
			t.Errorf("Right = %q, want the first diverging state", nc.Right)
		}
	})

	t.Run("mass divergence", func(t *testing.T) {
		e := mustParseEquation(t, "CO_s + O_s -> CO_s + *_s")
		err := e.CheckConservation()
		var nc *NotConservedError
		if !errors.As(err, &nc) {
			t.Fatalf("error is %T, want *NotConservedError", err)
		}
		if nc.Kind != ConservationMass {
			t.Errorf("Kind = %q, want %q", nc.Kind, ConservationMass)
		}
	})

	t.Run("every state is compared against the first", func(t *testing.T) {
		// States 1 and 2 conserve each other but not state 0; the
		// reference-state comparison must flag state 1, not state 2.
		e := mustParseEquation(t, "2CO_s <-> CO_s + *_s -> CO_s + *_s")
		err := e.CheckConservation()
		var nc *NotConservedError
		if !errors.As(err, &nc) {
			t.Fatalf("error is %T, want *NotConservedError", err)
		}
		if nc.Left != "2CO_s" {
			t.Errorf("Left = %q, want the reference state %q", nc.Left, "2CO_s")
		}
		if nc.Right != "CO_s + *_s" {
			t.Errorf("Right = %q, want the lowest diverging state", nc.Right)
		}
	})
}

func TestEquationStringRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"CO_g+*_s->CO_s", "CO_g + *_s -> CO_s"},
		{"CO_s + O_s <-> CO-O_s + *_s -> CO2_g + 2*_s", "CO_s + O_s <-> CO-O_s + *_s -> CO2_g + 2*_s"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			e := mustParseEquation(t, tt.text)
			if got := e.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
			again := mustParseEquation(t, e.String())
			if !e.Equal(again) {
				t.Errorf("re-parsing %q did not yield an equal equation", e.String())
			}
		})
	}
}
