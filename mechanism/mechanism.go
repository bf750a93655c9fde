// Package mechanism handles multi-step reaction mechanism sources:
// .rxn files with one equation per line, "#" comments, and blank lines.
package mechanism

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/rxn/chem"
)

// Step is one reaction equation of a mechanism, with its 1-based source line.
type Step struct {
	Line     int
	Source   string // equation text with comment stripped and trimmed
	Equation *chem.Equation
}

// Mechanism is an ordered list of reaction steps.
type Mechanism struct {
	Steps []*Step
}

// Parse parses a mechanism source strictly: the first invalid line
// aborts with an error citing its line number. Use Check for
// error-tolerant, all-findings parsing.
func Parse(src []byte) (*Mechanism, error) {
	m := &Mechanism{}
	for i, line := range strings.Split(string(src), "\n") {
		text := strings.TrimSpace(stripComment(line))
		if text == "" {
			continue
		}
		eq, err := chem.ParseEquation(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		m.Steps = append(m.Steps, &Step{Line: i + 1, Source: text, Equation: eq})
	}
	return m, nil
}

// ParseFile reads and parses a mechanism file.
func ParseFile(path string) (*Mechanism, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// CheckConservation verifies every step of the mechanism, returning the
// first failure with its line number.
func (m *Mechanism) CheckConservation() error {
	for _, step := range m.Steps {
		if err := step.Equation.CheckConservation(); err != nil {
			return fmt.Errorf("line %d: %w", step.Line, err)
		}
	}
	return nil
}

// stripComment drops everything from the first "#" onward.
func stripComment(line string) string {
	if idx := strings.Index(line, "#"); idx >= 0 {
		return line[:idx]
	}
	return line
}
