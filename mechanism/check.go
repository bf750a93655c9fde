package mechanism

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dhamidi/rxn/chem"
)

// Severity ranks a diagnostic.
type Severity int

const (
	// Error means the line cannot be used as a reaction step.
	Error Severity = iota
	// Warning means the step parses but looks suspicious.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single finding against a mechanism source line.
type Diagnostic struct {
	Line     int // 1-based source line
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: [%s] %s", d.Line, d.Severity, d.Message)
}

// Check validates a mechanism source without stopping at the first
// problem. Every line is parsed and conservation-checked independently;
// grammar and conservation failures become error diagnostics, followed
// by lint warnings over the steps that did parse.
func Check(src []byte) []Diagnostic {
	var diagnostics []Diagnostic
	var steps []*Step

	for i, line := range strings.Split(string(src), "\n") {
		text := strings.TrimSpace(stripComment(line))
		if text == "" {
			continue
		}
		eq, err := chem.ParseEquation(text)
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{Line: i + 1, Severity: Error, Message: err.Error()})
			continue
		}
		step := &Step{Line: i + 1, Source: text, Equation: eq}
		steps = append(steps, step)
		if err := eq.CheckConservation(); err != nil {
			diagnostics = append(diagnostics, Diagnostic{Line: i + 1, Severity: Error, Message: err.Error()})
		}
	}

	diagnostics = append(diagnostics, lintSiteTags(steps)...)
	return diagnostics
}

// CheckFile reads a mechanism file and runs Check on it.
func CheckFile(path string) ([]Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Check(data), nil
}

// lintSiteTags warns about surface site tags confined to a single step
// of a multi-step mechanism. A tag no other step produces or consumes
// is usually a typo for a neighboring tag.
func lintSiteTags(steps []*Step) []Diagnostic {
	if len(steps) < 2 {
		return nil
	}

	stepLines := make(map[string][]int)
	for _, step := range steps {
		tags := make(map[string]bool)
		for _, state := range step.Equation.States {
			for tag := range state.SiteCounts() {
				tags[tag] = true
			}
		}
		for tag := range tags {
			stepLines[tag] = append(stepLines[tag], step.Line)
		}
	}

	var diagnostics []Diagnostic
	for tag, lines := range stepLines {
		if len(lines) == 1 {
			diagnostics = append(diagnostics, Diagnostic{
				Line:     lines[0],
				Severity: Warning,
				Message:  fmt.Sprintf("site tag %q appears in this step only", tag),
			})
		}
	}
	sort.Slice(diagnostics, func(i, j int) bool {
		if diagnostics[i].Line != diagnostics[j].Line {
			return diagnostics[i].Line < diagnostics[j].Line
		}
		return diagnostics[i].Message < diagnostics[j].Message
	})
	return diagnostics
}
