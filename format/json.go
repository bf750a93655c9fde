package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/rxn/chem"
)

type JSONEncoder struct {
	w  io.Writer
	eq *chem.Equation
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(eq *chem.Equation) error {
	e.eq = eq
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildEquationData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonEquation struct {
	Equation  string      `json:"equation"`
	Arrows    []string    `json:"arrows"`
	Conserved bool        `json:"conserved"`
	States    []jsonState `json:"states"`
}

type jsonState struct {
	Text          string         `json:"text"`
	Formulas      []jsonFormula  `json:"formulas"`
	ElementCounts map[string]int `json:"elementCounts"`
	SiteCounts    map[string]int `json:"siteCounts"`
}

type jsonFormula struct {
	Text          string `json:"text"`
	Stoichiometry int    `json:"stoichiometry"`
	Species       string `json:"species"`
	SiteCount     int    `json:"siteCount"`
	Site          string `json:"site"`
	Kind          string `json:"kind"`
}

func (e *JSONEncoder) buildEquationData() jsonEquation {
	eq := e.eq
	data := jsonEquation{
		Equation:  eq.String(),
		Arrows:    eq.Arrows,
		Conserved: eq.CheckConservation() == nil,
	}
	for _, state := range eq.States {
		data.States = append(data.States, e.buildStateData(state))
	}
	return data
}

func (e *JSONEncoder) buildStateData(state *chem.State) jsonState {
	data := jsonState{
		Text:          state.String(),
		ElementCounts: state.ElementCounts(),
		SiteCounts:    state.SiteCounts(),
	}
	for _, f := range state.Formulas {
		data.Formulas = append(data.Formulas, jsonFormula{
			Text:          f.String(),
			Stoichiometry: f.Stoichiometry,
			Species:       f.Species,
			SiteCount:     f.SiteCount,
			Site:          f.Site,
			Kind:          string(f.Kind()),
		})
	}
	return data
}
