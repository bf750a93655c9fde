package format

import (
	"io"

	"github.com/dhamidi/rxn/chem"
)

// TextEncoder writes the canonical single-line form of an equation.
// Its output parses back to an equal equation.
type TextEncoder struct {
	w  io.Writer
	eq *chem.Equation
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(eq *chem.Equation) error {
	e.eq = eq
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(e.eq.String()), nil
}
