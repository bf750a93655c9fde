package format

import (
	"encoding"

	"github.com/dhamidi/rxn/chem"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(eq *chem.Equation) error
}
