// Package chem parses textual surface-chemistry reaction equations
// (e.g. "CO_g + *_s -> CO_s") and checks element and surface-site
// conservation across them.
//
// The package is layered bottom-up:
//
//   - Formula: one species/site token with stoichiometry ("2H2O_3s").
//   - State: one side of a reaction arrow, a "+"-joined formula list.
//   - Equation: two or three states joined by "->" or "<->" arrows.
//
// Parsing is pure and deterministic; parsed values hold no shared
// state and are safe for concurrent use.
package chem
