/*
Package engine holds the types shared by the three design engines (ssm,
qclm, pas): the failure-category taxonomy every engine reports errors
through, and the small thermodynamic capability interface each engine
takes instead of depending on a concrete calculator implementation.
*/
package engine

import (
	"errors"
	"fmt"
)

// Kind categorizes why an engine failed to produce a solution.
type Kind int

const (
	// Validation means the request itself was malformed or internally
	// inconsistent (e.g. a mutation boundary off a codon).
	Validation Kind = iota
	// Infeasible means the request was well-formed but no primer/fragment
	// set satisfies its constraints (e.g. temperature window too narrow).
	Infeasible
	// Exhausted means a search ran out of its time or iteration budget
	// before converging on an accepted solution.
	Exhausted
	// Internal means something the engine itself should have prevented
	// went wrong; callers should treat this as a bug report.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Infeasible:
		return "infeasible"
	case Exhausted:
		return "exhausted"
	default:
		return "internal"
	}
}

// Error wraps an underlying error with the Kind a caller should use to
// decide how to react (reject the request, relax constraints and retry,
// or treat as a bug).
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap builds an *Error of the given kind.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Wrapf is Wrap with fmt.Errorf-style formatting.
func Wrapf(kind Kind, format string, args ...interface{}) error {
	return Wrap(kind, fmt.Errorf(format, args...))
}

// KindOf extracts the Kind from err if it (or something it wraps) is an
// *Error, defaulting to Internal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// TmCalculator is the thermodynamic capability every engine depends on:
// duplex, hairpin, homodimer and heterodimer melting temperatures. This
// lets callers substitute a stub calculator in tests or a different
// model in production without the engines importing a concrete thermo
// type.
type TmCalculator interface {
	DuplexTm(seq string) (float64, error)
	HairpinTm(seq string) (float64, error)
	HomodimerTm(seq string) (float64, error)
	HeterodimerTm(a, b string) (float64, error)
}
