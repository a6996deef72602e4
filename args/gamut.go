package args

import (
	"errors"
	"fmt"
)

// Kind classifies one entry of a constructor's declared Gamut.
type Kind int

const (
	// KindFlag is a boolean option, read via Flag.
	KindFlag Kind = iota
	// KindString is a free-form string option, read via String.
	KindString
	// KindNumeric is a floating-point option, read via Numeric.
	KindNumeric
	// KindEnum is a string option restricted to a fixed set of values.
	KindEnum
)

// Param is one declared entry of an operator constructor's gamut: the
// enumerated set of options it recognizes, with its kind. Constructors
// declare a Gamut purely for documentation and UnrecognizedKeys
// diagnostics — OperatorArgs itself never rejects an undeclared key.
type Param struct {
	Key  string
	Kind Kind
}

// Gamut is the ordered set of options a constructor recognizes. "inv" is
// universally recognized and need not be declared.
type Gamut []Param

// UnrecognizedKeys returns the keys present in a, in first-seen order,
// that are neither in g nor the universally recognized "inv" flag. These
// are retained (not stripped) but are a warning signal for callers that
// want to catch typos in a pipeline definition.
func (g Gamut) UnrecognizedKeys(a *OperatorArgs) []string {
	declared := make(map[string]bool, len(g)+1)
	declared["inv"] = true
	for _, p := range g {
		declared[p.Key] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, p := range a.pairs {
		if declared[p.Key] || seen[p.Key] {
			continue
		}
		seen[p.Key] = true
		out = append(out, p.Key)
	}
	return out
}

// ErrBadParameter indicates a value that parsed successfully as a string
// but is outside the set of values a constructor's gamut declares as
// valid for that key (e.g. an enum-kind parameter, or a descriptor string
// that fails its own grammar).
var ErrBadParameter = errors.New("args: bad parameter value")

// BadParameterf wraps ErrBadParameter with operator/key/reason context.
func BadParameterf(operator, key, format string, a ...interface{}) error {
	return fmt.Errorf("%s: %s: %s: %w", operator, key, fmt.Sprintf(format, a...), ErrBadParameter)
}
