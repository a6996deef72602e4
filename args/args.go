package args

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/geodesy/gys"
)

// ErrNotParseable indicates a numeric lookup's value could not be parsed
// as a float, or was a NaN literal ("nan", "NaN", ...), which is rejected
// even though Go's strconv would otherwise accept it.
var ErrNotParseable = errors.New("args: value is not a parseable number")

// OperatorArgs is the parsed argument bag for one compiled step: an
// ordered key/value mapping plus a ledger of which keys a constructor has
// consulted. It is built once from a gys.Step's Args and is not safe for
// concurrent mutation.
type OperatorArgs struct {
	pairs        []gys.Arg
	used         map[string]bool
	unrecognized []string
}

// New builds an OperatorArgs from a step's ordered argument pairs. Later
// duplicate keys shadow earlier ones for lookup purposes, but both are
// retained in Pairs() to keep the ledger lossless.
func New(pairs []gys.Arg) *OperatorArgs {
	return &OperatorArgs{pairs: pairs, used: make(map[string]bool, len(pairs))}
}

// find returns the value of the last occurrence of key, and whether it
// was present at all.
func (a *OperatorArgs) find(key string) (string, bool) {
	for i := len(a.pairs) - 1; i >= 0; i-- {
		if a.pairs[i].Key == key {
			return a.pairs[i].Value, true
		}
	}
	return "", false
}

// Flag reports whether key is present with the literal value "true"
// (including a bare flag token, which the gys lexer already resolves to
// "true"). Absent keys report false without error.
func (a *OperatorArgs) Flag(key string) bool {
	v, ok := a.find(key)
	if !ok {
		return false
	}
	a.used[key] = true
	return v == "true"
}

// String returns the value of key, or def if key is absent.
func (a *OperatorArgs) String(key, def string) string {
	v, ok := a.find(key)
	if !ok {
		return def
	}
	a.used[key] = true
	return v
}

// Numeric parses the value of key as a float64, or returns def if key is
// absent. NaN literals ("nan", "NaN", "NAN", ...) are rejected even
// though strconv.ParseFloat would otherwise accept them.
func (a *OperatorArgs) Numeric(key string, def float64) (float64, error) {
	v, ok := a.find(key)
	if !ok {
		return def, nil
	}
	a.used[key] = true
	if strings.EqualFold(strings.TrimSpace(v), "nan") {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrNotParseable)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrNotParseable)
	}
	return f, nil
}

// Value reports whether key is present at all, without defaulting.
func (a *OperatorArgs) Value(key string) (string, bool) {
	v, ok := a.find(key)
	if ok {
		a.used[key] = true
	}
	return v, ok
}

// UnusedKeys returns, in first-seen order, the keys present in the
// argument bag that no constructor lookup has consulted. An empty result
// does not imply every recognized option was set — only that every key
// that WAS set was read by something.
func (a *OperatorArgs) UnusedKeys() []string {
	var out []string
	seen := make(map[string]bool, len(a.pairs))
	for _, p := range a.pairs {
		if seen[p.Key] || a.used[p.Key] {
			continue
		}
		seen[p.Key] = true
		out = append(out, p.Key)
	}
	return out
}

// Pairs returns the original ordered key/value pairs, unmodified.
func (a *OperatorArgs) Pairs() []gys.Arg {
	return a.pairs
}

// DeclareGamut records g as the recognized option set for this argument
// bag and computes g.UnrecognizedKeys(a) up front, for later retrieval via
// UnrecognizedKeys. A constructor calls this once it has finished reading
// its own parameters, so the registry and Context can surface typoed keys
// without either of them needing to know which gamut belongs to which
// compiled operator.
func (a *OperatorArgs) DeclareGamut(g Gamut) {
	a.unrecognized = g.UnrecognizedKeys(a)
}

// UnrecognizedKeys returns the keys recorded by the most recent
// DeclareGamut call, in first-seen order. It returns nil if no
// constructor declared a gamut for this bag.
func (a *OperatorArgs) UnrecognizedKeys() []string {
	return a.unrecognized
}
