package gys

import "errors"

// ErrEmptyStep indicates a step was empty after stripping comments and
// whitespace (e.g. two adjacent "|" separators, or a bracketed form whose
// stripped content had nothing before the first "|").
var ErrEmptyStep = errors.New("gys: empty step")

// ErrEmptyName indicates a step's name (its first token) is empty. The
// GYS lexer takes the name from the first whitespace-separated field, so
// a step with any text has a non-empty name and a step with none reports
// ErrEmptyStep instead; "[inv]" is not reported with this error: it
// strips to a step named "inv", which then fails operator lookup.
var ErrEmptyName = errors.New("gys: empty step name")

// ErrDanglingKey indicates a trailing "key:" token with no following
// value.
var ErrDanglingKey = errors.New("gys: key with no value")

// ErrMalformedYAML indicates the longhand form could not be parsed as
// YAML, or did not have the expected "name: {args}" / "pipeline_from_gys:
// {steps: [...]}" shape.
var ErrMalformedYAML = errors.New("gys: malformed longhand definition")
