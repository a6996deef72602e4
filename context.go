package geodesy

import (
	"fmt"

	"github.com/katalvlaran/geodesy/asset"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/gys"
	"github.com/katalvlaran/geodesy/kernel"
	"github.com/katalvlaran/geodesy/op"
	"github.com/katalvlaran/geodesy/registry"
)

// Handle is a stable integer reference to one compiled operation stored in
// a Context's operation table. The table only grows, so a Handle remains
// valid for the Context's entire lifetime once returned by Operation.
type Handle int

// failure records the last construction failure a Context observed, the
// triplet spec.md §4.5/§7 calls {last_failing_operation_definition,
// last_failing_operation, cause}.
type failure struct {
	definition string
	operator   string
	cause      error
}

// Context is the top-level façade (spec.md §4.5, the "Provider"): it
// normalizes and compiles textual pipeline definitions, stores them
// behind stable Handles, executes them over chunked operand batches
// against a small round-robin pool of scratch-carrying minions, and
// tracks the last recorded failure for diagnostics.
//
// A Context's operation table, user-operator registry, and user-macro
// registry are read-only during Fwd/Inv/Operate; mutating a Context
// concurrently with an in-flight call is undefined, per spec.md §5.
type Context struct {
	reg    *registry.Registry
	macros map[string]string

	operations []*op.Operator

	sharedAssets  *asset.Provider
	privateAssets *asset.Provider

	minions    []*op.Runtime
	nextMinion int
	chunkSize  int

	lastFailure failure
}

// New builds a Context with kernel.Builtins() as its builtin operator
// table and the given options applied over the defaults (a 3-minion
// pool, a 1000-operand chunk size, shared assets under the host's
// local-data directory, private assets under the working directory).
func New(opts ...ContextOption) *Context {
	cfg := newContextConfig(opts...)

	shared := asset.NewProvider(cfg.sharedBaseDir)
	private := asset.NewProvider(cfg.privateBaseDir)

	minions := make([]*op.Runtime, cfg.minionPoolSize)
	for i := range minions {
		minions[i] = op.NewRuntime(shared)
	}

	return &Context{
		reg:           registry.New(kernel.Builtins()),
		macros:        make(map[string]string),
		sharedAssets:  shared,
		privateAssets: private,
		minions:       minions,
		chunkSize:     cfg.chunkSize,
	}
}

// Operation normalizes, compiles, and stores definition, returning a
// stable Handle and ok=true on success. On failure it records the
// {definition, failing operator name, cause} triplet (retrievable via
// Report) and returns ok=false; no entry is added to the operation table.
func (c *Context) Operation(definition string) (Handle, bool) {
	root, err := gys.Normalize(definition, c.lookupMacro)
	if err != nil {
		c.recordFailure(definition, "", err)
		return 0, false
	}

	compiled, err := c.reg.Compile(root)
	if err != nil {
		c.recordFailure(definition, root.Name, err)
		return 0, false
	}

	c.operations = append(c.operations, compiled)
	return Handle(len(c.operations) - 1), true
}

// Fwd executes the operation at h forward over operands, in place.
func (c *Context) Fwd(h Handle, operands []coord.Tuple) bool {
	return c.Operate(h, operands, true)
}

// Inv executes the inverse of the operation at h over operands, in place.
func (c *Context) Inv(h Handle, operands []coord.Tuple) bool {
	return c.Operate(h, operands, false)
}

// Operate executes the operation at h over operands, in place, in the
// requested direction. It returns false only when h does not index a
// compiled operation in this Context, recording an InvalidHandle failure
// in that case; a successful dispatch returns true even if individual
// operands failed (those are surfaced as coord.NaN() within operands
// itself, per spec.md §7/§8's partial-success model).
func (c *Context) Operate(h Handle, operands []coord.Tuple, forward bool) bool {
	operator, ok := c.lookupHandle(h)
	if !ok {
		c.recordFailure("", "", contextErrorf("Operate", "handle %d: %w", h, ErrInvalidHandle))
		return false
	}

	dir := op.Inv
	if forward {
		dir = op.Fwd
	}
	c.dispatchChunks(operator, dir, operands)
	return true
}

// lookupHandle bounds-checks h against the operation table.
func (c *Context) lookupHandle(h Handle) (*op.Operator, bool) {
	if h < 0 || int(h) >= len(c.operations) {
		return nil, false
	}
	return c.operations[h], true
}

// dispatchChunks splits operands into fixed-size chunks (c.chunkSize) and
// dispatches each to the next minion in round-robin order, clearing that
// minion's scratch stack once its chunk completes. Chunks are dispatched
// strictly in index order and run to completion one at a time — this is
// an ordering harness, not a parallelism contract (spec.md §5) — so a
// future implementation can swap the loop body for a goroutine-per-chunk
// dispatch without changing this method's contract, provided each
// minion's Runtime stays effectively thread-local across that chunk.
func (c *Context) dispatchChunks(operator *op.Operator, dir op.Direction, operands []coord.Tuple) int {
	total := 0
	n := len(operands)
	for start := 0; start < n; start += c.chunkSize {
		end := start + c.chunkSize
		if end > n {
			end = n
		}

		rt := c.minions[c.nextMinion%len(c.minions)]
		c.nextMinion++

		total += operator.Apply(rt, dir, operands[start:end])
		rt.Clear()
	}
	return total
}

// RegisterOperator installs or overwrites a user-defined operator
// constructor under name, shadowing any builtin of the same name (§4.3,
// §4.5: operator re-registration overwrites).
func (c *Context) RegisterOperator(name string, ctor registry.Constructor) {
	c.reg.RegisterOperator(name, ctor)
}

// RegisterMacro registers a user macro definition under name. It refuses
// (returns false, leaving any existing registration untouched) a
// self-referential definition or an attempt to overwrite an already
// registered name — callers must remove the existing macro first, per
// spec.md §4.5's "macro re-registration returns a failure signal."
func (c *Context) RegisterMacro(name, definition string) bool {
	if _, exists := c.macros[name]; exists {
		return false
	}
	if err := registry.ValidateMacroDefinition(name, definition); err != nil {
		return false
	}
	c.macros[name] = definition
	return true
}

// lookupMacro adapts the Context's macro table to gys.MacroLookup.
func (c *Context) lookupMacro(name string) (string, bool) {
	def, ok := c.macros[name]
	return def, ok
}

// GetSharedAsset resolves (branch, name, ext) against the shared asset
// base directory (§4.5, §6).
func (c *Context) GetSharedAsset(branch, name, ext string) (string, bool) {
	return c.sharedAssets.Get(branch, name, ext)
}

// GetPrivateAsset resolves (branch, name, ext) against the private
// (working-directory-rooted) asset base directory (§4.5, §6).
func (c *Context) GetPrivateAsset(branch, name, ext string) (string, bool) {
	return c.privateAssets.Get(branch, name, ext)
}

// Diagnostics returns, in step-traversal order, one line per operand-bag
// key that is either outside its constructor's declared gamut or present
// but never consulted by any typed lookup (§4.2's "ledger drives
// diagnostic reporting"). It returns ok=false if h does not index a
// compiled operation. An empty, ok=true result means every key set on
// every step was both recognized and consumed.
func (c *Context) Diagnostics(h Handle) ([]string, bool) {
	operator, ok := c.lookupHandle(h)
	if !ok {
		return nil, false
	}
	var out []string
	collectDiagnostics(operator, &out)
	return out, true
}

// collectDiagnostics walks a compiled Operator tree, appending one
// formatted line per unrecognized or unused key found on each step's
// Params.
func collectDiagnostics(operator *op.Operator, out *[]string) {
	for _, key := range operator.Params.UnrecognizedKeys() {
		*out = append(*out, fmt.Sprintf("%s: %q: unrecognized parameter", operator.Name, key))
	}
	for _, key := range operator.Params.UnusedKeys() {
		*out = append(*out, fmt.Sprintf("%s: %q: unused parameter", operator.Name, key))
	}
	for _, child := range operator.Steps {
		collectDiagnostics(child, out)
	}
}

// Report renders the last failure this Context recorded (a construction
// failure from Operation, or an invalid-handle failure from Operate), in
// the form "definition=%q operator=%q: cause". It returns "" if nothing
// has failed yet.
func (c *Context) Report() string {
	if c.lastFailure.cause == nil {
		return ""
	}
	return fmt.Sprintf("definition=%q operator=%q: %v", c.lastFailure.definition, c.lastFailure.operator, c.lastFailure.cause)
}

// recordFailure stores the {definition, operator, cause} triplet Report
// renders.
func (c *Context) recordFailure(definition, operatorName string, err error) {
	c.lastFailure = failure{definition: definition, operator: operatorName, cause: err}
}
