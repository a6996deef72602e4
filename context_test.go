package geodesy

import (
	"testing"

	"github.com/katalvlaran/geodesy/coord"
	"github.com/stretchr/testify/require"
)

// Scenario 1 (spec.md §8): an ED50->ETRS89-shaped pipeline of cart,
// helmert, and an inverted cart, run forward and then inverse.
func TestContext_Scenario_Ed50ToEtrs89(t *testing.T) {
	ctx := New()
	h, ok := ctx.Operation("ed50_etrs89: { steps: [cart: {ellps: intl}, helmert: {x:-87,y:-96,z:-120}, cart: {inv:true, ellps:GRS80}] }")
	require.True(t, ok, ctx.Report())

	operands := []coord.Tuple{coord.Geo(55, 12, 100, 0)}
	require.True(t, ctx.Fwd(h, operands))

	lat, lon, _, _ := operands[0].ToGeo()
	require.InDelta(t, 54.999382648950991, lat, 1e-9)
	require.InDelta(t, 11.998815342385207, lon, 1e-9)

	require.True(t, ctx.Inv(h, operands))
	lat, lon, _, _ = operands[0].ToGeo()
	require.InDelta(t, 55, lat, 1e-9)
	require.InDelta(t, 12, lon, 1e-9)
}

// Scenario 4: IsGYS classification is exercised directly in package gys;
// Context only needs to route both surfaces to the same compiled result.
func TestContext_GYSAndLonghandAgree(t *testing.T) {
	ctx := New()
	gysHandle, ok := ctx.Operation("addone|addone")
	require.True(t, ok, ctx.Report())

	yamlHandle, ok := ctx.Operation("pipeline_from_gys: { steps: [addone: {}, addone: {}] }")
	require.True(t, ok, ctx.Report())

	a := []coord.Tuple{{1, 1, 0, 0}}
	b := []coord.Tuple{{1, 1, 0, 0}}
	require.True(t, ctx.Fwd(gysHandle, a))
	require.True(t, ctx.Fwd(yamlHandle, b))
	require.Equal(t, a, b)
}

// Scenario 5: "[inv]" strips to a step named "inv", which names no
// operator, and is rejected; "[cart inv]" strips to "cart inv" and compiles.
func TestContext_BracketedEmptyStepRejected(t *testing.T) {
	ctx := New()
	_, ok := ctx.Operation("[inv]")
	require.False(t, ok)
	require.NotEmpty(t, ctx.Report())

	_, ok = ctx.Operation("[cart inv]")
	require.True(t, ok, ctx.Report())
}

// Scenario 6: chained addone pipelines, with one inverted mid-chain.
func TestContext_Scenario_AddOneChain(t *testing.T) {
	ctx := New()
	h, ok := ctx.Operation("addone|addone|addone")
	require.True(t, ok, ctx.Report())

	operands := []coord.Tuple{{55, 59, 0, 0}}
	require.True(t, ctx.Fwd(h, operands))
	require.Equal(t, coord.Tuple{58, 62, 0, 0}, operands[0])
	require.True(t, ctx.Inv(h, operands))
	require.Equal(t, coord.Tuple{55, 59, 0, 0}, operands[0])

	h2, ok := ctx.Operation("addone|addone inv|addone")
	require.True(t, ok, ctx.Report())
	operands2 := []coord.Tuple{{55, 59, 0, 0}}
	require.True(t, ctx.Fwd(h2, operands2))
	require.Equal(t, coord.Tuple{56, 60, 0, 0}, operands2[0])
}

func TestContext_InvalidHandle(t *testing.T) {
	ctx := New()
	operands := []coord.Tuple{{1, 2, 3, 4}}
	require.False(t, ctx.Operate(Handle(42), operands, true))
	require.Contains(t, ctx.Report(), "invalid operation handle")
}

func TestContext_HandleStability(t *testing.T) {
	ctx := New()
	h1, ok := ctx.Operation("addone")
	require.True(t, ok)
	h2, ok := ctx.Operation("addone|addone")
	require.True(t, ok)

	a := []coord.Tuple{{0, 0, 0, 0}}
	require.True(t, ctx.Fwd(h1, a))
	require.Equal(t, coord.Tuple{1, 1, 0, 0}, a[0])

	b := []coord.Tuple{{0, 0, 0, 0}}
	require.True(t, ctx.Fwd(h2, b))
	require.Equal(t, coord.Tuple{2, 2, 0, 0}, b[0])

	// h1 still refers to the single-addone operation after h2 was compiled.
	c := []coord.Tuple{{0, 0, 0, 0}}
	require.True(t, ctx.Fwd(h1, c))
	require.Equal(t, coord.Tuple{1, 1, 0, 0}, c[0])
}

func TestContext_RegisterMacro_SelfReferenceRejected(t *testing.T) {
	ctx := New()
	require.False(t, ctx.RegisterMacro("foo", "foo: {}"))
}

func TestContext_RegisterMacro_NoOverwrite(t *testing.T) {
	ctx := New()
	require.True(t, ctx.RegisterMacro("double_addone", "addone|addone"))
	require.False(t, ctx.RegisterMacro("double_addone", "addone|addone|addone"))

	h, ok := ctx.Operation("double_addone")
	require.True(t, ok, ctx.Report())
	operands := []coord.Tuple{{0, 0, 0, 0}}
	require.True(t, ctx.Fwd(h, operands))
	require.Equal(t, coord.Tuple{2, 2, 0, 0}, operands[0])
}

func TestContext_Diagnostics(t *testing.T) {
	ctx := New()
	h, ok := ctx.Operation("cart: {ellps: GRS80, bogus: 1}")
	require.True(t, ok, ctx.Report())

	diags, ok := ctx.Diagnostics(h)
	require.True(t, ok)
	require.Contains(t, diags, `cart: "bogus": unrecognized parameter`)
}

func TestContext_Diagnostics_InvalidHandle(t *testing.T) {
	ctx := New()
	_, ok := ctx.Diagnostics(Handle(42))
	require.False(t, ok)
}

func TestContext_ChunkingPreservesOperandOrder(t *testing.T) {
	ctx := New(WithChunkSize(3), WithMinionPoolSize(2))
	h, ok := ctx.Operation("addone")
	require.True(t, ok, ctx.Report())

	operands := make([]coord.Tuple, 10)
	for i := range operands {
		operands[i] = coord.Tuple{float64(i), 0, 0, 0}
	}
	require.True(t, ctx.Fwd(h, operands))
	for i, o := range operands {
		require.Equal(t, float64(i)+1, o[0])
	}
}
