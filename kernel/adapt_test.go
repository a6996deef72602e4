package kernel

import (
	"testing"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/gys"
	"github.com/katalvlaran/geodesy/op"
	"github.com/stretchr/testify/require"
)

func adaptArgs(t *testing.T, pairs ...gys.Arg) *args.OperatorArgs {
	t.Helper()
	return args.New(pairs)
}

func TestAdapt_DegToGon(t *testing.T) {
	fwd, inv, inverted, err := NewAdapt(adaptArgs(t,
		gys.Arg{Key: "from", Value: "neut_deg"},
		gys.Arg{Key: "to", Value: "enut_gon"},
	))
	require.NoError(t, err)
	require.False(t, inverted)

	rt := op.NewRuntime(nil)

	operands := []coord.Tuple{{90, 180, 0, 0}}
	n := fwd(rt, op.Fwd, operands)
	require.Equal(t, 1, n)
	require.InDelta(t, 200, operands[0][0], 1e-9)
	require.InDelta(t, 100, operands[0][1], 1e-9)

	operands2 := []coord.Tuple{{45, 90, 0, 0}}
	fwd(rt, op.Fwd, operands2)
	require.InDelta(t, 100, operands2[0][0], 1e-9)
	require.InDelta(t, 50, operands2[0][1], 1e-9)

	before := operands[0]
	n = inv(rt, op.Fwd, operands)
	require.Equal(t, 1, n)
	require.InDelta(t, 90, operands[0][0], 1e-9)
	require.InDelta(t, 180, operands[0][1], 1e-9)
	_ = before
}

func TestAdapt_InvSwapsFromTo(t *testing.T) {
	plain, _, _, err := NewAdapt(adaptArgs(t,
		gys.Arg{Key: "to", Value: "neut_deg"},
	))
	require.NoError(t, err)

	swapped, _, inverted, err := NewAdapt(adaptArgs(t,
		gys.Arg{Key: "inv", Value: "true"},
		gys.Arg{Key: "from", Value: "neut_deg"},
	))
	require.NoError(t, err)
	require.False(t, inverted)

	rt := op.NewRuntime(nil)
	a := []coord.Tuple{{1, 2, 3, 4}}
	b := []coord.Tuple{{1, 2, 3, 4}}
	plain(rt, op.Fwd, a)
	swapped(rt, op.Fwd, b)
	require.Equal(t, a, b)
}

func TestAdapt_PassIsNoop(t *testing.T) {
	fwd, inv, _, err := NewAdapt(adaptArgs(t, gys.Arg{Key: "from", Value: "pass"}, gys.Arg{Key: "to", Value: "pass"}))
	require.NoError(t, err)
	rt := op.NewRuntime(nil)
	operands := []coord.Tuple{{1, 2, 3, 4}}
	fwd(rt, op.Fwd, operands)
	require.Equal(t, coord.Tuple{1, 2, 3, 4}, operands[0])
	inv(rt, op.Fwd, operands)
	require.Equal(t, coord.Tuple{1, 2, 3, 4}, operands[0])
}

func TestAdapt_BadDescriptorRejected(t *testing.T) {
	_, _, _, err := NewAdapt(adaptArgs(t, gys.Arg{Key: "from", Value: "eeut"}, gys.Arg{Key: "to", Value: "enut"}))
	require.ErrorIs(t, err, args.ErrBadParameter)
}
