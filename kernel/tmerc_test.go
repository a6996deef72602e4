package kernel

import (
	"testing"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/gys"
	"github.com/katalvlaran/geodesy/op"
	"github.com/stretchr/testify/require"
)

func TestTmerc_RoundTrip(t *testing.T) {
	fwd, inv, _, err := NewTmerc(args.New([]gys.Arg{
		{Key: "ellps", Value: "WGS84"},
		{Key: "lon_0", Value: "9"},
		{Key: "k_0", Value: "0.9996"},
		{Key: "x_0", Value: "500000"},
	}))
	require.NoError(t, err)

	rt := op.NewRuntime(nil)
	start := coord.Geo(52, 10, 0, 0)
	operands := []coord.Tuple{start}
	fwd(rt, op.Fwd, operands)
	inv(rt, op.Inv, operands)

	require.InDelta(t, start[0], operands[0][0], 1e-9)
	require.InDelta(t, start[1], operands[0][1], 1e-9)
}

func TestUTM_ZoneDerivesCentralMeridian(t *testing.T) {
	fwd, inv, _, err := NewUTM(args.New([]gys.Arg{
		{Key: "ellps", Value: "WGS84"},
		{Key: "zone", Value: "32"},
	}))
	require.NoError(t, err)

	rt := op.NewRuntime(nil)
	start := coord.Geo(52, 10, 0, 0)
	operands := []coord.Tuple{start}
	fwd(rt, op.Fwd, operands)
	require.InDelta(t, 500000, operands[0][0], 200000)

	inv(rt, op.Inv, operands)
	require.InDelta(t, start[0], operands[0][0], 1e-9)
	require.InDelta(t, start[1], operands[0][1], 1e-9)
}
