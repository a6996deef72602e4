package kernel

import (
	"testing"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/gys"
	"github.com/katalvlaran/geodesy/op"
	"github.com/stretchr/testify/require"
)

func TestUTM_RoundTrip(t *testing.T) {
	fwd, inv, _, err := NewUTM(args.New([]gys.Arg{
		{Key: "zone", Value: "32"},
		{Key: "ellps", Value: "WGS84"},
	}))
	require.NoError(t, err)

	rt := op.NewRuntime(nil)
	start := coord.Geo(55, 12, 0, 0)
	operands := []coord.Tuple{start}
	fwd(rt, op.Fwd, operands)
	inv(rt, op.Inv, operands)

	require.InDelta(t, start[0], operands[0][0], 1e-9)
	require.InDelta(t, start[1], operands[0][1], 1e-9)
}

func TestUTM_SouthHemisphereFalseNorthing(t *testing.T) {
	north, _, _, err := NewUTM(args.New([]gys.Arg{{Key: "zone", Value: "32"}}))
	require.NoError(t, err)
	south, _, _, err := NewUTM(args.New([]gys.Arg{{Key: "zone", Value: "32"}, {Key: "south", Value: "true"}}))
	require.NoError(t, err)

	rt := op.NewRuntime(nil)
	a := []coord.Tuple{coord.Geo(-10, 12, 0, 0)}
	b := []coord.Tuple{coord.Geo(-10, 12, 0, 0)}
	north(rt, op.Fwd, a)
	south(rt, op.Fwd, b)

	require.InDelta(t, 10000000, b[0][1]-a[0][1], 1e-6)
}
