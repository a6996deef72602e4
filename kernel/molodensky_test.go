package kernel

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/gys"
	"github.com/katalvlaran/geodesy/op"
	"github.com/stretchr/testify/require"
)

// helmertReference runs a 3-parameter translation-only Helmert on the same
// cartesian point, giving the reference this test compares Molodensky's
// full-formula result against (spec scenario 3: within 5mm of the 3-param
// Helmert result via cart round-trip from leftEllps to rightEllps).
func helmertReference(t *testing.T, leftEllps, rightEllps string, lon, lat, h, dx, dy, dz float64) coord.Tuple {
	t.Helper()
	cartFwd, _, _, err := NewCart(args.New([]gys.Arg{{Key: "ellps", Value: leftEllps}}))
	require.NoError(t, err)
	helmertFwd, _, _, err := NewHelmert(args.New([]gys.Arg{
		{Key: "dx", Value: f(dx)}, {Key: "dy", Value: f(dy)}, {Key: "dz", Value: f(dz)},
	}))
	require.NoError(t, err)
	cartInv, _, _, err := NewCart(args.New([]gys.Arg{{Key: "ellps", Value: rightEllps}}))
	require.NoError(t, err)

	rt := op.NewRuntime(nil)
	operands := []coord.Tuple{{lon, lat, h, 0}}
	cartFwd(rt, op.Fwd, operands)
	helmertFwd(rt, op.Fwd, operands)
	cartInv(rt, op.Inv, operands)
	return operands[0]
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func TestMolodensky_FullMatchesHelmertWithin5mm(t *testing.T) {
	lat := 53.80939444 * coord.DegToRad
	lon := 2.12955 * coord.DegToRad
	h := 73.0

	fwd, _, inverted, err := NewMolodensky(args.New([]gys.Arg{
		{Key: "left_ellps", Value: "WGS84"},
		{Key: "right_ellps", Value: "intl"},
		{Key: "dx", Value: "84.87"},
		{Key: "dy", Value: "96.49"},
		{Key: "dz", Value: "116.95"},
	}))
	require.NoError(t, err)
	require.False(t, inverted)

	rt := op.NewRuntime(nil)
	operands := []coord.Tuple{{lon, lat, h, 0}}
	n := fwd(rt, op.Fwd, operands)
	require.Equal(t, 1, n)

	ref := helmertReference(t, "WGS84", "intl", lon, lat, h, 84.87, 96.49, 116.95)

	gotLat, gotLon, gotH := operands[0][1]*coord.RadToDeg, operands[0][0]*coord.RadToDeg, operands[0][2]
	refLat, refLon, refH := ref[1]*coord.RadToDeg, ref[0]*coord.RadToDeg, ref[2]

	planarMeters := math.Hypot((gotLat-refLat)*111320, (gotLon-refLon)*111320*math.Cos(lat))
	require.Less(t, planarMeters, 0.005)
	require.Less(t, math.Abs(gotH-refH), 0.005)
}

func TestMolodensky_AbridgedWithinLooserTolerance(t *testing.T) {
	lat := 53.80939444 * coord.DegToRad
	lon := 2.12955 * coord.DegToRad
	h := 73.0

	fwd, _, _, err := NewMolodensky(args.New([]gys.Arg{
		{Key: "abridged", Value: "true"},
		{Key: "left_ellps", Value: "WGS84"},
		{Key: "right_ellps", Value: "intl"},
		{Key: "dx", Value: "84.87"},
		{Key: "dy", Value: "96.49"},
		{Key: "dz", Value: "116.95"},
	}))
	require.NoError(t, err)

	rt := op.NewRuntime(nil)
	operands := []coord.Tuple{{lon, lat, h, 0}}
	fwd(rt, op.Fwd, operands)

	ref := helmertReference(t, "WGS84", "intl", lon, lat, h, 84.87, 96.49, 116.95)

	gotLat, gotLon, gotH := operands[0][1]*coord.RadToDeg, operands[0][0]*coord.RadToDeg, operands[0][2]
	refLat, refLon, refH := ref[1]*coord.RadToDeg, ref[0]*coord.RadToDeg, ref[2]

	planarMeters := math.Hypot((gotLat-refLat)*111320, (gotLon-refLon)*111320*math.Cos(lat))
	require.Less(t, planarMeters, 0.1)
	require.Less(t, math.Abs(gotH-refH), 0.075)
}

func TestMolodensky_RoundTrip(t *testing.T) {
	fwd, inv, _, err := NewMolodensky(args.New([]gys.Arg{
		{Key: "left_ellps", Value: "WGS84"},
		{Key: "right_ellps", Value: "intl"},
		{Key: "dx", Value: "84.87"},
		{Key: "dy", Value: "96.49"},
		{Key: "dz", Value: "116.95"},
	}))
	require.NoError(t, err)

	rt := op.NewRuntime(nil)
	start := coord.Tuple{2.12955 * coord.DegToRad, 53.80939444 * coord.DegToRad, 73, 0}
	operands := []coord.Tuple{start}
	fwd(rt, op.Fwd, operands)
	inv(rt, op.Fwd, operands)

	require.InDelta(t, start[0], operands[0][0], 1e-10)
	require.InDelta(t, start[1], operands[0][1], 1e-10)
	require.InDelta(t, start[2], operands[0][2], 1e-6)
}
