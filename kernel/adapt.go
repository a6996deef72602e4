package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/op"
)

// ErrBadAxisDescriptor indicates a "from"/"to" descriptor passed to adapt
// is not exactly 4 or 8 characters long, uses an unrecognized axis
// letter, carries an unrecognized angular-unit suffix, or does not cover
// each of the four axis classes {e/w, n/s, u/d, t/r} exactly once.
var ErrBadAxisDescriptor = errors.New("kernel: bad axis descriptor")

// badDescriptor wraps ErrBadAxisDescriptor (and, transitively,
// args.ErrBadParameter) with the offending descriptor's detail, so
// callers can branch on either with errors.Is.
func badDescriptor(format string, a ...interface{}) error {
	return fmt.Errorf("adapt: from/to: %s: %w: %w", fmt.Sprintf(format, a...), ErrBadAxisDescriptor, args.ErrBadParameter)
}

// axisDescriptor is the resolved {permutation, sign*unit multiplier} pair
// for one 4-letter adapt descriptor.
type axisDescriptor struct {
	post [4]int
	mult [4]float64
	noop bool
}

// parseAxisDescriptor parses one adapt descriptor string: 4 letters from
// {e,n,u,t,w,s,d,r}, optionally suffixed by "_deg"|"_gon"|"_rad"|"_any",
// or the literal "pass".
func parseAxisDescriptor(desc string) (axisDescriptor, error) {
	if desc == "pass" {
		return axisDescriptor{post: [4]int{0, 1, 2, 3}, mult: [4]float64{1, 1, 1, 1}, noop: true}, nil
	}

	letters := desc
	toRad := 1.0
	if len(desc) == 8 {
		suffix := desc[4:]
		switch suffix {
		case "_deg":
			toRad = coord.DegToRad
		case "_gon":
			toRad = coord.GonToRad
		case "_rad", "_any":
			toRad = 1.0
		default:
			return axisDescriptor{}, badDescriptor("unrecognized angular-unit suffix %q", suffix)
		}
		letters = desc[:4]
	} else if len(desc) != 4 {
		return axisDescriptor{}, badDescriptor("descriptor %q must be 4 or 8 characters, or \"pass\"", desc)
	}

	var indices [4]int
	for i, r := range letters {
		var d int
		switch r {
		case 'w':
			d = -1
		case 's':
			d = -2
		case 'd':
			d = -3
		case 'r':
			d = -4
		case 'e':
			d = 1
		case 'n':
			d = 2
		case 'u':
			d = 3
		case 't':
			d = 4
		default:
			return axisDescriptor{}, badDescriptor("unrecognized axis letter %q", string(r))
		}
		indices[i] = d
	}

	var count [4]int
	for _, d := range indices {
		abs := d
		if abs < 0 {
			abs = -abs
		}
		count[abs-1]++
	}
	if count != [4]int{1, 1, 1, 1} {
		return axisDescriptor{}, badDescriptor("descriptor %q is not a permutation of e/w, n/s, u/d, t/r", desc)
	}

	var out axisDescriptor
	for i, d := range indices {
		abs := d
		sign := 1.0
		if abs < 0 {
			abs = -abs
			sign = -1.0
		}
		out.post[i] = abs - 1
		unit := 1.0
		if i < 2 {
			unit = toRad
		}
		out.mult[i] = sign * unit
	}
	out.noop = out.mult == [4]float64{1, 1, 1, 1} && out.post == [4]int{0, 1, 2, 3}
	return out, nil
}

// combineAxisDescriptors folds a "from" and "to" descriptor into the
// single descriptor adapt's fwd/inv kernels actually execute against.
func combineAxisDescriptors(from, to axisDescriptor) axisDescriptor {
	var give axisDescriptor
	for i := 0; i < 4; i++ {
		give.mult[i] = from.mult[i] / to.mult[i]
		for j := 0; j < 4; j++ {
			if from.post[j] == to.post[i] {
				give.post[i] = j
				break
			}
		}
	}
	give.noop = give.mult == [4]float64{1, 1, 1, 1} && give.post == [4]int{0, 1, 2, 3}
	return give
}

// AdaptGamut is the set of parameters NewAdapt recognizes.
var AdaptGamut = args.Gamut{
	{Key: "from", Kind: args.KindString},
	{Key: "to", Kind: args.KindString},
}

// NewAdapt builds the declarative axis/unit reordering kernel (§4.6).
//
// The "inv" flag swaps the stored "from" and "to" descriptor strings
// before the combined descriptor is computed, rather than deriving a
// separate inverse kernel by division — this is what guarantees forward
// and inverse applications are bitwise symmetric about the same
// multiplications, avoiding the round-off asymmetry of multiply-vs-divide.
// Consequently the returned inverted flag is always false: by the time
// construction finishes, "inv" has already been fully absorbed into which
// descriptor plays "from" and which plays "to".
func NewAdapt(a *args.OperatorArgs) (fwd, inv op.KernelFunc, inverted bool, err error) {
	invFlag := a.Flag("inv")
	from := a.String("from", "enut")
	to := a.String("to", "enut")
	if invFlag {
		from, to = to, from
	}
	a.DeclareGamut(AdaptGamut)

	fromDesc, err := parseAxisDescriptor(strings.TrimSpace(from))
	if err != nil {
		return nil, nil, false, err
	}
	toDesc, err := parseAxisDescriptor(strings.TrimSpace(to))
	if err != nil {
		return nil, nil, false, err
	}
	give := combineAxisDescriptors(fromDesc, toDesc)

	fwd = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		if give.noop {
			return len(operands)
		}
		for i, o := range operands {
			operands[i] = coord.Tuple{
				o[give.post[0]] * give.mult[0],
				o[give.post[1]] * give.mult[1],
				o[give.post[2]] * give.mult[2],
				o[give.post[3]] * give.mult[3],
			}
		}
		return len(operands)
	}
	inv = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		if give.noop {
			return len(operands)
		}
		for i, o := range operands {
			var c coord.Tuple
			for k := 0; k < 4; k++ {
				c[give.post[k]] = o[k] / give.mult[k]
			}
			operands[i] = c
		}
		return len(operands)
	}
	return fwd, inv, false, nil
}
