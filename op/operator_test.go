package op_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/op"
)

func addOneKernels() (op.KernelFunc, op.KernelFunc) {
	fwd := func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		for i := range operands {
			operands[i][0]++
		}
		return len(operands)
	}
	inv := func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		for i := range operands {
			operands[i][0]--
		}
		return len(operands)
	}
	return fwd, inv
}

func leaf(t *testing.T, inverted bool) *op.Operator {
	t.Helper()
	fwd, inv := addOneKernels()
	o, err := op.NewLeaf("addone", "addone", nil, fwd, inv, inverted)
	require.NoError(t, err)
	return o
}

func TestOperator_UninvertibleWithNoInverse(t *testing.T) {
	fwd, _ := addOneKernels()
	_, err := op.NewLeaf("addone", "addone", nil, fwd, nil, true)
	require.ErrorIs(t, err, op.ErrUninvertible)
}

func TestPipeline_ThreeAddOnes(t *testing.T) {
	steps := []*op.Operator{leaf(t, false), leaf(t, false), leaf(t, false)}
	p := op.NewPipeline("pipeline", "addone|addone|addone", nil, steps, false)
	rt := op.NewRuntime(nil)

	data := []coord.Tuple{{55, 0, 0, 0}, {59, 0, 0, 0}}
	n := p.Apply(rt, op.Fwd, data)
	assert.Equal(t, 2, n)
	assert.Equal(t, 58.0, data[0][0])
	assert.Equal(t, 62.0, data[1][0])

	p.Apply(rt, op.Inv, data)
	assert.Equal(t, 55.0, data[0][0])
	assert.Equal(t, 59.0, data[1][0])
}

func TestPipeline_MiddleStepInverted(t *testing.T) {
	steps := []*op.Operator{leaf(t, false), leaf(t, true), leaf(t, false)}
	p := op.NewPipeline("pipeline", "addone|addone inv|addone", nil, steps, false)
	rt := op.NewRuntime(nil)

	data := []coord.Tuple{{55, 0, 0, 0}, {59, 0, 0, 0}}
	p.Apply(rt, op.Fwd, data)
	assert.Equal(t, 56.0, data[0][0])
	assert.Equal(t, 60.0, data[1][0])

	p.Apply(rt, op.Inv, data)
	assert.Equal(t, 55.0, data[0][0])
	assert.Equal(t, 59.0, data[1][0])
}

func TestOperator_ApplyInvWithNilInverseDegradesInsteadOfPanicking(t *testing.T) {
	fwd, _ := addOneKernels()
	o, err := op.NewLeaf("addone", "addone", nil, fwd, nil, false)
	require.NoError(t, err)

	rt := op.NewRuntime(nil)
	data := []coord.Tuple{{55, 0, 0, 0}}
	n := o.Apply(rt, op.Inv, data)
	assert.Equal(t, 0, n)
}

func TestRuntime_ScratchStack(t *testing.T) {
	rt := op.NewRuntime(nil)
	rt.Push(1)
	rt.Push(2)
	v, ok := rt.Pop()
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
	rt.Clear()
	_, ok = rt.Pop()
	assert.False(t, ok)
}
