package aligned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecGrowKeepsAlignmentAndData(t *testing.T) {
	for _, src := range sources() {
		v, err := NewVec[float64](64, 0, WithSource(src))
		require.NoError(t, err)

		for i := range 1000 {
			require.NoError(t, v.Append(float64(i)))
			require.True(t, IsSliceAligned(v.Slice(), 64), "len %d", v.Len())
		}

		require.Equal(t, 1000, v.Len())
		require.GreaterOrEqual(t, v.Cap(), 1000)
		for i, x := range v.Slice() {
			require.Equal(t, float64(i), x)
		}
		require.NoError(t, v.Release())
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Cap())
	}
}

func TestVecResizeZeroesExposedElements(t *testing.T) {
	v, err := NewVec[float64](32, 4)
	require.NoError(t, err)
	defer v.Release()

	s := v.Slice()
	for i := range s {
		s[i] = 7
	}

	require.NoError(t, v.Resize(2))
	require.NoError(t, v.Resize(4))
	assert.Equal(t, []float64{7, 7, 0, 0}, v.Slice())

	require.NoError(t, v.Resize(-3))
	assert.Equal(t, 0, v.Len())

	require.NoError(t, v.Resize(100))
	assert.True(t, IsSliceAligned(v.Slice(), 32))
	for _, x := range v.Slice() {
		require.Zero(t, x)
	}
}

func TestVecReserve(t *testing.T) {
	v, err := FromSlice(16, []float64{1, 2, 3})
	require.NoError(t, err)
	defer v.Release()

	require.NoError(t, v.Reserve(64))
	assert.GreaterOrEqual(t, v.Cap(), 64)
	assert.Equal(t, []float64{1, 2, 3}, v.Slice())

	c := v.Cap()
	require.NoError(t, v.Reserve(10))
	assert.Equal(t, c, v.Cap())
}

func TestVecZeroRange(t *testing.T) {
	v, err := FromSlice(16, []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	defer v.Release()

	v.ZeroRange(-2, 2)
	assert.Equal(t, []float64{0, 0, 3, 4, 5}, v.Slice())

	v.ZeroRange(4, 99)
	assert.Equal(t, []float64{0, 0, 3, 4, 0}, v.Slice())

	v.ZeroRange(3, 1)
	assert.Equal(t, []float64{0, 0, 3, 4, 0}, v.Slice())

	v.Zero()
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, v.Slice())
}

func TestVecClone(t *testing.T) {
	v, err := FromSlice(64, []float64{1, 2, 3}, WithOffHeap())
	require.NoError(t, err)
	defer v.Release()

	c, err := v.Clone()
	require.NoError(t, err)
	defer c.Release()

	assert.Equal(t, v.Slice(), c.Slice())
	assert.Equal(t, v.Alignment(), c.Alignment())
	assert.Equal(t, v.Allocator().Source(), c.Allocator().Source())

	c.Slice()[0] = 99
	assert.Equal(t, 1.0, v.Slice()[0])
}

func TestVecInvalidAlignment(t *testing.T) {
	_, err := NewVec[float64](12, 4)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = FromSlice(0, []float64{1})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestVecReuseAfterRelease(t *testing.T) {
	v, err := NewVec[float32](32, 3)
	require.NoError(t, err)
	require.NoError(t, v.Release())
	require.NoError(t, v.Release())

	require.NoError(t, v.Append(1, 2))
	assert.Equal(t, []float32{1, 2}, v.Slice())
	assert.True(t, IsSliceAligned(v.Slice(), 32))
	require.NoError(t, v.Release())
}

func TestVecAppendNothing(t *testing.T) {
	v, err := NewVec[float64](32, 0)
	require.NoError(t, err)
	require.NoError(t, v.Append())
	require.NoError(t, v.Append([]float64{}...))
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())

	w, err := FromSlice(64, []float64{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, w.Release())
	require.NoError(t, w.Append())
	assert.Empty(t, w.Slice())

	require.NoError(t, w.Append(4))
	assert.Equal(t, []float64{4}, w.Slice())
	require.NoError(t, w.Append())
	assert.Equal(t, []float64{4}, w.Slice())
	require.NoError(t, w.Release())
}

func TestVecZeroValue(t *testing.T) {
	var v Vec[float64]

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, 0, v.Alignment())
	assert.Nil(t, v.Slice())
	assert.Nil(t, v.Allocator())

	require.NoError(t, v.Append())
	require.NoError(t, v.Reserve(0))
	require.NoError(t, v.Resize(0))
	v.Zero()
	v.ZeroRange(0, 4)

	assert.ErrorIs(t, v.Append(1), ErrConfiguration)
	assert.ErrorIs(t, v.Reserve(4), ErrConfiguration)
	assert.ErrorIs(t, v.Resize(4), ErrConfiguration)
	_, err := v.Clone()
	assert.ErrorIs(t, err, ErrConfiguration)

	assert.Equal(t, 0, v.Len())
	require.NoError(t, v.Release())
}
