package slots

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vectorkit/internal/testutil"
	"github.com/joshuapare/vectorkit/pkg/compare"
	"github.com/joshuapare/vectorkit/slots/arena"
)

// newI32 builds a vector of 4-byte records holding vals.
func newI32(t testing.TB, free FreeFunc, alloc int, opts *Options, vals ...int32) *Vector {
	t.Helper()
	v, err := New(testutil.I32Size, free, alloc, opts)
	require.NoError(t, err)
	for _, n := range vals {
		require.NoError(t, v.Append(testutil.I32(n)))
	}
	return v
}

func values(v *Vector) []int32 {
	return testutil.DecodeI32s(v.Bytes())
}

// Test_Scenario_AppendInsertDeleteSearch walks the reference scenario:
// capacity 2, three appends (one growth), insert, delete, linear search.
func Test_Scenario_AppendInsertDeleteSearch(t *testing.T) {
	v := newI32(t, nil, 2, nil)
	defer v.Dispose()

	require.Equal(t, 2, v.Cap())
	for _, n := range []int32{1, 2, 3} {
		require.NoError(t, v.Append(testutil.I32(n)))
	}
	require.Equal(t, 3, v.Len())
	require.Equal(t, 4, v.Cap(), "exactly one growth by the initial allocation")
	require.Equal(t, []int32{1, 2, 3}, values(v))

	require.NoError(t, v.Insert(testutil.I32(99), 1))
	require.Equal(t, []int32{1, 99, 2, 3}, values(v))

	v.Delete(0)
	require.Equal(t, []int32{99, 2, 3}, values(v))

	require.Equal(t, 1, v.Search(testutil.I32(2), compare.I32LE, 0, false))
}

func TestNew_NormalizesAllocation(t *testing.T) {
	for _, hint := range []int{0, -3} {
		v, err := New(8, nil, hint, nil)
		require.NoError(t, err)
		require.Equal(t, DefaultAllocation, v.Cap())
		require.Equal(t, DefaultAllocation, v.GrowBy())
		require.Equal(t, 8, v.ElemSize())
		require.Zero(t, v.Len())
		require.NoError(t, v.Dispose())
	}
}

func TestNew_RejectsBadElemSize(t *testing.T) {
	for _, size := range []int{0, -4} {
		v, err := New(size, nil, 4, nil)
		require.ErrorIs(t, err, ErrElemSize)
		require.Nil(t, v)
	}
}

func TestNew_AllocationFailure(t *testing.T) {
	_, err := New(4, nil, 8, &Options{Arena: &failingArena{}})
	require.ErrorIs(t, err, ErrAllocFail)
	require.ErrorIs(t, err, errArenaExhausted)

	_, err = New(4, nil, 8, &Options{MaxSlots: 4})
	require.ErrorIs(t, err, ErrAllocFail)

	_, err = New(math.MaxInt/2, nil, 8, nil)
	require.ErrorIs(t, err, ErrAllocFail, "byte size overflow")
}

func TestAt_ReturnsSlotView(t *testing.T) {
	v := newI32(t, nil, 4, nil, 10, 20, 30)
	defer v.Dispose()

	s := v.At(1)
	require.Len(t, s, 4)
	require.Equal(t, 4, cap(s), "view must not reach the next slot")

	copy(s, testutil.I32(21))
	require.Equal(t, []int32{10, 21, 30}, values(v))
}

func TestAt_OutOfRangePanics(t *testing.T) {
	v := newI32(t, nil, 4, nil, 1, 2)
	defer v.Dispose()

	for _, pos := range []int{-1, 2, 100} {
		testutil.RequirePanicsIs(t, ErrOutOfRange, func() { v.At(pos) })
	}

	empty := newI32(t, nil, 4, nil)
	defer empty.Dispose()
	testutil.RequirePanicsIs(t, ErrOutOfRange, func() { empty.At(0) })
}

func TestLen_Empty(t *testing.T) {
	v := newI32(t, nil, 3, nil)
	require.Zero(t, v.Len())
	require.Empty(t, v.Bytes())
	require.NoError(t, v.Dispose())
}

// Test_Dispose_FreesLiveElementsInOrder verifies each remaining element is
// destroyed exactly once, ascending, and deleted ones are not revisited.
func Test_Dispose_FreesLiveElementsInOrder(t *testing.T) {
	var rec testutil.SlotRecorder
	v := newI32(t, rec.Free, 2, nil, 5, 6, 7, 8)

	v.Delete(1)
	require.Equal(t, []int32{6}, rec.Freed)
	rec.Reset()

	require.NoError(t, v.Dispose())
	require.Equal(t, []int32{5, 7, 8}, rec.Freed)
}

func TestDispose_ReleasesBuffer(t *testing.T) {
	tr := arena.NewTracking(arena.Heap{})
	v := newI32(t, nil, 2, &Options{Arena: tr}, 1, 2, 3, 4, 5)

	require.Equal(t, 1, tr.LiveBlocks(), "old blocks released after each growth")
	require.NoError(t, v.Dispose())
	require.Zero(t, tr.LiveBlocks())
	require.Zero(t, tr.Stats().LiveBytes)
}

func TestDispose_UseAfterDisposePanics(t *testing.T) {
	v := newI32(t, nil, 2, nil, 1)
	require.NoError(t, v.Dispose())
	require.Zero(t, v.Len())

	testutil.RequirePanicsIs(t, ErrDisposed, func() { v.At(0) })
	testutil.RequirePanicsIs(t, ErrDisposed, func() { _ = v.Append(testutil.I32(1)) })
	testutil.RequirePanicsIs(t, ErrDisposed, func() { v.Sort(compare.I32LE) })
	testutil.RequirePanicsIs(t, ErrDisposed, func() { _ = v.Dispose() })
}
