package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracking_Accounting(t *testing.T) {
	tr := NewTracking(Heap{})

	a, err := tr.Alloc(64)
	require.NoError(t, err)
	b, err := tr.Alloc(128)
	require.NoError(t, err)

	st := tr.Stats()
	require.Equal(t, 2, st.Allocs)
	require.EqualValues(t, 192, st.LiveBytes)
	require.EqualValues(t, 192, st.PeakBytes)
	require.Equal(t, 2, tr.LiveBlocks())

	require.NoError(t, tr.Free(a))
	st = tr.Stats()
	require.Equal(t, 1, st.Frees)
	require.EqualValues(t, 128, st.LiveBytes)
	require.EqualValues(t, 192, st.PeakBytes, "peak must not drop on free")

	require.NoError(t, tr.Free(b))
	require.Zero(t, tr.LiveBlocks())
	require.Zero(t, tr.Stats().LiveBytes)
}

func TestTracking_RejectsForeignAndDoubleFree(t *testing.T) {
	tr := NewTracking(Heap{})

	require.ErrorIs(t, tr.Free(make([]byte, 8)), ErrForeignBlock)

	b, err := tr.Alloc(8)
	require.NoError(t, err)
	require.NoError(t, tr.Free(b))
	require.ErrorIs(t, tr.Free(b), ErrForeignBlock)
}

func TestTracking_EmptyBlocks(t *testing.T) {
	tr := NewTracking(Heap{})

	b, err := tr.Alloc(0)
	require.NoError(t, err)
	require.NoError(t, tr.Free(b))

	st := tr.Stats()
	require.Equal(t, 1, st.Allocs)
	require.Zero(t, st.Frees)
	require.Zero(t, tr.LiveBlocks())
}

func TestTracking_PropagatesInnerError(t *testing.T) {
	tr := NewTracking(Heap{})
	_, err := tr.Alloc(-4)
	require.ErrorIs(t, err, ErrNegativeSize)
	require.Zero(t, tr.Stats().Allocs)
}

func TestTracking_Name(t *testing.T) {
	require.Equal(t, "tracking(heap)", NewTracking(Heap{}).Name())
}
