package series

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/opprof/errs"
	"github.com/arloliu/opprof/format"
)

func TestStore_SetAndValue(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.Set("slow_pow", 10, 10, format.KindCount))

	pt, ok := store.Value("slow_pow", 10)
	require.True(t, ok)
	require.Equal(t, Point{Size: 10, Value: 10, Kind: format.KindCount}, pt)

	_, ok = store.Value("slow_pow", 11)
	require.False(t, ok, "unmeasured size is absent")

	_, ok = store.Value("fast_pow", 10)
	require.False(t, ok, "unknown series is absent")
}

func TestStore_SetOverwrites(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.Set("fact", 1000, 7, format.KindCount))
	require.NoError(t, store.Set("fact", 1000, 3, format.KindDuration))

	pt, ok := store.Value("fact", 1000)
	require.True(t, ok)
	require.Equal(t, int64(3), pt.Value)
	require.Equal(t, format.KindDuration, pt.Kind)
	require.Equal(t, 1, store.Len())
	require.Len(t, store.All()[0].Points, 1)
}

func TestStore_InvalidKey(t *testing.T) {
	store := NewStore()

	require.ErrorIs(t, store.Set("", 1, 1, format.KindCount), errs.ErrInvalidSeriesName)
	require.ErrorIs(t, store.Set("s", -1, 1, format.KindCount), errs.ErrInvalidSize)

	_, err := store.Add("s", -5, 1, format.KindCount)
	require.ErrorIs(t, err, errs.ErrInvalidSize)
	require.Equal(t, 0, store.Len())
}

func TestStore_Add(t *testing.T) {
	store := NewStore()

	total, err := store.Add("fast_pow", 8, 1, format.KindCount)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)

	total, err = store.Add("fast_pow", 8, 2, format.KindCount)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)

	pt, ok := store.Value("fast_pow", 8)
	require.True(t, ok)
	require.Equal(t, int64(3), pt.Value)
}

func TestStore_Ordering(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.Set("b", 30, 3, format.KindCount))
	require.NoError(t, store.Set("a", 5, 1, format.KindCount))
	require.NoError(t, store.Set("b", 10, 1, format.KindCount))
	require.NoError(t, store.Set("b", 20, 2, format.KindCount))

	require.Equal(t, []string{"b", "a"}, store.Names())

	all := store.All()
	require.Len(t, all, 2)
	require.Equal(t, "b", all[0].Name)
	require.Equal(t, []int{10, 20, 30}, sizes(all[0].Points))
	require.Equal(t, "a", all[1].Name)
	require.Equal(t, []int{5}, sizes(all[1].Points))
}

func TestStore_AllIsCopy(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Set("s", 1, 1, format.KindCount))

	all := store.All()
	all[0].Points[0].Value = 99

	pt, _ := store.Value("s", 1)
	require.Equal(t, int64(1), pt.Value)
}

func TestStore_Reset(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Set("s", 1, 1, format.KindCount))
	require.Equal(t, 1, store.Len())

	store.Reset()

	require.Equal(t, 0, store.Len())
	require.Empty(t, store.Names())
	require.Empty(t, store.All())
	_, ok := store.Value("s", 1)
	require.False(t, ok)
}

func TestStore_ConcurrentAdd(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_, _ = store.Add("dup", 100, 1, format.KindCount)
			}
		}()
	}
	wg.Wait()

	pt, ok := store.Value("dup", 100)
	require.True(t, ok)
	require.Equal(t, int64(800), pt.Value)
}

func TestPoint_Duration(t *testing.T) {
	pt := Point{Size: 1, Value: int64(3 * time.Millisecond), Kind: format.KindDuration}
	require.Equal(t, 3*time.Millisecond, pt.Duration())
}

func sizes(pts []Point) []int {
	out := make([]int, len(pts))
	for i, pt := range pts {
		out[i] = pt.Size
	}

	return out
}

func BenchmarkStore_Set(b *testing.B) {
	store := NewStore()
	size := 0
	for b.Loop() {
		_ = store.Set("slow_pow", size%1000, int64(size), format.KindCount)
		size++
	}
}
