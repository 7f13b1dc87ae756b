package slots

import (
	"math/rand"
	"testing"

	"github.com/joshuapare/vectorkit/internal/testutil"
	"github.com/joshuapare/vectorkit/pkg/compare"
	"github.com/joshuapare/vectorkit/slots/arena"
)

var benchArenas = []struct {
	name string
	new  func() arena.Arena
}{
	{"heap", func() arena.Arena { return arena.Heap{} }},
	{"mmap", arena.NewMmap},
}

func BenchmarkAppend(b *testing.B) {
	rec := testutil.I32(42)
	for _, ba := range benchArenas {
		b.Run(ba.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v, err := New(testutil.I32Size, nil, 256, &Options{Arena: ba.new()})
				if err != nil {
					b.Fatal(err)
				}
				for j := 0; j < 10_000; j++ {
					if err := v.Append(rec); err != nil {
						b.Fatal(err)
					}
				}
				_ = v.Dispose()
			}
		})
	}
}

func BenchmarkInsertFront(b *testing.B) {
	rec := testutil.I32(7)
	for _, ba := range benchArenas {
		b.Run(ba.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v, err := New(testutil.I32Size, nil, 256, &Options{Arena: ba.new()})
				if err != nil {
					b.Fatal(err)
				}
				for j := 0; j < 2_000; j++ {
					if err := v.Insert(rec, 0); err != nil {
						b.Fatal(err)
					}
				}
				_ = v.Dispose()
			}
		})
	}
}

func BenchmarkSort(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	in := make([][]byte, 10_000)
	for i := range in {
		in[i] = testutil.I32(rng.Int31())
	}
	for _, ba := range benchArenas {
		b.Run(ba.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				v, err := New(testutil.I32Size, nil, len(in), &Options{Arena: ba.new()})
				if err != nil {
					b.Fatal(err)
				}
				for _, r := range in {
					_ = v.Append(r)
				}
				b.StartTimer()
				v.Sort(compare.I32LE)
				b.StopTimer()
				_ = v.Dispose()
				b.StartTimer()
			}
		})
	}
}

func BenchmarkSearchSorted(b *testing.B) {
	for _, ba := range benchArenas {
		b.Run(ba.name, func(b *testing.B) {
			v, err := New(testutil.I32Size, nil, 100_000, &Options{Arena: ba.new()})
			if err != nil {
				b.Fatal(err)
			}
			defer v.Dispose()
			for j := int32(0); j < 100_000; j++ {
				_ = v.Append(testutil.I32(j * 2))
			}
			key := testutil.I32(0)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(key, testutil.I32(int32(i%200_000)))
				_ = v.Search(key, compare.I32LE, 0, true)
			}
		})
	}
}
