// Package compare provides ready-made comparators for vector sorting and searching.
//
// Typed comparators have the shape func(a, b *T) int and plug into
// vector.Vector[T].Sort and Search:
//
//	v.Sort(compare.Ordered[int]())
//	v.Sort(compare.Reverse(compare.Ordered[int]()))
//	names.Sort(compare.Collated(language.German))
//
// Raw comparators have the shape func(a, b []byte) int and order fixed-size
// little-endian records stored in a slots.Vector:
//
//	v.Sort(compare.U32LE)
//	idx := v.Search(key, compare.U32LE, 0, true)
//
// Comparators returned by Collated and Folded hold per-comparator state and
// are not safe for concurrent use; create one per goroutine.
package compare
