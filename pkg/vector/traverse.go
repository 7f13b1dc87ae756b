package vector

import (
	"fmt"
	"sort"
)

// Sort orders the live elements in place by cmp. The sort is not stable.
func (v *Vector[T]) Sort(cmp Compare[T]) {
	v.checkLive()
	if cmp == nil {
		panic(fmt.Errorf("%w: sort comparator", ErrNilFunc))
	}
	sort.Sort(&sorter[T]{elems: v.elems[:v.count], cmp: cmp})
}

// Map calls fn on every live element in index order, passing aux through.
// fn may modify the element but must not add or remove elements.
func (v *Vector[T]) Map(fn Visitor[T], aux any) {
	v.checkLive()
	if fn == nil {
		panic(fmt.Errorf("%w: map function", ErrNilFunc))
	}
	for i := 0; i < v.count; i++ {
		fn(&v.elems[i], aux)
	}
}

// Search looks for an element e with cmp(&key, e) == 0 at or after start and
// returns its index, or NotFound.
//
// With sorted set, [start, Len()) must already be ordered by cmp and a binary
// search returns any one of several equal elements. Otherwise the lowest
// matching index is returned. An empty vector always yields NotFound.
func (v *Vector[T]) Search(key T, cmp Compare[T], start int, sorted bool) int {
	v.checkLive()
	if cmp == nil {
		panic(fmt.Errorf("%w: search comparator", ErrNilFunc))
	}
	if v.count == 0 {
		return NotFound
	}
	v.checkPos(start, "search start")

	if !sorted {
		for i := start; i < v.count; i++ {
			if cmp(&key, &v.elems[i]) == 0 {
				return i
			}
		}
		return NotFound
	}

	lo, hi := start, v.count
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp(&key, &v.elems[mid]); {
		case c == 0:
			return mid
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return NotFound
}

type sorter[T any] struct {
	elems []T
	cmp   Compare[T]
}

func (s *sorter[T]) Len() int           { return len(s.elems) }
func (s *sorter[T]) Less(i, j int) bool { return s.cmp(&s.elems[i], &s.elems[j]) < 0 }
func (s *sorter[T]) Swap(i, j int)      { s.elems[i], s.elems[j] = s.elems[j], s.elems[i] }
