package slots

import (
	"fmt"
	"sort"
)

// Sort orders the live elements in place by cmp. The sort is not stable.
// Views obtained before the call no longer refer to the same elements.
func (v *Vector) Sort(cmp CompareFunc) {
	v.checkLive()
	if cmp == nil {
		panic(fmt.Errorf("%w: sort comparator", ErrNilFunc))
	}
	if v.count < 2 {
		return
	}

	scratch := getScratch(v.elemSize)
	defer putScratch(scratch)
	sort.Sort(&slotSorter{v: v, cmp: cmp, tmp: *scratch})
}

// Map calls fn on every live element in index order, passing aux through.
// fn may modify the element but must not add or remove elements.
func (v *Vector) Map(fn MapFunc, aux any) {
	v.checkLive()
	if fn == nil {
		panic(fmt.Errorf("%w: map function", ErrNilFunc))
	}
	for i := 0; i < v.count; i++ {
		fn(v.slot(i), aux)
	}
}

// Search looks for an element e with cmp(key, e) == 0 among the elements at
// start and after. It returns the element's index or NotFound.
//
// When sorted is true the range [start, Len()) must already be ordered by
// cmp; a binary search is used and any one of several equal elements may be
// returned. Otherwise the range is scanned linearly and the lowest matching
// index is returned. An empty vector always yields NotFound.
func (v *Vector) Search(key []byte, cmp CompareFunc, start int, sorted bool) int {
	v.checkLive()
	if cmp == nil {
		panic(fmt.Errorf("%w: search comparator", ErrNilFunc))
	}
	if v.count == 0 {
		return NotFound
	}
	v.checkPos(start, "search start")

	if sorted {
		return v.binarySearch(key, cmp, start)
	}
	for i := start; i < v.count; i++ {
		if cmp(key, v.slot(i)) == 0 {
			return i
		}
	}
	return NotFound
}

func (v *Vector) binarySearch(key []byte, cmp CompareFunc, start int) int {
	lo, hi := start, v.count
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp(key, v.slot(mid)); {
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

// slotSorter adapts a Vector to sort.Interface, swapping slots through tmp.
type slotSorter struct {
	v   *Vector
	cmp CompareFunc
	tmp []byte
}

func (s *slotSorter) Len() int { return s.v.count }

func (s *slotSorter) Less(i, j int) bool {
	return s.cmp(s.v.slot(i), s.v.slot(j)) < 0
}

func (s *slotSorter) Swap(i, j int) {
	a, b := s.v.slot(i), s.v.slot(j)
	copy(s.tmp, a)
	copy(a, b)
	copy(b, s.tmp)
}
