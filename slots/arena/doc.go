// Package arena provides the backing storage for slot vectors.
//
// # Overview
//
// A slot vector never resizes memory in place. When it needs more slots it
// asks its Arena for a larger block, copies the live bytes across and hands
// the old block back with Free. An Arena therefore only needs two
// operations:
//
//   - Alloc(n): return n zeroed bytes owned by the caller
//   - Free(b): release a block previously returned by Alloc
//
// # Implementations
//
// Heap: blocks come from the Go heap. Free is a no-op and the garbage
// collector reclaims the memory once the vector drops its reference.
//
// Mmap: blocks are anonymous private mappings rounded up to the page size.
// The memory is invisible to the garbage collector, so it must only hold
// plain bytes (never Go pointers). Free unmaps immediately. On platforms
// without mmap, NewMmap returns a Heap.
//
// Tracking: a wrapper that counts allocations, frees, live and peak bytes,
// and rejects blocks it did not hand out.
//
// Instrumented: a wrapper that exports the same activity as Prometheus
// counters and a live_bytes gauge, labelled with the wrapped arena's name.
//
// # Usage Example
//
//	a := arena.NewTracking(arena.NewMmap())
//	v, err := slots.New(8, nil, 64, &slots.Options{Arena: a})
//	if err != nil {
//	    return err
//	}
//	defer v.Dispose()
//
// # Thread Safety
//
// Heap, Mmap and Instrumented are safe for concurrent use. Tracking is not;
// give each vector its own wrapper or synchronize externally.
package arena
