package slots

import "sync"

// scratchPool holds element-sized staging buffers for Insert and Sort swaps.
var scratchPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 256)
		return &buf
	},
}

// getScratch returns a pooled buffer of exactly n bytes.
func getScratch(n int) *[]byte {
	buf, ok := scratchPool.Get().(*[]byte)
	if !ok {
		panic("scratchPool returned unexpected type")
	}
	if cap(*buf) < n {
		*buf = make([]byte, n)
	}
	*buf = (*buf)[:n]
	return buf
}

// putScratch returns a buffer to the pool.
// Buffers larger than 64 KB are dropped so one huge element does not pin memory.
func putScratch(buf *[]byte) {
	if buf == nil || cap(*buf) > 64*1024 {
		return
	}
	scratchPool.Put(buf)
}
