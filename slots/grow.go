package slots

import (
	"fmt"

	"github.com/joshuapare/vectorkit/internal/buf"
)

// reserve ensures there is a free slot at index count.
//
// When the buffer has to move, the previous block is returned instead of
// being freed so the caller can finish copying (the source element may live
// in that block) before handing it to release. On error nothing changes.
func (v *Vector) reserve() ([]byte, error) {
	if v.count < v.capacity {
		return nil, nil
	}

	newCap, ok := buf.AddOverflowSafe(v.capacity, v.growBy)
	if !ok {
		return nil, fmt.Errorf("%w: capacity overflow at %d slots", ErrGrowFail, v.capacity)
	}
	if v.maxSlots > 0 && newCap > v.maxSlots {
		if v.capacity >= v.maxSlots {
			return nil, fmt.Errorf("%w: MaxSlots %d reached", ErrGrowFail, v.maxSlots)
		}
		newCap = v.maxSlots
	}

	n, err := buf.SlotBytes(newCap, v.elemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGrowFail, err)
	}
	data, err := v.arena.Alloc(n)
	if err != nil {
		v.logger().Warn("slots: grow allocation failed",
			"arena", v.arena.Name(), "bytes", n, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrGrowFail, err)
	}

	copy(data, v.data[:v.count*v.elemSize])
	old := v.data

	v.logger().Debug("slots: grow",
		"arena", v.arena.Name(), "elem_size", v.elemSize, "from", v.capacity, "to", newCap)

	v.data = data
	v.capacity = newCap
	return old, nil
}

// release hands a block displaced by reserve back to the arena.
// The vector is already consistent at this point, so a failure is only logged.
func (v *Vector) release(old []byte) {
	if old == nil {
		return
	}
	if err := v.arena.Free(old); err != nil {
		v.logger().Warn("slots: release old buffer", "arena", v.arena.Name(), "error", err)
	}
}
