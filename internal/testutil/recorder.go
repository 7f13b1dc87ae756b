package testutil

import "github.com/joshuapare/vectorkit/internal/buf"

// SlotRecorder records every slot handed to a destructor, decoded as int32.
//
// Example:
//
//	var rec testutil.SlotRecorder
//	v, err := slots.New(testutil.I32Size, rec.Free, 2, nil)
type SlotRecorder struct {
	Freed []int32
}

// Free records elem. Its method value satisfies slots.FreeFunc.
func (r *SlotRecorder) Free(elem []byte) {
	r.Freed = append(r.Freed, buf.I32LE(elem))
}

// Reset forgets recorded calls.
func (r *SlotRecorder) Reset() {
	r.Freed = r.Freed[:0]
}

// Recorder records every element handed to a typed destructor.
type Recorder[T any] struct {
	Freed []T
}

// Free records *elem. Its method value satisfies vector.Destructor[T].
func (r *Recorder[T]) Free(elem *T) {
	r.Freed = append(r.Freed, *elem)
}

// Reset forgets recorded calls.
func (r *Recorder[T]) Reset() {
	r.Freed = r.Freed[:0]
}
