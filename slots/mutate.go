package slots

// Replace overwrites the element at position with elem, after passing the old
// element to the FreeFunc. len(elem) must equal ElemSize.
func (v *Vector) Replace(elem []byte, position int) {
	v.checkLive()
	v.checkElem(elem)
	v.checkPos(position, "replace")

	dst := v.slot(position)
	if v.free != nil {
		v.free(dst)
	}
	copy(dst, elem)
}

// Append copies elem into a new slot at the end, growing the buffer when full.
// len(elem) must equal ElemSize. elem may be a view into this vector.
func (v *Vector) Append(elem []byte) error {
	v.checkLive()
	v.checkElem(elem)

	old, err := v.reserve()
	if err != nil {
		return err
	}
	copy(v.slot(v.count), elem)
	v.count++
	v.release(old)
	return nil
}

// Insert copies elem into position, shifting the elements at and after it up
// by one slot. position == Len() appends. Shifted elements are moved, not
// freed. len(elem) must equal ElemSize. elem may be a view into this vector.
func (v *Vector) Insert(elem []byte, position int) error {
	v.checkLive()
	v.checkElem(elem)
	if position == v.count {
		return v.Append(elem)
	}
	v.checkPos(position, "insert")

	// Stage elem: it may alias a slot the shift is about to move.
	scratch := getScratch(v.elemSize)
	defer putScratch(scratch)
	copy(*scratch, elem)

	old, err := v.reserve()
	if err != nil {
		return err
	}

	es := v.elemSize
	off := position * es
	end := v.count * es
	copy(v.data[off+es:end+es], v.data[off:end])
	copy(v.data[off:off+es], *scratch)
	v.count++
	v.release(old)
	return nil
}

// Delete passes the element at position to the FreeFunc and shifts the
// elements after it down by one slot. Capacity is unchanged.
func (v *Vector) Delete(position int) {
	v.checkLive()
	v.checkPos(position, "delete")

	if v.free != nil {
		v.free(v.slot(position))
	}

	es := v.elemSize
	off := position * es
	end := v.count * es
	copy(v.data[off:end-es], v.data[off+es:end])
	v.count--
	clear(v.data[end-es : end])
}
