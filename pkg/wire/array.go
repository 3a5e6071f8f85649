package wire

// ReadArray decodes exactly count elements. Every element occupies at least
// one byte, so a count larger than the remaining input fails immediately
// instead of allocating for it. Empty arrays decode as nil.
func ReadArray[T any](r *Reader, count uint64, decode func(r *Reader) T) []T {
	if r.Err() != nil || count == 0 {
		return nil
	}
	if count > uint64(r.Remaining()) {
		r.Failf(r.short, "%d elements cannot fit in %d remaining bytes", count, r.Remaining())
		return nil
	}
	items := make([]T, 0, count)
	for i := uint64(0); i < count; i++ {
		v := decode(r)
		if r.Err() != nil {
			return nil
		}
		items = append(items, v)
	}
	return items
}

// ReadPrefixedArray reads a count field of the given width followed by that
// many elements.
func ReadPrefixedArray[T any](r *Reader, width Width, decode func(r *Reader) T) []T {
	count := r.Count(width)
	return ReadArray(r, count, decode)
}

// ReadFillArray decodes elements until exactly budget bytes are consumed. An
// element that would run past the budget fails with ErrArrayBudgetOverrun.
func ReadFillArray[T any](r *Reader, budget int, decode func(r *Reader) T) []T {
	sub := r.Region(budget, ErrArrayBudgetOverrun)
	var items []T
	for sub.Err() == nil && sub.Remaining() > 0 {
		before := sub.Consumed()
		v := decode(sub)
		if sub.Err() != nil {
			break
		}
		if sub.Consumed() == before {
			sub.Failf(ErrArrayBudgetOverrun, "element consumed no bytes")
			break
		}
		items = append(items, v)
	}
	r.Join(sub)
	if r.Err() != nil {
		return nil
	}
	return items
}

// ReadFillRest decodes elements until the reader is exhausted.
func ReadFillRest[T any](r *Reader, decode func(r *Reader) T) []T {
	return ReadFillArray(r, r.Remaining(), decode)
}

// WriteArray serializes every element in order with no count.
func WriteArray[T Serializer](w *Writer, items []T) {
	for _, item := range items {
		item.Serialize(w)
	}
}

// WritePrefixedArray writes len(items) as a count of the given width followed
// by the elements. The count is never stored separately from the elements.
func WritePrefixedArray[T Serializer](w *Writer, width Width, items []T) {
	w.Count(width, len(items))
	WriteArray(w, items)
}

// ArraySize sums the sizes of items.
func ArraySize[T Serializer](items []T) int {
	size := 0
	for _, item := range items {
		size += item.Size()
	}
	return size
}
