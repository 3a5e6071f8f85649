package wire

import "fmt"

// Union maps the tag of a discriminated union to the decoder of the branch
// that follows it. Tables are built once during package initialization and
// never modified afterwards, so they are safe for concurrent use.
type Union[K comparable, V any] struct {
	name     string
	branches map[K]DecodeFunc[V]
}

// NewUnion builds a dispatch table. The branches map is copied.
func NewUnion[K comparable, V any](name string, branches map[K]DecodeFunc[V]) *Union[K, V] {
	u := &Union[K, V]{
		name:     name,
		branches: make(map[K]DecodeFunc[V], len(branches)),
	}
	for tag, f := range branches {
		u.branches[tag] = f
	}
	return u
}

// Has reports whether tag selects a branch.
func (u *Union[K, V]) Has(tag K) bool {
	_, ok := u.branches[tag]
	return ok
}

// Len returns the number of branches.
func (u *Union[K, V]) Len() int {
	return len(u.branches)
}

// Decode decodes the branch selected by tag, failing with
// ErrUnrecognizedVariant for tags without a branch.
func (u *Union[K, V]) Decode(r *Reader, tag K) V {
	f, ok := u.branches[tag]
	if !ok {
		r.Failf(ErrUnrecognizedVariant, "%s has no branch for tag %v", u.name, tag)
		var zero V
		return zero
	}
	return f(r)
}

// As returns the active branch v as a T. Asking for any other branch fails
// with ErrWrongVariant; a missing branch fails with ErrNoActiveVariant.
func As[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, NewError(ErrNoActiveVariant, -1, "requested %s", typeName[T]())
	}
	t, ok := v.(T)
	if !ok {
		return zero, NewError(ErrWrongVariant, -1, "active branch is %T, requested %s", v, typeName[T]())
	}
	return t, nil
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
