package align

// Vector maps column indexes to values. Columns past the explicitly stored
// range read as the vector's default, so trailing columns inherit whatever
// was configured last.
type Vector[T any] struct {
	values []T
	def    T
}

// NewVector returns an empty Vector whose default is def.
func NewVector[T any](def T) Vector[T] {
	return Vector[T]{def: def}
}

// Get returns the value stored at column i, or the default if i lies past
// the stored range.
func (v *Vector[T]) Get(i int) T {
	if i < len(v.values) {
		return v.values[i]
	}
	return v.def
}

// Set stores x at column i. Growing the vector fills the gap with the
// default as it is at the time of the call.
func (v *Vector[T]) Set(i int, x T) {
	for len(v.values) <= i {
		v.values = append(v.values, v.def)
	}
	v.values[i] = x
}

// Push appends x and makes it the new default.
func (v *Vector[T]) Push(x T) {
	v.def = x
	v.values = append(v.values, x)
}

// Len returns the number of explicitly stored columns.
func (v *Vector[T]) Len() int { return len(v.values) }

// Default returns the value read for columns past the stored range.
func (v *Vector[T]) Default() T { return v.def }

// Clone returns an independent copy of v.
func (v *Vector[T]) Clone() Vector[T] {
	out := Vector[T]{def: v.def}
	if len(v.values) > 0 {
		out.values = make([]T, len(v.values))
		copy(out.values, v.values)
	}
	return out
}
