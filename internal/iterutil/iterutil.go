package iterutil

import "iter"

// Iterator is a forward-only cursor over a finite collection.
//
// HasNext reports whether another element is available. Next returns the
// next element and advances the cursor; calling Next when HasNext is false
// is a programming error and panics for the iterators in this package.
type Iterator[T any] interface {
	HasNext() bool
	Next() T
}

// SliceIterator iterates over a snapshot of a slice.
type SliceIterator[T any] struct {
	items []T
	pos   int
}

// FromSlice returns an iterator over the elements of s in index order.
//
// The slice header is captured when the iterator is created, so elements
// appended to the source slice afterwards are not visited.
func FromSlice[T any](s []T) *SliceIterator[T] {
	return &SliceIterator[T]{items: s}
}

// HasNext reports whether Next will return another element.
func (it *SliceIterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

// Next returns the current element and advances the iterator.
func (it *SliceIterator[T]) Next() T {
	if !it.HasNext() {
		panic("iterutil: Next called on exhausted iterator")
	}
	v := it.items[it.pos]
	it.pos++
	return v
}

// ListFromIterator creates a slice filled with the values from an Iterator.
//
// The returned slice holds exactly the yielded elements, in yield order,
// and the iterator is exhausted afterwards. Draining an already exhausted
// iterator returns an empty, non-nil slice. The iterator must be finite.
func ListFromIterator[T any](it Iterator[T]) []T {
	res := []T{}
	for it.HasNext() {
		res = append(res, it.Next())
	}
	return res
}

// Seq adapts an Iterator to a single-use iter.Seq.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// ListFromSeq2 drains a sequence whose elements may fail to materialize.
//
// Collection stops at the first non-nil error, which is returned unchanged
// together with a nil slice.
func ListFromSeq2[T any](seq iter.Seq2[T, error]) ([]T, error) {
	res := []T{}
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}
