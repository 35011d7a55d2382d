package iterutil

import (
	"errors"
	"iter"
	"slices"
	"testing"
)

func TestListFromIterator(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"three elements", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"single element", []string{"a"}, []string{"a"}},
		{"empty", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ListFromIterator[string](FromSlice(tt.input))
			if !slices.Equal(got, tt.want) {
				t.Errorf("ListFromIterator() = %v, want %v", got, tt.want)
			}
			if got == nil {
				t.Error("ListFromIterator() should never return nil")
			}
		})
	}
}

func TestListFromIterator_ExhaustsIterator(t *testing.T) {
	it := FromSlice([]string{"a", "b", "c"})

	first := ListFromIterator[string](it)
	if !slices.Equal(first, []string{"a", "b", "c"}) {
		t.Fatalf("first drain = %v, want [a b c]", first)
	}

	if it.HasNext() {
		t.Error("iterator should be exhausted after draining")
	}

	second := ListFromIterator[string](it)
	if len(second) != 0 {
		t.Errorf("second drain = %v, want empty", second)
	}
}

func TestFromSlice_Snapshot(t *testing.T) {
	items := make([]int, 2, 8)
	items[0], items[1] = 1, 2
	it := FromSlice(items)
	items = append(items, 3)

	got := ListFromIterator[int](it)
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestSliceIterator_NextPanicsWhenExhausted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic from Next on exhausted iterator")
		}
	}()
	FromSlice([]int{}).Next()
}

func TestSeq(t *testing.T) {
	var got []int
	for v := range Seq[int](FromSlice([]int{1, 2, 3, 4})) {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestListFromSeq2(t *testing.T) {
	errBroken := errors.New("broken accessor")

	seq := func(failAt int) iter.Seq2[int, error] {
		return func(yield func(int, error) bool) {
			for i := range 4 {
				if i == failAt {
					yield(0, errBroken)
					return
				}
				if !yield(i, nil) {
					return
				}
			}
		}
	}

	t.Run("no error", func(t *testing.T) {
		got, err := ListFromSeq2(seq(-1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(got, []int{0, 1, 2, 3}) {
			t.Errorf("got %v, want [0 1 2 3]", got)
		}
	})

	t.Run("error propagates unchanged", func(t *testing.T) {
		got, err := ListFromSeq2(seq(2))
		if err != errBroken {
			t.Errorf("err = %v, want %v", err, errBroken)
		}
		if got != nil {
			t.Errorf("got %v, want nil on error", got)
		}
	})
}
