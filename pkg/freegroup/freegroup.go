// Package freegroup implements the free group Fₙ of spec.md's data
// model: words, free reduction, and the Hurwitz action of the braid
// group Bₙ on Fₙ's generating tuples that pkg/hurwitz uses to turn a
// braid monodromy presentation into a Van Kampen presentation.
package freegroup

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"

	"github.com/zvk/vankampen/pkg/braid"
)

// Group models the free group of rank n on generators x_1,...,x_n.
type Group struct {
	Rank int
}

// Word is a signed sequence of generator indices: positive i means
// x_i, negative i means x_i^{-1}.
type Word []int

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Generator returns the length-one word for generator i, or nil if i
// is out of range.
func (g Group) Generator(i int) Word {
	if i == 0 || abs(i) > g.Rank {
		tracer().Errorf("freegroup: generator %d out of range for rank %d", i, g.Rank)
		return nil
	}
	return Word{i}
}

// Identity returns the empty word.
func (g Group) Identity() Word { return Word{} }

// Mul returns w·other, freely reduced: adjacent x_i x_i^{-1} pairs
// cancel, via the same stack-fold pattern pkg/braid uses for its own
// words.
func (w Word) Mul(other Word) Word {
	stack := linkedliststack.New()
	push := func(g int) {
		if top, ok := stack.Peek(); ok && top.(int) == -g {
			stack.Pop()
			return
		}
		stack.Push(g)
	}
	for _, g := range w {
		push(g)
	}
	for _, g := range other {
		push(g)
	}
	out := make(Word, stack.Size())
	for i := len(out) - 1; i >= 0; i-- {
		v, _ := stack.Pop()
		out[i] = v.(int)
	}
	return out
}

// Inverse returns w^{-1}.
func (w Word) Inverse() Word {
	out := make(Word, len(w))
	for i, g := range w {
		out[len(w)-1-i] = -g
	}
	return out
}

// Equal reports literal (already-reduced) word equality.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}
	return true
}

// Hurwitz applies braid word b to the generating tuple w, one braid
// generator at a time, via the standard Hurwitz action:
//
//	σ_i  : (..., w_i, w_{i+1}, ...) ↦ (..., w_i w_{i+1} w_i^{-1}, w_i, ...)
//	σ_i⁻¹: (..., w_i, w_{i+1}, ...) ↦ (..., w_{i+1}, w_{i+1}^{-1} w_i w_{i+1}, ...)
//
// len(w) must equal g.Rank; b's generators must reference adjacent
// strands within that tuple.
func (g Group) Hurwitz(b braid.Word, w []Word) ([]Word, error) {
	if len(w) != g.Rank {
		return nil, ErrWrongWordCount
	}
	out := make([]Word, len(w))
	copy(out, w)
	for _, s := range b {
		i := abs(s)
		if i < 1 || i >= len(out) {
			return nil, ErrBraidGeneratorOutOfRange
		}
		a, bNext := out[i-1], out[i]
		if s > 0 {
			out[i-1] = a.Mul(bNext).Mul(a.Inverse())
			out[i] = a
		} else {
			out[i-1] = bNext
			out[i] = bNext.Inverse().Mul(a).Mul(bNext)
		}
	}
	return out, nil
}
