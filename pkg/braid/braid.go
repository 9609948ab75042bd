// Package braid implements the braid monoid of spec.md's data model
// ("Braid monoid Bₙ"): generators, free cancellation, inversion and
// star braids, the algebraic object the linear braid reconstructor
// (pkg/lbraid) and the monodromy followers (pkg/monodromy) both
// produce words in.
package braid

import (
	"sort"

	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Monoid models B_n on n strands, generated by σ_1,...,σ_{n-1}
// (encoded as positive ints) and their inverses (negative ints).
type Monoid struct {
	Strands int
}

// Word is a signed sequence of generator indices: positive i means
// σ_i, negative i means σ_i^{-1}. 0 never occurs.
type Word []int

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Generator returns the length-one word for generator i (or its
// inverse, if i is negative), or nil if i is out of range.
func (m Monoid) Generator(i int) Word {
	if i == 0 || abs(i) >= m.Strands {
		tracer().Errorf("braid: generator %d out of range for %d strands", i, m.Strands)
		return nil
	}
	return Word{i}
}

// Identity returns the empty word.
func (m Monoid) Identity() Word { return Word{} }

// Mul returns w·other, freely cancelling adjacent generator/inverse
// pairs (σ_i σ_i^{-1} = 1) via a stack, the same fold-as-you-go
// pattern corelang's expression stack uses during evaluation.
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

// Inverse returns w^{-1}: the reversed word with every generator
// negated.
func (w Word) Inverse() Word {
	out := make(Word, len(w))
	for i, g := range w {
		out[len(w)-1-i] = -g
	}
	return out
}

// Equal reports whether two words are identical sequences (not
// whether they represent the same braid — that equivalence needs the
// full braid relations, which this monoid does not attempt to
// normalize beyond free cancellation).
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

// StarBraid returns the braid Δ_k realizing the full reversal of a
// contiguous block of strand positions (spec.md §4.F/§4.G, "star
// braids": the braid several sheets contribute when they collide at a
// single critical parameter). strands gives the block's 1-indexed
// strand positions (order irrelevant, sorted internally); the
// reversal is decomposed into adjacent transpositions by repeatedly
// bubbling each newly-considered strand to the front of the block
// built so far.
//
// front is consulted once per elementary transposition, identifying
// the two strands by their rank (0-indexed position within the block
// sorted in increasing strand order) at the moment they
// become adjacent: front(a, b) reports whether the strand ranked a
// should pass in front of (receive the positive generator over) the
// one ranked b. A nil front always answers true, producing the
// canonical all-positive shape (lowest-ranked strand passes in front
// of everyone).
func (m Monoid) StarBraid(strands []int, front func(a, b int) bool) (Word, error) {
	if len(strands) == 0 {
		tracer().Errorf("braid: StarBraid called with no strands")
		return nil, ErrEmptyBlock
	}
	sorted := append([]int(nil), strands...)
	sort.Ints(sorted)
	k := len(sorted)
	rank := make([]int, k)
	for i := range rank {
		rank[i] = i
	}
	w := m.Identity()
	for i := 1; i < k; i++ {
		for p := i - 1; p >= 0; p-- {
			gen := sorted[0] + p
			a, b := rank[p], rank[p+1]
			if front == nil || front(a, b) {
				w = w.Mul(Word{gen})
			} else {
				w = w.Mul(Word{-gen})
			}
			rank[p], rank[p+1] = rank[p+1], rank[p]
		}
	}
	return w, nil
}
