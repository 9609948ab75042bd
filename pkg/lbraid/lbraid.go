// Package lbraid implements the linear braid reconstructor of
// spec.md §4.F: given the sheet positions of a fibre polynomial at the
// two ends of a segment, it recovers the braid swept out by the
// straight-line homotopy between them. Every parameter t at which two
// sheets' real parts cross is enumerated exactly (the sheets carry
// exact rational coordinates, so t itself is an exact rational and
// simultaneous crossings are detected by exact equality, not an
// epsilon); crossings are processed in increasing t, each contiguous
// colliding block contributing one star braid (pkg/braid.StarBraid),
// signed by the interpolated imaginary part of its members at that t.
package lbraid

import (
	"math/big"
	"sort"

	"github.com/zvk/vankampen/pkg/braid"
	"github.com/zvk/vankampen/pkg/cnum"
)

func ratOrZero(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return r
}

func reOf(z cnum.Rat) *big.Rat { return ratOrZero(z.Re) }
func imOf(z cnum.Rat) *big.Rat { return ratOrZero(z.Im) }

// affineAt returns (1-t)*a + t*b, exactly.
func affineAt(a, b, t *big.Rat) *big.Rat {
	one := big.NewRat(1, 1)
	s := new(big.Rat).Sub(one, t)
	out := new(big.Rat).Mul(s, a)
	out.Add(out, new(big.Rat).Mul(t, b))
	return out
}

// orderByRealPart returns the indices of v sorted by increasing real
// part (imaginary part as tie-break), failing with
// ErrSingularMonodromy if two sheets coincide exactly.
func orderByRealPart(v []cnum.Rat) ([]int, error) {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return less(v[idx[i]], v[idx[j]]) })
	for i := 1; i < len(idx); i++ {
		a, b := v[idx[i-1]], v[idx[i]]
		if reOf(a).Cmp(reOf(b)) == 0 && imOf(a).Cmp(imOf(b)) == 0 {
			return nil, ErrSingularMonodromy
		}
	}
	return idx, nil
}

func less(a, b cnum.Rat) bool {
	c := reOf(a).Cmp(reOf(b))
	if c != 0 {
		return c < 0
	}
	return imOf(a).Cmp(imOf(b)) < 0
}

// crossing records one root t_ij of spec.md §4.F's crossing formula,
// the exact parameter at which sheets i and j swap real-part order.
type crossing struct {
	t    *big.Rat
	i, j int
}

// crossingTime computes t_ij = (Re v1[j] - Re v1[i]) / ((Re v2[i] -
// Re v2[j]) - (Re v1[i] - Re v1[j])), keeping it only when it lies
// strictly in (0,1) and the pair's real-part order actually swaps
// between v1 and v2 (spec.md §4.F).
func crossingTime(v1, v2 []cnum.Rat, i, j int) (*big.Rat, bool) {
	ai, aj := reOf(v1[i]), reOf(v1[j])
	bi, bj := reOf(v2[i]), reOf(v2[j])
	startDiff := new(big.Rat).Sub(ai, aj)
	endDiff := new(big.Rat).Sub(bi, bj)
	if startDiff.Sign() == 0 || endDiff.Sign() == 0 || (startDiff.Sign() > 0) == (endDiff.Sign() > 0) {
		return nil, false
	}
	num := new(big.Rat).Sub(aj, ai)
	denom := new(big.Rat).Sub(endDiff, startDiff)
	if denom.Sign() == 0 {
		return nil, false
	}
	t := new(big.Rat).Quo(num, denom)
	zero, one := new(big.Rat), big.NewRat(1, 1)
	if t.Cmp(zero) <= 0 || t.Cmp(one) >= 0 {
		return nil, false
	}
	return t, true
}

// blockUnionFind groups the sheets touched by a t-group's crossings
// into the contiguous colliding blocks spec.md §4.F describes.
type blockUnionFind struct{ parent map[int]int }

func newBlockUnionFind() *blockUnionFind { return &blockUnionFind{parent: map[int]int{}} }

func (u *blockUnionFind) find(x int) int {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
	}
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *blockUnionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// LBraidToWord recovers the braid word swept out by n sheets whose
// positions at the start and end of a segment are v1 and v2
// respectively (spec.md §4.F): it enumerates every crossing time t_ij,
// processes them in increasing order, and realizes each contiguous
// colliding block with a star braid signed by the block's imaginary
// part order interpolated at the crossing time.
func LBraidToWord(v1, v2 []cnum.Rat, bn braid.Monoid) (braid.Word, error) {
	n := len(v1)
	if len(v2) != n {
		return nil, ErrStrandCountMismatch
	}
	if n == 0 {
		return bn.Identity(), nil
	}
	start, err := orderByRealPart(v1)
	if err != nil {
		tracer().Debugf("lbraid: start snapshot singular: %v", err)
		return nil, err
	}
	end, err := orderByRealPart(v2)
	if err != nil {
		tracer().Debugf("lbraid: end snapshot singular: %v", err)
		return nil, err
	}

	var crossings []crossing
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if t, ok := crossingTime(v1, v2, i, j); ok {
				crossings = append(crossings, crossing{t: t, i: i, j: j})
			}
		}
	}
	sort.SliceStable(crossings, func(a, b int) bool { return crossings[a].t.Cmp(crossings[b].t) < 0 })

	cur := append([]int(nil), start...)
	posOf := make([]int, n)
	for pos, sheet := range cur {
		posOf[sheet] = pos
	}

	word := bn.Identity()
	for k := 0; k < len(crossings); {
		l := k
		uf := newBlockUnionFind()
		for l < len(crossings) && crossings[l].t.Cmp(crossings[k].t) == 0 {
			uf.union(crossings[l].i, crossings[l].j)
			l++
		}
		t := crossings[k].t

		groups := map[int][]int{}
		for m := k; m < l; m++ {
			for _, s := range []int{crossings[m].i, crossings[m].j} {
				root := uf.find(s)
				present := false
				for _, existing := range groups[root] {
					if existing == s {
						present = true
						break
					}
				}
				if !present {
					groups[root] = append(groups[root], s)
				}
			}
		}

		for _, sheets := range groups {
			positions := make([]int, len(sheets))
			for idx, s := range sheets {
				positions[idx] = posOf[s]
			}
			sort.Ints(positions)
			p, q := positions[0], positions[len(positions)-1]
			if q-p+1 != len(positions) {
				return nil, ErrSingularMonodromy
			}
			blockSheets := make([]int, len(positions))
			for idx, pos := range positions {
				blockSheets[idx] = cur[pos]
			}
			imAt := func(sheet int) *big.Rat {
				return affineAt(imOf(v1[sheet]), imOf(v2[sheet]), t)
			}
			strands := make([]int, len(positions))
			for idx, pos := range positions {
				strands[idx] = pos + 1
			}
			blockWord, err := bn.StarBraid(strands, func(a, b int) bool {
				return imAt(blockSheets[a]).Cmp(imAt(blockSheets[b])) < 0
			})
			if err != nil {
				return nil, err
			}
			word = word.Mul(blockWord)

			for lo, hi := 0, len(positions)-1; lo < hi; lo, hi = lo+1, hi-1 {
				cur[positions[lo]], cur[positions[hi]] = cur[positions[hi]], cur[positions[lo]]
			}
			for _, pos := range positions {
				posOf[cur[pos]] = pos
			}
		}
		k = l
	}

	for pos := range cur {
		if cur[pos] != end[pos] {
			return nil, ErrSingularMonodromy
		}
	}
	return word, nil
}
