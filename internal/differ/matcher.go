package differ

import (
	"slices"

	"github.com/aleister1102/irdiff/internal/models"
)

// autoJunkMinLen is the right-hand length from which popular elements stop
// anchoring matches.
const autoJunkMinLen = 200

// Match is a run of Size equal elements starting at A on the left and B on the right.
type Match struct {
	A    int
	B    int
	Size int
}

// Matcher finds longest matching blocks between two sequences and derives an
// edit script from them. The zero value is not usable; use NewMatcher.
type Matcher[T comparable] struct {
	a, b     []T
	autoJunk bool

	b2j     map[T][]int
	popular map[T]struct{}

	blocks []Match
	ops    []models.Operation
}

// NewMatcher prepares a matcher for a (left) and b (right).
// With autoJunk set and len(b) >= 200, elements occurring in more than 1% of b
// are not used as anchors, though they can still be part of an equal run.
func NewMatcher[T comparable](a, b []T, autoJunk bool) *Matcher[T] {
	m := &Matcher[T]{a: a, b: b, autoJunk: autoJunk}
	m.indexRight()
	return m
}

func (m *Matcher[T]) indexRight() {
	m.b2j = make(map[T][]int)
	for j, elt := range m.b {
		m.b2j[elt] = append(m.b2j[elt], j)
	}

	m.popular = make(map[T]struct{})
	n := len(m.b)
	if !m.autoJunk || n < autoJunkMinLen {
		return
	}
	limit := n/100 + 1
	for elt, idxs := range m.b2j {
		if len(idxs) > limit {
			m.popular[elt] = struct{}{}
		}
	}
	for elt := range m.popular {
		delete(m.b2j, elt)
	}
}

// findLongestMatch returns the longest block in a[alo:ahi] x b[blo:bhi]
// anchored on a non-popular element. Ties go to the earliest a position,
// then the earliest b position.
func (m *Matcher[T]) findLongestMatch(alo, ahi, blo, bhi int) Match {
	besti, bestj, bestsize := alo, blo, 0

	j2len := make(map[int]int)
	newj2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len, newj2len = newj2len, j2len
		clear(newj2len)
	}

	if bestsize == 0 {
		return Match{A: besti, B: bestj}
	}

	// Grow the block over neighbouring equal elements, popular ones included.
	for besti > alo && bestj > blo && m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi && m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}

// commonPrefix returns the length of the shared prefix of a[alo:ahi] and b[blo:bhi].
func (m *Matcher[T]) commonPrefix(alo, ahi, blo, bhi int) int {
	k := 0
	for alo+k < ahi && blo+k < bhi && m.a[alo+k] == m.b[blo+k] {
		k++
	}
	return k
}

type span struct {
	alo, ahi, blo, bhi int
}

// MatchingBlocks returns the maximal matching blocks in increasing order,
// terminated by the sentinel {len(a), len(b), 0}.
func (m *Matcher[T]) MatchingBlocks() []Match {
	if m.blocks != nil {
		return m.blocks
	}

	la, lb := len(m.a), len(m.b)
	var found []Match

	if la > 0 && slices.Equal(m.a, m.b) {
		found = append(found, Match{A: 0, B: 0, Size: la})
	} else {
		stack := []span{{0, la, 0, lb}}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			x := m.findLongestMatch(s.alo, s.ahi, s.blo, s.bhi)
			if x.Size == 0 {
				// Only popular elements can line up here; take the shared prefix.
				k := m.commonPrefix(s.alo, s.ahi, s.blo, s.bhi)
				if k == 0 {
					continue
				}
				x = Match{A: s.alo, B: s.blo, Size: k}
			}

			found = append(found, x)
			if s.alo < x.A && s.blo < x.B {
				stack = append(stack, span{s.alo, x.A, s.blo, x.B})
			}
			if x.A+x.Size < s.ahi && x.B+x.Size < s.bhi {
				stack = append(stack, span{x.A + x.Size, s.ahi, x.B + x.Size, s.bhi})
			}
		}
		slices.SortFunc(found, func(x, y Match) int {
			if x.A != y.A {
				return x.A - y.A
			}
			if x.B != y.B {
				return x.B - y.B
			}
			return x.Size - y.Size
		})
	}

	blocks := make([]Match, 0, len(found)+1)
	for _, x := range found {
		if n := len(blocks); n > 0 {
			last := &blocks[n-1]
			if last.A+last.Size == x.A && last.B+last.Size == x.B {
				last.Size += x.Size
				continue
			}
		}
		blocks = append(blocks, x)
	}
	blocks = append(blocks, Match{A: la, B: lb})

	m.blocks = blocks
	return blocks
}

// Operations returns the edit script turning a into b. The left and right
// ranges of consecutive operations tile both sequences; a deletion that
// touches an insertion is reported as a single replace.
func (m *Matcher[T]) Operations() []models.Operation {
	if m.ops != nil {
		return m.ops
	}

	ops := []models.Operation{}
	i, j := 0, 0
	for _, blk := range m.MatchingBlocks() {
		var kind models.OpKind
		emit := true
		switch {
		case i < blk.A && j < blk.B:
			kind = models.OpReplace
		case i < blk.A:
			kind = models.OpDelete
		case j < blk.B:
			kind = models.OpInsert
		default:
			emit = false
		}
		if emit {
			ops = append(ops, models.Operation{Kind: kind, LeftStart: i, LeftEnd: blk.A, RightStart: j, RightEnd: blk.B})
		}

		i, j = blk.A+blk.Size, blk.B+blk.Size
		if blk.Size > 0 {
			ops = append(ops, models.Operation{Kind: models.OpEqual, LeftStart: blk.A, LeftEnd: i, RightStart: blk.B, RightEnd: j})
		}
	}

	m.ops = ops
	return ops
}

// Matched returns the total number of elements in matching blocks.
func (m *Matcher[T]) Matched() int {
	total := 0
	for _, blk := range m.MatchingBlocks() {
		total += blk.Size
	}
	return total
}

// Ratio returns 2*M/T, where M is the number of matched elements and T the
// combined length; 1.0 when both sequences are empty.
func (m *Matcher[T]) Ratio() float64 {
	return calculateRatio(m.Matched(), len(m.a)+len(m.b))
}

func calculateRatio(matched, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matched) / float64(total)
}

// DiffLines computes the line-level edit script between left and right with auto-junk enabled.
func DiffLines(left, right []string) []models.Operation {
	return NewMatcher(left, right, true).Operations()
}
