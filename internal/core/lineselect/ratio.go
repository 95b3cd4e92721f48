package lineselect

import "sort"

// Ratio returns the similarity 2*M/T of a and b, where M is the number of runes in
// the matching blocks found by recursive longest-common-block search and T is the
// combined rune length. Two empty inputs score 1.
//
// Positions of b are indexed once; when b has 200 runes or more, runes occurring
// in more than 1% of it (plus one) are treated as popular and never start a block.
func Ratio(a, b string) float64 {
	m := newMatcher([]rune(a), []rune(b))
	t := len(m.a) + len(m.b)
	if t == 0 {
		return 1
	}
	return 2 * float64(m.matches()) / float64(t)
}

type block struct {
	i, j, size int
}

type matcher struct {
	a, b []rune
	b2j  map[rune][]int
}

func newMatcher(a, b []rune) *matcher {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	if n := len(b); n >= 200 {
		limit := n/100 + 1
		for r, idx := range b2j {
			if len(idx) > limit {
				delete(b2j, r)
			}
		}
	}
	return &matcher{a: a, b: b, b2j: b2j}
}

// longest finds the longest block a[i:i+size] == b[j:j+size] inside the given
// bounds, preferring the earliest i and then the earliest j
func (m *matcher) longest(alo, ahi, blo, bhi int) block {
	best := block{i: alo, j: blo}
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > best.size {
				best = block{i: i - k + 1, j: j - k + 1, size: k}
			}
		}
		j2len = next
	}

	// popular runes never seed a block but may still extend one
	for best.i > alo && best.j > blo && m.a[best.i-1] == m.b[best.j-1] {
		best.i--
		best.j--
		best.size++
	}
	for best.i+best.size < ahi && best.j+best.size < bhi &&
		m.a[best.i+best.size] == m.b[best.j+best.size] {
		best.size++
	}
	return best
}

func (m *matcher) blocks() []block {
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(m.a), 0, len(m.b)}}
	var out []block
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		x := m.longest(s.alo, s.ahi, s.blo, s.bhi)
		if x.size == 0 {
			continue
		}
		out = append(out, x)
		if s.alo < x.i && s.blo < x.j {
			queue = append(queue, span{s.alo, x.i, s.blo, x.j})
		}
		if x.i+x.size < s.ahi && x.j+x.size < s.bhi {
			queue = append(queue, span{x.i + x.size, s.ahi, x.j + x.size, s.bhi})
		}
	}
	sort.Slice(out, func(p, q int) bool {
		if out[p].i != out[q].i {
			return out[p].i < out[q].i
		}
		return out[p].j < out[q].j
	})
	return out
}

func (m *matcher) matches() int {
	n := 0
	for _, b := range m.blocks() {
		n += b.size
	}
	return n
}
