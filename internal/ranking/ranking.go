// Package ranking orders candidates by a competitiveness score.
//
// Candidates with equal scores keep the order in which they were inserted.
package ranking

import (
	"cmp"
	"container/heap"
	"slices"

	"github.com/hey-rash/PlacementNex/internal/placement"
)

const (
	gpaWeight        = 10
	skillWeight      = 5
	internshipWeight = 8
	projectWeight    = 3
)

// Score is the competitiveness score of a candidate:
// gpa*10 + skills*5 + internships*8 + projects*3.
// Skills are counted once per case-insensitive label.
func Score(c placement.Candidate) float64 {
	return c.GPA*gpaWeight +
		float64(len(c.SkillSet()))*skillWeight +
		float64(c.Internships)*internshipWeight +
		float64(c.Projects)*projectWeight
}

// Ranked is a candidate with its score and 1-based position.
type Ranked struct {
	Candidate placement.Candidate
	Score     float64
	Position  int
}

type entry struct {
	candidate placement.Candidate
	score     float64
	seq       int
}

// before reports whether a ranks ahead of b.
func before(a, b entry) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.seq < b.seq
}

func compare(a, b entry) int {
	if c := cmp.Compare(b.score, a.score); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

type entries []entry

func (e entries) Len() int           { return len(e) }
func (e entries) Less(i, j int) bool { return before(e[i], e[j]) }
func (e entries) Swap(i, j int)      { e[i], e[j] = e[j], e[i] }
func (e *entries) Push(x any)        { *e = append(*e, x.(entry)) }
func (e *entries) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	*e = old[:n-1]
	return item
}

// Heap is a max-heap of candidates keyed by score. The zero value is ready to use.
type Heap struct {
	items entries
	seq   int
}

// New returns an empty heap.
func New() *Heap {
	return &Heap{}
}

// BuildFrom loads every candidate into a new heap in input order.
func BuildFrom(candidates []placement.Candidate) *Heap {
	h := &Heap{items: make(entries, 0, len(candidates))}
	for _, c := range candidates {
		h.Insert(c)
	}
	return h
}

// Insert adds one candidate in O(log n).
func (h *Heap) Insert(c placement.Candidate) {
	heap.Push(&h.items, entry{candidate: c, score: Score(c), seq: h.seq})
	h.seq++
}

// Len returns the number of candidates in the heap.
func (h *Heap) Len() int {
	return len(h.items)
}

// RankedList returns every candidate ordered by descending score. The heap is
// left untouched, so the call can be repeated.
func (h *Heap) RankedList() []Ranked {
	sorted := slices.Clone(h.items)
	slices.SortStableFunc(sorted, compare)
	return toRanked(sorted)
}

// Top returns the k highest ranked candidates without disturbing the heap.
func (h *Heap) Top(k int) []Ranked {
	if k <= 0 {
		return []Ranked{}
	}
	if k >= len(h.items) {
		return h.RankedList()
	}

	clone := slices.Clone(h.items)
	top := make(entries, 0, k)
	for range k {
		top = append(top, heap.Pop(&clone).(entry))
	}
	return toRanked(top)
}

func toRanked(items entries) []Ranked {
	result := make([]Ranked, len(items))
	for i, it := range items {
		result[i] = Ranked{Candidate: it.candidate, Score: it.score, Position: i + 1}
	}
	return result
}

// Rank is a convenience wrapper for BuildFrom(candidates).RankedList().
func Rank(candidates []placement.Candidate) []Ranked {
	return BuildFrom(candidates).RankedList()
}
