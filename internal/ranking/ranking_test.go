package ranking

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/hey-rash/PlacementNex/internal/placement"
)

func candidate(id string, gpa float64, skills, internships, projects int) placement.Candidate {
	c := placement.Candidate{ID: id, GPA: gpa, Internships: internships, Projects: projects}
	for i := range skills {
		c.Skills = append(c.Skills, "skill-"+strconv.Itoa(i))
	}
	return c
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate placement.Candidate
		want      float64
	}{
		{name: "strong profile", candidate: candidate("a", 9.2, 4, 2, 4), want: 92 + 20 + 16 + 12},
		{name: "average profile", candidate: candidate("b", 8.5, 3, 1, 2), want: 85 + 15 + 8 + 6},
		{name: "empty profile", candidate: placement.Candidate{}, want: 0},
		{name: "case variants count once", candidate: placement.Candidate{Skills: []string{"Go", "go", " GO "}}, want: 5},
		{name: "blank skills ignored", candidate: placement.Candidate{Skills: []string{"", "  ", "SQL"}}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Score(tt.candidate); got != tt.want {
				t.Fatalf("expected score %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRankedListOrdersByScore(t *testing.T) {
	second := candidate("second", 8.5, 3, 1, 2)
	first := candidate("first", 9.2, 4, 2, 4)

	ranked := BuildFrom([]placement.Candidate{second, first}).RankedList()
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked candidates, got %d", len(ranked))
	}
	if ranked[0].Candidate.ID != "first" || ranked[1].Candidate.ID != "second" {
		t.Fatalf("unexpected order: %s, %s", ranked[0].Candidate.ID, ranked[1].Candidate.ID)
	}
	if ranked[0].Position != 1 || ranked[1].Position != 2 {
		t.Fatalf("unexpected positions: %d, %d", ranked[0].Position, ranked[1].Position)
	}
}

func TestRankedListKeepsInsertionOrderForTies(t *testing.T) {
	input := []placement.Candidate{
		candidate("t1", 8, 2, 1, 1),
		candidate("top", 9.9, 5, 3, 5),
		candidate("t2", 8, 2, 1, 1),
		candidate("low", 5, 0, 0, 0),
		candidate("t3", 8, 2, 1, 1),
	}

	ranked := Rank(input)

	want := []string{"top", "t1", "t2", "t3", "low"}
	for i, id := range want {
		if ranked[i].Candidate.ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, ranked[i].Candidate.ID)
		}
	}
}

func TestRankedListIsRepeatableAndNonDestructive(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	input := make([]placement.Candidate, 0, 50)
	for i := range 50 {
		input = append(input, candidate(strconv.Itoa(i), float64(r.IntN(11)), r.IntN(4), r.IntN(3), r.IntN(4)))
	}
	original := make([]string, len(input))
	for i, c := range input {
		original[i] = c.ID
	}

	h := BuildFrom(input)
	a := h.RankedList()
	b := h.RankedList()

	if len(a) != len(input) || h.Len() != len(input) {
		t.Fatalf("expected %d ranked candidates, got %d (heap %d)", len(input), len(a), h.Len())
	}

	index := make(map[string]int, len(input))
	for i, c := range input {
		index[c.ID] = i
	}

	for i := range a {
		if a[i].Candidate.ID != b[i].Candidate.ID {
			t.Fatalf("ranked list changed between calls at %d", i)
		}
		if i == 0 {
			continue
		}
		prev, cur := a[i-1], a[i]
		if prev.Score < cur.Score {
			t.Fatalf("scores increase at %d: %v < %v", i, prev.Score, cur.Score)
		}
		if prev.Score == cur.Score && index[prev.Candidate.ID] > index[cur.Candidate.ID] {
			t.Fatalf("tie between %s and %s not in insertion order", prev.Candidate.ID, cur.Candidate.ID)
		}
	}

	for i, c := range input {
		if c.ID != original[i] {
			t.Fatalf("input was reordered at %d", i)
		}
	}
}

func TestTop(t *testing.T) {
	input := []placement.Candidate{
		candidate("a", 7, 1, 0, 1),
		candidate("b", 9, 3, 2, 3),
		candidate("c", 8, 2, 1, 2),
		candidate("d", 8, 2, 1, 2),
	}
	h := BuildFrom(input)

	top := h.Top(3)
	full := h.RankedList()
	if len(top) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(top))
	}
	for i := range top {
		if top[i].Candidate.ID != full[i].Candidate.ID || top[i].Position != i+1 {
			t.Fatalf("top-k differs from ranked prefix at %d: %+v vs %+v", i, top[i], full[i])
		}
	}

	if h.Len() != 4 {
		t.Fatalf("Top must not consume the heap, len %d", h.Len())
	}
	if got := h.Top(0); len(got) != 0 {
		t.Fatalf("expected empty result for k=0, got %d", len(got))
	}
	if got := h.Top(10); len(got) != 4 {
		t.Fatalf("expected all candidates for large k, got %d", len(got))
	}
}

func TestEmpty(t *testing.T) {
	if got := Rank(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil ranking, got %#v", got)
	}

	var h Heap
	h.Insert(candidate("solo", 6, 1, 0, 0))
	if got := h.RankedList(); len(got) != 1 || got[0].Candidate.ID != "solo" {
		t.Fatalf("zero value heap should accept inserts, got %+v", got)
	}
}
