package sorting

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/hey-rash/PlacementNex/internal/placement"
)

func ids(candidates []placement.Candidate) string {
	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = c.ID
	}
	return strings.Join(parts, ",")
}

func pkg(v float64) *float64 { return &v }

func TestParseField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Field
	}{
		{input: "gpa", want: FieldGPA},
		{input: " CGPA ", want: FieldGPA},
		{input: "Package", want: FieldPackage},
		{input: "company_id", want: FieldCompany},
		{input: "skills", want: FieldSkills},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseField(tt.input)
			if err != nil || got != tt.want {
				t.Fatalf("expected %q, got %q (%v)", tt.want, got, err)
			}
		})
	}

	if _, err := ParseField("salary"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestParseDirection(t *testing.T) {
	for input, want := range map[string]Direction{"": Ascending, "ASC": Ascending, "ascending": Ascending, "desc": Descending, "Descending": Descending} {
		got, err := ParseDirection(input)
		if err != nil || got != want {
			t.Fatalf("ParseDirection(%q): expected %q, got %q (%v)", input, want, got, err)
		}
	}

	if _, err := ParseDirection("up"); !errors.Is(err, ErrUnknownDirection) {
		t.Fatalf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestSortByGPA(t *testing.T) {
	input := []placement.Candidate{
		{ID: "a", GPA: 8.1},
		{ID: "b", GPA: 9.4},
		{ID: "c", GPA: 6.9},
		{ID: "d", GPA: 8.1},
	}

	if got := ids(Sort(input, FieldGPA, Ascending)); got != "c,a,d,b" {
		t.Fatalf("unexpected ascending order: %s", got)
	}
	if got := ids(Sort(input, FieldGPA, Descending)); got != "b,a,d,c" {
		t.Fatalf("unexpected descending order: %s", got)
	}
	if got := ids(input); got != "a,b,c,d" {
		t.Fatalf("input modified: %s", got)
	}
}

func TestSortMissingPackageIsZero(t *testing.T) {
	input := []placement.Candidate{
		{ID: "placed-high", Placed: true, Package: pkg(20)},
		{ID: "unplaced", Placed: false},
		{ID: "placed-low", Placed: true, Package: pkg(4)},
		{ID: "placed-missing", Placed: true},
	}

	if got := ids(Sort(input, FieldPackage, Ascending)); got != "unplaced,placed-missing,placed-low,placed-high" {
		t.Fatalf("unexpected ascending order: %s", got)
	}
	if got := ids(Sort(input, FieldPackage, Descending)); got != "placed-high,placed-low,unplaced,placed-missing" {
		t.Fatalf("unexpected descending order: %s", got)
	}
}

func TestSortStringAndBoolFields(t *testing.T) {
	input := []placement.Candidate{
		{ID: "1", Name: "Riya", Branch: "IT", Placed: true},
		{ID: "2", Name: "Aditi", Branch: "ECE"},
		{ID: "3", Name: "Karan", Branch: "IT", Placed: true},
		{ID: "4", Name: "Aarav", Branch: "CSE"},
	}

	if got := ids(Sort(input, FieldName, Ascending)); got != "4,2,3,1" {
		t.Fatalf("unexpected name order: %s", got)
	}
	if got := ids(Sort(input, FieldBranch, Descending)); got != "1,3,2,4" {
		t.Fatalf("unexpected branch order: %s", got)
	}
	if got := ids(Sort(input, FieldPlaced, Descending)); got != "1,3,2,4" {
		t.Fatalf("unexpected placed order: %s", got)
	}
}

func TestSortBySkillsCountsDistinctLabels(t *testing.T) {
	input := []placement.Candidate{
		{ID: "dup", Skills: []string{"Go", "go", " GO "}},
		{ID: "two", Skills: []string{"Go", "SQL"}},
		{ID: "one", Skills: []string{"React"}},
	}

	if got := ids(Sort(input, FieldSkills, Ascending)); got != "dup,one,two" {
		t.Fatalf("unexpected skills order: %s", got)
	}
	if got := ids(Sort(input, FieldSkills, Descending)); got != "two,dup,one" {
		t.Fatalf("unexpected descending skills order: %s", got)
	}
}

func TestSortShortInputsAreCopied(t *testing.T) {
	if got := Sort(nil, FieldGPA, Ascending); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	single := []placement.Candidate{{ID: "only"}}
	got := Sort(single, FieldGPA, Descending)
	got[0].ID = "changed"
	if single[0].ID != "only" {
		t.Fatalf("expected a copy for single element input")
	}
}

func TestSortProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	input := make([]placement.Candidate, 200)
	for i := range input {
		c := placement.Candidate{
			ID:          strconv.Itoa(i),
			GPA:         float64(r.IntN(5)) + 5,
			Projects:    r.IntN(4),
			Internships: r.IntN(3),
			Branch:      []string{"CSE", "ECE", "IT"}[r.IntN(3)],
		}
		if r.IntN(2) == 0 {
			c.Placed = true
			c.Package = pkg(float64(r.IntN(3) * 5))
		}
		input[i] = c
	}

	position := make(map[string]int, len(input))
	for i, c := range input {
		position[c.ID] = i
	}

	for _, field := range Fields {
		for _, dir := range []Direction{Ascending, Descending} {
			t.Run(string(field)+"_"+string(dir), func(t *testing.T) {
				compare := compareBy(field)
				out := Sort(input, field, dir)

				if len(out) != len(input) {
					t.Fatalf("expected %d items, got %d", len(input), len(out))
				}

				seen := make(map[string]bool, len(out))
				for _, c := range out {
					if seen[c.ID] {
						t.Fatalf("duplicate %s in output", c.ID)
					}
					seen[c.ID] = true
				}

				for i := 1; i < len(out); i++ {
					c := compare(out[i-1], out[i])
					if dir == Descending {
						c = -c
					}
					if c > 0 {
						t.Fatalf("out of order at %d", i)
					}
					if c == 0 && position[out[i-1].ID] > position[out[i].ID] {
						t.Fatalf("unstable at %d: %s before %s", i, out[i-1].ID, out[i].ID)
					}
				}

				if again := Sort(out, field, dir); ids(again) != ids(out) {
					t.Fatalf("sorting twice is not idempotent")
				}
			})
		}
	}
}

func TestResortKeepsPreviousOrderForTies(t *testing.T) {
	input := []placement.Candidate{
		{ID: "a", Branch: "IT", GPA: 8},
		{ID: "b", Branch: "CSE", GPA: 9},
		{ID: "c", Branch: "IT", GPA: 9},
		{ID: "d", Branch: "CSE", GPA: 8},
	}

	byGPA := Sort(input, FieldGPA, Descending)
	byBranch := Sort(byGPA, FieldBranch, Ascending)

	if got := ids(byBranch); got != "b,d,c,a" {
		t.Fatalf("expected branch groups ordered by gpa, got %s", got)
	}
}
