// Package sorting implements a stable merge sort of candidates by a single field.
//
// A missing package compares as zero, so unplaced candidates come first when
// sorting by package ascending and last when descending.
package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/hey-rash/PlacementNex/internal/placement"
)

var (
	// ErrUnknownField is returned for field names the sorter does not know.
	ErrUnknownField = errors.New("unknown sort field")
	// ErrUnknownDirection is returned for unsupported direction names.
	ErrUnknownDirection = errors.New("unknown sort direction")
)

// Field names a sortable candidate attribute.
type Field string

const (
	FieldID          Field = "id"
	FieldName        Field = "name"
	FieldBranch      Field = "branch"
	FieldGPA         Field = "gpa"
	FieldSkills      Field = "skills"
	FieldProjects    Field = "projects"
	FieldInternships Field = "internships"
	FieldPlaced      Field = "placed"
	FieldPackage     Field = "package"
	FieldCompany     Field = "company"
)

// Fields lists every supported field.
var Fields = []Field{
	FieldID, FieldName, FieldBranch, FieldGPA, FieldSkills,
	FieldProjects, FieldInternships, FieldPlaced, FieldPackage, FieldCompany,
}

// Direction is the sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseField resolves a field name, ignoring case and surrounding whitespace.
func ParseField(name string) (Field, error) {
	key := Field(strings.ToLower(strings.TrimSpace(name)))
	switch key {
	case "cgpa":
		return FieldGPA, nil
	case "company_id", "companyid":
		return FieldCompany, nil
	}
	for _, f := range Fields {
		if f == key {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ParseDirection resolves asc/ascending or desc/descending.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
}

// compareBy returns a three-way comparison of the field values of a and b.
func compareBy(field Field) func(a, b placement.Candidate) int {
	switch field {
	case FieldID:
		return func(a, b placement.Candidate) int { return cmp.Compare(a.ID, b.ID) }
	case FieldName:
		return func(a, b placement.Candidate) int { return cmp.Compare(a.Name, b.Name) }
	case FieldBranch:
		return func(a, b placement.Candidate) int { return cmp.Compare(a.Branch, b.Branch) }
	case FieldGPA:
		return func(a, b placement.Candidate) int { return cmp.Compare(a.GPA, b.GPA) }
	case FieldSkills:
		return func(a, b placement.Candidate) int { return cmp.Compare(len(a.SkillSet()), len(b.SkillSet())) }
	case FieldProjects:
		return func(a, b placement.Candidate) int { return cmp.Compare(a.Projects, b.Projects) }
	case FieldInternships:
		return func(a, b placement.Candidate) int { return cmp.Compare(a.Internships, b.Internships) }
	case FieldPlaced:
		return func(a, b placement.Candidate) int { return cmp.Compare(boolKey(a.Placed), boolKey(b.Placed)) }
	case FieldPackage:
		return func(a, b placement.Candidate) int { return cmp.Compare(a.PackageOrZero(), b.PackageOrZero()) }
	case FieldCompany:
		return func(a, b placement.Candidate) int { return cmp.Compare(a.CompanyID, b.CompanyID) }
	default:
		return func(placement.Candidate, placement.Candidate) int { return 0 }
	}
}

func boolKey(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Sort returns a new slice of candidates ordered by field in the given
// direction. The input is never modified. Equal keys keep their input order.
// An unknown field leaves the order unchanged; use ParseField at the boundary.
func Sort(candidates []placement.Candidate, field Field, dir Direction) []placement.Candidate {
	compare := compareBy(field)
	less := func(a, b placement.Candidate) bool { return compare(a, b) < 0 }
	if dir == Descending {
		less = func(a, b placement.Candidate) bool { return compare(a, b) > 0 }
	}

	out := make([]placement.Candidate, len(candidates))
	copy(out, candidates)
	if len(out) < 2 {
		return out
	}

	buf := make([]placement.Candidate, len(out))
	mergeSort(out, buf, less)
	return out
}

// mergeSort sorts items in place using buf as scratch space of equal length.
func mergeSort(items, buf []placement.Candidate, less func(a, b placement.Candidate) bool) {
	if len(items) < 2 {
		return
	}

	mid := len(items) / 2
	mergeSort(items[:mid], buf[:mid], less)
	mergeSort(items[mid:], buf[mid:], less)

	// Already ordered halves need no merge.
	if !less(items[mid], items[mid-1]) {
		return
	}

	copy(buf, items)
	left, right := buf[:mid], buf[mid:len(items)]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// Ties take the left element to keep the sort stable.
		if less(right[j], left[i]) {
			items[k] = right[j]
			j++
		} else {
			items[k] = left[i]
			i++
		}
		k++
	}
	k += copy(items[k:], left[i:])
	copy(items[k:], right[j:])
}
