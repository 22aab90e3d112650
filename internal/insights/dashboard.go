package insights

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hey-rash/PlacementNex/internal/placement"
	"github.com/hey-rash/PlacementNex/internal/responder"
)

// Summary holds the headline placement numbers.
type Summary struct {
	Total          int
	Placed         int
	PlacementRate  float64
	AveragePackage float64
	HighestPackage float64
}

// Summarize computes the headline numbers. The average is taken over placed
// candidates; a missing package counts as zero.
func Summarize(candidates []placement.Candidate) Summary {
	var s Summary
	var sum float64

	s.Total = len(candidates)
	for _, c := range candidates {
		pkg := c.PackageOrZero()
		s.HighestPackage = max(s.HighestPackage, pkg)
		if c.Placed {
			s.Placed++
			sum += pkg
		}
	}

	if s.Total > 0 {
		s.PlacementRate = float64(s.Placed) / float64(s.Total) * 100
	}
	if s.Placed > 0 {
		s.AveragePackage = sum / float64(s.Placed)
	}

	return s
}

// BranchStat aggregates placements per branch.
type BranchStat struct {
	Branch         string
	Placed         int
	Total          int
	AveragePackage float64
}

// BranchStats groups candidates by branch in first-seen order.
func BranchStats(candidates []placement.Candidate) []BranchStat {
	index := make(map[string]int)
	stats := make([]BranchStat, 0)
	sums := make([]float64, 0)

	for _, c := range candidates {
		i, ok := index[c.Branch]
		if !ok {
			i = len(stats)
			index[c.Branch] = i
			stats = append(stats, BranchStat{Branch: c.Branch})
			sums = append(sums, 0)
		}
		stats[i].Total++
		if c.Placed {
			stats[i].Placed++
			sums[i] += c.PackageOrZero()
		}
	}

	for i := range stats {
		if stats[i].Placed > 0 {
			stats[i].AveragePackage = sums[i] / float64(stats[i].Placed)
		}
	}

	return stats
}

// Timeline orders organizations by arrival date. Same-day arrivals keep their input order.
func Timeline(organizations []placement.Organization) []placement.Organization {
	out := slices.Clone(organizations)
	slices.SortStableFunc(out, func(a, b placement.Organization) int {
		return a.ArrivalDate.Compare(b.ArrivalDate)
	})
	return out
}

// TopRecruiter returns the organization that placed the most candidates, with
// that count. Ties go to the organization with more hires, then to the first listed.
func TopRecruiter(ds *placement.Dataset) (placement.Organization, int, bool) {
	placed := make(map[string]int)
	for _, c := range ds.Candidates {
		if c.Placed && c.CompanyID != "" {
			placed[c.CompanyID]++
		}
	}

	var (
		best      placement.Organization
		bestCount int
		found     bool
	)
	for _, o := range ds.Organizations {
		n := placed[o.ID]
		if n == 0 {
			continue
		}
		if !found || n > bestCount || (n == bestCount && o.Hires > best.Hires) {
			best, bestCount, found = o, n, true
		}
	}

	return best, bestCount, found
}

// FormatPackage renders a package without trailing zeros.
func FormatPackage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Facts derives the canned chat answers from the dataset.
func Facts(ds *placement.Dataset) []responder.Phrase {
	summary := Summarize(ds.Candidates)

	facts := []responder.Phrase{
		{Phrase: "hello", Response: "Hello! How can I help you with placement data?"},
		{Phrase: "highest package", Response: fmt.Sprintf("The highest package is ₹%s LPA.", FormatPackage(summary.HighestPackage))},
		{Phrase: "placement rate", Response: fmt.Sprintf("%.1f%% of students are placed (%d of %d).", summary.PlacementRate, summary.Placed, summary.Total)},
	}

	if org, _, ok := TopRecruiter(ds); ok {
		facts = append(facts, responder.Phrase{
			Phrase:   "top recruiter",
			Response: fmt.Sprintf("Top recruiter is %s with %d hires.", org.Name, org.Hires),
		})
	}

	stats := BranchStats(ds.Candidates)
	slices.SortStableFunc(stats, func(a, b BranchStat) int { return cmp.Compare(a.Branch, b.Branch) })
	for _, b := range stats {
		if b.Branch == "" {
			continue
		}
		facts = append(facts, responder.Phrase{
			Phrase:   strings.ToLower(b.Branch) + " students",
			Response: fmt.Sprintf("There are %d %s students.", b.Total, b.Branch),
		})
	}

	return facts
}
