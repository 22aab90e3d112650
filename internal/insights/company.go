package insights

import (
	"cmp"
	"slices"

	"github.com/hey-rash/PlacementNex/internal/placement"
)

// TrendChange is one year of a salary trend with the change against the
// previous year. Growth is a percentage and only set when HasGrowth is true.
type TrendChange struct {
	Year      int
	Package   float64
	Growth    float64
	HasGrowth bool
}

// CompanyProfile is an organization with its salary trend in year order.
type CompanyProfile struct {
	Organization placement.Organization
	Skills       []string
	Trend        []TrendChange
	// TotalGrowth compares the last trend year with the first one.
	TotalGrowth    float64
	HasTotalGrowth bool
}

// Company builds the profile of an organization. Trend points are ordered by
// year; growth is not reported against a zero package.
func Company(org placement.Organization) CompanyProfile {
	points := slices.Clone(org.SalaryTrend)
	slices.SortStableFunc(points, func(a, b placement.TrendPoint) int { return cmp.Compare(a.Year, b.Year) })

	p := CompanyProfile{
		Organization: org,
		Skills:       org.SkillSet(),
		Trend:        make([]TrendChange, 0, len(points)),
	}
	for i, pt := range points {
		change := TrendChange{Year: pt.Year, Package: pt.Package}
		if i > 0 {
			change.Growth, change.HasGrowth = growth(points[i-1].Package, pt.Package)
		}
		p.Trend = append(p.Trend, change)
	}

	if len(points) > 1 {
		p.TotalGrowth, p.HasTotalGrowth = growth(points[0].Package, points[len(points)-1].Package)
	}

	return p
}

func growth(from, to float64) (float64, bool) {
	if from == 0 {
		return 0, false
	}
	return (to - from) / from * 100, true
}

// Comparison puts two organizations side by side.
type Comparison struct {
	Left  CompanyProfile
	Right CompanyProfile
	// PackageLeader is -1 when Left pays more, 1 when Right does and 0 on a tie.
	PackageLeader int
}

// Compare builds the side by side view of two organizations.
func Compare(left, right placement.Organization) Comparison {
	return Comparison{
		Left:          Company(left),
		Right:         Company(right),
		PackageLeader: cmp.Compare(right.Package, left.Package),
	}
}
