// Package skillgap compares the skills organizations ask for with the skills
// candidates have, and correlates skills with compensation.
package skillgap

import (
	"cmp"
	"slices"

	"github.com/hey-rash/PlacementNex/internal/placement"
)

const (
	DefaultGapLimit   = 10
	DefaultValueLimit = 5
)

// Gap is one row of the gap table.
type Gap struct {
	Skill  string
	Demand int
	Supply int
	Gap    int
}

// SkillValue is the average package of placed candidates with a skill.
type SkillValue struct {
	Skill          string
	AveragePackage float64
	Samples        int
}

// Report holds the aggregated tables.
type Report struct {
	// Gaps is sorted by descending demand.
	Gaps []Gap
	// HighValue is sorted by descending average package.
	HighValue []SkillValue
	// Supply counts candidates per canonical skill.
	Supply map[string]int
	// Demand counts organizations per canonical skill.
	Demand map[string]int
}

// Options bounds the size of the output tables.
type Options struct {
	GapLimit   int
	ValueLimit int
}

// Analyze builds the report with the default table sizes.
func Analyze(candidates []placement.Candidate, organizations []placement.Organization) Report {
	return AnalyzeWith(candidates, organizations, Options{GapLimit: DefaultGapLimit, ValueLimit: DefaultValueLimit})
}

// AnalyzeWith builds the report. Non-positive limits fall back to the defaults.
func AnalyzeWith(candidates []placement.Candidate, organizations []placement.Organization, opts Options) Report {
	if opts.GapLimit <= 0 {
		opts.GapLimit = DefaultGapLimit
	}
	if opts.ValueLimit <= 0 {
		opts.ValueLimit = DefaultValueLimit
	}

	supply := make(map[string]int)
	demand := make(map[string]int)
	salarySum := make(map[string]float64)
	salaryCount := make(map[string]int)

	for _, c := range candidates {
		pkg, paid := c.Compensation()
		for _, skill := range c.SkillSet() {
			supply[skill]++
			if paid {
				salarySum[skill] += pkg
				salaryCount[skill]++
			}
		}
	}

	for _, o := range organizations {
		for _, skill := range o.SkillSet() {
			demand[skill]++
		}
	}

	return Report{
		Gaps:      gapTable(supply, demand, opts.GapLimit),
		HighValue: valueTable(salarySum, salaryCount, opts.ValueLimit),
		Supply:    supply,
		Demand:    demand,
	}
}

func gapTable(supply, demand map[string]int, limit int) []Gap {
	skills := make([]string, 0, len(supply)+len(demand))
	for s := range supply {
		skills = append(skills, s)
	}
	for s := range demand {
		if _, ok := supply[s]; !ok {
			skills = append(skills, s)
		}
	}
	slices.Sort(skills)

	gaps := make([]Gap, 0, len(skills))
	for _, s := range skills {
		gaps = append(gaps, Gap{Skill: s, Demand: demand[s], Supply: supply[s], Gap: demand[s] - supply[s]})
	}

	// Skills are pre-sorted, so equal demand falls back to alphabetical order.
	slices.SortStableFunc(gaps, func(a, b Gap) int {
		return cmp.Compare(b.Demand, a.Demand)
	})

	return gaps[:min(limit, len(gaps))]
}

func valueTable(sum map[string]float64, count map[string]int, limit int) []SkillValue {
	values := make([]SkillValue, 0, len(sum))
	for s, total := range sum {
		values = append(values, SkillValue{Skill: s, AveragePackage: total / float64(count[s]), Samples: count[s]})
	}

	slices.SortFunc(values, func(a, b SkillValue) int {
		if c := cmp.Compare(b.AveragePackage, a.AveragePackage); c != 0 {
			return c
		}
		return cmp.Compare(a.Skill, b.Skill)
	})

	return values[:min(limit, len(values))]
}
