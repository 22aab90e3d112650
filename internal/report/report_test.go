package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hey-rash/PlacementNex/internal/filtering"
	"github.com/hey-rash/PlacementNex/internal/insights"
	"github.com/hey-rash/PlacementNex/internal/placement"
	"github.com/hey-rash/PlacementNex/internal/ranking"
	"github.com/hey-rash/PlacementNex/internal/simulation"
	"github.com/hey-rash/PlacementNex/internal/skillgap"
)

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("expected output to contain %q, got:\n%s", w, out)
		}
	}
}

func TestRankingAndCandidates(t *testing.T) {
	ds := placement.Sample()
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Ranking(ranking.Rank(ds.Candidates)[:2])
	r.Candidates(ds.Candidates, ds.Organizations)

	out := buf.String()
	assertContains(t, out, "Merit Ranking", "Sneha Reddy", "TechNova", "₹22 LPA", "Unplaced")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes when color is disabled")
	}
}

func TestColoredHeading(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Text("Advice", " keep going ")

	out := buf.String()
	assertContains(t, out, "\x1b[", "Advice", "keep going\n")
}

func TestSkillGapAndInsights(t *testing.T) {
	ds := placement.Sample()
	var buf bytes.Buffer
	r := New(&buf, false)

	r.SkillGap(skillgap.Analyze(ds.Candidates, ds.Organizations))
	top, placed, ok := insights.TopRecruiter(ds)
	r.Summary(insights.Summarize(ds.Candidates), top, placed, ok)
	r.Branches(insights.BranchStats(ds.Candidates))
	r.Timeline(insights.Timeline(ds.Organizations))
	r.Prediction(insights.Medium)
	r.Resume(insights.AnalyzeResume("React and SQL", []string{"React", "Java"}))

	out := buf.String()
	assertContains(t, out,
		"DSA", "COMPUTER VISION",
		"62.5%", "TechNova (3 placed)",
		"MECH",
		"2023-08-20",
		"Placement probability: Medium",
		"50%", "Java",
	)
}

func TestRoundsAndFilters(t *testing.T) {
	org := placement.Organization{Name: "TechNova", Role: "SDE II"}
	history := []simulation.RoundStats{
		{Index: 1, Round: "Resume Shortlisting", Entering: 8, Passed: 4},
		{Index: 2, Round: "Online Assessment", Entering: 4, Passed: 0},
	}

	var buf bytes.Buffer
	r := New(&buf, false)
	r.Round(history[0])
	r.Rounds(org, history, nil)
	r.Filters(filtering.Describe(filtering.FromConfig(filtering.Config{Branches: []string{"cse"}})))

	out := buf.String()
	assertContains(t, out,
		"Round 1: Resume Shortlisting  4 passed, 4 eliminated\n",
		"Hiring Drive: TechNova (SDE II)",
		"No candidates received an offer.",
		"branches=CSE",
		"not selected in config",
	)
}

func TestCompanyAndCompare(t *testing.T) {
	ds := placement.Sample()
	technova, _ := ds.FindOrganization("c1")
	innosystems, _ := ds.FindOrganization("c2")

	var buf bytes.Buffer
	r := New(&buf, false)
	r.Company(insights.Company(technova))
	r.Compare(insights.Compare(technova, innosystems))

	out := buf.String()
	assertContains(t, out,
		"Company Insights: TechNova",
		"SDE II",
		"REACT, NODE.JS, AWS, DSA",
		"Salary Trend",
		"+14.3%", "+12.5%",
		"Growth 2021-2023: +28.6%",
		"Company Comparison",
		"InnoSystems",
		"System Engineer",
		"+33.3%",
		"Higher package: TechNova",
	)
}

func TestCompanyWithoutTrend(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Company(insights.Company(placement.Organization{Name: "NewCo"}))

	assertContains(t, buf.String(), "Company Insights: NewCo", "No salary history recorded.")
}
