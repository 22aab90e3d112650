// Package report renders analytics results as terminal tables.
package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/hey-rash/PlacementNex/internal/filtering"
	"github.com/hey-rash/PlacementNex/internal/insights"
	"github.com/hey-rash/PlacementNex/internal/placement"
	"github.com/hey-rash/PlacementNex/internal/ranking"
	"github.com/hey-rash/PlacementNex/internal/simulation"
	"github.com/hey-rash/PlacementNex/internal/skillgap"
)

// Renderer writes headings and tables to w.
type Renderer struct {
	w       io.Writer
	heading *color.Color
	good    *color.Color
	bad     *color.Color
}

// New creates a renderer. When colored is false no escape codes are written.
func New(w io.Writer, colored bool) *Renderer {
	r := &Renderer{
		w:       w,
		heading: color.New(color.FgYellow, color.Bold),
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgRed),
	}
	for _, c := range []*color.Color{r.heading, r.good, r.bad} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) title(s string) {
	r.heading.Fprintf(r.w, "\n%s\n", s)
}

func (r *Renderer) table(header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(r.w)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	return t
}

func lpa(v float64) string {
	return "₹" + insights.FormatPackage(v) + " LPA"
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Ranking renders the merit list.
func (r *Renderer) Ranking(list []ranking.Ranked) {
	r.title("Merit Ranking")
	t := r.table([]string{"#", "ID", "Name", "Branch", "GPA", "Score"})
	for _, e := range list {
		t.Append([]string{
			strconv.Itoa(e.Position),
			e.Candidate.ID,
			e.Candidate.Name,
			e.Candidate.Branch,
			score(e.Candidate.GPA),
			score(e.Score),
		})
	}
	t.Render()
}

// Candidates renders candidates in the given order. Organizations resolve company names.
func (r *Renderer) Candidates(candidates []placement.Candidate, organizations []placement.Organization) {
	names := make(map[string]string, len(organizations))
	for _, o := range organizations {
		names[o.ID] = o.Name
	}

	r.title("Students")
	t := r.table([]string{"ID", "Name", "Branch", "GPA", "Skills", "Projects", "Internships", "Status", "Company", "Package"})
	for _, c := range candidates {
		status, company, pkg := "Unplaced", "-", "-"
		if c.Placed {
			status = "Placed"
			company = c.CompanyID
			if name, ok := names[c.CompanyID]; ok {
				company = name
			}
			if v, ok := c.Compensation(); ok {
				pkg = lpa(v)
			}
		}
		t.Append([]string{
			c.ID,
			c.Name,
			c.Branch,
			score(c.GPA),
			strings.Join(c.Skills, ", "),
			strconv.Itoa(c.Projects),
			strconv.Itoa(c.Internships),
			status,
			company,
			pkg,
		})
	}
	t.Render()
}

// SkillGap renders the demand/supply and high value tables.
func (r *Renderer) SkillGap(rep skillgap.Report) {
	r.title("Skill Demand vs Supply")
	t := r.table([]string{"Skill", "Demand", "Supply", "Gap"})
	for _, g := range rep.Gaps {
		t.Append([]string{g.Skill, strconv.Itoa(g.Demand), strconv.Itoa(g.Supply), strconv.Itoa(g.Gap)})
	}
	t.Render()

	r.title("High Value Skills")
	t = r.table([]string{"Skill", "Average Package", "Placed Students"})
	for _, v := range rep.HighValue {
		t.Append([]string{v.Skill, lpa(v.AveragePackage), strconv.Itoa(v.Samples)})
	}
	t.Render()
}

// Filters renders the eligibility filter status.
func (r *Renderer) Filters(statuses []filtering.Status) {
	r.title("Eligibility Filters")
	t := r.table([]string{"Filter", "Enabled", "Details"})
	for _, s := range statuses {
		details := s.Reason
		if len(s.Details) > 0 {
			parts := make([]string, 0, len(s.Details))
			for _, k := range slices.Sorted(maps.Keys(s.Details)) {
				parts = append(parts, k+"="+s.Details[k])
			}
			details = strings.Join(parts, " ")
		}
		t.Append([]string{s.Name, strconv.FormatBool(s.Enabled), details})
	}
	t.Render()
}

// Round renders a single round outcome as one line.
func (r *Renderer) Round(stats simulation.RoundStats) {
	fmt.Fprintf(r.w, "Round %d: %s  ", stats.Index, stats.Round)
	r.good.Fprintf(r.w, "%d passed", stats.Passed)
	fmt.Fprint(r.w, ", ")
	r.bad.Fprintf(r.w, "%d eliminated", stats.Eliminated())
	fmt.Fprintln(r.w)
}

// Rounds renders the full history of a simulation run.
func (r *Renderer) Rounds(org placement.Organization, history []simulation.RoundStats, survivors []placement.Candidate) {
	r.title(fmt.Sprintf("Hiring Drive: %s (%s)", org.Name, org.Role))
	t := r.table([]string{"Round", "Stage", "Entering", "Passed", "Eliminated"})
	for _, s := range history {
		t.Append([]string{
			strconv.Itoa(s.Index),
			s.Round,
			strconv.Itoa(s.Entering),
			strconv.Itoa(s.Passed),
			strconv.Itoa(s.Eliminated()),
		})
	}
	t.Render()

	if len(survivors) == 0 {
		r.bad.Fprintln(r.w, "No candidates received an offer.")
		return
	}
	names := make([]string, 0, len(survivors))
	for _, c := range survivors {
		names = append(names, c.Name)
	}
	r.good.Fprintf(r.w, "Offers: %s\n", strings.Join(names, ", "))
}

// Summary renders the headline numbers.
func (r *Renderer) Summary(s insights.Summary, top placement.Organization, topPlaced int, hasTop bool) {
	r.title("Placement Summary")
	t := r.table([]string{"Metric", "Value"})
	t.Append([]string{"Total Students", strconv.Itoa(s.Total)})
	t.Append([]string{"Placed", strconv.Itoa(s.Placed)})
	t.Append([]string{"Placement Rate", strconv.FormatFloat(s.PlacementRate, 'f', 1, 64) + "%"})
	t.Append([]string{"Average Package", lpa(s.AveragePackage)})
	t.Append([]string{"Highest Package", lpa(s.HighestPackage)})
	if hasTop {
		t.Append([]string{"Top Recruiter", fmt.Sprintf("%s (%d placed)", top.Name, topPlaced)})
	}
	t.Render()
}

// Branches renders per-branch placement statistics.
func (r *Renderer) Branches(stats []insights.BranchStat) {
	r.title("Branch-wise Placements")
	t := r.table([]string{"Branch", "Placed", "Total", "Average Package"})
	for _, b := range stats {
		t.Append([]string{b.Branch, strconv.Itoa(b.Placed), strconv.Itoa(b.Total), lpa(b.AveragePackage)})
	}
	t.Render()
}

// Timeline renders organizations in arrival order.
func (r *Renderer) Timeline(organizations []placement.Organization) {
	r.title("Recruitment Timeline")
	t := r.table([]string{"Date", "ID", "Company", "Role", "Package", "Min GPA", "Rounds"})
	for _, o := range organizations {
		t.Append([]string{
			o.ArrivalDate.Format(placement.DateLayout),
			o.ID,
			o.Name,
			o.Role,
			lpa(o.Package),
			score(o.MinGPA),
			strconv.Itoa(o.Rounds),
		})
	}
	t.Render()
}

// Prediction renders a placement probability.
func (r *Renderer) Prediction(p insights.Probability) {
	c := r.good
	switch p {
	case insights.Medium:
		c = r.heading
	case insights.Low:
		c = r.bad
	}
	fmt.Fprint(r.w, "Placement probability: ")
	c.Fprintln(r.w, string(p))
}

// Resume renders a resume keyword analysis.
func (r *Renderer) Resume(a insights.ResumeAnalysis) {
	r.title("Resume Analysis")
	t := r.table([]string{"Metric", "Value"})
	t.Append([]string{"Match Score", strconv.Itoa(a.Score) + "%"})
	t.Append([]string{"Keywords", strconv.Itoa(a.KeywordCount)})
	t.Append([]string{"Matched", strings.Join(a.Matched, ", ")})
	t.Append([]string{"Missing", strings.Join(a.Missing, ", ")})
	t.Render()
}

// Text renders a titled block of free text.
func (r *Renderer) Text(title, body string) {
	r.title(title)
	fmt.Fprintln(r.w, strings.TrimSpace(body))
}

func percent(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

// Company renders an organization profile with its salary trend.
func (r *Renderer) Company(p insights.CompanyProfile) {
	o := p.Organization
	r.title(fmt.Sprintf("Company Insights: %s", o.Name))
	t := r.table([]string{"Metric", "Value"})
	t.Append([]string{"Current Package", lpa(o.Package)})
	t.Append([]string{"Total Hires", strconv.Itoa(o.Hires)})
	t.Append([]string{"Role Offered", o.Role})
	t.Append([]string{"Minimum GPA", score(o.MinGPA)})
	t.Append([]string{"Interview Rounds", strconv.Itoa(o.Rounds)})
	t.Append([]string{"Arrival Date", o.ArrivalDate.Format(placement.DateLayout)})
	t.Append([]string{"Skills Required", strings.Join(p.Skills, ", ")})
	t.Render()

	if len(p.Trend) == 0 {
		fmt.Fprintln(r.w, "No salary history recorded.")
		return
	}

	r.title("Salary Trend")
	t = r.table([]string{"Year", "Package", "Change"})
	for _, c := range p.Trend {
		change := "-"
		if c.HasGrowth {
			change = percent(c.Growth)
		}
		t.Append([]string{strconv.Itoa(c.Year), lpa(c.Package), change})
	}
	t.Render()

	if p.HasTotalGrowth {
		first, last := p.Trend[0], p.Trend[len(p.Trend)-1]
		c := r.good
		if p.TotalGrowth < 0 {
			c = r.bad
		}
		c.Fprintf(r.w, "Growth %d-%d: %s\n", first.Year, last.Year, percent(p.TotalGrowth))
	}
}

// Compare renders two organizations side by side.
func (r *Renderer) Compare(c insights.Comparison) {
	left, right := c.Left.Organization, c.Right.Organization
	r.title("Company Comparison")
	t := r.table([]string{"Metric", left.Name, right.Name})
	t.Append([]string{"Package", lpa(left.Package), lpa(right.Package)})
	t.Append([]string{"Role", left.Role, right.Role})
	t.Append([]string{"Hires", strconv.Itoa(left.Hires), strconv.Itoa(right.Hires)})
	t.Append([]string{"Min GPA", score(left.MinGPA), score(right.MinGPA)})
	t.Append([]string{"Rounds", strconv.Itoa(left.Rounds), strconv.Itoa(right.Rounds)})
	t.Append([]string{"Salary Growth", totalGrowth(c.Left), totalGrowth(c.Right)})
	t.Render()

	switch c.PackageLeader {
	case -1:
		r.good.Fprintf(r.w, "Higher package: %s\n", left.Name)
	case 1:
		r.good.Fprintf(r.w, "Higher package: %s\n", right.Name)
	default:
		fmt.Fprintln(r.w, "Both packages are equal.")
	}
}

func totalGrowth(p insights.CompanyProfile) string {
	if !p.HasTotalGrowth {
		return "-"
	}
	return percent(p.TotalGrowth)
}
