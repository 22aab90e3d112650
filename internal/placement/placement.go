package placement

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when an entity with the requested id does not exist.
var ErrNotFound = errors.New("not found")

// Candidate is a student taking part in the placement season.
type Candidate struct {
	ID          string   `mapstructure:"id" json:"id"`
	Name        string   `mapstructure:"name" json:"name"`
	Branch      string   `mapstructure:"branch" json:"branch"`
	GPA         float64  `mapstructure:"gpa" json:"gpa"`
	Skills      []string `mapstructure:"skills" json:"skills"`
	Projects    int      `mapstructure:"projects" json:"projects"`
	Internships int      `mapstructure:"internships" json:"internships"`
	Placed      bool     `mapstructure:"placed" json:"placed"`
	CompanyID   string   `mapstructure:"company_id" json:"company_id,omitempty"`
	// Package is the annual compensation. It is only meaningful for placed candidates.
	Package    *float64 `mapstructure:"package" json:"package,omitempty"`
	ResumeText string   `mapstructure:"resume_text" json:"resume_text,omitempty"`
}

// Organization is a recruiter visiting the campus.
type Organization struct {
	ID             string       `mapstructure:"id" json:"id"`
	Name           string       `mapstructure:"name" json:"name"`
	MinGPA         float64      `mapstructure:"min_gpa" json:"min_gpa"`
	Role           string       `mapstructure:"role" json:"role"`
	Package        float64      `mapstructure:"package" json:"package"`
	Hires          int          `mapstructure:"hires" json:"hires"`
	ArrivalDate    time.Time    `mapstructure:"arrival_date" json:"arrival_date"`
	Rounds         int          `mapstructure:"rounds" json:"rounds"`
	RequiredSkills []string     `mapstructure:"required_skills" json:"required_skills"`
	SalaryTrend    []TrendPoint `mapstructure:"salary_trend" json:"salary_trend,omitempty"`
}

// TrendPoint is one year of an organization's compensation history.
type TrendPoint struct {
	Year    int     `mapstructure:"year" json:"year"`
	Package float64 `mapstructure:"package" json:"package"`
}

// Compensation returns the package of a placed candidate. The second value is
// false when the candidate is not placed or no package was recorded.
func (c Candidate) Compensation() (float64, bool) {
	if !c.Placed || c.Package == nil {
		return 0, false
	}
	return *c.Package, true
}

// PackageOrZero treats a missing compensation as zero.
func (c Candidate) PackageOrZero() float64 {
	v, _ := c.Compensation()
	return v
}

// SkillSet returns the canonical, de-duplicated skill labels of the candidate.
func (c Candidate) SkillSet() []string {
	return CanonicalSkills(c.Skills)
}

// HasSkill reports whether the candidate lists the skill, ignoring case.
func (c Candidate) HasSkill(skill string) bool {
	key := CanonicalSkill(skill)
	for _, s := range c.Skills {
		if CanonicalSkill(s) == key {
			return true
		}
	}
	return false
}

// SkillSet returns the canonical, de-duplicated required skills.
func (o Organization) SkillSet() []string {
	return CanonicalSkills(o.RequiredSkills)
}

// CanonicalSkill normalizes a skill label for case-insensitive matching.
func CanonicalSkill(skill string) string {
	return strings.ToUpper(strings.TrimSpace(skill))
}

// CanonicalSkills canonicalizes labels, dropping blanks and duplicates while
// keeping first-seen order.
func CanonicalSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	result := make([]string, 0, len(skills))
	for _, s := range skills {
		key := CanonicalSkill(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, key)
	}
	return result
}

// Dataset is a read-only snapshot of candidates and organizations.
type Dataset struct {
	Candidates    []Candidate    `mapstructure:"candidates" json:"candidates"`
	Organizations []Organization `mapstructure:"organizations" json:"organizations"`
}

// FindCandidate returns the candidate with the given id.
func (d *Dataset) FindCandidate(id string) (Candidate, error) {
	for _, c := range d.Candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return Candidate{}, fmt.Errorf("candidate %q: %w", id, ErrNotFound)
}

// FindOrganization returns the organization with the given id.
func (d *Dataset) FindOrganization(id string) (Organization, error) {
	for _, o := range d.Organizations {
		if o.ID == id {
			return o, nil
		}
	}
	return Organization{}, fmt.Errorf("organization %q: %w", id, ErrNotFound)
}

// Branches returns the distinct candidate branches in first-seen order.
func (d *Dataset) Branches() []string {
	seen := make(map[string]struct{})
	branches := make([]string, 0)
	for _, c := range d.Candidates {
		if _, ok := seen[c.Branch]; ok || c.Branch == "" {
			continue
		}
		seen[c.Branch] = struct{}{}
		branches = append(branches, c.Branch)
	}
	return branches
}

// Validate rejects malformed input before it reaches the analytics packages.
// Every violation is reported.
func (d *Dataset) Validate() error {
	var errs []error

	ids := make(map[string]struct{}, len(d.Candidates))
	for i, c := range d.Candidates {
		switch {
		case strings.TrimSpace(c.ID) == "":
			errs = append(errs, fmt.Errorf("candidate #%d: id is required", i))
		default:
			if _, ok := ids[c.ID]; ok {
				errs = append(errs, fmt.Errorf("candidate %q: duplicate id", c.ID))
			}
			ids[c.ID] = struct{}{}
		}
		if c.GPA < 0 || c.GPA > 10 {
			errs = append(errs, fmt.Errorf("candidate %q: gpa %.2f is outside 0-10", c.ID, c.GPA))
		}
		if c.Projects < 0 || c.Internships < 0 {
			errs = append(errs, fmt.Errorf("candidate %q: project and internship counts must not be negative", c.ID))
		}
	}

	orgIDs := make(map[string]struct{}, len(d.Organizations))
	for i, o := range d.Organizations {
		switch {
		case strings.TrimSpace(o.ID) == "":
			errs = append(errs, fmt.Errorf("organization #%d: id is required", i))
		default:
			if _, ok := orgIDs[o.ID]; ok {
				errs = append(errs, fmt.Errorf("organization %q: duplicate id", o.ID))
			}
			orgIDs[o.ID] = struct{}{}
		}
		if o.Rounds < 0 {
			errs = append(errs, fmt.Errorf("organization %q: rounds must not be negative", o.ID))
		}
		if o.Hires < 0 {
			errs = append(errs, fmt.Errorf("organization %q: hires must not be negative", o.ID))
		}
	}

	return errors.Join(errs...)
}

// Warnings lists soft inconsistencies that are handled by policy rather than
// rejected, e.g. a placed candidate without a package.
func (d *Dataset) Warnings() []string {
	var warnings []string
	for _, c := range d.Candidates {
		if c.Placed && c.Package == nil {
			warnings = append(warnings, fmt.Sprintf("candidate %q is placed without a package; treated as zero", c.ID))
		}
		if !c.Placed && c.Package != nil {
			warnings = append(warnings, fmt.Sprintf("candidate %q has a package but is not placed; package ignored", c.ID))
		}
		if !c.Placed && c.CompanyID != "" {
			warnings = append(warnings, fmt.Sprintf("candidate %q references company %q but is not placed", c.ID, c.CompanyID))
		}
	}
	return warnings
}
