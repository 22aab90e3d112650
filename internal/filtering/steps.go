package filtering

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/placement"
)

const (
	unplacedOnlyName = "unplaced_only"
	minGPAName       = "min_gpa"
	skillMatchName   = "skill_match"
)

type unplacedOnlyFilter struct {
	toggle
}

// NewUnplacedOnly creates a filter that removes candidates who already hold an offer.
func NewUnplacedOnly() Filter {
	return &unplacedOnlyFilter{}
}

func (f *unplacedOnlyFilter) Name() string { return unplacedOnlyName }

func (f *unplacedOnlyFilter) Apply(_ context.Context, deps Deps, pool []placement.Candidate) ([]placement.Candidate, Step, error) {
	out, step := keep(pool, func(c placement.Candidate) bool { return !c.Placed })
	if deps.Logger != nil && step.Dropped > 0 {
		deps.Logger.Debug("excluding already placed candidates", zap.Int("candidates_left", step.Left))
	}
	return out, step, nil
}

func (f *unplacedOnlyFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}

type minGPAFilter struct {
	toggle
	threshold float64
}

// NewMinGPA creates a filter that applies the organization's GPA cut-off.
func NewMinGPA() Filter {
	return &minGPAFilter{}
}

func (f *minGPAFilter) Name() string { return minGPAName }

func (f *minGPAFilter) Apply(_ context.Context, deps Deps, pool []placement.Candidate) ([]placement.Candidate, Step, error) {
	f.threshold = deps.Organization.MinGPA
	if f.threshold < 0 || f.threshold > 10 {
		return nil, Step{}, fmt.Errorf("organization %q has invalid gpa threshold %.2f", deps.Organization.ID, f.threshold)
	}

	out, step := keep(pool, func(c placement.Candidate) bool { return c.GPA >= f.threshold })
	if deps.Logger != nil && step.Dropped > 0 {
		deps.Logger.Debug("excluding candidates below gpa threshold",
			zap.Float64("threshold", f.threshold),
			zap.Int("candidates_left", step.Left),
		)
	}
	return out, step, nil
}

func (f *minGPAFilter) Status() Status {
	details := map[string]string{}
	if f.threshold > 0 {
		details["threshold"] = strconv.FormatFloat(f.threshold, 'f', 2, 64)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type skillMatchFilter struct {
	toggle
	required []string
}

// NewSkillMatch creates a filter that keeps candidates with at least one of the
// organization's required skills. Organizations without requirements keep everyone.
func NewSkillMatch() Filter {
	return &skillMatchFilter{}
}

func (f *skillMatchFilter) Name() string { return skillMatchName }

func (f *skillMatchFilter) Apply(_ context.Context, deps Deps, pool []placement.Candidate) ([]placement.Candidate, Step, error) {
	f.required = deps.Organization.SkillSet()
	if len(f.required) == 0 {
		return pool, Step{Initial: len(pool), Left: len(pool)}, nil
	}

	out, step := keep(pool, func(c placement.Candidate) bool {
		for _, skill := range f.required {
			if c.HasSkill(skill) {
				return true
			}
		}
		return false
	})

	if deps.Logger != nil && step.Dropped > 0 {
		deps.Logger.Debug("excluding candidates without required skills",
			zap.Strings("required_skills", f.required),
			zap.Int("candidates_left", step.Left),
		)
	}
	return out, step, nil
}

func (f *skillMatchFilter) Status() Status {
	details := map[string]string{}
	if len(f.required) > 0 {
		details["required_skills"] = strings.Join(f.required, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
