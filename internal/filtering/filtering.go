// Package filtering narrows a candidate pool before it enters a hiring drive.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/placement"
)

// Filter represents a single eligibility step applied to the pool.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Apply(ctx context.Context, deps Deps, pool []placement.Candidate) ([]placement.Candidate, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger       *zap.Logger
	Organization placement.Organization
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config selects which filters run. It is decoded from the simulation.filters section.
type Config struct {
	MinGPA       bool     `mapstructure:"min-gpa"`
	UnplacedOnly bool     `mapstructure:"unplaced-only"`
	SkillMatch   bool     `mapstructure:"skill-match"`
	Branches     []string `mapstructure:"branches"`
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// FromConfig builds the filter list. Filters not selected by the config are
// kept in the list but disabled, so Describe can report them.
func FromConfig(cfg Config) []Filter {
	steps := []Filter{
		NewUnplacedOnly(),
		NewBranches(cfg.Branches),
		NewMinGPA(),
		NewSkillMatch(),
	}

	if !cfg.UnplacedOnly {
		DisableByName(steps, unplacedOnlyName, "not selected in config")
	}
	if len(cfg.Branches) == 0 {
		DisableByName(steps, branchesName, "no branches configured")
	}
	if !cfg.MinGPA {
		DisableByName(steps, minGPAName, "not selected in config")
	}
	if !cfg.SkillMatch {
		DisableByName(steps, skillMatchName, "not selected in config")
	}

	return steps
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the enabled filters sequentially and returns the remaining pool.
// The input slice is not modified.
func Run(ctx context.Context, deps Deps, steps []Filter, pool []placement.Candidate) ([]placement.Candidate, error) {
	current := append([]placement.Candidate(nil), pool...)

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Debug("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, info, err := step.Apply(ctx, deps, current)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		current = next
	}

	return current, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// keep returns the candidates matching pred and the step statistics.
func keep(pool []placement.Candidate, pred func(placement.Candidate) bool) ([]placement.Candidate, Step) {
	out := make([]placement.Candidate, 0, len(pool))
	for _, c := range pool {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out, Step{Initial: len(pool), Dropped: len(pool) - len(out), Left: len(out)}
}

// toggle holds the enable/disable state shared by all filters.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }
