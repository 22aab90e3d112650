package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/placement"
)

const branchesName = "branches"

type branchesFilter struct {
	toggle
	branches map[string]struct{}
	names    []string
}

// NewBranches creates a filter that keeps candidates from the listed branches only.
func NewBranches(branches []string) Filter {
	f := &branchesFilter{branches: make(map[string]struct{}, len(branches))}
	for _, b := range branches {
		key := strings.ToUpper(strings.TrimSpace(b))
		if key == "" {
			continue
		}
		if _, ok := f.branches[key]; !ok {
			f.branches[key] = struct{}{}
			f.names = append(f.names, key)
		}
	}
	return f
}

func (f *branchesFilter) Name() string { return branchesName }

func (f *branchesFilter) Apply(_ context.Context, deps Deps, pool []placement.Candidate) ([]placement.Candidate, Step, error) {
	if len(f.branches) == 0 {
		return pool, Step{Initial: len(pool), Left: len(pool)}, nil
	}

	out, step := keep(pool, func(c placement.Candidate) bool {
		_, ok := f.branches[strings.ToUpper(strings.TrimSpace(c.Branch))]
		return ok
	})

	if deps.Logger != nil && step.Dropped > 0 {
		deps.Logger.Debug("excluding candidates by branch",
			zap.Strings("allowed_branches", f.names),
			zap.Int("candidates_left", step.Left),
		)
	}

	return out, step, nil
}

func (f *branchesFilter) Status() Status {
	details := map[string]string{}
	if len(f.names) > 0 {
		details["branches"] = strings.Join(f.names, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
