// Package simulation models a candidate pool shrinking through elimination rounds.
//
// Each round dequeues exactly the candidates present when it starts, runs one
// pass trial per candidate and re-enqueues the survivors. Pacing between
// rounds is left to the caller, who can drive the run one Step at a time.
package simulation

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/logger"
	"github.com/hey-rash/PlacementNex/internal/placement"
)

// Round is one elimination stage.
type Round struct {
	Name     string  `mapstructure:"name"`
	PassRate float64 `mapstructure:"pass-rate"`
}

// DefaultRounds returns the standard four-stage hiring drive.
func DefaultRounds() []Round {
	return []Round{
		{Name: "Resume Shortlisting", PassRate: 0.8},
		{Name: "Online Assessment", PassRate: 0.5},
		{Name: "Technical Interview", PassRate: 0.4},
		{Name: "HR Interview", PassRate: 0.9},
	}
}

// RoundStats records the outcome of one round.
type RoundStats struct {
	Index    int
	Round    string
	Entering int
	Passed   int
}

// Eliminated is the number of candidates dropped in the round.
func (s RoundStats) Eliminated() int {
	return s.Entering - s.Passed
}

// RandomSource yields uniformly distributed values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// NewRandom returns a PCG based source. A zero seed draws one from the clock.
func NewRandom(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRandom injects the source used for pass trials.
func WithRandom(src RandomSource) Option {
	return func(s *Simulator) {
		if src != nil {
			s.random = src
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		s.logger = l
	}
}

// WithID overrides the generated run id.
func WithID(id string) Option {
	return func(s *Simulator) {
		if id != "" {
			s.id = id
		}
	}
}

// Simulator runs one organization's drive over a candidate pool.
type Simulator struct {
	id      string
	org     placement.Organization
	rounds  []Round
	queue   Queue[placement.Candidate]
	random  RandomSource
	logger  *zap.Logger
	next    int
	done    bool
	history []RoundStats
}

// New enqueues the candidates in order and plans min(org.Rounds, len(rounds)) rounds.
func New(org placement.Organization, candidates []placement.Candidate, rounds []Round, opts ...Option) *Simulator {
	planned := min(max(org.Rounds, 0), len(rounds))

	s := &Simulator{
		id:     uuid.NewString(),
		org:    org,
		rounds: append([]Round(nil), rounds[:planned]...),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.random == nil {
		s.random = NewRandom(0)
	}
	s.logger = logger.WithFields(logger.ForComponent(s.logger, "simulation"), logger.SimulationFields(s.id, org.ID)...)

	for _, c := range candidates {
		s.queue.Enqueue(c)
	}

	s.logger.Debug("simulation created",
		zap.Int("candidates", s.queue.Size()),
		zap.Int("planned_rounds", planned),
	)

	return s
}

// ID identifies the run in logs.
func (s *Simulator) ID() string {
	return s.id
}

// Organization returns the organization being simulated.
func (s *Simulator) Organization() placement.Organization {
	return s.org
}

// PlannedRounds is the maximum number of rounds the run can execute.
func (s *Simulator) PlannedRounds() int {
	return len(s.rounds)
}

// Done reports whether no further round will run.
func (s *Simulator) Done() bool {
	return s.done || s.next >= len(s.rounds)
}

// Step runs the next round. It returns false once the run is over.
func (s *Simulator) Step() (RoundStats, bool) {
	if s.Done() {
		s.done = true
		return RoundStats{}, false
	}

	round := s.rounds[s.next]
	entering := s.queue.Size()
	stats := RoundStats{Index: s.next + 1, Round: round.Name, Entering: entering}
	s.next++

	if entering == 0 {
		s.done = true
		s.history = append(s.history, stats)
		s.logger.Info("round started with no candidates; stopping", zap.String("round", round.Name))
		return stats, true
	}

	survivors := make([]placement.Candidate, 0, entering)
	for range entering {
		c, ok := s.queue.Dequeue()
		if !ok {
			break
		}
		if s.random.Float64() < round.PassRate {
			survivors = append(survivors, c)
		}
	}
	for _, c := range survivors {
		s.queue.Enqueue(c)
	}

	stats.Passed = len(survivors)
	s.history = append(s.history, stats)

	s.logger.Debug("round finished",
		zap.Int("round_index", stats.Index),
		zap.String("round", stats.Round),
		zap.Float64("pass_rate", round.PassRate),
		zap.Int("entering", stats.Entering),
		zap.Int("passed", stats.Passed),
		zap.Int("eliminated", stats.Eliminated()),
	)

	return stats, true
}

// Run executes every remaining round and returns the full history.
func (s *Simulator) Run() []RoundStats {
	for {
		if _, ok := s.Step(); !ok {
			break
		}
	}
	return s.History()
}

// History returns the statistics of the rounds executed so far.
func (s *Simulator) History() []RoundStats {
	return append([]RoundStats{}, s.history...)
}

// Survivors returns the candidates still in the pool.
func (s *Simulator) Survivors() []placement.Candidate {
	return s.queue.Items()
}
