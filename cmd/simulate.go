package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/filtering"
	"github.com/hey-rash/PlacementNex/internal/insights"
	"github.com/hey-rash/PlacementNex/internal/logger"
	"github.com/hey-rash/PlacementNex/internal/placement"
	"github.com/hey-rash/PlacementNex/internal/simulation"
	"github.com/hey-rash/PlacementNex/internal/utils"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate an organization's hiring drive over the student pool",
	Run: func(cmd *cobra.Command, _ []string) {
		simulate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringP("organization", "o", "", "organization id; an interactive picker is shown when unset")
	simulateCmd.Flags().Uint64("seed", 0, "random seed for pass trials (0 seeds from the clock)")
	simulateCmd.Flags().Duration("delay", 0, "pause between rounds")
	simulateCmd.Flags().Bool("show-filters", false, "print the eligibility filter status before the run")

	viper.BindPFlag("simulation.seed", simulateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("simulation.delay", simulateCmd.Flags().Lookup("delay"))
}

func simulate(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log, config, ds := bootstrap()

	orgID, _ := cmd.Flags().GetString("organization")
	if orgID == "" {
		var err error
		orgID, err = pickOrganization(ds, "Choose an organization and press ENTER")
		if err != nil {
			log.Fatal("choosing an organization", zap.Error(err))
		}
	}

	org, err := ds.FindOrganization(orgID)
	if err != nil {
		log.Fatal("finding the organization", zap.Error(err))
	}

	steps := filtering.FromConfig(config.Simulation.Filters)
	r := newRenderer()
	if show, _ := cmd.Flags().GetBool("show-filters"); show {
		r.Filters(filtering.Describe(steps))
	}

	pool, err := filtering.Run(ctx, filtering.Deps{
		Logger:       logger.WithFields(log, logger.SimulationFields("", org.ID)...),
		Organization: org,
	}, steps, ds.Candidates)
	if err != nil {
		log.Fatal("filtering the candidate pool", zap.Error(err))
	}

	sim := simulation.New(org, pool, config.Simulation.Rounds,
		simulation.WithRandom(simulation.NewRandom(config.Simulation.Seed)),
		simulation.WithLogger(log),
	)

	log.Info("starting the hiring drive",
		zap.String(logger.FieldSimulation, sim.ID()),
		zap.String(logger.FieldOrganization, org.ID),
		zap.Int("candidates", len(pool)),
		zap.Int("planned_rounds", sim.PlannedRounds()),
		zap.Uint64("seed", config.Simulation.Seed),
	)

	for {
		stats, ok := sim.Step()
		if !ok {
			break
		}
		r.Round(stats)

		if sim.Done() {
			break
		}
		if err := utils.WaitFor(ctx, config.Simulation.Delay); err != nil {
			log.Warn("simulation interrupted", zap.String(logger.FieldSimulation, sim.ID()), zap.Error(err))
			break
		}
	}

	r.Rounds(org, sim.History(), sim.Survivors())
}

// pickOrganization asks the user to choose an organization from the timeline.
func pickOrganization(ds *placement.Dataset, label string) (string, error) {
	timeline := insights.Timeline(ds.Organizations)
	if len(timeline) == 0 {
		return "", fmt.Errorf("dataset has no organizations")
	}

	items := make([]string, 0, len(timeline))
	for _, o := range timeline {
		items = append(items, fmt.Sprintf("%s %s / %s / %s",
			o.ID, o.Name, o.Role, o.ArrivalDate.Format(placement.DateLayout),
		))
	}

	picker := promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
	}

	_, selected, err := picker.Run()
	if err != nil {
		return "", err
	}

	return strings.Split(selected, " ")[0], nil
}
