package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/insights"
	"github.com/hey-rash/PlacementNex/internal/placement"
)

var companyCmd = &cobra.Command{
	Use:   "company [ID]",
	Short: "Show an organization's package, criteria and salary trend",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		log, _, ds := bootstrap()

		org := resolveOrganization(log, ds, args, 0, "Choose an organization and press ENTER")
		newRenderer().Company(insights.Company(org))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [ID ID]",
	Short: "Compare two organizations side by side",
	Args:  cobra.MaximumNArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		log, _, ds := bootstrap()

		left := resolveOrganization(log, ds, args, 0, "Choose the first organization")
		right := resolveOrganization(log, ds, args, 1, "Choose the second organization")

		log.Debug("comparing organizations", zap.String("left", left.ID), zap.String("right", right.ID))
		newRenderer().Compare(insights.Compare(left, right))
	},
}

func init() {
	rootCmd.AddCommand(companyCmd, compareCmd)
}

// resolveOrganization takes the id at args[i] or asks for one.
func resolveOrganization(log *zap.Logger, ds *placement.Dataset, args []string, i int, label string) placement.Organization {
	var id string
	if i < len(args) {
		id = args[i]
	} else {
		var err error
		id, err = pickOrganization(ds, label)
		if err != nil {
			log.Fatal("choosing an organization", zap.Error(err))
		}
	}

	org, err := ds.FindOrganization(id)
	if err != nil {
		log.Fatal("finding the organization", zap.Error(err))
	}
	return org
}
