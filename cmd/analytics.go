package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/insights"
	"github.com/hey-rash/PlacementNex/internal/ranking"
	"github.com/hey-rash/PlacementNex/internal/report"
	"github.com/hey-rash/PlacementNex/internal/skillgap"
	"github.com/hey-rash/PlacementNex/internal/sorting"
)

func newRenderer() *report.Renderer {
	return report.New(os.Stdout, !viper.GetBool("no-color") && !color.NoColor)
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank students by merit score",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, _, ds := bootstrap()

		top, _ := cmd.Flags().GetInt("top")

		heap := ranking.BuildFrom(ds.Candidates)
		var list []ranking.Ranked
		if top > 0 {
			list = heap.Top(top)
		} else {
			list = heap.RankedList()
		}

		logger.Debug("ranking built", zap.Int("candidates", heap.Len()), zap.Int("shown", len(list)))
		newRenderer().Ranking(list)
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort students by an attribute",
	Long:  "Sort students by one of: " + strings.Join(fieldNames(), ", ") + ". Equal keys keep their dataset order.",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, _, ds := bootstrap()

		fieldFlag, _ := cmd.Flags().GetString("field")
		orderFlag, _ := cmd.Flags().GetString("order")

		field, err := sorting.ParseField(fieldFlag)
		if err != nil {
			logger.Fatal("parsing sort field", zap.Error(err), zap.Strings("allowed", fieldNames()))
		}
		dir, err := sorting.ParseDirection(orderFlag)
		if err != nil {
			logger.Fatal("parsing sort order", zap.Error(err))
		}

		sorted := sorting.Sort(ds.Candidates, field, dir)
		newRenderer().Candidates(sorted, ds.Organizations)

		if dump, _ := cmd.Flags().GetBool("dump"); dump {
			ds.Candidates = sorted
			filename, err := ds.DumpToTmpFile()
			if err != nil {
				logger.Fatal("dump results to file", zap.Error(err))
			}
			logger.Info("dumping result to file", zap.String("filename", filename))
		}
	},
}

var skillGapCmd = &cobra.Command{
	Use:   "skill-gap",
	Short: "Compare recruiter skill demand with student supply",
	Run: func(cmd *cobra.Command, _ []string) {
		_, _, ds := bootstrap()

		gaps, _ := cmd.Flags().GetInt("gaps")
		values, _ := cmd.Flags().GetInt("values")

		rep := skillgap.AnalyzeWith(ds.Candidates, ds.Organizations, skillgap.Options{GapLimit: gaps, ValueLimit: values})
		newRenderer().SkillGap(rep)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the placement dashboard",
	Run: func(_ *cobra.Command, _ []string) {
		_, _, ds := bootstrap()

		r := newRenderer()
		top, placed, ok := insights.TopRecruiter(ds)
		r.Summary(insights.Summarize(ds.Candidates), top, placed, ok)
		r.Branches(insights.BranchStats(ds.Candidates))
		r.Timeline(insights.Timeline(ds.Organizations))
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Estimate the placement probability of a profile",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, err := newCommandLogger()
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}

		gpa, _ := cmd.Flags().GetFloat64("gpa")
		skills, _ := cmd.Flags().GetInt("skills")
		projects, _ := cmd.Flags().GetInt("projects")

		if gpa < 0 || gpa > 10 || skills < 0 || projects < 0 {
			logger.Fatal("invalid profile",
				zap.Float64("gpa", gpa),
				zap.Int("skills", skills),
				zap.Int("projects", projects),
			)
		}

		newRenderer().Prediction(insights.Predict(gpa, skills, projects))
	},
}

func fieldNames() []string {
	names := make([]string, 0, len(sorting.Fields))
	for _, f := range sorting.Fields {
		names = append(names, string(f))
	}
	return names
}

func init() {
	rootCmd.AddCommand(rankCmd, sortCmd, skillGapCmd, statsCmd, predictCmd)

	rankCmd.Flags().IntP("top", "n", 0, "show only the top N students (0 shows everyone)")

	sortCmd.Flags().StringP("field", "f", string(sorting.FieldGPA), "attribute to sort by")
	sortCmd.Flags().StringP("order", "o", string(sorting.Ascending), "sort order: asc or desc")
	sortCmd.Flags().Bool("dump", false, "also dump the sorted dataset to a temporary json file")

	skillGapCmd.Flags().Int("gaps", 10, "number of rows in the demand vs supply table")
	skillGapCmd.Flags().Int("values", 5, "number of rows in the high value skills table")

	predictCmd.Flags().Float64("gpa", 0, "cumulative gpa on a 10 point scale")
	predictCmd.Flags().Int("skills", 0, "number of skills")
	predictCmd.Flags().Int("projects", 0, "number of projects")
	predictCmd.MarkFlagRequired("gpa")
}
