package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/adapt"
	"github.com/abhisek/pathwise/internal/render"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt <feedback.json>",
	Short: "Analyze learner feedback and recommend pathway adjustments",
	Long: "Reads per-topic feedback (completion_rates, time_spent in minutes,\n" +
		"difficulty_ratings 1-5, engagement_scores 0-5), prints recommended changes,\n" +
		"and records the report against the pathway. The pathway itself is not modified.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pathwayID, _ := cmd.Flags().GetString("pathway")
		asJSON, _ := cmd.Flags().GetBool("json")

		data, err := readInput(args[0])
		if err != nil {
			return err
		}
		var fb adapt.Feedback
		if err := json.Unmarshal(data, &fb); err != nil {
			return fmt.Errorf("decode feedback: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		if _, err := s.PathwayRepo().Get(ctx, pathwayID); err != nil {
			return err
		}

		ad := adapt.New(adapt.WithRepo(s.AdaptationRepo()), adapt.WithLogger(logger.Named("adapt")))
		report, err := ad.Adapt(ctx, pathwayID, fb)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Report(report))
		return nil
	},
}

func init() {
	adaptCmd.Flags().String("pathway", "", "ID of a saved pathway")
	adaptCmd.Flags().Bool("json", false, "Print the report as JSON")
	_ = adaptCmd.MarkFlagRequired("pathway")
}
