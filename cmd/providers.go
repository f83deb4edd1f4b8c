package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/resources"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Inspect resource providers",
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the providers enabled by the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		trust := resources.DefaultPlatformTrust()
		fmt.Printf("%-16s  %s\n", "Provider", "Trust")
		fmt.Println(strings.Repeat("─", 26))
		for _, name := range a.Registry.Names() {
			fmt.Printf("%-16s  %.2f\n", name, trust[name])
		}
		return nil
	},
}

var providersSearchCmd = &cobra.Command{
	Use:   "search <topic>",
	Short: "Run one ranked resource search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		role, _ := cmd.Flags().GetString("role")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ranker := resources.NewRanker(a.Registry, a.Config.Ranker(), logger.Named("ranker"))
		rs := ranker.FindResources(cmd.Context(), resources.Query{
			Topic: args[0],
			Role:  role,
			Limit: limit,
		}, resources.NewSeenSet())
		if len(rs) == 0 {
			fmt.Println("No resources found.")
			return nil
		}
		for i, r := range rs {
			fmt.Printf("%2d. [%s] %s\n    %s\n", i+1, r.Platform, r.Title, r.URL)
		}
		return nil
	},
}

var providersStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded provider call statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.EventRepo().ProviderStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query provider stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No provider calls recorded yet.")
			return nil
		}

		fmt.Printf("%-16s  %6s  %8s  %8s  %8s\n", "Provider", "Calls", "Failures", "Results", "Avg Ms")
		fmt.Println(strings.Repeat("─", 56))
		for _, st := range stats {
			fmt.Printf("%-16s  %6d  %8d  %8d  %8.0f\n",
				st.Provider, st.Calls, st.Failures, st.Results, st.AvgLatencyMs)
		}
		return nil
	},
}

func init() {
	providersSearchCmd.Flags().IntP("limit", "n", resources.DefaultLimit, "Maximum number of resources")
	providersSearchCmd.Flags().String("role", "", "Target role used to expand search terms")

	providersCmd.AddCommand(providersListCmd)
	providersCmd.AddCommand(providersSearchCmd)
	providersCmd.AddCommand(providersStatsCmd)
}
