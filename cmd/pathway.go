package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/pathway"
	"github.com/abhisek/pathwise/internal/store"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <pathway.json>",
	Short: "Attach resources to every topic of a pathway file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[0])
		if err != nil {
			return err
		}
		var p pathway.Pathway
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("decode pathway: %w", err)
		}
		if err := pathway.Validate(&p); err != nil {
			return fmt.Errorf("input pathway is invalid: %w", err)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		a.Enricher.Enrich(cmd.Context(), &p)
		if save, _ := cmd.Flags().GetBool("save"); save {
			if err := a.SavePathway(cmd.Context(), &p); err != nil {
				return fmt.Errorf("save pathway: %w", err)
			}
		}
		return writePathway(cmd, &p)
	},
}

var pathwayCmd = &cobra.Command{
	Use:   "pathway",
	Short: "Browse saved pathways",
}

var pathwayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved pathways, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rows, err := s.PathwayRepo().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list pathways: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No saved pathways. Use 'pathwise generate --save'.")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %-24s  %s\n", "ID", "Created", "Role", "Title")
		fmt.Println(strings.Repeat("─", 110))
		for _, r := range rows {
			fmt.Printf("%-36s  %-16s  %-24s  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				truncate(r.TargetRole, 24),
				r.Title)
		}
		return nil
	},
}

var pathwayShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved pathway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.PathwayRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		var p pathway.Pathway
		if err := json.Unmarshal(rec.Body, &p); err != nil {
			return fmt.Errorf("decode pathway %s: %w", rec.ID, err)
		}
		return writePathway(cmd, &p)
	},
}

var pathwayHistoryCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "Show adaptation reports recorded for a pathway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.AdaptationRepo().ListFor(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("list adaptations: %w", err)
		}
		if len(recs) == 0 {
			fmt.Printf("No adaptation reports for %s.\n", args[0])
			return nil
		}
		for _, r := range recs {
			fmt.Printf("%s  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Body)
		}
		return nil
	},
}

func init() {
	enrichCmd.Flags().Bool("save", false, "Store the enriched pathway in the database")
	addOutputFlags(enrichCmd)

	pathwayListCmd.Flags().IntP("limit", "n", 20, "Number of pathways to show")
	addOutputFlags(pathwayShowCmd)

	pathwayCmd.AddCommand(pathwayListCmd)
	pathwayCmd.AddCommand(pathwayShowCmd)
	pathwayCmd.AddCommand(pathwayHistoryCmd)
}
