package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/planner"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the dependency-ordered skill plan for target skills",
	Example: `  pathwise plan --skill machine_learning --timeline "6-12 months"
  pathwise plan --skill python_basics --skill web_development --level intermediate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, _ := cmd.Flags().GetStringSlice("skill")
		timeline, _ := cmd.Flags().GetString("timeline")
		level, _ := cmd.Flags().GetString("level")
		if len(skills) == 0 {
			return fmt.Errorf("at least one --skill is required")
		}

		g, err := skillgraph.Default()
		if err != nil {
			return err
		}
		for _, id := range skills {
			if !g.Has(id) {
				fmt.Printf("note: %q is not in the skill graph; it is planned at %.0fh\n", id, planner.UnknownSkillHours)
			}
		}

		knowledge := assessment.KnowledgeLevels{OverallLevel: level}
		plan := planner.New(g).Plan(skills, knowledge, timeline)

		fmt.Printf("Timeline: %d weeks\n\n", plan.TotalWeeks)
		fmt.Printf("%-6s  %-28s  %-13s  %8s\n", "Phase", "Skill", "Difficulty", "Hours")
		fmt.Println(strings.Repeat("─", 62))
		for i, ph := range plan.Phases {
			for j, id := range ph.Skills {
				label := ""
				if j == 0 {
					label = fmt.Sprintf("%d", i+1)
				}
				fmt.Printf("%-6s  %-28s  %-13s  %8.1f\n",
					label, truncate(id, 28), g.Difficulty(id), plan.TimeEstimates[id])
			}
			fmt.Printf("%-6s  %-28s  %-13s  %8s\n", "", "", "", fmt.Sprintf("%d wk", ph.EstimatedWeeks))
		}
		return nil
	},
}

func init() {
	planCmd.Flags().StringSlice("skill", nil, "Target skill ID (repeatable)")
	planCmd.Flags().String("timeline", "", "Timeline label, e.g. \"6-12 months\"")
	planCmd.Flags().String("level", "", "Overall experience: beginner, novice, intermediate, advanced or expert")
}
