package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill graph",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by category or difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		if difficulty != "" && !skillgraph.Difficulty(difficulty).Valid() {
			return fmt.Errorf("unknown difficulty %q", difficulty)
		}

		g, err := skillgraph.Default()
		if err != nil {
			return err
		}

		var skills []skillgraph.Skill
		for _, s := range g.All() {
			if category != "" && string(s.Category) != category {
				continue
			}
			if difficulty != "" && string(s.Difficulty) != difficulty {
				continue
			}
			skills = append(skills, s)
		}
		if len(skills) == 0 {
			return fmt.Errorf("no skills match the given filters")
		}

		// Header.
		fmt.Printf("%-26s  %-30s  %-13s  %-16s  %s\n",
			"ID", "Name", "Difficulty", "Category", "Prerequisites")
		fmt.Println(strings.Repeat("─", 115))

		for _, s := range skills {
			fmt.Printf("%-26s  %-30s  %-13s  %-16s  %s\n",
				s.ID, truncate(s.Name, 30), s.Difficulty, s.Category,
				strings.Join(s.Prerequisites, ", "))
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one skill with its prerequisites and dependents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := skillgraph.Default()
		if err != nil {
			return err
		}
		s, ok := g.Get(args[0])
		if !ok {
			return fmt.Errorf("skill %q not found", args[0])
		}

		fmt.Printf("ID:            %s\n", s.ID)
		fmt.Printf("Name:          %s\n", s.Name)
		fmt.Printf("Category:      %s\n", s.Category)
		fmt.Printf("Difficulty:    %s\n", s.Difficulty)
		fmt.Printf("Prerequisites: %s\n", orNone(g.Prerequisites(s.ID)))
		fmt.Printf("Unlocks:       %s\n", orNone(g.Dependents(s.ID)))
		fmt.Printf("Learning path: %s\n", strings.Join(g.Order(withAncestors(g, s.ID)), " → "))
		return nil
	},
}

// withAncestors returns id and every transitive prerequisite of it.
func withAncestors(g *skillgraph.Graph, id string) []string {
	seen := map[string]bool{}
	var out []string
	var visit func(string)
	visit = func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		for _, p := range g.Prerequisites(id) {
			visit(p)
		}
		out = append(out, id)
	}
	visit(id)
	return out
}

func orNone(ids []string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	return strings.Join(ids, ", ")
}

func init() {
	skillListCmd.Flags().String("category", "", "Filter by category (e.g. programming)")
	skillListCmd.Flags().String("difficulty", "", "Filter by difficulty (beginner, intermediate, advanced)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}
