package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/careers"
)

var careersCmd = &cobra.Command{
	Use:   "careers [role]",
	Short: "List career roles, or show the skills behind one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := careers.Default()

		if len(args) == 0 {
			for _, r := range catalog.Roles() {
				fmt.Println(r)
			}
			return nil
		}

		p, ok := catalog.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown role %q (known: %s)", args[0], strings.Join(catalog.Roles(), ", "))
		}
		rows := []struct {
			label  string
			skills []string
		}{
			{"Core", p.CoreSkills},
			{"Languages", p.LanguageSkills},
			{"Specializations", p.SpecializationOptions},
			{"Advanced", p.AdvancedSkills},
			{"Soft skills", p.SoftSkills},
		}
		fmt.Println(args[0])
		fmt.Println(strings.Repeat("─", 60))
		for _, r := range rows {
			fmt.Printf("%-16s %s\n", r.label+":", orNone(r.skills))
		}
		return nil
	},
}
