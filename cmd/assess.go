package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/assessment"
)

var assessCmd = &cobra.Command{
	Use:   "assess [answers.json]",
	Short: "Score assessment answers into a learner profile",
	Long: "Scores a JSON object of answers (question ID to option index, or to a list of\n" +
		"option indices for ranking questions) and prints the learner profile as JSON.\n" +
		"With --questions, prints the question bank instead.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if show, _ := cmd.Flags().GetBool("questions"); show {
			printQuestions(cmd)
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("answers file required (use - for stdin)")
		}

		data, err := readInput(args[0])
		if err != nil {
			return err
		}
		r, err := assessment.ParseResponses(data)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(assessment.Score(r))
	},
}

func printQuestions(cmd *cobra.Command) {
	initial, _ := cmd.Flags().GetBool("initial")
	qs := assessment.Questions()
	if initial {
		qs = assessment.InitialQuestions()
	}

	for _, q := range qs {
		fmt.Printf("%-4s [%s] %s\n", q.ID, q.Category, q.Text)
		for i, o := range q.Options {
			fmt.Printf("       %d. %s\n", i, o)
		}
		if q.Type == assessment.Ranking {
			fmt.Println("       (rank: list option indices, most preferred first)")
		}
	}
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%d questions\n", len(qs))
}

func init() {
	assessCmd.Flags().Bool("questions", false, "Print the question bank")
	assessCmd.Flags().Bool("initial", false, "With --questions, print only the short initial set")
}
