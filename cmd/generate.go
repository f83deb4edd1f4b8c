package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/pathway"
	"github.com/abhisek/pathwise/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a learning pathway",
	Example: `  pathwise generate --goal "Data Scientist" --timeline "6-12 months"
  pathwise generate --answers answers.json --focus python_basics --save
  pathwise generate --profile profile.json --goal "DevOps Engineer" --json -o path.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, _ := cmd.Flags().GetStringSlice("goal")
		focus, _ := cmd.Flags().GetStringSlice("focus")
		timeline, _ := cmd.Flags().GetString("timeline")
		noEnrich, _ := cmd.Flags().GetBool("no-enrich")
		save, _ := cmd.Flags().GetBool("save")

		profile, err := loadProfile(cmd)
		if err != nil {
			return err
		}
		if timeline == "" {
			timeline = profile.CareerProfile.Timeline
		}
		if role := profile.CareerProfile.TargetRole; len(goals) == 0 && role != "" && role != "Other" {
			goals = []string{role}
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		p, err := a.Generator.Generate(ctx, pathway.Request{
			Profile:     profile,
			CareerGoals: goals,
			Timeline:    timeline,
			FocusAreas:  focus,
		})
		if err != nil {
			return err
		}
		if !noEnrich {
			a.Enricher.Enrich(ctx, p)
		}
		if err := pathway.Validate(p); err != nil {
			return fmt.Errorf("generated pathway is invalid: %w", err)
		}

		if save {
			if err := a.SavePathway(ctx, p); err != nil {
				return fmt.Errorf("save pathway: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved pathway %s\n", p.ID)
		}
		return writePathway(cmd, p)
	},
}

// loadProfile reads --profile (a scored profile) or --answers (raw
// assessment responses). With neither, the zero profile is used.
func loadProfile(cmd *cobra.Command) (assessment.Profile, error) {
	profilePath, _ := cmd.Flags().GetString("profile")
	answersPath, _ := cmd.Flags().GetString("answers")

	switch {
	case profilePath != "" && answersPath != "":
		return assessment.Profile{}, fmt.Errorf("use --profile or --answers, not both")
	case profilePath != "":
		data, err := readInput(profilePath)
		if err != nil {
			return assessment.Profile{}, err
		}
		var p assessment.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			return assessment.Profile{}, fmt.Errorf("decode profile: %w", err)
		}
		return p, nil
	case answersPath != "":
		data, err := readInput(answersPath)
		if err != nil {
			return assessment.Profile{}, err
		}
		r, err := assessment.ParseResponses(data)
		if err != nil {
			return assessment.Profile{}, err
		}
		return assessment.Score(r), nil
	}
	return assessment.Profile{}, nil
}

// writePathway prints p as JSON (--json) or as a terminal view, to --out
// or stdout.
func writePathway(cmd *cobra.Command, p *pathway.Pathway) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	out, _ := cmd.Flags().GetString("out")
	showResources, _ := cmd.Flags().GetBool("resources")

	var w io.Writer = cmd.OutOrStdout()
	if out != "" && out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}
	_, err := io.WriteString(w, render.Pathway(p, render.Options{Resources: showResources}))
	return err
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print the pathway as JSON")
	cmd.Flags().StringP("out", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().Bool("resources", false, "List resources under each topic")
}

func init() {
	generateCmd.Flags().String("profile", "", "Learner profile JSON file (- for stdin)")
	generateCmd.Flags().String("answers", "", "Assessment answers JSON file to score (- for stdin)")
	generateCmd.Flags().StringSlice("goal", nil, "Career goal (repeatable), e.g. \"Data Scientist\"")
	generateCmd.Flags().StringSlice("focus", nil, "Skill ID to focus on (repeatable), e.g. python_basics")
	generateCmd.Flags().String("timeline", "", "Timeline label, e.g. \"6-12 months\"")
	generateCmd.Flags().Bool("no-enrich", false, "Skip resource discovery")
	generateCmd.Flags().Bool("save", false, "Store the pathway in the database")
	addOutputFlags(generateCmd)
}
