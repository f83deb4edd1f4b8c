package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM calls made while curating resources",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		bodies, _ := cmd.Flags().GetBool("bodies")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query llm events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-18s  %-28s  %11s  %7s\n",
			"Seq", "When", "Purpose", "Vendor/Model", "Tokens", "Ms")
		fmt.Println(strings.Repeat("─", 96))
		for _, e := range events {
			fmt.Printf("%-5d  %-16s  %-18s  %-28s  %5d/%-5d  %7d\n",
				e.Sequence,
				e.Timestamp.Local().Format("01-02 15:04:05"),
				truncate(e.Purpose, 18),
				truncate(e.Provider+"/"+e.Model, 28),
				e.InputTokens, e.OutputTokens,
				e.LatencyMs)
			if !e.Success {
				fmt.Printf("       failed: %s\n", truncate(e.ErrorMessage, 120))
			}
			if bodies {
				fmt.Printf("       prompt: %s\n", oneLine(e.RequestBody, 200))
				fmt.Printf("       output: %s\n", oneLine(e.ResponseBody, 200))
			}
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		usage, err := s.EventRepo().LLMUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No LLM usage recorded.")
			return nil
		}

		row := func(model string, calls, in, out int, cost string) {
			fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n", truncate(model, 32), calls, in, out, cost)
		}
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Est. USD")
		fmt.Println(strings.Repeat("─", 76))

		var total store.ModelUsage
		var cost float64
		var unpriced []string
		for _, u := range usage {
			total.Calls += u.Calls
			total.InputTokens += u.InputTokens
			total.OutputTokens += u.OutputTokens

			price := llm.LookupCost(u.Model)
			if price == nil {
				unpriced = append(unpriced, u.Model)
				row(u.Model, u.Calls, u.InputTokens, u.OutputTokens, "n/a")
				continue
			}
			c := price.Cost(u.InputTokens, u.OutputTokens)
			cost += c
			row(u.Model, u.Calls, u.InputTokens, u.OutputTokens, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 76))
		label := "Total"
		if len(unpriced) > 0 {
			label = "Total (priced models)"
		}
		row(label, total.Calls, total.InputTokens, total.OutputTokens, formatCost(cost))
		if len(unpriced) > 0 {
			fmt.Printf("\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// oneLine collapses whitespace so multi-line prompts fit one row.
func oneLine(s string, n int) string {
	return truncate(strings.Join(strings.Fields(s), " "), n)
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose (e.g. resource-curation)")
	llmListCmd.Flags().Bool("bodies", false, "Show prompt and output excerpts")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
