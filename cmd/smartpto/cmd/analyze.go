package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"smart-pto/internal/bootstrap"
	"smart-pto/internal/suggestion"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Propose PTO windows from recent mail",
	RunE: func(cmd *cobra.Command, args []string) error {
		maxResults, _ := cmd.Flags().GetInt("max-results")

		uc, cleanup := bootstrap.SuggestionUseCase(cmd.Context(), logger, cfg)
		defer cleanup()
		out, err := uc.Analyze(cmd.Context(), suggestion.AnalyzeInput{MaxResults: maxResults})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Scanned %d messages, %d suggestions\n\n", out.CountMessages, len(out.Suggestions))
		if len(out.Suggestions) > 0 {
			fmt.Fprintln(w, renderSuggestions(out.Suggestions))
		}
		return nil
	},
}

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List messages that look like time-off mail",
	RunE: func(cmd *cobra.Command, args []string) error {
		maxResults, _ := cmd.Flags().GetInt("max-results")

		uc, cleanup := bootstrap.SuggestionUseCase(cmd.Context(), logger, cfg)
		defer cleanup()
		out, err := uc.ListCandidates(cmd.Context(), suggestion.ListCandidatesInput{MaxResults: maxResults})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(out.Candidates) == 0 {
			fmt.Fprintln(w, "No matching messages")
			return nil
		}
		fmt.Fprintln(w, renderCandidates(out.Candidates))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(candidatesCmd)
	analyzeCmd.Flags().Int("max-results", suggestion.DefaultMaxResults, "maximum messages to scan (capped at 500)")
	candidatesCmd.Flags().Int("max-results", suggestion.DefaultCandidateMaxResults, "maximum messages to list (capped at 500)")
}
