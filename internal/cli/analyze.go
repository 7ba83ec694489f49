package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Classify a single text",
	Long: `Analyze one disaster-related text and print the classification as JSON.

The text is answered from the trained-example cache when a user correction
exists for it, otherwise by the remote model, otherwise by the rule engine.

Example:
  panicsense analyze "TULONG! MAY SUNOG SA MAKATI!!!"
  panicsense analyze --db corrections.db "may baha sa marikina"`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res := s.analyzer.AnalyzeText(context.Background(), args[0])

	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}
