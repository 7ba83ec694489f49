package cli

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/draiimon/PanicSense-Final/internal/feedback"
)

var (
	feedbackText      string
	originalSentiment string
	correctedLabel    string
	correctedLocation string
	correctedDisaster string
)

// feedbackCmd represents the feedback command
var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Train on a user correction",
	Long: `Feedback applies a user correction to the trained-example cache so the
exact text is answered from the correction on every future analysis.

Sentiment corrections are validated by an independent re-classification of
the text; a large, confident disagreement is reported back but the
correction is still applied. The outcome is printed as JSON.

Example:
  panicsense feedback --text "may sunog sa kanto" \
    --original Neutral --corrected Panic
  panicsense feedback --text "baha dito" --location "Marikina" --original Neutral`,
	RunE: runFeedback,
}

func init() {
	rootCmd.AddCommand(feedbackCmd)

	feedbackCmd.Flags().StringVar(&feedbackText, "text", "", "the original analyzed text")
	feedbackCmd.Flags().StringVar(&originalSentiment, "original", "", "sentiment the system assigned")
	feedbackCmd.Flags().StringVar(&correctedLabel, "corrected", "", "corrected sentiment label")
	feedbackCmd.Flags().StringVar(&correctedLocation, "location", "", "corrected location")
	feedbackCmd.Flags().StringVar(&correctedDisaster, "disaster", "", "corrected disaster type")
	_ = feedbackCmd.MarkFlagRequired("text")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	trainer := feedback.NewTrainer(s.cache, s.store, s.interactive, rng, s.log)

	resp, err := trainer.Train(context.Background(), feedback.Correction{
		Text:               feedbackText,
		OriginalSentiment:  originalSentiment,
		CorrectedSentiment: correctedLabel,
		CorrectedLocation:  correctedLocation,
		CorrectedDisaster:  correctedDisaster,
	})
	if err != nil {
		// Invalid input still produces a parsable JSON payload on stdout.
		if errors.Is(err, feedback.ErrNoCorrections) || errors.Is(err, feedback.ErrInvalidSentiment) {
			emit(map[string]string{"status": "error", "message": err.Error()})
			return nil
		}
		return err
	}

	emit(resp)
	return nil
}
