package main

import (
	"fmt"
	"os"
	"strings"

	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/sentiment"

	"github.com/spf13/cobra"
)

var content string

var rootCmd = &cobra.Command{
	Use:   "portfolio-sentiment",
	Short: "A CLI for scoring financial headlines",
	Long:  `Scores headlines with the keyword-weighted lexicon scorer used by the tracker service.`,
}

var scoreCmd = &cobra.Command{
	Use:   "score [headline]",
	Short: "Scores a headline and prints its sentiment",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scorer := sentiment.NewScorer(sentiment.NewLexiconBackend(), sentiment.DefaultKeywords(), sentiment.DefaultConfig(), logger.NewNop())

		title := strings.Join(args, " ")
		analysis := scorer.Analyze(cmd.Context(), title)
		score := analysis.Score
		if content != "" {
			score = scorer.ScoreArticle(cmd.Context(), title, content)
		}

		fmt.Printf("score: %.3f\nlabel: %s\nkeywords: %s\n", score, sentiment.Label(score), strings.Join(analysis.Matched, ", "))
	},
}

func main() {
	scoreCmd.Flags().StringVar(&content, "content", "", "Article body blended into the score")
	rootCmd.AddCommand(scoreCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
