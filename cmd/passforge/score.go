package main

import (
	"fmt"
	"io"

	"github.com/passforge/passforge-go/internal/service"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <password>",
	Short: "Rate the strength of a password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScore(cmd.OutOrStdout(), args[0])
	},
}

func runScore(out io.Writer, password string) error {
	s := service.Estimate(password)
	_, err := fmt.Fprintf(out, "score: %d/5\nrating: %s\nestimate: %d/4, %.1f bits, cracked in %s\n",
		s.Score, s.Rating, s.Estimate.Score, s.Estimate.Entropy, s.Estimate.CrackTimeDisplay)
	return err
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
