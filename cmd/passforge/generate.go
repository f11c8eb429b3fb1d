package main

import (
	"fmt"
	"io"

	"github.com/passforge/passforge-go/internal/clipboard"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	length    int
	uppercase bool
	lowercase bool
	digits    bool
	symbols   bool
	count     int
	strength  bool
	copy      bool
}

func newGenerateCmd(clip clipboard.Writer) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			svc := service.NewGeneratorService(cfg.MaxLength, nil)
			return runGenerate(cmd.OutOrStdout(), svc, clip, f)
		},
	}

	cmd.Flags().IntVarP(&f.length, "length", "l", 8, "Password length")
	cmd.Flags().BoolVarP(&f.uppercase, "uppercase", "u", false, "Include uppercase letters (A-Z)")
	cmd.Flags().BoolVarP(&f.lowercase, "lowercase", "w", true, "Include lowercase letters (a-z)")
	cmd.Flags().BoolVarP(&f.digits, "digits", "n", true, "Include digits (0-9)")
	cmd.Flags().BoolVarP(&f.symbols, "symbols", "s", false, "Include symbols")
	cmd.Flags().IntVarP(&f.count, "count", "c", 1, "Number of passwords to generate")
	cmd.Flags().BoolVar(&f.strength, "strength", false, "Print the strength rating after each password")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Copy the last password to the system clipboard")

	return cmd
}

func runGenerate(out io.Writer, svc *service.GeneratorService, clip clipboard.Writer, f generateFlags) error {
	if f.count < 1 {
		return service.ErrInvalidCount
	}

	req := model.GenerateRequest{
		Length:    &f.length,
		Uppercase: &f.uppercase,
		Lowercase: &f.lowercase,
		Digits:    &f.digits,
		Symbols:   &f.symbols,
		Count:     f.count,
	}

	resp, err := svc.GenerateBatch(req)
	if err != nil {
		return err
	}

	for _, p := range resp.Passwords {
		if f.strength {
			fmt.Fprintf(out, "%s\t%s (%d/5)\n", p.Password, p.Strength.Rating, p.Strength.Score)
			continue
		}
		fmt.Fprintln(out, p.Password)
	}

	if f.copy {
		last := resp.Passwords[len(resp.Passwords)-1].Password
		if err := clip.WriteText(last); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(newGenerateCmd(clipboard.System{}))
}
