package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneyfmt/moneyfmt/internal/config"
	"github.com/moneyfmt/moneyfmt/internal/output"
	"github.com/moneyfmt/moneyfmt/pkg/moneyfmt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "moneyfmt",
		Short:        "Format decimal values as currency and percentage strings",
		SilenceUsage: true,
	}
	root.AddCommand(newFormatCmd(), newPercentCmd(), newBatchCmd())
	return root
}

func newFormatCmd() *cobra.Command {
	var noCents bool
	var locale string
	cmd := &cobra.Command{
		Use:   "format <amount>...",
		Short: "Format amounts as currency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := decimal.NewFromString(arg)
				if err != nil {
					return fmt.Errorf("amount %q is not a valid decimal: %w", arg, err)
				}
				var s string
				if locale != "" {
					s, err = moneyfmt.FormatCurrencyLocale(v, locale, noCents)
				} else {
					s, err = moneyfmt.FormatCurrency(v, noCents)
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noCents, "no-cents", false, "omit the fractional part, rounding into whole units")
	cmd.Flags().StringVar(&locale, "locale", "", "locale tag for symbol and separators (default en-US)")
	return cmd
}

func newPercentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "percent <fraction>...",
		Short: "Format fractions as percentages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := decimal.NewFromString(arg)
				if err != nil {
					return fmt.Errorf("fraction %q is not a valid decimal: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), moneyfmt.FormatPercent(v))
			}
			return nil
		},
	}
}

func newBatchCmd() *cobra.Command {
	var format string
	var write bool
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Format a YAML batch of values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			report, err := output.RenderBatch(batch)
			if err != nil {
				return err
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown format %q (available: %s)",
					format, strings.Join(output.AvailableFormatterNames(), ", "))
			}
			if write {
				ext := f.Name()
				if ext == "console" {
					ext = "txt"
				}
				name, err := output.WriteFormatted(f, report, ext)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", name)
				return nil
			}
			data, err := f.Format(report)
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(data)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "console", "output format (console, csv, json)")
	cmd.Flags().BoolVar(&write, "write", false, "write to a timestamped report file instead of stdout")
	return cmd
}
