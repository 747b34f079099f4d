package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/oisee/epsilon/pkg/bigz"
	"github.com/oisee/epsilon/pkg/decimal"
	"github.com/oisee/epsilon/pkg/epxerr"
	"github.com/oisee/epsilon/pkg/real"
)

func main() {
	if err := bigz.NewKernelWidth[uint32, uint64](); err != nil {
		fmt.Fprintln(os.Stderr, "epsilon: unsupported kernel width:", err)
		os.Exit(1)
	}

	var digits int
	var maxMSD int
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "epsilon",
		Short: "Computable real-number arithmetic — rational literals in, fixed-point decimal out",
	}
	rootCmd.PersistentFlags().IntVarP(&digits, "digits", "k", 10, "Fractional digits to render")
	rootCmd.PersistentFlags().IntVar(&maxMSD, "max-msd", epxerr.DefaultMaxMSD, "Ceiling on the most-significant-digit search")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a digit-count banner before the result")

	decimalCmd := &cobra.Command{
		Use:   "decimal <p/q>",
		Short: "Render a rational literal to fixed-point decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseRational(args[0])
			if err != nil {
				return err
			}
			return renderAndPrint(x, digits, verbose)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <p1/q1> <p2/q2>",
		Short: "Add two rational literals and render the sum",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseRational(args[0])
			if err != nil {
				return err
			}
			y, err := parseRational(args[1])
			if err != nil {
				return err
			}
			return renderAndPrint(real.Add(x, y), digits, verbose)
		},
	}

	mulCmd := &cobra.Command{
		Use:   "mul <p1/q1> <p2/q2>",
		Short: "Multiply two rational literals and render the product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseRational(args[0])
			if err != nil {
				return err
			}
			y, err := parseRational(args[1])
			if err != nil {
				return err
			}
			cfg := epxerr.Config{MaxMSD: maxMSD}
			return renderAndPrint(real.Mul(x, y, cfg), digits, verbose)
		},
	}

	invCmd := &cobra.Command{
		Use:   "inv <p/q>",
		Short: "Invert a rational literal and render the reciprocal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseRational(args[0])
			if err != nil {
				return err
			}
			cfg := epxerr.Config{MaxMSD: maxMSD}
			return renderAndPrint(real.Inv(x, cfg), digits, verbose)
		},
	}

	msdCmd := &cobra.Command{
		Use:   "msd <p/q>",
		Short: "Print the most-significant-digit index of a rational literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseRational(args[0])
			if err != nil {
				return err
			}
			m, err := real.MSD(x, maxMSD)
			if err != nil {
				return err
			}
			fmt.Println(m)
			return nil
		},
	}

	rootCmd.AddCommand(decimalCmd, addCmd, mulCmd, invCmd, msdCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "epsilon:", err)
		os.Exit(1)
	}
}

// parseRational parses a "p/q" or bare "p" literal into a real.R.
func parseRational(s string) (*real.R[uint32, uint64], error) {
	parts := strings.SplitN(s, "/", 2)
	p, ok := decimal.Parse[uint32, uint64](strings.TrimSpace(parts[0]))
	if !ok {
		return nil, fmt.Errorf("not a decimal integer: %q", parts[0])
	}
	q := bigz.One[uint32, uint64]()
	if len(parts) == 2 {
		q, ok = decimal.Parse[uint32, uint64](strings.TrimSpace(parts[1]))
		if !ok {
			return nil, fmt.Errorf("not a decimal integer: %q", parts[1])
		}
	}
	return real.MakeQ[uint32, uint64](p, q)
}

func renderAndPrint(x *real.R[uint32, uint64], digits int, verbose bool) error {
	s, err := decimal.ToFixed(x, digits)
	if err != nil {
		return err
	}
	if verbose {
		digitCount := len(s) - strings.Count(s, "-") - strings.Count(s, ".")
		fmt.Printf("approximation has %s digits\n", humanize.Comma(int64(digitCount)))
	}
	fmt.Println(s)
	return nil
}
