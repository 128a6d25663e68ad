package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"numkit/internal/fraction"
)

func newFracCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "frac a op b",
		Short: "Rational arithmetic on int64 fractions",
		Long: `Apply op to two fractions written as "n" or "n/d".

op is one of + - * x / cmp. cmp prints -1, 0 or 1.`,
		Example: `  numkit frac 1/3 + 1/6
  numkit frac -- -2/4 cmp 1/3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := fraction.Parse(args[0])
			if err != nil {
				return fmt.Errorf("left operand: %w", err)
			}
			y, err := fraction.Parse(args[2])
			if err != nil {
				return fmt.Errorf("right operand: %w", err)
			}
			out := cmd.OutOrStdout()

			var res fraction.Fraction
			switch args[1] {
			case "+":
				res, err = fraction.Add(x, y)
			case "-":
				res, err = fraction.Sub(x, y)
			case "*", "x":
				res, err = fraction.Mul(x, y)
			case "/":
				res, err = fraction.Div(x, y)
			case "cmp":
				fmt.Fprintln(out, fraction.Cmp(x, y))
				return nil
			default:
				return fmt.Errorf("unknown operator %q (expected + - * x / cmp)", args[1])
			}
			if err != nil {
				return err
			}
			if a.quiet || res.Den() == 1 {
				fmt.Fprintln(out, res)
			} else {
				fmt.Fprintf(out, "%s ≈ %g\n", res, res.Float64())
			}
			return nil
		},
	}
}
