package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"numkit/internal/poly"
)

func newPolyCmd(a *app) *cobra.Command {
	var (
		at     float64
		deriv  bool
		integ  float64
		divisr string
	)
	cmd := &cobra.Command{
		Use:   "poly \"c0 c1 ...\"",
		Short: "Evaluate, differentiate, integrate and divide polynomials",
		Long: `Coefficients are listed lowest degree first, separated by spaces or
commas: "1 2 -1" is 1 + 2x - x^2. Put "--" before a list that starts
with a negative coefficient.`,
		Example: `  numkit poly "1 2 -1" --at 3 --deriv
  numkit poly --div=-1,1 -- "-1 0 1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := poly.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			label := func(name string) string {
				if a.quiet {
					return ""
				}
				return name + " = "
			}

			fmt.Fprintf(out, "%s%s\n", label("p(x)"), p)
			if cmd.Flags().Changed("at") {
				fmt.Fprintf(out, "%s%s\n", label("p("+formatFloat(at)+")"), formatFloat(p.Eval(at)))
			}
			if deriv {
				fmt.Fprintf(out, "%s%s\n", label("p'(x)"), p.Derivative())
			}
			if cmd.Flags().Changed("integ") {
				fmt.Fprintf(out, "%s%s\n", label("∫p dx"), p.Integral(integ))
			}
			if divisr != "" {
				d, err := poly.Parse(divisr)
				if err != nil {
					return fmt.Errorf("--div: %w", err)
				}
				q, r, err := p.DivMod(d)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s%s\n", label("q(x)"), q)
				fmt.Fprintf(out, "%s%s\n", label("r(x)"), r)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&at, "at", 0, "evaluate at x")
	f.BoolVar(&deriv, "deriv", false, "print the derivative")
	f.Float64Var(&integ, "integ", 0, "print the antiderivative with this constant term")
	f.StringVar(&divisr, "div", "", "divide by this polynomial and print quotient and remainder")
	return cmd
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
