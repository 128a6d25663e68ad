package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"numkit/internal/modfield"
)

func newFieldCmd(a *app) *cobra.Command {
	var p uint64
	cmd := &cobra.Command{
		Use:   "field --p P (a op b | inv a)",
		Short: "Arithmetic modulo a prime",
		Long: `Compute in the integers modulo the prime P.

op is one of + - * x / ^. Operands may be negative and are reduced into
[0, P). The exponent of ^ is taken as a plain non-negative integer.`,
		Example: `  numkit field --p 13 7 / 3
  numkit field --p 1000000007 inv 2`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := modfield.NewField(p)
			if err != nil {
				return fmt.Errorf("--p %d: %w", p, err)
			}
			out := cmd.OutOrStdout()

			if len(args) == 2 {
				if args[0] != "inv" {
					return fmt.Errorf("expected \"inv a\" or \"a op b\"")
				}
				x, err := parseElem(f, args[1])
				if err != nil {
					return err
				}
				inv, err := f.Inv(x)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, inv)
				return nil
			}

			x, err := parseElem(f, args[0])
			if err != nil {
				return err
			}
			if args[1] == "^" {
				e, err := parseExponent(args[2])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, f.Pow(x, e))
				return nil
			}
			y, err := parseElem(f, args[2])
			if err != nil {
				return err
			}
			var res modfield.Elem
			switch args[1] {
			case "+":
				res = f.Add(x, y)
			case "-":
				res = f.Sub(x, y)
			case "*", "x":
				res = f.Mul(x, y)
			case "/":
				res, err = f.Div(x, y)
			default:
				return fmt.Errorf("unknown operator %q (expected + - * x / ^)", args[1])
			}
			if err != nil {
				return err
			}
			if a.quiet {
				fmt.Fprintln(out, res)
			} else {
				fmt.Fprintf(out, "%s (mod %d)\n", res, f.P())
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&p, "p", 0, "prime modulus (required)")
	_ = cmd.MarkFlagRequired("p")
	return cmd
}

func parseElem(f *modfield.Field, s string) (modfield.Elem, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return f.Elem(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return modfield.Elem{}, fmt.Errorf("invalid operand %q", s)
	}
	return f.ElemUint(v), nil
}

func parseExponent(s string) (uint64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid exponent %q", s)
	}
	e, err := safecast.Conv[uint64](v)
	if err != nil {
		return 0, fmt.Errorf("exponent %q must not be negative", s)
	}
	return e, nil
}
