package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"numkit/internal/cplx"
)

func newRootsCmd(a *app) *cobra.Command {
	var (
		re, im float64
		n      int
	)
	cmd := &cobra.Command{
		Use:     "roots --re a --im b -n N",
		Short:   "Complex n-th roots of a + bi",
		Example: `  numkit roots --re 1 -n 4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			z := cplx.New(re, im)
			roots, err := z.Roots(n)
			if err != nil {
				return fmt.Errorf("-n %d: %w", n, err)
			}
			out := cmd.OutOrStdout()
			if !a.quiet {
				fmt.Fprintf(out, "%d-th roots of %s (|z| = %s, arg = %s):\n", n, z, formatFloat(z.Abs()), formatFloat(z.Arg()))
			}
			for _, r := range roots {
				fmt.Fprintln(out, r)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&re, "re", 0, "real part")
	f.Float64Var(&im, "im", 0, "imaginary part")
	f.IntVarP(&n, "degree", "n", 2, "root degree")
	return cmd
}
