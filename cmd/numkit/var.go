package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"numkit/internal/calc"
	"numkit/internal/store"
)

func newVarCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "var",
		Short: "Manage persistent variables",
		Long:  `Variables set here are visible to "numkit eval --persist".`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored variables",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(st *store.Store) error {
					names, err := st.List()
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					for _, name := range names {
						v, err := st.Load(name)
						if err != nil {
							return err
						}
						fmt.Fprintf(out, "%s = %s\n", name, v)
					}
					if len(names) == 0 && !a.quiet {
						fmt.Fprintln(cmd.ErrOrStderr(), "no variables")
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "get name",
			Short: "Print one variable",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(st *store.Store) error {
					v, err := st.Load(args[0])
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), v)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "set name expr",
			Short: "Evaluate expr against stored variables and store the result",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(st *store.Store) error {
					if !store.ValidName(args[0]) {
						return fmt.Errorf("%w: %q", store.ErrInvalidName, args[0])
					}
					res, err := calc.Eval(st, args[1])
					if err != nil {
						return err
					}
					if err := st.Put(args[0], res.Value); err != nil {
						return err
					}
					if !a.quiet {
						fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], res.Value)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:     "rm name...",
			Aliases: []string{"delete"},
			Short:   "Delete variables",
			Args:    cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(st *store.Store) error {
					for _, name := range args {
						if err := st.Delete(name); err != nil {
							return err
						}
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func (a *app) withStore(fn func(*store.Store) error) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	err = fn(st)
	if cerr := st.Close(); err == nil {
		err = cerr
	}
	return err
}
