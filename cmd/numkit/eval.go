package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"numkit/internal/calc"
	"numkit/internal/store"
	"numkit/internal/trace"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		files   []string
		persist bool
	)
	cmd := &cobra.Command{
		Use:   "eval [statement...]",
		Short: "Evaluate big-integer expressions",
		Long: `Evaluate statements such as "x = 2^128" or "x * 3 + 1" in order.

Each --file is evaluated line by line with its own variables; separate files
run concurrently. With --persist, variables live in the store instead.`,
		Example: `  numkit eval "x = 2^64" "x * x"
  numkit eval --file a.nk --file b.nk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(files) == 0 {
				return fmt.Errorf("nothing to evaluate: pass statements or --file")
			}
			var st *store.Store
			if persist {
				var err error
				st, err = a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
			}
			newEnv := func() calc.Env {
				if st != nil {
					return st
				}
				return calc.NewMapEnv()
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				idx := a.timer.Begin("eval args")
				err := evalLines(cmd.Context(), out, a.diagOut(cmd), newEnv(), "arg", args, a.quiet)
				a.timer.End(idx, fmt.Sprintf("%d statements", len(args)))
				if err != nil {
					return err
				}
			}
			if len(files) > 0 {
				return a.evalFiles(cmd.Context(), out, a.diagOut(cmd), files, newEnv)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "evaluate statements from a file, one per line (repeatable)")
	cmd.Flags().BoolVar(&persist, "persist", false, "keep variables in the store")
	return cmd
}

// evalFiles runs each file concurrently and prints the outputs in argument
// order once all of them succeed. On failure only the collected error
// snippets are written to diag.
func (a *app) evalFiles(ctx context.Context, out, diag io.Writer, files []string, newEnv func() calc.Env) error {
	outputs := make([]strings.Builder, len(files))
	snippets := make([]strings.Builder, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(files)))
	for i, path := range files {
		g.Go(func() error {
			idx := a.timer.Begin("eval " + path)
			lines, err := readLines(path)
			if err != nil {
				a.timer.End(idx, "failed")
				return err
			}
			fctx, span := trace.BeginCtx(gctx, trace.ScopeBatch, "file:"+path)
			err = evalLines(fctx, &outputs[i], &snippets[i], newEnv(), path, lines, a.quiet)
			span.WithExtra("lines", fmt.Sprint(len(lines))).End("")
			a.timer.End(idx, fmt.Sprintf("%d lines", len(lines)))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		for i := range snippets {
			io.WriteString(diag, snippets[i].String())
		}
		return err
	}
	for i, path := range files {
		if len(files) > 1 && !a.quiet {
			fmt.Fprintf(out, "== %s ==\n", path)
		}
		io.WriteString(out, outputs[i].String())
	}
	return nil
}

// evalLines evaluates statements sequentially. Blank lines and lines
// starting with '#' are skipped; origin names the source in errors.
// A failing statement is echoed to diag with a caret at the error.
func evalLines(ctx context.Context, out, diag io.Writer, env calc.Env, origin string, lines []string, quiet bool) error {
	tr := trace.FromContext(ctx)
	parent := trace.ParentSpan(ctx)
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		stmt := strings.TrimSpace(line)
		if stmt == "" || strings.HasPrefix(stmt, "#") {
			continue
		}
		trace.Point(tr, trace.ScopeItem, "stmt", stmt, parent)
		res, err := calc.Eval(env, stmt)
		if err != nil {
			calc.Pretty(diag, stmt, err)
			return fmt.Errorf("%s:%d: %w", origin, i+1, err)
		}
		switch {
		case res.Assigned == "":
			fmt.Fprintln(out, res.Value)
		case !quiet:
			fmt.Fprintf(out, "%s = %s\n", res.Assigned, res.Value)
		}
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// diagOut is where error snippets go; quiet mode drops them.
func (a *app) diagOut(cmd *cobra.Command) io.Writer {
	if a.quiet {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}

func (a *app) openStore() (*store.Store, error) {
	var st *store.Store
	err := a.timer.Track("open store", func() error {
		var err error
		st, err = store.Open(a.cfg.StorePath(), store.Options{CacheSize: a.cfg.Store.CacheSize})
		return err
	})
	return st, err
}
