package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"numkit/internal/primality"
	"numkit/internal/trace"
)

type primeOptions struct {
	files         []string
	rounds        int
	jobs          int
	deterministic bool
	seed          uint64
	ui            string
}

func newPrimeCmd(a *app) *cobra.Command {
	var opts primeOptions
	cmd := &cobra.Command{
		Use:   "prime [n...]",
		Short: "Miller-Rabin primality test",
		Long: `Test unsigned 64-bit integers for primality.

By default the deterministic witness set is used, which is exact for every
64-bit input. --deterministic=false switches to --rounds random witnesses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := collectNumbers(args, opts.files)
			if err != nil {
				return err
			}
			if len(numbers) == 0 {
				return fmt.Errorf("no numbers to test")
			}
			ui, err := parseSwitch("ui", opts.ui)
			if err != nil {
				return err
			}

			checkOpts := primality.Options{
				Jobs:          a.cfg.Prime.Jobs,
				Rounds:        a.cfg.Prime.Rounds,
				Deterministic: a.cfg.Prime.Deterministic,
				Seed:          opts.seed,
			}
			if cmd.Flags().Changed("jobs") {
				checkOpts.Jobs = opts.jobs
			}
			if cmd.Flags().Changed("rounds") {
				checkOpts.Rounds = opts.rounds
			}
			if cmd.Flags().Changed("deterministic") {
				checkOpts.Deterministic = opts.deterministic
			}
			if checkOpts.Jobs < 0 || (checkOpts.Rounds <= 0 && !checkOpts.Deterministic) {
				return fmt.Errorf("--jobs must be >= 0 and --rounds > 0")
			}

			ctx, span := trace.BeginCtx(cmd.Context(), trace.ScopeBatch, "prime")
			hb := trace.StartHeartbeat(trace.FromContext(ctx), time.Second)
			checkOpts.Sink = traceSink{tracer: trace.FromContext(ctx), parent: span.ID()}

			idx := a.timer.Begin("check")
			var results []primality.Result
			if ui.resolve(interactive) {
				results, err = runPrimeWithUI(ctx, numbers, checkOpts)
			} else {
				results, err = primality.CheckAll(ctx, numbers, checkOpts)
			}
			a.timer.End(idx, fmt.Sprintf("%d numbers", len(numbers)))
			hb.Stop()
			span.WithExtra("count", strconv.Itoa(len(numbers))).End("")
			if err != nil {
				return err
			}
			printPrimeResults(cmd.OutOrStdout(), results, a.quiet)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringArrayVarP(&opts.files, "file", "f", nil, "read whitespace-separated numbers from a file (repeatable)")
	f.IntVar(&opts.rounds, "rounds", primality.DefaultRounds, "random witnesses per number; overrides [prime].rounds")
	f.IntVarP(&opts.jobs, "jobs", "j", 0, "parallel workers (0 = GOMAXPROCS); overrides [prime].jobs")
	f.BoolVar(&opts.deterministic, "deterministic", true, "use the fixed 64-bit witness set; overrides [prime].deterministic")
	f.Uint64Var(&opts.seed, "seed", 0, "random witness seed (0 = random)")
	f.StringVar(&opts.ui, "ui", "auto", "progress UI (auto|on|off)")
	return cmd
}

func collectNumbers(args, files []string) ([]uint64, error) {
	tokens := append([]string(nil), args...)
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, strings.Fields(string(data))...)
	}
	numbers := make([]uint64, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.ParseUint(strings.TrimSpace(tok), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: must be an unsigned 64-bit integer", tok)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func printPrimeResults(out io.Writer, results []primality.Result, quiet bool) {
	primeColor := color.New(color.FgGreen)
	compositeColor := color.New(color.FgYellow)
	primes := 0
	for _, r := range results {
		if r.Prime {
			primes++
			fmt.Fprintf(out, "%d %s\n", r.N, primeColor.Sprint("prime"))
		} else {
			fmt.Fprintf(out, "%d %s\n", r.N, compositeColor.Sprint("composite"))
		}
	}
	if !quiet && len(results) > 1 {
		fmt.Fprintf(out, "%d of %d prime\n", primes, len(results))
	}
}

// traceSink turns finished checks into item-level trace points.
type traceSink struct {
	tracer trace.Tracer
	parent uint64
}

func (s traceSink) OnEvent(ev primality.Event) {
	if ev.Status != primality.StatusDone {
		return
	}
	verdict := "composite"
	if ev.Prime {
		verdict = "prime"
	}
	trace.Point(s.tracer, trace.ScopeItem, "n:"+strconv.FormatUint(ev.N, 10), verdict, s.parent)
}

// fanoutSink forwards events to several sinks in order.
type fanoutSink []primality.Sink

func (f fanoutSink) OnEvent(ev primality.Event) {
	for _, s := range f {
		s.OnEvent(ev)
	}
}

var _ primality.Sink = fanoutSink(nil)
