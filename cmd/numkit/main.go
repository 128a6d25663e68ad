package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"numkit/internal/config"
	"numkit/internal/observ"
	"numkit/internal/prof"
	"numkit/internal/trace"
	"numkit/internal/version"
)

// app is the per-invocation state shared by all subcommands.
type app struct {
	cfg     config.Config
	timer   *observ.Timer
	tracer  trace.Tracer
	span    *trace.Span
	prof    *prof.Session
	quiet   bool
	timings bool
}

// skipConfigAnnotation marks commands that must work without a valid
// numkit.toml.
const skipConfigAnnotation = "numkit/skip-config"

func main() {
	a := &app{}
	root := newRootCmd(a)
	err := root.ExecuteContext(context.Background())
	a.finish(root.ErrOrStderr(), err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "numkit",
		Short:         "Arbitrary-precision integer toolkit",
		Long:          `numkit evaluates big-integer expressions and ships small number-theory helpers.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("color", "", "colorize output (auto|on|off); overrides [output].color")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.String("config", "", "path to numkit.toml (default: search upwards from the working directory)")
	flags.String("trace", "", "trace output file (- for stderr); overrides [trace].output")
	flags.String("trace-level", "", "trace level (off|error|phase|detail|debug); overrides [trace].level")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson); auto picks ndjson for .ndjson files")
	flags.String("cpuprofile", "", "write a CPU profile to this file")
	flags.String("memprofile", "", "write a heap profile to this file on exit")

	root.AddCommand(
		newEvalCmd(a),
		newPrimeCmd(a),
		newFracCmd(a),
		newFieldCmd(a),
		newPolyCmd(a),
		newRootsCmd(a),
		newVarCmd(a),
		newVersionCmd(),
	)
	return root
}

// finish closes the command span, prints timings and releases the tracer
// and profiles. On failure the in-memory trace ring is dumped to errOut.
func (a *app) finish(errOut io.Writer, runErr error) {
	if err := a.prof.Stop(); err != nil {
		fmt.Fprintf(errOut, "profile: %v\n", err)
	}
	if runErr == nil && a.timer != nil {
		tracePhases(a.tracer, a.span.ID(), a.timer.Report())
	}
	if a.span != nil {
		detail := "ok"
		if runErr != nil {
			detail = runErr.Error()
		}
		a.span.End(detail)
	}
	if runErr == nil && a.timings && a.timer != nil && !a.quiet {
		fmt.Fprint(errOut, a.timer.Summary())
	}
	if a.tracer == nil {
		return
	}
	if runErr != nil {
		dumpRing(errOut, a.tracer)
	}
	if err := a.tracer.Close(); err != nil {
		fmt.Fprintf(errOut, "trace: close error: %v\n", err)
	}
}

// tracePhases records the --timings phases as command-scope trace points.
func tracePhases(t trace.Tracer, parent uint64, r observ.Report) {
	for _, p := range r.Phases {
		detail := fmt.Sprintf("%.3f ms", p.DurationMS)
		if p.Note != "" {
			detail += " " + p.Note
		}
		trace.Point(t, trace.ScopeCommand, "phase "+p.Name, detail, parent)
	}
}

func dumpRing(out io.Writer, t trace.Tracer) {
	var ring *trace.RingTracer
	switch t := t.(type) {
	case *trace.RingTracer:
		ring = t
	case *trace.MultiTracer:
		ring = t.Ring()
	}
	if ring == nil {
		return
	}
	events := ring.Snapshot()
	if len(events) == 0 {
		return
	}
	fmt.Fprintf(out, "trace: last %d events\n", len(events))
	if err := ring.Dump(out, trace.FormatText); err != nil {
		fmt.Fprintf(out, "trace: dump error: %v\n", err)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
