package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"numkit/internal/config"
	"numkit/internal/observ"
	"numkit/internal/prof"
	"numkit/internal/trace"
)

// setup runs before every subcommand: it loads numkit.toml, applies the
// color mode and attaches a tracer and command span to the context.
func (a *app) setup(cmd *cobra.Command) error {
	root := cmd.Root()
	a.timer = observ.NewTimer()

	var err error
	a.quiet, err = root.PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	a.timings, err = root.PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	if cmd.Annotations[skipConfigAnnotation] == "true" {
		a.cfg = config.Default()
	} else {
		idx := a.timer.Begin("config")
		a.cfg, err = loadConfig(cmd)
		a.timer.End(idx, a.cfg.Path)
		if err != nil {
			return err
		}
	}

	if err := applyColor(cmd, a.cfg.Output.Color); err != nil {
		return err
	}
	if err := a.setupProfiling(cmd); err != nil {
		return err
	}
	return a.setupTracing(cmd)
}

func (a *app) setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	cpu, err := flags.GetString("cpuprofile")
	if err != nil {
		return err
	}
	mem, err := flags.GetString("memprofile")
	if err != nil {
		return err
	}
	a.prof, err = prof.Start(cpu, mem)
	return err
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

func applyColor(cmd *cobra.Command, fromConfig string) error {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	if value == "" {
		value = fromConfig
	}
	mode, err := parseSwitch("color", value)
	if err != nil {
		return err
	}
	color.NoColor = !mode.resolve(stdoutIsTerminal)
	return nil
}

// setupTracing builds the tracer from flags over config. At LevelError
// everything is recorded in memory and only shown if the command fails.
func (a *app) setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	output, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	if levelStr == "" {
		levelStr = a.cfg.Trace.Level
	}
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	if output == "" {
		output = a.cfg.Trace.Output
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	cfg := trace.Config{Level: level, Mode: trace.ModeBoth, Format: format, OutputPath: output}
	if level == trace.LevelError {
		cfg.Level, cfg.Mode = trace.LevelDebug, trace.ModeRing
	}
	if output == "-" || output == "" {
		cfg.Output = nopWriteCloser{cmd.ErrOrStderr()}
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	a.tracer = tracer

	ctx := trace.WithTracer(cmd.Context(), tracer)
	ctx, a.span = trace.BeginCtx(ctx, trace.ScopeCommand, cmd.CommandPath())
	cmd.SetContext(ctx)
	return nil
}

// nopWriteCloser hides Close so the tracer never closes the command's stderr.
type nopWriteCloser struct{ io.Writer }
