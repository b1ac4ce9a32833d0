package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joshuapare/mallmock/alloc"
	"github.com/joshuapare/mallmock/cmd/mallmockctl/logger"
	"github.com/joshuapare/mallmock/mallmock"
	"github.com/joshuapare/mallmock/readfile"
	"github.com/spf13/cobra"
)

var sweepWatch bool

func init() {
	rootCmd.AddCommand(newSweepCmd())
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep <file>",
		Short: "Fail every allocation ordinal in turn while reading a file",
		Long: `The sweep command reads the file once per allocation ordinal, failing
that ordinal each time, until a read completes without reaching it. Every
injected failure must be reported by the consumer and must leave no live
blocks behind.

Example:
  mallmockctl sweep notes.txt
  mallmockctl sweep notes.txt --allocator mmap --json
  mallmockctl sweep notes.txt --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runSweep(ctx, args)
		},
	}
	cmd.Flags().BoolVar(&sweepWatch, "watch", false, "Sweep again whenever the file changes")
	return cmd
}

// sweepReport is the JSON shape of a sweep.
type sweepReport struct {
	File        string `json:"file"`
	Allocations int    `json:"allocations"`
	Runs        int    `json:"runs"`
	Ignored     []int  `json:"ignored,omitempty"`
	Leaked      []int  `json:"leaked,omitempty"`
	Error       string `json:"error,omitempty"`
}

func runSweep(ctx context.Context, args []string) error {
	path := args[0]
	if err := sweepOnce(ctx, path); err != nil || !sweepWatch {
		return err
	}
	printVerbose("Watching %s\n", path)
	return watchFile(ctx, path, func() error {
		err := sweepOnce(ctx, path)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if errors.Is(err, mallmock.ErrFailureMishandled) || errors.Is(err, mallmock.ErrRunFailed) {
			// Keep watching; the next edit may fix it.
			logger.Warn("sweep failed", "file", path, "err", err)
			return nil
		}
		return err
	})
}

func sweepOnce(ctx context.Context, path string) error {
	base, err := cfg.NewAllocator()
	if err != nil {
		return err
	}
	opts, err := cfg.ReadOptions()
	if err != nil {
		return err
	}

	res, sweepErr := mallmock.Sweep(ctx, base, func(a alloc.Allocator) error {
		f, err := readfile.Open(a, path, opts)
		if err != nil {
			return err
		}
		f.Close()
		return nil
	}, cfg.SweepOptions(logger.L))

	report := sweepReport{File: path}
	if res != nil {
		report.Allocations = res.Allocations
		report.Runs = res.Runs
		report.Ignored = res.Ignored
		report.Leaked = res.Leaked
	}
	if sweepErr != nil {
		report.Error = sweepErr.Error()
	}
	logger.Info("sweep", "file", path, "allocations", report.Allocations, "runs", report.Runs, "err", sweepErr)

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else if sweepErr == nil || errors.Is(sweepErr, mallmock.ErrFailureMishandled) {
		printInfo("%s: %d allocations, %d runs\n", path, report.Allocations, report.Runs)
		for _, k := range report.Ignored {
			printInfo("  ordinal %d: failure ignored\n", k)
		}
		for _, k := range report.Leaked {
			printInfo("  ordinal %d: blocks leaked\n", k)
		}
	}

	if sweepErr != nil {
		return fmt.Errorf("sweep %s: %w", path, sweepErr)
	}
	return nil
}
