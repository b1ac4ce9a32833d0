package main

import (
	"fmt"

	"github.com/joshuapare/mallmock/alloc"
	"github.com/joshuapare/mallmock/cmd/mallmockctl/logger"
	"github.com/joshuapare/mallmock/mallmock"
	"github.com/joshuapare/mallmock/readfile"
	"github.com/spf13/cobra"
)

var readFailAt int

func init() {
	rootCmd.AddCommand(newReadCmd())
}

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Read a file as lines, optionally failing one allocation",
		Long: `The read command loads a file through the readfile consumer. With
--fail-at K the allocator lets K allocations succeed and fails the next one,
so the command reports how the consumer handled that failure.

Example:
  mallmockctl read notes.txt
  mallmockctl read notes.txt --fail-at 0
  mallmockctl read notes.txt --fail-at 5 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(args)
		},
	}
	cmd.Flags().IntVar(&readFailAt, "fail-at", -1, "Fail the allocation at this zero-based ordinal (negative: never)")
	return cmd
}

// readReport is the JSON shape of a read.
type readReport struct {
	File        string   `json:"file"`
	Armed       bool     `json:"armed"`
	FailAt      int      `json:"fail_at"`
	Allocations uint64   `json:"allocations"`
	Failed      bool     `json:"failed"`
	Error       string   `json:"error,omitempty"`
	Lines       []string `json:"lines,omitempty"`
}

func runRead(args []string) error {
	path := args[0]

	base, err := cfg.NewAllocator()
	if err != nil {
		return err
	}
	opts, err := cfg.ReadOptions()
	if err != nil {
		return err
	}

	ic := mallmock.New(base)
	counter := alloc.NewCounter(ic)
	report := readReport{File: path}
	if readFailAt >= 0 {
		ic.Arm(nil, readFailAt)
		report.Armed = true
		report.FailAt = readFailAt
		printVerbose("Armed: allocation %d will fail\n", readFailAt)
	}

	f, openErr := readfile.Open(counter, path, opts)
	ic.Reset()
	defer f.Close()

	report.Allocations = counter.Calls()
	logger.Info("read", "file", path, "allocations", report.Allocations, "err", openErr)

	if openErr != nil {
		report.Failed = true
		report.Error = openErr.Error()
	} else {
		for line := range f.Lines() {
			report.Lines = append(report.Lines, line)
		}
	}

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
		if openErr != nil {
			return fmt.Errorf("read failed: %w", openErr)
		}
		return nil
	}

	if openErr != nil {
		return fmt.Errorf("read failed after %d allocations: %w", report.Allocations, openErr)
	}
	for _, line := range report.Lines {
		printInfo("%s", line)
	}
	printVerbose("\n%d lines, %d allocations\n", f.LineCount(), report.Allocations)
	return nil
}
