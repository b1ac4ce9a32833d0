package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		for _, cmd := range rootCmd.Commands() {
			cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		}
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})
	rootCmd.SetArgs(args)
	return captureOutput(t, func() error {
		_, err := rootCmd.ExecuteC()
		return err
	})
}

func TestRoot_ConfigAndFlagOverride(t *testing.T) {
	resetGlobals(t)
	logPath := filepath.Join(t.TempDir(), "run.log")
	confPath := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(confPath, []byte("allocator: mmap\nlog_level: info\nlog_file: "+logPath+"\n"), 0o644))
	path := writeTestFile(t, "three.txt", threeLines)

	output, err := executeRoot(t, "read", path, "--config", confPath, "--allocator", "heap")
	require.NoError(t, err)
	assert.Equal(t, threeLines, output)
	assert.Equal(t, "heap", cfg.Allocator, "flag overrides the file")
	assert.Equal(t, "info", cfg.LogLevel, "file value survives")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"read"`)
}

func TestRoot_InvalidFlag(t *testing.T) {
	resetGlobals(t)
	path := writeTestFile(t, "three.txt", threeLines)

	_, err := executeRoot(t, "read", path, "--allocator", "slab")
	require.ErrorIs(t, err, errBadConfig)
}
