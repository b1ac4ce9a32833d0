package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeLines = "first line\nsecond line\nthird line\n"

func TestReadCommand(t *testing.T) {
	tests := []struct {
		name        string
		failAt      int
		allocator   string
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "unarmed",
			failAt:      -1,
			wantContain: []string{"first line\n", "second line\n", "third line\n"},
		},
		{
			name:    "fail first allocation",
			failAt:  0,
			wantErr: true,
		},
		{
			name:    "fail last line",
			failAt:  5,
			wantErr: true,
		},
		{
			name:        "ordinal past the workload",
			failAt:      6,
			wantContain: []string{"third line\n"},
		},
		{
			name:        "mmap allocator",
			failAt:      -1,
			allocator:   "mmap",
			wantContain: []string{"second line\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			readFailAt = tt.failAt
			if tt.allocator != "" {
				cfg.Allocator = tt.allocator
			}
			path := writeTestFile(t, "three.txt", threeLines)

			output, err := captureOutput(t, func() error {
				return runRead([]string{path})
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "out of memory")
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantContain {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestReadCommand_JSON(t *testing.T) {
	resetGlobals(t)
	jsonOut = true
	path := writeTestFile(t, "three.txt", threeLines)

	output, err := captureOutput(t, func() error {
		return runRead([]string{path})
	})
	require.NoError(t, err)

	var report readReport
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	assert.Equal(t, path, report.File)
	assert.False(t, report.Armed)
	assert.False(t, report.Failed)
	assert.Equal(t, uint64(6), report.Allocations)
	assert.Equal(t, []string{"first line\n", "second line\n", "third line\n"}, report.Lines)
}

func TestReadCommand_JSONFailure(t *testing.T) {
	resetGlobals(t)
	jsonOut = true
	readFailAt = 3
	path := writeTestFile(t, "three.txt", threeLines)

	output, err := captureOutput(t, func() error {
		return runRead([]string{path})
	})
	require.Error(t, err)

	var report readReport
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	assert.True(t, report.Armed)
	assert.Equal(t, 3, report.FailAt)
	assert.True(t, report.Failed)
	assert.Equal(t, uint64(4), report.Allocations)
	assert.Empty(t, report.Lines)
}

func TestReadCommand_Encoding(t *testing.T) {
	resetGlobals(t)
	cfg.Encoding = "ISO-8859-1"
	path := writeTestFile(t, "latin.txt", "na\xefve\n")

	output, err := captureOutput(t, func() error {
		return runRead([]string{path})
	})
	require.NoError(t, err)
	assert.Equal(t, "naïve\n", output)
}

func TestReadCommand_MissingFile(t *testing.T) {
	resetGlobals(t)
	_, err := captureOutput(t, func() error {
		return runRead([]string{"/nonexistent/mallmockctl/input.txt"})
	})
	require.Error(t, err)
}
