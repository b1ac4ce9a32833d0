package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/mallmock/alloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mallmockctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	a, err := c.NewAllocator()
	require.NoError(t, err)
	assert.IsType(t, alloc.Heap{}, a)

	enc, err := c.TextEncoding()
	require.NoError(t, err)
	assert.Nil(t, enc)

	_, enabled, err := c.LogLevelValue()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
allocator: mmap
encoding: windows-1252
buffer_size: 64
max_ordinal: 500
log_level: debug
log_file: /tmp/mallmockctl-test.log
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "mmap", c.Allocator)
	assert.Equal(t, 64, c.BufferSize)
	assert.Equal(t, 500, c.MaxOrdinal)
	assert.Equal(t, "/tmp/mallmockctl-test.log", c.LogFile)

	a, err := c.NewAllocator()
	require.NoError(t, err)
	assert.IsType(t, alloc.Mmap{}, a)

	enc, err := c.TextEncoding()
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1252, enc)

	opts, err := c.ReadOptions()
	require.NoError(t, err)
	assert.Equal(t, 64, opts.BufferSize)

	sopts := c.SweepOptions(nil)
	assert.Equal(t, 500, sopts.MaxOrdinal)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown key", body: "alocator: heap\n"},
		{name: "unknown allocator", body: "allocator: slab\n"},
		{name: "unknown encoding", body: "encoding: klingon-8\n"},
		{name: "bad log level", body: "log_level: loud\n"},
		{name: "negative buffer", body: "buffer_size: -1\n"},
		{name: "negative ordinal", body: "max_ordinal: -1\n"},
		{name: "malformed yaml", body: "allocator: [heap\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
