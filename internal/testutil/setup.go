// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/mallmock/alloc"
	"github.com/joshuapare/mallmock/mallmock"
)

// WriteTempFile writes contents to a fresh file in t.TempDir and returns its path.
//
// Example:
//
//	path := testutil.WriteTempFile(t, "lines.txt", testutil.ThreeLines)
func WriteTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// SetupInterceptor returns a disarmed Interceptor whose delegated calls are
// recorded by the returned Counter. The interceptor is reset when the test ends.
//
// Example:
//
//	ic, counter := testutil.SetupInterceptor(t, alloc.Heap{})
//	ic.Arm(nil, 3)
func SetupInterceptor(t *testing.T, next alloc.Allocator) (*mallmock.Interceptor, *alloc.Counter) {
	t.Helper()

	counter := alloc.NewCounter(next)
	ic := mallmock.New(counter)
	t.Cleanup(ic.Reset)
	return ic, counter
}
