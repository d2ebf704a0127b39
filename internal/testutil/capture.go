// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Output is what a captured function wrote to the process streams.
type Output struct {
	Stdout string
	Stderr string
}

// Capture runs fn with os.Stdout and os.Stderr redirected to pipes and returns
// what was written to each. The streams are restored and the pipes closed even
// when fn stops the test with FailNow.
func Capture(t *testing.T, fn func()) Output {
	t.Helper()

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	stdout := drain(outR)
	stderr := drain(errR)

	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW

	restored := false
	restore := func() {
		if restored {
			return
		}
		restored = true
		os.Stdout, os.Stderr = origOut, origErr
		_ = outW.Close()
		_ = errW.Close()
	}
	t.Cleanup(restore)

	fn()
	restore()

	return Output{Stdout: <-stdout, Stderr: <-stderr}
}

// CaptureStdout is Capture for callers that only care about stdout.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return Capture(t, fn).Stdout
}

func drain(r *os.File) <-chan string {
	done := make(chan string, 1)
	go func() {
		defer r.Close()
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()
	return done
}
