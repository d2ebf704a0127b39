package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/sghaida/printmgr/internal/config"
	"github.com/sghaida/printmgr/internal/logger"
	"github.com/sghaida/printmgr/internal/testutil"
	"github.com/sghaida/printmgr/printer"
)

// execute runs a fresh root command with args, capturing both process streams.
func execute(t *testing.T, args ...string) (testutil.Output, error) {
	t.Helper()
	t.Cleanup(func() { logger.Set(nil) })
	if args == nil {
		// cobra falls back to os.Args on nil, which holds the test flags.
		args = []string{}
	}

	var err error
	got := testutil.Capture(t, func() {
		cmd := NewRootCmd()
		cmd.SetArgs(args)
		err = cmd.Execute()
	})
	return got, err
}

// Root command
func TestRoot_NoArgsPrintsDefaultDocuments(t *testing.T) {
	t.Setenv("PRINTMGR_LOG_LEVEL", "")

	got, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t, "Printing document: Report.pdf\nPrinting document: Letter.docx\n", got.Stdout)
	assert.Empty(t, got.Stderr)
}

func TestRoot_ArgsReplaceDocuments(t *testing.T) {
	got, err := execute(t, "invoice.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Printing document: invoice.pdf\n", got.Stdout)
}

func TestRoot_DebugLoggingGoesToStderr(t *testing.T) {
	got, err := execute(t, "--log-level=debug", "--log-format=json", "Report.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Printing document: Report.pdf\n", got.Stdout)
	assert.Contains(t, got.Stderr, "print job done")
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	got, err := execute(t, "--log-level=shout")
	require.Error(t, err)

	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	assert.Empty(t, got.Stdout)
}

// fx wiring
func TestNewApp_ProvidesSharedManager(t *testing.T) {
	cfg := &config.Config{Documents: nil}

	var got *printer.Manager
	app := newApp(cfg, zap.NewNop(), fx.Populate(&got))
	require.NoError(t, app.Err())

	assert.Same(t, printer.GetInstance(), got)
}

func TestRun_PrintsInOrder(t *testing.T) {
	cfg := &config.Config{Documents: []string{"one", "two", "three"}}

	var err error
	out := testutil.CaptureStdout(t, func() {
		err = run(context.Background(), cfg, zap.NewNop())
	})
	require.NoError(t, err)

	assert.Equal(t, "Printing document: one\nPrinting document: two\nPrinting document: three\n", out)
}
