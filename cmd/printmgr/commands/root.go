// Package commands implements the printmgr CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/printmgr/internal/config"
	"github.com/sghaida/printmgr/internal/logger"
)

// Version information injected at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCmd builds the printmgr root command.
func NewRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "printmgr [document ...]",
		Short: "Print documents through the shared printer manager",
		Long: `printmgr obtains the process-wide printer manager and prints each
document as "Printing document: <name>" on stdout.

With no arguments it prints Report.pdf and Letter.docx.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, args)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			logger.Set(log)

			return run(cmd.Context(), cfg, log)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// Execute runs the root command. Called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}
