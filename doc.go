// Package printmgr is a shared printer manager for Go.
//
// The module is organised as:
//
//   - di: lazy, exactly-once Singleton holder
//   - printer: the process-wide Manager and its GetInstance accessor
//   - cmd/printmgr: CLI that wires the shared Manager through an fx graph
//   - internal/config, internal/logger: viper configuration and zap logging
//
// Start with printer.GetInstance:
//
//	printer.GetInstance().PrintDocument("Report.pdf")
package printmgr
