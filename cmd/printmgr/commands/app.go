package commands

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/sghaida/printmgr/internal/config"
	"github.com/sghaida/printmgr/printer"
)

// newApp wires the shared manager into an fx graph. The print job runs in
// the OnStart hook, in document order.
func newApp(cfg *config.Config, log *zap.Logger, opts ...fx.Option) *fx.App {
	base := []fx.Option{
		fx.Supply(cfg, log),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
		fx.Provide(printer.GetInstance),
		fx.Invoke(registerPrintJob),
	}
	return fx.New(append(base, opts...)...)
}

func registerPrintJob(lc fx.Lifecycle, m *printer.Manager, cfg *config.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			printAll(m, cfg.Documents)
			log.Debug("print job done", zap.Int("documents", len(cfg.Documents)))
			return nil
		},
	})
}

func printAll(m *printer.Manager, docs []string) {
	for _, d := range docs {
		m.PrintDocument(d)
	}
}

// run starts and stops the app once. It does not wait for signals.
func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app := newApp(cfg, log)
	if err := app.Err(); err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	stopCtx, cancel := context.WithTimeout(ctx, app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}
