package printer

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/sghaida/printmgr/di"
	"github.com/sghaida/printmgr/internal/logger"
)

// linePrefix precedes the document name on every printed line.
const linePrefix = "Printing document: "

// Manager prints documents to standard output. It carries no state.
type Manager struct {
	// out overrides stdout; nil means os.Stdout resolved at call time.
	out io.Writer
}

func newManager() *Manager { return &Manager{} }

var shared = di.Lazy(newManager).OnCreate(func(m *Manager) {
	logger.L().Debug("printer manager created", zap.String("instance", fmt.Sprintf("%p", m)))
})

// GetInstance returns the shared Manager, creating it on first use.
// It is safe for concurrent use.
func GetInstance() *Manager {
	return shared.Get()
}

// Line formats the output line for name, without the trailing newline.
func Line(name string) string {
	return linePrefix + name
}

// PrintDocument writes "Printing document: <name>" as one line to stdout.
// The name is not validated.
func (m *Manager) PrintDocument(name string) {
	w := m.out
	if w == nil {
		w = os.Stdout
	}
	if _, err := io.WriteString(w, Line(name)+"\n"); err != nil {
		logger.L().Warn("print document", zap.String("document", name), zap.Error(err))
	}
}
