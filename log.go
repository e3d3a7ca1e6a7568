package stackvec

import (
	"sync/atomic"

	"github.com/xyproto/env/v2"
	"go.uber.org/zap"
)

// Diagnostic logging is off by default. Setting STACKVEC_DEBUG (to 1, true,
// yes...) switches the package logger to a zap development logger so the
// placement path and invalid-index reports are traced.
var packageLogger atomic.Pointer[zap.Logger]

func init() {
	l := zap.NewNop()
	if env.Bool("STACKVEC_DEBUG") {
		if dev, err := zap.NewDevelopment(); err == nil {
			l = dev
		}
	}
	packageLogger.Store(l)
}

// SetLogger replaces the package-level diagnostic logger used by buffers
// that were not given one via Options.Logger. nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	packageLogger.Store(l)
}

func pkgLogger() *zap.Logger {
	return packageLogger.Load()
}
