package numeral

import "go.uber.org/zap"

// log is the package-level logger, following the teacher's
// package-level-config convention (value.conf in robpike-ivy): a
// zero-value-safe no-op logger until the CLI installs a real one via
// SetLogger.
var log = zap.NewNop().Sugar()

// SetLogger installs the logger used for NumericWarning conditions
// (division or remainder by exact zero, an exponent too large for
// int64, a negative power of zero). Call once at startup; nil is
// rejected in favor of the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		return
	}
	log = l
}
