// Package diag centralizes the two diagnostic policies spec §7 defines:
// warnings (logged, the record is skipped, the stage continues and
// exits 0) and fatal errors (logged, the stage aborts with exit 1). It
// wraps github.com/charmbracelet/log instead of bare fmt.Fprintf, giving
// every stage leveled, consistently formatted stderr output, while
// keeping the exact "stderr only, exit code driven by the caller"
// behavior spec §7 and §5 call for.
package diag

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns the logger a stage constructs once at startup and
// passes explicitly to the components that log (the pager Engine, the
// line-break collaborator, the contents formatter), per Design Notes'
// "no global mutable I/O" guidance — never a package-level global.
func NewLogger(stage string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          stage,
	})
	return logger
}

// Warn logs a non-fatal diagnostic: a malformed record or an unknown
// command. The caller always skips the offending record and continues;
// Warn never affects the stage's exit code (spec §7).
func Warn(logger *log.Logger, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if logger != nil {
		logger.Warn(msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Fatal logs a fatal diagnostic and returns an error for the caller to
// propagate. It deliberately does not call os.Exit itself, so that
// error paths stay testable; internal/cli.Run is what turns a non-nil
// error into exit code 1.
func Fatal(logger *log.Logger, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if logger != nil {
		logger.Error(msg)
	} else {
		fmt.Fprintln(os.Stderr, msg)
	}
	return fmt.Errorf("%s", msg)
}
