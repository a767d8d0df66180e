package logger

import (
	"fmt"
	"strings"
)

// MigrationLogger adapts *Logger to the Printf/Fatalf logger interface used by
// the goose migration runner.
type MigrationLogger struct {
	l *Logger
}

// Migrations returns a MigrationLogger that writes through l.
func (l *Logger) Migrations() *MigrationLogger {
	return &MigrationLogger{l: l}
}

// Printf logs a migration progress message at info level.
func (m *MigrationLogger) Printf(format string, v ...any) {
	m.l.Info().Str("component", "migrations").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level and panics. goose calls it only for
// unrecoverable conditions; Migrate recovers the panic into an error so the
// process is not killed from inside the storage layer.
func (m *MigrationLogger) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	m.l.Error().Str("component", "migrations").Msg(msg)
	panic(msg)
}
