package migrate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
)

var _ migrate.Logger = (*migrationLogger)(nil)

// migrationLogger forwards golang-migrate progress lines to the structured logger.
type migrationLogger struct {
	log *slog.Logger
}

func newMigrationLogger(base *slog.Logger, m migrator) *migrationLogger {
	return &migrationLogger{
		log: base.With(
			slog.String("module", "migrate"),
			slog.String("migration", m.module),
			slog.String("table", m.table),
		),
	}
}

func (l *migrationLogger) Printf(format string, v ...interface{}) {
	l.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Verbose follows the debug level of the structured logger.
func (l *migrationLogger) Verbose() bool {
	return l.log.Enabled(context.Background(), slog.LevelDebug)
}
