package migrate

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	n, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = parseSteps([]string{"3"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = parseSteps([]string{"-1"})
	assert.Error(t, err)
	_, err = parseSteps([]string{"x"})
	assert.Error(t, err)
}

func TestDatabaseURL(t *testing.T) {
	_, err := (&migrateOptions{}).databaseURL()
	assert.Error(t, err)

	_, err = (&migrateOptions{DatabaseURL: "mysql://localhost/presale"}).databaseURL()
	assert.Error(t, err)

	u, err := (&migrateOptions{DatabaseURL: "postgres://localhost:5432/presale?sslmode=disable"}).databaseURL()
	require.NoError(t, err)
	clone := cloneURLWithQuery(u, url.Values{"x-migrations-table": {presaleMigrationTable}})
	assert.Equal(t, "disable", clone.Query().Get("sslmode"))
	assert.Equal(t, presaleMigrationTable, clone.Query().Get("x-migrations-table"))
	assert.Empty(t, u.Query().Get("x-migrations-table"))
}

func TestMigrationLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	m := migrator{module: "presale", table: presaleMigrationTable}

	l := newMigrationLogger(base, m)
	assert.False(t, l.Verbose())
	l.Printf("Start buffering %v/u %s\n", 1, "init")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Start buffering 1/u init", line["msg"])
	assert.Equal(t, "migrate", line["module"])
	assert.Equal(t, "presale", line["migration"])
	assert.Equal(t, presaleMigrationTable, line["table"])

	debug := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	assert.True(t, newMigrationLogger(debug, m).Verbose())
}
