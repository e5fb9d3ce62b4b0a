package migrate

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

const (
	presaleMigrationSource = "modules/presale/database/postgresql/migrations"
	presaleMigrationTable  = "presale_schema_migrations"
)

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}

// migrateOptions are the flags shared by up and down.
type migrateOptions struct {
	DatabaseURL   string
	PresaleSource string
	Presale       bool
}

func (o *migrateOptions) bindFlags(cmd *cobra.Command, direction string) {
	flags := cmd.Flags()
	flags.BoolVar(&o.Presale, "presale", false, fmt.Sprintf("Apply Presale %s migrations", direction))
	flags.StringVar(&o.PresaleSource, "presale-source", presaleMigrationSource, "Path to Presale migrations directory")
	flags.StringVar(&o.DatabaseURL, "database", "", "Database url to run migration on")
}

func (o *migrateOptions) databaseURL() (*url.URL, error) {
	if o.DatabaseURL == "" {
		return nil, errors.New("--database is required")
	}
	u, err := url.Parse(o.DatabaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[u.Scheme]; !ok {
		return nil, errors.Errorf("unsupported database driver: %s", u.Scheme)
	}
	return u, nil
}

// parseSteps parses the optional [N] argument. Zero means all.
func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse N")
	}
	if n < 0 {
		return 0, errors.New("N must be a positive integer")
	}
	return n, nil
}

// migrator applies one module's migrations, tracked in its own table.
type migrator struct {
	module string
	source string
	table  string
}

func (m migrator) run(databaseURL *url.URL, fn func(*migrate.Migrate) error) error {
	target := cloneURLWithQuery(databaseURL, url.Values{"x-migrations-table": {m.table}})
	mg, err := migrate.New("file://"+m.source, target.String())
	if err != nil {
		return errors.Wrap(err, "failed to create Migrate instance")
	}
	defer mg.Close()
	mg.Log = newMigrationLogger(logger.With(), m)
	return fn(mg)
}

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}
