package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigString(t *testing.T) {
	testCases := []struct {
		name     string
		conf     Config
		expected string
	}{
		{
			name:     "defaults",
			expected: "host=127.0.0.1 port=5432 dbname=postgres sslmode=prefer",
		},
		{
			name: "credentials",
			conf: Config{
				Host:     "db",
				Port:     "6543",
				User:     "presale",
				Password: "it's",
				DBName:   "ledger",
				SSLMode:  "disable",
			},
			expected: `host=db port=6543 dbname=ledger sslmode=disable user=presale password='it\'s'`,
		},
		{
			name: "url wins",
			conf: Config{
				Host: "ignored",
				URL:  "postgres://presale@localhost:5432/ledger?sslmode=disable",
			},
			expected: "postgres://presale@localhost:5432/ledger?sslmode=disable",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.conf.String())
		})
	}
}

func TestConfigStringParses(t *testing.T) {
	conf := Config{User: "presale", Password: "it's", DBName: "ledger"}
	parsed, err := pgxpool.ParseConfig(conf.String())
	require.NoError(t, err)
	assert.Equal(t, "it's", parsed.ConnConfig.Password)
	assert.Equal(t, "ledger", parsed.ConnConfig.Database)
}
