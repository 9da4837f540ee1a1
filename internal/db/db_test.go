package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/config"
)

func TestConnectionURL(t *testing.T) {
	raw := ConnectionURL(config.PostgresConfig{
		Host: "db", Port: "5432", DB: "trips", Username: "app", Password: "p@ss word", SSLMode: "require",
	})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "postgresql", u.Scheme)
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/trips", u.Path)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss word", pw)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.Equal(t, "utc", u.Query().Get("timezone"))
}

func TestRunMigrationsRejectsScheme(t *testing.T) {
	err := RunMigrations("mysql://localhost/trips", nil)
	require.Error(t, err)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationFS.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
