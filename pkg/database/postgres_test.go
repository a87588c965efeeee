package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbcare/screening-api/pkg/config"
)

func TestDSNEscapesCredentials(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host: "db", Port: 5432, User: "tb", Password: "p@ss/word", Name: "tb_screening", SSLMode: "disable",
	})
	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db:5432", u.Host)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss/word", pw)
	assert.Equal(t, "/tb_screening", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}
