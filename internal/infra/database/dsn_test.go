package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-forecast/pkg/resource"
)

func TestConfigFromProperties(t *testing.T) {
	require.NoError(t, resource.Load([]byte(`
app:
  db:
    host: db.local
    port: 5433
    username: forecast
    password: secret
    database: archive
    schema: public
`)))

	config := ConfigFromProperties()

	assert.Equal(t, "db.local", config.Host)
	assert.Equal(t, "5433", config.Port)
	assert.Equal(t, "disable", config.SSLMode)
	assert.Equal(t,
		"host=db.local port=5433 user=forecast password=secret dbname=archive sslmode=disable search_path=public",
		config.DSN())
}
