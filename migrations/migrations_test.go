package migrations

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var versioned = regexp.MustCompile(`^\d{5}_[a-z0-9_]+\.sql$`)

func TestMigrationsAreVersionedAndReversible(t *testing.T) {
	names, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		assert.Regexp(t, versioned, name)

		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		text := string(body)
		assert.Contains(t, text, "-- +goose Up", name)
		assert.Contains(t, text, "-- +goose Down", name)
		if strings.Contains(text, "CONCURRENTLY") {
			assert.Contains(t, text, "-- +goose NO TRANSACTION", name)
		}
	}
}
