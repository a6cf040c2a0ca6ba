// Package database wraps the shared test fixture in the production client
// type so service tests exercise the same surface the server uses.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/pkg/database"
	"github.com/clipdock/clipd/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient returns a database client bound to a per-test schema with
// the full schema and GIN indexes in place. Teardown is registered on t by
// the underlying fixture.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(context.Background(), drv))

	return database.NewClientFromEnt(entClient, db)
}
