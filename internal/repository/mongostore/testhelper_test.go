package mongostore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestDB holds the test database and container.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupTestDB creates a MongoDB test container and returns a connected database.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "Failed to start MongoDB container")

	connectionString, err := container.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get connection string")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	require.NoError(t, err, "Failed to connect to MongoDB")

	err = client.Ping(ctx, nil)
	require.NoError(t, err, "Failed to ping MongoDB")

	dbName := "test_" + time.Now().Format("20060102150405")

	tdb := &TestDB{
		Container: container,
		Client:    client,
		Database:  client.Database(dbName),
	}
	t.Cleanup(func() { tdb.Cleanup() })

	return tdb
}

// Cleanup drops the database and stops the container.
func (tdb *TestDB) Cleanup() {
	ctx := context.Background()

	if tdb.Database != nil {
		_ = tdb.Database.Drop(ctx)
	}
	if tdb.Client != nil {
		_ = tdb.Client.Disconnect(ctx)
	}
	if tdb.Container != nil {
		_ = tdb.Container.Terminate(ctx)
	}
}

// ClearCollection removes all documents from a collection.
func (tdb *TestDB) ClearCollection(t *testing.T, collectionName string) {
	t.Helper()

	_, err := tdb.Database.Collection(collectionName).DeleteMany(context.Background(), map[string]interface{}{})
	require.NoError(t, err, "Failed to clear collection %s", collectionName)
}
