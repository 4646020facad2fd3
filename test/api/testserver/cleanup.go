//go:build api

package testserver

import (
	"testing"

	"movieflix/test/testutil"

	"github.com/stretchr/testify/require"
)

// CleanupBetweenTests resets users, movies, tokens, cached entries, rate
// limit counters, stored posters and sent mail. Call it first in every test.
func (ts *TestServer) CleanupBetweenTests(t *testing.T) {
	t.Helper()
	ctx := testutil.Context(t)

	require.NoError(t, ts.MongoDB.CleanupCollections(ctx), "clear collections")
	require.NoError(t, ts.Redis.FlushDB(ctx), "flush redis")
	require.NoError(t, ts.MinIO.ClearBucket(ctx), "clear poster bucket")
	ts.Outbox.Reset()
}

// CleanupRedis resets rate limit counters and caches only.
func (ts *TestServer) CleanupRedis(t *testing.T) {
	t.Helper()
	require.NoError(t, ts.Redis.FlushDB(testutil.Context(t)), "flush redis")
}
