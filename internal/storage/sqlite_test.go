package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyrun/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "a", "b", "skyrun.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())
	assert.FileExists(t, filepath.Join(dir, "a", "b", "skyrun.db"))
}

func TestStoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Zero(t, high)

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	st, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}

func TestStoreRecordDeath(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.RecordDeath())
	}

	deaths, err := store.Deaths()
	require.NoError(t, err)
	assert.Equal(t, 3, deaths)
}

func TestStoreSaveRunTracksHighScore(t *testing.T) {
	store := openTestStore(t)

	newHigh, err := store.SaveRun(core.RunResult{Score: 100, Coins: 4, Steps: 500})
	require.NoError(t, err)
	assert.True(t, newHigh)

	newHigh, err = store.SaveRun(core.RunResult{Score: 50, Coins: 2})
	require.NoError(t, err)
	assert.False(t, newHigh)

	newHigh, err = store.SaveRun(core.RunResult{Score: 100})
	require.NoError(t, err)
	assert.False(t, newHigh, "equal score is not a new high")

	newHigh, err = store.SaveRun(core.RunResult{Score: 250, Coins: 10})
	require.NoError(t, err)
	assert.True(t, newHigh)

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 250, high)

	coins, err := store.TotalCoins()
	require.NoError(t, err)
	assert.Equal(t, 16, coins)
}

func TestStoreTopAndRecentRuns(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{30, 90, 60} {
		_, err := store.SaveRun(core.RunResult{Score: score})
		require.NoError(t, err)
	}

	top, err := store.TopRuns(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 90, top[0].Score)
	assert.Equal(t, 60, top[1].Score)

	recent, err := store.RecentRuns(0)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 60, recent[0].Score)
	assert.Equal(t, 30, recent[2].Score)
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)
	fixed := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	run, _, err := store.InsertRun(core.RunResult{Score: 42, Coins: 3, Steps: 210, TopSpeed: 10.21})
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)

	got, err := store.RunByID(run.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Score)
	assert.Equal(t, 3, got.Coins)
	assert.Equal(t, 210, got.Steps)
	assert.InDelta(t, 10.21, got.TopSpeed, 1e-9)
	assert.True(t, fixed.Equal(got.CreatedAt), "created_at = %v", got.CreatedAt)

	_, err = store.RunByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.RecordDeath())
	require.NoError(t, store.RecordDeath())
	_, err := store.SaveRun(core.RunResult{Score: 10, Coins: 1})
	require.NoError(t, err)
	_, err = store.SaveRun(core.RunResult{Score: 30, Coins: 2})
	require.NoError(t, err)

	st, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 30, st.HighScore)
	assert.Equal(t, 3, st.TotalCoins)
	assert.Equal(t, 2, st.Deaths)
	assert.Equal(t, 2, st.RunsPlayed)
	assert.InDelta(t, 20.0, st.AvgScore, 1e-9)
	assert.False(t, st.LastPlayed.IsZero())
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.RecordDeath())
	_, err := store.SaveRun(core.RunResult{Score: 10, Coins: 1})
	require.NoError(t, err)

	require.NoError(t, store.ClearRuns())

	st, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyrun.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.SaveRun(core.RunResult{Score: 77})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 77, high)
}
