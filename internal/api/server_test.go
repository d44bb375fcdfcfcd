package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyrun/internal/core"
	"github.com/vovakirdan/skyrun/internal/storage"
)

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewServer(store, nil), store
}

func get(t *testing.T, h http.Handler, path string) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return rec.Code, env
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	code, env := get(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", env.Status)
}

func TestTopRuns(t *testing.T) {
	srv, store := newTestServer(t)
	for _, score := range []int{5, 50, 20} {
		_, err := store.SaveRun(core.RunResult{Score: score})
		require.NoError(t, err)
	}

	code, env := get(t, srv, "/api/runs/top?limit=2")
	require.Equal(t, http.StatusOK, code)

	var runs []storage.Run
	require.NoError(t, json.Unmarshal(env.Data, &runs))
	require.Len(t, runs, 2)
	assert.Equal(t, 50, runs[0].Score)
	assert.Equal(t, 20, runs[1].Score)
}

func TestRecentRunsEmptyIsArray(t *testing.T) {
	srv, _ := newTestServer(t)
	code, env := get(t, srv, "/api/runs/recent")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestBadLimit(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, q := range []string{"abc", "0", "101"} {
		code, env := get(t, srv, "/api/runs/top?limit="+q)
		assert.Equal(t, http.StatusBadRequest, code, "limit=%s", q)
		assert.Equal(t, "error", env.Status)
	}
}

func TestRunByID(t *testing.T) {
	srv, store := newTestServer(t)
	run, _, err := store.InsertRun(core.RunResult{Score: 77, Coins: 3})
	require.NoError(t, err)

	code, env := get(t, srv, "/api/runs/"+run.ID)
	require.Equal(t, http.StatusOK, code)
	var got storage.Run
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, 77, got.Score)

	code, env = get(t, srv, "/api/runs/nope")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "run not found", env.Message)
}

func TestStats(t *testing.T) {
	srv, store := newTestServer(t)
	require.NoError(t, store.RecordDeath())
	_, err := store.SaveRun(core.RunResult{Score: 40, Coins: 6})
	require.NoError(t, err)

	code, env := get(t, srv, "/api/stats")
	require.Equal(t, http.StatusOK, code)

	var st storage.Stats
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, 40, st.HighScore)
	assert.Equal(t, 6, st.TotalCoins)
	assert.Equal(t, 1, st.Deaths)
	assert.Equal(t, 1, st.RunsPlayed)
}

func TestUnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)
	code, env := get(t, srv, "/api/nothing/here")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", env.Status)
}

type failingStore struct{ Store }

func (failingStore) Stats() (storage.Stats, error) {
	return storage.Stats{}, errors.New("boom")
}

func TestStoreFailureHidesDetails(t *testing.T) {
	srv := NewServer(failingStore{}, nil)
	code, env := get(t, srv, "/api/stats")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", env.Message)
}

func TestLiveFeed(t *testing.T) {
	srv, store := newTestServer(t)
	_, err := store.SaveRun(core.RunResult{Score: 10})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Feed().Run(ctx, 10*time.Millisecond)
	require.Eventually(t, func() bool { return srv.Feed().running.Load() }, time.Second, 5*time.Millisecond)

	ts := httptest.NewServer(srv)
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws/runs", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))

	var snap envelope
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, "snapshot", snap.Status)
	var runs []storage.Run
	require.NoError(t, json.Unmarshal(snap.Data, &runs))
	require.Len(t, runs, 1)

	_, err = store.SaveRun(core.RunResult{Score: 99, Coins: 4})
	require.NoError(t, err)

	var msg envelope
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "run", msg.Status)
	var run storage.Run
	require.NoError(t, json.Unmarshal(msg.Data, &run))
	assert.Equal(t, 99, run.Score)
}

func TestLiveFeedNotRunning(t *testing.T) {
	srv, _ := newTestServer(t)
	code, env := get(t, srv, "/ws/runs")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "error", env.Status)
}
