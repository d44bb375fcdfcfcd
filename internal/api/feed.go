package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/skyrun/internal/storage"
)

const (
	feedSnapshotSize = 10
	feedSendBuffer   = 16
	feedWriteWait    = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// client is one websocket subscriber.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Feed pushes newly saved runs to websocket subscribers. It polls the
// store, so runs written by other processes (SSH server, local play) show
// up too.
type Feed struct {
	store  Store
	logger *log.Logger

	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]bool
	running    atomic.Bool

	// Owned by the poller once Run starts
	lastID string
	lastAt time.Time
	seeded bool
}

func newFeed(store Store, logger *log.Logger) *Feed {
	return &Feed{
		store:      store,
		logger:     logger,
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte),
		clients:    make(map[*client]bool),
	}
}

// Run serves the hub and polls the store every interval until ctx ends.
func (f *Feed) Run(ctx context.Context, interval time.Duration) {
	if !f.running.CompareAndSwap(false, true) {
		return
	}
	defer f.running.Store(false)

	runs, err := f.store.RecentRuns(1)
	if err != nil {
		f.logger.Warn("feed seed failed, retrying on next poll", "error", err)
	} else {
		f.seed(runs)
	}

	go f.poll(ctx, interval)

	for {
		select {
		case <-ctx.Done():
			for c := range f.clients {
				close(c.send)
				delete(f.clients, c)
			}
			return
		case c := <-f.register:
			f.clients[c] = true
		case c := <-f.unregister:
			if f.clients[c] {
				delete(f.clients, c)
				close(c.send)
			}
		case msg := <-f.broadcast:
			for c := range f.clients {
				select {
				case c.send <- msg:
				default:
					// Slow subscriber
					close(c.send)
					delete(f.clients, c)
				}
			}
		}
	}
}

func (f *Feed) poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		runs, err := f.store.RecentRuns(feedSnapshotSize)
		if err != nil {
			f.logger.Warn("feed poll failed", "error", err)
			continue
		}

		// Runs already stored when the feed came up are not news
		if !f.seeded {
			f.seed(runs)
			continue
		}

		fresh := newerThan(runs, f.lastID, f.lastAt)
		if len(fresh) == 0 {
			continue
		}
		f.lastID, f.lastAt = fresh[0].ID, fresh[0].CreatedAt

		// Oldest first so subscribers see them in play order
		for i := len(fresh) - 1; i >= 0; i-- {
			msg, err := json.Marshal(Envelope{Status: "run", Data: fresh[i]})
			if err != nil {
				continue
			}
			select {
			case f.broadcast <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

// seed marks the newest of runs as already announced.
func (f *Feed) seed(runs []storage.Run) {
	if len(runs) > 0 {
		f.lastID, f.lastAt = runs[0].ID, runs[0].CreatedAt
	}
	f.seeded = true
}

// newerThan returns the prefix of runs (newest first) above lastID. When
// lastID is gone, for example after the runs were cleared, it falls back to
// runs created no earlier than lastAt.
func newerThan(runs []storage.Run, lastID string, lastAt time.Time) []storage.Run {
	for i, r := range runs {
		if r.ID == lastID {
			return runs[:i]
		}
	}
	for i, r := range runs {
		if r.CreatedAt.Before(lastAt) {
			return runs[:i]
		}
	}
	return runs
}

// serveWS upgrades the request, sends a snapshot of recent runs and then
// forwards every new run.
func (f *Feed) serveWS(w http.ResponseWriter, r *http.Request) {
	if !f.running.Load() {
		writeError(w, unavailableError{msg: "live feed is not running"})
		return
	}

	runs, err := f.store.RecentRuns(feedSnapshotSize)
	if err != nil {
		f.logger.Error("feed snapshot failed", "error", err)
		writeError(w, err)
		return
	}
	if runs == nil {
		runs = []storage.Run{}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, feedSendBuffer)}
	snapshot, _ := json.Marshal(Envelope{Status: "snapshot", Data: runs})
	c.send <- snapshot

	select {
	case f.register <- c:
	case <-r.Context().Done():
		conn.Close()
		return
	}
	go f.readPump(c)
	f.writePump(c)
}

// readPump discards client messages and unregisters on disconnect.
func (f *Feed) readPump(c *client) {
	defer func() {
		select {
		case f.unregister <- c:
		case <-time.After(time.Second):
		}
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (f *Feed) writePump(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		//nolint:errcheck // a failed deadline surfaces on the write below
		c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	//nolint:errcheck // closing anyway
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
