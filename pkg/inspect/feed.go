package inspect

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/loom-ui/loom/pkg/runtime"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 64
)

// Feed broadcasts host mutations to websocket subscribers. A slow
// subscriber whose buffer fills is dropped rather than allowed to
// stall the render loop.
type Feed struct {
	log *slog.Logger

	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// NewFeed creates an empty feed.
func NewFeed(log *slog.Logger) *Feed {
	if log == nil {
		log = slog.Default()
	}
	return &Feed{
		log:  log,
		subs: make(map[*subscriber]struct{}),
	}
}

// Observer returns a runtime observer that publishes every mutation
// to the feed.
func (f *Feed) Observer() runtime.Observer {
	return func(m runtime.Mutation) {
		f.Publish(map[string]string{
			"op":     string(m.Op),
			"detail": m.Detail,
		})
	}
}

// Publish broadcasts one JSON-encoded message to every subscriber.
func (f *Feed) Publish(msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		f.log.Error("feed encode failed", "error", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for sub := range f.subs {
		select {
		case sub.send <- data:
		default:
			delete(f.subs, sub)
			close(sub.send)
		}
	}
}

// Subscribe adopts an upgraded connection and serves it until it
// closes. Blocks; callers run it from the upgrade handler.
func (f *Feed) Subscribe(conn *websocket.Conn) {
	sub := &subscriber{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()

	go f.writePump(sub)
	f.readPump(sub)
}

// readPump discards inbound messages; its job is detecting the close.
func (f *Feed) readPump(sub *subscriber) {
	defer f.drop(sub)
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				f.log.Debug("feed read error", "error", err)
			}
			return
		}
	}
}

func (f *Feed) writePump(sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		sub.conn.Close()
	}()

	for {
		select {
		case data, ok := <-sub.send:
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				sub.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := sub.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (f *Feed) drop(sub *subscriber) {
	f.mu.Lock()
	if _, ok := f.subs[sub]; ok {
		delete(f.subs, sub)
		close(sub.send)
	}
	f.mu.Unlock()
	sub.conn.Close()
}

// Subscribers returns the current subscriber count.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
