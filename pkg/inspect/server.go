package inspect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/runtime"
	"github.com/loom-ui/loom/pkg/snapshot"
	"github.com/loom-ui/loom/pkg/vdom"
)

// Server serves the inspector API for one runtime.
type Server struct {
	rt    *runtime.Runtime
	feed  *Feed
	store snapshot.Store
	log   *slog.Logger
	gath  prometheus.Gatherer

	router   chi.Router
	upgrader websocket.Upgrader
}

// ServerOption configures an inspector server.
type ServerOption func(*Server)

// WithSnapshotStore enables the snapshot endpoints.
func WithSnapshotStore(store snapshot.Store) ServerOption {
	return func(s *Server) { s.store = store }
}

// WithLogger sets the server's logger.
func WithLogger(log *slog.Logger) ServerOption {
	return func(s *Server) { s.log = log }
}

// WithGatherer sets the metrics gatherer exposed at /metrics.
func WithGatherer(g prometheus.Gatherer) ServerOption {
	return func(s *Server) { s.gath = g }
}

// WithFeed sets the mutation feed served at /live. Without one, /live
// serves a feed nothing publishes to.
func WithFeed(feed *Feed) ServerOption {
	return func(s *Server) { s.feed = feed }
}

// NewServer builds the inspector for rt.
func NewServer(rt *runtime.Runtime, opts ...ServerOption) *Server {
	s := &Server{
		rt:   rt,
		log:  slog.Default(),
		gath: prometheus.DefaultGatherer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.feed == nil {
		s.feed = NewFeed(s.log)
	}
	s.router = s.routes()
	return s
}

// Feed returns the mutation feed, for wiring as a runtime observer.
func (s *Server) Feed() *Feed { return s.feed }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/tree", s.handleTree)
	r.Get("/html", s.handleHTML)
	r.Get("/live", s.handleLive)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gath, promhttp.HandlerOpts{}))

	if s.store != nil {
		r.Route("/snapshots", func(r chi.Router) {
			r.Post("/", s.handleCapture)
			r.Get("/", s.handleList)
			r.Get("/{id}", s.handleLoad)
			r.Delete("/{id}", s.handleDelete)
		})
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves the inspector on addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("inspector listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// treeNode is the JSON shape of one instance.
type treeNode struct {
	Kind     string      `json:"kind"`
	Tag      string      `json:"tag,omitempty"`
	Text     string      `json:"text,omitempty"`
	Key      string      `json:"key,omitempty"`
	Path     string      `json:"path"`
	Children []*treeNode `json:"children,omitempty"`
}

func toTreeNode(inst *runtime.Instance) *treeNode {
	if inst == nil {
		return nil
	}
	n := &treeNode{
		Kind: inst.Kind.String(),
		Key:  inst.Key,
		Path: inst.Path,
	}
	if inst.Node != nil {
		switch inst.Node.Kind {
		case vdom.KindElement:
			n.Tag = inst.Node.Tag
		case vdom.KindText:
			n.Text = inst.Node.Text
		}
	}
	for _, c := range inst.Children {
		if child := toTreeNode(c); child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

func (s *Server) handleTree(w http.ResponseWriter, _ *http.Request) {
	// Handlers run on HTTP goroutines; tree walks take the render lock.
	var root *treeNode
	s.rt.Read(func() { root = toTreeNode(s.rt.Tree()) })
	writeJSON(w, http.StatusOK, root)
}

func (s *Server) handleHTML(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	s.rt.Read(func() {
		for _, child := range s.rt.Container().Children() {
			switch n := child.(type) {
			case *dom.Element:
				buf.WriteString(n.OuterHTML())
			case *dom.Text:
				buf.WriteString(n.Data())
			}
		}
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "error", err)
		return
	}
	s.feed.Subscribe(conn)
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	var snap *snapshot.Snapshot
	s.rt.Read(func() {
		snap = snapshot.Capture(s.rt.Container(), r.URL.Query().Get("label"))
	})
	if err := s.store.Save(r.Context(), snap); err != nil {
		s.log.Error("snapshot save failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	snaps, err := s.store.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if snaps == nil {
		snaps = []*snapshot.Snapshot{}
	}
	writeJSON(w, http.StatusOK, snaps)
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, snapshot.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "snapshot not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
