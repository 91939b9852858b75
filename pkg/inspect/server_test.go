package inspect

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/runtime"
	"github.com/loom-ui/loom/pkg/snapshot"
	"github.com/loom-ui/loom/pkg/vdom"
)

func newTestServer(t *testing.T, opts ...ServerOption) (*Server, *runtime.Runtime) {
	t.Helper()
	container := dom.NewElement("div")
	rt, err := runtime.Attach(vdom.Ul(
		vdom.Li(vdom.Key("a"), "a"),
		vdom.Li(vdom.Key("b"), "b"),
	), container)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(rt.Unmount)
	return NewServer(rt, opts...), rt
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestTreeEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/tree")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var root treeNode
	if err := json.NewDecoder(rec.Body).Decode(&root); err != nil {
		t.Fatal(err)
	}
	if root.Kind != "Host" || root.Tag != "ul" || root.Path != runtime.RootPath {
		t.Errorf("root = %+v", root)
	}
	if len(root.Children) != 2 || root.Children[0].Key != "a" {
		t.Errorf("children = %+v", root.Children)
	}
}

func TestHTMLEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/html")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Body.String(); got != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("body = %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()

	container := dom.NewElement("div")
	rt, err := runtime.Attach(vdom.Div("x"), container, runtime.WithMetrics(reg))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(rt.Unmount)

	s := NewServer(rt, WithGatherer(reg))
	rec := get(t, s, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "loom_runtime_renders_total") {
		t.Error("renders counter missing from exposition")
	}
}

func TestSnapshotEndpoints(t *testing.T) {
	store, err := snapshot.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s, _ := newTestServer(t, WithSnapshotStore(store))

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/snapshots?label=first", nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("capture status = %d", rec.Code)
	}
	var snap snapshot.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.Label != "first" || snap.HTML == "" {
		t.Errorf("snapshot = %+v", snap)
	}

	rec = get(t, s, "/snapshots/"+snap.ID)
	if rec.Code != http.StatusOK {
		t.Errorf("load status = %d", rec.Code)
	}

	rec = get(t, s, "/snapshots/doesnotexist")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing snapshot status = %d", rec.Code)
	}

	rec = get(t, s, "/snapshots")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var snaps []*snapshot.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snaps); err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 1 {
		t.Errorf("list len = %d", len(snaps))
	}

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/snapshots/"+snap.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}
}

func TestSnapshotEndpointsDisabledWithoutStore(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/snapshots")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when no store configured", rec.Code)
	}
}

func TestLiveFeedStreamsMutations(t *testing.T) {
	feed := NewFeed(nil)

	container := dom.NewElement("div")
	rt, err := runtime.Attach(vdom.P("a"), container, runtime.WithObserver(feed.Observer()))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(rt.Unmount)

	s := NewServer(rt, WithFeed(feed))
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	// Subscription registration races the first publish; wait for it.
	deadline := time.Now().Add(2 * time.Second)
	for feed.Subscribers() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := rt.Render(vdom.P("b")); err != nil {
		t.Fatal(err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]string
	if err := json.Unmarshal(msg, &m); err != nil {
		t.Fatal(err)
	}
	if m["op"] != string(runtime.OpSetText) {
		t.Errorf("op = %q, want set-text", m["op"])
	}
}
