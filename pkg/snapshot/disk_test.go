package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/loom-ui/loom/pkg/dom"
)

func TestCaptureIsContentAddressed(t *testing.T) {
	container := dom.NewElement("div")
	p := dom.NewElement("p")
	p.AppendChild(dom.NewText("hi"))
	container.AppendChild(p)

	a := Capture(container, "one")
	b := Capture(container, "two")

	if a.HTML != "<p>hi</p>" {
		t.Errorf("HTML = %q", a.HTML)
	}
	if a.ID != b.ID {
		t.Error("identical trees produced different IDs")
	}
	if a.Size != int64(len(a.HTML)) {
		t.Errorf("Size = %d, want %d", a.Size, len(a.HTML))
	}

	p.AppendChild(dom.NewText("!"))
	if Capture(container, "").ID == a.ID {
		t.Error("different trees share an ID")
	}
}

func TestDiskStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	snap := &Snapshot{
		ID:        "abc123",
		Label:     "before",
		HTML:      "<p>x</p>",
		Size:      8,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load(ctx, snap.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != snap.ID || got.Label != snap.Label || got.HTML != snap.HTML {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(snap.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, snap.CreatedAt)
	}

	if err := store.Delete(ctx, snap.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(ctx, snap.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after delete = %v, want ErrNotFound", err)
	}
	// Deleting a missing snapshot is a no-op.
	if err := store.Delete(ctx, snap.ID); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestDiskStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"old", "mid", "new"} {
		snap := &Snapshot{
			ID:        id,
			HTML:      "<i></i>",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Save(ctx, snap); err != nil {
			t.Fatal(err)
		}
	}

	snaps, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 3 {
		t.Fatalf("len = %d", len(snaps))
	}
	for i, want := range []string{"new", "mid", "old"} {
		if snaps[i].ID != want {
			t.Errorf("snaps[%d] = %s, want %s", i, snaps[i].ID, want)
		}
	}
}

func TestDiskStoreLoadMissing(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
