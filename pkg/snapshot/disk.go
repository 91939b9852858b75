package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/loom-ui/loom/internal/errors"
)

// DiskStore persists snapshots as JSON files on the local filesystem,
// one file per snapshot ID.
type DiskStore struct {
	dir string

	mu sync.RWMutex
}

// NewDiskStore creates a DiskStore rooted at dir, creating the
// directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E061").Wrap(err).WithDetailf("creating %s", dir)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes the snapshot to disk.
func (s *DiskStore) Save(_ context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path(snap.ID), data, 0644); err != nil {
		return errors.New("E061").Wrap(err).WithDetailf("writing %s", snap.ID)
	}
	return nil
}

// Load reads one snapshot from disk.
func (s *DiskStore) Load(_ context.Context, id string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.New("E061").Wrap(err).WithDetailf("reading %s", id)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.New("E061").Wrap(err).WithDetailf("decoding %s", id)
	}
	return &snap, nil
}

// List scans the directory and returns every stored snapshot, newest
// first.
func (s *DiskStore) List(ctx context.Context) ([]*Snapshot, error) {
	s.mu.RLock()
	entries, err := os.ReadDir(s.dir)
	s.mu.RUnlock()
	if err != nil {
		return nil, errors.New("E061").Wrap(err).WithDetailf("listing %s", s.dir)
	}

	var out []*Snapshot
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		snap, err := s.Load(ctx, strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue // partial write or foreign file
		}
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes one snapshot file. Missing files are a no-op.
func (s *DiskStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return errors.New("E061").Wrap(err).WithDetailf("removing %s", id)
	}
	return nil
}
