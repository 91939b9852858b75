package snapshot

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/loom-ui/loom/pkg/dom"
)

// Snapshot is one captured host tree.
type Snapshot struct {
	ID        string    `json:"id"`
	Label     string    `json:"label,omitempty"`
	HTML      string    `json:"html"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Capture serializes the container's children and returns a snapshot
// whose ID is the hash of the markup. Two captures of identical trees
// share an ID.
func Capture(container *dom.Element, label string) *Snapshot {
	html := ""
	for _, child := range container.Children() {
		switch n := child.(type) {
		case *dom.Element:
			html += n.OuterHTML()
		case *dom.Text:
			html += n.Data()
		}
	}
	return &Snapshot{
		ID:        ContentID(html),
		Label:     label,
		HTML:      html,
		Size:      int64(len(html)),
		CreatedAt: time.Now().UTC(),
	}
}

// ContentID returns the content address for a serialized tree.
func ContentID(html string) string {
	return strconv.FormatUint(xxhash.Sum64String(html), 16)
}
