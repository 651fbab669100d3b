package mediahost

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MockHost keeps uploads in memory, for local runs without a media account
type MockHost struct {
	folder string

	mu      sync.Mutex
	objects map[string]int64
}

// NewMockHost creates a new MockHost
func NewMockHost(folder string) *MockHost {
	return &MockHost{folder: folder, objects: make(map[string]int64)}
}

// Upload drains r and records a fake asset
func (h *MockHost) Upload(ctx context.Context, resourceType, filename string, r io.Reader) (*Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return nil, err
	}

	format := strings.TrimPrefix(path.Ext(filename), ".")
	publicID := path.Join(h.folder, uuid.NewString())

	h.mu.Lock()
	h.objects[resourceType+":"+publicID] = n
	h.mu.Unlock()

	return &Asset{
		URL:          fmt.Sprintf("https://mock.media.local/%s/%s.%s", resourceType, publicID, format),
		PublicID:     publicID,
		Format:       format,
		ResourceType: resourceType,
	}, nil
}

// Destroy forgets an uploaded object
func (h *MockHost) Destroy(ctx context.Context, resourceType, publicID string) error {
	h.mu.Lock()
	delete(h.objects, resourceType+":"+publicID)
	h.mu.Unlock()
	return nil
}

// Len reports the number of stored objects
func (h *MockHost) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.objects)
}
