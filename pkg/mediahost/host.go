// Package mediahost talks to the external media hosting service.
package mediahost

import (
	"context"
	"io"
	"time"
)

// Asset is the provider descriptor of an uploaded object
type Asset struct {
	URL          string
	PublicID     string
	Format       string
	ResourceType string
}

// Host represents a media hosting interface
type Host interface {
	// Upload stores one file. The asset is tagged as staged until committed.
	Upload(ctx context.Context, resourceType, filename string, r io.Reader) (*Asset, error)
	// Destroy removes an uploaded object. Missing objects are not an error.
	Destroy(ctx context.Context, resourceType, publicID string) error
}

// Config describes a media host account
type Config struct {
	BaseURL      string
	CloudName    string
	UploadPreset string
	APIKey       string
	APISecret    string
	Folder       string
	MockAPI      bool
	Timeout      time.Duration
}

// New returns the host selected by cfg
func New(cfg Config) (Host, error) {
	if cfg.MockAPI {
		return NewMockHost(cfg.Folder), nil
	}
	host, err := NewCloudinaryHost(cfg)
	if err != nil {
		return nil, err
	}
	return host, nil
}
