package mediahost

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// stagedTag marks uploads that no committed document references yet
const stagedTag = "staged"

// CloudinaryHost uploads with an unsigned preset and deletes with signed calls
type CloudinaryHost struct {
	cfg Config
	cld *cloudinary.Cloudinary
}

// NewCloudinaryHost creates a new CloudinaryHost
func NewCloudinaryHost(cfg Config) (*CloudinaryHost, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	if cfg.BaseURL != "" {
		cld.Upload.Config.API.UploadPrefix = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Timeout > 0 {
		cld.Upload.Config.API.Timeout = int64(cfg.Timeout.Seconds())
		cld.Upload.Config.API.UploadTimeout = int64(cfg.Timeout.Seconds())
	}
	return &CloudinaryHost{cfg: cfg, cld: cld}, nil
}

// Upload sends one file to the upload endpoint of its resource type
func (h *CloudinaryHost) Upload(ctx context.Context, resourceType, filename string, r io.Reader) (*Asset, error) {
	params := uploader.UploadParams{
		ResourceType: resourceType,
		Folder:       h.cfg.Folder,
		Tags:         api.CldAPIArray{stagedTag},
	}

	res, err := h.cld.Upload.UnsignedUpload(ctx, r, h.cfg.UploadPreset, params)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", filename, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("media host rejected %s: %s", filename, res.Error.Message)
	}
	if res.SecureURL == "" || res.PublicID == "" {
		return nil, fmt.Errorf("upload response missing url or public id")
	}

	kind := res.ResourceType
	if kind == "" {
		kind = resourceType
	}
	return &Asset{
		URL:          res.SecureURL,
		PublicID:     res.PublicID,
		Format:       res.Format,
		ResourceType: kind,
	}, nil
}

// Destroy removes an uploaded object with a signed request
func (h *CloudinaryHost) Destroy(ctx context.Context, resourceType, publicID string) error {
	if h.cfg.APIKey == "" || h.cfg.APISecret == "" {
		return fmt.Errorf("media host api credentials are not configured")
	}

	res, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("destroy %s: %s", publicID, res.Error.Message)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("destroy %s: unexpected result %q", publicID, res.Result)
	}
	return nil
}
