package mediahost

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:      baseURL,
		CloudName:    "demo",
		UploadPreset: "unsigned_campaigns",
		APIKey:       "key",
		APISecret:    "secret",
		Folder:       "campaigns",
	}
}

func newTestHost(t *testing.T, cfg Config) *CloudinaryHost {
	t.Helper()
	host, err := NewCloudinaryHost(cfg)
	if err != nil {
		t.Fatalf("NewCloudinaryHost() error = %v", err)
	}
	return host
}

func TestCloudinaryUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1_1/demo/image/upload" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.FormValue("upload_preset"); got != "unsigned_campaigns" {
			t.Errorf("upload_preset = %q", got)
		}
		if got := r.FormValue("folder"); got != "campaigns" {
			t.Errorf("folder = %q", got)
		}
		if got := r.FormValue("tags"); got != "staged" {
			t.Errorf("tags = %q", got)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile() error = %v", err)
			return
		}
		defer file.Close()
		if data, _ := io.ReadAll(file); string(data) != "png-bytes" {
			t.Errorf("unexpected file contents %q", data)
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"secure_url":"https://res.example/demo/image/upload/campaigns/abc.png","public_id":"campaigns/abc","format":"png","resource_type":"image"}`)
	}))
	defer srv.Close()

	host := newTestHost(t, testConfig(srv.URL))
	asset, err := host.Upload(context.Background(), "image", "hero.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if asset.PublicID != "campaigns/abc" || asset.Format != "png" || !strings.HasPrefix(asset.URL, "https://") {
		t.Errorf("unexpected asset %+v", asset)
	}
}

func TestCloudinaryUploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"message":"Upload preset not found"}}`)
	}))
	defer srv.Close()

	host := newTestHost(t, testConfig(srv.URL))
	if _, err := host.Upload(context.Background(), "video", "ad.mp4", strings.NewReader("mp4")); err == nil {
		t.Fatal("expected error for rejected upload")
	}
}

func TestCloudinaryDestroy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1_1/demo/video/destroy" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.FormValue("public_id"); got != "campaigns/v1" {
			t.Errorf("public_id = %q", got)
		}
		if got := r.FormValue("api_key"); got != "key" {
			t.Errorf("api_key = %q", got)
		}
		if r.FormValue("signature") == "" || r.FormValue("timestamp") == "" {
			t.Error("expected a signed request")
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"result":"not found"}`)
	}))
	defer srv.Close()

	host := newTestHost(t, testConfig(srv.URL))
	if err := host.Destroy(context.Background(), "video", "campaigns/v1"); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
}

func TestCloudinaryDestroyUnexpectedResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"result":"error"}`)
	}))
	defer srv.Close()

	host := newTestHost(t, testConfig(srv.URL))
	if err := host.Destroy(context.Background(), "image", "campaigns/x"); err == nil {
		t.Fatal("expected error for unexpected destroy result")
	}
}

func TestDestroyRequiresCredentials(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0")
	cfg.APISecret = ""
	if err := newTestHost(t, cfg).Destroy(context.Background(), "image", "x"); err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestMockHost(t *testing.T) {
	host, err := New(Config{MockAPI: true, Folder: "campaigns"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	mock, ok := host.(*MockHost)
	if !ok {
		t.Fatalf("New() with MockAPI = %T, want *MockHost", host)
	}

	asset, err := mock.Upload(context.Background(), "image", "logo.jpg", strings.NewReader("jpg"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if asset.Format != "jpg" || !strings.HasPrefix(asset.PublicID, "campaigns/") || mock.Len() != 1 {
		t.Errorf("unexpected asset %+v (len %d)", asset, mock.Len())
	}
	if err := mock.Destroy(context.Background(), "image", asset.PublicID); err != nil || mock.Len() != 0 {
		t.Errorf("Destroy() err = %v, len = %d", err, mock.Len())
	}
}
