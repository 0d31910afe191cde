package media

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/minbarhq/core/internal/config"
)

func newTestRouter(t *testing.T, cfg *config.AppConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(cfg).RegisterRoutes(r.Group("/api"))
	return r
}

func multipartFile(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUpload_MissingFileIs400(t *testing.T) {
	r := newTestRouter(t, &config.AppConfig{StaticDir: t.TempDir()})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("other", "value"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["message"] == nil {
		t.Fatalf("expected error body, got %s", rec.Body.String())
	}
}

func TestUpload_LocalFallbackStoresAndAnswersURL(t *testing.T) {
	dir := t.TempDir()
	r := newTestRouter(t, &config.AppConfig{StaticDir: dir})

	buf, contentType := multipartFile(t, "file", "banner.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	url := body["url"]
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected url %q", url)
	}

	stored := filepath.Join(dir, "uploads", strings.TrimPrefix(url, "/uploads/"))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestUpload_LocalFallbackIgnoresFormatAllowList(t *testing.T) {
	r := newTestRouter(t, &config.AppConfig{StaticDir: t.TempDir()})

	buf, contentType := multipartFile(t, "file", "notes.pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for local pdf upload, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpload_RemoteModeRejectsDisallowedFormat(t *testing.T) {
	cfg := &config.AppConfig{
		StaticDir: t.TempDir(),
		Media: config.S3Options{
			Bucket:          "media",
			Region:          "eu-central-1",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
		},
	}
	r := newTestRouter(t, cfg)

	buf, contentType := multipartFile(t, "file", "notes.pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for disallowed format, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPublicURL_PrefersCustomDomain(t *testing.T) {
	u, err := newS3Uploader(config.S3Options{
		Bucket:          "media",
		Region:          "eu-central-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		CustomDomain:    "https://cdn.example.org",
	})
	if err != nil {
		t.Fatalf("new uploader: %v", err)
	}
	if got := u.publicURL("uploads/a.png"); got != "https://cdn.example.org/uploads/a.png" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestPublicURL_DefaultsToBucketEndpoint(t *testing.T) {
	u, err := newS3Uploader(config.S3Options{
		Bucket:          "media",
		Region:          "eu-central-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	})
	if err != nil {
		t.Fatalf("new uploader: %v", err)
	}
	if got := u.publicURL("uploads/a.png"); got != "https://media.s3.eu-central-1.amazonaws.com/uploads/a.png" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestNewS3Uploader_RequiresCredentials(t *testing.T) {
	if _, err := newS3Uploader(config.S3Options{Bucket: "media"}); err == nil {
		t.Fatalf("expected error for incomplete config")
	}
}
