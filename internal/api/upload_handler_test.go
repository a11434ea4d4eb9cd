package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeMedia struct {
	uploaded map[string][]byte
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{uploaded: map[string][]byte{}}
}

func (m *fakeMedia) UploadImage(_ context.Context, objectKey string, reader io.Reader, _ int64, _ string) (string, error) {
	content, _ := io.ReadAll(reader)
	m.uploaded[objectKey] = content
	return "https://media.example.com/portfolio-bucket/" + objectKey, nil
}

func newMultipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func newUploadRouter(media MediaUploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUploadHandler(media, slog.Default(), "")
	router := gin.New()
	router.POST("/uploads/image", handler.UploadImage)
	return router
}

func TestUploadImage_ReturnsPublicURL(t *testing.T) {
	media := newFakeMedia()
	router := newUploadRouter(media)

	body, contentType := newMultipartUpload(t, "avatar.png", []byte("\x89PNG\r\n\x1a\n"))
	req := httptest.NewRequest(http.MethodPost, "/uploads/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		URL string `json:"url"`
	}
	decodeBody(t, rec, &resp)
	if !strings.HasPrefix(resp.URL, "https://media.example.com/") {
		t.Errorf("unexpected url %q", resp.URL)
	}
	if !strings.HasSuffix(resp.URL, ".png") {
		t.Errorf("object key should keep the extension, got %q", resp.URL)
	}
	if len(media.uploaded) != 1 {
		t.Errorf("expected 1 uploaded object, got %d", len(media.uploaded))
	}
}

func TestUploadImage_MissingFile(t *testing.T) {
	router := newUploadRouter(newFakeMedia())

	req := httptest.NewRequest(http.MethodPost, "/uploads/image", &bytes.Buffer{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUploadImage_RejectsNonImageExtension(t *testing.T) {
	media := newFakeMedia()
	router := newUploadRouter(media)

	body, contentType := newMultipartUpload(t, "payload.exe", []byte("MZ"))
	req := httptest.NewRequest(http.MethodPost, "/uploads/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if len(media.uploaded) != 0 {
		t.Errorf("nothing should be uploaded, got %d objects", len(media.uploaded))
	}
}
