package api

import (
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MediaUploader stores an image on the external media host and returns its
// public URL.
type MediaUploader interface {
	UploadImage(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
}

// UploadHandler proxies admin image uploads to the media host. The API keeps
// no record of uploads; only the returned URL matters.
type UploadHandler struct {
	Media     MediaUploader
	Logger    *slog.Logger
	ClamdAddr string
}

func NewUploadHandler(media MediaUploader, logger *slog.Logger, clamdAddr string) *UploadHandler {
	return &UploadHandler{
		Media:     media,
		Logger:    logger,
		ClamdAddr: clamdAddr,
	}
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// UploadImage accepts a single multipart file, optionally scans it with
// clamd, forwards it to the media host, and responds with the public URL.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "File is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		BadRequest(c, "unsupported file type")
		return
	}

	if h.ClamdAddr != "" {
		infected, err := h.scanFile(file)
		if err != nil {
			h.Logger.Error("scan upload", slog.String("error", err.Error()))
			Internal(c, "failed to scan file")
			return
		}
		if infected {
			BadRequest(c, "malicious file detected")
			return
		}
	}

	reader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer reader.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := "portfolio/" + uuid.NewString() + ext
	url, err := h.Media.UploadImage(c.Request.Context(), objectKey, reader, file.Size, contentType)
	if err != nil {
		h.Logger.Error("upload image", slog.String("error", err.Error()))
		Internal(c, "failed to upload file")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *UploadHandler) scanFile(file *multipart.FileHeader) (bool, error) {
	reader, err := file.Open()
	if err != nil {
		return false, err
	}
	defer reader.Close()

	abortChan := make(chan bool)
	defer close(abortChan)

	scanChan, err := clamd.NewClamd(h.ClamdAddr).ScanStream(reader, abortChan)
	if err != nil {
		return false, err
	}

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return true, nil
		}
	}
	return false, nil
}
