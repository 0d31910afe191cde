// Package media implements POST /api/upload: a single multipart file is
// stored either in the configured bucket or under the local static dir, and
// the response carries the resolvable URL.
package media

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minbarhq/core/internal/config"
	"github.com/minbarhq/core/internal/pkg/response"
)

// Remote storage accepts the image formats plus mp4. The local fallback
// stores anything.
var allowedRemoteExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
}

type Handler struct {
	cfg *config.AppConfig
}

func NewHandler(cfg *config.AppConfig) *Handler { return &Handler{cfg: cfg} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "no file uploaded")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	name := uuid.New().String() + ext

	if h.cfg.RemoteMedia() {
		if !allowedRemoteExt[ext] {
			response.BadRequest(c, fmt.Sprintf("file format %q is not allowed", ext))
			return
		}
		uploader, err := newS3Uploader(h.cfg.Media)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			response.InternalError(c, err)
			return
		}
		defer file.Close()

		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = mime.TypeByExtension(ext)
		}
		url, err := uploader.Upload(c.Request.Context(), "uploads/"+name, file, contentType)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"url": url})
		return
	}

	dir := filepath.Join(h.cfg.StaticDir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		response.InternalError(c, err)
		return
	}
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(dir, name)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"url": "/uploads/" + name})
}
