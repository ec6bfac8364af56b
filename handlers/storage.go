package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"atelier/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// mediaFolder is where admin uploads land on the CDN.
const mediaFolder = "atelier/media"

// StorageHandler handles admin media uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadMediaHandler accepts a multipart file and returns its hosted URL.
func (h *StorageHandler) UploadMediaHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file not provided"})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		logger.Error("failed to save upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save file"})
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, mediaFolder)
	if err != nil {
		logger.Error("failed to upload media", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to upload file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "url": url})
}
