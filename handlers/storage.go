package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"turfbook/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles image upload and delete endpoints.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted buckets for file uploads.
var allowedBuckets = map[string]bool{
	"turfs":       true,
	"screenshots": true,
}

// UploadFileHandler accepts a multipart image and stores it, returning
// the opaque reference and a public URL.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'turfs' and 'screenshots'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c.Request.Context(), publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "File uploaded successfully",
		"ref":         publicID,
		"downloadUrl": downloadURL,
	})
}

// DeleteFileHandler removes a previously uploaded image by reference.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	publicID := c.Query("ref")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ref is required"})
		return
	}

	if err := h.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
