package handlers

import (
	"net/http"

	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler lets clients follow the progress of a create request
type UploadHandler struct {
	progress repositories.ProgressPublisher
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(progress repositories.ProgressPublisher) *UploadHandler {
	return &UploadHandler{progress: progress}
}

// NewUpload handles POST /uploads. The returned id is sent back as the
// X-Upload-ID header of the create request.
func (h *UploadHandler) NewUpload(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"uploadId": uuid.NewString()})
}

// StreamProgress handles GET /uploads/:id/progress as server-sent events.
// The stream ends when the client goes away.
func (h *UploadHandler) StreamProgress(c *gin.Context) {
	events, err := h.progress.Subscribe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case p, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent("progress", p)
			c.Writer.Flush()
		}
	}
}
