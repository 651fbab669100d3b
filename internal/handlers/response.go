package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// respondError writes the single error body every handler uses.
// Validation errors also carry the per-field messages.
func respondError(c *gin.Context, err error) {
	status, message := apperrors.HTTPStatus(err)
	body := gin.H{"error": message}

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		body["fields"] = verr.Fields
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

// uploadFiles adapts multipart parts to files the media step can open
func uploadFiles(headers []*multipart.FileHeader) []models.UploadFile {
	files := make([]models.UploadFile, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		files = append(files, models.UploadFile{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return files
}

// multipartForm parses a multipart body capped at maxBytes
func multipartForm(c *gin.Context, maxBytes int64) (*multipart.Form, error) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperrors.NewValidationError("files", "Selected files are too large, please choose the files again")
		}
		return nil, apperrors.NewValidationError("payload", "Invalid multipart form")
	}
	return form, nil
}

// uploadID names the progress channel of a create request
func uploadID(c *gin.Context, form *multipart.Form) string {
	if id := c.GetHeader("X-Upload-ID"); id != "" {
		return id
	}
	if form != nil && len(form.Value["uploadId"]) > 0 {
		return form.Value["uploadId"][0]
	}
	return ""
}
