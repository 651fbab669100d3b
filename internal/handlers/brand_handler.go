package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// BrandHandler handles brand-related HTTP requests
type BrandHandler struct {
	brandService   BrandService
	maxUploadBytes int64
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brandService BrandService, maxUploadBytes int64) *BrandHandler {
	return &BrandHandler{brandService: brandService, maxUploadBytes: maxUploadBytes}
}

// CreateBrand handles POST /brands.
// Accepts a JSON body, or a multipart body with the form as JSON in
// "payload" and an optional "logo" file.
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	in := services.CreateBrandInput{Form: &models.BrandForm{}}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := multipartForm(c, h.maxUploadBytes)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := decodePayload(form.Value["payload"], in.Form); err != nil {
			respondError(c, err)
			return
		}
		switch logos := uploadFiles(form.File["logo"]); len(logos) {
		case 0:
		case 1:
			in.Logo = &logos[0]
		default:
			respondError(c, apperrors.NewValidationError("logo", "Only one file can be selected"))
			return
		}
		in.UploadID = uploadID(c, form)
	} else {
		if err := c.ShouldBindJSON(in.Form); err != nil {
			respondError(c, apperrors.NewValidationError("payload", "Invalid request body"))
			return
		}
		in.UploadID = uploadID(c, nil)
	}

	brand, err := h.brandService.CreateBrand(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Brand created successfully",
		"brandId": brand.BrandID,
		"brand":   brand,
	})
}

// GetBrands handles GET /brands?search=&status=
func (h *BrandHandler) GetBrands(c *gin.Context) {
	res, err := h.brandService.ListBrands(c.Request.Context(), c.Query("search"), c.DefaultQuery("status", models.StatusAll))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetBrandByID handles GET /brands/:id
func (h *BrandHandler) GetBrandByID(c *gin.Context) {
	brand, err := h.brandService.GetBrand(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

// ToggleStatus handles PATCH /brands/:id/status
func (h *BrandHandler) ToggleStatus(c *gin.Context) {
	status, err := h.brandService.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": status})
}

// DeleteBrand handles DELETE /brands/:id
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	if err := h.brandService.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}

// GetBrandOptions handles GET /brands/options
func (h *BrandHandler) GetBrandOptions(c *gin.Context) {
	options, err := h.brandService.Options(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// decodePayload reads the JSON form sent in a multipart "payload" field
func decodePayload(values []string, dst any) error {
	if len(values) == 0 {
		return apperrors.NewValidationError("payload", "Form data is required")
	}
	if err := json.Unmarshal([]byte(values[0]), dst); err != nil {
		return apperrors.NewValidationError("payload", "Invalid form data")
	}
	return nil
}
