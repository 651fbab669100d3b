package handlers

import (
	"net/http"
	"strings"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// CampaignHandler handles campaign-related HTTP requests
type CampaignHandler struct {
	campaignService CampaignService
	maxUploadBytes  int64
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService CampaignService, maxUploadBytes int64) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, maxUploadBytes: maxUploadBytes}
}

// CreateCampaign handles POST /campaigns.
// The form travels as JSON in "payload"; files in "images" and "video".
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		respondError(c, apperrors.NewValidationError("payload", "Campaigns must be submitted as multipart/form-data"))
		return
	}

	form, err := multipartForm(c, h.maxUploadBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	in := services.CreateCampaignInput{
		Form:     &models.CampaignForm{},
		Images:   uploadFiles(form.File["images"]),
		Video:    uploadFiles(form.File["video"]),
		UploadID: uploadID(c, form),
	}
	if err := decodePayload(form.Value["payload"], in.Form); err != nil {
		respondError(c, err)
		return
	}

	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Campaign created successfully",
		"campaign": campaign,
	})
}

// GetCampaigns handles GET /campaigns?search=&status=
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	res, err := h.campaignService.ListCampaigns(c.Request.Context(), c.Query("search"), c.DefaultQuery("status", models.StatusAll))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetCampaignByID handles GET /campaigns/:id
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// ToggleStatus handles PATCH /campaigns/:id/status
func (h *CampaignHandler) ToggleStatus(c *gin.Context) {
	status, err := h.campaignService.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": status})
}

// DeleteCampaign handles DELETE /campaigns/:id
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	if err := h.campaignService.DeleteCampaign(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully"})
}
