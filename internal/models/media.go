package models

import (
	"io"
	"time"
)

// Media resource types accepted by the media host
const (
	ResourceImage = "image"
	ResourceVideo = "video"
)

// Upload stages reported in progress events
const (
	StageLogo   = "logo"
	StageImages = "images"
	StageVideo  = "video"
)

// MediaRef is the provider descriptor embedded in committed documents
type MediaRef struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId" json:"publicId"`
	Format   string `bson:"format" json:"format"`
}

// UploadFile is a selected file waiting to be uploaded
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// UploadProgress is recomputed after each file of a sequential upload
type UploadProgress struct {
	UploadID   string `json:"uploadId"`
	Stage      string `json:"stage"`
	Current    int    `json:"current"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	File       string `json:"file,omitempty"`
}

// StagedAsset is an uploaded object not yet referenced by a committed document
type StagedAsset struct {
	ResourceType string
	PublicID     string
	StagedAt     time.Time
}
