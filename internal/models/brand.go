package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record lifecycle statuses shared by brands and campaigns
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusAll      = "all"
)

// IndustryTypes lists the industries a brand can be registered under
var IndustryTypes = []string{"Technology", "Healthcare", "Finance", "Retail", "Education", "Other"}

// Brand represents an advertiser owning zero or more campaigns
type Brand struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BrandID         string             `bson:"brandId" json:"brandId"`
	BrandName       string             `bson:"brandName" json:"brandName"`
	LogoURL         *string            `bson:"logoURL" json:"logoURL"`
	IndustryType    string             `bson:"industryType" json:"industryType"`
	WebsiteURL      *string            `bson:"websiteURL" json:"websiteURL"`
	Email           string             `bson:"email" json:"email"`
	PhoneNumber     string             `bson:"phoneNumber" json:"phoneNumber"`
	BusinessAddress string             `bson:"businessAddress" json:"businessAddress"`
	GSTNumber       *string            `bson:"gstNumber" json:"gstNumber"`
	PointOfContact  []PointOfContact   `bson:"pointOfContact" json:"pointOfContact"`
	Status          string             `bson:"status" json:"status"`
	LastCampaignID  string             `bson:"lastCampaignId,omitempty" json:"lastCampaignId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// PointOfContact is a named individual associated with a brand
type PointOfContact struct {
	Name   string `bson:"name" json:"name" validate:"required"`
	Number string `bson:"number" json:"number" validate:"required,phone10"`
	Email  string `bson:"email" json:"email" validate:"required,looseemail"`
}

// BrandForm is the submitted Create-Brand form
type BrandForm struct {
	BrandName       string           `json:"brandName" validate:"required"`
	IndustryType    string           `json:"industryType" validate:"required,oneof=Technology Healthcare Finance Retail Education Other"`
	WebsiteURL      string           `json:"websiteURL" validate:"omitempty,httpurl"`
	Email           string           `json:"email" validate:"required,looseemail"`
	PhoneNumber     string           `json:"phoneNumber" validate:"required,phone10"`
	BusinessAddress string           `json:"businessAddress" validate:"required"`
	GSTNumber       string           `json:"gstNumber" validate:"omitempty,gstin"`
	PointOfContact  []PointOfContact `json:"pointOfContact" validate:"required,min=1,dive"`
}

// Normalize trims free-text input in place
func (f *BrandForm) Normalize() {
	f.BrandName = trim(f.BrandName)
	f.IndustryType = trim(f.IndustryType)
	f.WebsiteURL = trim(f.WebsiteURL)
	f.Email = trim(f.Email)
	f.PhoneNumber = trim(f.PhoneNumber)
	f.BusinessAddress = trim(f.BusinessAddress)
	f.GSTNumber = trim(f.GSTNumber)
	for i := range f.PointOfContact {
		f.PointOfContact[i].Name = trim(f.PointOfContact[i].Name)
		f.PointOfContact[i].Number = trim(f.PointOfContact[i].Number)
		f.PointOfContact[i].Email = trim(f.PointOfContact[i].Email)
	}
}

// BrandOption is a brand entry for selection lists
type BrandOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ToggleStatus returns the opposite lifecycle status
func ToggleStatus(status string) string {
	if status == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// optionalString returns nil for empty strings, matching the null fields of stored documents
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
