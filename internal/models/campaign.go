package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand link intent states
const (
	LinkPending = "pending"
	LinkLinked  = "linked"
)

// Targeting enums
var (
	AgeGroups = []string{"18-24", "25-34", "35-44", "45-54", "55+"}
	Genders   = []string{"Male", "Female", "All"}
	Cities    = []string{
		"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Ahmedabad", "Chennai", "Kolkata",
		"Pune", "Jaipur", "Surat", "Lucknow", "Kanpur", "Nagpur", "Indore", "Thane",
		"Bhopal", "Visakhapatnam", "Pimpri-Chinchwad", "Patna", "Vadodara", "Ghaziabad",
		"Ludhiana", "Agra", "Nashik", "Faridabad", "Meerut", "Rajkot", "Kalyan-Dombivali",
	}
)

// Campaign represents a time-bounded marketing initiative owned by one brand
type Campaign struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CampaignName            string             `bson:"campaignName" json:"campaignName"`
	BrandID                 string             `bson:"brandId" json:"brandId"`
	TargetAgeGroup          string             `bson:"targetAgeGroup" json:"targetAgeGroup"`
	Gender                  string             `bson:"gender" json:"gender"`
	TargetLocation          string             `bson:"targetLocation" json:"targetLocation"`
	StartDate               string             `bson:"startDate" json:"startDate"`
	EndDate                 string             `bson:"endDate" json:"endDate"`
	RedirectLink            *string            `bson:"redirectLink" json:"redirectLink"`
	CreativeImages          []MediaRef         `bson:"creativeImages" json:"creativeImages"`
	AdvertisingVideo        *MediaRef          `bson:"advertisingVideo" json:"advertisingVideo"`
	InteractiveQuiz         []QuizQuestion     `bson:"interactiveQuiz" json:"interactiveQuiz"`
	LeadGenerationQuestions []string           `bson:"leadGenerationQuestions" json:"leadGenerationQuestions"`
	Status                  string             `bson:"status" json:"status"`
	BrandLink               BrandLink          `bson:"brandLink" json:"brandLink"`
	CreatedAt               time.Time          `bson:"createdAt" json:"createdAt"`
}

// QuizQuestion is a persisted quiz question
type QuizQuestion struct {
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correctAnswer" json:"correctAnswer"`
}

// BrandLink is the pending cross-reference from a campaign to its brand.
// It is stored with the campaign and settled by the link reconciler.
type BrandLink struct {
	Status    string     `bson:"status" json:"status"`
	Attempts  int        `bson:"attempts" json:"attempts"`
	LastError string     `bson:"lastError,omitempty" json:"lastError,omitempty"`
	LinkedAt  *time.Time `bson:"linkedAt,omitempty" json:"linkedAt,omitempty"`
}

// CampaignForm is the submitted Create-Campaign form
type CampaignForm struct {
	CampaignName   string         `json:"campaignName" validate:"required,min=3"`
	BrandID        string         `json:"brandId" validate:"required"`
	TargetAgeGroup string         `json:"targetAgeGroup" validate:"required,oneof=18-24 25-34 35-44 45-54 55+"`
	Gender         string         `json:"gender" validate:"required,oneof=Male Female All"`
	TargetLocation string         `json:"targetLocation" validate:"required,city"`
	StartDate      string         `json:"startDate" validate:"required,isodate,notpast"`
	EndDate        string         `json:"endDate" validate:"required,isodate"`
	RedirectLink   string         `json:"redirectLink" validate:"omitempty,redirecturl"`
	QuizQuestions  []QuizInput    `json:"quizQuestions"`
	LeadQuestions  []LeadQuestion `json:"leadQuestions"`
}

// QuizInput is a quiz question as entered; CorrectAnswer is the selected option index as text
type QuizInput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// LeadQuestion is a free-text lead generation question as entered
type LeadQuestion struct {
	Question string `json:"question"`
}

// Normalize trims free-text input in place
func (f *CampaignForm) Normalize() {
	f.CampaignName = trim(f.CampaignName)
	f.BrandID = trim(f.BrandID)
	f.StartDate = trim(f.StartDate)
	f.EndDate = trim(f.EndDate)
	f.RedirectLink = trim(f.RedirectLink)
}

// NewBrand builds the brand document committed for a validated form
func NewBrand(id primitive.ObjectID, form *BrandForm, logoURL string, now time.Time) *Brand {
	pocs := make([]PointOfContact, len(form.PointOfContact))
	copy(pocs, form.PointOfContact)
	return &Brand{
		ID:              id,
		BrandID:         id.Hex(),
		BrandName:       form.BrandName,
		LogoURL:         optionalString(logoURL),
		IndustryType:    form.IndustryType,
		WebsiteURL:      optionalString(form.WebsiteURL),
		Email:           form.Email,
		PhoneNumber:     form.PhoneNumber,
		BusinessAddress: form.BusinessAddress,
		GSTNumber:       optionalString(form.GSTNumber),
		PointOfContact:  pocs,
		Status:          StatusActive,
		CreatedAt:       now,
	}
}

// NewCampaign builds the campaign document committed for a validated form
func NewCampaign(form *CampaignForm, quiz []QuizQuestion, leads []string, images []MediaRef, video *MediaRef, now time.Time) *Campaign {
	if images == nil {
		images = []MediaRef{}
	}
	return &Campaign{
		CampaignName:            form.CampaignName,
		BrandID:                 form.BrandID,
		TargetAgeGroup:          form.TargetAgeGroup,
		Gender:                  form.Gender,
		TargetLocation:          form.TargetLocation,
		StartDate:               form.StartDate,
		EndDate:                 form.EndDate,
		RedirectLink:            optionalString(form.RedirectLink),
		CreativeImages:          images,
		AdvertisingVideo:        video,
		InteractiveQuiz:         quiz,
		LeadGenerationQuestions: leads,
		Status:                  StatusActive,
		BrandLink:               BrandLink{Status: LinkPending},
		CreatedAt:               now,
	}
}

func trim(s string) string { return strings.TrimSpace(s) }
