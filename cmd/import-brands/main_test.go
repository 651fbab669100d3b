package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/services"
	"github.com/ArowuTest/brandhub-admin-backend/internal/utils"
	"go.uber.org/zap"
)

type scriptedCreator struct {
	errs map[string]error
	seen []string
}

func (c *scriptedCreator) CreateBrand(ctx context.Context, in services.CreateBrandInput) (*models.Brand, error) {
	c.seen = append(c.seen, in.Form.Email)
	if err := c.errs[in.Form.Email]; err != nil {
		return nil, err
	}
	return &models.Brand{Email: in.Form.Email}, nil
}

func TestImportBrands(t *testing.T) {
	csvData := strings.Join([]string{
		"Brand Name,Email,Industry,Phone,Address,POC Name,POC Number,POC Email",
		"Acme,new@acme.example,Retail,9876543210,Pune,Asha,9123456780,asha@acme.example",
		"Globex,dup@globex.example,Technology,9876543210,Delhi,Ravi,9123456780,ravi@globex.example",
		"Initech,bad@initech.example,Mining,9876543210,Mumbai,Mira,9123456780,mira@initech.example",
		"Umbrella,down@umbrella.example,Healthcare,9876543210,Surat,Om,9123456780,om@umbrella.example",
		"Hooli,race@hooli.example,Technology,9876543210,Pune,Gav,9123456780,gav@hooli.example",
	}, "\n")
	rows, err := utils.ReadBrandCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ReadBrandCSV() error = %v", err)
	}
	rows = append(rows, utils.BrandRow{Line: 9, Err: errors.New("wrong number of fields")})

	creator := &scriptedCreator{errs: map[string]error{
		"dup@globex.example":    services.ErrDuplicateBrandEmail,
		"bad@initech.example":   apperrors.NewValidationError("industryType", "Select a valid industry"),
		"down@umbrella.example": &apperrors.StoreWriteError{Op: "create brand", Err: errors.New("timeout")},
		// unique index rejecting a row that passed the pre-check
		"race@hooli.example": fmt.Errorf("create brand: %w", apperrors.ErrDuplicateBrandEmail),
	}}

	got := importBrands(context.Background(), creator, rows, zap.NewNop())
	want := summary{Created: 1, Duplicates: 2, Invalid: 2, Failed: 1}
	if got != want {
		t.Errorf("importBrands() = %+v, want %+v", got, want)
	}
	if len(creator.seen) != 5 {
		t.Errorf("create flow called %d times, want 5", len(creator.seen))
	}
}
