package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
)

// BrandRow is one parsed CSV line
type BrandRow struct {
	Line int
	Form *models.BrandForm
	Err  error
}

var brandColumns = map[string][]string{
	"brandName":       {"brandName", "Brand Name", "Name"},
	"industryType":    {"industryType", "Industry", "Industry Type"},
	"websiteURL":      {"websiteURL", "Website", "Website URL"},
	"email":           {"email", "Email", "Brand Email"},
	"phoneNumber":     {"phoneNumber", "Phone", "Phone Number"},
	"businessAddress": {"businessAddress", "Address", "Business Address"},
	"gstNumber":       {"gstNumber", "GST", "GST Number"},
	"pocName":         {"pocName", "POC Name", "Contact Name"},
	"pocNumber":       {"pocNumber", "POC Number", "Contact Number"},
	"pocEmail":        {"pocEmail", "POC Email", "Contact Email"},
}

// ReadBrandCSV parses a header-driven CSV of brands. Column names are matched
// case-insensitively against known aliases. Rows that cannot be read are
// returned with Err set so the caller can count them.
func ReadBrandCSV(r io.Reader) ([]BrandRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := make(map[string]int, len(brandColumns))
	for key, names := range brandColumns {
		idx[key] = findColumnIndex(header, names)
	}
	if idx["brandName"] == -1 || idx["email"] == -1 {
		return nil, fmt.Errorf("brand name and email columns are required")
	}

	var rows []BrandRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rows = append(rows, BrandRow{Line: line, Err: err})
			continue
		}

		col := func(key string) string {
			i := idx[key]
			if i < 0 || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		form := &models.BrandForm{
			BrandName:       col("brandName"),
			IndustryType:    col("industryType"),
			WebsiteURL:      col("websiteURL"),
			Email:           col("email"),
			PhoneNumber:     col("phoneNumber"),
			BusinessAddress: col("businessAddress"),
			GSTNumber:       col("gstNumber"),
			PointOfContact:  []models.PointOfContact{},
		}
		if name, number, email := col("pocName"), col("pocNumber"), col("pocEmail"); name != "" || number != "" || email != "" {
			form.PointOfContact = append(form.PointOfContact, models.PointOfContact{Name: name, Number: number, Email: email})
		}
		rows = append(rows, BrandRow{Line: line, Form: form})
	}
	return rows, nil
}

func findColumnIndex(header []string, possibleNames []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range possibleNames {
			if strings.ToLower(name) == h {
				return i
			}
		}
	}
	return -1
}
