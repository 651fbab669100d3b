package validation

var brandMessages = map[string]string{
	"brandName.required":              "Brand name is required",
	"industryType.required":           "Industry type is required",
	"industryType.oneof":              "Select a valid industry",
	"websiteURL.httpurl":              "Enter valid URL",
	"email.required":                  "Email is required",
	"email.looseemail":                "Invalid email",
	"phoneNumber.required":            "Phone number is required",
	"phoneNumber.phone10":             "Enter 10-digit number",
	"businessAddress.required":        "Address is required",
	"gstNumber.gstin":                 "Invalid GST format",
	"pointOfContact.required":         "At least one point of contact is required",
	"pointOfContact.min":              "At least one point of contact is required",
	"pointOfContact.name.required":    "POC name is required",
	"pointOfContact.number.*":         "POC number is required",
	"pointOfContact.number.phone10":   "Enter 10-digit number",
	"pointOfContact.email.*":          "POC email is required",
	"pointOfContact.email.looseemail": "Invalid email",
}

var campaignMessages = map[string]string{
	"campaignName.required":    "Campaign name is required",
	"campaignName.min":         "Minimum 3 characters required",
	"brandId.required":         "Brand is required",
	"targetAgeGroup.required":  "Age group is required",
	"targetAgeGroup.oneof":     "Select a valid age group",
	"gender.required":          "Gender is required",
	"gender.oneof":             "Select a valid gender",
	"targetLocation.required":  "Location is required",
	"targetLocation.city":      "Select a valid location",
	"startDate.required":       "Start date is required",
	"startDate.isodate":        "Enter a valid date",
	"startDate.notpast":        "Start date cannot be in the past",
	"endDate.required":         "End date is required",
	"endDate.isodate":          "Enter a valid date",
	"endDate.afterstart":       "End date must be after start date",
	"redirectLink.redirecturl": "Enter valid URL (e.g., https://example.com)",
}
