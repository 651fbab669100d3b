// Package validation holds the declarative form rules of the create flows.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of campaign scheduling dates
const DateLayout = "2006-01-02"

var (
	phonePattern       = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern       = regexp.MustCompile(`(?i)^\S+@\S+$`)
	websitePattern     = regexp.MustCompile(`^https?://.+`)
	redirectPattern    = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)
	gstPattern         = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	indexSuffixPattern = regexp.MustCompile(`\[\d+\]`)
)

// Validator checks submitted forms and reports field level messages
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New creates a Validator. now is used by the "start date not in the past" rule.
func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{validate: validator.New(), now: now}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v.validate, "phone10", matches(phonePattern))
	mustRegister(v.validate, "looseemail", matches(emailPattern))
	mustRegister(v.validate, "httpurl", matches(websitePattern))
	mustRegister(v.validate, "redirecturl", matches(redirectPattern))
	mustRegister(v.validate, "gstin", matches(gstPattern))
	mustRegister(v.validate, "city", func(fl validator.FieldLevel) bool {
		return contains(models.Cities, fl.Field().String())
	})
	mustRegister(v.validate, "isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
	mustRegister(v.validate, "notpast", func(fl validator.FieldLevel) bool {
		// ISO dates compare lexicographically
		return fl.Field().String() >= v.now().Format(DateLayout)
	})
	v.validate.RegisterStructValidation(endAfterStart, models.CampaignForm{})

	return v
}

// Brand validates a Create-Brand form
func (v *Validator) Brand(form *models.BrandForm) error {
	return v.check(form, brandMessages)
}

// Campaign validates a Create-Campaign form
func (v *Validator) Campaign(form *models.CampaignForm) error {
	return v.check(form, campaignMessages)
}

func (v *Validator) check(form interface{}, messages map[string]string) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &apperrors.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		if _, seen := out.Fields[field]; seen {
			continue
		}
		out.Fields[field] = message(messages, field, fe.Tag())
	}
	return out
}

// endAfterStart rejects campaigns whose end date is not strictly after the start date
func endAfterStart(sl validator.StructLevel) {
	form := sl.Current().Interface().(models.CampaignForm)
	if form.StartDate == "" || form.EndDate == "" {
		return
	}
	start, err := time.Parse(DateLayout, form.StartDate)
	if err != nil {
		return
	}
	end, err := time.Parse(DateLayout, form.EndDate)
	if err != nil {
		return
	}
	if !end.After(start) {
		sl.ReportError(form.EndDate, "endDate", "EndDate", "afterstart", "")
	}
}

// fieldPath strips the root struct name from a validator namespace,
// e.g. "BrandForm.pointOfContact[0].email" -> "pointOfContact[0].email".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(messages map[string]string, field, tag string) string {
	key := indexSuffixPattern.ReplaceAllString(field, "")
	if msg, ok := messages[key+"."+tag]; ok {
		return msg
	}
	if msg, ok := messages[key+".*"]; ok {
		return msg
	}
	return "Invalid value"
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
