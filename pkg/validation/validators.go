package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Letters of any script (accents included) and spaces
	nameRegex = regexp.MustCompile(`^[\p{L} ]+$`)

	// local@domain.tld, no whitespace anywhere (Unicode separators and BOM included)
	emailRegex = regexp.MustCompile(`^[^\s\p{Z}\v\x{FEFF}@]+@[^\s\p{Z}\v\x{FEFF}@]+\.[^\s\p{Z}\v\x{FEFF}@]+$`)

	// Spanish mobile/landline: 9 digits starting with 6, 7 or 9
	phoneRegex = regexp.MustCompile(`^[679][0-9]{8}$`)
)

// DateLayouts are the date shapes accepted in submissions, tried in order.
var DateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_email", ValidEmail)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("valid_date", ValidDate)
}

// New returns a validator with the custom rules already registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// ValidName rejects digits and symbols. Empty passes; pair with required.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

func ValidEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return emailRegex.MatchString(val)
}

// ValidPhone validates a national phone number
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// ValidDate accepts any of DateLayouts.
func ValidDate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, err := ParseDate(val)
	return err == nil
}

// ParseDate parses s with the first matching layout in DateLayouts.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range DateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
