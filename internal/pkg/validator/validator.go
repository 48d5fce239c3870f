package validator

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}

// IsValidClockTime validates a 24-hour wall clock string ("HH:MM").
// Hours and minutes must be zero padded; "8:30" is rejected.
func IsValidClockTime(clockStr string) bool {
	if len(clockStr) != 5 || clockStr[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", clockStr)
	return err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Latitude/longitude bounds check (decimal degrees).
func IsValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

const maxProofPhotoSize = 5 << 20 // 5 MiB

var proofPhotoExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// ValidateProofPhoto checks the filename extension and size of an uploaded
// clock-in/out proof photo.
func ValidateProofPhoto(filename string, size int64) error {
	var errs ValidationErrors

	ext := strings.ToLower(filepath.Ext(filename))
	if !IsInSlice(ext, proofPhotoExtensions) {
		errs = append(errs, ValidationError{
			Field:   "proof_photo",
			Message: "proof photo must be a jpg, jpeg, png, or webp file",
		})
	}

	if size <= 0 || size > maxProofPhotoSize {
		errs = append(errs, ValidationError{
			Field:   "proof_photo",
			Message: "proof photo must be between 1 byte and 5 MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
