package model

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

// OptionalString distinguishes an absent JSON field from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s

	return nil
}

// Trimmed returns the trimmed value, with nil for null or blank input.
func (o OptionalString) Trimmed() *string {
	if o.Value == nil {
		return nil
	}
	v := strings.TrimSpace(*o.Value)
	if v == "" {
		return nil
	}

	return &v
}

var urlPattern = regexp.MustCompile(`(?i)^https?://[^\s/$.?#].[^\s]*`)

// IsValidURL performs the URL-shape check used for resume, opensea and
// meetup links.
func IsValidURL(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && urlPattern.MatchString(s)
}

// NormalizeTelegram trims the handle and prefixes "@" when missing.
func NormalizeTelegram(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "@") {
		s = "@" + s
	}

	return s
}

// FormatUTC renders t as an ISO-8601 UTC timestamp with a literal "Z".
func FormatUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
