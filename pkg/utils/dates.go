package utils

import (
	"strings"
	"time"
)

const (
	slashDateLayout = "02/01/2006"
	isoDateLayout   = "2006-01-02"
)

var isoDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseISODateTime accepts an ISO datetime with a T or space separator and
// an optional trailing Z.
func parseISODateTime(s string) (time.Time, bool) {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range isoDateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseSlashDate accepts D/M/YYYY with or without zero padding.
func parseSlashDate(s string) (time.Time, bool) {
	if t, err := time.Parse(slashDateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2/1/2006", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// RemoteDOB formats a date of birth for the loan API as an ISO-8601
// timestamp with a trailing Z. Input is DD/MM/YYYY or YYYY-MM-DD (an ISO
// datetime is accepted too). Anything unparseable is returned unchanged.
func RemoteDOB(s string) string {
	s = strings.TrimSpace(s)
	var (
		t  time.Time
		ok bool
	)
	switch {
	case strings.Contains(s, "/"):
		t, ok = parseSlashDate(s)
	default:
		if parsed, err := time.Parse(isoDateLayout, s); err == nil {
			t, ok = parsed, true
		} else {
			t, ok = parseISODateTime(s)
		}
	}
	if !ok {
		return s
	}
	return t.Format("2006-01-02T15:04:05") + "Z"
}

// StorageDOB normalizes a date of birth to YYYY-MM-DD for storage.
// DD/MM/YYYY is reformatted and an ISO datetime (T or space separated) is
// cut to its date part. Unparseable or empty input yields nil.
func StorageDOB(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var candidate string
	switch {
	case strings.Contains(s, "/"):
		t, ok := parseSlashDate(s)
		if !ok {
			return nil
		}
		candidate = t.Format(isoDateLayout)
	case len(s) > len(isoDateLayout) && (s[len(isoDateLayout)] == 'T' || s[len(isoDateLayout)] == ' '):
		candidate = s[:len(isoDateLayout)]
	default:
		candidate = s
	}

	if _, err := time.Parse(isoDateLayout, candidate); err != nil {
		return nil
	}
	return &candidate
}
