package entities

import (
	"errors"
	"math"
	"strings"
	"time"
)

// WarrantyLabel is the coarse warranty state shown to users.
type WarrantyLabel string

const (
	WarrantyActive       WarrantyLabel = "Active"
	WarrantyExpiringSoon WarrantyLabel = "Expiring Soon"
	WarrantyExpired      WarrantyLabel = "Expired"
)

// WarrantyExpiringSoonDays is the inclusive day count at or below which an
// unexpired warranty is reported as expiring soon.
const WarrantyExpiringSoonDays = 30

var ErrInvalidDate = errors.New("invalid date")

// WarrantyStatus is the classification of a warranty end date at a moment.
type WarrantyStatus struct {
	RemainingDays int           `json:"remainingDays"`
	Label         WarrantyLabel `json:"label"`
}

// ClassifyWarranty maps a warranty end to its status at now.
//
// Remaining days are the ceiling of the whole-day distance, so any partial
// day left counts as one. An end at or before now is Expired with 0 days.
func ClassifyWarranty(end, now time.Time) WarrantyStatus {
	diff := end.Sub(now)
	if diff <= 0 {
		return WarrantyStatus{RemainingDays: 0, Label: WarrantyExpired}
	}
	days := int(math.Ceil(float64(diff) / float64(24*time.Hour)))
	if days <= WarrantyExpiringSoonDays {
		return WarrantyStatus{RemainingDays: days, Label: WarrantyExpiringSoon}
	}
	return WarrantyStatus{RemainingDays: days, Label: WarrantyActive}
}

// ClassifyWarrantyDate parses an ISO date and classifies it.
func ClassifyWarrantyDate(endISO string, now time.Time) (WarrantyStatus, error) {
	end, err := ParseISODate(endISO)
	if err != nil {
		return WarrantyStatus{}, err
	}
	return ClassifyWarranty(end, now), nil
}

// ParseISODate accepts YYYY-MM-DD (UTC midnight) or RFC3339 timestamps.
func ParseISODate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// ExpiresWithin reports whether end falls in (now, now+days].
func ExpiresWithin(end, now time.Time, days int) bool {
	return end.After(now) && !end.After(now.AddDate(0, 0, days))
}
