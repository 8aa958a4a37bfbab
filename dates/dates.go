// Package dates formats and parses the calendar dates shown on blog pages.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a value does not represent a calendar date.
var ErrInvalidDate = errors.New("invalid date")

const (
	// Layout is the fixed YYYY-MM-DD pattern used for "last updated" stamps.
	Layout = "2006-01-02"
	// LongLayout is the human-readable form shown on the index page.
	LongLayout = "January 02, 2006"
)

// inputLayouts are tried in order by Parse.
var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	Layout,
}

// Format renders t as YYYY-MM-DD in t's own location.
func Format(t time.Time) (string, error) {
	if t.IsZero() {
		return "", ErrInvalidDate
	}
	return t.Format(Layout), nil
}

// Long renders t as "January 02, 2006".
func Long(t time.Time) (string, error) {
	if t.IsZero() {
		return "", ErrInvalidDate
	}
	return t.Format(LongLayout), nil
}

// Parse reads a front matter date. Values without a zone are taken as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatString parses s and re-renders it with Format.
func FormatString(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(t)
}
