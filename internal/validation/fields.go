package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hance08/caixa/internal/ingest"
)

// Date shortcuts accepted wherever a date is typed.
const (
	ShortcutToday     = "t"
	ShortcutYesterday = "y"
)

// DateShortcut maps the typed value to ShortcutToday or ShortcutYesterday,
// or returns it trimmed when it is not a shortcut.
func DateShortcut(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "t", "today", "hoje":
		return ShortcutToday
	case "y", "yesterday", "ontem":
		return ShortcutYesterday
	default:
		return s
	}
}

// Required returns a validator rejecting blank input for field.
func Required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// ValidateAmount accepts any amount format the normalizer reads, as long
// as it is positive.
func ValidateAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("amount is required")
	}
	if !ingest.ParseAmount(s).IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

// ValidateDate accepts a date shortcut or any layout the normalizer reads.
func ValidateDate(s string) error {
	switch DateShortcut(s) {
	case ShortcutToday, ShortcutYesterday:
		return nil
	}
	if _, ok := ingest.ParseDate(s); !ok {
		return fmt.Errorf("invalid date %q", s)
	}
	return nil
}

// ValidateOptionalDate is ValidateDate allowing blank input.
func ValidateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return ValidateDate(s)
}

func ValidateBaseURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("enter a full URL, e.g. https://example.com/api")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return nil
}
