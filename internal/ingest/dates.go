package ingest

import (
	"strconv"
	"strings"
	"time"
)

// ISOLayout is the layout every normalized date is rendered with.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// Inputs without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"20060102",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"02.01.2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
}

// ParseDate reads s with the known layouts. Day first wins for slashed dates;
// month first is only tried when the day first reading is impossible. Plain
// integers are a year (4 digits), Unix seconds (>= 1e9) or Unix
// milliseconds (>= 1e11). Other integers are not dates.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	switch {
	case err != nil:
		return time.Time{}, false
	case len(s) == 4 && n >= 1000:
		return time.Date(int(n), time.January, 1, 0, 0, 0, 0, time.UTC), true
	case n >= 1e11:
		return time.UnixMilli(n).UTC(), true
	case n >= 1e9:
		return time.Unix(n, 0).UTC(), true
	default:
		return time.Time{}, false
	}
}

// NormalizeDate renders raw as an ISO-8601 UTC timestamp. Anything that does
// not parse becomes now.
func NormalizeDate(raw string, now time.Time) string {
	t, ok := ParseDate(raw)
	if !ok {
		t = now
	}
	return FormatDate(t)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}
