package rss

import (
	"net/mail"
	"strings"
	"time"
)

// Zoneless layouts accepted on top of the RFC 822/5322 grammar. Plenty of
// real-world feeds omit the zone; those timestamps are taken as UTC.
var zonelessLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04:05",
	"Mon, 2 Jan 06 15:04:05",
	"2 Jan 06 15:04:05",
}

// Offsets in seconds for the RFC 822 obsolete named zones. The underlying
// parsers attach alphabetic zones as zero-offset locations, so the real
// offset has to be applied afterwards; names not in the table mean UTC.
var namedZoneOffsets = map[string]int{
	"UT":  0,
	"GMT": 0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// ParseDate parses an RFC 822 date-time string as used by <pubDate> and
// <lastBuildDate>, including the historical two-digit-year and named-zone
// forms. A value without an explicit zone, or with an unrecognized named
// zone, is interpreted as UTC rather than rejected. Returns a *DateError
// when the text does not conform.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, &DateError{Value: value}
	}
	if parsed, err := mail.ParseDate(trimmed); err == nil {
		return applyNamedZone(parsed), nil
	}
	for _, layout := range zonelessLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			// time.Parse already attaches UTC when the layout has no zone.
			return parsed, nil
		}
	}
	// Named zones the stock parser chokes on, like the two-letter "UT":
	// split the zone token off and parse the rest as zoneless.
	if head, zone, ok := splitNamedZone(trimmed); ok {
		for _, layout := range zonelessLayouts {
			if parsed, err := time.Parse(layout, head); err == nil {
				return inNamedZone(parsed, zone), nil
			}
		}
	}
	return time.Time{}, &DateError{Value: value}
}

// ParseDateOpt parses an optional date string: an empty (absent) value maps
// to nil without invoking the grammar.
func ParseDateOpt(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// applyNamedZone reinterprets a timestamp that came back with a named zone
// and a zero offset: the wall-clock fields are kept and the zone's real
// offset is attached.
func applyNamedZone(parsed time.Time) time.Time {
	name, offset := parsed.Zone()
	if offset != 0 || name == "UTC" || name == "" {
		return parsed
	}
	return inNamedZone(parsed, name)
}

// inNamedZone keeps t's wall-clock fields and attaches the obs-zone offset
// for the given zone name; an unknown name means UTC.
func inNamedZone(t time.Time, zone string) time.Time {
	zoneOffset := namedZoneOffsets[strings.ToUpper(zone)]
	if zoneOffset == 0 {
		return time.Date(t.Year(), t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	}
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(strings.ToUpper(zone), zoneOffset))
}

// splitNamedZone splits a trailing alphabetic zone token (2 to 5 letters)
// off a date string.
func splitNamedZone(value string) (string, string, bool) {
	i := strings.LastIndexByte(value, ' ')
	if i < 0 {
		return "", "", false
	}
	zone := value[i+1:]
	if len(zone) < 2 || len(zone) > 5 {
		return "", "", false
	}
	for _, r := range zone {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return "", "", false
		}
	}
	return strings.TrimSpace(value[:i]), zone, true
}
