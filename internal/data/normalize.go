package data

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// NormalizeTags coerces a raw tags column value into a tag list. The column
// is JSONB, but depending on the driver it can arrive as text, bytes, an
// already decoded list, or NULL. The result is never nil: NULL, JSON null and
// anything that fails to decode all become an empty list. Decode failures are
// deliberately swallowed.
func NormalizeTags(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		if v == nil {
			return []string{}
		}
		return v
	case []any:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
				continue
			}
			tags = append(tags, fmt.Sprint(item))
		}
		return tags
	case string:
		return decodeTags([]byte(v))
	case []byte:
		return decodeTags(v)
	default:
		return []string{}
	}
}

func decodeTags(b []byte) []string {
	var tags []string
	if err := json.Unmarshal(b, &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}

// EncodeTags is the write-side counterpart of NormalizeTags: an empty list is
// stored as NULL, anything else as JSON text.
func EncodeTags(tags []string) (driver.Value, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// timestampLayouts are tried in order when a timestamp arrives as text.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999Z07:00",
	"2006-01-02 15:04:05.999999",
}

// NormalizeTime coerces a raw timestamp column value into a UTC time with
// microsecond precision. Values that cannot be interpreted yield the zero time.
func NormalizeTime(raw any) time.Time {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC().Truncate(time.Microsecond)
	case string:
		return parseTimestamp(v)
	case []byte:
		return parseTimestamp(string(v))
	default:
		return time.Time{}
	}
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Microsecond)
		}
	}
	return time.Time{}
}
