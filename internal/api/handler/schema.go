package handler

import (
	"fmt"
	"strings"
	"time"
)

// messageResponse is the envelope for plain acknowledgements and errors.
type messageResponse struct {
	Message string `json:"message"`
}

// jsonDate accepts either a calendar date (2006-01-02) or an RFC 3339
// timestamp, which is what the portal forms send.
type jsonDate struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

func (d *jsonDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// dateOrZero unwraps an optional date.
func dateOrZero(d *jsonDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
