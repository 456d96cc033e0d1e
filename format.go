package inputkit

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate renders a stored email date as "1/2/2006 3:04:05 PM". Dates
// without a zone are taken as local time.
func FormatDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t.Format("1/2/2006 3:04:05 PM"), nil
		}
	}

	return "", fmt.Errorf("inputkit: unrecognized date %q", s)
}
