package dashboard

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Zone-less timestamps are read as local time, the way a browser's Date
// parser treats them. Date-only values are UTC for the same reason.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseTimestamp accepts the timestamp shapes the producer writes.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// TimeAgo renders ts relative to now ("45s ago", "3d ago", "2y ago").
// Each unit is derived from the previous unit's rounded value, matching the
// page script, so both sides always agree. Empty or unparsable input is "N/A".
func TimeAgo(ts string, now time.Time) string {
	t, ok := ParseTimestamp(ts)
	if !ok {
		return "N/A"
	}

	s := jsRound(float64(now.Sub(t).Milliseconds()) / 1000)
	if s < 60 {
		return ago(s, "s")
	}
	m := jsRound(s / 60)
	if m < 60 {
		return ago(m, "m")
	}
	h := jsRound(m / 60)
	if h < 24 {
		return ago(h, "h")
	}
	d := jsRound(h / 24)
	if d < 7 {
		return ago(d, "d")
	}
	w := jsRound(d / 7)
	if w < 5 {
		return ago(w, "w")
	}
	mo := jsRound(d / 30.44)
	if mo < 12 {
		return ago(mo, "mo")
	}
	return ago(jsRound(d/365.25), "y")
}

// jsRound rounds half up, like Math.round.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}

func ago(n float64, unit string) string {
	return strconv.FormatInt(int64(n), 10) + unit + " ago"
}
