package scenario

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseTimecode converts "HH:MM:SS:mmm" into a duration. Every field must
// be an unsigned decimal number; fields are not range checked, so
// "00:90:00:000" is ninety minutes. Timecodes past the largest
// time.Duration are rejected.
func ParseTimecode(s string) (time.Duration, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 4 {
		return 0, fmt.Errorf("%w: %q: want HH:MM:SS:mmm", ErrTimecode, s)
	}

	var n [4]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: field %d", ErrTimecode, s, i+1)
		}
		n[i] = v
	}

	ms := (n[0]*3600+n[1]*60+n[2])*1000 + n[3]
	if ms > math.MaxInt64/uint64(time.Millisecond) {
		return 0, fmt.Errorf("%w: %q: out of range", ErrTimecode, s)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// FormatTimecode renders d as "HH:MM:SS:mmm", truncated to milliseconds.
// Negative durations are formatted as zero.
func FormatTimecode(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	h := ms / 3_600_000
	m := ms / 60_000 % 60
	s := ms / 1000 % 60
	return fmt.Sprintf("%02d:%02d:%02d:%03d", h, m, s, ms%1000)
}
