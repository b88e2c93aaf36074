package countdown

import (
	"fmt"
	"time"
)

// Remaining clamps the time left until end at zero.
func Remaining(end, now time.Time) time.Duration {
	d := end.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Parts is a remaining duration decomposed for display. Integer division
// throughout: the displayed second only decrements after a full second has
// elapsed, never rounds up.
type Parts struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

func Decompose(d time.Duration) Parts {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return Parts{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// Format renders a remaining duration the way the storefront widget shows
// it: leading units are dropped while zero, trailing units are zero-padded.
//
//	3d 4h 5m 6s -> "3:04:05:06"
//	1h 1m 1s    -> "1:01:01"
//	2m 9s       -> "2:09"
//	7s          -> "0:07"
func Format(d time.Duration) string {
	p := Decompose(d)
	switch {
	case p.Days > 0:
		return fmt.Sprintf("%d:%02d:%02d:%02d", p.Days, p.Hours, p.Minutes, p.Seconds)
	case p.Hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", p.Hours, p.Minutes, p.Seconds)
	default:
		return fmt.Sprintf("%d:%02d", p.Minutes, p.Seconds)
	}
}
