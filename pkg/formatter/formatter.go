package formatter

import (
	"fmt"
	"strconv"
)

// FormatDuration renders seconds as "m:ss", or "h:mm:ss" from one hour up.
// Example: 65 -> "1:05", 3725 -> "1:02:05"
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, (seconds%3600)/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatSize renders a byte count the way file captions show it.
// Example: 512 -> "512 B", 1536 -> "1.5 KB", 5242880 -> "5 MB"
func FormatSize(size int64) string {
	const kb = 1024
	switch {
	case size < kb:
		return strconv.FormatInt(size, 10) + " B"
	case size < kb*kb:
		return trimFraction(float64(size)/kb) + " KB"
	case size < kb*kb*kb:
		return trimFraction(float64(size)/(kb*kb)) + " MB"
	default:
		return trimFraction(float64(size)/(kb*kb*kb)) + " GB"
	}
}

func trimFraction(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
