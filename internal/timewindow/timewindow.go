// Package timewindow validates appointment times against the office's
// booking window, 06:00 through 18:00 inclusive.
package timewindow

import (
	"strconv"
	"strings"
)

const (
	openMinutes  = 6 * 60
	closeMinutes = 18 * 60
)

// Valid reports whether s is an HH:MM clock time inside the booking window.
// Single-digit hours are accepted ("9:30"). Malformed input is simply invalid.
func Valid(s string) bool {
	h, m, ok := parse(s)
	if !ok {
		return false
	}
	total := h*60 + m
	return total >= openMinutes && total <= closeMinutes
}

func parse(s string) (h, m int, ok bool) {
	i := strings.IndexByte(s, ':')
	if i < 1 || i > 2 || len(s)-i-1 != 2 {
		return 0, 0, false
	}
	for _, r := range s[:i] + s[i+1:] {
		if r < '0' || r > '9' {
			return 0, 0, false
		}
	}
	h, _ = strconv.Atoi(s[:i])
	m, _ = strconv.Atoi(s[i+1:])
	if h > 23 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
