package timewindow_test

import (
	"testing"

	"law-agenda-api/internal/timewindow"
)

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"06:00", true},
		{"18:00", true},
		{"12:30", true},
		{"9:30", true},
		{"6:00", true},
		{"05:59", false},
		{"18:01", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", false},
		{"29:00", false},
		{"10:60", false},
		{"ab:cd", false},
		{"1030", false},
		{"10:3", false},
		{"010:30", false},
		{"10:030", false},
		{"-1:30", false},
		{":30", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := timewindow.Valid(tt.in); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
