// Package calendar derives the month grid the booking UI renders.
package calendar

import (
	"fmt"
	"time"
)

// Cell is one slot in a month grid. Leading and trailing padding cells have
// Empty set; populated cells carry the day number, its date and whether any
// appointment falls on it.
type Cell struct {
	Empty     bool   `json:"empty,omitempty"`
	Day       int    `json:"day,omitempty"`
	Date      string `json:"date,omitempty"`
	HasEvents bool   `json:"has_events"`
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func leapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysIn returns the day count of the given month.
func DaysIn(year int, month time.Month) int {
	if month == time.February && leapYear(year) {
		return 29
	}
	return monthDays[month]
}

// ProjectMonth builds the grid for one month: padding up to the weekday of
// day 1 (Sunday first), one cell per day, then padding to a multiple of
// seven. dates holds "YYYY-MM-DD" strings of days with at least one
// appointment. Pure: same inputs always yield the same grid.
func ProjectMonth(year int, month time.Month, dates map[string]bool) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday()) // 0 = Sunday
	days := DaysIn(year, month)

	n := lead + days
	if r := n % 7; r != 0 {
		n += 7 - r
	}

	grid := make([]Cell, n)
	for i := range grid {
		grid[i] = Cell{Empty: true}
	}
	for d := 1; d <= days; d++ {
		ds := fmt.Sprintf("%04d-%02d-%02d", year, int(month), d)
		grid[lead+d-1] = Cell{Day: d, Date: ds, HasEvents: dates[ds]}
	}
	return grid
}
