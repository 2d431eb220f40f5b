package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d is out of range for %04d-%02d", day, year, month)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// String formats the date back to yyyy-mm-dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	// All other months have 31 days
	return 31
}

// DaysBetween returns the whole-calendar-day difference end - start.
// Both operands are calendar dates, so there is no timezone or DST
// component to account for; anchoring both at midnight UTC makes the
// division exact.
func DaysBetween(start, end Date) int {
	s := time.Date(start.Year, time.Month(start.Month), start.Day, 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year, time.Month(end.Month), end.Day, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s) / (24 * time.Hour))
}

// OriginalPriceCents computes the agreed price of a rental, fixed at
// creation time from the game's current daily price.
func OriginalPriceCents(daysRented, pricePerDayCents int32) int32 {
	return daysRented * pricePerDayCents
}

// DelayFeeCents computes the fee owed for keeping a rental past its
// agreed period. Elapsed days at or beyond daysRented are charged at
// pricePerDayCents per extra day; an early or on-time return owes
// nothing. Returns 0 for any return on or after the rent date.
func DelayFeeCents(rentDate Date, daysRented int32, returnDate Date, pricePerDayCents int32) int32 {
	elapsed := DaysBetween(rentDate, returnDate)
	if elapsed < int(daysRented) {
		return 0
	}
	delay := int32(elapsed) - daysRented
	return delay * pricePerDayCents
}
