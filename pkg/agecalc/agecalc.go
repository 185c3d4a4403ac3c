// Package agecalc derives a whole-years age from a birthdate.
package agecalc

import "time"

// Years returns the number of completed years between birthdate and today.
// When today's month/day falls before the birthdate's month/day, the
// birthday has not been reached this year and one year is subtracted.
func Years(birthdate, today time.Time) int {
	years := today.Year() - birthdate.Year()
	if today.Month() < birthdate.Month() ||
		(today.Month() == birthdate.Month() && today.Day() < birthdate.Day()) {
		years--
	}
	return years
}
