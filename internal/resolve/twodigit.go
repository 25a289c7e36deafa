package resolve

import (
	"regexp"
	"strconv"
	"time"
)

// CenturyPivot maps two-digit years: yy < CenturyPivot is 20yy, otherwise 19yy.
const CenturyPivot = 69

var (
	twoDigitShape = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}`)
	nonDigit      = regexp.MustCompile(`[^0-9]`)
)

// ExpandYear applies CenturyPivot to a two-digit year.
func ExpandYear(yy int) int {
	if yy < CenturyPivot {
		return 2000 + yy
	}
	return 1900 + yy
}

// parseTwoDigitYear handles strings starting "yy-mm-dd". Every non-digit is
// dropped and exactly six digits must remain.
func parseTwoDigitYear(s string) (Timestamp, error) {
	if !twoDigitShape.MatchString(s) {
		return Timestamp{}, stageError(StageTwoDigitYear, ErrNotApplicable, s, nil)
	}
	digits := nonDigit.ReplaceAllString(s, "")
	if len(digits) != 6 {
		return Timestamp{}, stageError(StageTwoDigitYear, ErrInvalidCalendarDate, s, nil)
	}
	yy, _ := strconv.Atoi(digits[0:2])
	month, _ := strconv.Atoi(digits[2:4])
	day, _ := strconv.Atoi(digits[4:6])
	year := ExpandYear(yy)

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if month < 1 || month > 12 || t.Day() != day || t.Month() != time.Month(month) {
		return Timestamp{}, stageError(StageTwoDigitYear, ErrInvalidCalendarDate, s, nil)
	}
	return naiveTimestamp(t), nil
}
