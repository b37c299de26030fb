package payouts

import "time"

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

// NextPayoutDate returns the next occurrence of the target weekday strictly
// after today, and the number of calendar days until it. When today already
// is the target weekday the result is a full week out, never today.
func NextPayoutDate(today time.Time, target time.Weekday) (time.Time, int) {
	days := (int(target) + 7 - int(today.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	next := today.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC), days
}
