package activity

import "time"

const DateLayout = "2006-01-02"

// Day is the total study time a user logged on one calendar day.
type Day struct {
	UserID  string
	Date    string
	Minutes int
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
