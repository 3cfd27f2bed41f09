package dates

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Today is the current calendar date in the process's local time zone.
func Today() string {
	return time.Now().Format(DateLayout)
}

func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

func ValidTime(s string) bool {
	t, err := time.Parse(TimeLayout, s)
	return err == nil && t.Format(TimeLayout) == s
}
