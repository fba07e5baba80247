package model

import "time"

// Weekday is a recurring day of week stored as its lowercase English name.
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

var weekdays = map[Weekday]time.Weekday{
	Sunday:    time.Sunday,
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

// Time converts to the stdlib weekday. ok is false for an unknown name.
func (w Weekday) Time() (time.Weekday, bool) {
	d, ok := weekdays[w]
	return d, ok
}

// Valid reports whether w is one of the seven weekday names.
func (w Weekday) Valid() bool {
	_, ok := weekdays[w]
	return ok
}
