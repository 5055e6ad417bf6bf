package clock

import (
	"time"

	"github.com/Houeta/hrms-lite/internal/models"
)

// Clock provides the current calendar date. Validators and views take it as a
// dependency so boundary dates can be tested deterministically.
type Clock interface {
	Today() string
}

// System reads the wall clock. Today is the UTC calendar date unless Location
// is set. Now defaults to time.Now.
type System struct {
	Location *time.Location
	Now      func() time.Time
}

// Today returns the current date formatted as models.DateLayout.
func (s System) Today() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := time.UTC
	if s.Location != nil {
		loc = s.Location
	}
	return now().In(loc).Format(models.DateLayout)
}

// Fixed always reports the same date.
type Fixed time.Time

// Today returns the fixed date formatted as models.DateLayout.
func (f Fixed) Today() string {
	return time.Time(f).Format(models.DateLayout)
}

// Tomorrow returns the date following c.Today().
func Tomorrow(c Clock) string {
	today, err := time.Parse(models.DateLayout, c.Today())
	if err != nil {
		return ""
	}
	return today.AddDate(0, 0, 1).Format(models.DateLayout)
}
