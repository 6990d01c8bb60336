package date

import "time"

// IsBusinessDay reports whether d is a week day.
//
// Exchange holidays are not known, they count as business days.
func (d Date) IsBusinessDay() bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// AddBusinessDays moves n business days forward (or backward if n is negative).
//
// Starting from a weekend day, the first step lands on the nearest business
// day in that direction, so Saturday minus one business day is Friday.
func (d Date) AddBusinessDays(n int) Date {
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for ; n > 0; n-- {
		d = d.Add(step)
		for !d.IsBusinessDay() {
			d = d.Add(step)
		}
	}
	return d
}

// PrevBusinessDay returns the business day before d.
func (d Date) PrevBusinessDay() Date { return d.AddBusinessDays(-1) }
