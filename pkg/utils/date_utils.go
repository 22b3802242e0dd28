package utils

import "time"

const ISODateLayout = "2006-01-02"

func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODateLayout, s)
}

// DaysBetween returns the inclusive sequence of ISO calendar days from start
// to end. Unparseable bounds or end before start yield an empty sequence so
// callers can treat a degenerate trip as "no days".
func DaysBetween(start, end string) []string {
	from, err := ParseISODate(start)
	if err != nil {
		return nil
	}
	to, err := ParseISODate(end)
	if err != nil {
		return nil
	}

	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(ISODateLayout))
	}
	return days
}
