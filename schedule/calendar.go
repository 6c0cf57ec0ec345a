/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package schedule

import (
	"fmt"
	"time"

	"github.com/mikeb26/roundrobin-tdbot/internal"
)

// AssignDates stamps each round with a play date: the first round on
// start, each subsequent round intervalDays later.
func AssignDates(s *Schedule, start time.Time, intervalDays int) {
	for i := range s.Rounds {
		s.Rounds[i].Date = start.AddDate(0, 0, i*intervalDays)
	}
}

// AssignDatesFromString is AssignDates with a leniently parsed start
// date (e.g. "2026-09-01", "Sep 1 2026", "9/1/26").
func AssignDatesFromString(s *Schedule, startDate string,
	intervalDays int) error {

	start, err := internal.ParseDateOrZero(startDate)
	if err != nil {
		return fmt.Errorf("unable to parse start date %q: %w", startDate, err)
	}
	if start.IsZero() {
		return fmt.Errorf("start date %q is empty", startDate)
	}
	if intervalDays < 1 {
		return fmt.Errorf("interval must be at least 1 day, got %d",
			intervalDays)
	}

	AssignDates(s, start, intervalDays)
	return nil
}
