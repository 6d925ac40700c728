// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cron

import "time"

// UpdateJob computes the next firing instant of job strictly after now
// and stores it in job.Time. now is decomposed in its own location, and
// the result is recomposed in that same location so daylight-saving
// transitions are resolved by the standard library exactly as if the
// wall-clock fields had been handed to mktime with an unknown DST flag:
// an ambiguous or skipped wall-clock time is normalized against the
// zone's transition table rather than guessed at here.
//
// job.Minutes, job.Hours and job.Months must be non-zero; the parser
// guarantees this for every Job it produces.
//
// If no satisfying instant exists within maxLookahead day-advances, the
// schedule is unsatisfiable (e.g. "30 2 30 2 *", which asks for
// February 30th) and UpdateJob returns true; the caller is expected to
// evict the job from its table. job.Time is left unmodified in that
// case.
func UpdateJob(job *Job, now time.Time, maxLookahead int) (evicted bool) {
	year, monthOf, mday := now.Date()
	month := int(monthOf) - 1
	hour, minute, _ := now.Clock()
	wday := int(now.Weekday())
	loc := now.Location()

	todayOK := job.validDate(mday, wday, month)

	// Minute axis: if the rest of today is already valid, try to stay
	// within the current hour.
	if todayOK && job.validHour(hour) {
		if m, ok := job.Minutes.FirstSetAtOrAfter(minute + 1); ok {
			job.Time = time.Date(year, monthOf, mday, hour, m, 0, 0, loc)
			return false
		}
	}
	minute, _ = job.Minutes.FirstSet()

	// Hour axis: if today is valid, try to stay within today.
	if todayOK {
		if h, ok := job.Hours.FirstSetAtOrAfter(hour + 1); ok {
			job.Time = time.Date(year, monthOf, mday, h, minute, 0, 0, loc)
			return false
		}
	}
	hour, _ = job.Hours.FirstSet()

	// Day axis: walk forward a day at a time until the date satisfies
	// the job, capped by maxLookahead so a schedule that can never be
	// satisfied (Feb 30, Apr 31, ...) doesn't loop forever.
	lookahead := 0
	for {
		lookahead++
		if lookahead > maxLookahead {
			return true
		}

		wday = (wday + 1) % 7
		mday++
		if mday > DaysInMonth(month, year) {
			mday = 1
			month++
			if month >= 12 {
				month = 0
				year++
			}
		}

		if job.validDate(mday, wday, month) {
			break
		}
	}

	job.Time = time.Date(year, time.Month(month+1), mday, hour, minute, 0, 0, loc)
	return false
}
