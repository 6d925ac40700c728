// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cron

import "time"

// DefaultMaxLookahead is the number of day-advances UpdateJob will try
// before giving up on a schedule and reporting it as unsatisfiable.
const DefaultMaxLookahead = 2000

// A Job is one line of a crontab: five schedule fields plus a shell
// command. The schedule fields are stored as bitset Fields so that the
// next firing instant can be found by bit scans instead of by trying
// every candidate minute.
type Job struct {
	Minutes Field // bits 0..59
	Hours   Field // bits 0..23
	Mdays   Field // bits 1..31
	Months  Field // bits 0..11, 0 == January
	Wdays   Field // bits 0..6, 0 == Sunday

	Command string
	Lineno  int

	// Time is the next instant, strictly after the moment passed to
	// the most recent UpdateJob call, at which the job fires. It is
	// the zero Time until the first UpdateJob call.
	Time time.Time

	// PID is the pid of the job's currently running child process,
	// or 0 if the job is not currently running.
	PID int
}

// validDate reports whether mday, wday and month (0-based) together
// satisfy the job's day and month constraints. Day of month and day of
// week combine as a disjunction, following classical cron semantics.
func (j *Job) validDate(mday, wday, month int) bool {
	return (j.Mdays.Test(mday) || j.Wdays.Test(wday)) && j.Months.Test(month)
}

func (j *Job) validHour(hour int) bool {
	return j.Hours.Test(hour)
}
