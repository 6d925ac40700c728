// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package crond

import "time"

// A JobSnapshot is a read-only copy of one job's scheduling state: its
// origin line, command, next firing instant and running pid (0 if
// idle). It exists for diagnostics and tests, so that callers can
// inspect the table without being able to mutate it through the live
// *cron.Job pointers the Scheduler owns.
type JobSnapshot struct {
	Lineno  int
	Command string
	Time    time.Time
	PID     int
}

// Jobs returns a snapshot of every job currently in the table, ordered
// by ascending firing time.
func (s *Scheduler) Jobs() []JobSnapshot {
	snaps := make([]JobSnapshot, len(s.jobs))
	for i, j := range s.jobs {
		snaps[i] = JobSnapshot{
			Lineno:  j.Lineno,
			Command: j.Command,
			Time:    j.Time,
			PID:     j.PID,
		}
	}
	return sortByTime(snaps)
}
