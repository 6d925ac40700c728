// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package crond implements the scheduling loop of a minimal cron
// daemon: it owns the in-memory job table, computes each job's next
// firing instant, sleeps until the earliest one, and launches the
// corresponding shell command as a child process. It is driven
// entirely by one goroutine; signals are the only source of
// concurrency, and they are funneled through a single channel rather
// than handled asynchronously.
package crond

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cnotch/crond/cron"
)

// Defaults for the tunables an Option can override.
const (
	DefaultCrontabPath  = "/etc/crontab"
	DefaultShell        = "/bin/sh"
	DefaultWakeupPeriod = 60 * time.Minute
	DefaultCatchupLimit = 60 * time.Minute
)

// DefaultMaxLookahead is the number of day-advances UpdateJob will try
// before giving up on a schedule and evicting it.
const DefaultMaxLookahead = cron.DefaultMaxLookahead

// A Scheduler owns a crontab's job table and runs the main
// event-dispatch loop described in the package doc. A Scheduler must
// be constructed with New and is not safe for concurrent use: the
// whole point of its design is that exactly one goroutine ever
// touches the job table.
type Scheduler struct {
	crontabPath  string
	shell        string
	logger       logrus.FieldLogger
	clock        func() time.Time
	loc          *time.Location
	wakeupPeriod time.Duration
	catchupLimit time.Duration
	maxLookahead int

	jobs []*cron.Job
}

// New constructs a Scheduler. It does not read the crontab or start
// the loop; call Run for that.
func New(options ...Option) *Scheduler {
	s := &Scheduler{
		crontabPath:  DefaultCrontabPath,
		shell:        DefaultShell,
		logger:       logrus.StandardLogger(),
		clock:        time.Now,
		loc:          time.Local,
		wakeupPeriod: DefaultWakeupPeriod,
		catchupLimit: DefaultCatchupLimit,
		maxLookahead: DefaultMaxLookahead,
	}
	for _, o := range options {
		o.apply(s)
	}
	return s
}

// Run blocks the calling goroutine, reading the crontab, entering the
// event loop, and returning only when the daemon receives SIGTERM,
// SIGINT or SIGQUIT (in which case it returns nil) or the crontab
// exists but cannot be opened or read, at startup or on a SIGHUP
// reload (in which case it returns a non-nil error; the caller is
// expected to log it and exit non-zero).
//
// Run installs its own os/signal.Notify registration for SIGCHLD,
// SIGHUP, SIGTERM, SIGINT and SIGQUIT and removes it before returning.
// Only one Scheduler should be running per process.
func (s *Scheduler) Run() error {
	sigCh := make(chan os.Signal, 16)
	signal.Notify(sigCh, syscall.SIGCHLD, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	s.logger.WithField("pid", os.Getpid()).Info("crond starting up")

	if err := s.reload(); err != nil {
		return err
	}

restart:
	begin := s.clock()
	s.recalculate(begin)

	for {
		begin = s.clock()
		idx := s.closestJob()

		var timer *time.Timer
		var timerC <-chan time.Time
		jobReached := false

		if idx >= 0 {
			d := s.jobs[idx].Time.Sub(begin)
			if d <= 0 {
				jobReached = true
			} else {
				if d > s.wakeupPeriod {
					d = s.wakeupPeriod
				}
				timer = time.NewTimer(d)
				timerC = timer.C
			}
		}
		// idx < 0 (empty table): timerC stays nil, so the select below
		// blocks on the signal channel alone, exactly as waiting
		// indefinitely on the signal set.

		if jobReached {
			s.dispatchJobReached(idx, begin)
			continue
		}

		select {
		case sig := <-sigCh:
			if timer != nil {
				timer.Stop()
			}
			switch sig {
			case syscall.SIGCHLD:
				s.reapZombies()

			case syscall.SIGHUP:
				s.logger.Infof("reloading %s because we received a SIGHUP", s.crontabPath)
				s.jobs = nil
				if err := s.reload(); err != nil {
					return err
				}
				goto restart

			case syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT:
				s.logger.Info("going down")
				s.jobs = nil
				return nil
			}

		case <-timerC:
			if s.clock().Before(begin) {
				s.logger.Info("detected that the system time was set back, recalculating")
				goto restart
			}
			// Otherwise this was just the WAKEUP_PERIOD cap expiring
			// with nothing to do; loop around and re-select the
			// closest job.
		}
	}
}

// dispatchJobReached handles the synthetic "target reached" event: the
// selected job's time is already <= now.
func (s *Scheduler) dispatchJobReached(idx int, begin time.Time) {
	job := s.jobs[idx]
	if begin.Sub(job.Time) <= s.catchupLimit {
		s.runJob(job)
	} else {
		s.logger.WithFields(logrus.Fields{"line": job.Lineno}).Info(
			"job had to be skipped because it was too far in the past (was the system time set forward?)")
	}
	s.updateJob(idx, s.clock())
}

// recalculate runs UpdateJob over every job in the table from now,
// iterating backwards so that swap-with-last evictions never skip an
// entry.
func (s *Scheduler) recalculate(now time.Time) {
	for i := len(s.jobs) - 1; i >= 0; i-- {
		s.updateJob(i, now)
	}
}

// updateJob recomputes the next firing instant of the job at index i,
// evicting it (swap with the last slot) if its schedule turns out to
// be unsatisfiable within maxLookahead day-advances.
func (s *Scheduler) updateJob(i int, now time.Time) {
	job := s.jobs[i]
	evicted := cron.UpdateJob(job, now.In(s.loc), s.maxLookahead)
	if !evicted {
		return
	}

	s.logger.WithFields(logrus.Fields{"line": job.Lineno, "command": job.Command}).Warn(
		"job exceeded the maximum lookahead and will be ignored")

	last := len(s.jobs) - 1
	s.jobs[i] = s.jobs[last]
	s.jobs[last] = nil
	s.jobs = s.jobs[:last]
}

// closestJob returns the index of the job with the smallest Time, or
// -1 if the table is empty. A linear scan, not a heap: with the
// anticipated job count (dozens to low hundreds) it is simpler than a
// priority queue and just as fast in practice.
func (s *Scheduler) closestJob() int {
	if len(s.jobs) == 0 {
		return -1
	}
	next := 0
	for i := 1; i < len(s.jobs); i++ {
		if s.jobs[i].Time.Before(s.jobs[next].Time) {
			next = i
		}
	}
	return next
}

// reload (re-)reads the crontab file, replacing the job table. A
// missing crontab is not an error: the table is simply left empty.
// Parse errors are per-line warnings; reload always returns nil
// unless the file exists but can't be opened or read.
func (s *Scheduler) reload() error {
	f, err := os.Open(s.crontabPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.jobs = nil
			return nil
		}
		return fmt.Errorf("open %s: %w", s.crontabPath, err)
	}
	defer f.Close()

	jobs, errs := cron.ParseFile(f)
	for _, e := range errs {
		var perr *cron.ParseError
		if !errors.As(e, &perr) {
			// Not a rejected line but an I/O failure while reading
			// the crontab: this is a fatal startup error, not a
			// per-line warning.
			return fmt.Errorf("read %s: %w", s.crontabPath, e)
		}
		s.logger.WithError(e).Warnf("line of %s will be ignored because of bad syntax", s.crontabPath)
	}
	s.jobs = jobs
	return nil
}
