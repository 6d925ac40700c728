// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package crond

import (
	"time"

	"github.com/sirupsen/logrus"
)

// An Option configures a Scheduler. Options are the only configuration
// surface: there are no command-line flags and no config file format.
type Option interface {
	apply(*Scheduler)
}

// optionFunc wraps a func so it satisfies the Option interface.
type optionFunc func(*Scheduler)

func (f optionFunc) apply(s *Scheduler) {
	f(s)
}

// WithCrontabPath overrides the path of the crontab file read at
// startup and on SIGHUP. The default is /etc/crontab.
func WithCrontabPath(path string) Option {
	return optionFunc(func(s *Scheduler) {
		s.crontabPath = path
	})
}

// WithShell overrides the shell used to invoke each job's command as
// `<shell> -c <command>`. The default is /bin/sh.
func WithShell(shell string) Option {
	return optionFunc(func(s *Scheduler) {
		s.shell = shell
	})
}

// WithLogger configures the structured logging sink. The default is
// logrus's standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return optionFunc(func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithClock overrides the function used to read the current time.
// Intended for tests; production callers should leave this unset.
func WithClock(clock func() time.Time) Option {
	return optionFunc(func(s *Scheduler) {
		if clock != nil {
			s.clock = clock
		}
	})
}

// WithLocation overrides the time.Location used to decompose "now"
// into calendar fields when computing next-fire instants. The default
// is time.Local.
func WithLocation(loc *time.Location) Option {
	return optionFunc(func(s *Scheduler) {
		if loc != nil {
			s.loc = loc
		}
	})
}

// WithWakeupPeriod overrides the maximum sleep interval between
// mandatory re-evaluations, used to detect clock regressions even
// when the next job is far in the future. The default is 60 minutes.
func WithWakeupPeriod(d time.Duration) Option {
	return optionFunc(func(s *Scheduler) {
		s.wakeupPeriod = d
	})
}

// WithCatchupLimit overrides how far in the past a job's scheduled
// time may be and still be run. The default is 60 minutes.
func WithCatchupLimit(d time.Duration) Option {
	return optionFunc(func(s *Scheduler) {
		s.catchupLimit = d
	})
}

// WithMaxLookahead overrides the number of day-advances UpdateJob will
// try before declaring a schedule unsatisfiable and evicting it. The
// default is cron.DefaultMaxLookahead.
func WithMaxLookahead(n int) Option {
	return optionFunc(func(s *Scheduler) {
		s.maxLookahead = n
	})
}
