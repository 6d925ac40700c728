// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package crond

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/cnotch/crond/cron"
)

// runJob launches job's command as `<shell> -c <command>` if the job
// isn't already running. The child is placed in its own process
// group so that terminal signals delivered to the daemon don't
// propagate to it; standard streams are inherited from the daemon.
//
// The child is never waited on here: reapZombies does that, via
// syscall.Wait4, independently of whatever pid started it.
func (s *Scheduler) runJob(job *cron.Job) {
	if job.PID != 0 {
		s.logger.WithField("line", job.Lineno).Warn("job won't be executed since it is still running")
		return
	}

	cmd := exec.Command(s.shell, "-c", job.Command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		s.logger.WithError(err).WithField("line", job.Lineno).Error("cannot start a new process")
		return
	}

	job.PID = cmd.Process.Pid
	s.logger.WithFields(logrus.Fields{"line": job.Lineno, "pid": job.PID}).Info("executing job")
}

// reapZombies drains exited children non-blockingly, logging each
// one's disposition and clearing the owning job's PID so it can run
// again. Stopped children are logged but kept as "running": only an
// exit or a terminating signal frees the job up.
func (s *Scheduler) reapZombies() {
	for {
		var status syscall.WaitStatus
		pid, err := syscall.Wait4(-1, &status, syscall.WNOHANG|syscall.WUNTRACED, nil)
		if err != nil {
			if err == syscall.EINTR {
				continue
			}
			// ECHILD: no children left to wait for. Anything else is
			// unexpected but not actionable here.
			return
		}
		if pid <= 0 {
			return
		}

		cleared := false
		switch {
		case status.Exited():
			s.logger.WithFields(logrus.Fields{"pid": pid, "status": status.ExitStatus()}).Info(
				"pid returned")
			cleared = true
		case status.Signaled():
			s.logger.WithFields(logrus.Fields{"pid": pid, "signal": unix.SignalName(status.Signal())}).Warn(
				"pid terminated by signal")
			cleared = true
		case status.Stopped():
			s.logger.WithFields(logrus.Fields{"pid": pid, "signal": unix.SignalName(status.StopSignal())}).Warn(
				"pid stopped by signal")
		}

		if !cleared {
			continue
		}
		for _, job := range s.jobs {
			if job.PID == pid {
				job.PID = 0
				break
			}
		}
	}
}
