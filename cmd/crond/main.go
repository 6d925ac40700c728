// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command crond is a minimalist cron daemon: it parses /etc/crontab,
// computes the next firing instant of each job, sleeps until the
// earliest one, and launches the corresponding shell command.
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/cnotch/crond/crond"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logger.WithField("component", "crond")

	s := crond.New(crond.WithLogger(log))
	if err := s.Run(); err != nil {
		log.WithError(err).Fatal("crond exiting")
	}
}
