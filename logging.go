// logging.go - structured logging, grounded on thelolagemann-gomeboy's MMU logger

package main

import "github.com/sirupsen/logrus"

// log is the package-level structured logger used for decode faults,
// illegal-opcode halts, and scheduler shutdown diagnostics. The core
// never calls log directly on the hot instruction path; only the
// handful of boundary conditions in §7 go through it.
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
