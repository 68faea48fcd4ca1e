// Package logging holds the process-wide logrus logger. Command output goes
// through cobra's writers; this logger carries diagnostics and is quiet
// unless --debug is set.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It writes to stderr at warn level until Init is called.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Init configures the shared logger. Debug enables debug-level output with
// full timestamps; otherwise only warnings and errors are shown.
func Init(debug bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	Log.SetOutput(w)
	if debug {
		Log.SetLevel(logrus.DebugLevel)
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		Log.Debug("Debug logging enabled")
		return
	}
	Log.SetLevel(logrus.WarnLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}
