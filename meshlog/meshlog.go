package meshlog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Logger scoped to the mesh editor's compound
// operations. It is deliberately thin: package ops calls Debugf a few
// times per compound op (BevelEdges before its connectivity rewrite and
// before its geometric adjustment, ExtrudeFaces before its rewrite,
// ExtrudeFace once when it finishes) so a developer running with debug
// logging enabled can follow a compound op without instrumenting the mesh
// itself. ChamferVertex and SplitEdge do not log.
type Logger struct {
	*logrus.Logger
}

// std is the package-level logger package ops uses by default; SetOutput
// lets a caller (e.g. cmd/meshcli) redirect it before running operations.
var std = New(logrus.StandardLogger().Out)

// New constructs a Logger writing to out at Info level with logrus's
// default text formatter — the same defaults logrus.StandardLogger()
// ships with, just scoped to this package instead of global state.
func New(out io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	return &Logger{Logger: l}
}

// Std returns the package-level default Logger.
func Std() *Logger { return std }

// Op returns an entry pre-tagged with the compound operation's name, so
// every log line a single ExtrudeFace/BevelEdges/etc. call emits can be
// correlated without repeating the name at each call site.
func (l *Logger) Op(name string) *logrus.Entry {
	return l.WithField("op", name)
}
