// Package corelog provides the pipeline's structured logging, a thin
// factory over logrus.Entry so support/truss/skin can attach consistent
// component/region/block context fields to every local-skip warning.
package corelog

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var base = logrus.New()

// NewRunID returns a fresh correlation ID, attached as a log field by
// callers (cmd/slmsupport) that want every warning and metric from one
// generate invocation traceable back to the same run.
func NewRunID() string {
	return uuid.NewString()
}

// For returns a logger scoped to component, the per-package entry point
// support.IdentifySupportRegions and friends use to log local-skip
// errors at Warn with region/block/slice context fields.
func For(component string) *logrus.Entry {
	return base.WithField("component", component)
}

// SetLevel adjusts the package-wide log level, exposed so cmd/slmsupport
// can wire a --verbose flag through without reaching into logrus
// directly.
func SetLevel(level logrus.Level) {
	base.SetLevel(level)
}
