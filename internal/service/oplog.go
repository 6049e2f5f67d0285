package service

import (
	"github.com/sirupsen/logrus"
)

// opLog emits the start/success/failure events of one service call.
// Logging never changes the outcome of the call.
type opLog struct {
	entry *logrus.Entry
}

func startOp(log logrus.FieldLogger, component, method string, fields logrus.Fields) opLog {
	e := log.WithFields(logrus.Fields{
		"component": component,
		"method":    method,
	}).WithFields(fields)
	e.WithField("event", "start").Debug("operation started")
	return opLog{entry: e}
}

func (o opLog) success() {
	o.entry.WithField("event", "success").Info("operation succeeded")
}

func (o opLog) rejected(reason string) {
	o.entry.WithFields(logrus.Fields{
		"event":  "rejected",
		"reason": reason,
	}).Warn("operation rejected")
}

func (o opLog) failure(err error) {
	o.entry.WithField("event", "failure").WithError(err).Error("operation failed")
}
