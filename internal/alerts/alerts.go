// Package alerts is the user-facing notification surface.
package alerts

import "go.uber.org/zap"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Alert struct {
	Severity Severity
	Content  string
}

// Notifier receives user-visible alerts. The UI layer provides the
// real implementation; LogNotifier stands in for headless runs.
type Notifier interface {
	Notify(a Alert)
}

type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(a Alert) {
	switch a.Severity {
	case SeverityWarning:
		n.log.Warn(a.Content)
	case SeverityError:
		n.log.Error(a.Content)
	default:
		n.log.Info(a.Content)
	}
}
