package notifysvc

import (
	"github.com/rollbar/rollbar-go"

	"github.com/tutorlink/tutorlink-go/core"
)

// rollbarNotifier wraps another Notifier and additionally reports server
// failures to rollbar so backend-side errors seen by clients are tracked.
type rollbarNotifier struct {
	next Notifier
}

var _ Notifier = (*rollbarNotifier)(nil)

func NewRollbarNotifier(next Notifier, conf *core.Config) Notifier {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetEnabled(conf.RollbarToken != "")
	return &rollbarNotifier{next: next}
}

func (n *rollbarNotifier) Success(msg string) {
	n.next.Success(msg)
}

func (n *rollbarNotifier) Error(msg string, err error) {
	if core.IsServerError(err) {
		rollbar.Error(msg, err)
	}
	n.next.Error(msg, err)
}
