package notifysvc

import (
	"log"
	"sync"
)

// consoleNotifier prints notifications and keeps them for inspection;
// tests assert on Sent().
type consoleNotifier struct {
	mu            sync.Mutex
	sent          []Notification
	disableOutput bool
}

var _ Notifier = (*consoleNotifier)(nil)

func NewConsoleNotifier() *consoleNotifier {
	return &consoleNotifier{}
}

// NewConsoleNotifierMock records without printing.
func NewConsoleNotifierMock() *consoleNotifier {
	return &consoleNotifier{disableOutput: true}
}

func (n *consoleNotifier) Success(msg string) {
	n.record(newNotification(KindSuccess, msg, nil))
}

func (n *consoleNotifier) Error(msg string, err error) {
	n.record(newNotification(KindError, msg, err))
}

func (n *consoleNotifier) record(notif Notification) {
	n.mu.Lock()
	n.sent = append(n.sent, notif)
	n.mu.Unlock()

	if n.disableOutput {
		return
	}
	if notif.Err != nil {
		log.Printf("%s: %s: %v", notif.Kind, notif.Message, notif.Err)
	} else {
		log.Printf("%s: %s", notif.Kind, notif.Message)
	}
}

// Sent returns a copy of everything recorded so far.
func (n *consoleNotifier) Sent() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.sent))
	copy(out, n.sent)
	return out
}

// Reset clears the record between test cases.
func (n *consoleNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = nil
}
