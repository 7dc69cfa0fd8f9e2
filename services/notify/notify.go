// Package notifysvc delivers the user-visible outcome of every mutation:
// one success or failure notification per write, at the query-layer
// boundary.
package notifysvc

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is one user-visible toast.
type Notification struct {
	ID      string
	Kind    Kind
	Message string
	Err     error
	At      time.Time
}

func newNotification(kind Kind, msg string, err error) Notification {
	return Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: msg,
		Err:     err,
		At:      time.Now(),
	}
}

// Notifier receives mutation outcomes.
type Notifier interface {
	Success(msg string)
	Error(msg string, err error)
}
