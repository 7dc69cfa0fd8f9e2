package sessionstore

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/tutorlink/tutorlink-go/core/user"
)

// memStore is an in-memory Store for tests and throwaway sessions.
type memStore struct {
	mu   sync.RWMutex
	sess user.Session
	ok   bool
}

var _ user.Store = (*memStore)(nil)

func NewMemStore() user.Store {
	return &memStore{}
}

func (st *memStore) Get() (user.Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sess, st.ok
}

func (st *memStore) Set(sess user.Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sess, st.ok = sess, true
	return nil
}

func (st *memStore) Update(fn func(*user.Session)) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.ok {
		return errors.New("no session")
	}
	fn(&st.sess)
	return nil
}

func (st *memStore) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sess, st.ok = user.Session{}, false
	return nil
}
