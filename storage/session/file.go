package sessionstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/tutorlink/tutorlink-go/core/user"
)

// fileStore persists the session as a single JSON document so it survives
// process restarts. All mutations go through the mutex and are flushed
// atomically (write temp + rename).
type fileStore struct {
	mu   sync.RWMutex
	path string
	sess user.Session
	ok   bool
}

var _ user.Store = (*fileStore)(nil)

// OpenFileStore loads the persisted session, if any, from path.
func OpenFileStore(path string) (user.Store, error) {
	st := &fileStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return st, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading session file")
	}

	var sess user.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// corrupt session file; start logged out
		return st, nil
	}
	if !sess.IsZero() {
		st.sess, st.ok = sess, true
	}
	return st, nil
}

func (st *fileStore) Get() (user.Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sess, st.ok
}

func (st *fileStore) Set(sess user.Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sess, st.ok = sess, true
	return st.flush()
}

func (st *fileStore) Update(fn func(*user.Session)) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.ok {
		return errors.New("no session")
	}
	fn(&st.sess)
	return st.flush()
}

func (st *fileStore) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sess, st.ok = user.Session{}, false
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}

func (st *fileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	data, err := json.Marshal(st.sess)
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	tmp := st.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "writing session file")
	}
	return errors.Wrap(os.Rename(tmp, st.path), "replacing session file")
}
