package sessionstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tutorlink/tutorlink-go/core/user"
)

func testSession() user.Session {
	return user.Session{
		User:         user.User{ID: "usr-1", Email: "jane@uni.test", Role: user.RoleLecturer, FirstName: "Jane", LastName: "Doe"},
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	st, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore() failed: %v", err)
	}
	if _, ok := st.Get(); ok {
		t.Fatal("Get() ok = true for fresh store")
	}

	want := testSession()
	if err := st.Set(want); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// reopen and check the session survived
	st2, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore() reopen failed: %v", err)
	}
	got, ok := st2.Get()
	if !ok {
		t.Fatal("Get() ok = false after reopen")
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestFileStoreUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	st, _ := OpenFileStore(path)

	if err := st.Update(func(*user.Session) {}); err == nil {
		t.Error("Update() error = nil on logged-out store")
	}

	_ = st.Set(testSession())
	if err := st.Update(func(s *user.Session) { s.User.ProfileImage = "/uploads/me.png" }); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	got, _ := st.Get()
	if got.User.ProfileImage != "/uploads/me.png" {
		t.Errorf("ProfileImage = %q, want updated value", got.User.ProfileImage)
	}
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	st, _ := OpenFileStore(path)
	_ = st.Set(testSession())

	if err := st.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if _, ok := st.Get(); ok {
		t.Error("Get() ok = true after Clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file still exists after Clear")
	}

	// clearing twice is fine
	if err := st.Clear(); err != nil {
		t.Errorf("second Clear() failed: %v", err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	st, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore() failed on corrupt file: %v", err)
	}
	if _, ok := st.Get(); ok {
		t.Error("Get() ok = true for corrupt file; want logged out")
	}
}

func TestMemStore(t *testing.T) {
	st := NewMemStore()
	if _, ok := st.Get(); ok {
		t.Fatal("Get() ok = true for fresh mem store")
	}
	want := testSession()
	_ = st.Set(want)
	got, ok := st.Get()
	if !ok || got != want {
		t.Errorf("Get() = %+v, %v; want %+v, true", got, ok, want)
	}
	_ = st.Clear()
	if _, ok := st.Get(); ok {
		t.Error("Get() ok = true after Clear")
	}
}
