package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestKeyHasPrefix(t *testing.T) {
	tests := []struct {
		name   string
		key    Key
		prefix Key
		want   bool
	}{
		{name: "exact", key: NewKey("courses", "my-courses"), prefix: NewKey("courses", "my-courses"), want: true},
		{name: "parent", key: NewKey("courses", "my-courses", "true"), prefix: NewKey("courses"), want: true},
		{name: "empty prefix", key: NewKey("courses"), prefix: NewKey(), want: true},
		{name: "longer prefix", key: NewKey("courses"), prefix: NewKey("courses", "detail"), want: false},
		{name: "sibling", key: NewKey("classes", "my-classes"), prefix: NewKey("courses"), want: false},
		{name: "segment-wise not string-wise", key: NewKey("coursesX"), prefix: NewKey("courses"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.HasPrefix(tt.prefix); got != tt.want {
				t.Errorf("HasPrefix() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFetchCachesUntilStale(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c := New(5 * time.Minute)
	c.nowFunc = func() time.Time { return now }

	var calls int32
	fn := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	}
	key := NewKey("courses", "my-courses")

	for i := 0; i < 3; i++ {
		v, err := Fetch(context.Background(), c, key, fn)
		if err != nil || v != "value" {
			t.Fatalf("Fetch() = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Fatalf("fetch fn ran %d times while fresh, want 1", calls)
	}

	// cross the stale boundary
	now = now.Add(5*time.Minute + time.Second)
	if _, err := Fetch(context.Background(), c, key, fn); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("fetch fn ran %d times after staleness, want 2", calls)
	}
}

func TestFetchDeduplicatesConcurrent(t *testing.T) {
	c := New(5 * time.Minute)
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	fn := func(context.Context) (int, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
		return 42, nil
	}
	key := NewKey("enrollments", "pending-count")

	const n = 8
	var wg sync.WaitGroup
	results := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Fetch(context.Background(), c, key, fn)
			if err != nil {
				t.Error(err)
			}
			results[i] = v
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Errorf("fetch fn ran %d times for %d concurrent callers, want 1", calls, n)
	}
	for i, v := range results {
		if v != 42 {
			t.Errorf("caller %d got %d, want 42", i, v)
		}
	}
}

func TestFetchErrorNotCached(t *testing.T) {
	c := New(5 * time.Minute)
	var calls int32
	fn := func(context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", errors.New("network down")
		}
		return "recovered", nil
	}
	key := NewKey("dashboard", "lecturer")

	if _, err := Fetch(context.Background(), c, key, fn); err == nil {
		t.Fatal("Fetch() error = nil, want error")
	}
	v, err := Fetch(context.Background(), c, key, fn)
	if err != nil || v != "recovered" {
		t.Errorf("Fetch() after error = %q, %v; want recovered", v, err)
	}
}

func TestInvalidatePrefixes(t *testing.T) {
	c := New(5 * time.Minute)
	seed := func(key Key) {
		_, _ = Fetch(context.Background(), c, key, func(context.Context) (string, error) { return key.String(), nil })
	}
	seed(NewKey("courses", "my-courses", "false"))
	seed(NewKey("courses", "detail", "crs-1"))
	seed(NewKey("classes", "my-classes"))
	seed(NewKey("dashboard", "lecturer"))

	c.Invalidate(NewKey("courses"), NewKey("dashboard"))

	if _, ok := c.Peek(NewKey("courses", "my-courses", "false")); ok {
		t.Error("courses list survived invalidation")
	}
	if _, ok := c.Peek(NewKey("courses", "detail", "crs-1")); ok {
		t.Error("course detail survived invalidation")
	}
	if _, ok := c.Peek(NewKey("dashboard", "lecturer")); ok {
		t.Error("dashboard survived invalidation")
	}
	if _, ok := c.Peek(NewKey("classes", "my-classes")); !ok {
		t.Error("unrelated key was invalidated")
	}
}

func TestPeekServesStale(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c := New(time.Minute)
	c.nowFunc = func() time.Time { return now }

	key := NewKey("student", "profile")
	c.store(key, "old value")
	now = now.Add(time.Hour)

	if _, ok := c.lookup(key); ok {
		t.Error("lookup() served a stale entry")
	}
	v, ok := c.Peek(key)
	if !ok || v != "old value" {
		t.Errorf("Peek() = %v, %v; want stale value", v, ok)
	}
}

func TestClear(t *testing.T) {
	c := New(time.Minute)
	c.store(NewKey("groups", "mine"), "g")
	c.Clear()
	if _, ok := c.Peek(NewKey("groups", "mine")); ok {
		t.Error("entry survived Clear")
	}
}
