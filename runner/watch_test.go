package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// syncBuffer guards the reporter output against the watch goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunner_WatchPicksUpNewDirectories(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- newTestRunner().Watch(ctx, []string{dir}, NewReporter(out))
	}()

	// Give the watcher a moment to register the root before mutating it.
	time.Sleep(200 * time.Millisecond)

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))
	time.Sleep(200 * time.Millisecond)

	writeFile(t, sub, "a.swift", `final class A { class func f() {} }`)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), filepath.Join("nested", "a.swift"))
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
