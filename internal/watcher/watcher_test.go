package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/irdiff/internal/common/file"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Relevant(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "k.ttir")
	require.NoError(t, os.WriteFile(input, []byte("a\n"), 0644))
	watched := filepath.Join(dir, "dumps")
	require.NoError(t, os.Mkdir(watched, 0755))

	w, err := New(zerolog.Nop(), []string{input, watched}, file.DefaultIRExtensions, 0)
	require.NoError(t, err)
	defer w.Close()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"watched file write", fsnotify.Event{Name: input, Op: fsnotify.Write}, true},
		{"watched file chmod", fsnotify.Event{Name: input, Op: fsnotify.Chmod}, false},
		{"sibling of watched file", fsnotify.Event{Name: filepath.Join(dir, "other.ttir"), Op: fsnotify.Write}, false},
		{"IR file in watched dir", fsnotify.Event{Name: filepath.Join(watched, "m.ptx"), Op: fsnotify.Create}, true},
		{"other file in watched dir", fsnotify.Event{Name: filepath.Join(watched, "notes.txt"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}

func TestWatcher_MissingPath(t *testing.T) {
	_, err := New(zerolog.Nop(), []string{filepath.Join(t.TempDir(), "missing.ttir")}, file.DefaultIRExtensions, 0)
	assert.Error(t, err)
}

func TestWatcher_RunTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "k.ttir")
	require.NoError(t, os.WriteFile(input, []byte("a\n"), 0644))

	w, err := New(zerolog.Nop(), []string{input}, file.DefaultIRExtensions, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			select {
			case changed <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	require.NoError(t, os.WriteFile(input, []byte("b\n"), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
