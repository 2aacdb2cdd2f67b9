package site

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Store holds the current site content and can reload it when the
// configuration file changes.
type Store struct {
	fs   afero.Fs
	path string
	cur  atomic.Pointer[Site]

	mu            sync.Mutex
	watcher       *fsnotify.Watcher
	watcherActive bool
}

// NewStore loads the site at path. An empty path uses the embedded content.
func NewStore(fs afero.Fs, path string) (*Store, error) {
	s := &Store{fs: fs, path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the current site content.
func (s *Store) Get() *Site {
	return s.cur.Load()
}

// Reload re-reads the configuration. On failure the previous content is kept.
func (s *Store) Reload() error {
	next, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.cur.Store(next)
	return nil
}

// Watch reloads the content whenever the configuration file is written. It
// returns immediately; watching stops when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		slog.Debug("Site uses embedded content, skipping watcher setup")
		return nil
	}
	if s.watcherActive {
		slog.Debug("Site watcher already active")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	// Editors replace files on save, so watch the directory rather than the file.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.path, err)
	}

	s.watcher = watcher
	s.watcherActive = true
	go s.watchFiles(ctx, watcher)

	slog.Debug("Started file system watcher for site content", "path", s.path)
	return nil
}

func (s *Store) watchFiles(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		s.mu.Lock()
		watcher.Close()
		s.watcher = nil
		s.watcherActive = false
		s.mu.Unlock()
		slog.Info("Site watcher stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			s.handleFileEvent(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Site watcher error", "error", err)
		}
	}
}

func (s *Store) handleFileEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(s.path) {
		return
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}
	if err := s.Reload(); err != nil {
		slog.Error("Failed to reload site content, keeping previous version", "path", s.path, "error", err)
		return
	}
	slog.Info("Reloaded site content", "path", s.path)
}
