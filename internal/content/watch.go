package content

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DebounceDelay batches the burst of events editors produce for one save.
const DebounceDelay = 150 * time.Millisecond

// ErrNoFile is returned by Watch when the store serves the embedded default.
var ErrNoFile = errors.New("content: no file to watch")

// Watch reloads the content file whenever it changes and hands the result to fn.
// Reload errors are passed to fn too; callers keep their last good content.
// Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors which
// replace the file on save keep triggering reloads.
func (s *Store) Watch(ctx context.Context, log *zap.Logger, fn func(*Content, error)) error {
	if s.path == "" {
		return ErrNoFile
	}
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Debug("watching content", zap.String("path", s.path))

	timer := time.NewTimer(DebounceDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != s.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("content changed", zap.String("op", ev.Op.String()))
			timer.Reset(DebounceDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("content watcher error", zap.Error(err))

		case <-timer.C:
			c, err := s.Load()
			if err != nil {
				log.Warn("content reload failed, keeping previous", zap.Error(err))
			} else {
				log.Info("content reloaded", zap.Int("cards", len(c.Cards)))
			}
			fn(c, err)
		}
	}
}
