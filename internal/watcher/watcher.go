// Package watcher ingests PDFs dropped into an inbox directory. Files are
// expected at <inbox>/<board>/<class>/<subject>/<chapter>/name.pdf; the path
// segments supply the chapter metadata. Consumed files are removed from the
// inbox once a session starts.
package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/studynova/ingest/internal/config"
	"github.com/studynova/ingest/internal/content"
	"github.com/studynova/ingest/internal/lifecycle"
	"github.com/studynova/ingest/internal/sessions"
)

// System watches the inbox directory and starts ingestion sessions.
type System interface {
	Start(lc *lifecycle.Coordinator) error
}

type watcher struct {
	cfg      config.WatcherConfig
	sessions sessions.System
	logger   *slog.Logger
}

// New creates an inbox watcher. When disabled in config, Start is a no-op.
func New(cfg config.WatcherConfig, sessions sessions.System, logger *slog.Logger) System {
	return &watcher{
		cfg:      cfg,
		sessions: sessions,
		logger:   logger.With("system", "watcher"),
	}
}

func (w *watcher) Start(lc *lifecycle.Coordinator) error {
	if !w.cfg.Enabled {
		return nil
	}

	if err := os.MkdirAll(w.cfg.InboxPath, 0755); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := addRecursive(fsw, w.cfg.InboxPath); err != nil {
		fsw.Close()
		return err
	}

	lc.OnStartup(func() {
		w.logger.Info("watching inbox", "path", w.cfg.InboxPath)
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := fsw.Close(); err != nil {
			w.logger.Error("failed to close watcher", "error", err)
		}
	})

	go w.run(lc.Context(), fsw)

	return nil
}

func (w *watcher) run(ctx context.Context, fsw *fsnotify.Watcher) {
	settle := w.cfg.SettleDelayDuration()
	pending := make(map[string]*time.Timer)
	settled := make(chan string)

	for {
		select {
		case <-ctx.Done():
			return

		case path := <-settled:
			delete(pending, path)
			w.ingest(ctx, path)

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addRecursive(fsw, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			}

			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".pdf") {
				continue
			}

			// Reset the settle timer on every write so partially copied
			// files are not picked up mid-transfer.
			path := event.Name
			if timer, ok := pending[path]; ok {
				timer.Stop()
			}
			pending[path] = time.AfterFunc(settle, func() {
				select {
				case settled <- path:
				case <-ctx.Done():
				}
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

func (w *watcher) ingest(ctx context.Context, path string) {
	meta, ok := w.metadataFromPath(path)
	if !ok {
		w.logger.Warn("skipping file outside board/class/subject/chapter layout", "path", path)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		w.logger.Error("failed to read inbox file", "path", path, "error", err)
		return
	}

	session, err := w.sessions.Start(ctx, sessions.StartCommand{
		Filename:    filepath.Base(path),
		ContentType: "application/pdf",
		Metadata:    meta,
		Data:        data,
	})
	if err != nil {
		w.logger.Error("failed to start session from inbox", "path", path, "error", err)
		return
	}

	w.logger.Info("inbox file accepted", "path", path, "session_id", session.ID)

	if err := os.Remove(path); err != nil {
		w.logger.Warn("failed to remove consumed inbox file", "path", path, "error", err)
	}
}

// metadataFromPath maps the four directory segments below the inbox root to
// chapter metadata.
func (w *watcher) metadataFromPath(path string) (content.Metadata, bool) {
	rel, err := filepath.Rel(w.cfg.InboxPath, path)
	if err != nil {
		return content.Metadata{}, false
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 5 {
		return content.Metadata{}, false
	}

	return content.Metadata{
		Board:   parts[0],
		Class:   parts[1],
		Subject: parts[2],
		Chapter: parts[3],
	}, true
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}
