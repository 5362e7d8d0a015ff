package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/ruleset"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// watchFile emits the contents of path whenever it is written or replaced,
// until ctx is done. The parent directory is watched so that editors saving
// through a rename keep triggering updates.
func watchFile(ctx context.Context, path string) (<-chan []byte, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to watch file %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory of %s: %w", path, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				data, err := os.ReadFile(target)
				if err != nil {
					continue
				}
				select {
				case out <- data:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}

// watchRules re-applies every rule file version received on changes to f and
// prints a new report. Rule files that fail to parse or compile are logged and
// the previous bindings stay active. The form is only touched from this
// goroutine.
func watchRules(log *slog.Logger, path string, changes <-chan []byte, f *form.Form, w io.Writer) error {
	log.Info("watching rule file", logger.File(path))

	for data := range changes {
		doc, err := ruleset.Parse(data)
		if err != nil {
			log.Warn("ignoring invalid rule file", logger.File(path), logger.Error(err))
			continue
		}
		if err := f.SetRules(doc.Bindings()); err != nil {
			if !validator.IsConfigError(err) {
				log.Warn("rule file rejected", logger.File(path), logger.Error(err))
				continue
			}
			log.Warn("rule file applied with configuration errors", logger.File(path), logger.Error(err))
		}
		if err := writeReport(w, f); err != nil {
			return err
		}
	}
	return nil
}
