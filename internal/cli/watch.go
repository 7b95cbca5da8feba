package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay lets editors finish writing before the file is read back.
const settleDelay = 100 * time.Millisecond

// RunWatch runs m once, then re-runs it every time its definition file
// changes. The session reuses the engine when the topology is unchanged;
// an edited input or acceptance mode alone still triggers a run.
// It returns when ctx is cancelled.
func RunWatch(ctx context.Context, m *Machine, pr *Printer, out io.Writer, logger *slog.Logger) error {
	target, err := filepath.Abs(m.Path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files by rename, so watch the directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	logger.Info("Starting Watcher", "path", target)
	printSystemMessage(out, "Watching '%s'.", m.Path)
	runOnce(m, pr, out)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watcher")
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "err", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, target) {
				continue
			}
			logger.Debug("Change detected", "event", event.String())
			time.Sleep(settleDelay)
			drain(watcher.Events)

			r, err := m.Reload()
			if err != nil {
				logger.Error("Reload failed", "err", err)
				printSystemMessage(out, "Reload failed: %v", err)
				continue
			}
			pr.Reload(r)
			if r.Changed() {
				runOnce(m, pr, out)
			}
		}
	}
}

func relevant(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// drain discards the burst of events a single save produces.
func drain(ch <-chan fsnotify.Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

func runOnce(m *Machine, pr *Printer, out io.Writer) {
	res, err := m.Execute(0)
	if err != nil {
		printSystemMessage(out, "Run failed: %v", err)
		return
	}
	pr.Result(res)
}
