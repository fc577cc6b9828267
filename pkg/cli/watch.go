package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fmreloaded/storelint/pkg/console"
	"github.com/fmreloaded/storelint/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// watchSettleDelay coalesces the burst of filesystem events an editor
// save produces into a single re-validation.
const watchSettleDelay = 200 * time.Millisecond

// RunWatch validates once, then re-validates whenever the manifest
// changes. The watch targets the manifest's directory rather than the
// file itself because most editors replace the file on save. The loop
// runs until the process is interrupted; validation findings never stop
// it.
func RunWatch(config ValidateConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(config.StorePath)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", config.StorePath, err)
	}
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	watchLog.Printf("Watching %s for changes to %s", dir, filepath.Base(absPath))
	fmt.Fprintln(os.Stderr, console.FormatInfoMessage(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", config.StorePath)))

	return watchLoop(watcher, absPath, config)
}

// watchLoop validates once, then re-validates on each manifest event
// until the watcher's channels close.
func watchLoop(watcher *fsnotify.Watcher, absPath string, config ValidateConfig) error {
	runWatchPass(config)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !touchesManifest(event, absPath) {
				continue
			}
			watchLog.Printf("Manifest event: %s", event)
			settle(watcher.Events, absPath)
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, console.FormatProgressMessage("Manifest changed, re-validating..."))
			runWatchPass(config)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("Watch error: %v", err)))
		}
	}
}

// runWatchPass runs one validation and reports the outcome on stderr.
// Errors keep the loop alive; the next save gets a fresh run.
func runWatchPass(config ValidateConfig) {
	single := config
	single.Watch = false

	err := validateAndReport(single)
	switch {
	case err == nil:
		fmt.Fprintln(os.Stderr, console.FormatSuccessMessage("Store is valid"))
	case errors.Is(err, ErrValidationFailed):
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage("Store failed validation"))
	default:
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
	}
}

// touchesManifest reports whether a filesystem event concerns the
// watched manifest file.
func touchesManifest(event fsnotify.Event, absPath string) bool {
	if event.Name != absPath {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// settle drains follow-up events for the manifest until writes pause.
func settle(events chan fsnotify.Event, absPath string) {
	timer := time.NewTimer(watchSettleDelay)
	defer timer.Stop()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Name == absPath {
				timer.Reset(watchSettleDelay)
			}
		case <-timer.C:
			return
		}
	}
}
