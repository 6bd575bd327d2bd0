package broadcast

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/tabstash/internal/application/port"
	"github.com/bnema/tabstash/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// FileSignal broadcasts across processes by rewriting a small signal file.
// Watchers learn about changes through fsnotify; nothing is acknowledged.
type FileSignal struct {
	path string
	now  func() time.Time
	// origin is written next to the tag so a process can ignore its own signals.
	origin int
}

var _ port.ChangeNotifier = (*FileSignal)(nil)

// NewFileSignal creates a notifier backed by path.
func NewFileSignal(path string) *FileSignal {
	return &FileSignal{path: path, now: time.Now, origin: os.Getpid()}
}

// Path returns the signal file location.
func (f *FileSignal) Path() string {
	return f.path
}

// Publish replaces the signal file with the tag and a timestamp. The line is
// written to a temporary file and renamed over the signal file, so readers
// see either the previous line or the new one.
func (f *FileSignal) Publish(_ context.Context, signal port.ChangeSignal) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create signal directory: %w", err)
	}
	line := fmt.Sprintf("%s %s %d\n", signal, f.now().UTC().Format(time.RFC3339Nano), f.origin)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("create signal temp file: %w", err)
	}
	_, err = tmp.WriteString(line)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), f.path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write signal file: %w", err)
	}
	return nil
}

// Watch calls fn for every write to the signal file until ctx is done.
// The parent directory is watched so the file may not exist yet.
func (f *FileSignal) Watch(ctx context.Context, fn func(port.ChangeSignal)) error {
	return f.watch(ctx, false, fn)
}

// WatchOthers is Watch minus the signals this FileSignal published itself.
func (f *FileSignal) WatchOthers(ctx context.Context, fn func(port.ChangeSignal)) error {
	return f.watch(ctx, true, fn)
}

func (f *FileSignal) watch(ctx context.Context, skipOwn bool, fn func(port.ChangeSignal)) error {
	log := logging.FromContext(ctx)

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create signal directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(f.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			signal, origin := f.readSignal()
			if skipOwn && origin == f.origin {
				continue
			}
			log.Debug().Str("op", ev.Op.String()).Int("origin", origin).Msg("change signal file touched")
			fn(signal)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(werr).Msg("signal watcher error")
		}
	}
}

// readSignal returns the tag and writer pid in the file. An empty or
// half-written file reads as the tab groups signal from an unknown writer.
func (f *FileSignal) readSignal() (port.ChangeSignal, int) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return port.SignalTabGroupsChanged, 0
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return port.SignalTabGroupsChanged, 0
	}
	origin := 0
	if len(fields) >= 3 {
		origin, _ = strconv.Atoi(fields[2])
	}
	return port.ChangeSignal(fields[0]), origin
}
