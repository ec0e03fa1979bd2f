// Package feed follows a text file of metric lines and emits every appended
// chunk through a session, one flush per change.
package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/statship/internal/domain"
	"github.com/bft-labs/statship/internal/ports"
	"github.com/bft-labs/statship/pkg/state"
)

// Emitter receives parsed metrics. *app.Session satisfies it.
type Emitter interface {
	Send(name, value string, kind domain.Kind) error
	Flush(ctx context.Context) error
}

// Config holds configuration for a Tailer.
type Config struct {
	// Path of the followed file.
	Path string

	// DefaultKind applies to "name value" lines without a type.
	DefaultKind domain.Kind

	// FromStart emits the existing content before following new writes.
	// Default: only data appended after start is emitted.
	FromStart bool

	// WaitTimeout bounds how long Run waits for Path to appear.
	// Zero waits until the context is canceled.
	WaitTimeout time.Duration

	// PollInterval is the first retry delay while waiting for Path.
	// Default: 200 milliseconds
	PollInterval time.Duration

	// Store persists the read position after every flush. When it holds a
	// cursor for Path, Run resumes from it instead of applying FromStart.
	// Nil disables persistence.
	Store state.Repository
}

// Tailer follows one file. It is not safe for concurrent use.
type Tailer struct {
	cfg     Config
	emitter Emitter
	logger  ports.Logger

	offset  int64
	partial []byte
	cursor  state.State
}

// New creates a tailer.
func New(cfg Config, emitter Emitter, logger ports.Logger) *Tailer {
	if abs, err := filepath.Abs(cfg.Path); err == nil {
		cfg.Path = abs
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 200 * time.Millisecond
	}
	return &Tailer{cfg: cfg, emitter: emitter, logger: logger}
}

// Run blocks until ctx is canceled or the watcher fails.
func (t *Tailer) Run(ctx context.Context) error {
	info, err := t.waitForFile(ctx)
	if err != nil {
		return err
	}
	resumed, err := t.resume(ctx, info.Size())
	if err != nil {
		return err
	}
	if !resumed && !t.cfg.FromStart {
		t.offset = info.Size()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// The directory is watched so truncation and re-creation are seen.
	if err := watcher.Add(filepath.Dir(t.cfg.Path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(t.cfg.Path), err)
	}

	t.logger.Info("following metrics file",
		ports.String("path", t.cfg.Path),
		ports.Int("offset", int(t.offset)),
	)

	if t.cfg.FromStart || resumed {
		t.drain(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != t.cfg.Path {
				continue
			}
			if event.Has(fsnotify.Create) {
				t.offset = 0
				t.partial = t.partial[:0]
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			t.drain(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			t.logger.Warn("watcher error", ports.Err(err))
		}
	}
}

// resume loads the saved cursor and positions the tailer on it.
func (t *Tailer) resume(ctx context.Context, size int64) (bool, error) {
	if t.cfg.Store == nil {
		return false, nil
	}
	cursor, err := t.cfg.Store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load cursor: %w", err)
	}
	t.cursor = cursor

	offset, ok := cursor.ResumeOffset(t.cfg.Path, size)
	if !ok {
		if !cursor.IsEmpty() {
			t.logger.Info("saved cursor does not match file, ignoring",
				ports.String("cursor_path", cursor.Path),
				ports.Int("cursor_offset", int(cursor.Offset)),
			)
		}
		return false, nil
	}
	t.offset = offset
	t.logger.Info("resuming from saved cursor", ports.Int("offset", int(offset)))
	return true, nil
}

// waitForFile retries stat with exponential backoff until Path exists.
func (t *Tailer) waitForFile(ctx context.Context) (os.FileInfo, error) {
	var info os.FileInfo
	operation := func() error {
		fi, err := os.Stat(t.cfg.Path)
		if errors.Is(err, fs.ErrNotExist) {
			t.logger.Debug("waiting for metrics file", ports.String("path", t.cfg.Path))
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		if fi.IsDir() {
			return backoff.Permanent(fmt.Errorf("%s is a directory", t.cfg.Path))
		}
		info = fi
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.cfg.PollInterval
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = t.cfg.WaitTimeout

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("wait for %s: %w", t.cfg.Path, err)
	}
	return info, nil
}

// drain emits every complete line appended since the last call and flushes.
func (t *Tailer) drain(ctx context.Context) {
	data, err := t.readNew()
	if err != nil {
		t.logger.Warn("failed to read metrics file", ports.String("path", t.cfg.Path), ports.Err(err))
		return
	}
	if len(data) == 0 {
		return
	}

	buf := append(t.partial, data...)
	last := bytes.LastIndexByte(buf, '\n')
	if last < 0 {
		t.partial = buf
		return
	}
	complete := buf[:last]
	t.partial = append([]byte(nil), buf[last+1:]...)

	sent := 0
	for _, line := range bytes.Split(complete, []byte{'\n'}) {
		m, ok, err := ParseLine(string(line), t.cfg.DefaultKind)
		if err != nil {
			t.logger.Warn("skipping line", ports.Err(err))
			continue
		}
		if !ok {
			continue
		}
		if err := t.emitter.Send(m.Name, m.Value, m.Kind); err != nil {
			t.logger.Error("failed to buffer metric", ports.String("name", m.Name), ports.Err(err))
			continue
		}
		sent++
	}

	if sent == 0 {
		return
	}
	if err := t.emitter.Flush(ctx); err != nil {
		t.logger.Warn("flush failed", ports.Err(err))
		return
	}
	t.saveCursor(ctx, sent)
}

// saveCursor records the position after the last complete line.
func (t *Tailer) saveCursor(ctx context.Context, lines int) {
	if t.cfg.Store == nil {
		return
	}
	t.cursor.Advance(t.cfg.Path, t.offset-int64(len(t.partial)), lines)
	if err := t.cfg.Store.Save(ctx, t.cursor); err != nil {
		t.logger.Warn("failed to save cursor", ports.Err(err))
	}
}

func (t *Tailer) readNew() ([]byte, error) {
	f, err := os.Open(t.cfg.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() < t.offset {
		t.logger.Info("metrics file truncated, rewinding", ports.String("path", t.cfg.Path))
		t.offset = 0
		t.partial = t.partial[:0]
	}

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(f)
	t.offset += int64(len(data))
	return data, err
}
