package event

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"clubsite/internal/model"
)

var (
	ErrEventIDRequired = errors.New("event id is required")
	ErrDuplicateEvent  = errors.New("duplicate event id")
	ErrInvalidEvent    = errors.New("invalid event")
)

type catalogFile struct {
	Events []model.Event `yaml:"events"`
}

// Catalog is the in-memory event list loaded from a YAML file.
// Reads are safe while Watch reloads it in the background.
type Catalog struct {
	path string
	log  *zap.Logger

	mu     sync.RWMutex
	events []model.Event
}

// NewCatalog loads path. A missing file yields an empty catalog so the site can
// run before any events are published.
func NewCatalog(path string, log *zap.Logger) (*Catalog, error) {
	c := &Catalog{path: path, log: log.With(zap.String("component", "event_catalog"))}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) ([]model.Event, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Events))
	for i, ev := range f.Events {
		if ev.ID == "" {
			return nil, fmt.Errorf("event #%d: %w", i+1, ErrEventIDRequired)
		}
		if _, dup := seen[ev.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEvent, ev.ID)
		}
		seen[ev.ID] = struct{}{}
		if ev.Title == "" || ev.Start.IsZero() {
			return nil, fmt.Errorf("%w: %s needs a title and a start", ErrInvalidEvent, ev.ID)
		}
		if ev.End != nil && ev.End.Before(ev.Start) {
			return nil, fmt.Errorf("%w: %s ends before it starts", ErrInvalidEvent, ev.ID)
		}
	}
	if f.Events == nil {
		f.Events = []model.Event{}
	}
	return f.Events, nil
}

// Reload re-reads the file. On error the previous events are kept.
func (c *Catalog) Reload() error {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		c.log.Warn("catalog file missing, serving no events", zap.String("path", c.path))
		c.set([]model.Event{})
		return nil
	}
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	evs, err := Parse(data)
	if err != nil {
		return err
	}
	c.set(evs)
	c.log.Info("catalog loaded", zap.String("path", c.path), zap.Int("events", len(evs)))
	return nil
}

func (c *Catalog) set(evs []model.Event) {
	c.mu.Lock()
	c.events = evs
	c.mu.Unlock()
}

// All returns a copy of every event in file order.
func (c *Catalog) All() []model.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.events)
}

// Get looks an event up by id.
func (c *Catalog) Get(id string) (model.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ev := range c.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.Event{}, false
}

// Watch reloads the catalog whenever its file changes, until ctx is done.
// The parent directory is watched so editors that replace the file are seen.
// If that directory does not exist, Watch only waits for ctx.
func (c *Catalog) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(c.path)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		c.log.Warn("catalog directory missing, reload disabled", zap.String("dir", dir))
		<-ctx.Done()
		return nil
	}
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	name := filepath.Clean(c.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if err := c.Reload(); err != nil {
				c.log.Error("catalog reload failed", zap.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.log.Error("catalog watcher error", zap.Error(err))
		}
	}
}
