package event

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const sampleCatalog = `
events:
  - id: diwali-2026
    title: Diwali Dance Night
    description: Food, music and dance
    start: 2026-11-05T18:00:00Z
    end: 2026-11-05T23:00:00Z
    location: Main Hall
    tags: [dance, social]
    links:
      - label: Tickets
        url: https://example.com/tickets
  - id: futsal-cup
    title: Futsal Cup
    start: 2026-12-01T10:00:00Z
    tags: [sport]
`

func writeCatalog(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestParse(t *testing.T) {
	evs, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, evs, 2)

	assert.Equal(t, "diwali-2026", evs[0].ID)
	require.NotNil(t, evs[0].End)
	assert.Equal(t, time.Date(2026, 11, 5, 23, 0, 0, 0, time.UTC), evs[0].End.UTC())
	assert.Equal(t, []string{"dance", "social"}, evs[0].Tags)
	assert.Equal(t, "Tickets", evs[0].Links[0].Label)
	assert.Nil(t, evs[1].End)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "missing id", body: "events:\n  - title: x\n    start: 2026-01-01T00:00:00Z\n", want: ErrEventIDRequired},
		{name: "duplicate id", body: "events:\n  - {id: a, title: x, start: 2026-01-01T00:00:00Z}\n  - {id: a, title: y, start: 2026-01-02T00:00:00Z}\n", want: ErrDuplicateEvent},
		{name: "missing start", body: "events:\n  - {id: a, title: x}\n", want: ErrInvalidEvent},
		{name: "end before start", body: "events:\n  - {id: a, title: x, start: 2026-01-02T00:00:00Z, end: 2026-01-01T00:00:00Z}\n", want: ErrInvalidEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("events: [::"))
	assert.ErrorContains(t, err, "decode catalog")
}

func TestCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.yaml")
	writeCatalog(t, path, sampleCatalog)

	c, err := NewCatalog(path, zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, c.All(), 2)
	ev, ok := c.Get("futsal-cup")
	assert.True(t, ok)
	assert.Equal(t, "Futsal Cup", ev.Title)
	_, ok = c.Get("missing")
	assert.False(t, ok)

	all := c.All()
	all[0].Title = "mutated"
	ev, _ = c.Get("diwali-2026")
	assert.Equal(t, "Diwali Dance Night", ev.Title)

	t.Run("bad reload keeps previous events", func(t *testing.T) {
		writeCatalog(t, path, "events:\n  - {title: no id}\n")
		assert.Error(t, c.Reload())
		assert.Len(t, c.All(), 2)
	})
}

func TestCatalog_MissingFile(t *testing.T) {
	c, err := NewCatalog(filepath.Join(t.TempDir(), "nope.yaml"), zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, c.All())
	assert.Empty(t, c.All())
}

func TestCatalog_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "events.yaml")
	writeCatalog(t, path, sampleCatalog)

	c, err := NewCatalog(path, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, c.Watch(ctx))
	}()

	// Give the watcher time to register before editing.
	time.Sleep(100 * time.Millisecond)
	writeCatalog(t, path, "events:\n  - {id: only, title: Only One, start: 2027-01-01T00:00:00Z}\n")

	assert.Eventually(t, func() bool {
		_, ok := c.Get("only")
		return ok && len(c.All()) == 1
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	wg.Wait()
}

func TestCatalog_WatchMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.WarnLevel)
	c, err := NewCatalog(filepath.Join(t.TempDir(), "not-yet", "events.yaml"), zap.New(core))
	require.NoError(t, err)
	assert.Empty(t, c.All())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Watch(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("Watch returned before cancel: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
	assert.Equal(t, 1, logs.FilterMessage("catalog directory missing, reload disabled").Len())
}
