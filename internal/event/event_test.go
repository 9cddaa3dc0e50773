package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsite/internal/model"
)

var now = time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time { return now.Add(d) }

func ptr(t time.Time) *time.Time { return &t }

func TestIsUpcoming(t *testing.T) {
	tests := []struct {
		name string
		ev   model.Event
		want bool
	}{
		{name: "starts later", ev: model.Event{Start: at(time.Hour)}, want: true},
		{name: "started, no end", ev: model.Event{Start: at(-time.Minute)}, want: false},
		{name: "started, ends later", ev: model.Event{Start: at(-time.Hour), End: ptr(at(time.Hour))}, want: true},
		{name: "ends exactly now", ev: model.Event{Start: at(-time.Hour), End: ptr(now)}, want: true},
		{name: "starts exactly now, no end", ev: model.Event{Start: now}, want: true},
		{name: "ended", ev: model.Event{Start: at(-2 * time.Hour), End: ptr(at(-time.Second))}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUpcoming(tt.ev, now))
			assert.Equal(t, !tt.want, IsPast(tt.ev, now))
		})
	}
}

func TestUpcomingAndPast(t *testing.T) {
	evs := []model.Event{
		{ID: "late", Start: at(72 * time.Hour)},
		{ID: "old", Start: at(-72 * time.Hour)},
		{ID: "soon", Start: at(time.Hour)},
		{ID: "recent", Start: at(-24 * time.Hour)},
		{ID: "ongoing", Start: at(-time.Hour), End: ptr(at(time.Hour))},
	}

	ids := func(evs []model.Event) []string {
		out := make([]string, 0, len(evs))
		for _, ev := range evs {
			out = append(out, ev.ID)
		}
		return out
	}

	assert.Equal(t, []string{"ongoing", "soon", "late"}, ids(Upcoming(evs, now)))
	assert.Equal(t, []string{"recent", "old"}, ids(Past(evs, now)))
}

func TestNextUpcoming(t *testing.T) {
	t.Run("none upcoming", func(t *testing.T) {
		assert.Nil(t, NextUpcoming(nil, now))
		assert.Nil(t, NextUpcoming([]model.Event{{ID: "old", Start: at(-time.Hour)}}, now))
	})

	t.Run("earliest start wins", func(t *testing.T) {
		evs := []model.Event{
			{ID: "b", Start: at(48 * time.Hour)},
			{ID: "a", Start: at(2 * time.Hour)},
			{ID: "c", Start: at(-time.Hour)},
		}
		got := NextUpcoming(evs, now)
		require.NotNil(t, got)
		assert.Equal(t, "a", got.ID)
	})
}

func TestResolveImage(t *testing.T) {
	tests := []struct {
		name string
		ev   model.Event
		want string
	}{
		{name: "explicit image", ev: model.Event{Title: "Dance Night", Image: "/img/custom.png"}, want: "/img/custom.png"},
		{name: "title keyword", ev: model.Event{Title: "Annual Bhangra Showcase"}, want: "/images/events/dance.jpg"},
		{name: "tag keyword", ev: model.Event{Title: "Saturday meetup", Tags: []string{"Football"}}, want: "/images/events/sports.jpg"},
		{name: "rule order", ev: model.Event{Title: "Graamys Awards Night"}, want: "/images/events/graamys.jpg"},
		{name: "blank image falls through", ev: model.Event{Title: "Mixer", Image: "  "}, want: "/images/events/social.jpg"},
		{name: "default", ev: model.Event{Title: "AGM"}, want: DefaultImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveImage(tt.ev))
		})
	}
}
