// Package event holds the pure helpers behind the events pages: upcoming/past
// classification, calendar links, countdowns and image fallbacks, plus the
// YAML catalog the events are read from.
package event

import (
	"slices"
	"strings"
	"time"

	"clubsite/internal/model"
)

// DefaultDuration is assumed for events without an explicit end.
const DefaultDuration = 2 * time.Hour

// effectiveEnd is End when set, Start otherwise.
func effectiveEnd(ev model.Event) time.Time {
	if ev.End != nil {
		return *ev.End
	}
	return ev.Start
}

// calendarEnd is End when set, Start+DefaultDuration otherwise.
func calendarEnd(ev model.Event) time.Time {
	if ev.End != nil {
		return *ev.End
	}
	return ev.Start.Add(DefaultDuration)
}

// IsUpcoming reports whether the event has not finished yet. An event ending
// exactly at now is still upcoming.
func IsUpcoming(ev model.Event, now time.Time) bool {
	return !effectiveEnd(ev).Before(now)
}

// IsPast is the negation of IsUpcoming.
func IsPast(ev model.Event, now time.Time) bool {
	return !IsUpcoming(ev, now)
}

// Upcoming returns the upcoming events sorted by start, earliest first.
func Upcoming(evs []model.Event, now time.Time) []model.Event {
	out := make([]model.Event, 0, len(evs))
	for _, ev := range evs {
		if IsUpcoming(ev, now) {
			out = append(out, ev)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Event) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

// Past returns the finished events, most recent first.
func Past(evs []model.Event, now time.Time) []model.Event {
	out := make([]model.Event, 0, len(evs))
	for _, ev := range evs {
		if IsPast(ev, now) {
			out = append(out, ev)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Event) int {
		return b.Start.Compare(a.Start)
	})
	return out
}

// NextUpcoming returns the upcoming event with the earliest start, or nil.
func NextUpcoming(evs []model.Event, now time.Time) *model.Event {
	up := Upcoming(evs, now)
	if len(up) == 0 {
		return nil
	}
	return &up[0]
}

// DefaultImage is used when neither the event nor a keyword rule names an image.
const DefaultImage = "/images/events/default.jpg"

type imageRule struct {
	keywords []string
	path     string
}

// imageRules are checked in order; the first match wins.
var imageRules = []imageRule{
	{keywords: []string{"graamys", "award"}, path: "/images/events/graamys.jpg"},
	{keywords: []string{"dance", "bhangra", "garba", "showcase"}, path: "/images/events/dance.jpg"},
	{keywords: []string{"sport", "football", "cricket", "basketball", "tournament"}, path: "/images/events/sports.jpg"},
	{keywords: []string{"workshop", "talk", "panel"}, path: "/images/events/workshop.jpg"},
	{keywords: []string{"social", "party", "mixer", "night"}, path: "/images/events/social.jpg"},
}

// ResolveImage picks the image shown for an event.
func ResolveImage(ev model.Event) string {
	if strings.TrimSpace(ev.Image) != "" {
		return ev.Image
	}
	title := strings.ToLower(ev.Title)
	for _, rule := range imageRules {
		for _, kw := range rule.keywords {
			if strings.Contains(title, kw) {
				return rule.path
			}
			for _, tag := range ev.Tags {
				if strings.Contains(strings.ToLower(tag), kw) {
					return rule.path
				}
			}
		}
	}
	return DefaultImage
}
