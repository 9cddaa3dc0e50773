package service

import (
	"errors"
	"time"

	"clubsite/internal/event"
	"clubsite/internal/model"
)

var ErrInvalidFilter = errors.New("invalid event filter")

// Filters accepted by EventService.List.
const (
	FilterAll      = "all"
	FilterUpcoming = "upcoming"
	FilterPast     = "past"
)

// EventView is an event as served to the site, with derived fields filled in.
type EventView struct {
	model.Event
	Image       string `json:"image"`
	CalendarURL string `json:"calendarUrl"`
	Upcoming    bool   `json:"upcoming"`
}

// NextEvent is the payload of the "next event" banner.
type NextEvent struct {
	Event     *EventView       `json:"event"`
	Countdown *event.Remaining `json:"countdown"`
}

// EventSource is the read side of the event catalog.
type EventSource interface {
	All() []model.Event
	Get(id string) (model.Event, bool)
}

// EventService answers the events pages from the catalog.
type EventService interface {
	List(filter string) ([]EventView, error)
	Get(id string) (*EventView, error)
	Next() NextEvent
	ICS(id string) ([]byte, error)
}

type eventService struct {
	src EventSource
	now func() time.Time
}

func NewEventService(src EventSource) EventService {
	return &eventService{src: src, now: time.Now}
}

func (s *eventService) view(ev model.Event, now time.Time) EventView {
	return EventView{
		Event:       ev,
		Image:       event.ResolveImage(ev),
		CalendarURL: event.GoogleCalendarURL(ev),
		Upcoming:    event.IsUpcoming(ev, now),
	}
}

func (s *eventService) List(filter string) ([]EventView, error) {
	now := s.now()
	all := s.src.All()

	var evs []model.Event
	switch filter {
	case "", FilterAll:
		evs = append(event.Upcoming(all, now), event.Past(all, now)...)
	case FilterUpcoming:
		evs = event.Upcoming(all, now)
	case FilterPast:
		evs = event.Past(all, now)
	default:
		return nil, ErrInvalidFilter
	}

	out := make([]EventView, 0, len(evs))
	for _, ev := range evs {
		out = append(out, s.view(ev, now))
	}
	return out, nil
}

func (s *eventService) Get(id string) (*EventView, error) {
	ev, ok := s.src.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	v := s.view(ev, s.now())
	return &v, nil
}

func (s *eventService) Next() NextEvent {
	now := s.now()
	next := event.NextUpcoming(s.src.All(), now)
	if next == nil {
		return NextEvent{}
	}
	v := s.view(*next, now)
	left := event.Countdown(next.Start, now)
	return NextEvent{Event: &v, Countdown: &left}
}

func (s *eventService) ICS(id string) ([]byte, error) {
	ev, ok := s.src.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return event.ICS(ev, s.now()), nil
}
