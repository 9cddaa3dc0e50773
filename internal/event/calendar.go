package event

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"clubsite/internal/model"
)

const (
	compactUTC     = "20060102T150405Z"
	googleCalendar = "https://calendar.google.com/calendar/render"
)

// GoogleCalendarURL builds an "add to Google Calendar" link for ev.
func GoogleCalendarURL(ev model.Event) string {
	u, _ := url.Parse(googleCalendar)
	q := u.Query()
	q.Set("action", "TEMPLATE")
	q.Set("text", ev.Title)
	q.Set("dates", ev.Start.UTC().Format(compactUTC)+"/"+calendarEnd(ev).UTC().Format(compactUTC))
	q.Set("details", ev.Description)
	q.Set("location", ev.Location)
	u.RawQuery = q.Encode()
	return u.String()
}

// ICS renders ev as an RFC 5545 calendar file with a single VEVENT.
// stamp becomes DTSTAMP.
func ICS(ev model.Event, stamp time.Time) []byte {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(fold(strings.ToValidUTF8(s, "\uFFFD")))
		b.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:-//clubsite//events//EN")
	line("CALSCALE:GREGORIAN")
	line("METHOD:PUBLISH")
	line("BEGIN:VEVENT")
	line(fmt.Sprintf("UID:%s@clubsite", ev.ID))
	line("DTSTAMP:" + stamp.UTC().Format(compactUTC))
	line("DTSTART:" + ev.Start.UTC().Format(compactUTC))
	line("DTEND:" + calendarEnd(ev).UTC().Format(compactUTC))
	line("SUMMARY:" + escapeText(ev.Title))
	if ev.Description != "" {
		line("DESCRIPTION:" + escapeText(ev.Description))
	}
	if ev.Location != "" {
		line("LOCATION:" + escapeText(ev.Location))
	}
	if len(ev.Tags) > 0 {
		tags := make([]string, len(ev.Tags))
		for i, t := range ev.Tags {
			tags[i] = escapeText(t)
		}
		line("CATEGORIES:" + strings.Join(tags, ","))
	}
	line("END:VEVENT")
	line("END:VCALENDAR")
	return []byte(b.String())
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\r", `\n`,
	"\n", `\n`,
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// fold splits content lines longer than 75 octets, never inside a UTF-8 sequence.
func fold(s string) string {
	const limit = 75
	if len(s) <= limit {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		size := len(string(r))
		if n+size > limit {
			b.WriteString("\r\n ")
			n = 1
		}
		b.WriteRune(r)
		n += size
	}
	return b.String()
}
