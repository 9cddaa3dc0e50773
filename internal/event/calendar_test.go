package event

import (
	"net/url"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsite/internal/model"
)

func TestGoogleCalendarURL(t *testing.T) {
	start := time.Date(2026, 11, 5, 18, 30, 0, 0, time.FixedZone("BST", 3600))

	t.Run("default end is two hours", func(t *testing.T) {
		ev := model.Event{Title: "Diwali Dance Night", Description: "Food & music", Location: "Main Hall, Room 2", Start: start}

		u, err := url.Parse(GoogleCalendarURL(ev))
		require.NoError(t, err)
		assert.Equal(t, "calendar.google.com", u.Host)

		q := u.Query()
		assert.Equal(t, "TEMPLATE", q.Get("action"))
		assert.Equal(t, "Diwali Dance Night", q.Get("text"))
		assert.Equal(t, "Food & music", q.Get("details"))
		assert.Equal(t, "Main Hall, Room 2", q.Get("location"))
		assert.Equal(t, "20261105T173000Z/20261105T193000Z", q.Get("dates"))
	})

	t.Run("explicit end", func(t *testing.T) {
		end := start.Add(5 * time.Hour)
		u, err := url.Parse(GoogleCalendarURL(model.Event{Title: "x", Start: start, End: &end}))
		require.NoError(t, err)
		assert.Equal(t, "20261105T173000Z/20261105T223000Z", u.Query().Get("dates"))
	})
}

func TestICS(t *testing.T) {
	start := time.Date(2026, 11, 5, 18, 0, 0, 0, time.UTC)
	stamp := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	ev := model.Event{
		ID:          "diwali-2026",
		Title:       "Diwali Night; food, music",
		Description: "Line one\nLine two",
		Location:    "Main Hall",
		Tags:        []string{"dance", "social"},
		Start:       start,
	}

	out := string(ICS(ev, stamp))

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Contains(t, out, "UID:diwali-2026@clubsite\r\n")
	assert.Contains(t, out, "DTSTAMP:20261019T090000Z\r\n")
	assert.Contains(t, out, "DTSTART:20261105T180000Z\r\n")
	assert.Contains(t, out, "DTEND:20261105T200000Z\r\n")
	assert.Contains(t, out, `SUMMARY:Diwali Night\; food\, music`+"\r\n")
	assert.Contains(t, out, `DESCRIPTION:Line one\nLine two`+"\r\n")
	assert.Contains(t, out, "CATEGORIES:dance,social\r\n")
	assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\n")
}

func TestFold(t *testing.T) {
	short := "SUMMARY:short"
	assert.Equal(t, short, fold(short))

	long := "DESCRIPTION:" + strings.Repeat("é", 60)
	folded := fold(long)
	for _, part := range strings.Split(folded, "\r\n") {
		assert.LessOrEqual(t, len(part), 75)
	}
	assert.Equal(t, long, strings.ReplaceAll(folded, "\r\n ", ""))
}

func TestICS_SanitizesText(t *testing.T) {
	ev := model.Event{
		ID:          "bad\xffid",
		Title:       "a\xffb",
		Description: "one\rtwo\r\nthree",
		Location:    strings.Repeat("x", 80) + "\xfe",
		Start:       time.Date(2026, 11, 5, 18, 0, 0, 0, time.UTC),
	}

	out := string(ICS(ev, ev.Start))

	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "SUMMARY:a\uFFFDb\r\n")
	assert.Contains(t, out, "UID:bad\uFFFDid@clubsite\r\n")
	assert.Contains(t, out, `DESCRIPTION:one\ntwo\nthree`+"\r\n")
	assert.Contains(t, strings.ReplaceAll(out, "\r\n ", ""), "\uFFFD\r\n")
	assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\r")
}
