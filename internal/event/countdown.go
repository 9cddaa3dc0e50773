package event

import (
	"context"
	"time"
)

// Remaining is a countdown broken into whole days, hours and minutes.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Zero reports whether nothing is left.
func (r Remaining) Zero() bool {
	return r == Remaining{}
}

// Countdown returns the floored time left until target, clamped at zero.
func Countdown(target, now time.Time) Remaining {
	d := target.Sub(now)
	if d <= 0 {
		return Remaining{}
	}
	day := 24 * time.Hour
	return Remaining{
		Days:    int(d / day),
		Hours:   int(d % day / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
	}
}

// WatchCountdown calls fn with the current countdown immediately and then every
// interval, until target passes (fn then sees a zero Remaining) or ctx ends.
func WatchCountdown(ctx context.Context, target time.Time, every time.Duration, fn func(Remaining)) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		now := time.Now()
		fn(Countdown(target, now))
		if !now.Before(target) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
