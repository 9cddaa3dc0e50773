package model

import "time"

// Link is an external link attached to an event (tickets, RSVP form, socials).
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Event is one entry of the club's event catalog.
// End is optional; consumers treat a missing end as Start.
type Event struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Start       time.Time  `json:"start" yaml:"start"`
	End         *time.Time `json:"end,omitempty" yaml:"end,omitempty"`
	Location    string     `json:"location" yaml:"location"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Image       string     `json:"image,omitempty" yaml:"image,omitempty"`
	Links       []Link     `json:"links,omitempty" yaml:"links,omitempty"`
}
