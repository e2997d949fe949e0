package models

import "time"

type Event struct {
	EventID     string    `json:"eventid" bson:"eventid"`
	Title       string    `json:"title" bson:"title"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description" bson:"description"`
	Overview    string    `json:"overview" bson:"overview"`
	Image       string    `json:"image" bson:"image"`
	Venue       string    `json:"venue" bson:"venue"`
	Location    string    `json:"location" bson:"location"`
	Mode        string    `json:"mode" bson:"mode"`
	Audience    string    `json:"audience" bson:"audience"`
	Organizer   string    `json:"organizer" bson:"organizer"`
	Date        string    `json:"date" bson:"date"` // canonical YYYY-MM-DD
	Time        string    `json:"time" bson:"time"` // canonical HH:mm, 24-hour
	Agenda      []string  `json:"agenda" bson:"agenda"`
	Tags        []string  `json:"tags" bson:"tags"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// EventSummary is the card shape the landing page renders.
type EventSummary struct {
	Image    string `json:"image" bson:"image"`
	Title    string `json:"title" bson:"title"`
	Slug     string `json:"slug" bson:"slug"`
	Location string `json:"location" bson:"location"`
	Date     string `json:"date" bson:"date"`
	Time     string `json:"time" bson:"time"`
}

func (e *Event) Summary() EventSummary {
	return EventSummary{
		Image:    e.Image,
		Title:    e.Title,
		Slug:     e.Slug,
		Location: e.Location,
		Date:     e.Date,
		Time:     e.Time,
	}
}
