package events

import (
	"testing"
	"time"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *models.Event {
	return &models.Event{
		EventID:     "ev12345678901234",
		Title:       "My Cool Talk!",
		Description: "A talk about cool things",
		Overview:    "Cool things, at length",
		Image:       "/static/eventpic/banner/default.jpg",
		Venue:       "Main Hall",
		Location:    "Berlin",
		Mode:        "in-person",
		Audience:    "developers",
		Organizer:   "Go Meetup",
		Date:        "March 14, 2026",
		Time:        "1:05pm",
		Agenda:      []string{"Doors open", "Talk", "Q&A"},
		Tags:        []string{"go", "talks"},
	}
}

func TestPrepareCreate(t *testing.T) {
	now := time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)
	event := validEvent()

	require.NoError(t, Prepare(nil, event, now))

	assert.Equal(t, "my-cool-talk", event.Slug)
	assert.Equal(t, "2026-03-14", event.Date)
	assert.Equal(t, "13:05", event.Time)
	assert.Equal(t, now, event.CreatedAt)
	assert.Equal(t, now, event.UpdatedAt)
}

func TestPrepareRequiredFields(t *testing.T) {
	fields := []struct {
		name  string
		unset func(*models.Event)
	}{
		{"title", func(e *models.Event) { e.Title = "" }},
		{"description", func(e *models.Event) { e.Description = "   " }},
		{"overview", func(e *models.Event) { e.Overview = "" }},
		{"image", func(e *models.Event) { e.Image = "" }},
		{"venue", func(e *models.Event) { e.Venue = "\t" }},
		{"location", func(e *models.Event) { e.Location = "" }},
		{"mode", func(e *models.Event) { e.Mode = "" }},
		{"audience", func(e *models.Event) { e.Audience = "" }},
		{"organizer", func(e *models.Event) { e.Organizer = "  " }},
	}
	for _, f := range fields {
		event := validEvent()
		f.unset(event)
		err := Prepare(nil, event, time.Now().UTC())
		assert.ErrorIs(t, err, models.ErrValidation, "field %s", f.name)
	}
}

func TestPrepareAgendaAndTags(t *testing.T) {
	event := validEvent()
	event.Agenda = nil
	assert.ErrorIs(t, Prepare(nil, event, time.Now().UTC()), models.ErrValidation)

	event = validEvent()
	event.Agenda = []string{}
	assert.ErrorIs(t, Prepare(nil, event, time.Now().UTC()), models.ErrValidation)

	event = validEvent()
	event.Tags = nil
	require.NoError(t, Prepare(nil, event, time.Now().UTC()))
	assert.Equal(t, []string{}, event.Tags)
}

func TestPrepareEmptySlugTitle(t *testing.T) {
	event := validEvent()
	event.Title = "!!!"
	assert.ErrorIs(t, Prepare(nil, event, time.Now().UTC()), models.ErrValidation)
}

func TestPrepareBadDateAndTime(t *testing.T) {
	event := validEvent()
	event.Date = "not a date"
	assert.ErrorIs(t, Prepare(nil, event, time.Now().UTC()), models.ErrInvalidDate)

	event = validEvent()
	event.Time = "abc"
	assert.ErrorIs(t, Prepare(nil, event, time.Now().UTC()), models.ErrInvalidTime)

	event = validEvent()
	event.Time = "25:00"
	assert.ErrorIs(t, Prepare(nil, event, time.Now().UTC()), models.ErrTimeOutOfRange)
}

func TestPrepareUpdateKeepsUnchangedFields(t *testing.T) {
	created := time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)
	prev := validEvent()
	require.NoError(t, Prepare(nil, prev, created))

	// Re-save the stored record untouched: slug/date/time must come through
	// exactly as stored, with only updated_at moving.
	next := *prev
	later := created.Add(time.Hour)
	require.NoError(t, Prepare(prev, &next, later))

	assert.Equal(t, prev.Slug, next.Slug)
	assert.Equal(t, prev.Date, next.Date)
	assert.Equal(t, prev.Time, next.Time)
	assert.Equal(t, prev.EventID, next.EventID)
	assert.Equal(t, created, next.CreatedAt)
	assert.Equal(t, later, next.UpdatedAt)
	assert.True(t, !next.UpdatedAt.Before(next.CreatedAt))
}

func TestPrepareUpdateRecomputesOnChange(t *testing.T) {
	created := time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)
	prev := validEvent()
	require.NoError(t, Prepare(nil, prev, created))

	next := *prev
	next.Title = "A Whole New Name"
	next.Date = "2026/04/01"
	next.Time = "9:30"
	require.NoError(t, Prepare(prev, &next, created.Add(time.Minute)))

	assert.Equal(t, "a-whole-new-name", next.Slug)
	assert.Equal(t, "2026-04-01", next.Date)
	assert.Equal(t, "09:30", next.Time)
}

func TestPrepareUpdateFillsMissingCanonicalFields(t *testing.T) {
	created := time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)
	prev := validEvent()
	require.NoError(t, Prepare(nil, prev, created))

	next := *prev
	next.Slug = ""
	require.NoError(t, Prepare(prev, &next, created.Add(time.Minute)))
	assert.Equal(t, prev.Slug, next.Slug)
}
