package events

import (
	"fmt"
	"strings"
	"time"

	"gatherly/canon"
	"gatherly/models"
)

// Prepare validates and canonicalizes next in place, immediately before the
// store write. prev is the currently stored record, nil on create. Any error
// aborts the whole save; on success next carries canonical slug/date/time and
// fresh timestamps.
//
// slug, date and time are only recomputed when their source changed or the
// canonical value is absent, so re-saving an untouched record leaves them
// exactly as stored.
func Prepare(prev, next *models.Event, now time.Time) error {
	required := []struct {
		name  string
		value *string
	}{
		{"title", &next.Title},
		{"description", &next.Description},
		{"overview", &next.Overview},
		{"image", &next.Image},
		{"venue", &next.Venue},
		{"location", &next.Location},
		{"mode", &next.Mode},
		{"audience", &next.Audience},
		{"organizer", &next.Organizer},
	}
	for _, field := range required {
		*field.value = strings.TrimSpace(*field.value)
		if *field.value == "" {
			return fmt.Errorf("%w: missing %s", models.ErrValidation, field.name)
		}
	}

	if len(next.Agenda) == 0 {
		return fmt.Errorf("%w: agenda must not be empty", models.ErrValidation)
	}
	if next.Tags == nil {
		next.Tags = []string{}
	}

	if prev == nil || prev.Title != next.Title || next.Slug == "" {
		next.Slug = canon.Slugify(next.Title)
		if next.Slug == "" {
			return fmt.Errorf("%w: title yields an empty slug", models.ErrValidation)
		}
	}

	if prev == nil || prev.Date != next.Date || next.Date == "" {
		date, err := canon.NormalizeDate(next.Date)
		if err != nil {
			return err
		}
		next.Date = date
	}

	if prev == nil || prev.Time != next.Time || next.Time == "" {
		t, err := canon.NormalizeTime(next.Time)
		if err != nil {
			return err
		}
		next.Time = t
	}

	if prev == nil {
		next.CreatedAt = now
	} else {
		next.EventID = prev.EventID
		next.CreatedAt = prev.CreatedAt
	}
	next.UpdatedAt = now

	return nil
}
