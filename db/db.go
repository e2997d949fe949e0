package db

import (
	"context"
	"fmt"
	"time"

	"gatherly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the MongoDB collections this service writes to. It is built
// once in main and passed to the handlers; there are no package-level
// collection globals.
type Store struct {
	Client   *mongo.Client
	Events   *mongo.Collection
	Bookings *mongo.Collection
}

func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	dbase := client.Database(database)
	return &Store{
		Client:   client,
		Events:   dbase.Collection("events"),
		Bookings: dbase.Collection("bookings"),
	}, nil
}

// EnsureIndexes creates the unique slug index (the only concurrency guard on
// event writes) and the eventid index bookings are listed by.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("events slug index: %w", err)
	}
	_, err = s.Bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "eventid", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("bookings eventid index: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// translateWriteErr maps driver failures onto the save-error taxonomy. A
// duplicate key can only come from the slug index here.
func translateWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", models.ErrDuplicateSlug, err)
	}
	return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
}

// ---------- Events ----------

func (s *Store) InsertEvent(ctx context.Context, event *models.Event) error {
	_, err := s.Events.InsertOne(ctx, event)
	return translateWriteErr(err)
}

// ReplaceEvent overwrites the stored record by eventid. The slug index still
// applies, so renaming an event onto a taken slug fails with ErrDuplicateSlug.
func (s *Store) ReplaceEvent(ctx context.Context, event *models.Event) error {
	res, err := s.Events.ReplaceOne(ctx, bson.M{"eventid": event.EventID}, event)
	if err != nil {
		return translateWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: event %s", models.ErrNotFound, event.EventID)
	}
	return nil
}

func (s *Store) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	var event models.Event
	err := s.Events.FindOne(ctx, bson.M{"slug": slug}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: event %s", models.ErrNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return &event, nil
}

func (s *Store) GetEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	err := s.Events.FindOne(ctx, bson.M{"eventid": eventID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: event %s", models.ErrNotFound, eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return &event, nil
}

// EventExists is the single read a booking save performs against the event
// store. No lock is taken; the reference is checked, not enforced afterward.
func (s *Store) EventExists(ctx context.Context, eventID string) (bool, error) {
	count, err := s.Events.CountDocuments(ctx, bson.M{"eventid": eventID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) ListEvents(ctx context.Context, page, limit int) ([]models.Event, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	skip := int64((page - 1) * limit)
	int64Limit := int64(limit)

	cursor, err := s.Events.Find(ctx, bson.M{}, &options.FindOptions{
		Skip:  &skip,
		Limit: &int64Limit,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return events, nil
}

func (s *Store) CountEvents(ctx context.Context) (int64, error) {
	count, err := s.Events.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return count, nil
}

// EventSummaries returns the card fields for the landing page, newest first.
func (s *Store) EventSummaries(ctx context.Context, limit int) ([]models.EventSummary, error) {
	if limit < 1 {
		limit = 12
	}
	int64Limit := int64(limit)
	cursor, err := s.Events.Find(ctx, bson.M{}, &options.FindOptions{
		Limit: &int64Limit,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Projection: bson.M{
			"image": 1, "title": 1, "slug": 1,
			"location": 1, "date": 1, "time": 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	summaries := []models.EventSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return summaries, nil
}

func (s *Store) SetEventImage(ctx context.Context, eventID, image string) error {
	res, err := s.Events.UpdateOne(ctx,
		bson.M{"eventid": eventID},
		bson.M{"$set": bson.M{"image": image, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: event %s", models.ErrNotFound, eventID)
	}
	return nil
}

// ---------- Bookings ----------

func (s *Store) InsertBooking(ctx context.Context, booking *models.Booking) error {
	_, err := s.Bookings.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := s.Bookings.FindOne(ctx, bson.M{"bookingid": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: booking %s", models.ErrNotFound, bookingID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return &booking, nil
}

func (s *Store) ListBookingsByEvent(ctx context.Context, eventID string) ([]models.Booking, error) {
	cursor, err := s.Bookings.Find(ctx, bson.M{"eventid": eventID}, &options.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return bookings, nil
}
