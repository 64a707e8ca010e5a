// Package mongodb stores events, teams and volunteers as documents. Every
// state transition that guards an invariant is expressed as one conditional
// single-document update.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"synergy/internal/config"
	"synergy/internal/models"
	"synergy/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	idxTeamName    = "team_name_unique"
	idxJoinCode    = "join_code_unique"
	idxMemberEmail = "member_email_unique"
)

var _ storage.Storage = (*Storage)(nil)

type Storage struct {
	client     *mongo.Client
	events     *mongo.Collection
	teams      *mongo.Collection
	volunteers *mongo.Collection
}

func New(ctx context.Context, cfg *config.Mongo) (*Storage, error) {
	const op = "storage.mongodb.New"

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect: %w", op, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: failed to ping: %w", op, err)
	}

	db := client.Database(cfg.Database)
	s := &Storage{
		client:     client,
		events:     db.Collection("events"),
		teams:      db.Collection("teams"),
		volunteers: db.Collection("volunteers"),
	}

	if err = s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	unique := func(name string) *options.IndexOptions {
		return options.Index().SetUnique(true).SetName(name)
	}

	if _, err := s.events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "event_id", Value: 1}},
		Options: unique("event_id_unique"),
	}); err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}

	_, err := s.teams.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "team_id", Value: 1}}, Options: unique("team_id_unique")},
		{Keys: bson.D{{Key: "qr_id", Value: 1}}, Options: unique("qr_id_unique")},
		{Keys: bson.D{{Key: "team_name", Value: 1}}, Options: unique(idxTeamName)},
		{Keys: bson.D{{Key: "join_code", Value: 1}}, Options: unique(idxJoinCode)},
		{
			// one team per identity across documents; teams without members are not indexed
			Keys: bson.D{{Key: "members.email", Value: 1}},
			Options: unique(idxMemberEmail).
				SetPartialFilterExpression(bson.M{"members.email": bson.M{"$exists": true}}),
		},
		{Keys: bson.D{{Key: "points", Value: -1}, {Key: "team_name", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create team indexes: %w", err)
	}

	if _, err = s.volunteers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "rollNumber", Value: 1}},
		Options: unique("roll_number_unique"),
	}); err != nil {
		return fmt.Errorf("failed to create volunteer indexes: %w", err)
	}

	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Close() error {
	return s.client.Disconnect(context.Background())
}

func duplicateOn(err error, index string) bool {
	return mongo.IsDuplicateKeyError(err) && strings.Contains(err.Error(), index)
}

func (s *Storage) CreateEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.mongodb.CreateEvent"

	if _, err := s.events.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	const op = "storage.mongodb.GetEvent"

	var event models.Event
	err := s.events.FindOne(ctx, bson.M{"event_id": eventID}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.mongodb.GetAllEvents"

	cur, err := s.events.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events := make([]models.Event, 0)
	if err = cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("%s: failed to decode events: %w", op, err)
	}

	return events, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, eventID string, upd models.EventUpdate) (*models.Event, error) {
	const op = "storage.mongodb.UpdateEvent"

	set := bson.M{
		"updated_at": upd.UpdatedAt,
		"updated_by": upd.UpdatedBy,
	}
	if upd.Name != nil {
		set["event_name"] = *upd.Name
	}
	if upd.Points != nil {
		set["points"] = *upd.Points
	}
	if upd.Expired != nil {
		set["expired"] = *upd.Expired
	}
	if upd.SecretCode != nil {
		set["secret_code"] = *upd.SecretCode
	}

	var event models.Event
	err := s.events.FindOneAndUpdate(ctx,
		bson.M{"event_id": eventID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, eventID string) error {
	const op = "storage.mongodb.DeleteEvent"

	res, err := s.events.DeleteOne(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	return nil
}

func (s *Storage) IncrementParticipants(ctx context.Context, eventID string) error {
	const op = "storage.mongodb.IncrementParticipants"

	res, err := s.events.UpdateOne(ctx,
		bson.M{"event_id": eventID},
		bson.M{"$inc": bson.M{"participants": 1}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	return nil
}
