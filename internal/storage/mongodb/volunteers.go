package mongodb

import (
	"context"
	"errors"
	"fmt"

	"synergy/internal/models"
	"synergy/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Storage) AddVolunteer(ctx context.Context, v *models.Volunteer) error {
	const op = "storage.mongodb.AddVolunteer"

	if _, err := s.volunteers.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrVolunteerExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetVolunteer(ctx context.Context, rollNumber string) (*models.Volunteer, error) {
	const op = "storage.mongodb.GetVolunteer"

	var v models.Volunteer
	if err := s.volunteers.FindOne(ctx, bson.M{"rollNumber": rollNumber}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrVolunteerNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &v, nil
}

func (s *Storage) GetAllVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	const op = "storage.mongodb.GetAllVolunteers"

	cur, err := s.volunteers.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "added_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	volunteers := make([]models.Volunteer, 0)
	if err = cur.All(ctx, &volunteers); err != nil {
		return nil, fmt.Errorf("%s: failed to decode volunteers: %w", op, err)
	}

	return volunteers, nil
}

func (s *Storage) RemoveVolunteer(ctx context.Context, rollNumber string) error {
	const op = "storage.mongodb.RemoveVolunteer"

	res, err := s.volunteers.DeleteOne(ctx, bson.M{"rollNumber": rollNumber})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrVolunteerNotFound)
	}

	return nil
}
