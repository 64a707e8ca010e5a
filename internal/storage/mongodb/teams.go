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

var returnAfter = options.FindOneAndUpdate().SetReturnDocument(options.After)

func normalizeTeam(team *models.Team) {
	if team.Members == nil {
		team.Members = []models.Member{}
	}
	if team.EventsParticipated == nil {
		team.EventsParticipated = []string{}
	}
}

func (s *Storage) CreateTeam(ctx context.Context, team *models.Team) error {
	const op = "storage.mongodb.CreateTeam"

	normalizeTeam(team)

	_, err := s.teams.InsertOne(ctx, team)
	if err != nil {
		switch {
		case duplicateOn(err, idxTeamName):
			return fmt.Errorf("%s: %w", op, storage.ErrTeamExists)
		case duplicateOn(err, idxJoinCode):
			return fmt.Errorf("%s: %w", op, storage.ErrJoinCodeTaken)
		case duplicateOn(err, idxMemberEmail):
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyOnTeam)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) findTeam(ctx context.Context, filter bson.M) (*models.Team, error) {
	var team models.Team
	if err := s.teams.FindOne(ctx, filter).Decode(&team); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrTeamNotFound
		}
		return nil, err
	}

	normalizeTeam(&team)

	return &team, nil
}

func (s *Storage) GetTeamByRef(ctx context.Context, ref string) (*models.Team, error) {
	const op = "storage.mongodb.GetTeamByRef"

	team, err := s.findTeam(ctx, bson.M{"$or": bson.A{
		bson.M{"team_id": ref},
		bson.M{"qr_id": ref},
	}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return team, nil
}

func (s *Storage) GetTeamByMember(ctx context.Context, email string) (*models.Team, error) {
	const op = "storage.mongodb.GetTeamByMember"

	team, err := s.findTeam(ctx, bson.M{"members.email": email})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return team, nil
}

// AddMember pushes the member only while the team has a free slot and does not
// already list the email. The partial unique index on members.email rejects an
// identity that sits on another team.
func (s *Storage) AddMember(ctx context.Context, joinCode string, member models.Member, maxMembers int) (*models.Team, error) {
	const op = "storage.mongodb.AddMember"

	filter := bson.M{
		"join_code": joinCode,
		fmt.Sprintf("members.%d", maxMembers-1): bson.M{"$exists": false},
		"members.email": bson.M{"$ne": member.Email},
	}
	update := bson.M{"$push": bson.M{"members": member}}

	var team models.Team
	err := s.teams.FindOneAndUpdate(ctx, filter, update, returnAfter).Decode(&team)
	if err == nil {
		normalizeTeam(&team)
		return &team, nil
	}

	if duplicateOn(err, idxMemberEmail) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyOnTeam)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	existing, err := s.findTeam(ctx, bson.M{"join_code": joinCode})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if existing.HasMember(member.Email) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyOnTeam)
	}

	return nil, fmt.Errorf("%s: %w", op, storage.ErrTeamFull)
}

func (s *Storage) RemoveMember(ctx context.Context, email string) (*models.Team, error) {
	const op = "storage.mongodb.RemoveMember"

	var team models.Team
	err := s.teams.FindOneAndUpdate(ctx,
		bson.M{"members.email": email},
		bson.M{"$pull": bson.M{"members": bson.M{"email": email}}},
		returnAfter,
	).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotOnTeam)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	normalizeTeam(&team)

	return &team, nil
}

// AwardPoints matches the team only while event_id is absent from
// events_participated, and applies $inc and $push in the same atomic update.
func (s *Storage) AwardPoints(ctx context.Context, teamID, eventID string, points int) (int, error) {
	const op = "storage.mongodb.AwardPoints"

	filter := bson.M{
		"team_id":             teamID,
		"events_participated": bson.M{"$ne": eventID},
	}
	update := bson.M{
		"$inc":  bson.M{"points": points},
		"$push": bson.M{"events_participated": eventID},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"points": 1})

	var out struct {
		Points int `bson:"points"`
	}

	err := s.teams.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrAlreadyParticipated)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return out.Points, nil
}

func (s *Storage) GetStandings(ctx context.Context, limit int) ([]models.Team, error) {
	const op = "storage.mongodb.GetStandings"

	opts := options.Find().SetSort(bson.D{
		{Key: "points", Value: -1},
		{Key: "team_name", Value: 1},
	})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.teams.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	teams := make([]models.Team, 0)
	if err = cur.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("%s: failed to decode teams: %w", op, err)
	}

	for i := range teams {
		normalizeTeam(&teams[i])
	}

	return teams, nil
}
