package mongodb

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"synergy/internal/config"
	"synergy/internal/models"
	"synergy/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStorage connects to TEST_MONGO_URI; the tests are skipped when it is
// not set. Each test gets its own database.
func setupStorage(t *testing.T) *Storage {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	s, err := New(context.Background(), &config.Mongo{
		URI:      uri,
		Database: "synergy_test_" + strings.ReplaceAll(uuid.NewString()[:8], "-", ""),
		Timeout:  10 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.events.Database().Drop(context.Background())
		_ = s.Close()
	})

	return s
}

func newTeam(name string, leader models.Member) *models.Team {
	return &models.Team{
		ID:                 uuid.NewString(),
		Name:               name,
		Members:            []models.Member{leader},
		EventsParticipated: []string{},
		QRID:               uuid.NewString(),
		JoinCode:           uuid.NewString()[:8],
		CreatedAt:          time.Now().UTC(),
		CreatedBy:          leader.Email,
	}
}

func member(role string) models.Member {
	return models.Member{
		Name:       "m",
		Email:      uuid.NewString() + "@iiitb.ac.in",
		RollNumber: "IMT" + uuid.NewString()[:4],
		Role:       role,
	}
}

func TestEventLifecycle(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	event := &models.Event{
		ID:         uuid.NewString(),
		Name:       "Treasure Hunt",
		Points:     50,
		SecretCode: "open-sesame",
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  "synergy@iiitb.ac.in",
	}
	require.NoError(t, s.CreateEvent(ctx, event))

	got, err := s.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "open-sesame", got.SecretCode)
	assert.Nil(t, got.UpdatedAt)

	points := 75
	expired := true
	upd, err := s.UpdateEvent(ctx, event.ID, models.EventUpdate{
		Points:    &points,
		Expired:   &expired,
		UpdatedBy: "synergy@iiitb.ac.in",
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, 75, upd.Points)
	assert.True(t, upd.Expired)
	assert.Equal(t, "Treasure Hunt", upd.Name)
	assert.NotNil(t, upd.UpdatedAt)

	require.NoError(t, s.IncrementParticipants(ctx, event.ID))
	got, err = s.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Participants)

	require.NoError(t, s.DeleteEvent(ctx, event.ID))
	_, err = s.GetEvent(ctx, event.ID)
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
	assert.ErrorIs(t, s.DeleteEvent(ctx, event.ID), storage.ErrEventNotFound)
}

func TestTeamMembership(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	leader := member(models.MemberRoleLeader)
	team := newTeam("team-"+uuid.NewString(), leader)
	require.NoError(t, s.CreateTeam(ctx, team))

	dup := newTeam(team.Name, member(models.MemberRoleLeader))
	assert.ErrorIs(t, s.CreateTeam(ctx, dup), storage.ErrTeamExists)

	second := member(models.MemberRoleMember)
	got, err := s.AddMember(ctx, team.JoinCode, second, 2)
	require.NoError(t, err)
	assert.Len(t, got.Members, 2)

	_, err = s.AddMember(ctx, team.JoinCode, member(models.MemberRoleMember), 2)
	assert.ErrorIs(t, err, storage.ErrTeamFull)

	_, err = s.AddMember(ctx, "NOPE0000", member(models.MemberRoleMember), 2)
	assert.ErrorIs(t, err, storage.ErrTeamNotFound)

	byMember, err := s.GetTeamByMember(ctx, second.Email)
	require.NoError(t, err)
	assert.Equal(t, team.ID, byMember.ID)

	byQR, err := s.GetTeamByRef(ctx, team.QRID)
	require.NoError(t, err)
	assert.Equal(t, team.ID, byQR.ID)

	left, err := s.RemoveMember(ctx, second.Email)
	require.NoError(t, err)
	assert.Len(t, left.Members, 1)

	_, err = s.RemoveMember(ctx, second.Email)
	assert.ErrorIs(t, err, storage.ErrNotOnTeam)
}

func TestAwardPointsAtMostOnce(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	team := newTeam("team-"+uuid.NewString(), member(models.MemberRoleLeader))
	require.NoError(t, s.CreateTeam(ctx, team))

	eventID := uuid.NewString()

	const workers = 16
	var (
		wg      sync.WaitGroup
		success atomic.Int32
		dup     atomic.Int32
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AwardPoints(ctx, team.ID, eventID, 40)
			switch {
			case err == nil:
				success.Add(1)
			case errors.Is(err, storage.ErrAlreadyParticipated):
				dup.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), success.Load())
	assert.Equal(t, int32(workers-1), dup.Load())

	got, err := s.GetTeamByRef(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Points)
	assert.Equal(t, []string{eventID}, got.EventsParticipated)
}
