package storage

import (
	"context"
	"errors"

	"synergy/internal/models"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrVolunteerNotFound   = errors.New("volunteer not found")
	ErrVolunteerExists     = errors.New("volunteer already exists")
	ErrTeamExists          = errors.New("team name already taken")
	ErrJoinCodeTaken       = errors.New("join code already taken")
	ErrAlreadyOnTeam       = errors.New("user already belongs to a team")
	ErrNotOnTeam           = errors.New("user is not on a team")
	ErrTeamFull            = errors.New("team is full")
	ErrAlreadyParticipated = errors.New("team already participated in this event")
)

// Storage is implemented by every backend selectable through storage.driver.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error

	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, eventID string, upd models.EventUpdate) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	IncrementParticipants(ctx context.Context, eventID string) error

	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeamByRef(ctx context.Context, ref string) (*models.Team, error)
	GetTeamByMember(ctx context.Context, email string) (*models.Team, error)
	AddMember(ctx context.Context, joinCode string, member models.Member, maxMembers int) (*models.Team, error)
	RemoveMember(ctx context.Context, email string) (*models.Team, error)
	AwardPoints(ctx context.Context, teamID, eventID string, points int) (int, error)
	GetStandings(ctx context.Context, limit int) ([]models.Team, error)

	AddVolunteer(ctx context.Context, v *models.Volunteer) error
	GetVolunteer(ctx context.Context, rollNumber string) (*models.Volunteer, error)
	GetAllVolunteers(ctx context.Context) ([]models.Volunteer, error)
	RemoveVolunteer(ctx context.Context, rollNumber string) error
}
