// Package team implements team formation and the leaderboard.
package team

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"synergy/internal/access"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/lib/random"
	"synergy/internal/models"
	"synergy/internal/storage"

	"github.com/google/uuid"
)

const (
	JoinCodeLength  = 8
	maxNameLength   = 50
	joinCodeRetries = 5
)

type Storage interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeamByMember(ctx context.Context, email string) (*models.Team, error)
	AddMember(ctx context.Context, joinCode string, member models.Member, maxMembers int) (*models.Team, error)
	RemoveMember(ctx context.Context, email string) (*models.Team, error)
	GetStandings(ctx context.Context, limit int) ([]models.Team, error)
}

var (
	errDeadlinePassed = apperr.New(apperr.Conflict, "team registration deadline has passed")
	errAlreadyOnTeam  = apperr.New(apperr.Conflict, "user already belongs to a team")
	errNoTeam         = apperr.New(apperr.NotFound, "user is not part of any team")
)

type Service struct {
	log        *slog.Logger
	storage    Storage
	maxMembers int
	deadline   time.Time
	now        func() time.Time
	newCode    func() (string, error)
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithCodeGenerator(gen func() (string, error)) Option {
	return func(s *Service) {
		s.newCode = gen
	}
}

// New builds the service. A zero deadline leaves team composition open.
func New(log *slog.Logger, storage Storage, maxMembers int, deadline time.Time, opts ...Option) *Service {
	s := &Service{
		log:        log,
		storage:    storage,
		maxMembers: maxMembers,
		deadline:   deadline,
		now:        time.Now,
		newCode: func() (string, error) {
			return random.Code(JoinCodeLength)
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Create(ctx context.Context, caller *models.User, name string) (*models.Team, error) {
	const op = "services.team.Create"

	if err := access.Require(caller, access.TeamFormers...); err != nil {
		return nil, err
	}
	if err := s.checkDeadline(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.Invalid, "team_name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, apperr.New(apperr.Invalid, "team_name is too long")
	}

	email := models.NormalizeEmail(caller.Email)
	log := s.log.With(slog.String("op", op), slog.String("email", email))

	if err := s.ensureTeamless(ctx, email); err != nil {
		return nil, err
	}

	team := &models.Team{
		ID:   uuid.NewString(),
		Name: name,
		Members: []models.Member{{
			Name:       caller.Name,
			Email:      email,
			RollNumber: caller.RollNumber,
			Role:       models.MemberRoleLeader,
		}},
		EventsParticipated: []string{},
		QRID:               uuid.NewString(),
		CreatedAt:          s.now().UTC(),
		CreatedBy:          email,
	}

	for attempt := 1; ; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to generate join code", err)
		}
		team.JoinCode = code

		err = s.storage.CreateTeam(ctx, team)
		if err == nil {
			break
		}

		switch {
		case errors.Is(err, storage.ErrJoinCodeTaken) && attempt < joinCodeRetries:
			log.Debug("join code collision, retrying", slog.Int("attempt", attempt))
			continue
		case errors.Is(err, storage.ErrTeamExists):
			return nil, apperr.New(apperr.Conflict, "team name already taken")
		case errors.Is(err, storage.ErrAlreadyOnTeam):
			return nil, errAlreadyOnTeam
		}

		log.Error("failed to create team", sl.Err(err))
		return nil, apperr.Wrap(apperr.Unavailable, "failed to create team", err)
	}

	log.Info("team created", slog.String("team_id", team.ID))

	return team, nil
}

func (s *Service) JoinByCode(ctx context.Context, caller *models.User, joinCode string) (*models.Team, error) {
	const op = "services.team.JoinByCode"

	if err := access.Require(caller, access.TeamFormers...); err != nil {
		return nil, err
	}
	if err := s.checkDeadline(); err != nil {
		return nil, err
	}

	joinCode = strings.ToUpper(strings.TrimSpace(joinCode))
	if joinCode == "" {
		return nil, apperr.New(apperr.Invalid, "join_code is required")
	}

	email := models.NormalizeEmail(caller.Email)
	log := s.log.With(slog.String("op", op), slog.String("email", email))

	if err := s.ensureTeamless(ctx, email); err != nil {
		return nil, err
	}

	team, err := s.storage.AddMember(ctx, joinCode, models.Member{
		Name:       caller.Name,
		Email:      email,
		RollNumber: caller.RollNumber,
		Role:       models.MemberRoleMember,
	}, s.maxMembers)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTeamNotFound):
			return nil, apperr.New(apperr.NotFound, "invalid join code")
		case errors.Is(err, storage.ErrTeamFull):
			return nil, apperr.New(apperr.Conflict, "team is full")
		case errors.Is(err, storage.ErrAlreadyOnTeam):
			return nil, errAlreadyOnTeam
		}

		log.Error("failed to join team", sl.Err(err))
		return nil, apperr.Wrap(apperr.Unavailable, "failed to join team", err)
	}

	log.Info("joined team", slog.String("team_id", team.ID))

	return team, nil
}

// Leave removes the caller from their team and returns the team as it is
// afterwards. Empty teams are kept.
func (s *Service) Leave(ctx context.Context, caller *models.User) (*models.Team, error) {
	const op = "services.team.Leave"

	if err := access.Require(caller, access.TeamFormers...); err != nil {
		return nil, err
	}
	if err := s.checkDeadline(); err != nil {
		return nil, err
	}

	email := models.NormalizeEmail(caller.Email)
	log := s.log.With(slog.String("op", op), slog.String("email", email))

	team, err := s.storage.RemoveMember(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotOnTeam) {
			return nil, errNoTeam
		}

		log.Error("failed to leave team", sl.Err(err))
		return nil, apperr.Wrap(apperr.Unavailable, "failed to leave team", err)
	}

	log.Info("left team", slog.String("team_id", team.ID))

	return team, nil
}

func (s *Service) MyTeam(ctx context.Context, caller *models.User) (*models.Team, error) {
	if err := access.Require(caller, access.Anyone...); err != nil {
		return nil, err
	}

	team, err := s.storage.GetTeamByMember(ctx, models.NormalizeEmail(caller.Email))
	if err != nil {
		if errors.Is(err, storage.ErrTeamNotFound) {
			return nil, errNoTeam
		}
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load team", err)
	}

	return team, nil
}

// Leaderboard ranks teams by points; teams with equal points share a rank.
func (s *Service) Leaderboard(ctx context.Context, caller *models.User, limit int) ([]models.Standing, error) {
	if err := access.Require(caller, access.Anyone...); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, apperr.New(apperr.Invalid, "limit must not be negative")
	}

	teams, err := s.storage.GetStandings(ctx, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load leaderboard", err)
	}

	return Rank(teams), nil
}

// Rank expects teams already ordered by points descending.
func Rank(teams []models.Team) []models.Standing {
	standings := make([]models.Standing, 0, len(teams))

	for i, t := range teams {
		rank := i + 1
		if i > 0 && t.Points == teams[i-1].Points {
			rank = standings[i-1].Rank
		}

		standings = append(standings, models.Standing{
			Rank:               rank,
			TeamID:             t.ID,
			TeamName:           t.Name,
			Points:             t.Points,
			EventsParticipated: len(t.EventsParticipated),
			Members:            len(t.Members),
		})
	}

	return standings
}

func (s *Service) checkDeadline() error {
	if !s.deadline.IsZero() && s.now().After(s.deadline) {
		return errDeadlinePassed
	}
	return nil
}

func (s *Service) ensureTeamless(ctx context.Context, email string) error {
	_, err := s.storage.GetTeamByMember(ctx, email)
	switch {
	case err == nil:
		return errAlreadyOnTeam
	case errors.Is(err, storage.ErrTeamNotFound):
		return nil
	default:
		return apperr.Wrap(apperr.Unavailable, "failed to check team membership", err)
	}
}
