// Package volunteer implements the admin-managed volunteer registry.
package volunteer

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"synergy/internal/access"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"
	"synergy/internal/storage"
)

type Storage interface {
	AddVolunteer(ctx context.Context, v *models.Volunteer) error
	GetVolunteer(ctx context.Context, rollNumber string) (*models.Volunteer, error)
	GetAllVolunteers(ctx context.Context) ([]models.Volunteer, error)
	RemoveVolunteer(ctx context.Context, rollNumber string) error
}

var errNotFound = apperr.New(apperr.NotFound, "volunteer not found")

type Service struct {
	log     *slog.Logger
	storage Storage
	now     func() time.Time
}

func New(log *slog.Logger, storage Storage) *Service {
	return &Service{
		log:     log,
		storage: storage,
		now:     time.Now,
	}
}

func (s *Service) Add(ctx context.Context, caller *models.User, v models.Volunteer) (*models.Volunteer, error) {
	const op = "services.volunteer.Add"

	if err := access.Require(caller, access.Admin...); err != nil {
		return nil, err
	}

	v.RollNumber = strings.TrimSpace(v.RollNumber)
	v.Name = strings.TrimSpace(v.Name)
	v.Email = models.NormalizeEmail(v.Email)
	if v.RollNumber == "" {
		return nil, apperr.New(apperr.Invalid, "rollNumber is required")
	}

	v.AddedAt = s.now().UTC()
	v.AddedBy = caller.Email

	log := s.log.With(slog.String("op", op), slog.String("roll_number", v.RollNumber))

	if err := s.storage.AddVolunteer(ctx, &v); err != nil {
		if errors.Is(err, storage.ErrVolunteerExists) {
			return nil, apperr.New(apperr.Conflict, "volunteer already exists")
		}
		log.Error("failed to add volunteer", sl.Err(err))
		return nil, apperr.Wrap(apperr.Unavailable, "failed to add volunteer", err)
	}

	log.Info("volunteer added", slog.String("added_by", caller.Email))

	return &v, nil
}

func (s *Service) List(ctx context.Context, caller *models.User) ([]models.Volunteer, error) {
	if err := access.Require(caller, access.AdminVolunteer...); err != nil {
		return nil, err
	}

	vols, err := s.storage.GetAllVolunteers(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load volunteers", err)
	}

	return vols, nil
}

func (s *Service) Get(ctx context.Context, caller *models.User, rollNumber string) (*models.Volunteer, error) {
	if err := access.Require(caller, access.AdminVolunteer...); err != nil {
		return nil, err
	}

	v, err := s.storage.GetVolunteer(ctx, rollNumber)
	if err != nil {
		if errors.Is(err, storage.ErrVolunteerNotFound) {
			return nil, errNotFound
		}
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load volunteer", err)
	}

	return v, nil
}

func (s *Service) Remove(ctx context.Context, caller *models.User, rollNumber string) error {
	const op = "services.volunteer.Remove"

	if err := access.Require(caller, access.Admin...); err != nil {
		return err
	}

	if err := s.storage.RemoveVolunteer(ctx, rollNumber); err != nil {
		if errors.Is(err, storage.ErrVolunteerNotFound) {
			return errNotFound
		}
		return apperr.Wrap(apperr.Unavailable, "failed to remove volunteer", err)
	}

	s.log.Info("volunteer removed", slog.String("op", op), slog.String("roll_number", rollNumber))

	return nil
}
