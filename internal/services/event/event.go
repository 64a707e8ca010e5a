// Package event implements the admin-managed event registry. Secret codes
// travel sealed in both directions and are stored in plaintext.
package event

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

	"github.com/google/uuid"
)

type Storage interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, eventID string, upd models.EventUpdate) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type Sealer interface {
	Seal(plain string) (string, error)
	Open(sealed string) string
}

type CreateParams struct {
	Name         string
	Points       int
	SealedSecret string
}

// UpdateParams fields left nil are not changed.
type UpdateParams struct {
	Name         *string
	Points       *int
	Expired      *bool
	SealedSecret *string
}

var (
	errNotFound      = apperr.New(apperr.NotFound, "event not found")
	errBadSecret     = apperr.New(apperr.Invalid, "secret_code could not be decrypted")
	errNameRequired  = apperr.New(apperr.Invalid, "event_name is required")
	errNegativePoint = apperr.New(apperr.Invalid, "points must not be negative")
)

type Service struct {
	log     *slog.Logger
	storage Storage
	sealer  Sealer
	now     func() time.Time
}

func New(log *slog.Logger, storage Storage, sealer Sealer) *Service {
	return &Service{
		log:     log,
		storage: storage,
		sealer:  sealer,
		now:     time.Now,
	}
}

func (s *Service) Create(ctx context.Context, caller *models.User, p CreateParams) (*models.EventView, error) {
	const op = "services.event.Create"

	if err := access.Require(caller, access.Admin...); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, errNameRequired
	}
	if p.Points < 0 {
		return nil, errNegativePoint
	}

	secret, err := s.openSecret(p.SealedSecret)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:         uuid.NewString(),
		Name:       name,
		Points:     p.Points,
		SecretCode: secret,
		CreatedAt:  s.now().UTC(),
		CreatedBy:  caller.Email,
	}

	log := s.log.With(slog.String("op", op), slog.String("event_id", event.ID))

	if err = s.storage.CreateEvent(ctx, event); err != nil {
		log.Error("failed to create event", sl.Err(err))
		return nil, apperr.Wrap(apperr.Unavailable, "failed to create event", err)
	}

	log.Info("event created", slog.String("created_by", caller.Email))

	return s.view(caller, event)
}

func (s *Service) List(ctx context.Context, caller *models.User) ([]models.EventView, error) {
	if err := access.Require(caller, access.Anyone...); err != nil {
		return nil, err
	}

	events, err := s.storage.GetAllEvents(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load events", err)
	}

	views := make([]models.EventView, 0, len(events))
	for i := range events {
		v, err := s.view(caller, &events[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}

	return views, nil
}

func (s *Service) Get(ctx context.Context, caller *models.User, eventID string) (*models.EventView, error) {
	if err := access.Require(caller, access.Anyone...); err != nil {
		return nil, err
	}

	event, err := s.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, translate(err, "failed to load event")
	}

	return s.view(caller, event)
}

func (s *Service) Update(ctx context.Context, caller *models.User, eventID string, p UpdateParams) (*models.EventView, error) {
	const op = "services.event.Update"

	if err := access.Require(caller, access.Admin...); err != nil {
		return nil, err
	}

	upd := models.EventUpdate{
		Points:    p.Points,
		Expired:   p.Expired,
		UpdatedBy: caller.Email,
		UpdatedAt: s.now().UTC(),
	}

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, errNameRequired
		}
		upd.Name = &name
	}
	if p.Points != nil && *p.Points < 0 {
		return nil, errNegativePoint
	}
	if p.SealedSecret != nil {
		secret, err := s.openSecret(*p.SealedSecret)
		if err != nil {
			return nil, err
		}
		upd.SecretCode = &secret
	}

	log := s.log.With(slog.String("op", op), slog.String("event_id", eventID))

	event, err := s.storage.UpdateEvent(ctx, eventID, upd)
	if err != nil {
		if !errors.Is(err, storage.ErrEventNotFound) {
			log.Error("failed to update event", sl.Err(err))
		}
		return nil, translate(err, "failed to update event")
	}

	log.Info("event updated", slog.String("updated_by", caller.Email))

	return s.view(caller, event)
}

func (s *Service) Delete(ctx context.Context, caller *models.User, eventID string) error {
	const op = "services.event.Delete"

	if err := access.Require(caller, access.Admin...); err != nil {
		return err
	}

	if err := s.storage.DeleteEvent(ctx, eventID); err != nil {
		return translate(err, "failed to delete event")
	}

	s.log.Info("event deleted", slog.String("op", op), slog.String("event_id", eventID))

	return nil
}

// openSecret treats an empty result as invalid input: Open reports every
// failure that way.
func (s *Service) openSecret(sealed string) (string, error) {
	if sealed == "" {
		return "", apperr.New(apperr.Invalid, "secret_code is required")
	}

	secret := s.sealer.Open(sealed)
	if secret == "" {
		return "", errBadSecret
	}

	return secret, nil
}

// view seals the secret for admins and drops it for everyone else.
func (s *Service) view(caller *models.User, event *models.Event) (*models.EventView, error) {
	v := &models.EventView{Event: *event}

	if caller.Role != models.RoleAdmin || event.SecretCode == "" {
		return v, nil
	}

	sealed, err := s.sealer.Seal(event.SecretCode)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to seal secret code", err)
	}
	v.SealedSecret = sealed

	return v, nil
}

func translate(err error, msg string) error {
	if errors.Is(err, storage.ErrEventNotFound) {
		return errNotFound
	}
	return apperr.Wrap(apperr.Unavailable, msg, err)
}
