// Package scan implements volunteer event authorization and the scan that
// awards a team an event's points.
package scan

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"synergy/internal/access"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/lib/metrics"
	"synergy/internal/lib/token"
	"synergy/internal/models"
	"synergy/internal/storage"
)

type Storage interface {
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	GetTeamByRef(ctx context.Context, ref string) (*models.Team, error)
	AwardPoints(ctx context.Context, teamID, eventID string, points int) (int, error)
	IncrementParticipants(ctx context.Context, eventID string) error
}

type Tokens interface {
	Issue(subject, eventID string) (string, time.Time, error)
	Verify(raw string) (*token.Claims, error)
}

var (
	errInvalidSecret   = apperr.New(apperr.Unauthorized, "invalid secret code")
	errInvalidToken    = apperr.New(apperr.Unauthorized, "invalid or expired event token")
	errForeignToken    = apperr.New(apperr.Unauthorized, "event token was issued to another volunteer")
	errWrongEvent      = apperr.New(apperr.Unauthorized, "event token is not valid for this event")
	errEventExpired    = apperr.New(apperr.Conflict, "event expired")
	errAlreadyAwarded  = apperr.New(apperr.Conflict, "team already participated in this event")
	errEventIDRequired = apperr.New(apperr.Invalid, "event_id is required")
	errSecretRequired  = apperr.New(apperr.Invalid, "secret_code is required")
	errTeamIDRequired  = apperr.New(apperr.Invalid, "team_id is required")
)

type Engine struct {
	log     *slog.Logger
	storage Storage
	tokens  Tokens
}

func New(log *slog.Logger, storage Storage, tokens Tokens) *Engine {
	return &Engine{
		log:     log,
		storage: storage,
		tokens:  tokens,
	}
}

// Authorize checks the event's secret code and mints a token scoped to the
// caller and that event. Nothing is persisted.
func (e *Engine) Authorize(ctx context.Context, caller *models.User, eventID, secretCode string) (*models.Authorization, error) {
	const op = "services.scan.Authorize"

	if err := access.Require(caller, access.AdminVolunteer...); err != nil {
		metrics.AuthorizationsTotal.WithLabelValues(metrics.ResultDenied).Inc()
		return nil, err
	}

	log := e.log.With(
		slog.String("op", op),
		slog.String("volunteer", caller.Email),
		slog.String("event_id", eventID),
	)

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, errEventIDRequired
	}
	if secretCode == "" {
		return nil, errSecretRequired
	}

	event, err := e.getEvent(ctx, eventID)
	if err != nil {
		metrics.AuthorizationsTotal.WithLabelValues(resultOf(err)).Inc()
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(secretCode), []byte(event.SecretCode)) != 1 {
		log.Info("secret code mismatch")
		metrics.AuthorizationsTotal.WithLabelValues(metrics.ResultDenied).Inc()
		return nil, errInvalidSecret
	}

	raw, expiresAt, err := e.tokens.Issue(models.NormalizeEmail(caller.Email), event.ID)
	if err != nil {
		log.Error("failed to issue event token", sl.Err(err))
		return nil, apperr.Wrap(apperr.Internal, "failed to issue event token", err)
	}

	log.Info("volunteer authorized")
	metrics.AuthorizationsTotal.WithLabelValues(metrics.ResultOK).Inc()

	return &models.Authorization{
		Message:        fmt.Sprintf("Authorization successful for event '%s'", event.Name),
		VolunteerEmail: caller.Email,
		Role:           caller.Role,
		Token:          raw,
		ExpiresAt:      expiresAt,
	}, nil
}

// Scan redeems an event token against a team. eventID is optional; when set
// it must match the event the token was issued for. The award itself is one
// conditional storage update, so concurrent scans of the same team for the
// same event credit it at most once.
func (e *Engine) Scan(ctx context.Context, caller *models.User, rawToken, teamRef, eventID string) (*models.ScanResult, error) {
	const op = "services.scan.Scan"

	res, err := e.scan(ctx, caller, rawToken, teamRef, eventID)
	if err != nil {
		metrics.ScansTotal.WithLabelValues(resultOf(err)).Inc()
		if apperr.Is(err, apperr.Unavailable) || apperr.Is(err, apperr.Internal) {
			e.log.Error("scan failed", slog.String("op", op), sl.Err(err))
		}
		return nil, err
	}

	metrics.ScansTotal.WithLabelValues(metrics.ResultOK).Inc()
	metrics.PointsAwardedTotal.Add(float64(res.PointsAwarded))

	return res, nil
}

func (e *Engine) scan(ctx context.Context, caller *models.User, rawToken, teamRef, eventID string) (*models.ScanResult, error) {
	const op = "services.scan.Scan"

	if err := access.Require(caller, access.AdminVolunteer...); err != nil {
		return nil, err
	}

	claims, err := e.tokens.Verify(rawToken)
	if err != nil {
		return nil, errInvalidToken
	}
	if claims.Subject != models.NormalizeEmail(caller.Email) {
		return nil, errForeignToken
	}
	if eventID = strings.TrimSpace(eventID); eventID != "" && eventID != claims.EventID {
		return nil, errWrongEvent
	}

	teamRef = strings.TrimSpace(teamRef)
	if teamRef == "" {
		return nil, errTeamIDRequired
	}

	log := e.log.With(
		slog.String("op", op),
		slog.String("volunteer", claims.Subject),
		slog.String("event_id", claims.EventID),
		slog.String("team_ref", teamRef),
	)

	event, err := e.getEvent(ctx, claims.EventID)
	if err != nil {
		return nil, err
	}

	team, err := e.storage.GetTeamByRef(ctx, teamRef)
	if err != nil {
		if errors.Is(err, storage.ErrTeamNotFound) {
			return nil, apperr.New(apperr.NotFound, "team not found")
		}
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load team", err)
	}

	if event.Expired {
		return nil, errEventExpired
	}
	if team.HasParticipated(event.ID) {
		return nil, errAlreadyAwarded
	}

	total, err := e.storage.AwardPoints(ctx, team.ID, event.ID, event.Points)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyParticipated) {
			log.Info("concurrent scan already credited team")
			return nil, errAlreadyAwarded
		}
		if errors.Is(err, storage.ErrTeamNotFound) {
			return nil, apperr.New(apperr.NotFound, "team not found")
		}
		return nil, apperr.Wrap(apperr.Unavailable, "failed to award points", err)
	}

	if err = e.storage.IncrementParticipants(ctx, event.ID); err != nil {
		log.Warn("failed to bump participant count", sl.Err(err))
	}

	log.Info("points awarded", slog.Int("points", event.Points), slog.Int("team_points", total))

	return &models.ScanResult{
		Message:       fmt.Sprintf("Team '%s' successfully scanned for event '%s'", team.Name, event.Name),
		Volunteer:     claims.Subject,
		TeamID:        team.ID,
		EventID:       event.ID,
		PointsAwarded: event.Points,
		TeamPoints:    total,
	}, nil
}

func (e *Engine) getEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := e.storage.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return nil, apperr.New(apperr.NotFound, "event not found")
		}
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load event", err)
	}
	return event, nil
}

func resultOf(err error) string {
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		return metrics.ResultNotFound
	case apperr.Conflict:
		if errors.Is(err, errEventExpired) {
			return metrics.ResultExpired
		}
		return metrics.ResultDuplicate
	case apperr.Unavailable, apperr.Internal:
		return metrics.ResultUnavailable
	default:
		return metrics.ResultDenied
	}
}
