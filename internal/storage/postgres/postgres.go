package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"synergy/internal/config"
	"synergy/internal/models"
	"synergy/internal/storage"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS events (
	event_id     TEXT PRIMARY KEY,
	event_name   TEXT NOT NULL,
	points       INTEGER NOT NULL CHECK (points >= 0),
	secret_code  TEXT NOT NULL,
	expired      BOOLEAN NOT NULL DEFAULT FALSE,
	participants INTEGER NOT NULL DEFAULT 0,
	created_at   TIMESTAMPTZ NOT NULL,
	created_by   TEXT NOT NULL DEFAULT '',
	updated_at   TIMESTAMPTZ,
	updated_by   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS teams (
	team_id             TEXT PRIMARY KEY,
	team_name           TEXT NOT NULL,
	points              INTEGER NOT NULL DEFAULT 0 CHECK (points >= 0),
	events_participated TEXT[] NOT NULL DEFAULT '{}',
	qr_id               TEXT NOT NULL UNIQUE,
	join_code           TEXT NOT NULL,
	created_at          TIMESTAMPTZ NOT NULL,
	created_by          TEXT NOT NULL,
	CONSTRAINT teams_team_name_key UNIQUE (team_name),
	CONSTRAINT teams_join_code_key UNIQUE (join_code)
);

CREATE TABLE IF NOT EXISTS team_members (
	id          BIGSERIAL PRIMARY KEY,
	team_id     TEXT NOT NULL REFERENCES teams (team_id) ON DELETE CASCADE,
	email       TEXT NOT NULL,
	name        TEXT NOT NULL,
	roll_number TEXT NOT NULL,
	role        TEXT NOT NULL,
	CONSTRAINT team_members_email_key UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS volunteers (
	roll_number TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	added_at    TIMESTAMPTZ NOT NULL,
	added_by    TEXT NOT NULL DEFAULT ''
);`

var _ storage.Storage = (*Storage)(nil)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func isUnique(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolation {
		return false
	}

	return constraint == "" || pqErr.Constraint == constraint
}

const eventColumns = `event_id, event_name, points, secret_code, expired, participants,
	created_at, created_by, updated_at, updated_by`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var (
		event     models.Event
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Points,
		&event.SecretCode,
		&event.Expired,
		&event.Participants,
		&event.CreatedAt,
		&event.CreatedBy,
		&updatedAt,
		&event.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		t := updatedAt.Time
		event.UpdatedAt = &t
	}

	return &event, nil
}

func (s *Storage) CreateEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.postgres.CreateEvent"

	query := `
		INSERT INTO events (event_id, event_name, points, secret_code, expired, participants, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.DB.ExecContext(ctx, query,
		event.ID,
		event.Name,
		event.Points,
		event.SecretCode,
		event.Expired,
		event.Participants,
		event.CreatedAt,
		event.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	const op = "storage.postgres.GetEvent"

	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1`

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.postgres.GetAllEvents"

	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	return events, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, eventID string, upd models.EventUpdate) (*models.Event, error) {
	const op = "storage.postgres.UpdateEvent"

	sets := []string{"updated_at = $1", "updated_by = $2"}
	args := []any{upd.UpdatedAt, upd.UpdatedBy}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("event_name", *upd.Name)
	}
	if upd.Points != nil {
		add("points", *upd.Points)
	}
	if upd.Expired != nil {
		add("expired", *upd.Expired)
	}
	if upd.SecretCode != nil {
		add("secret_code", *upd.SecretCode)
	}

	args = append(args, eventID)
	query := fmt.Sprintf(`UPDATE events SET %s WHERE event_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), eventColumns)

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, eventID string) error {
	const op = "storage.postgres.DeleteEvent"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE event_id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	return nil
}

func (s *Storage) IncrementParticipants(ctx context.Context, eventID string) error {
	const op = "storage.postgres.IncrementParticipants"

	res, err := s.DB.ExecContext(ctx,
		`UPDATE events SET participants = participants + 1 WHERE event_id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	return nil
}
