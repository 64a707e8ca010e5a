package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"synergy/internal/models"
	"synergy/internal/storage"

	"github.com/lib/pq"
)

const teamColumns = `t.team_id, t.team_name, t.points, t.events_participated, t.qr_id, t.join_code, t.created_at, t.created_by`

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var team models.Team

	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Points,
		pq.Array(&team.EventsParticipated),
		&team.QRID,
		&team.JoinCode,
		&team.CreatedAt,
		&team.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	if team.EventsParticipated == nil {
		team.EventsParticipated = []string{}
	}
	team.Members = []models.Member{}

	return &team, nil
}

// attachMembers fills Members in join order for every team in one round-trip.
func attachMembers(ctx context.Context, q queryer, teams []*models.Team) error {
	if len(teams) == 0 {
		return nil
	}

	byID := make(map[string]*models.Team, len(teams))
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}

	rows, err := q.QueryContext(ctx, `
		SELECT team_id, name, email, roll_number, role
		FROM team_members
		WHERE team_id = ANY($1)
		ORDER BY id ASC`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			teamID string
			m      models.Member
		)
		if err = rows.Scan(&teamID, &m.Name, &m.Email, &m.RollNumber, &m.Role); err != nil {
			return err
		}
		if t, ok := byID[teamID]; ok {
			t.Members = append(t.Members, m)
		}
	}

	return rows.Err()
}

func (s *Storage) loadTeam(ctx context.Context, q queryer, where string, arg any) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams t ` + where

	team, err := scanTeam(q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTeamNotFound
		}
		return nil, err
	}

	if err = attachMembers(ctx, q, []*models.Team{team}); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *Storage) CreateTeam(ctx context.Context, team *models.Team) error {
	const op = "storage.postgres.CreateTeam"

	participated := team.EventsParticipated
	if participated == nil {
		participated = []string{}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO teams (team_id, team_name, points, events_participated, qr_id, join_code, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		team.ID,
		team.Name,
		team.Points,
		pq.Array(participated),
		team.QRID,
		team.JoinCode,
		team.CreatedAt,
		team.CreatedBy,
	)
	if err != nil {
		switch {
		case isUnique(err, "teams_team_name_key"):
			return fmt.Errorf("%s: %w", op, storage.ErrTeamExists)
		case isUnique(err, "teams_join_code_key"):
			return fmt.Errorf("%s: %w", op, storage.ErrJoinCodeTaken)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, m := range team.Members {
		if err = insertMember(ctx, tx, team.ID, m); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return tx.Commit()
}

func insertMember(ctx context.Context, tx *sql.Tx, teamID string, m models.Member) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO team_members (team_id, email, name, roll_number, role)
		VALUES ($1, $2, $3, $4, $5)`,
		teamID, m.Email, m.Name, m.RollNumber, m.Role)
	if isUnique(err, "team_members_email_key") {
		return storage.ErrAlreadyOnTeam
	}

	return err
}

func (s *Storage) GetTeamByRef(ctx context.Context, ref string) (*models.Team, error) {
	const op = "storage.postgres.GetTeamByRef"

	team, err := s.loadTeam(ctx, s.DB, `WHERE t.team_id = $1 OR t.qr_id = $1`, ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return team, nil
}

func (s *Storage) GetTeamByMember(ctx context.Context, email string) (*models.Team, error) {
	const op = "storage.postgres.GetTeamByMember"

	team, err := s.loadTeam(ctx, s.DB,
		`JOIN team_members m ON m.team_id = t.team_id WHERE m.email = $1`, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return team, nil
}

// AddMember locks the team row so concurrent joins cannot overfill it; the
// unique email constraint keeps one team per identity.
func (s *Storage) AddMember(ctx context.Context, joinCode string, member models.Member, maxMembers int) (*models.Team, error) {
	const op = "storage.postgres.AddMember"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var teamID string
	err = tx.QueryRowContext(ctx,
		`SELECT team_id FROM teams WHERE join_code = $1 FOR UPDATE`, joinCode).Scan(&teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrTeamNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM team_members WHERE team_id = $1`, teamID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count members: %w", op, err)
	}

	if count >= maxMembers {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrTeamFull)
	}

	if err = insertMember(ctx, tx, teamID, member); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetTeamByRef(ctx, teamID)
}

func (s *Storage) RemoveMember(ctx context.Context, email string) (*models.Team, error) {
	const op = "storage.postgres.RemoveMember"

	var teamID string
	err := s.DB.QueryRowContext(ctx,
		`DELETE FROM team_members WHERE email = $1 RETURNING team_id`, email).Scan(&teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotOnTeam)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetTeamByRef(ctx, teamID)
}

// AwardPoints is a single conditional UPDATE: the participation check and the
// point increment happen under the same row lock, so two concurrent scans of
// one team for one event cannot both succeed.
func (s *Storage) AwardPoints(ctx context.Context, teamID, eventID string, points int) (int, error) {
	const op = "storage.postgres.AwardPoints"

	query := `
		UPDATE teams
		SET points = points + $1,
		    events_participated = array_append(events_participated, $2)
		WHERE team_id = $3 AND NOT ($2 = ANY(events_participated))
		RETURNING points`

	var total int
	err := s.DB.QueryRowContext(ctx, query, points, eventID, teamID).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrAlreadyParticipated)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Storage) GetStandings(ctx context.Context, limit int) ([]models.Team, error) {
	const op = "storage.postgres.GetStandings"

	var lim sql.NullInt64
	if limit > 0 {
		lim = sql.NullInt64{Int64: int64(limit), Valid: true}
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+teamColumns+`
		FROM teams t
		ORDER BY t.points DESC, t.team_name ASC
		LIMIT $1`, lim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ptrs []*models.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan team: %w", op, err)
		}
		ptrs = append(ptrs, team)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating teams: %w", op, err)
	}

	if err = attachMembers(ctx, s.DB, ptrs); err != nil {
		return nil, fmt.Errorf("%s: failed to load members: %w", op, err)
	}

	teams := make([]models.Team, 0, len(ptrs))
	for _, t := range ptrs {
		teams = append(teams, *t)
	}

	return teams, nil
}
