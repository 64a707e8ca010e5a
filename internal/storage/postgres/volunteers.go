package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"synergy/internal/models"
	"synergy/internal/storage"
)

func (s *Storage) AddVolunteer(ctx context.Context, v *models.Volunteer) error {
	const op = "storage.postgres.AddVolunteer"

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO volunteers (roll_number, name, email, added_at, added_by)
		VALUES ($1, $2, $3, $4, $5)`,
		v.RollNumber, v.Name, v.Email, v.AddedAt, v.AddedBy)
	if err != nil {
		if isUnique(err, "") {
			return fmt.Errorf("%s: %w", op, storage.ErrVolunteerExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetVolunteer(ctx context.Context, rollNumber string) (*models.Volunteer, error) {
	const op = "storage.postgres.GetVolunteer"

	var v models.Volunteer
	err := s.DB.QueryRowContext(ctx, `
		SELECT roll_number, name, email, added_at, added_by
		FROM volunteers
		WHERE roll_number = $1`, rollNumber).Scan(&v.RollNumber, &v.Name, &v.Email, &v.AddedAt, &v.AddedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrVolunteerNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &v, nil
}

func (s *Storage) GetAllVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	const op = "storage.postgres.GetAllVolunteers"

	rows, err := s.DB.QueryContext(ctx, `
		SELECT roll_number, name, email, added_at, added_by
		FROM volunteers
		ORDER BY added_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	volunteers := make([]models.Volunteer, 0)
	for rows.Next() {
		var v models.Volunteer
		if err = rows.Scan(&v.RollNumber, &v.Name, &v.Email, &v.AddedAt, &v.AddedBy); err != nil {
			return nil, fmt.Errorf("%s: failed to scan volunteer: %w", op, err)
		}
		volunteers = append(volunteers, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating volunteers: %w", op, err)
	}

	return volunteers, nil
}

func (s *Storage) RemoveVolunteer(ctx context.Context, rollNumber string) error {
	const op = "storage.postgres.RemoveVolunteer"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM volunteers WHERE roll_number = $1`, rollNumber)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrVolunteerNotFound)
	}

	return nil
}
