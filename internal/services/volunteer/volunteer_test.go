package volunteer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/handlers/slogdiscard"
	"synergy/internal/models"
	"synergy/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	vols map[string]models.Volunteer
	err  error
}

func (m *memStorage) AddVolunteer(_ context.Context, v *models.Volunteer) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.vols[v.RollNumber]; ok {
		return fmt.Errorf("mem: %w", storage.ErrVolunteerExists)
	}
	m.vols[v.RollNumber] = *v
	return nil
}

func (m *memStorage) GetVolunteer(_ context.Context, roll string) (*models.Volunteer, error) {
	v, ok := m.vols[roll]
	if !ok {
		return nil, fmt.Errorf("mem: %w", storage.ErrVolunteerNotFound)
	}
	return &v, nil
}

func (m *memStorage) GetAllVolunteers(_ context.Context) ([]models.Volunteer, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Volunteer, 0, len(m.vols))
	for _, v := range m.vols {
		out = append(out, v)
	}
	return out, nil
}

func (m *memStorage) RemoveVolunteer(_ context.Context, roll string) error {
	if _, ok := m.vols[roll]; !ok {
		return fmt.Errorf("mem: %w", storage.ErrVolunteerNotFound)
	}
	delete(m.vols, roll)
	return nil
}

var (
	admin     = &models.User{Email: "synergy@iiitb.ac.in", Role: models.RoleAdmin}
	volunteer = &models.User{Email: "v@iiitb.ac.in", Role: models.RoleVolunteer}
)

func TestVolunteerRegistry(t *testing.T) {
	t.Parallel()

	st := &memStorage{vols: map[string]models.Volunteer{}}
	svc := New(slogdiscard.NewDiscardLogger(), st)
	ctx := context.Background()

	added, err := svc.Add(ctx, admin, models.Volunteer{RollNumber: " IMT1 ", Name: "Vee", Email: "Vee@IIITB.ac.in"})
	require.NoError(t, err)
	assert.Equal(t, "IMT1", added.RollNumber)
	assert.Equal(t, "vee@iiitb.ac.in", added.Email)
	assert.Equal(t, admin.Email, added.AddedBy)

	_, err = svc.Add(ctx, admin, models.Volunteer{RollNumber: "IMT1"})
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	_, err = svc.Add(ctx, admin, models.Volunteer{})
	assert.Equal(t, apperr.Invalid, apperr.KindOf(err))

	_, err = svc.Add(ctx, volunteer, models.Volunteer{RollNumber: "IMT2"})
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	got, err := svc.Get(ctx, volunteer, "IMT1")
	require.NoError(t, err)
	assert.Equal(t, "Vee", got.Name)

	list, err := svc.List(ctx, volunteer)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	err = svc.Remove(ctx, volunteer, "IMT1")
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	require.NoError(t, svc.Remove(ctx, admin, "IMT1"))

	_, err = svc.Get(ctx, admin, "IMT1")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	err = svc.Remove(ctx, admin, "IMT1")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestVolunteerRegistryUnavailable(t *testing.T) {
	t.Parallel()

	st := &memStorage{vols: map[string]models.Volunteer{}, err: errors.New("i/o timeout")}
	svc := New(slogdiscard.NewDiscardLogger(), st)

	_, err := svc.List(context.Background(), admin)
	assert.Equal(t, apperr.Unavailable, apperr.KindOf(err))

	_, err = svc.Add(context.Background(), admin, models.Volunteer{RollNumber: "X"})
	assert.Equal(t, apperr.Unavailable, apperr.KindOf(err))
}
