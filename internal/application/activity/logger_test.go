package activity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estatecrm-api/internal/application/activity"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

type fakeActivityRepo struct {
	created   []*entity.Activity
	createErr error
}

func (f *fakeActivityRepo) Create(a *entity.Activity) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	return nil
}
func (f *fakeActivityRepo) List(repository.ActivityFilter) ([]*entity.Activity, int, error) {
	return nil, 0, nil
}
func (f *fakeActivityRepo) ListRecent(time.Time, int) ([]*entity.Activity, error) { return nil, nil }
func (f *fakeActivityRepo) CountsByType(time.Time) ([]repository.TypeCount, error) {
	return nil, nil
}
func (f *fakeActivityRepo) DailyCounts(time.Time) ([]repository.DailyCount, error) {
	return nil, nil
}
func (f *fakeActivityRepo) TopUsers(time.Time, int) ([]repository.UserActivityCount, error) {
	return nil, nil
}

func TestRecord_PersisteElRastro(t *testing.T) {
	repo := &fakeActivityRepo{}
	logger := activity.NewLogger(repo, zerolog.Nop())

	logger.Record("u1", entity.ActivityLeadAdded, "Added lead Ana", "lead", "l1",
		map[string]any{"source": "manual"})

	require.Len(t, repo.created, 1)
	a := repo.created[0]
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "u1", a.UserID)
	assert.Equal(t, entity.ActivityLeadAdded, a.ActivityType)
	assert.Equal(t, "Added lead Ana", a.Description)
	assert.Equal(t, "lead", a.EntityType)
	assert.Equal(t, "l1", a.EntityID)
	assert.Equal(t, "manual", a.Metadata["source"])
	assert.False(t, a.CreatedAt.IsZero())
}

func TestRecord_FalloDeInsertNoInterrumpe(t *testing.T) {
	repo := &fakeActivityRepo{createErr: errors.New("db caída")}
	logger := activity.NewLogger(repo, zerolog.Nop())

	// El rastro de auditoría es best-effort: Record no devuelve error y la
	// operación primaria sigue su curso.
	logger.Record("u1", entity.ActivityLeadAdded, "Added lead", "lead", "l1", nil)
	assert.Empty(t, repo.created)
}
