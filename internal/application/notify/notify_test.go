package notify_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estatecrm-api/internal/application/notify"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	managers []*entity.User
	err      error
}

func (f *fakeUserRepo) Create(*entity.User) error                { return nil }
func (f *fakeUserRepo) GetByID(string) (*entity.User, error)     { return nil, nil }
func (f *fakeUserRepo) GetByEmail(string) (*entity.User, error)  { return nil, nil }
func (f *fakeUserRepo) Update(*entity.User) error                { return nil }
func (f *fakeUserRepo) Delete(string) error                      { return nil }
func (f *fakeUserRepo) List(repository.UserFilter) ([]*entity.User, int, error) {
	return nil, 0, nil
}
func (f *fakeUserRepo) ListByRoles(roles ...string) ([]*entity.User, error) {
	return f.managers, f.err
}

type fakeNotificationRepo struct {
	created   []*entity.Notification
	createErr error
	recent    bool
	recentErr error
}

func (f *fakeNotificationRepo) Create(n *entity.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, n)
	return nil
}
func (f *fakeNotificationRepo) GetByIDAndUser(string, string) (*entity.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationRepo) ListByUser(string, bool, int, int) ([]*entity.Notification, int, error) {
	return nil, 0, nil
}
func (f *fakeNotificationRepo) CountUnread(string) (int, error) { return 0, nil }
func (f *fakeNotificationRepo) MarkRead(string) error           { return nil }
func (f *fakeNotificationRepo) MarkAllRead(string) error        { return nil }
func (f *fakeNotificationRepo) Delete(string) error             { return nil }
func (f *fakeNotificationRepo) ExistsRecentFollowUp(string, string, time.Time) (bool, error) {
	return f.recent, f.recentErr
}

type fakeLeadRepo struct {
	due []*entity.Lead
	err error
}

func (f *fakeLeadRepo) Create(*entity.Lead) error            { return nil }
func (f *fakeLeadRepo) GetByID(string) (*entity.Lead, error) { return nil, nil }
func (f *fakeLeadRepo) List(repository.LeadFilter) ([]*entity.Lead, int, error) {
	return nil, 0, nil
}
func (f *fakeLeadRepo) Update(*entity.Lead) error          { return nil }
func (f *fakeLeadRepo) Delete(string) error                { return nil }
func (f *fakeLeadRepo) DistinctSources() ([]string, error) { return nil, nil }
func (f *fakeLeadRepo) ListDueFollowUps(from, to time.Time, assignedEmployeeID *string) ([]*entity.Lead, error) {
	return f.due, f.err
}

func manager(id string) *entity.User {
	return &entity.User{ID: id, Role: entity.RoleManager, IsActive: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// ManagerAudience
// ──────────────────────────────────────────────────────────────────────────────

func TestManagerAudience_ExcluyeAlActor(t *testing.T) {
	users := &fakeUserRepo{managers: []*entity.User{manager("m1"), manager("m2"), manager("m3")}}
	audience := notify.NewManagerAudience(users)

	ids, err := audience.Managers("m2")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m3"}, ids, "el actor no debe recibir su propia difusión")
}

func TestManagerAudience_SinExclusionRecibeTodos(t *testing.T) {
	users := &fakeUserRepo{managers: []*entity.User{manager("m1"), manager("m2")}}
	audience := notify.NewManagerAudience(users)

	ids, err := audience.Managers("")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, ids,
		"los eventos públicos (website, embed) notifican a toda la audiencia")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fanout
// ──────────────────────────────────────────────────────────────────────────────

func TestFanout_NotifyManagers_CreaUnAvisoPorDestinatario(t *testing.T) {
	users := &fakeUserRepo{managers: []*entity.User{manager("m1"), manager("m2")}}
	repo := &fakeNotificationRepo{}
	fanout := notify.NewFanout(repo, notify.NewManagerAudience(users), zerolog.Nop())

	fanout.NotifyManagers("", "New Website Lead", "Ana se registró", entity.NotificationLead, "lead", "lead-1")

	require.Len(t, repo.created, 2)
	for _, n := range repo.created {
		assert.Equal(t, "New Website Lead", n.Title)
		assert.Equal(t, entity.NotificationLead, n.Type)
		assert.Equal(t, "lead", n.EntityType)
		assert.Equal(t, "lead-1", n.EntityID)
		assert.False(t, n.IsRead)
	}
	assert.Equal(t, "m1", repo.created[0].UserID)
	assert.Equal(t, "m2", repo.created[1].UserID)
}

func TestFanout_FalloDeInsert_NoPropaga(t *testing.T) {
	users := &fakeUserRepo{managers: []*entity.User{manager("m1")}}
	repo := &fakeNotificationRepo{createErr: errors.New("db caída")}
	fanout := notify.NewFanout(repo, notify.NewManagerAudience(users), zerolog.Nop())

	// No hay error que observar: la difusión es best-effort y no debe
	// entorpecer la operación primaria.
	fanout.NotifyManagers("", "titulo", "mensaje", entity.NotificationSystem, "lead", "l1")
	assert.Empty(t, repo.created)
}

func TestFanout_FalloDeAudiencia_NoPropaga(t *testing.T) {
	users := &fakeUserRepo{err: errors.New("db caída")}
	repo := &fakeNotificationRepo{}
	fanout := notify.NewFanout(repo, notify.NewManagerAudience(users), zerolog.Nop())

	fanout.NotifyManagers("", "titulo", "mensaje", entity.NotificationSystem, "lead", "l1")
	assert.Empty(t, repo.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Scanner
// ──────────────────────────────────────────────────────────────────────────────

func dueLead(id, name, assignee string, next time.Time) *entity.Lead {
	return &entity.Lead{
		ID:                 id,
		Name:               name,
		Stage:              entity.StageContacted,
		AssignedEmployeeID: &assignee,
		NextFollowUp:       &next,
	}
}

func TestScanner_CreaAvisoConHorasRestantes(t *testing.T) {
	now := time.Date(2026, time.July, 15, 10, 0, 0, 0, time.UTC)
	// Vence en 5h30m: el mensaje redondea hacia abajo a 5 horas.
	leads := &fakeLeadRepo{due: []*entity.Lead{
		dueLead("l1", "Carlos Ruiz", "emp1", now.Add(5*time.Hour+30*time.Minute)),
	}}
	repo := &fakeNotificationRepo{}
	scanner := notify.NewScanner(leads, repo, zerolog.Nop())

	created, err := scanner.Scan(now)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, "emp1", n.UserID)
	assert.Equal(t, "Follow-up Due Soon", n.Title)
	assert.Equal(t, "Follow-up with Carlos Ruiz due in 5 hours", n.Message)
	assert.Equal(t, entity.NotificationFollowUp, n.Type)
	assert.Equal(t, "lead", n.EntityType)
	assert.Equal(t, "l1", n.EntityID)
}

func TestScanner_OmiteLeadsSinAsignado(t *testing.T) {
	now := time.Now().UTC()
	next := now.Add(2 * time.Hour)
	leads := &fakeLeadRepo{due: []*entity.Lead{
		{ID: "l1", Name: "Sin Dueño", NextFollowUp: &next}, // AssignedEmployeeID nil
	}}
	repo := &fakeNotificationRepo{}
	scanner := notify.NewScanner(leads, repo, zerolog.Nop())

	created, err := scanner.Scan(now)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Empty(t, repo.created)
}

func TestScanner_DeDupDeAvisosRecientes(t *testing.T) {
	now := time.Now().UTC()
	leads := &fakeLeadRepo{due: []*entity.Lead{
		dueLead("l1", "Carlos", "emp1", now.Add(3*time.Hour)),
	}}
	repo := &fakeNotificationRepo{recent: true}
	scanner := notify.NewScanner(leads, repo, zerolog.Nop())

	created, err := scanner.Scan(now)
	require.NoError(t, err)
	assert.Zero(t, created, "no debe repetirse el aviso si hay uno reciente")
	assert.Empty(t, repo.created)
}

func TestScanner_FalloDeInsert_ContinuaConElResto(t *testing.T) {
	now := time.Now().UTC()
	leads := &fakeLeadRepo{due: []*entity.Lead{
		dueLead("l1", "Uno", "emp1", now.Add(time.Hour)),
	}}
	repo := &fakeNotificationRepo{createErr: errors.New("db caída")}
	scanner := notify.NewScanner(leads, repo, zerolog.Nop())

	created, err := scanner.Scan(now)
	require.NoError(t, err, "el fallo por lead se loguea, no aborta el escaneo")
	assert.Zero(t, created)
}

func TestScanner_FalloDelListado_SiPropaga(t *testing.T) {
	leads := &fakeLeadRepo{err: errors.New("db caída")}
	scanner := notify.NewScanner(leads, &fakeNotificationRepo{}, zerolog.Nop())

	_, err := scanner.Scan(time.Now().UTC())
	assert.Error(t, err)
}
