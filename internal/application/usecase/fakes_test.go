package usecase_test

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/estatecrm-api/internal/application/activity"
	"github.com/jhoicas/estatecrm-api/internal/application/notify"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso. Guardan lo creado para que los
// tests puedan afirmar sobre efectos secundarios (avisos, auditoría).

type fkLeads struct {
	byID       map[string]*entity.Lead
	lastFilter repository.LeadFilter
}

func newFkLeads(leads ...*entity.Lead) *fkLeads {
	f := &fkLeads{byID: make(map[string]*entity.Lead)}
	for _, l := range leads {
		f.byID[l.ID] = l
	}
	return f
}

func (f *fkLeads) Create(l *entity.Lead) error { f.byID[l.ID] = l; return nil }
func (f *fkLeads) GetByID(id string) (*entity.Lead, error) {
	return f.byID[id], nil
}
func (f *fkLeads) List(filter repository.LeadFilter) ([]*entity.Lead, int, error) {
	f.lastFilter = filter
	out := make([]*entity.Lead, 0, len(f.byID))
	for _, l := range f.byID {
		out = append(out, l)
	}
	return out, len(out), nil
}
func (f *fkLeads) Update(l *entity.Lead) error { f.byID[l.ID] = l; return nil }
func (f *fkLeads) Delete(id string) error      { delete(f.byID, id); return nil }
func (f *fkLeads) DistinctSources() ([]string, error) {
	return []string{"manual", "website"}, nil
}
func (f *fkLeads) ListDueFollowUps(from, to time.Time, assignedEmployeeID *string) ([]*entity.Lead, error) {
	return nil, nil
}

type fkProps struct {
	byID       map[string]*entity.Property
	lastFilter repository.PropertyFilter
}

func newFkProps(props ...*entity.Property) *fkProps {
	f := &fkProps{byID: make(map[string]*entity.Property)}
	for _, p := range props {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fkProps) Create(p *entity.Property) error { f.byID[p.ID] = p; return nil }
func (f *fkProps) GetByID(id string) (*entity.Property, error) {
	return f.byID[id], nil
}
func (f *fkProps) List(filter repository.PropertyFilter) ([]*entity.Property, int, error) {
	f.lastFilter = filter
	out := make([]*entity.Property, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, len(out), nil
}
func (f *fkProps) Update(p *entity.Property) error { f.byID[p.ID] = p; return nil }
func (f *fkProps) Delete(id string) error          { delete(f.byID, id); return nil }
func (f *fkProps) DistinctTypes() ([]string, error) {
	return []string{"apartment"}, nil
}
func (f *fkProps) DistinctLocations() ([]string, error) {
	return []string{"centro"}, nil
}

type fkPostSales struct {
	byID   map[string]*entity.PostSale
	byLead map[string]*entity.PostSale
}

func newFkPostSales(sales ...*entity.PostSale) *fkPostSales {
	f := &fkPostSales{byID: make(map[string]*entity.PostSale), byLead: make(map[string]*entity.PostSale)}
	for _, ps := range sales {
		f.byID[ps.ID] = ps
		f.byLead[ps.LeadID] = ps
	}
	return f
}

func (f *fkPostSales) Create(ps *entity.PostSale) error {
	f.byID[ps.ID] = ps
	f.byLead[ps.LeadID] = ps
	return nil
}
func (f *fkPostSales) GetByID(id string) (*entity.PostSale, error) {
	return f.byID[id], nil
}
func (f *fkPostSales) GetByLeadID(leadID string) (*entity.PostSale, error) {
	return f.byLead[leadID], nil
}
func (f *fkPostSales) List(repository.PostSaleFilter) ([]*entity.PostSale, int, error) {
	return nil, 0, nil
}
func (f *fkPostSales) Update(ps *entity.PostSale) error { f.byID[ps.ID] = ps; return nil }

type fkPayments struct {
	byID map[string]*entity.Payment
}

func newFkPayments(payments ...*entity.Payment) *fkPayments {
	f := &fkPayments{byID: make(map[string]*entity.Payment)}
	for _, p := range payments {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fkPayments) Create(p *entity.Payment) error { f.byID[p.ID] = p; return nil }
func (f *fkPayments) GetByID(id, postSaleID string) (*entity.Payment, error) {
	p := f.byID[id]
	if p == nil || p.PostSaleID != postSaleID {
		return nil, nil
	}
	return p, nil
}
func (f *fkPayments) ListByPostSale(postSaleID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.byID {
		if p.PostSaleID == postSaleID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fkPayments) Update(p *entity.Payment) error { f.byID[p.ID] = p; return nil }

type fkTickets struct {
	byID map[string]*entity.SupportTicket
}

func newFkTickets() *fkTickets {
	return &fkTickets{byID: make(map[string]*entity.SupportTicket)}
}

func (f *fkTickets) Create(t *entity.SupportTicket) error { f.byID[t.ID] = t; return nil }
func (f *fkTickets) GetByID(id, postSaleID string) (*entity.SupportTicket, error) {
	t := f.byID[id]
	if t == nil || t.PostSaleID != postSaleID {
		return nil, nil
	}
	return t, nil
}
func (f *fkTickets) ListByPostSale(postSaleID string) ([]*entity.SupportTicket, error) {
	var out []*entity.SupportTicket
	for _, t := range f.byID {
		if t.PostSaleID == postSaleID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (f *fkTickets) Update(t *entity.SupportTicket) error { f.byID[t.ID] = t; return nil }

type fkComms struct {
	created []*entity.Communication
}

func (f *fkComms) Create(c *entity.Communication) error {
	f.created = append(f.created, c)
	return nil
}
func (f *fkComms) ListByLead(leadID string) ([]*entity.Communication, error) {
	var out []*entity.Communication
	for _, c := range f.created {
		if c.LeadID == leadID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fkNotifs struct {
	created []*entity.Notification
}

func (f *fkNotifs) Create(n *entity.Notification) error {
	f.created = append(f.created, n)
	return nil
}
func (f *fkNotifs) GetByIDAndUser(string, string) (*entity.Notification, error) { return nil, nil }
func (f *fkNotifs) ListByUser(string, bool, int, int) ([]*entity.Notification, int, error) {
	return nil, 0, nil
}
func (f *fkNotifs) CountUnread(string) (int, error) { return 0, nil }
func (f *fkNotifs) MarkRead(string) error           { return nil }
func (f *fkNotifs) MarkAllRead(string) error        { return nil }
func (f *fkNotifs) Delete(string) error             { return nil }
func (f *fkNotifs) ExistsRecentFollowUp(string, string, time.Time) (bool, error) {
	return false, nil
}

// byTitle filtra los avisos creados por título.
func (f *fkNotifs) byTitle(title string) []*entity.Notification {
	var out []*entity.Notification
	for _, n := range f.created {
		if n.Title == title {
			out = append(out, n)
		}
	}
	return out
}

type fkUsers struct {
	byID     map[string]*entity.User
	managers []*entity.User
}

func newFkUsers(managers ...*entity.User) *fkUsers {
	f := &fkUsers{byID: make(map[string]*entity.User), managers: managers}
	for _, u := range managers {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fkUsers) Create(u *entity.User) error { f.byID[u.ID] = u; return nil }
func (f *fkUsers) GetByID(id string) (*entity.User, error) {
	return f.byID[id], nil
}
func (f *fkUsers) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (f *fkUsers) List(repository.UserFilter) ([]*entity.User, int, error) {
	return nil, 0, nil
}
func (f *fkUsers) ListByRoles(roles ...string) ([]*entity.User, error) {
	return f.managers, nil
}
func (f *fkUsers) Update(u *entity.User) error { f.byID[u.ID] = u; return nil }
func (f *fkUsers) Delete(id string) error      { delete(f.byID, id); return nil }

type fkActs struct {
	created []*entity.Activity
}

func (f *fkActs) Create(a *entity.Activity) error {
	f.created = append(f.created, a)
	return nil
}
func (f *fkActs) List(repository.ActivityFilter) ([]*entity.Activity, int, error) {
	return nil, 0, nil
}
func (f *fkActs) ListRecent(time.Time, int) ([]*entity.Activity, error) { return nil, nil }
func (f *fkActs) CountsByType(time.Time) ([]repository.TypeCount, error) {
	return nil, nil
}
func (f *fkActs) DailyCounts(time.Time) ([]repository.DailyCount, error) {
	return nil, nil
}
func (f *fkActs) TopUsers(time.Time, int) ([]repository.UserActivityCount, error) {
	return nil, nil
}

func (f *fkActs) byType(t string) []*entity.Activity {
	var out []*entity.Activity
	for _, a := range f.created {
		if a.ActivityType == t {
			out = append(out, a)
		}
	}
	return out
}

type fkShortcodes struct {
	byID   map[string]*entity.PropertyShortcode
	byCode map[string]*entity.PropertyShortcode
}

func newFkShortcodes(codes ...*entity.PropertyShortcode) *fkShortcodes {
	f := &fkShortcodes{
		byID:   make(map[string]*entity.PropertyShortcode),
		byCode: make(map[string]*entity.PropertyShortcode),
	}
	for _, s := range codes {
		f.byID[s.ID] = s
		f.byCode[s.Shortcode] = s
	}
	return f
}

func (f *fkShortcodes) Create(s *entity.PropertyShortcode) error {
	f.byID[s.ID] = s
	f.byCode[s.Shortcode] = s
	return nil
}
func (f *fkShortcodes) GetByIDAndOwner(id, ownerID string) (*entity.PropertyShortcode, error) {
	s := f.byID[id]
	if s == nil || s.CreatedBy != ownerID {
		return nil, nil
	}
	return s, nil
}
func (f *fkShortcodes) GetByCode(code string) (*entity.PropertyShortcode, error) {
	return f.byCode[code], nil
}
func (f *fkShortcodes) ListByOwner(ownerID string) ([]*entity.PropertyShortcode, error) {
	var out []*entity.PropertyShortcode
	for _, s := range f.byID {
		if s.CreatedBy == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fkShortcodes) Update(s *entity.PropertyShortcode) error { f.byID[s.ID] = s; return nil }
func (f *fkShortcodes) Delete(id string) error {
	if s := f.byID[id]; s != nil {
		delete(f.byCode, s.Shortcode)
	}
	delete(f.byID, id)
	return nil
}
func (f *fkShortcodes) CodeExists(code string) (bool, error) {
	_, ok := f.byCode[code]
	return ok, nil
}

// Cableado común de efectos secundarios.

func testActivity(acts *fkActs) *activity.Logger {
	return activity.NewLogger(acts, zerolog.Nop())
}

func testFanout(notifs *fkNotifs, users *fkUsers) *notify.Fanout {
	return notify.NewFanout(notifs, notify.NewManagerAudience(users), zerolog.Nop())
}

func mgr(id string) *entity.User {
	return &entity.User{ID: id, Role: entity.RoleManager, IsActive: true}
}
