package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

const leadColumns = `id, name, email, phone, source, stage, property_id, assigned_employee_id,
	budget, notes, last_contact_date, next_follow_up, created_at, updated_at`

// LeadRepo implementación de LeadRepository (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Source, &l.Stage, &l.PropertyID,
		&l.AssignedEmployeeID, &l.Budget, &l.Notes, &l.LastContactDate, &l.NextFollowUp,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(l *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, source, stage, property_id,
			assigned_employee_id, budget, notes, last_contact_date, next_follow_up,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.Name, l.Email, l.Phone, l.Source, l.Stage, l.PropertyID,
		l.AssignedEmployeeID, l.Budget, l.Notes, l.LastContactDate, l.NextFollowUp,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID. Devuelve nil si no existe.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	l, err := scanLead(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

// List lista leads con filtros dinámicos y paginación. Devuelve también el total.
func (r *LeadRepo) List(filter repository.LeadFilter) ([]*entity.Lead, int, error) {
	cond := leadConditions(filter)

	countQ := psql.Select("COUNT(*)").From("leads")
	for _, c := range cond {
		countQ = countQ.Where(c)
	}
	var total int
	sqlStr, args, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count leads: %w", err)
	}
	if err := r.q.QueryRow(context.Background(), sqlStr, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	base := psql.Select(leadColumns).From("leads")
	for _, c := range cond {
		base = base.Where(c)
	}
	base = base.OrderBy("created_at DESC")
	if filter.PerPage > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PerPage
		}
		base = base.Limit(uint64(filter.PerPage)).Offset(uint64(offset))
	}

	sqlStr, args, err = base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list leads: %w", err)
	}
	rows, err := r.q.Query(context.Background(), sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, l)
	}
	return list, total, rows.Err()
}

func leadConditions(filter repository.LeadFilter) []sq.Sqlizer {
	var cond []sq.Sqlizer
	if filter.Search != "" {
		term := like(filter.Search)
		cond = append(cond, sq.Or{
			sq.ILike{"name": term},
			sq.ILike{"email": term},
			sq.ILike{"phone": term},
			sq.ILike{"notes": term},
		})
	}
	if filter.Stage != "" {
		cond = append(cond, sq.Eq{"stage": filter.Stage})
	}
	if filter.Source != "" {
		cond = append(cond, sq.Eq{"source": filter.Source})
	}
	if filter.AssignedEmployeeID != nil {
		cond = append(cond, sq.Eq{"assigned_employee_id": *filter.AssignedEmployeeID})
	}
	if filter.PropertyID != nil {
		cond = append(cond, sq.Eq{"property_id": *filter.PropertyID})
	}
	if filter.BudgetMin != nil {
		cond = append(cond, sq.GtOrEq{"budget": *filter.BudgetMin})
	}
	if filter.BudgetMax != nil {
		cond = append(cond, sq.LtOrEq{"budget": *filter.BudgetMax})
	}
	if filter.CreatedFrom != nil {
		cond = append(cond, sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		cond = append(cond, sq.Lt{"created_at": *filter.CreatedTo})
	}
	return cond
}

// Update actualiza un lead.
func (r *LeadRepo) Update(l *entity.Lead) error {
	query := `
		UPDATE leads SET name = $2, email = $3, phone = $4, source = $5, stage = $6,
			property_id = $7, assigned_employee_id = $8, budget = $9, notes = $10,
			last_contact_date = $11, next_follow_up = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.Name, l.Email, l.Phone, l.Source, l.Stage,
		l.PropertyID, l.AssignedEmployeeID, l.Budget, l.Notes,
		l.LastContactDate, l.NextFollowUp, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete elimina un lead por ID (las comunicaciones caen en cascada).
func (r *LeadRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

// DistinctSources devuelve los orígenes de lead en uso.
func (r *LeadRepo) DistinctSources() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT source FROM leads WHERE source <> '' ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("distinct sources: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ListDueFollowUps devuelve leads con next_follow_up en [from, to) y etapa no terminal.
func (r *LeadRepo) ListDueFollowUps(from, to time.Time, assignedEmployeeID *string) ([]*entity.Lead, error) {
	base := psql.Select(leadColumns).From("leads").
		Where(sq.NotEq{"next_follow_up": nil}).
		Where(sq.GtOrEq{"next_follow_up": from}).
		Where(sq.Lt{"next_follow_up": to}).
		Where(sq.NotEq{"stage": []string{entity.StageClosedWon, entity.StageClosedLost}}).
		OrderBy("next_follow_up ASC")
	if assignedEmployeeID != nil {
		base = base.Where(sq.Eq{"assigned_employee_id": *assignedEmployeeID})
	}

	sqlStr, args, err := base.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due follow-ups: %w", err)
	}
	rows, err := r.q.Query(context.Background(), sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list due follow-ups: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
