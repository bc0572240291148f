package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

const activityColumns = `a.id, a.user_id, a.activity_type, a.description, a.entity_type,
	a.entity_id, a.metadata, a.created_at, COALESCE(u.first_name || ' ' || u.last_name, 'Sistema')`

// ActivityRepo persistencia del rastro de auditoría (solo inserción y lectura).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador.
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create persiste una actividad.
func (r *ActivityRepo) Create(a *entity.Activity) error {
	query := `
		INSERT INTO activities (id, user_id, activity_type, description, entity_type, entity_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.ActivityType, a.Description, a.EntityType, a.EntityID, a.Metadata, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepo) scanActivities(sqlStr string, args []any) ([]*entity.Activity, error) {
	rows, err := r.q.Query(context.Background(), sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		err := rows.Scan(
			&a.ID, &a.UserID, &a.ActivityType, &a.Description, &a.EntityType,
			&a.EntityID, &a.Metadata, &a.CreatedAt, &a.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// List lista actividades con filtros, más reciente primero. Devuelve también el total.
func (r *ActivityRepo) List(filter repository.ActivityFilter) ([]*entity.Activity, int, error) {
	var cond []sq.Sqlizer
	if filter.ActivityType != "" && filter.ActivityType != "all" {
		cond = append(cond, sq.Eq{"a.activity_type": filter.ActivityType})
	}
	if filter.Search != "" {
		term := like(filter.Search)
		cond = append(cond, sq.Or{
			sq.ILike{"a.description": term},
			sq.ILike{"u.first_name || ' ' || u.last_name": term},
		})
	}

	join := "users u ON u.id = a.user_id"

	countQ := psql.Select("COUNT(*)").From("activities a").LeftJoin(join)
	for _, c := range cond {
		countQ = countQ.Where(c)
	}
	var total int
	sqlStr, args, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count activities: %w", err)
	}
	if err := r.q.QueryRow(context.Background(), sqlStr, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activities: %w", err)
	}

	base := psql.Select(activityColumns).From("activities a").LeftJoin(join)
	for _, c := range cond {
		base = base.Where(c)
	}
	base = base.OrderBy("a.created_at DESC")
	if filter.PerPage > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PerPage
		}
		base = base.Limit(uint64(filter.PerPage)).Offset(uint64(offset))
	}

	sqlStr, args, err = base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list activities: %w", err)
	}
	list, err := r.scanActivities(sqlStr, args)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListRecent devuelve las últimas actividades desde `since`.
func (r *ActivityRepo) ListRecent(since time.Time, limit int) ([]*entity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities a LEFT JOIN users u ON u.id = a.user_id
		WHERE a.created_at >= $1
		ORDER BY a.created_at DESC LIMIT $2`
	return r.scanActivities(query, []any{since, limit})
}

// CountsByType agrupa actividades por tipo desde `since`.
func (r *ActivityRepo) CountsByType(since time.Time) ([]repository.TypeCount, error) {
	query := `
		SELECT activity_type, COUNT(*) FROM activities
		WHERE created_at >= $1
		GROUP BY activity_type ORDER BY COUNT(*) DESC`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("counts by type: %w", err)
	}
	defer rows.Close()

	var out []repository.TypeCount
	for rows.Next() {
		var tc repository.TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan type count: %w", err)
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

// DailyCounts agrupa actividades por día desde `since`.
func (r *ActivityRepo) DailyCounts(since time.Time) ([]repository.DailyCount, error) {
	query := `
		SELECT to_char(created_at::date, 'YYYY-MM-DD'), COUNT(*) FROM activities
		WHERE created_at >= $1
		GROUP BY created_at::date ORDER BY created_at::date`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("daily counts: %w", err)
	}
	defer rows.Close()

	var out []repository.DailyCount
	for rows.Next() {
		var dc repository.DailyCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

// TopUsers devuelve los usuarios más activos desde `since`.
func (r *ActivityRepo) TopUsers(since time.Time, limit int) ([]repository.UserActivityCount, error) {
	query := `
		SELECT COALESCE(u.first_name || ' ' || u.last_name, 'Sistema'), COUNT(*)
		FROM activities a LEFT JOIN users u ON u.id = a.user_id
		WHERE a.created_at >= $1
		GROUP BY u.first_name, u.last_name
		ORDER BY COUNT(*) DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("top users: %w", err)
	}
	defer rows.Close()

	var out []repository.UserActivityCount
	for rows.Next() {
		var uc repository.UserActivityCount
		if err := rows.Scan(&uc.UserName, &uc.Count); err != nil {
			return nil, fmt.Errorf("scan user count: %w", err)
		}
		out = append(out, uc)
	}
	return out, rows.Err()
}
