package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

var _ repository.PostSaleRepository = (*PostSaleRepo)(nil)

const postSaleColumns = `id, lead_id, property_id, sale_price, sale_date, payment_status,
	documents, handover_date, possession_date, warranty_start_date, warranty_end_date,
	notes, created_at, updated_at`

// PostSaleRepo implementación de PostSaleRepository.
type PostSaleRepo struct {
	q Querier
}

// NewPostSaleRepository construye el adaptador.
func NewPostSaleRepository(q Querier) *PostSaleRepo {
	return &PostSaleRepo{q: q}
}

func scanPostSale(row pgx.Row) (*entity.PostSale, error) {
	var ps entity.PostSale
	err := row.Scan(
		&ps.ID, &ps.LeadID, &ps.PropertyID, &ps.SalePrice, &ps.SaleDate, &ps.PaymentStatus,
		&ps.Documents, &ps.HandoverDate, &ps.PossessionDate, &ps.WarrantyStartDate,
		&ps.WarrantyEndDate, &ps.Notes, &ps.CreatedAt, &ps.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

// Create persiste un registro de postventa. El constraint único de lead_id
// respalda el invariante "como máximo uno por lead".
func (r *PostSaleRepo) Create(ps *entity.PostSale) error {
	query := `
		INSERT INTO post_sales (id, lead_id, property_id, sale_price, sale_date, payment_status,
			documents, handover_date, possession_date, warranty_start_date, warranty_end_date,
			notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		ps.ID, ps.LeadID, ps.PropertyID, ps.SalePrice, ps.SaleDate, ps.PaymentStatus,
		ps.Documents, ps.HandoverDate, ps.PossessionDate, ps.WarrantyStartDate,
		ps.WarrantyEndDate, ps.Notes, ps.CreatedAt, ps.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPostSaleExists
		}
		return fmt.Errorf("insert post sale: %w", err)
	}
	return nil
}

// GetByID obtiene una postventa por ID. Devuelve nil si no existe.
func (r *PostSaleRepo) GetByID(id string) (*entity.PostSale, error) {
	query := `SELECT ` + postSaleColumns + ` FROM post_sales WHERE id = $1`
	ps, err := scanPostSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post sale: %w", err)
	}
	return ps, nil
}

// GetByLeadID obtiene la postventa de un lead. Devuelve nil si no existe.
func (r *PostSaleRepo) GetByLeadID(leadID string) (*entity.PostSale, error) {
	query := `SELECT ` + postSaleColumns + ` FROM post_sales WHERE lead_id = $1`
	ps, err := scanPostSale(r.q.QueryRow(context.Background(), query, leadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post sale by lead: %w", err)
	}
	return ps, nil
}

// List lista postventas con filtros y paginación. Devuelve también el total.
func (r *PostSaleRepo) List(filter repository.PostSaleFilter) ([]*entity.PostSale, int, error) {
	var cond []sq.Sqlizer
	if filter.PaymentStatus != "" {
		cond = append(cond, sq.Eq{"payment_status": filter.PaymentStatus})
	}
	if filter.LeadIDs != nil {
		cond = append(cond, sq.Eq{"lead_id": filter.LeadIDs})
	}

	countQ := psql.Select("COUNT(*)").From("post_sales")
	for _, c := range cond {
		countQ = countQ.Where(c)
	}
	var total int
	sqlStr, args, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count post sales: %w", err)
	}
	if err := r.q.QueryRow(context.Background(), sqlStr, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count post sales: %w", err)
	}

	base := psql.Select(postSaleColumns).From("post_sales")
	for _, c := range cond {
		base = base.Where(c)
	}
	base = base.OrderBy("sale_date DESC")
	if filter.PerPage > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PerPage
		}
		base = base.Limit(uint64(filter.PerPage)).Offset(uint64(offset))
	}

	sqlStr, args, err = base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list post sales: %w", err)
	}
	rows, err := r.q.Query(context.Background(), sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list post sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.PostSale
	for rows.Next() {
		ps, err := scanPostSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan post sale: %w", err)
		}
		list = append(list, ps)
	}
	return list, total, rows.Err()
}

// Update actualiza una postventa.
func (r *PostSaleRepo) Update(ps *entity.PostSale) error {
	query := `
		UPDATE post_sales SET sale_price = $2, sale_date = $3, payment_status = $4,
			documents = $5, handover_date = $6, possession_date = $7,
			warranty_start_date = $8, warranty_end_date = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ps.ID, ps.SalePrice, ps.SaleDate, ps.PaymentStatus,
		ps.Documents, ps.HandoverDate, ps.PossessionDate,
		ps.WarrantyStartDate, ps.WarrantyEndDate, ps.Notes, ps.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update post sale: %w", err)
	}
	return nil
}
