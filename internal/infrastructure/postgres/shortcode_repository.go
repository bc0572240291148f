package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

var _ repository.ShortcodeRepository = (*ShortcodeRepo)(nil)

const shortcodeColumns = `id, shortcode, name, description, created_by, filters,
	display_options, is_active, created_at, updated_at`

// ShortcodeRepo implementación de ShortcodeRepository.
type ShortcodeRepo struct {
	q Querier
}

// NewShortcodeRepository construye el adaptador.
func NewShortcodeRepository(q Querier) *ShortcodeRepo {
	return &ShortcodeRepo{q: q}
}

func scanShortcode(row pgx.Row) (*entity.PropertyShortcode, error) {
	var s entity.PropertyShortcode
	err := row.Scan(
		&s.ID, &s.Shortcode, &s.Name, &s.Description, &s.CreatedBy, &s.Filters,
		&s.DisplayOptions, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un shortcode. El código público es único.
func (r *ShortcodeRepo) Create(s *entity.PropertyShortcode) error {
	query := `
		INSERT INTO property_shortcodes (id, shortcode, name, description, created_by,
			filters, display_options, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Shortcode, s.Name, s.Description, s.CreatedBy,
		s.Filters, s.DisplayOptions, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shortcode: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene un shortcode si pertenece al usuario. Devuelve nil si no existe.
func (r *ShortcodeRepo) GetByIDAndOwner(id, ownerID string) (*entity.PropertyShortcode, error) {
	query := `SELECT ` + shortcodeColumns + ` FROM property_shortcodes WHERE id = $1 AND created_by = $2`
	s, err := scanShortcode(r.q.QueryRow(context.Background(), query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shortcode: %w", err)
	}
	return s, nil
}

// GetByCode busca por el código público. Devuelve nil si no existe.
func (r *ShortcodeRepo) GetByCode(code string) (*entity.PropertyShortcode, error) {
	query := `SELECT ` + shortcodeColumns + ` FROM property_shortcodes WHERE shortcode = $1`
	s, err := scanShortcode(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shortcode by code: %w", err)
	}
	return s, nil
}

// ListByOwner lista los shortcodes del usuario, más reciente primero.
func (r *ShortcodeRepo) ListByOwner(ownerID string) ([]*entity.PropertyShortcode, error) {
	query := `SELECT ` + shortcodeColumns + ` FROM property_shortcodes WHERE created_by = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list shortcodes: %w", err)
	}
	defer rows.Close()

	var list []*entity.PropertyShortcode
	for rows.Next() {
		s, err := scanShortcode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shortcode: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update actualiza nombre, descripción, filtros y presentación. El código
// público nunca cambia después de creado.
func (r *ShortcodeRepo) Update(s *entity.PropertyShortcode) error {
	query := `
		UPDATE property_shortcodes SET name = $2, description = $3, filters = $4,
			display_options = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Description, s.Filters, s.DisplayOptions, s.IsActive, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shortcode: %w", err)
	}
	return nil
}

// Delete elimina un shortcode.
func (r *ShortcodeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM property_shortcodes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shortcode: %w", err)
	}
	return nil
}

// CodeExists indica si el código público ya está en uso.
func (r *ShortcodeRepo) CodeExists(code string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM property_shortcodes WHERE shortcode = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("code exists: %w", err)
	}
	return exists, nil
}
