package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// FavoriteRepo implementación de FavoriteRepository.
type FavoriteRepo struct {
	q Querier
}

// NewFavoriteRepository construye el adaptador.
func NewFavoriteRepository(q Querier) *FavoriteRepo {
	return &FavoriteRepo{q: q}
}

// Create persiste un favorito. El par (usuario, propiedad) es único.
func (r *FavoriteRepo) Create(f *entity.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, property_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, f.ID, f.UserID, f.PropertyID, f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// GetByUserAndProperty obtiene el favorito del par. Devuelve nil si no existe.
func (r *FavoriteRepo) GetByUserAndProperty(userID, propertyID string) (*entity.Favorite, error) {
	query := `SELECT id, user_id, property_id, created_at FROM favorites WHERE user_id = $1 AND property_id = $2`
	var f entity.Favorite
	err := r.q.QueryRow(context.Background(), query, userID, propertyID).
		Scan(&f.ID, &f.UserID, &f.PropertyID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	return &f, nil
}

// prefixColumns antepone el alias a cada columna de la lista.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// ListByUser lista los favoritos del usuario con la propiedad asociada.
// Devuelve también el total.
func (r *FavoriteRepo) ListByUser(userID string, filter repository.FavoriteFilter) ([]*entity.Favorite, int, error) {
	cond := []sq.Sqlizer{sq.Eq{"f.user_id": userID}}
	if filter.Search != "" {
		term := like(filter.Search)
		cond = append(cond, sq.Or{
			sq.ILike{"p.title": term},
			sq.ILike{"p.location": term},
			sq.ILike{"p.description": term},
		})
	}
	if filter.PropertyType != "" {
		cond = append(cond, sq.Eq{"p.property_type": filter.PropertyType})
	}

	join := "properties p ON p.id = f.property_id"

	countQ := psql.Select("COUNT(*)").From("favorites f").Join(join)
	for _, c := range cond {
		countQ = countQ.Where(c)
	}
	var total int
	sqlStr, args, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count favorites: %w", err)
	}
	if err := r.q.QueryRow(context.Background(), sqlStr, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count favorites: %w", err)
	}

	order := "f.created_at DESC"
	switch filter.SortBy {
	case "price_asc":
		order = "p.price ASC"
	case "price_desc":
		order = "p.price DESC"
	case "area":
		order = "p.area DESC"
	}

	base := psql.Select("f.id, f.user_id, f.property_id, f.created_at, " + prefixColumns("p", propertyColumns)).
		From("favorites f").Join(join).OrderBy(order)
	for _, c := range cond {
		base = base.Where(c)
	}
	if filter.PerPage > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PerPage
		}
		base = base.Limit(uint64(filter.PerPage)).Offset(uint64(offset))
	}

	sqlStr, args, err = base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list favorites: %w", err)
	}
	rows, err := r.q.Query(context.Background(), sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var list []*entity.Favorite
	for rows.Next() {
		var f entity.Favorite
		var p entity.Property
		err := rows.Scan(
			&f.ID, &f.UserID, &f.PropertyID, &f.CreatedAt,
			&p.ID, &p.Title, &p.Description, &p.PropertyType, &p.SubType, &p.Location, &p.Address,
			&p.City, &p.State, &p.Pincode, &p.Landmark,
			&p.Price, &p.PricePerSqft, &p.BookingAmount, &p.PossessionDate,
			&p.Area, &p.BuiltUpArea, &p.CarpetArea, &p.Bedrooms, &p.Bathrooms, &p.Balconies,
			&p.FloorNumber, &p.TotalFloors, &p.Direction, &p.AgeOfProperty, &p.FurnishingStatus,
			&p.Amenities, &p.Parking,
			&p.Status, &p.ListingType, &p.Priority, &p.Featured, &p.Images, &p.VirtualTour,
			&p.AssignedAgentID, &p.IsWebsiteVisible,
			&p.Highlights, &p.ContactPerson, &p.ContactPhone, &p.ContactEmail,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan favorite: %w", err)
		}
		f.Property = &p
		list = append(list, &f)
	}
	return list, total, rows.Err()
}

// Delete elimina un favorito.
func (r *FavoriteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
