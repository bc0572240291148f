package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

const propertyColumns = `id, title, description, property_type, sub_type, location, address,
	city, state, pincode, landmark,
	price, price_per_sqft, booking_amount, possession_date,
	area, built_up_area, carpet_area, bedrooms, bathrooms, balconies,
	floor_number, total_floors, direction, age_of_property, furnishing_status,
	amenities, parking,
	status, listing_type, priority, featured, images, virtual_tour,
	assigned_agent_id, is_website_visible,
	highlights, contact_person, contact_phone, contact_email,
	created_at, updated_at`

// PropertyRepo implementación de PropertyRepository (usable con pool o tx).
type PropertyRepo struct {
	q Querier
}

// NewPropertyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

func scanProperty(row pgx.Row) (*entity.Property, error) {
	var p entity.Property
	err := row.Scan(
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
		return nil, err
	}
	return &p, nil
}

// Create persiste una nueva propiedad.
func (r *PropertyRepo) Create(p *entity.Property) error {
	query := `
		INSERT INTO properties (id, title, description, property_type, sub_type, location, address,
			city, state, pincode, landmark,
			price, price_per_sqft, booking_amount, possession_date,
			area, built_up_area, carpet_area, bedrooms, bathrooms, balconies,
			floor_number, total_floors, direction, age_of_property, furnishing_status,
			amenities, parking,
			status, listing_type, priority, featured, images, virtual_tour,
			assigned_agent_id, is_website_visible,
			highlights, contact_person, contact_phone, contact_email,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33,
			$34, $35, $36, $37, $38, $39, $40, $41, $42)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Title, p.Description, p.PropertyType, p.SubType, p.Location, p.Address,
		p.City, p.State, p.Pincode, p.Landmark,
		p.Price, p.PricePerSqft, p.BookingAmount, p.PossessionDate,
		p.Area, p.BuiltUpArea, p.CarpetArea, p.Bedrooms, p.Bathrooms, p.Balconies,
		p.FloorNumber, p.TotalFloors, p.Direction, p.AgeOfProperty, p.FurnishingStatus,
		p.Amenities, p.Parking,
		p.Status, p.ListingType, p.Priority, p.Featured, p.Images, p.VirtualTour,
		p.AssignedAgentID, p.IsWebsiteVisible,
		p.Highlights, p.ContactPerson, p.ContactPhone, p.ContactEmail,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

// GetByID obtiene una propiedad por ID. Devuelve nil si no existe.
func (r *PropertyRepo) GetByID(id string) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// List lista propiedades con filtros dinámicos y paginación. Devuelve también el total.
func (r *PropertyRepo) List(filter repository.PropertyFilter) ([]*entity.Property, int, error) {
	cond := propertyConditions(filter)

	countQ := psql.Select("COUNT(*)").From("properties")
	for _, c := range cond {
		countQ = countQ.Where(c)
	}
	var total int
	sqlStr, args, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count properties: %w", err)
	}
	if err := r.q.QueryRow(context.Background(), sqlStr, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	base := psql.Select(propertyColumns).From("properties")
	for _, c := range cond {
		base = base.Where(c)
	}
	base = base.OrderBy("created_at DESC")
	if filter.Limit > 0 {
		base = base.Limit(uint64(filter.Limit))
	} else if filter.PerPage > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PerPage
		}
		base = base.Limit(uint64(filter.PerPage)).Offset(uint64(offset))
	}

	sqlStr, args, err = base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list properties: %w", err)
	}
	rows, err := r.q.Query(context.Background(), sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var list []*entity.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan property: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

func propertyConditions(filter repository.PropertyFilter) []sq.Sqlizer {
	var cond []sq.Sqlizer
	if filter.Search != "" {
		term := like(filter.Search)
		cond = append(cond, sq.Or{
			sq.ILike{"title": term},
			sq.ILike{"location": term},
			sq.ILike{"description": term},
		})
	}
	if filter.Status != "" {
		cond = append(cond, sq.Eq{"status": filter.Status})
	}
	if filter.PropertyType != "" {
		cond = append(cond, sq.Eq{"property_type": filter.PropertyType})
	}
	if filter.ListingType != "" {
		cond = append(cond, sq.Eq{"listing_type": filter.ListingType})
	}
	if filter.City != "" {
		cond = append(cond, sq.ILike{"city": like(filter.City)})
	}
	if filter.Location != "" {
		cond = append(cond, sq.ILike{"location": like(filter.Location)})
	}
	if filter.PriceMin != nil {
		cond = append(cond, sq.GtOrEq{"price": *filter.PriceMin})
	}
	if filter.PriceMax != nil {
		cond = append(cond, sq.LtOrEq{"price": *filter.PriceMax})
	}
	if filter.BedroomsMin != nil {
		cond = append(cond, sq.GtOrEq{"bedrooms": *filter.BedroomsMin})
	}
	if filter.BathroomsMin != nil {
		cond = append(cond, sq.GtOrEq{"bathrooms": *filter.BathroomsMin})
	}
	if filter.AssignedAgentID != nil {
		cond = append(cond, sq.Eq{"assigned_agent_id": *filter.AssignedAgentID})
	}
	if filter.WebsiteVisible != nil {
		cond = append(cond, sq.Eq{"is_website_visible": *filter.WebsiteVisible})
	}
	if filter.Featured != nil {
		cond = append(cond, sq.Eq{"featured": *filter.Featured})
	}
	if filter.CreatedFrom != nil {
		cond = append(cond, sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		cond = append(cond, sq.Lt{"created_at": *filter.CreatedTo})
	}
	return cond
}

// Update actualiza una propiedad completa.
func (r *PropertyRepo) Update(p *entity.Property) error {
	query := `
		UPDATE properties SET title = $2, description = $3, property_type = $4, sub_type = $5,
			location = $6, address = $7, city = $8, state = $9, pincode = $10, landmark = $11,
			price = $12, price_per_sqft = $13, booking_amount = $14, possession_date = $15,
			area = $16, built_up_area = $17, carpet_area = $18, bedrooms = $19, bathrooms = $20,
			balconies = $21, floor_number = $22, total_floors = $23, direction = $24,
			age_of_property = $25, furnishing_status = $26, amenities = $27, parking = $28,
			status = $29, listing_type = $30, priority = $31, featured = $32, images = $33,
			virtual_tour = $34, assigned_agent_id = $35, is_website_visible = $36,
			highlights = $37, contact_person = $38, contact_phone = $39, contact_email = $40,
			updated_at = $41
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Title, p.Description, p.PropertyType, p.SubType,
		p.Location, p.Address, p.City, p.State, p.Pincode, p.Landmark,
		p.Price, p.PricePerSqft, p.BookingAmount, p.PossessionDate,
		p.Area, p.BuiltUpArea, p.CarpetArea, p.Bedrooms, p.Bathrooms,
		p.Balconies, p.FloorNumber, p.TotalFloors, p.Direction,
		p.AgeOfProperty, p.FurnishingStatus, p.Amenities, p.Parking,
		p.Status, p.ListingType, p.Priority, p.Featured, p.Images,
		p.VirtualTour, p.AssignedAgentID, p.IsWebsiteVisible,
		p.Highlights, p.ContactPerson, p.ContactPhone, p.ContactEmail,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	return nil
}

// Delete elimina una propiedad por ID.
func (r *PropertyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return nil
}

// DistinctTypes devuelve los tipos de propiedad en uso.
func (r *PropertyRepo) DistinctTypes() ([]string, error) {
	return r.distinct("property_type")
}

// DistinctLocations devuelve las ubicaciones en uso.
func (r *PropertyRepo) DistinctLocations() ([]string, error) {
	return r.distinct("location")
}

func (r *PropertyRepo) distinct(column string) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM properties WHERE %s <> '' ORDER BY %s`, column, column, column)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
