package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyRequest entrada para crear una propiedad. Solo título, tipo,
// ubicación y precio son obligatorios; el resto es opcional.
type PropertyRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=300"`
	Description  string `json:"description"`
	PropertyType string `json:"property_type" validate:"required"`
	SubType      string `json:"sub_type"`
	Location     string `json:"location" validate:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Landmark     string `json:"landmark"`

	Price          decimal.Decimal  `json:"price" validate:"required"`
	PricePerSqft   *decimal.Decimal `json:"price_per_sqft"`
	BookingAmount  *decimal.Decimal `json:"booking_amount"`
	PossessionDate *time.Time       `json:"possession_date"`

	Area             *decimal.Decimal `json:"area"`
	BuiltUpArea      *decimal.Decimal `json:"built_up_area"`
	CarpetArea       *decimal.Decimal `json:"carpet_area"`
	Bedrooms         *int             `json:"bedrooms"`
	Bathrooms        *int             `json:"bathrooms"`
	Balconies        *int             `json:"balconies"`
	FloorNumber      *int             `json:"floor_number"`
	TotalFloors      *int             `json:"total_floors"`
	Direction        string           `json:"direction"`
	AgeOfProperty    string           `json:"age_of_property"`
	FurnishingStatus string           `json:"furnishing_status"`

	Amenities []string `json:"amenities"`
	Parking   string   `json:"parking"`

	Status           string   `json:"status" validate:"omitempty,oneof=available sold rented leased upcoming"`
	ListingType      string   `json:"listing_type"`
	Priority         string   `json:"priority"`
	Featured         bool     `json:"featured"`
	Images           []string `json:"images"`
	VirtualTour      string   `json:"virtual_tour"`
	AssignedAgentID  *string  `json:"assigned_agent_id"`
	IsWebsiteVisible bool     `json:"is_website_visible"`

	Highlights    string `json:"highlights"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`
}

// UpdatePropertyRequest entrada para actualizar; solo los campos presentes se aplican.
type UpdatePropertyRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	PropertyType *string `json:"property_type"`
	SubType      *string `json:"sub_type"`
	Location     *string `json:"location"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Pincode      *string `json:"pincode"`
	Landmark     *string `json:"landmark"`

	Price          *decimal.Decimal `json:"price"`
	PricePerSqft   *decimal.Decimal `json:"price_per_sqft"`
	BookingAmount  *decimal.Decimal `json:"booking_amount"`
	PossessionDate *time.Time       `json:"possession_date"`

	Area             *decimal.Decimal `json:"area"`
	BuiltUpArea      *decimal.Decimal `json:"built_up_area"`
	CarpetArea       *decimal.Decimal `json:"carpet_area"`
	Bedrooms         *int             `json:"bedrooms"`
	Bathrooms        *int             `json:"bathrooms"`
	Balconies        *int             `json:"balconies"`
	FloorNumber      *int             `json:"floor_number"`
	TotalFloors      *int             `json:"total_floors"`
	Direction        *string          `json:"direction"`
	AgeOfProperty    *string          `json:"age_of_property"`
	FurnishingStatus *string          `json:"furnishing_status"`

	Amenities *[]string `json:"amenities"`
	Parking   *string   `json:"parking"`

	Status           *string   `json:"status" validate:"omitempty,oneof=available sold rented leased upcoming"`
	ListingType      *string   `json:"listing_type"`
	Priority         *string   `json:"priority"`
	Featured         *bool     `json:"featured"`
	Images           *[]string `json:"images"`
	VirtualTour      *string   `json:"virtual_tour"`
	AssignedAgentID  *string   `json:"assigned_agent_id"`
	IsWebsiteVisible *bool     `json:"is_website_visible"`

	Highlights    *string `json:"highlights"`
	ContactPerson *string `json:"contact_person"`
	ContactPhone  *string `json:"contact_phone"`
	ContactEmail  *string `json:"contact_email"`
}

// PropertyResponse salida de una propiedad.
type PropertyResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PropertyType string `json:"property_type"`
	SubType      string `json:"sub_type"`
	Location     string `json:"location"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Landmark     string `json:"landmark"`

	Price          decimal.Decimal  `json:"price"`
	PricePerSqft   *decimal.Decimal `json:"price_per_sqft"`
	BookingAmount  *decimal.Decimal `json:"booking_amount"`
	PossessionDate *time.Time       `json:"possession_date"`

	Area             *decimal.Decimal `json:"area"`
	BuiltUpArea      *decimal.Decimal `json:"built_up_area"`
	CarpetArea       *decimal.Decimal `json:"carpet_area"`
	Bedrooms         *int             `json:"bedrooms"`
	Bathrooms        *int             `json:"bathrooms"`
	Balconies        *int             `json:"balconies"`
	FloorNumber      *int             `json:"floor_number"`
	TotalFloors      *int             `json:"total_floors"`
	Direction        string           `json:"direction"`
	AgeOfProperty    string           `json:"age_of_property"`
	FurnishingStatus string           `json:"furnishing_status"`

	Amenities []string `json:"amenities"`
	Parking   string   `json:"parking"`

	Status           string   `json:"status"`
	ListingType      string   `json:"listing_type"`
	Priority         string   `json:"priority"`
	Featured         bool     `json:"featured"`
	Images           []string `json:"images"`
	VirtualTour      string   `json:"virtual_tour"`
	AssignedAgentID  *string  `json:"assigned_agent_id"`
	IsWebsiteVisible bool     `json:"is_website_visible"`

	Highlights    string `json:"highlights"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PropertyListResponse listado paginado de propiedades.
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Meta       PageResponse       `json:"meta"`
}

// BulkUploadRequest lote de propiedades a crear en una sola transacción.
type BulkUploadRequest struct {
	Properties []PropertyRequest `json:"properties" validate:"required,min=1,dive"`
}

// BulkUploadResponse resultado del alta masiva (todo o nada).
type BulkUploadResponse struct {
	Created int      `json:"created"`
	IDs     []string `json:"ids"`
}
