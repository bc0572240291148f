package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de Property.
const (
	PropertyAvailable = "available"
	PropertySold      = "sold"
	PropertyRented    = "rented"
	PropertyLeased    = "leased"
	PropertyUpcoming  = "upcoming"
)

// Property representa un inmueble del inventario.
// La mayoría de los campos de especificación son opcionales; los punteros
// distinguen "no informado" de cero.
type Property struct {
	ID string

	// Información básica
	Title        string
	Description  string
	PropertyType string // residential, commercial, plot, etc.
	SubType      string // 1bhk, 2bhk, office, retail, etc.
	Location     string
	Address      string
	City         string
	State        string
	Pincode      string
	Landmark     string

	// Precio y financiero
	Price          decimal.Decimal
	PricePerSqft   *decimal.Decimal
	BookingAmount  *decimal.Decimal
	PossessionDate *time.Time

	// Especificaciones
	Area             *decimal.Decimal // en sqft
	BuiltUpArea      *decimal.Decimal
	CarpetArea       *decimal.Decimal
	Bedrooms         *int
	Bathrooms        *int
	Balconies        *int
	FloorNumber      *int
	TotalFloors      *int
	Direction        string // north, south, east, west
	AgeOfProperty    string
	FurnishingStatus string

	// Amenidades
	Amenities []string
	Parking   string

	// Estado y visibilidad
	Status           string // available, sold, rented, leased, upcoming
	ListingType      string // sale, rent
	Priority         string // normal, high, urgent
	Featured         bool
	Images           []string
	VirtualTour      string
	AssignedAgentID  *string
	IsWebsiteVisible bool

	// Información adicional
	Highlights    string
	ContactPerson string
	ContactPhone  string
	ContactEmail  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
