package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estatecrm-api/internal/application/activity"
	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/notify"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// PropertyTxRunner ejecuta un callback con un repositorio de propiedades
// atado a una transacción. La carga masiva lo usa para ser todo-o-nada.
type PropertyTxRunner interface {
	RunProperties(ctx context.Context, fn func(propertyRepo repository.PropertyRepository) error) error
}

// PropertyUseCase gestión del inventario de propiedades.
type PropertyUseCase struct {
	properties repository.PropertyRepository
	users      repository.UserRepository
	tx         PropertyTxRunner
	fanout     *notify.Fanout
	activity   *activity.Logger
}

// NewPropertyUseCase construye el caso de uso de propiedades.
func NewPropertyUseCase(properties repository.PropertyRepository, users repository.UserRepository,
	tx PropertyTxRunner, fanout *notify.Fanout, act *activity.Logger) *PropertyUseCase {
	return &PropertyUseCase{properties: properties, users: users, tx: tx, fanout: fanout, activity: act}
}

func propertyFromRequest(in dto.PropertyRequest, now time.Time) *entity.Property {
	status := in.Status
	if status == "" {
		status = entity.PropertyAvailable
	}
	return &entity.Property{
		ID:               uuid.New().String(),
		Title:            in.Title,
		Description:      in.Description,
		PropertyType:     in.PropertyType,
		SubType:          in.SubType,
		Location:         in.Location,
		Address:          in.Address,
		City:             in.City,
		State:            in.State,
		Pincode:          in.Pincode,
		Landmark:         in.Landmark,
		Price:            in.Price,
		PricePerSqft:     in.PricePerSqft,
		BookingAmount:    in.BookingAmount,
		PossessionDate:   in.PossessionDate,
		Area:             in.Area,
		BuiltUpArea:      in.BuiltUpArea,
		CarpetArea:       in.CarpetArea,
		Bedrooms:         in.Bedrooms,
		Bathrooms:        in.Bathrooms,
		Balconies:        in.Balconies,
		FloorNumber:      in.FloorNumber,
		TotalFloors:      in.TotalFloors,
		Direction:        in.Direction,
		AgeOfProperty:    in.AgeOfProperty,
		FurnishingStatus: in.FurnishingStatus,
		Amenities:        in.Amenities,
		Parking:          in.Parking,
		Status:           status,
		ListingType:      in.ListingType,
		Priority:         in.Priority,
		Featured:         in.Featured,
		Images:           in.Images,
		VirtualTour:      in.VirtualTour,
		AssignedAgentID:  in.AssignedAgentID,
		IsWebsiteVisible: in.IsWebsiteVisible,
		Highlights:       in.Highlights,
		ContactPerson:    in.ContactPerson,
		ContactPhone:     in.ContactPhone,
		ContactEmail:     in.ContactEmail,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ToPropertyResponse mapea una propiedad a su DTO de salida.
func ToPropertyResponse(p *entity.Property) *dto.PropertyResponse {
	if p == nil {
		return nil
	}
	return &dto.PropertyResponse{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		PropertyType:     p.PropertyType,
		SubType:          p.SubType,
		Location:         p.Location,
		Address:          p.Address,
		City:             p.City,
		State:            p.State,
		Pincode:          p.Pincode,
		Landmark:         p.Landmark,
		Price:            p.Price,
		PricePerSqft:     p.PricePerSqft,
		BookingAmount:    p.BookingAmount,
		PossessionDate:   p.PossessionDate,
		Area:             p.Area,
		BuiltUpArea:      p.BuiltUpArea,
		CarpetArea:       p.CarpetArea,
		Bedrooms:         p.Bedrooms,
		Bathrooms:        p.Bathrooms,
		Balconies:        p.Balconies,
		FloorNumber:      p.FloorNumber,
		TotalFloors:      p.TotalFloors,
		Direction:        p.Direction,
		AgeOfProperty:    p.AgeOfProperty,
		FurnishingStatus: p.FurnishingStatus,
		Amenities:        p.Amenities,
		Parking:          p.Parking,
		Status:           p.Status,
		ListingType:      p.ListingType,
		Priority:         p.Priority,
		Featured:         p.Featured,
		Images:           p.Images,
		VirtualTour:      p.VirtualTour,
		AssignedAgentID:  p.AssignedAgentID,
		IsWebsiteVisible: p.IsWebsiteVisible,
		Highlights:       p.Highlights,
		ContactPerson:    p.ContactPerson,
		ContactPhone:     p.ContactPhone,
		ContactEmail:     p.ContactEmail,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// Create da de alta una propiedad, registra la actividad y difunde el aviso.
func (uc *PropertyUseCase) Create(actorID string, in dto.PropertyRequest) (*dto.PropertyResponse, error) {
	p := propertyFromRequest(in, time.Now().UTC())
	if err := uc.properties.Create(p); err != nil {
		return nil, err
	}

	uc.activity.Record(actorID, entity.ActivityPropertyAdded,
		fmt.Sprintf("Added property %s", p.Title), "property", p.ID, nil)
	uc.fanout.NotifyManagers("", "New Property Added",
		fmt.Sprintf("Property %s in %s was added", p.Title, p.Location),
		entity.NotificationProperty, "property", p.ID)

	return ToPropertyResponse(p), nil
}

// GetByID obtiene una propiedad.
func (uc *PropertyUseCase) GetByID(id string) (*dto.PropertyResponse, error) {
	p, err := uc.properties.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return ToPropertyResponse(p), nil
}

// List lista propiedades con filtros y paginación.
func (uc *PropertyUseCase) List(filter repository.PropertyFilter) (*dto.PropertyListResponse, error) {
	props, total, err := uc.properties.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, *ToPropertyResponse(p))
	}
	return &dto.PropertyListResponse{
		Properties: out,
		Meta:       dto.PageResponse{Page: filter.Page, PerPage: filter.PerPage, Total: total},
	}, nil
}

// ListWebsiteVisible listado público: solo disponibles y visibles en web.
func (uc *PropertyUseCase) ListWebsiteVisible(limit int) ([]dto.PropertyResponse, error) {
	visible := true
	props, _, err := uc.properties.List(repository.PropertyFilter{
		Status:         entity.PropertyAvailable,
		WebsiteVisible: &visible,
		Limit:          limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, *ToPropertyResponse(p))
	}
	return out, nil
}

// Update aplica los campos presentes y difunde avisos independientes por
// cambio de estado, de precio y de detalles básicos.
func (uc *PropertyUseCase) Update(actorID, id string, in dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	p, err := uc.properties.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	oldStatus := p.Status
	oldPrice := p.Price
	oldTitle, oldLocation, oldType := p.Title, p.Location, p.PropertyType

	applyPropertyUpdate(p, in)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.properties.Update(p); err != nil {
		return nil, err
	}

	if p.Status != oldStatus {
		uc.fanout.NotifyManagers("", "Property Status Changed",
			fmt.Sprintf("Property %s changed from %s to %s", p.Title, oldStatus, p.Status),
			entity.NotificationProperty, "property", p.ID)
	}
	if !p.Price.Equal(oldPrice) {
		uc.fanout.NotifyManagers("", "Property Price Updated",
			fmt.Sprintf("Property %s price changed from %s to %s", p.Title, oldPrice.String(), p.Price.String()),
			entity.NotificationProperty, "property", p.ID)
	}
	if p.Title != oldTitle || p.Location != oldLocation || p.PropertyType != oldType {
		editor := "Someone"
		if actor, err := uc.users.GetByID(actorID); err == nil && actor != nil {
			editor = actor.FullName()
		}
		uc.fanout.NotifyManagers("", "Property Details Updated",
			fmt.Sprintf("%s updated details of property %s", editor, p.Title),
			entity.NotificationProperty, "property", p.ID)
	}

	return ToPropertyResponse(p), nil
}

func applyPropertyUpdate(p *entity.Property, in dto.UpdatePropertyRequest) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.PropertyType != nil {
		p.PropertyType = *in.PropertyType
	}
	if in.SubType != nil {
		p.SubType = *in.SubType
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.State != nil {
		p.State = *in.State
	}
	if in.Pincode != nil {
		p.Pincode = *in.Pincode
	}
	if in.Landmark != nil {
		p.Landmark = *in.Landmark
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.PricePerSqft != nil {
		p.PricePerSqft = in.PricePerSqft
	}
	if in.BookingAmount != nil {
		p.BookingAmount = in.BookingAmount
	}
	if in.PossessionDate != nil {
		p.PossessionDate = in.PossessionDate
	}
	if in.Area != nil {
		p.Area = in.Area
	}
	if in.BuiltUpArea != nil {
		p.BuiltUpArea = in.BuiltUpArea
	}
	if in.CarpetArea != nil {
		p.CarpetArea = in.CarpetArea
	}
	if in.Bedrooms != nil {
		p.Bedrooms = in.Bedrooms
	}
	if in.Bathrooms != nil {
		p.Bathrooms = in.Bathrooms
	}
	if in.Balconies != nil {
		p.Balconies = in.Balconies
	}
	if in.FloorNumber != nil {
		p.FloorNumber = in.FloorNumber
	}
	if in.TotalFloors != nil {
		p.TotalFloors = in.TotalFloors
	}
	if in.Direction != nil {
		p.Direction = *in.Direction
	}
	if in.AgeOfProperty != nil {
		p.AgeOfProperty = *in.AgeOfProperty
	}
	if in.FurnishingStatus != nil {
		p.FurnishingStatus = *in.FurnishingStatus
	}
	if in.Amenities != nil {
		p.Amenities = *in.Amenities
	}
	if in.Parking != nil {
		p.Parking = *in.Parking
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.ListingType != nil {
		p.ListingType = *in.ListingType
	}
	if in.Priority != nil {
		p.Priority = *in.Priority
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.VirtualTour != nil {
		p.VirtualTour = *in.VirtualTour
	}
	if in.AssignedAgentID != nil {
		p.AssignedAgentID = in.AssignedAgentID
	}
	if in.IsWebsiteVisible != nil {
		p.IsWebsiteVisible = *in.IsWebsiteVisible
	}
	if in.Highlights != nil {
		p.Highlights = *in.Highlights
	}
	if in.ContactPerson != nil {
		p.ContactPerson = *in.ContactPerson
	}
	if in.ContactPhone != nil {
		p.ContactPhone = *in.ContactPhone
	}
	if in.ContactEmail != nil {
		p.ContactEmail = *in.ContactEmail
	}
}

// Delete elimina una propiedad y registra la actividad.
func (uc *PropertyUseCase) Delete(actorID, id string) error {
	p, err := uc.properties.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := uc.properties.Delete(id); err != nil {
		return err
	}

	uc.activity.Record(actorID, entity.ActivityPropertyDeleted,
		fmt.Sprintf("Deleted property %s", p.Title), "property", id, nil)
	return nil
}

// BulkUpload crea un lote de propiedades en una sola transacción:
// si una falla, ninguna queda persistida.
func (uc *PropertyUseCase) BulkUpload(ctx context.Context, actorID string, in dto.BulkUploadRequest) (*dto.BulkUploadResponse, error) {
	if len(in.Properties) == 0 {
		return nil, fmt.Errorf("%w: lote vacío", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	ids := make([]string, 0, len(in.Properties))
	err := uc.tx.RunProperties(ctx, func(repo repository.PropertyRepository) error {
		for _, req := range in.Properties {
			p := propertyFromRequest(req, now)
			if err := repo.Create(p); err != nil {
				return err
			}
			ids = append(ids, p.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.activity.Record(actorID, entity.ActivityPropertyAdded,
		fmt.Sprintf("Bulk uploaded %d properties", len(ids)), "property", "",
		map[string]any{"count": len(ids)})

	return &dto.BulkUploadResponse{Created: len(ids), IDs: ids}, nil
}

// Types devuelve los tipos de propiedad en uso.
func (uc *PropertyUseCase) Types() ([]string, error) {
	return uc.properties.DistinctTypes()
}

// Locations devuelve las ubicaciones en uso.
func (uc *PropertyUseCase) Locations() ([]string, error) {
	return uc.properties.DistinctLocations()
}
