package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estatecrm-api/internal/application/activity"
	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
	"github.com/jhoicas/estatecrm-api/pkg/shortcode"
)

// embedDefaultLimit propiedades por widget si el filtro no fija uno.
const embedDefaultLimit = 12

// ShortcodeUseCase filtros guardados con código público para widgets.
type ShortcodeUseCase struct {
	shortcodes repository.ShortcodeRepository
	properties repository.PropertyRepository
	activity   *activity.Logger
}

// NewShortcodeUseCase construye el caso de uso de shortcodes.
func NewShortcodeUseCase(shortcodes repository.ShortcodeRepository,
	properties repository.PropertyRepository, act *activity.Logger) *ShortcodeUseCase {
	return &ShortcodeUseCase{shortcodes: shortcodes, properties: properties, activity: act}
}

func toShortcodeResponse(s *entity.PropertyShortcode) *dto.ShortcodeResponse {
	if s == nil {
		return nil
	}
	return &dto.ShortcodeResponse{
		ID:             s.ID,
		Shortcode:      s.Shortcode,
		Name:           s.Name,
		Description:    s.Description,
		Filters:        s.Filters,
		DisplayOptions: s.DisplayOptions,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// Create genera un código único de 8 caracteres y persiste el shortcode.
func (uc *ShortcodeUseCase) Create(ownerID string, in dto.ShortcodeRequest) (*dto.ShortcodeResponse, error) {
	code, err := shortcode.NewUnique(uc.shortcodes.CodeExists)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	s := &entity.PropertyShortcode{
		ID:             uuid.New().String(),
		Shortcode:      code,
		Name:           in.Name,
		Description:    in.Description,
		CreatedBy:      ownerID,
		Filters:        in.Filters,
		DisplayOptions: in.DisplayOptions,
		IsActive:       active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.shortcodes.Create(s); err != nil {
		return nil, err
	}

	uc.activity.Record(ownerID, entity.ActivityShortcodeCreated,
		fmt.Sprintf("Created widget %s (%s)", s.Name, s.Shortcode), "shortcode", s.ID, nil)

	return toShortcodeResponse(s), nil
}

// GetByID obtiene un shortcode propio.
func (uc *ShortcodeUseCase) GetByID(ownerID, id string) (*dto.ShortcodeResponse, error) {
	s, err := uc.shortcodes.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toShortcodeResponse(s), nil
}

// List lista los shortcodes del usuario.
func (uc *ShortcodeUseCase) List(ownerID string) ([]dto.ShortcodeResponse, error) {
	list, err := uc.shortcodes.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShortcodeResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toShortcodeResponse(s))
	}
	return out, nil
}

// Update actualiza un shortcode propio. El código público no cambia.
func (uc *ShortcodeUseCase) Update(ownerID, id string, in dto.ShortcodeRequest) (*dto.ShortcodeResponse, error) {
	s, err := uc.shortcodes.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}

	s.Name = in.Name
	s.Description = in.Description
	if in.Filters != nil {
		s.Filters = in.Filters
	}
	if in.DisplayOptions != nil {
		s.DisplayOptions = in.DisplayOptions
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	s.UpdatedAt = time.Now().UTC()

	if err := uc.shortcodes.Update(s); err != nil {
		return nil, err
	}

	uc.activity.Record(ownerID, entity.ActivityShortcodeUpdated,
		fmt.Sprintf("Updated widget %s (%s)", s.Name, s.Shortcode), "shortcode", s.ID, nil)

	return toShortcodeResponse(s), nil
}

// Delete elimina un shortcode propio.
func (uc *ShortcodeUseCase) Delete(ownerID, id string) error {
	s, err := uc.shortcodes.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if err := uc.shortcodes.Delete(id); err != nil {
		return err
	}

	uc.activity.Record(ownerID, entity.ActivityShortcodeDeleted,
		fmt.Sprintf("Deleted widget %s (%s)", s.Name, s.Shortcode), "shortcode", id, nil)
	return nil
}

// Embed resuelve un código público y devuelve las propiedades filtradas.
// Solo shortcodes activos; las propiedades se limitan a visibles en web.
func (uc *ShortcodeUseCase) Embed(code string) (*dto.EmbedResponse, error) {
	s, err := uc.shortcodes.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if s == nil || !s.IsActive {
		return nil, domain.ErrNotFound
	}

	filter := embedFilter(s.Filters)
	props, total, err := uc.properties.List(filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.EmbedResponse{
		Shortcode:      s.Shortcode,
		Name:           s.Name,
		DisplayOptions: s.DisplayOptions,
		Total:          total,
	}
	for _, p := range props {
		resp.Properties = append(resp.Properties, *ToPropertyResponse(p))
	}
	return resp, nil
}

// Owner resuelve el dueño de un código público activo (para la captura de leads).
func (uc *ShortcodeUseCase) Owner(code string) (ownerID, name string, err error) {
	s, err := uc.shortcodes.GetByCode(code)
	if err != nil {
		return "", "", err
	}
	if s == nil || !s.IsActive {
		return "", "", domain.ErrNotFound
	}
	return s.CreatedBy, s.Name, nil
}

// embedFilter traduce el mapa de filtros guardado (jsonb) a un filtro de
// propiedades. Claves desconocidas se ignoran.
func embedFilter(filters map[string]any) repository.PropertyFilter {
	visible := true
	f := repository.PropertyFilter{
		Status:         entity.PropertyAvailable,
		WebsiteVisible: &visible,
		Limit:          embedDefaultLimit,
	}
	if filters == nil {
		return f
	}

	if v, ok := filters["property_type"].(string); ok {
		f.PropertyType = v
	}
	if v, ok := filters["listing_type"].(string); ok {
		f.ListingType = v
	}
	if v, ok := filters["city"].(string); ok {
		f.City = v
	}
	if v, ok := filters["location"].(string); ok {
		f.Location = v
	}
	if v, ok := filters["featured"].(bool); ok && v {
		f.Featured = &v
	}
	if v, ok := toFloat(filters["price_min"]); ok {
		d := decimal.NewFromFloat(v)
		f.PriceMin = &d
	}
	if v, ok := toFloat(filters["price_max"]); ok {
		d := decimal.NewFromFloat(v)
		f.PriceMax = &d
	}
	if v, ok := toFloat(filters["bedrooms_min"]); ok {
		n := int(v)
		f.BedroomsMin = &n
	}
	if v, ok := toFloat(filters["limit"]); ok && v > 0 {
		f.Limit = int(v)
	}
	return f
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
