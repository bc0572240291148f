package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estatecrm-api/internal/application/activity"
	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// FavoriteUseCase favoritos por usuario (pares únicos usuario-propiedad).
type FavoriteUseCase struct {
	favorites  repository.FavoriteRepository
	properties repository.PropertyRepository
	activity   *activity.Logger
}

// NewFavoriteUseCase construye el caso de uso de favoritos.
func NewFavoriteUseCase(favorites repository.FavoriteRepository,
	properties repository.PropertyRepository, act *activity.Logger) *FavoriteUseCase {
	return &FavoriteUseCase{favorites: favorites, properties: properties, activity: act}
}

// Add agrega una propiedad a favoritos. El par (usuario, propiedad) es único.
func (uc *FavoriteUseCase) Add(userID, propertyID string) (*dto.FavoriteResponse, error) {
	p, err := uc.properties.GetByID(propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.favorites.GetByUserAndProperty(userID, propertyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	f := &entity.Favorite{
		ID:         uuid.New().String(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.favorites.Create(f); err != nil {
		return nil, err
	}

	uc.activity.Record(userID, entity.ActivityFavoriteAdded,
		fmt.Sprintf("Favorited property %s", p.Title), "property", propertyID, nil)

	return &dto.FavoriteResponse{
		ID:         f.ID,
		PropertyID: f.PropertyID,
		Property:   ToPropertyResponse(p),
		CreatedAt:  f.CreatedAt,
	}, nil
}

// Remove quita una propiedad de favoritos del usuario.
func (uc *FavoriteUseCase) Remove(userID, propertyID string) error {
	f, err := uc.favorites.GetByUserAndProperty(userID, propertyID)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	if err := uc.favorites.Delete(f.ID); err != nil {
		return err
	}

	uc.activity.Record(userID, entity.ActivityFavoriteRemoved,
		"Removed property from favorites", "property", propertyID, nil)
	return nil
}

// Toggle agrega o quita según el estado actual del par.
func (uc *FavoriteUseCase) Toggle(userID, propertyID string) (*dto.FavoriteToggleResponse, error) {
	existing, err := uc.favorites.GetByUserAndProperty(userID, propertyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := uc.Remove(userID, propertyID); err != nil {
			return nil, err
		}
		return &dto.FavoriteToggleResponse{IsFavorite: false, Action: "removed"}, nil
	}
	if _, err := uc.Add(userID, propertyID); err != nil {
		return nil, err
	}
	return &dto.FavoriteToggleResponse{IsFavorite: true, Action: "added"}, nil
}

// Check indica si la propiedad está en los favoritos del usuario.
func (uc *FavoriteUseCase) Check(userID, propertyID string) (*dto.FavoriteCheckResponse, error) {
	f, err := uc.favorites.GetByUserAndProperty(userID, propertyID)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteCheckResponse{IsFavorite: f != nil}, nil
}

// List lista los favoritos del usuario con la propiedad asociada.
func (uc *FavoriteUseCase) List(userID string, filter repository.FavoriteFilter) (*dto.FavoriteListResponse, error) {
	favorites, total, err := uc.favorites.ListByUser(userID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, dto.FavoriteResponse{
			ID:         f.ID,
			PropertyID: f.PropertyID,
			Property:   ToPropertyResponse(f.Property),
			CreatedAt:  f.CreatedAt,
		})
	}
	return &dto.FavoriteListResponse{
		Favorites: out,
		Meta:      dto.PageResponse{Page: filter.Page, PerPage: filter.PerPage, Total: total},
	}, nil
}
