package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

type fkFavorites struct {
	byID map[string]*entity.Favorite
}

func newFkFavorites(favs ...*entity.Favorite) *fkFavorites {
	f := &fkFavorites{byID: make(map[string]*entity.Favorite)}
	for _, fav := range favs {
		f.byID[fav.ID] = fav
	}
	return f
}

func (f *fkFavorites) Create(fav *entity.Favorite) error { f.byID[fav.ID] = fav; return nil }
func (f *fkFavorites) GetByUserAndProperty(userID, propertyID string) (*entity.Favorite, error) {
	for _, fav := range f.byID {
		if fav.UserID == userID && fav.PropertyID == propertyID {
			return fav, nil
		}
	}
	return nil, nil
}
func (f *fkFavorites) ListByUser(userID string, filter repository.FavoriteFilter) ([]*entity.Favorite, int, error) {
	var out []*entity.Favorite
	for _, fav := range f.byID {
		if fav.UserID == userID {
			out = append(out, fav)
		}
	}
	return out, len(out), nil
}
func (f *fkFavorites) Delete(id string) error { delete(f.byID, id); return nil }

func newFavoriteUC(favs *fkFavorites, props *fkProps, acts *fkActs) *usecase.FavoriteUseCase {
	return usecase.NewFavoriteUseCase(favs, props, testActivity(acts))
}

func TestFavoriteAdd_PropiedadInexistente(t *testing.T) {
	uc := newFavoriteUC(newFkFavorites(), newFkProps(), &fkActs{})

	_, err := uc.Add("u1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFavoriteAdd_ParDuplicado(t *testing.T) {
	prop := &entity.Property{ID: "p1", Title: "Casa"}
	existing := &entity.Favorite{ID: "f1", UserID: "u1", PropertyID: "p1"}
	uc := newFavoriteUC(newFkFavorites(existing), newFkProps(prop), &fkActs{})

	_, err := uc.Add("u1", "p1")
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el par (usuario, propiedad) es único")
}

func TestFavoriteToggle_AlternaEstado(t *testing.T) {
	prop := &entity.Property{ID: "p1", Title: "Casa"}
	favs := newFkFavorites()
	acts := &fkActs{}
	uc := newFavoriteUC(favs, newFkProps(prop), acts)

	out, err := uc.Toggle("u1", "p1")
	require.NoError(t, err)
	assert.True(t, out.IsFavorite)
	assert.Equal(t, "added", out.Action)

	out, err = uc.Toggle("u1", "p1")
	require.NoError(t, err)
	assert.False(t, out.IsFavorite)
	assert.Equal(t, "removed", out.Action)

	check, err := uc.Check("u1", "p1")
	require.NoError(t, err)
	assert.False(t, check.IsFavorite)

	assert.Len(t, acts.byType(entity.ActivityFavoriteAdded), 1)
	assert.Len(t, acts.byType(entity.ActivityFavoriteRemoved), 1)
}
