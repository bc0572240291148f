package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estatecrm-api/internal/application/auth"
	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/estatecrm-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{byEmail: make(map[string]*entity.User), byID: make(map[string]*entity.User)}
	for _, u := range users {
		f.byEmail[u.Email] = u
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.byID[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}
func (f *fakeUserRepo) List(repository.UserFilter) ([]*entity.User, int, error) {
	return nil, 0, nil
}
func (f *fakeUserRepo) ListByRoles(...string) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(*entity.User) error                     { return nil }
func (f *fakeUserRepo) Delete(string) error                           { return nil }

const testSecret = "secret-para-tests"

func testUser(t *testing.T, password string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "u1",
		Email:        "ana@inmobiliaria.test",
		FirstName:    "Ana",
		LastName:     "Gómez",
		PasswordHash: string(hash),
		Role:         entity.RoleManager,
		IsActive:     active,
	}
}

func newUC(users *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "estatecrm-test",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	u := testUser(t, "clave123", true)
	uc := newUC(newFakeUserRepo(u))

	out, err := uc.Login(dto.LoginRequest{Email: u.Email, Password: "clave123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, entity.RoleManager, out.User.Role)

	// El token lleva los claims que el middleware necesita.
	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, entity.RoleManager, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	u := testUser(t, "clave123", true)
	uc := newUC(newFakeUserRepo(u))

	_, err := uc.Login(dto.LoginRequest{Email: u.Email, Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := newUC(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@test", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email desconocido y password mala devuelven el mismo error")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	u := testUser(t, "clave123", false)
	uc := newUC(newFakeUserRepo(u))

	_, err := uc.Login(dto.LoginRequest{Email: u.Email, Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"credenciales correctas de una cuenta desactivada no emiten token")
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc := newUC(newFakeUserRepo())

	_, err := uc.Me("fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
