package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estatecrm-api/internal/application/activity"
	"github.com/jhoicas/estatecrm-api/internal/application/auth"
	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// WelcomeMailer puerto del correo de bienvenida. El envío es best-effort:
// el caso de uso loguea el fallo y no lo propaga.
type WelcomeMailer interface {
	SendWelcome(toEmail, fullName, tempPassword string) error
}

// EmployeeUseCase gestión de empleados (solo admin).
type EmployeeUseCase struct {
	users    repository.UserRepository
	reports  repository.ReportRepository
	mailer   WelcomeMailer
	activity *activity.Logger
	log      zerolog.Logger
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(users repository.UserRepository, reports repository.ReportRepository,
	mailer WelcomeMailer, act *activity.Logger, log zerolog.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{users: users, reports: reports, mailer: mailer, activity: act, log: log}
}

// Create da de alta un empleado, envía el correo de bienvenida con la
// contraseña temporal y registra la actividad.
func (uc *EmployeeUseCase) Create(actorID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
		Role:         in.Role,
		Permissions:  in.Permissions,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}

	if err := uc.mailer.SendWelcome(user.Email, user.FullName(), in.Password); err != nil {
		uc.log.Error().Err(err).Str("email", user.Email).Msg("no se pudo enviar el correo de bienvenida")
	}

	uc.activity.Record(actorID, entity.ActivityEmployeeAdded,
		fmt.Sprintf("Added employee %s", user.FullName()), "user", user.ID, nil)

	return auth.ToEmployeeResponse(user), nil
}

// GetByID obtiene un empleado.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToEmployeeResponse(user), nil
}

// List lista empleados con filtros y paginación.
func (uc *EmployeeUseCase) List(filter repository.UserFilter) (*dto.EmployeeListResponse, error) {
	users, total, err := uc.users.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToEmployeeResponse(u))
	}
	return &dto.EmployeeListResponse{
		Employees: out,
		Meta:      dto.PageResponse{Page: filter.Page, PerPage: filter.PerPage, Total: total},
	}, nil
}

// Update actualiza un empleado; solo los campos presentes se aplican.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.users.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	if in.City != nil {
		user.City = *in.City
	}
	if in.State != nil {
		user.State = *in.State
	}
	if in.Pincode != nil {
		user.Pincode = *in.Pincode
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Permissions != nil {
		user.Permissions = *in.Permissions
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return auth.ToEmployeeResponse(user), nil
}

// Delete elimina un empleado. Un usuario no puede eliminarse a sí mismo.
func (uc *EmployeeUseCase) Delete(actorID, id string) error {
	if actorID == id {
		return domain.ErrSelfDelete
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.users.Delete(id); err != nil {
		return err
	}

	uc.activity.Record(actorID, entity.ActivityEmployeeDeleted,
		fmt.Sprintf("Removed employee %s", user.FullName()), "user", id, nil)
	return nil
}

// Performance devuelve las métricas de desempeño de un empleado.
func (uc *EmployeeUseCase) Performance(ctx context.Context, id string) (*dto.EmployeePerformanceResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	total, won, lost, err := uc.reports.LeadCounts(ctx, repository.ReportScope{AssignedEmployeeID: &id})
	if err != nil {
		return nil, err
	}

	resp := &dto.EmployeePerformanceResponse{
		EmployeeID:   id,
		EmployeeName: user.FullName(),
		TotalLeads:   total,
		WonLeads:     won,
		LostLeads:    lost,
	}
	if total > 0 {
		resp.ConversionRate = float64(won) / float64(total) * 100
	}

	rows, err := uc.reports.EmployeeProductivity(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.EmployeeID == id {
			resp.Revenue = row.Revenue
			break
		}
	}
	return resp, nil
}
