package notify

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// AudienceResolver decide quién recibe un aviso de difusión. La política por
// defecto es "todos los admins y managers activos"; está detrás de esta
// interfaz para poder sustituirla por suscripciones sin tocar los callers.
type AudienceResolver interface {
	// Managers devuelve los IDs de la audiencia privilegiada. Si excludeUserID
	// no es vacío, ese usuario queda fuera (el actor no se notifica a sí mismo).
	Managers(excludeUserID string) ([]string, error)
}

// ManagerAudience implementación por defecto de AudienceResolver sobre el
// repositorio de usuarios.
type ManagerAudience struct {
	users repository.UserRepository
}

// NewManagerAudience construye la política de audiencia por defecto.
func NewManagerAudience(users repository.UserRepository) *ManagerAudience {
	return &ManagerAudience{users: users}
}

// Managers devuelve admins y managers activos, excluyendo opcionalmente al actor.
func (a *ManagerAudience) Managers(excludeUserID string) ([]string, error) {
	users, err := a.users.ListByRoles(entity.RoleAdmin, entity.RoleManager)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if excludeUserID != "" && u.ID == excludeUserID {
			continue
		}
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// Fanout crea avisos in-app en modo best-effort: el fallo de un insert se
// loguea y el bucle continúa; el error nunca llega a la operación primaria.
type Fanout struct {
	notifications repository.NotificationRepository
	audience      AudienceResolver
	log           zerolog.Logger
}

// NewFanout construye el difusor de avisos.
func NewFanout(notifications repository.NotificationRepository, audience AudienceResolver, log zerolog.Logger) *Fanout {
	return &Fanout{notifications: notifications, audience: audience, log: log}
}

// NotifyUser crea un aviso para un usuario concreto.
func (f *Fanout) NotifyUser(userID, title, message, ntype, entityType, entityID string) {
	n := &entity.Notification{
		ID:         uuid.New().String(),
		UserID:     userID,
		Title:      title,
		Message:    message,
		Type:       ntype,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := f.notifications.Create(n); err != nil {
		f.log.Error().Err(err).Str("user_id", userID).Str("title", title).
			Msg("no se pudo crear el aviso")
	}
}

// NotifyManagers difunde un aviso a la audiencia privilegiada. Si
// excludeUserID no es vacío, el actor queda fuera de la difusión.
func (f *Fanout) NotifyManagers(excludeUserID, title, message, ntype, entityType, entityID string) {
	ids, err := f.audience.Managers(excludeUserID)
	if err != nil {
		f.log.Error().Err(err).Str("title", title).
			Msg("no se pudo resolver la audiencia de difusión")
		return
	}
	for _, id := range ids {
		f.NotifyUser(id, title, message, ntype, entityType, entityID)
	}
}
