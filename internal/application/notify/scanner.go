package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// Ventanas del escaneo de seguimientos.
const (
	scanWindow    = 24 * time.Hour // seguimientos que vencen dentro de este plazo
	dedupLookback = 1 * time.Hour  // no repetir aviso si ya hay uno reciente
)

// Scanner recorre los leads con seguimiento próximo a vencer y crea avisos
// para el empleado asignado. Pensado para correr bajo un scheduler externo
// o dispararse manualmente desde la API.
type Scanner struct {
	leads         repository.LeadRepository
	notifications repository.NotificationRepository
	log           zerolog.Logger
}

// NewScanner construye el escáner de seguimientos.
func NewScanner(leads repository.LeadRepository, notifications repository.NotificationRepository, log zerolog.Logger) *Scanner {
	return &Scanner{leads: leads, notifications: notifications, log: log}
}

// Scan crea avisos para los seguimientos que vencen en las próximas 24 horas
// y devuelve cuántos se crearon. Un lead sin asignado se omite. El de-dup
// mira solo la última hora, por lo que corridas separadas por más de una hora
// pueden avisar de nuevo sobre el mismo lead.
func (s *Scanner) Scan(now time.Time) (int, error) {
	leads, err := s.leads.ListDueFollowUps(now, now.Add(scanWindow), nil)
	if err != nil {
		return 0, fmt.Errorf("list due follow-ups: %w", err)
	}

	created := 0
	for _, l := range leads {
		if l.AssignedEmployeeID == nil {
			continue
		}
		assignee := *l.AssignedEmployeeID

		exists, err := s.notifications.ExistsRecentFollowUp(assignee, l.ID, now.Add(-dedupLookback))
		if err != nil {
			s.log.Error().Err(err).Str("lead_id", l.ID).Msg("fallo el de-dup del seguimiento")
			continue
		}
		if exists {
			continue
		}

		hours := int(l.NextFollowUp.Sub(now).Seconds()) / 3600
		n := &entity.Notification{
			ID:         uuid.New().String(),
			UserID:     assignee,
			Title:      "Follow-up Due Soon",
			Message:    fmt.Sprintf("Follow-up with %s due in %d hours", l.Name, hours),
			Type:       entity.NotificationFollowUp,
			EntityType: "lead",
			EntityID:   l.ID,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.notifications.Create(n); err != nil {
			s.log.Error().Err(err).Str("lead_id", l.ID).Msg("no se pudo crear el aviso de seguimiento")
			continue
		}
		created++
	}
	return created, nil
}
