package usecase

import (
	"time"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/notify"
	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// NotificationUseCase avisos in-app: cada usuario solo ve y muta los suyos.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
	leads         repository.LeadRepository
	scanner       *notify.Scanner
}

// NewNotificationUseCase construye el caso de uso de notificaciones.
func NewNotificationUseCase(notifications repository.NotificationRepository,
	leads repository.LeadRepository, scanner *notify.Scanner) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, leads: leads, scanner: scanner}
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}

// List lista los avisos del usuario con el contador de no leídos.
func (uc *NotificationUseCase) List(userID string, unreadOnly bool, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.notifications.ListByUser(userID, unreadOnly, page.Page, page.PerPage)
	if err != nil {
		return nil, err
	}
	unread, err := uc.notifications.CountUnread(userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{
		Notifications: out,
		UnreadCount:   unread,
		Meta:          dto.PageResponse{Page: page.Page, PerPage: page.PerPage, Total: total},
	}, nil
}

// MarkRead marca un aviso propio como leído.
func (uc *NotificationUseCase) MarkRead(userID, id string) error {
	n, err := uc.notifications.GetByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.notifications.MarkRead(id)
}

// MarkAllRead marca todos los avisos del usuario como leídos.
func (uc *NotificationUseCase) MarkAllRead(userID string) error {
	return uc.notifications.MarkAllRead(userID)
}

// Delete elimina un aviso propio.
func (uc *NotificationUseCase) Delete(userID, id string) error {
	n, err := uc.notifications.GetByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.notifications.Delete(id)
}

// FollowUpReminders leads con seguimiento dentro de las próximas 24 horas.
// Los roles no privilegiados solo ven sus propios leads.
func (uc *NotificationUseCase) FollowUpReminders(userID, role string) ([]dto.FollowUpReminderResponse, error) {
	now := time.Now().UTC()
	var scope *string
	if role != entity.RoleAdmin && role != entity.RoleManager {
		scope = &userID
	}

	leads, err := uc.leads.ListDueFollowUps(now, now.Add(24*time.Hour), scope)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FollowUpReminderResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, dto.FollowUpReminderResponse{
			LeadID:             l.ID,
			LeadName:           l.Name,
			Stage:              l.Stage,
			AssignedEmployeeID: l.AssignedEmployeeID,
			NextFollowUp:       l.NextFollowUp,
		})
	}
	return out, nil
}

// CheckFollowUps dispara el escaneo de seguimientos manualmente (solo admin).
func (uc *NotificationUseCase) CheckFollowUps() (*dto.ScanResultResponse, error) {
	created, err := uc.scanner.Scan(time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &dto.ScanResultResponse{NotificationsCreated: created}, nil
}
