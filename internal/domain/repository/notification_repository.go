package repository

import (
	"time"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
)

// NotificationRepository persistencia de avisos in-app.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByIDAndUser(id, userID string) (*entity.Notification, error)
	ListByUser(userID string, unreadOnly bool, page, perPage int) ([]*entity.Notification, int, error)
	CountUnread(userID string) (int, error)
	MarkRead(id string) error
	MarkAllRead(userID string) error
	Delete(id string) error
	// ExistsRecentFollowUp verifica el de-dup del escáner: ¿existe ya un
	// aviso follow_up para (userID, lead) creado desde `since`?
	ExistsRecentFollowUp(userID, leadID string, since time.Time) (bool, error)
}
